package http

import (
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

type UsersHandler struct {
	list   listHandler[apisdk.User]
	detail detailHandler[apisdk.User]
}

func NewUsersHandler(screen *resource.ListScreen[apisdk.User], src resource.Source[apisdk.User]) *UsersHandler {
	return &UsersHandler{
		list:   listHandler[apisdk.User]{Screen: screen, Badge: userBadge},
		detail: detailHandler[apisdk.User]{Source: src, Badge: userBadge},
	}
}

// HandleList godoc
//
//	@Summary		List users
//	@Description	One page of accounts, ten per page, each with its role badge.
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int	false	"1-based page"	default(1)
//	@Success		200		{object}	ListResponse[apisdk.User]
//	@Failure		400		{object}	httpx.ErrorBody	"Page out of range"
//	@Failure		401		{object}	httpx.ErrorBody
//	@Failure		502		{object}	httpx.ErrorBody
//	@Router			/v1/users [get]
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) { h.list.handleList(w, r) }

// HandleGet godoc
//
//	@Summary		Get a user
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	Row[apisdk.User]
//	@Failure		404	{object}	httpx.ErrorBody
//	@Router			/v1/users/{id} [get]
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) { h.detail.handleGet(w, r) }

// HandleUpdate godoc
//
//	@Summary		Edit a user
//	@Description	Applies the given fields to the user and submits the whole record.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			request	body		object	true	"Fields to change"
//	@Success		200		{object}	Row[apisdk.User]
//	@Failure		400		{object}	httpx.ErrorBody	"Unknown field or bad value"
//	@Router			/v1/users/{id} [patch]
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.detail.handleUpdate(w, r)
}

// HandleDelete godoc
//
//	@Summary		Delete a user
//	@Description	Deletes the user and returns the refreshed current page.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	ListResponse[apisdk.User]
//	@Failure		502	{object}	httpx.ErrorBody
//	@Router			/v1/users/{id} [delete]
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) { h.list.handleDelete(w, r) }
