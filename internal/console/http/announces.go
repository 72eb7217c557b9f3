package http

import (
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

type AnnouncesHandler struct {
	list   listHandler[apisdk.Announce]
	detail detailHandler[apisdk.Announce]
}

func NewAnnouncesHandler(screen *resource.ListScreen[apisdk.Announce], src resource.Source[apisdk.Announce]) *AnnouncesHandler {
	return &AnnouncesHandler{
		list:   listHandler[apisdk.Announce]{Screen: screen, Badge: announceBadge},
		detail: detailHandler[apisdk.Announce]{Source: src, Badge: announceBadge},
	}
}

// HandleList godoc
//
//	@Summary		List announces
//	@Tags			Announces
//	@Produce		json
//	@Param			page	query		int	false	"1-based page"	default(1)
//	@Success		200		{object}	ListResponse[apisdk.Announce]
//	@Failure		400		{object}	httpx.ErrorBody	"Page out of range"
//	@Router			/v1/announces [get]
func (h *AnnouncesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.list.handleList(w, r)
}

// HandleGet godoc
//
//	@Summary		Get an announce
//	@Tags			Announces
//	@Produce		json
//	@Param			id	path		string	true	"Announce ID"
//	@Success		200	{object}	Row[apisdk.Announce]
//	@Router			/v1/announces/{id} [get]
func (h *AnnouncesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.detail.handleGet(w, r)
}

// HandleUpdate godoc
//
//	@Summary		Edit an announce
//	@Description	Numeric fields (price, availability) only accept numbers.
//	@Tags			Announces
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string	true	"Announce ID"
//	@Param			request	body		object	true	"Fields to change"
//	@Success		200		{object}	Row[apisdk.Announce]
//	@Failure		400		{object}	httpx.ErrorBody	"Unknown field or bad value"
//	@Router			/v1/announces/{id} [patch]
func (h *AnnouncesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	h.detail.handleUpdate(w, r)
}

// HandleDelete godoc
//
//	@Summary		Delete an announce
//	@Tags			Announces
//	@Produce		json
//	@Param			id	path		string	true	"Announce ID"
//	@Success		200	{object}	ListResponse[apisdk.Announce]
//	@Router			/v1/announces/{id} [delete]
func (h *AnnouncesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.list.handleDelete(w, r)
}
