package http

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
)

// ContactHandler serves the public site's waitlist and contact forms.
type ContactHandler struct {
	Client *apisdk.Client
}

// HandleNewsletter godoc
//
//	@Summary		Join the waitlist
//	@Tags			Public
//	@Accept			json
//	@Param			request	body	NewsletterRequest	true	"Email"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody	"Invalid email"
//	@Failure		409	{object}	httpx.ErrorBody	"Already subscribed"
//	@Router			/v1/newsletter [post]
func (h *ContactHandler) HandleNewsletter(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if err := h.Client.SubscribeNewsletter(r.Context(), email); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// HandleContact godoc
//
//	@Summary		Send a contact message
//	@Tags			Public
//	@Accept			json
//	@Param			request	body	apisdk.ContactMessage	true	"Message"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody	"Missing fields"
//	@Router			/v1/contact [post]
func (h *ContactHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var msg apisdk.ContactMessage
	if !decodeBody(w, r, &msg) {
		return
	}
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	if err := h.Client.SendContactMessage(r.Context(), msg); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
