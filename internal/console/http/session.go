package http

import (
	"encoding/json"
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
)

// maxPhotoSize bounds profile photo uploads.
const maxPhotoSize = 5 << 20

type SessionHandler struct {
	Session *session.Manager
}

// decodeBody decodes a JSON request body into v, writing 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *SessionHandler) writeSnapshot(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// HandleGet godoc
//
//	@Summary		Current session
//	@Description	Returns the session state, the signed-in identity if any, and the screen to show.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Router			/v1/session [get]
func (h *SessionHandler) HandleGet(w http.ResponseWriter, _ *http.Request) {
	h.writeSnapshot(w)
}

// HandleLogin godoc
//
//	@Summary		Admin sign-in
//	@Description	Signs in through the backend's admin login. Identities without the admin role are refused.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	httpx.ErrorBody	"Malformed body"
//	@Failure		401		{object}	httpx.ErrorBody	"Invalid credentials"
//	@Failure		403		{object}	httpx.ErrorBody	"Not an admin"
//	@Failure		429		{object}	httpx.ErrorBody	"Too many attempts"
//	@Failure		502		{object}	httpx.ErrorBody	"Backend unreachable"
//	@Router			/v1/session/login [post]
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	if err := h.Session.AdminSignIn(r.Context(), req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleRegister godoc
//
//	@Summary		Register and sign in
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		apisdk.RegisterRequest	true	"New account"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	httpx.ErrorBody	"Rejected by the backend"
//	@Failure		502		{object}	httpx.ErrorBody	"Backend unreachable"
//	@Router			/v1/session/register [post]
func (h *SessionHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req apisdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Session.SignUp(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleRenew godoc
//
//	@Summary		Renew the session
//	@Description	Redeems the stored refresh token now. A rejected token ends the session (401).
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Failure		401	{object}	httpx.ErrorBody	"Session expired"
//	@Failure		502	{object}	httpx.ErrorBody	"Backend unreachable"
//	@Router			/v1/session/renew [post]
func (h *SessionHandler) HandleRenew(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.Renew(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleLogout godoc
//
//	@Summary		Sign out
//	@Description	Forgets the session. Safe to call when already signed out.
//	@Tags			Session
//	@Success		204
//	@Router			/v1/session [delete]
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	_ = h.Session.SignOut(r.Context())
	httpx.NoContent(w)
}

// HandleUpdateIdentity godoc
//
//	@Summary		Update own profile
//	@Description	Sends a partial update of the signed-in user.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object	true	"Fields to change"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		401		{object}	httpx.ErrorBody
//	@Router			/v1/session/identity [patch]
func (h *SessionHandler) HandleUpdateIdentity(w http.ResponseWriter, r *http.Request) {
	var changes map[string]any
	if !decodeBody(w, r, &changes) {
		return
	}

	if err := h.Session.UpdateIdentity(r.Context(), changes); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleUploadPhoto godoc
//
//	@Summary		Replace own profile photo
//	@Tags			Session
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			photo	formData	file	true	"Image"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Router			/v1/session/identity/photo [put]
func (h *SessionHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)

	file, header, err := r.FormFile("photo")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	if err := h.Session.UpdatePhoto(r.Context(), header.Filename, file); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleDeletePhoto godoc
//
//	@Summary		Remove own profile photo
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	SessionResponse
//	@Router			/v1/session/identity/photo [delete]
func (h *SessionHandler) HandleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.DeletePhoto(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	h.writeSnapshot(w)
}

// HandleDeleteAccount godoc
//
//	@Summary		Delete own account
//	@Description	Deletes the signed-in account at the backend and signs out. On failure the session is kept.
//	@Tags			Session
//	@Success		204
//	@Failure		502	{object}	httpx.ErrorBody
//	@Router			/v1/session/account [delete]
func (h *SessionHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, session.ErrNotAuthenticated)
		return
	}

	if err := h.Session.DeleteAccount(r.Context(), p.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}

// HandleReportAnnounce godoc
//
//	@Summary		Report an announce
//	@Tags			Announces
//	@Accept			json
//	@Param			id		path	string					true	"Announce ID"
//	@Param			request	body	ReportAnnounceRequest	true	"Report"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorBody	"Missing reason"
//	@Router			/v1/announces/{id}/reports [post]
func (h *SessionHandler) HandleReportAnnounce(w http.ResponseWriter, r *http.Request) {
	var req ReportAnnounceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Session.ReportAnnounce(r.Context(), r.PathValue("id"), req.Reason, req.Details); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.NoContent(w)
}
