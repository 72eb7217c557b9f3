package http

import (
	"errors"
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
)

const msgNetwork = "Le service est momentanément indisponible. Veuillez réessayer."

// writeError maps err onto a status code and writes it as {"message": ...}
// tagged with the request id. Backend messages are passed through verbatim.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := classify(err)

	log := slogx.FromContext(r.Context())
	if code >= http.StatusInternalServerError {
		log.Error("request failed", "status", code, "error", err)
	} else {
		log.Info("request rejected", "status", code, "error", err)
	}

	httpx.WriteJSON(w, code, httpx.ErrorBody{Message: msg, RequestID: slogx.RequestID(r.Context())})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated), errors.Is(err, session.ErrSessionExpired):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, session.ErrAccessDenied):
		return http.StatusForbidden, "access denied"
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized, apisdk.Message(err)
	case errors.Is(err, apisdk.ErrNetwork):
		return http.StatusBadGateway, msgNetwork
	case errors.Is(err, apisdk.ErrAlreadySubscribed):
		return http.StatusConflict, "email already subscribed"

	case errors.Is(err, resource.ErrPageOutOfRange),
		errors.Is(err, resource.ErrUnknownField),
		errors.Is(err, resource.ErrNotNumeric),
		errors.Is(err, resource.ErrInvalidValue),
		errors.Is(err, resource.ErrCommentRequired),
		errors.Is(err, session.ErrReasonRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, resource.ErrNotReviewable), errors.Is(err, resource.ErrSuperseded), errors.Is(err, resource.ErrBusy):
		return http.StatusConflict, err.Error()
	case errors.Is(err, resource.ErrUnsupported):
		return http.StatusMethodNotAllowed, err.Error()
	}

	if code := apisdk.StatusCode(err); code != 0 {
		if code >= http.StatusInternalServerError {
			return http.StatusBadGateway, apisdk.Message(err)
		}
		return code, apisdk.Message(err)
	}

	if errors.Is(err, apisdk.ErrUnexpectedResponse) {
		return http.StatusBadGateway, "unexpected response from backend"
	}
	return http.StatusInternalServerError, "internal server error"
}
