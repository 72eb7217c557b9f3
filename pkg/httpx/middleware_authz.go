package httpx

import (
	"net/http"
)

// RequireRole the caller must hold one of the provided roles. It must run
// after RequireSession.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[roleFromCtx(r.Context())]; !ok {
				WriteError(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
