package httpx

import (
	"context"
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
)

// PrincipalLookup reports who is signed in, if anyone.
type PrincipalLookup func(ctx context.Context) (Principal, bool)

// RequireSession rejects requests with 401 when lookup reports no active
// session and injects the principal into the request context otherwise.
func RequireSession(lookup PrincipalLookup) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			p, ok := lookup(ctx)
			if !ok {
				slogx.FromContext(ctx).Debug("request without active session")
				WriteError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, p)))
		})
	}
}
