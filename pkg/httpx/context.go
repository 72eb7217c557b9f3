package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyRole   ctxKey = "role"
)

// Principal identifies the signed-in operator behind a request.
type Principal struct {
	UserID string
	Role   string
}

// WithPrincipal stores p in ctx for downstream handlers.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, CtxKeyRole, p.Role)
	return ctx
}

// PrincipalFromContext returns the principal injected by RequireSession.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	id, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || id == "" {
		return Principal{}, false
	}
	role, _ := ctx.Value(CtxKeyRole).(string)
	return Principal{UserID: id, Role: role}, true
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
