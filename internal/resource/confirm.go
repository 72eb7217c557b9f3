package resource

import "context"

// Confirmer asks the operator to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Confirmed approves everything. The HTTP API uses it because the browser
// already asked before sending DELETE.
var Confirmed Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })
