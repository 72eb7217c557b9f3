// Package resource implements the console's screen controllers: a paginated
// list, a read-then-edit detail form and the identity verification review.
// Every backend resource plugs into them through a Source.
//
// Controllers hold no rendering code. They expose a View snapshot that the
// HTTP layer and the CLI render however they like.
package resource

import (
	"context"
	"errors"
	"net/http"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// Source is the backend collection behind a screen.
type Source[T any] interface {
	List(ctx context.Context, page, limit int) (apisdk.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, item T) error
	Delete(ctx context.Context, id string) error
}

var (
	// ErrUnsupported is returned by sources for operations the backend does
	// not offer on that resource.
	ErrUnsupported = errors.New("resource: operation not supported")

	ErrPageOutOfRange = errors.New("resource: page out of range")
	ErrNavDisabled    = errors.New("resource: navigation disabled")
	ErrSuperseded     = errors.New("resource: response superseded by a newer request")

	ErrNoConfirmer = errors.New("resource: no confirmer configured")
	ErrDeclined    = errors.New("resource: action declined")
	ErrDelete      = errors.New("resource: delete failed")

	ErrNotLoaded    = errors.New("resource: record not loaded")
	ErrNotEditing   = errors.New("resource: not in edit mode")
	ErrUnknownField = errors.New("resource: unknown field")
	ErrNotNumeric   = errors.New("resource: numeric field requires a number")
	ErrInvalidValue = errors.New("resource: invalid field value")
	ErrUpdate       = errors.New("resource: update failed")
	ErrBusy         = errors.New("resource: request already in flight")

	ErrNotReviewable   = errors.New("resource: verification is not awaiting review")
	ErrCommentRequired = errors.New("resource: a comment is required to reject")
	ErrReview          = errors.New("resource: review failed")
)

// ============================================================================
// Backend adapters
// ============================================================================

// Users exposes the account collection.
func Users(api *apisdk.Authorized) Source[apisdk.User] { return userSource{api} }

type userSource struct{ api *apisdk.Authorized }

func (s userSource) List(ctx context.Context, page, limit int) (apisdk.Page[apisdk.User], error) {
	return s.api.ListUsers(ctx, page, limit)
}

func (s userSource) Get(ctx context.Context, id string) (*apisdk.User, error) {
	return s.api.GetUser(ctx, id)
}

func (s userSource) Update(ctx context.Context, id string, u apisdk.User) error {
	_, err := s.api.UpdateUser(ctx, id, u)
	return err
}

func (s userSource) Delete(ctx context.Context, id string) error {
	return s.api.DeleteUser(ctx, id)
}

// Announces exposes the shipment listings.
func Announces(api *apisdk.Authorized) Source[apisdk.Announce] { return announceSource{api} }

type announceSource struct{ api *apisdk.Authorized }

func (s announceSource) List(ctx context.Context, page, limit int) (apisdk.Page[apisdk.Announce], error) {
	return s.api.ListAnnounces(ctx, page, limit)
}

func (s announceSource) Get(ctx context.Context, id string) (*apisdk.Announce, error) {
	return s.api.GetAnnounce(ctx, id)
}

func (s announceSource) Update(ctx context.Context, id string, a apisdk.Announce) error {
	return s.api.UpdateAnnounce(ctx, id, a)
}

func (s announceSource) Delete(ctx context.Context, id string) error {
	return s.api.DeleteAnnounce(ctx, id)
}

// Verifications exposes identity verifications. They change only through
// review, never through a generic update.
func Verifications(api *apisdk.Authorized) Source[apisdk.Verification] {
	return verificationSource{api}
}

type verificationSource struct{ api *apisdk.Authorized }

func (s verificationSource) List(ctx context.Context, page, limit int) (apisdk.Page[apisdk.Verification], error) {
	return s.api.ListVerifications(ctx, page, limit)
}

func (s verificationSource) Get(ctx context.Context, id string) (*apisdk.Verification, error) {
	return s.api.GetVerification(ctx, id)
}

func (verificationSource) Update(context.Context, string, apisdk.Verification) error {
	return ErrUnsupported
}

func (verificationSource) Delete(context.Context, string) error { return ErrUnsupported }

// Reports exposes report summaries. The backend returns them all at once,
// so pages are cut locally.
func Reports(api *apisdk.Authorized) Source[apisdk.ReportSummary] { return reportSource{api} }

type reportSource struct{ api *apisdk.Authorized }

func (s reportSource) List(ctx context.Context, page, limit int) (apisdk.Page[apisdk.ReportSummary], error) {
	all, err := s.api.ListReports(ctx)
	if err != nil {
		return apisdk.Page[apisdk.ReportSummary]{}, err
	}
	return paginate(all, page, limit), nil
}

func (s reportSource) Get(ctx context.Context, id string) (*apisdk.ReportSummary, error) {
	all, err := s.api.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id || all[i].Announce.ID == id {
			return &all[i], nil
		}
	}
	return nil, &apisdk.APIError{StatusCode: http.StatusNotFound, Message: "report not found"}
}

func (reportSource) Update(context.Context, string, apisdk.ReportSummary) error {
	return ErrUnsupported
}

func (reportSource) Delete(context.Context, string) error { return ErrUnsupported }

// paginate cuts one 1-based page out of items.
func paginate[T any](items []T, page, limit int) apisdk.Page[T] {
	out := apisdk.Page[T]{Total: len(items)}
	if page < 1 || limit <= 0 {
		return out
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return out
	}
	end := min(start+limit, len(items))
	out.Items = items[start:end]
	return out
}
