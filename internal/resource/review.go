package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// Reviewer records the outcome of an identity verification.
type Reviewer interface {
	ApproveVerification(ctx context.Context, id, comment string) error
	RejectVerification(ctx context.Context, id, comment string) error
}

// ReviewScreen is the verification detail page with its approve and reject
// actions.
type ReviewScreen struct {
	*DetailScreen[apisdk.Verification]

	Reviewer  Reviewer
	Navigator session.Navigator

	mu      sync.Mutex
	comment string
}

func NewReviewScreen(src Source[apisdk.Verification], reviewer Reviewer, nav session.Navigator, logger *slog.Logger) *ReviewScreen {
	if nav == nil {
		nav = session.NavigatorFunc(func(session.Route) {})
	}
	return &ReviewScreen{
		DetailScreen: NewDetailScreen(src, logger),
		Reviewer:     reviewer,
		Navigator:    nav,
	}
}

// Load fetches the verification and prefills the comment with the one
// already on record.
func (s *ReviewScreen) Load(ctx context.Context, id string) error {
	if err := s.DetailScreen.Load(ctx, id); err != nil {
		return err
	}

	rec, err := s.Record()
	if err != nil {
		return err
	}
	s.SetComment(rec.AdminComment)
	return nil
}

func (s *ReviewScreen) SetComment(c string) {
	s.mu.Lock()
	s.comment = c
	s.mu.Unlock()
}

func (s *ReviewScreen) Comment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comment
}

// CanReview reports whether approve and reject are enabled.
func (s *ReviewScreen) CanReview() bool {
	rec, err := s.Record()
	return err == nil && rec.Reviewable()
}

// Approve accepts the documents. The comment is optional.
func (s *ReviewScreen) Approve(ctx context.Context) error {
	rec, err := s.reviewable()
	if err != nil {
		return err
	}

	if err := s.Reviewer.ApproveVerification(ctx, rec.ID, strings.TrimSpace(s.Comment())); err != nil {
		return fmt.Errorf("%w: %w", ErrReview, err)
	}

	s.Logger.Info("verification approved", "verification_id", rec.ID)
	s.Navigator.Navigate(session.RouteVerifications)
	return nil
}

// Reject refuses the documents. A comment explaining why is required and
// nothing is sent without one.
func (s *ReviewScreen) Reject(ctx context.Context) error {
	rec, err := s.reviewable()
	if err != nil {
		return err
	}

	comment := strings.TrimSpace(s.Comment())
	if comment == "" {
		return ErrCommentRequired
	}

	if err := s.Reviewer.RejectVerification(ctx, rec.ID, comment); err != nil {
		return fmt.Errorf("%w: %w", ErrReview, err)
	}

	s.Logger.Info("verification rejected", "verification_id", rec.ID)
	s.Navigator.Navigate(session.RouteVerifications)
	return nil
}

func (s *ReviewScreen) reviewable() (apisdk.Verification, error) {
	rec, err := s.Record()
	if err != nil {
		return rec, err
	}
	if !rec.Reviewable() {
		return rec, fmt.Errorf("%w: status is %q", ErrNotReviewable, rec.Status)
	}
	return rec, nil
}
