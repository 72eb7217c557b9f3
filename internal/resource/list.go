package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

const (
	// PageSize is the number of rows per list page.
	PageSize = 10

	// SkeletonRows is the number of placeholder rows shown while a page loads.
	SkeletonRows = 5
)

// ListView is what a list screen renders.
type ListView[T any] struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Items      []T   `json:"items"`
	Loaded     bool  `json:"loaded"`
	Pending    bool  `json:"pending"`
	Skeleton   int   `json:"skeletonRows"`
	Err        error `json:"-"`
	DeleteErr  error `json:"-"`
	CanPrev    bool  `json:"canPrev"`
	CanNext    bool  `json:"canNext"`
}

// ListScreen pages through a Source. Every fetch carries a sequence number
// and only the most recently issued one may update the view.
type ListScreen[T any] struct {
	Source    Source[T]
	Confirmer Confirmer
	Logger    *slog.Logger

	mu         sync.Mutex
	seq        uint64
	page       int
	totalPages int
	items      []T
	loaded     bool
	pending    bool
	err        error
	deleteErr  error
}

func NewListScreen[T any](src Source[T], confirm Confirmer, logger *slog.Logger) *ListScreen[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListScreen[T]{
		Source:     src,
		Confirmer:  confirm,
		Logger:     logger,
		page:       1,
		totalPages: 1,
	}
}

// View returns a snapshot for rendering. An errored view carries no items.
func (s *ListScreen[T]) View() ListView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := ListView[T]{
		Page:       s.page,
		TotalPages: s.totalPages,
		Loaded:     s.loaded,
		Pending:    s.pending,
		Err:        s.err,
		DeleteErr:  s.deleteErr,
		CanPrev:    !s.pending && s.page > 1,
		CanNext:    !s.pending && s.page < s.totalPages,
	}
	if s.pending {
		v.Skeleton = SkeletonRows
	}
	if s.err == nil && !s.pending {
		v.Items = append([]T(nil), s.items...)
	}
	return v
}

// Load fetches the current page.
func (s *ListScreen[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()

	return s.fetch(ctx, page)
}

// Retry re-issues the request for the current page.
func (s *ListScreen[T]) Retry(ctx context.Context) error { return s.Load(ctx) }

// GoTo loads page. A page past the last known one triggers a refresh of the
// current page first, since the collection may have grown since it was
// counted.
func (s *ListScreen[T]) GoTo(ctx context.Context, page int) error {
	if page < 1 {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrPageOutOfRange, page, s.View().TotalPages)
	}

	if total := s.View().TotalPages; page > total {
		if err := s.Load(ctx); err != nil {
			return err
		}
		if total = s.View().TotalPages; page > total {
			return fmt.Errorf("%w: %d not in [1,%d]", ErrPageOutOfRange, page, total)
		}
	}
	return s.fetch(ctx, page)
}

// Next loads the following page. It is refused on the last page and while
// a fetch is pending.
func (s *ListScreen[T]) Next(ctx context.Context) error {
	v := s.View()
	if !v.CanNext {
		return ErrNavDisabled
	}
	return s.fetch(ctx, v.Page+1)
}

// Prev loads the preceding page. It is refused on page 1 and while a fetch
// is pending.
func (s *ListScreen[T]) Prev(ctx context.Context) error {
	v := s.View()
	if !v.CanPrev {
		return ErrNavDisabled
	}
	return s.fetch(ctx, v.Page-1)
}

// Delete removes id after confirmation and then refetches the current page,
// whether or not the delete succeeded. A failed delete is kept in the view
// and returned.
func (s *ListScreen[T]) Delete(ctx context.Context, id string) error {
	if s.Confirmer == nil {
		return ErrNoConfirmer
	}

	ok, err := s.Confirmer.Confirm(ctx, fmt.Sprintf("Delete %s?", id))
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}

	delErr := s.Source.Delete(ctx, id)
	if delErr != nil {
		delErr = fmt.Errorf("%w: %w", ErrDelete, delErr)
		s.Logger.Error("delete failed", "id", id, "error", delErr)
	}

	loadErr := s.Load(ctx)

	// The deleted row may have been the only one on the last page.
	if loadErr == nil && delErr == nil {
		v := s.View()
		if v.Page > v.TotalPages {
			loadErr = s.fetch(ctx, v.TotalPages)
		}
	}

	if delErr != nil {
		s.mu.Lock()
		s.deleteErr = delErr
		s.mu.Unlock()
		return delErr
	}
	if errors.Is(loadErr, ErrSuperseded) {
		return nil
	}
	return loadErr
}

func (s *ListScreen[T]) fetch(ctx context.Context, page int) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.page = page
	s.pending = true
	s.err = nil
	s.deleteErr = nil
	s.mu.Unlock()

	result, err := s.Source.List(ctx, page, PageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrSuperseded
	}

	s.pending = false
	if err != nil {
		s.err = err
		s.Logger.Warn("list fetch failed", "page", page, "error", err)
		return err
	}

	s.items = result.Items
	s.loaded = true
	s.totalPages = result.TotalPages(PageSize)
	return nil
}
