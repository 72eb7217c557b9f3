package resource

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// DetailView is what a detail screen renders. While Skeleton is set the
// record is still loading and the form layout should be drawn empty.
type DetailView[T any] struct {
	ID        string `json:"id"`
	Record    *T     `json:"record,omitempty"`
	Draft     *T     `json:"draft,omitempty"`
	Skeleton  bool   `json:"skeleton"`
	Editing   bool   `json:"editing"`
	Saving    bool   `json:"saving"`
	Err       error  `json:"-"`
	SubmitErr error  `json:"-"`
}

// ReadOnly reports whether the form fields are disabled.
func (v DetailView[T]) ReadOnly() bool { return !v.Editing || v.Saving }

// DetailScreen shows one record read-only and edits a draft of it on demand.
type DetailScreen[T any] struct {
	Source Source[T]
	Logger *slog.Logger

	mu        sync.Mutex
	seq       uint64
	id        string
	record    *T
	draft     *T
	pending   bool
	editing   bool
	saving    bool
	err       error
	submitErr error
}

func NewDetailScreen[T any](src Source[T], logger *slog.Logger) *DetailScreen[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailScreen[T]{Source: src, Logger: logger}
}

// View returns a snapshot for rendering.
func (s *DetailScreen[T]) View() DetailView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := DetailView[T]{
		ID:        s.id,
		Skeleton:  s.pending,
		Editing:   s.editing,
		Saving:    s.saving,
		Err:       s.err,
		SubmitErr: s.submitErr,
	}
	if s.record != nil {
		r := *s.record
		v.Record = &r
	}
	if s.draft != nil {
		d := *s.draft
		v.Draft = &d
	}
	return v
}

// Load fetches record id. Loading a different id drops any edit in progress.
func (s *DetailScreen[T]) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if id != s.id {
		s.record = nil
		s.editing = false
		s.draft = nil
	}
	s.id = id
	s.pending = true
	s.err = nil
	s.mu.Unlock()

	rec, err := s.Source.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return ErrSuperseded
	}

	s.pending = false
	if err != nil {
		s.err = err
		s.Logger.Warn("detail fetch failed", "id", id, "error", err)
		return err
	}
	s.record = rec
	return nil
}

// Record returns a copy of the loaded record.
func (s *DetailScreen[T]) Record() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		var zero T
		return zero, ErrNotLoaded
	}
	return *s.record, nil
}

// StartEdit makes the form mutable with a draft copy of the record.
func (s *DetailScreen[T]) StartEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil || s.pending {
		return ErrNotLoaded
	}
	if s.editing {
		return nil
	}

	d := *s.record
	s.draft = &d
	s.editing = true
	s.submitErr = nil
	return nil
}

// Cancel discards the draft and returns to read-only.
func (s *DetailScreen[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editing = false
	s.draft = nil
	s.submitErr = nil
}

// SetField replaces one field of the draft, addressed by its JSON name.
func (s *DetailScreen[T]) SetField(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing || s.draft == nil {
		return ErrNotEditing
	}

	next, err := setField(*s.draft, name, value)
	if err != nil {
		return err
	}
	s.draft = &next
	return nil
}

// Submit sends the whole draft. On success the screen leaves edit mode and
// reloads; on failure it stays in edit mode with the draft intact.
func (s *DetailScreen[T]) Submit(ctx context.Context) error {
	s.mu.Lock()
	if !s.editing || s.draft == nil {
		s.mu.Unlock()
		return ErrNotEditing
	}
	if s.saving {
		s.mu.Unlock()
		return ErrBusy
	}
	id := s.id
	draft := *s.draft
	s.saving = true
	s.submitErr = nil
	s.mu.Unlock()

	err := s.Source.Update(ctx, id, draft)

	s.mu.Lock()
	s.saving = false
	if err != nil {
		s.submitErr = fmt.Errorf("%w: %w", ErrUpdate, err)
		err = s.submitErr
		s.mu.Unlock()
		s.Logger.Warn("update failed", "id", id, "error", err)
		return err
	}
	s.editing = false
	s.draft = nil
	s.mu.Unlock()

	return s.Load(ctx, id)
}
