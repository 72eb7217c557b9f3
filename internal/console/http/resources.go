package http

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/NazifToure01/AlloColis-admin/internal/resource"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
)

// listHandler serves one list screen. The console has a single operator,
// so the screen state lives here for the life of the process.
type listHandler[T any] struct {
	Screen *resource.ListScreen[T]
	Badge  badge[T]
}

func (h *listHandler[T]) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	var err error
	if page == h.Screen.View().Page {
		err = h.Screen.Load(ctx)
	} else {
		err = h.Screen.GoTo(ctx, page)
	}
	if err != nil && !errors.Is(err, resource.ErrSuperseded) {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderList(h.Screen.View(), h.Badge))
}

func (h *listHandler[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Screen.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, renderList(h.Screen.View(), h.Badge))
}

// detailHandler serves the detail and edit form of one resource. Each
// request runs its own screen.
type detailHandler[T any] struct {
	Source resource.Source[T]
	Badge  badge[T]
}

func (h *detailHandler[T]) screen(r *http.Request) *resource.DetailScreen[T] {
	return resource.NewDetailScreen(h.Source, logger(r))
}

func (h *detailHandler[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	s := h.screen(r)
	if err := s.Load(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	rec, _ := s.Record()
	httpx.WriteJSON(w, http.StatusOK, renderRow(rec, h.Badge))
}

// handleUpdate applies a JSON object of field changes to the record and
// submits the result.
func (h *detailHandler[T]) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var changes map[string]any
	if !decodeBody(w, r, &changes) {
		return
	}

	ctx := r.Context()
	s := h.screen(r)
	if err := s.Load(ctx, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.StartEdit(); err != nil {
		writeError(w, r, err)
		return
	}

	// Sorted so the first bad field reported is stable
	names := make([]string, 0, len(changes))
	for name := range changes {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := s.SetField(name, changes[name]); err != nil {
			writeError(w, r, err)
			return
		}
	}

	if err := s.Submit(ctx); err != nil {
		writeError(w, r, err)
		return
	}

	rec, _ := s.Record()
	httpx.WriteJSON(w, http.StatusOK, renderRow(rec, h.Badge))
}

func logger(r *http.Request) *slog.Logger { return slogx.FromContext(r.Context()) }
