package resource

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// row is a small record with one field of each kind the forms deal with.
type row struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Note   string  `json:"note,omitempty"`
	Price  float64 `json:"price"`
	Seats  int     `json:"seats"`
	Active bool    `json:"active"`
	secret string
}

// memSource is an in-memory Source with call counters and failure knobs.
type memSource struct {
	mu   sync.Mutex
	rows []row

	listCalls   int
	getCalls    int
	deleteCalls int
	updates     []row

	listErr   error
	getErr    error
	updateErr error
	deleteErr error

	// gate, when set, is called by List before answering.
	gate func(page int)
}

func newMemSource(n int) *memSource {
	s := &memSource{}
	for i := range n {
		s.rows = append(s.rows, row{ID: fmt.Sprintf("r%02d", i+1), Name: fmt.Sprintf("Row %d", i+1)})
	}
	return s
}

func (s *memSource) List(_ context.Context, page, limit int) (apisdk.Page[row], error) {
	s.mu.Lock()
	s.listCalls++
	gate := s.gate
	err := s.listErr
	rows := slices.Clone(s.rows)
	s.mu.Unlock()

	if gate != nil {
		gate(page)
	}
	if err != nil {
		return apisdk.Page[row]{}, err
	}
	return paginate(rows, page, limit), nil
}

func (s *memSource) Get(_ context.Context, id string) (*row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, r := range s.rows {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *memSource) Update(_ context.Context, id string, r row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updates = append(s.updates, r)
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i] = r
		}
	}
	return nil
}

func (s *memSource) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.rows = slices.DeleteFunc(s.rows, func(r row) bool { return r.ID == id })
	return nil
}

func (s *memSource) counts() (list, get, del int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls, s.getCalls, s.deleteCalls
}

func (s *memSource) set(fn func(s *memSource)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}
