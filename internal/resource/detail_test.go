package resource

import (
	"context"
	"errors"
	"testing"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func loadedDetail(t *testing.T, src *memSource, id string) *DetailScreen[row] {
	t.Helper()

	s := NewDetailScreen[row](src, slogx.Discard())
	require.NoError(t, s.Load(context.Background(), id))
	return s
}

func TestDetailLoad(t *testing.T) {
	t.Parallel()

	t.Run("read only after load", func(t *testing.T) {
		t.Parallel()

		s := loadedDetail(t, newMemSource(3), "r02")

		v := s.View()
		require.Equal(t, "r02", v.ID)
		require.Equal(t, "Row 2", v.Record.Name)
		require.False(t, v.Skeleton)
		require.False(t, v.Editing)
		require.True(t, v.ReadOnly())
		require.Nil(t, v.Draft)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()

		src := newMemSource(3)
		src.getErr = errors.New("gone")
		s := NewDetailScreen[row](src, slogx.Discard())

		require.Error(t, s.Load(context.Background(), "r02"))
		require.Error(t, s.View().Err)
		require.ErrorIs(t, s.StartEdit(), ErrNotLoaded)
	})
}

func TestDetailSetField(t *testing.T) {
	t.Parallel()

	s := loadedDetail(t, newMemSource(3), "r01")
	require.ErrorIs(t, s.SetField("name", "x"), ErrNotEditing)

	require.NoError(t, s.StartEdit())
	require.False(t, s.View().ReadOnly())

	tests := []struct {
		name  string
		field string
		value any
		err   error
	}{
		{name: "string", field: "name", value: "Renamed"},
		{name: "omitempty string", field: "note", value: "fragile"},
		{name: "float from text", field: "price", value: "12.5"},
		{name: "int from text", field: "seats", value: " 3 "},
		{name: "bool from text", field: "active", value: "true"},
		{name: "float rejects text", field: "price", value: "cheap", err: ErrNotNumeric},
		{name: "int rejects fraction", field: "seats", value: "2.5", err: ErrNotNumeric},
		{name: "int rejects bool", field: "seats", value: true, err: ErrNotNumeric},
		{name: "string rejects number", field: "name", value: 42, err: ErrInvalidValue},
		{name: "unknown field", field: "colour", value: "red", err: ErrUnknownField},
		{name: "unexported field", field: "secret", value: "x", err: ErrUnknownField},
	}

	for _, tt := range tests {
		err := s.SetField(tt.field, tt.value)
		if tt.err != nil {
			require.ErrorIs(t, err, tt.err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}

	v := s.View()
	require.Equal(t, row{ID: "r01", Name: "Renamed", Note: "fragile", Price: 12.5, Seats: 3, Active: true}, *v.Draft)

	// The record itself is untouched until submit.
	require.Equal(t, "Row 1", v.Record.Name)
}

func TestDetailCancelRestores(t *testing.T) {
	t.Parallel()

	s := loadedDetail(t, newMemSource(3), "r01")
	require.NoError(t, s.StartEdit())
	require.NoError(t, s.SetField("name", "Draft"))

	s.Cancel()

	v := s.View()
	require.False(t, v.Editing)
	require.Nil(t, v.Draft)
	require.Equal(t, "Row 1", v.Record.Name)

	// A new edit starts from the record again.
	require.NoError(t, s.StartEdit())
	require.Equal(t, "Row 1", s.View().Draft.Name)
}

func TestDetailSubmit(t *testing.T) {
	t.Parallel()

	t.Run("not editing", func(t *testing.T) {
		t.Parallel()

		s := loadedDetail(t, newMemSource(1), "r01")
		require.ErrorIs(t, s.Submit(context.Background()), ErrNotEditing)
	})

	t.Run("success reloads", func(t *testing.T) {
		t.Parallel()

		src := newMemSource(3)
		s := loadedDetail(t, src, "r01")
		require.NoError(t, s.StartEdit())
		require.NoError(t, s.SetField("price", "9"))

		require.NoError(t, s.Submit(context.Background()))

		require.Len(t, src.updates, 1)
		require.Equal(t, row{ID: "r01", Name: "Row 1", Price: 9}, src.updates[0])

		_, get, _ := src.counts()
		require.Equal(t, 2, get)

		v := s.View()
		require.False(t, v.Editing)
		require.Nil(t, v.Draft)
		require.Equal(t, 9.0, v.Record.Price)
	})

	t.Run("failure keeps draft", func(t *testing.T) {
		t.Parallel()

		boom := &apisdk.APIError{StatusCode: 400, Message: "Prix invalide"}
		src := newMemSource(3)
		src.updateErr = boom
		s := loadedDetail(t, src, "r01")
		require.NoError(t, s.StartEdit())
		require.NoError(t, s.SetField("price", "-1"))

		err := s.Submit(context.Background())
		require.ErrorIs(t, err, ErrUpdate)
		require.Equal(t, "Prix invalide", apisdk.Message(err))

		v := s.View()
		require.True(t, v.Editing)
		require.Equal(t, -1.0, v.Draft.Price)
		require.ErrorIs(t, v.SubmitErr, ErrUpdate)
		require.Equal(t, 0.0, v.Record.Price)

		_, get, _ := src.counts()
		require.Equal(t, 1, get)
	})
}

func TestSetFieldOnAnnounce(t *testing.T) {
	t.Parallel()

	a := apisdk.Announce{ID: "a1", Status: apisdk.AnnounceInProgress, Price: 10}

	got, err := setField(a, "price", "15.5")
	require.NoError(t, err)
	require.Equal(t, 15.5, got.Price)

	got, err = setField(got, "title", "Dakar - Paris")
	require.NoError(t, err)
	require.Equal(t, "Dakar - Paris", got.Title)
	require.Equal(t, "a1", got.ID)
	require.Equal(t, apisdk.AnnounceInProgress, got.Status)

	_, err = setField(got, "availability", "beaucoup")
	require.ErrorIs(t, err, ErrNotNumeric)
}
