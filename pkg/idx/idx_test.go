package idx_test

import (
	"testing"
	"time"

	"github.com/NazifToure01/AlloColis-admin/pkg/idx"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewIsAULID(t *testing.T) {
	id := idx.New()

	u, err := ulid.ParseStrict(id)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), ulid.Time(u.Time()), time.Second)
}

func TestRequestIDsSortByTime(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())
	require.Less(t, a, b)

	// Same millisecond still yields distinct, increasing ids
	now := time.Now().UTC()
	c, d := idx.NewAt(now), idx.NewAt(now)
	require.Less(t, c, d)
}
