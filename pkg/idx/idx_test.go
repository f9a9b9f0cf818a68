package idx

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNewIsUniqueAndSortable(t *testing.T) {
	t.Parallel()

	prev := New()
	for range 100 {
		id := New()
		require.NotEqual(t, prev, id)
		require.True(t, prev.String() < id.String(), "ids should be monotonically increasing")
		prev = id
	}
}

func TestNewIsWellFormed(t *testing.T) {
	t.Parallel()

	id := New()
	_, err := ulid.ParseStrict(id.String())
	require.NoError(t, err)
}
