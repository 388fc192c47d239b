package rank

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMovesVertexBetweenBuckets(t *testing.T) {
	tb := New()
	tb.Set("a", Of(0))
	tb.Set("a", Of(1))

	r, ok := tb.Rank("a")
	require.True(t, ok)
	assert.Equal(t, Of(1), r)
	assert.Empty(t, tb.Nodes(Of(0)))
	assert.Equal(t, []string{"a"}, tb.Nodes(Of(1)))
}

func TestHalfRanks(t *testing.T) {
	h := Half(Of(0))
	assert.True(t, h.IsHalf())
	assert.Equal(t, 0.5, h.Float64())
}

func TestMinMaxRank(t *testing.T) {
	tb := New()
	tb.Set("a", Of(2))
	tb.Set("b", Of(0))
	tb.Set("c", Of(5))

	min, ok := tb.MinRank()
	require.True(t, ok)
	assert.Equal(t, Of(0), min)

	max, ok := tb.MaxRank()
	require.True(t, ok)
	assert.Equal(t, Of(5), max)
}

func TestDeletePrunesEmptyBucket(t *testing.T) {
	tb := New()
	tb.Set("a", Of(1))
	tb.Delete("a")
	if diff := cmp.Diff([]string{}, tb.Nodes(Of(1))); diff != "" {
		t.Fatalf("bucket not pruned (-want +got):\n%s", diff)
	}
	_, ok := tb.Rank("a")
	assert.False(t, ok)
}

func TestEmptyTableHasNoExtremes(t *testing.T) {
	tb := New()
	_, ok := tb.MinRank()
	assert.False(t, ok)
}
