// 19 Oct 2026

package align_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/seqalign/pkg/align"
)

// TestCacheCopies mutates what Lookup hands back and checks the cache
// does not see it.
func TestCacheCopies(t *testing.T) {
	c := align.NewCache()
	c.Bind([]byte("CGAT"), []byte("AGT"))
	r := align.ComputeOptimalAlignment([]byte("GAT"), []byte("GT"))
	c.Store(1, 1, r)

	r.Row1[0] = 'X' // the cache took its own copy
	got, ok := c.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, "GAT", string(got.Row1))

	got.Row1[0] = 'Y'
	got.Score = 99
	again, ok := c.Lookup(1, 1)
	require.True(t, ok)
	assert.Equal(t, byte('G'), again.Row1[0])
	assert.NotEqual(t, 99, again.Score)

	_, ok = c.Lookup(0, 1)
	assert.False(t, ok)

	st := c.Stats()
	assert.Equal(t, align.Stats{Hits: 2, Misses: 1, Stores: 1}, st)
}

// TestCacheRepeat aligns the same pair twice with one cache. The
// second call must be served from the cache and give the same answer.
func TestCacheRepeat(t *testing.T) {
	ctx := context.Background()
	s1, s2 := []byte("GATTACAGATTACA"), []byte("GCATGCUGCATGCU")
	c := align.NewCache()
	al := align.New(align.WithCache(c))

	first := al.Align(ctx, s1, s2)
	n := c.Len()
	assert.LessOrEqual(t, n, (len(s1)+1)*(len(s2)+1))
	misses := c.Stats().Misses

	second := al.Align(ctx, s1, s2)
	assert.Equal(t, first, second)
	assert.Equal(t, n, c.Len(), "nothing new to compute")
	assert.Equal(t, misses, c.Stats().Misses)
}

// TestCacheSeeded fills the cache with correct results for some
// suffix pairs first. The answer for the whole pair must not change.
func TestCacheSeeded(t *testing.T) {
	ctx := context.Background()
	for _, p := range randPairs(t, 50, 2, 25) {
		s1, s2 := p[0], p[1]
		want := align.ComputeOptimalAlignment(s1, s2)

		c := align.NewCache()
		c.Bind(s1, s2)
		for _, off := range [][2]int{{1, len(s2) / 2}, {len(s1) / 2, 0}, {len(s1), 1}} {
			i, j := off[0], off[1]
			c.Store(i, j, align.ComputeOptimalAlignment(s1[i:], s2[j:]))
		}
		got := align.New(align.WithCache(c)).Align(ctx, s1, s2)
		require.Equal(t, want, got, "%s %s", s1, s2)
	}
}

// TestCacheRebind runs a second pair through the same cache. Offsets
// belong to one pair, so the old entries must go.
func TestCacheRebind(t *testing.T) {
	ctx := context.Background()
	s1, s2 := []byte("CCGATTACA"), []byte("TTGCATGCA")
	t1, t2 := []byte("AGATTACA"), []byte("GCATGCA")
	al := align.New()
	r1 := al.Align(ctx, s1, s2)
	r2 := al.Align(ctx, t1, t2)
	assert.Equal(t, align.ComputeOptimalAlignment(s1, s2), r1)
	assert.Equal(t, align.ComputeOptimalAlignment(t1, t2), r2)

	fresh := align.New()
	fresh.Align(ctx, t1, t2)
	assert.Equal(t, fresh.Cache().Len(), al.Cache().Len(), "nothing left from the first pair")

	n := al.Cache().Len()
	al.Align(ctx, append([]byte{}, t1...), append([]byte{}, t2...))
	assert.Equal(t, n, al.Cache().Len(), "same contents keep the entries")
}
