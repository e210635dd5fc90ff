// 19 Oct 2026

package align

import (
	"context"

	"cloudeng.io/logging/ctxlog"
)

// DefaultMaxDepth is the largest len(a)+len(b) handed to the recursion.
// Beyond it, Align fills a Table instead. Memory, rather than stack,
// is what runs out first, since every cached suffix pair holds its
// own rows.
const DefaultMaxDepth = 300

// Aligner computes alignments, consulting and filling its cache.
type Aligner struct {
	cache    *Cache
	maxDepth int
}

// Option changes an Aligner.
type Option func(*Aligner)

// WithCache makes the aligner use c, for example to keep results
// between calls on the same pair.
func WithCache(c *Cache) Option {
	return func(al *Aligner) { al.cache = c }
}

// WithMaxDepth sets the limit on len(a)+len(b) for the recursion.
// Values below one are ignored.
func WithMaxDepth(n int) Option {
	return func(al *Aligner) {
		if n > 0 {
			al.maxDepth = n
		}
	}
}

// New returns an Aligner with a fresh cache.
func New(opts ...Option) *Aligner {
	al := &Aligner{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(al)
	}
	if al.cache == nil {
		al.cache = NewCache()
	}
	return al
}

// Cache returns the aligner's cache.
func (al *Aligner) Cache() *Cache { return al.cache }

// Align returns an optimal global alignment of a and b. It never fails.
func (al *Aligner) Align(ctx context.Context, a, b []byte) Result {
	var r Result
	engine := "memo"
	if len(a)+len(b) > al.maxDepth {
		engine = "table"
		r = NewTable(a, b).Fill()
	} else {
		al.cache.Bind(a, b)
		r = al.recurse(a, b, 0, 0)
	}
	st := al.cache.Stats()
	ctxlog.Logger(ctx).Debug("aligned",
		"engine", engine, "len1", len(a), "len2", len(b), "score", r.Score,
		"cached", al.cache.Len(), "hits", st.Hits, "misses", st.Misses)
	return r
}

// recurse aligns suffixes a[i:] and b[j:]. The three children of a
// node are (i+1, j+1), (i, j+1) and (i+1, j).
// On equal scores the earlier candidate stays, so a diagonal mismatch
// beats a gap in a, which beats a gap in b.
func (al *Aligner) recurse(a, b []byte, i, j int) Result {
	if r, ok := al.cache.Lookup(i, j); ok {
		return r
	}
	if i == len(a) || j == len(b) {
		best := edge(a[i:], b[j:])
		al.cache.Store(i, j, best)
		return best
	}
	h1, h2 := a[i], b[j]

	best := al.recurse(a, b, i+1, j+1)
	if h1 == h2 { // Lining up equal heads is never worse, so stop here.
		best.Score += matchScr
		best.prepend(h1, h2, markMatch, markNone)
		al.cache.Store(i, j, best)
		return best
	}
	best.Score += mismScr
	best.prepend(h1, h2, markNone, markMism)

	if c := al.recurse(a, b, i, j+1); c.Score+gapScr > best.Score { // b's head against a gap
		c.Score += gapScr
		c.prepend(Gap, h2, markNone, markGap)
		best = c
	}
	if c := al.recurse(a, b, i+1, j); c.Score+gapScr > best.Score { // a's head against a gap
		c.Score += gapScr
		c.prepend(h1, Gap, markNone, markGap)
		best = c
	}
	al.cache.Store(i, j, best)
	return best
}

// ComputeOptimalAlignment aligns a and b with a fresh Aligner.
func ComputeOptimalAlignment(a, b []byte) Result {
	return New().Align(context.Background(), a, b)
}
