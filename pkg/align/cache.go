// 19 Oct 2026

package align

import (
	"bytes"
)

// key is a suffix pair given as offsets into the two sequences the
// cache is bound to.
type key struct {
	i, j int
}

// Stats counts what happened to a cache.
type Stats struct {
	Hits   int
	Misses int
	Stores int
}

// Cache holds the alignment of every suffix pair seen so far for one
// pair of sequences. Entries are written once and never invalidated.
// The cache owns what it holds. Store keeps a copy and Lookup hands
// out a copy, so callers may extend results freely.
// A Cache is not safe for concurrent use.
type Cache struct {
	a, b    []byte // the pair offsets refer to
	entries map[key]Result
	stats   Stats
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[key]Result)}
}

// Bind ties the cache to sequences a and b. Binding to the pair it
// already holds keeps every entry, so repeated calls are served from
// the cache. Any other pair empties it. Counters are kept.
func (c *Cache) Bind(a, b []byte) {
	if bytes.Equal(c.a, a) && bytes.Equal(c.b, b) {
		return
	}
	c.a, c.b = bytes.Clone(a), bytes.Clone(b)
	c.entries = make(map[key]Result)
}

// Lookup returns a private copy of the result for a[i:] and b[j:].
func (c *Cache) Lookup(i, j int) (Result, bool) {
	r, ok := c.entries[key{i, j}]
	if !ok {
		c.stats.Misses++
		return Result{}, false
	}
	c.stats.Hits++
	return r.Clone(), true
}

// Store saves a copy of r as the result for a[i:] and b[j:].
func (c *Cache) Store(i, j int, r Result) {
	c.entries[key{i, j}] = r.Clone()
	c.stats.Stores++
}

// Len is the number of suffix pairs held.
func (c *Cache) Len() int { return len(c.entries) }

// Stats returns the counters since the cache was made.
func (c *Cache) Stats() Stats { return c.stats }
