// 19 Oct 2026

// Package align computes an optimal global alignment of two sequences
// under a fixed linear score: +1 for a match, -1 for a mismatch and -2
// for a residue opposite a gap.
//
// The recursion walks suffixes of the two input sequences. Every suffix
// pair is computed once and kept in a Cache, so the call tree collapses
// to a DAG with at most (len(a)+1)*(len(b)+1) nodes. For long input,
// the same DAG is filled iteratively by a Table.
package align

import (
	"bytes"
	"fmt"

	"cloudeng.io/errors"
)

// Gap is written into a row wherever the other sequence contributes
// a residue with nothing opposite.
const Gap byte = ' '

// Column scores. The early return on a match in the recursion is only
// valid for these values, so they are not configurable.
const (
	matchScr = 1
	mismScr  = -1
	gapScr   = -2
)

// Column marks. The match line holds markMatch or markNone, the
// penalty line holds the size of the penalty.
const (
	markNone  byte = ' '
	markMatch byte = '1'
	markMism  byte = '1'
	markGap   byte = '2'
)

var (
	ErrShape   = errors.New("rows and marks differ in length")
	ErrMark    = errors.New("bad column mark")
	ErrScore   = errors.New("marks do not add up to score")
	ErrResidue = errors.New("row does not reproduce input")
)

// Result is one optimal alignment of two sequences and its score.
// Row1, Row2, Match and Penalty always have the same length.
type Result struct {
	Score   int
	Row1    []byte // left sequence with gaps
	Row2    []byte // right sequence with gaps
	Match   []byte // '1' where the column scored a match
	Penalty []byte // '1' mismatch, '2' gap, ' ' otherwise
}

// dup copies a byte slice. The result is never nil.
func dup(s []byte) []byte {
	return append(make([]byte, 0, len(s)), s...)
}

// push returns a new slice with c in front of s. s is not touched.
func push(c byte, s []byte) []byte {
	t := make([]byte, len(s)+1)
	t[0] = c
	copy(t[1:], s)
	return t
}

// Len is the number of columns.
func (r *Result) Len() int { return len(r.Row1) }

// Clone returns a deep copy of r. Nothing in the copy is shared with r.
func (r *Result) Clone() Result {
	return Result{
		Score:   r.Score,
		Row1:    dup(r.Row1),
		Row2:    dup(r.Row2),
		Match:   dup(r.Match),
		Penalty: dup(r.Penalty),
	}
}

// prepend puts a new column at the front of the alignment.
func (r *Result) prepend(c1, c2, match, pnlty byte) {
	r.Row1 = push(c1, r.Row1)
	r.Row2 = push(c2, r.Row2)
	r.Match = push(match, r.Match)
	r.Penalty = push(pnlty, r.Penalty)
}

// edge is the only alignment possible when one side is empty. Every
// residue of the other side sits opposite a gap.
func edge(a, b []byte) Result {
	n := len(a) + len(b) // one of them is zero
	gaps := bytes.Repeat([]byte{Gap}, n)
	r := Result{
		Score:   gapScr * n,
		Match:   bytes.Repeat([]byte{markNone}, n),
		Penalty: bytes.Repeat([]byte{markGap}, n),
	}
	if len(a) == 0 {
		r.Row1, r.Row2 = gaps, dup(b)
	} else {
		r.Row1, r.Row2 = dup(a), gaps
	}
	return r
}

// stripGaps returns the residues of a row.
func stripGaps(row []byte) []byte {
	s := make([]byte, 0, len(row))
	for _, c := range row {
		if c != Gap {
			s = append(s, c)
		}
	}
	return s
}

// colScore is what a single column contributes, read from its marks.
func colScore(match, pnlty byte) (int, bool) {
	scr := 0
	switch match {
	case markMatch:
		scr += matchScr
	case markNone:
	default:
		return 0, false
	}
	switch pnlty {
	case markNone:
	case markMism:
		scr += mismScr
	case markGap:
		scr += gapScr
	default:
		return 0, false
	}
	return scr, true
}

// Verify checks r against the sequences it claims to align. It reports
// every broken property, not just the first.
func (r *Result) Verify(a, b []byte) error {
	n := len(r.Row1)
	if len(r.Row2) != n || len(r.Match) != n || len(r.Penalty) != n {
		return fmt.Errorf("%w: row1 %d row2 %d match %d penalty %d",
			ErrShape, n, len(r.Row2), len(r.Match), len(r.Penalty))
	}
	errs := &errors.M{}
	sum := 0
	for k := 0; k < n; k++ {
		scr, ok := colScore(r.Match[k], r.Penalty[k])
		if !ok {
			errs.Append(fmt.Errorf("%w: column %d has %q %q", ErrMark, k, r.Match[k], r.Penalty[k]))
			continue
		}
		c1, c2 := r.Row1[k], r.Row2[k]
		var want int
		switch {
		case c1 == Gap || c2 == Gap:
			want = gapScr
		case c1 == c2:
			want = matchScr
		default:
			want = mismScr
		}
		if scr != want {
			errs.Append(fmt.Errorf("%w: column %d %c/%c marked %d, expected %d", ErrMark, k, c1, c2, scr, want))
		}
		sum += scr
	}
	if sum != r.Score {
		errs.Append(fmt.Errorf("%w: sum %d score %d", ErrScore, sum, r.Score))
	}
	if s := stripGaps(r.Row1); !bytes.Equal(s, a) {
		errs.Append(fmt.Errorf("%w: row1 gives %q, want %q", ErrResidue, s, a))
	}
	if s := stripGaps(r.Row2); !bytes.Equal(s, b) {
		errs.Append(fmt.Errorf("%w: row2 gives %q, want %q", ErrResidue, s, b))
	}
	return errs.Err()
}
