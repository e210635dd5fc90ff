// 19 Oct 2026

package align

import (
	"github.com/andrew-torda/matrix"
)

// Moves out of a cell. They mirror the three children in the recursion.
const (
	stop byte = iota // both suffixes empty
	diag             // consume a residue from each
	qway             // consume from b only, gap in row 1
	pway             // consume from a only, gap in row 2
)

// Table is the iterative version of the recursion. Cell (i, j) holds
// the best score for suffixes a[i:] and b[j:]. Cells are filled from
// the bottom right, so a cell's three children are always done
// before it is. Choices follow the recursion exactly, so both give
// the same rows, not just the same score.
type Table struct {
	a, b []byte
	scr  *matrix.FMatrix2d // scores, exact for anything we can hold
	dir  []byte            // move out of each cell, row major
}

// NewTable sets up, but does not fill, a table for a and b.
func NewTable(a, b []byte) *Table {
	return &Table{a: a, b: b}
}

func (t *Table) ndx(i, j int) int { return i*(len(t.b)+1) + j }

// fill computes every cell.
func (t *Table) fill() {
	na, nb := len(t.a), len(t.b)
	t.scr = matrix.NewFMatrix2d(na+1, nb+1)
	t.dir = make([]byte, (na+1)*(nb+1))
	scr := t.scr.Mat

	t.dir[t.ndx(na, nb)] = stop
	for j := nb - 1; j >= 0; j-- { //    a used up, rest of b
		scr[na][j] = scr[na][j+1] + gapScr // opposite gaps
		t.dir[t.ndx(na, j)] = qway
	}
	for i := na - 1; i >= 0; i-- { //    b used up
		scr[i][nb] = scr[i+1][nb] + gapScr
		t.dir[t.ndx(i, nb)] = pway
	}
	for i := na - 1; i >= 0; i-- {
		for j := nb - 1; j >= 0; j-- {
			if t.a[i] == t.b[j] {
				scr[i][j] = scr[i+1][j+1] + matchScr
				t.dir[t.ndx(i, j)] = diag
				continue
			}
			best, drctn := scr[i+1][j+1]+mismScr, diag
			if s := scr[i][j+1] + gapScr; s > best {
				best, drctn = s, qway
			}
			if s := scr[i+1][j] + gapScr; s > best {
				best, drctn = s, pway
			}
			scr[i][j] = best
			t.dir[t.ndx(i, j)] = drctn
		}
	}
}

// Fill computes the table and walks it from (0, 0) to build the
// alignment.
func (t *Table) Fill() Result {
	t.fill()
	na, nb := len(t.a), len(t.b)
	ncol := na + nb // upper bound on the number of columns
	r := Result{
		Score:   int(t.scr.Mat[0][0]),
		Row1:    make([]byte, 0, ncol),
		Row2:    make([]byte, 0, ncol),
		Match:   make([]byte, 0, ncol),
		Penalty: make([]byte, 0, ncol),
	}
	add := func(c1, c2, match, pnlty byte) {
		r.Row1 = append(r.Row1, c1)
		r.Row2 = append(r.Row2, c2)
		r.Match = append(r.Match, match)
		r.Penalty = append(r.Penalty, pnlty)
	}
	for i, j := 0, 0; ; {
		switch t.dir[t.ndx(i, j)] {
		case stop:
			return r
		case diag:
			if t.a[i] == t.b[j] {
				add(t.a[i], t.b[j], markMatch, markNone)
			} else {
				add(t.a[i], t.b[j], markNone, markMism)
			}
			i++
			j++
		case qway:
			add(Gap, t.b[j], markNone, markGap)
			j++
		case pway:
			add(t.a[i], Gap, markNone, markGap)
			i++
		}
	}
}

// Score returns the best score for a[i:] and b[j:]. It is only
// meaningful after Fill.
func (t *Table) Score(i, j int) int {
	return int(t.scr.Mat[i][j])
}
