// 19 Oct 2026

// Package present writes alignments out for people to look at, as
// text or as a picture.
package present

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andrew-torda/seqalign/pkg/align"
)

// Options control how an alignment is written.
type Options struct {
	Gap byte // written in place of align.Gap, zero leaves gaps alone
}

// row copies an alignment row, swapping the gap symbol if asked.
func (o *Options) row(r []byte) []byte {
	if o == nil || o.Gap == 0 || o.Gap == align.Gap {
		return r
	}
	return bytes.ReplaceAll(r, []byte{align.Gap}, []byte{o.Gap})
}

// Lines returns the four lines of the alignment block. All have the
// same width.
func Lines(r *align.Result, opts *Options) []string {
	return []string{
		"  + " + string(r.Match),
		"    " + string(opts.row(r.Row1)),
		"    " + string(opts.row(r.Row2)),
		"  - " + string(r.Penalty),
	}
}

// Pair writes the two strands about to be aligned.
func Pair(w io.Writer, s1, s2 []byte) error {
	_, err := fmt.Fprintf(w, "Aligning these two strands:\n\n   %s\n   %s\n", s1, s2)
	return err
}

// Write writes the score, then the match marks, the two rows and the
// penalty marks, one above the other.
func Write(w io.Writer, r *align.Result, opts *Options) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "\nOptimal alignment score is %d\n\n", r.Score)
	for _, l := range Lines(r, opts) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := w.Write(b.Bytes())
	return err
}
