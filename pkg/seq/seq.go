// 20 Dec 2017
// 19 Oct 2026 cut down to what the aligner needs.

// Package seq reads sequences, which usually begin their lives in
// fasta format.
package seq

import (
	"fmt"

	"cloudeng.io/errors"
)

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

const cmmtChar byte = '>' // and this introduces comments in fasta format

var (
	ErrNoSeqs   = errors.New("no sequences found")
	ErrEmptySeq = errors.New("zero length sequence")
	ErrFormat   = errors.New("not fasta format")
)

// Seq is a sequence and the comment that came with it.
type Seq struct {
	cmmt string
	seq  []byte
}

// New makes a sequence from a comment and residues. The residues are
// not copied.
func New(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

// Len
func (s Seq) Len() int { return len(s.seq) }

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (value higher than 127).
func (s *Seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	for i, c := range s.seq {
		if c >= MaxSym {
			return fmt.Errorf(symerr, c, i, trimStr(s.cmmt, 40))
		}
		if 'a' <= c && c <= 'z' {
			s.seq[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, s.cmmt, s.seq)
}
