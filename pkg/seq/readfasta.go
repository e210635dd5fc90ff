// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/seqalign/pkg/white"
)

const NL = '\n'

// lexer walks over a whole fasta file held in memory.
type lexer struct {
	input []byte
	seqs  []Seq
	cmmt  string
	err   error
}

type stateFn func(*lexer) stateFn

// gstart skips to the first comment. Only white space may come before it.
func gstart(l *lexer) stateFn {
	ndx := bytes.IndexByte(l.input, cmmtChar)
	if ndx == -1 {
		if len(bytes.TrimSpace(l.input)) != 0 {
			l.err = fmt.Errorf("%w: no comment line", ErrFormat)
		}
		return nil
	}
	if len(bytes.TrimSpace(l.input[:ndx])) != 0 {
		l.err = fmt.Errorf("%w: text before first comment", ErrFormat)
		return nil
	}
	l.input = l.input[ndx+1:]
	return gcmmt
}

// We are reading a comment
func gcmmt(l *lexer) stateFn {
	line := l.input
	if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
		l.input = nil
	} else {
		line = l.input[:ndx]
		l.input = l.input[ndx+1:]
	}
	l.cmmt = string(bytes.TrimRight(line, "\r"))
	return gseq
}

// We are reading a sequence. It runs up to a newline followed by a
// comment character, or the end of input.
func gseq(l *lexer) stateFn {
	var body []byte
	var next stateFn
	if ndx := bytes.Index(l.input, []byte{NL, cmmtChar}); ndx == -1 {
		body, l.input = l.input, nil
	} else {
		body, l.input = l.input[:ndx], l.input[ndx+2:]
		next = gcmmt
	}
	s := append([]byte(nil), body...) // input may be mapped memory
	white.Remove(&s)
	if len(s) == 0 {
		l.err = fmt.Errorf("%w after \"%s\"", ErrEmptySeq, trimStr(l.cmmt, 40))
		return nil
	}
	sq := New(l.cmmt, s)
	if l.err = sq.Upper(); l.err != nil {
		return nil
	}
	l.seqs = append(l.seqs, sq)
	return next
}

// parse runs the lexer over buf. Nothing returned points into buf.
func parse(buf []byte) ([]Seq, error) {
	l := lexer{input: buf}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if len(l.seqs) == 0 {
		return nil, ErrNoSeqs
	}
	return l.seqs, nil
}

// ReadFasta reads fasta formatted sequences. White space inside
// sequences is dropped and residues are upper cased.
func ReadFasta(rdr io.Reader) ([]Seq, error) {
	buf, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("reading fasta: %w", err)
	}
	return parse(buf)
}

// mapFile maps a file read-only and hands the bytes to f. An empty
// file cannot be mapped, so f sees nil.
func mapFile(fname string, f func([]byte) error) error {
	fp, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		return f(nil)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	return f(mm)
}

// ReadFile reads a fasta file through a read-only memory map.
func ReadFile(fname string) (seqs []Seq, err error) {
	err = mapFile(fname, func(b []byte) error {
		seqs, err = parse(b)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return seqs, nil
}

// NumSeq counts comment characters in a file. This might be the
// number of sequences.
func NumSeq(fname string) (n int, err error) {
	err = mapFile(fname, func(b []byte) error {
		n = bytes.Count(b, []byte{cmmtChar})
		return nil
	})
	return n, err
}
