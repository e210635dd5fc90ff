// 19 Oct 2026

package seqalign

import (
	"bytes"
	"fmt"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqalign/pkg/present"
	"github.com/andrew-torda/seqalign/pkg/seq"
	"github.com/andrew-torda/seqalign/pkg/white"
)

func newPairCmd(a *app) *cobra.Command {
	var pngFile string
	cmd := &cobra.Command{
		Use:   "pair SEQ1 SEQ2",
		Short: "Align two sequences given on the command line",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s1 := seq.New("1", []byte(args[0]))
			s2 := seq.New("2", []byte(args[1]))
			return a.alignSeqs(s1, s2, pngFile)
		},
	}
	cmd.Flags().StringVar(&pngFile, "png", "", "also draw the alignment to this png file")
	return cmd
}

func newFastaCmd(a *app) *cobra.Command {
	var pngFile string
	var n1, n2 int
	cmd := &cobra.Command{
		Use:   "fasta FILE",
		Short: "Align two sequences from a fasta file",
		Long:  "fasta aligns two records of a fasta file, by default the first two.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fasta(args[0], n1, n2, pngFile)
		},
	}
	f := cmd.Flags()
	f.StringVar(&pngFile, "png", "", "also draw the alignment to this png file")
	f.IntVar(&n1, "first", 1, "index of the first sequence (index from 1)")
	f.IntVar(&n2, "second", 2, "index of the second sequence (index from 1)")
	return cmd
}

// fasta reads fname and aligns records n1 and n2.
func (a *app) fasta(fname string, n1, n2 int, pngFile string) error {
	logger := ctxlog.Logger(a.ctx)
	if n, err := seq.NumSeq(fname); err == nil {
		logger.Debug("counted records", "file", fname, "n", n)
	}
	seqs, err := seq.ReadFile(fname)
	if err != nil {
		return err
	}
	for _, n := range []int{n1, n2} {
		if n < 1 || n > len(seqs) {
			return usageError{fmt.Errorf("sequence %d asked for, %s has %d", n, fname, len(seqs))}
		}
	}
	return a.alignSeqs(seqs[n1-1], seqs[n2-1], pngFile)
}

// residues copies a sequence without white space. A space would
// otherwise be read as a gap.
func residues(s seq.Seq) []byte {
	b := bytes.Clone(s.GetSeq())
	white.Remove(&b)
	return b
}

// alignSeqs aligns two sequences and reports the result.
func (a *app) alignSeqs(s1, s2 seq.Seq, pngFile string) error {
	for _, s := range []*seq.Seq{&s1, &s2} {
		if err := s.Upper(); err != nil {
			return usageError{err}
		}
	}
	b1, b2 := residues(s1), residues(s2)
	if err := present.Pair(a.out, b1, b2); err != nil {
		return err
	}
	ctx := ctxlog.WithAttributes(a.ctx, "seq1", s1.GetCmmt(), "seq2", s2.GetCmmt())
	r := a.aligner().Align(ctx, b1, b2)
	return a.report(&r, pngFile)
}
