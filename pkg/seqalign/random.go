// 19 Oct 2026

package seqalign

import (
	"bufio"
	"fmt"
	"math/rand"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqalign/pkg/present"
	"github.com/andrew-torda/seqalign/pkg/randseq"
)

const prompt = "Generate random DNA strands? "

func newRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Align pairs of random strands",
		Long: `random makes two random strands, aligns them and prints the result.
With --rounds 0 it asks before every pair and stops when the answer is "no".`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.random()
		},
	}
	lengthFlags(cmd, a)
	cmd.Flags().IntVar(&a.cfg.Rounds, "rounds", a.cfg.Rounds, "number of pairs, 0 to ask each time")
	return cmd
}

// random is the original program's main loop.
func (a *app) random() error {
	rnd := rand.New(rand.NewSource(a.seed()))
	var answers *bufio.Scanner
	if a.cfg.Rounds == 0 {
		answers = bufio.NewScanner(a.in)
	}
	for round := 1; a.cfg.Rounds == 0 || round <= a.cfg.Rounds; round++ {
		if answers != nil {
			fmt.Fprint(a.out, prompt)
			if !answers.Scan() || answers.Text() == "no" {
				return answers.Err()
			}
		}
		s1, err := randseq.Strand(rnd, a.cfg.MinLen, a.cfg.MaxLen)
		if err != nil {
			return err
		}
		s2, err := randseq.Strand(rnd, a.cfg.MinLen, a.cfg.MaxLen)
		if err != nil {
			return err
		}
		if err := present.Pair(a.out, s1, s2); err != nil {
			return err
		}
		r := a.aligner().Align(ctxlog.WithAttributes(a.ctx, "round", round), s1, s2)
		if err := a.report(&r, ""); err != nil {
			return err
		}
	}
	return nil
}
