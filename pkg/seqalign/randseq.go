// 19 Oct 2026

package seqalign

import (
	"os"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqalign/pkg/randseq"
)

func newRandseqCmd(a *app) *cobra.Command {
	args := randseq.RandSeqArgs{Cmmt: "random strand"}
	cmd := &cobra.Command{
		Use:   "randseq FILE NSEQ",
		Short: "Write random strands to a fasta file",
		Long: `randseq writes NSEQ random DNA strands to FILE in fasta format.
A FILE of "-" means standard output.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, pos []string) error {
			nseq, err := strconv.ParseUint(pos[1], 10, 32)
			if err != nil {
				return usageError{err}
			}
			args.Nseq = int(nseq)
			args.MinLen, args.MaxLen = a.cfg.MinLen, a.cfg.MaxLen
			args.Iseed = a.seed()
			return a.randseq(pos[0], &args)
		},
	}
	lengthFlags(cmd, a)
	f := cmd.Flags()
	f.BoolVar(&args.White, "white", false, "scatter white space through the strands")
	f.StringVar(&args.Cmmt, "comment", args.Cmmt, "comment for the sequences")
	return cmd
}

func (a *app) randseq(fname string, args *randseq.RandSeqArgs) error {
	if fname == "-" || fname == "" {
		args.Wrtr = a.out
		return randseq.RandSeqMain(args)
	}
	ft, err := os.Create(fname)
	if err != nil {
		return err
	}
	args.Wrtr = ft
	if err := randseq.RandSeqMain(args); err != nil {
		ft.Close()
		return err
	}
	ctxlog.Logger(a.ctx).Info("wrote strands", "file", fname, "n", args.Nseq)
	return ft.Close()
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config FILE",
		Short: "Write the settings in force to a yaml file",
		Long:  "config writes the defaults, with any flags and --config file applied, as a starting point for a config file.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Write(args[0])
		},
	}
}
