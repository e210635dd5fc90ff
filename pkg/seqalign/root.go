// 19 Oct 2026

// Package seqalign is the command line front end. cmd/seqalign only
// calls Mymain.
package seqalign

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/seqalign/pkg/align"
	"github.com/andrew-torda/seqalign/pkg/config"
	"github.com/andrew-torda/seqalign/pkg/present"
	"github.com/andrew-torda/seqalign/pkg/randseq"
	. "github.com/andrew-torda/seqalign/pkg/seq/common"
)

// usageError marks errors that come from how the program was called.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func usageArgs(f cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := f(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// app is the state shared by all subcommands of one run.
type app struct {
	cfg     config.Config
	cfgFile string
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	ctx     context.Context
}

// fromFile copies one setting. The keys are flag names.
var fromFile = map[string]func(dst, src *config.Config){
	"min":        func(d, s *config.Config) { d.MinLen = s.MinLen },
	"max":        func(d, s *config.Config) { d.MaxLen = s.MaxLen },
	"seed":       func(d, s *config.Config) { d.Seed = s.Seed },
	"rounds":     func(d, s *config.Config) { d.Rounds = s.Rounds },
	"gap":        func(d, s *config.Config) { d.Gap = s.Gap },
	"max-depth":  func(d, s *config.Config) { d.MaxDepth = s.MaxDepth },
	"log-level":  func(d, s *config.Config) { d.LogLevel = s.LogLevel },
	"log-format": func(d, s *config.Config) { d.LogFormat = s.LogFormat },
}

// settings applies the config file, then any flags that were given.
func (a *app) settings(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		fileCfg, err := config.Load(a.cfgFile)
		if err != nil && !errors.Is(err, config.ErrConfig) {
			return err
		} //                  Bad values may yet be fixed by flags.
		for name, cp := range fromFile {
			if f := cmd.Flags().Lookup(name); f == nil || !f.Changed {
				cp(&a.cfg, &fileCfg)
			}
		}
	}
	if err := a.cfg.Validate(); err != nil {
		return usageError{err}
	}
	a.ctx = ctxlog.WithAttributes(a.cfg.Logging(cmd.Context(), a.errOut), "cmd", cmd.Name())
	return nil
}

// seed returns the configured seed, or one from the clock.
func (a *app) seed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	s := time.Now().UnixNano()
	ctxlog.Logger(a.ctx).Info("random seed", "seed", s)
	return s
}

func (a *app) aligner() *align.Aligner {
	return align.New(align.WithMaxDepth(a.cfg.MaxDepth))
}

func (a *app) presentOpts() *present.Options {
	return &present.Options{Gap: a.cfg.Gap[0]}
}

// report writes the alignment out, and a picture of it if asked.
func (a *app) report(r *align.Result, pngFile string) error {
	if err := present.Write(a.out, r, a.presentOpts()); err != nil {
		return err
	}
	if pngFile == "" {
		return nil
	}
	fp, err := os.Create(pngFile)
	if err != nil {
		return err
	}
	if err := present.WritePNG(fp, r, a.presentOpts()); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "seqalign",
		Short:         "Optimal global alignment of two DNA strands",
		Long:          "seqalign aligns two sequences, scoring +1 for a match, -1 for a mismatch and -2 for a gap.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.settings(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "yaml file with settings")
	pf.StringVar(&a.cfg.Gap, "gap", a.cfg.Gap, "character printed for a gap")
	pf.IntVar(&a.cfg.MaxDepth, "max-depth", a.cfg.MaxDepth, "longest pair (sum of lengths) aligned by recursion")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "debug, info, warn or error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "text or json")

	root.AddCommand(newRandomCmd(a), newPairCmd(a), newFastaCmd(a), newRandseqCmd(a), newConfigCmd(a))
	return root
}

// lengthFlags are shared by the commands that make random strands.
func lengthFlags(cmd *cobra.Command, a *app) {
	f := cmd.Flags()
	f.IntVar(&a.cfg.MinLen, "min", a.cfg.MinLen, "shortest strand")
	f.IntVar(&a.cfg.MaxLen, "max", a.cfg.MaxLen, "longest strand")
	f.Int64Var(&a.cfg.Seed, "seed", a.cfg.Seed, "random number seed, 0 for the clock")
}

// Execute runs the command line in args and returns an exit code.
func Execute(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{cfg: config.Default(), in: in, out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(errOut, "seqalign:", err)
		var ue usageError
		if errors.As(err, &ue) || errors.Is(err, randseq.ErrBadRange) {
			fmt.Fprintln(errOut, "Run 'seqalign --help' for usage.")
			return ExitUsageError
		}
		return ExitFailure
	}
	return ExitSuccess
}

// Mymain is what main calls.
func Mymain() int {
	return Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
