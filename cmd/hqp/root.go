package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errUsage marks argument mistakes so execute can exit 2 instead of 1.
var errUsage = errors.New("usage")

// globalOptions carries the persistent flags into every verb.
type globalOptions struct {
	maxNodes int64
	workers  int
	quiet    bool
}

func (o *globalOptions) setupLogging(w *os.File) {
	level := slog.LevelInfo
	if o.quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// exactArgs is cobra.ExactArgs with the usage marker attached.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", errUsage, cmd.Name(), n, len(args))
		}

		return nil
	}
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "hqp",
		Short: "Latin square completion, transversal chains and Hadamard stability",
		Long: `hqp enumerates Latin squares from partial grids, fills and chains
transversals, composes squares entrywise through an operation table and
searches for isomorphisms between two squares.

Grids are text files: one row per line, blank-separated symbols, 0 for
an empty cell, '#' for comments. Transversals are "row col" pairs, one
per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opts.setupLogging(os.Stderr)
		},
	}

	pf := root.PersistentFlags()
	pf.Int64Var(&opts.maxNodes, "max-nodes", 0, "search node budget, 0 means unbounded")
	pf.IntVar(&opts.workers, "workers", 1, "parallel branch workers, 0 picks a machine-sized pool")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log warnings and errors only")

	root.AddCommand(
		newCompleteCmd(opts),
		newFillCmd(opts),
		newChainCmd(opts),
		newProductCmd(opts),
		newRhoCmd(opts),
		newIsomCmd(opts),
		newRunCmd(opts),
	)

	return root
}

// execute runs the root command and maps the outcome to an exit code:
// 0 on success, 2 on usage mistakes, 1 on everything else.
func execute(args []string) int {
	opts := &globalOptions{}
	root := newRootCmd(opts)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hqp:", err)
		if errors.Is(err, errUsage) {
			return 2
		}

		return 1
	}

	return 0
}
