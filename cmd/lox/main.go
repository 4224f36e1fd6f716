// Command lox is the Lox language entry point: given a script path it
// runs the file once and exits with a non-zero status on any parse,
// resolve, or runtime error (spec.md §6); given no path it starts the
// interactive REPL.
package main

import (
	"fmt"
	"os"

	heredoc "github.com/MakeNowJust/heredoc/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/loxlang/loxcore/config"
	"github.com/loxlang/loxcore/interpreter"
	"github.com/loxlang/loxcore/loxlog"
	"github.com/loxlang/loxcore/parser"
	"github.com/loxlang/loxcore/repl"
	"github.com/loxlang/loxcore/resolver"
)

var version = "dev"

var (
	verbose    bool
	noColor    bool
	configPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lox [script]",
		Short: "The Lox language interpreter",
		Long: heredoc.Doc(`
			lox runs a Lox source file, or starts an interactive REPL when
			invoked with no arguments.

			Source is lexed, parsed, statically resolved, and tree-walked in
			one pass. Any parse or resolve error is reported per-occurrence;
			a runtime error aborts the run immediately.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			var err error
			if cmd.Flags().Changed("config") {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.Discover()
			}
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if noColor {
				disabled := false
				cfg.Color = &disabled
			}

			logger := loxlog.New(os.Stderr)
			if os.Getenv("LOX_LOG") == "" {
				level := logger.GetLevel()
				if err := level.UnmarshalText([]byte(cfg.DefaultLevel)); err == nil {
					logger.SetLevel(level)
				}
			}
			loxlog.SetVerbose(logger, verbose)

			if len(args) == 0 {
				return repl.New(cfg).Run(os.Stdout)
			}
			return runFile(args[0], logger)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored REPL output")
	root.PersistentFlags().StringVar(&configPath, "config", ".loxrc.yaml", "path to the optional config file")

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lox version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

// runFile runs one script to completion and reports the go-multierror
// produced by the parser/resolver, or the single error produced by the
// interpreter, one diagnostic per line.
func runFile(path string, logger interface{ Debugf(string, ...any) }) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("running %s (%d bytes)", path, len(src))

	stmts, err := parser.New(string(src)).Parse()
	if err != nil {
		reportAll(err)
		return err
	}

	if err := resolver.New().Resolve(stmts); err != nil {
		reportAll(err)
		return err
	}

	it := interpreter.New()
	it.Out = os.Stdout
	if err := it.Interpret(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func reportAll(err error) {
	var merr *multierror.Error
	if asMultiError(err, &merr) {
		for _, e := range merr.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return
	}
	fmt.Fprintln(os.Stderr, err)
}

func asMultiError(err error, target **multierror.Error) bool {
	merr, ok := err.(*multierror.Error)
	if ok {
		*target = merr
	}
	return ok
}
