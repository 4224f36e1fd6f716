// Package repl implements Lox's interactive read-eval-print loop: each
// line is lexed, parsed, resolved, and executed against state that
// persists across lines, with colored diagnostics on failure.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/loxlang/loxcore/config"
	"github.com/loxlang/loxcore/interpreter"
	"github.com/loxlang/loxcore/parser"
	"github.com/loxlang/loxcore/resolver"
)

// exitSentinel is the trimmed input that ends the session (spec.md §6).
const exitSentinel = "@q"

var (
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

// Repl is a configured interactive session.
type Repl struct {
	Cfg *config.Config
}

// New returns a Repl using cfg for its cosmetics.
func New(cfg *config.Config) *Repl {
	return &Repl{Cfg: cfg}
}

// Run starts the loop, writing output and diagnostics to out until the
// exit sentinel is entered or input ends.
func (r *Repl) Run(out io.Writer) error {
	if r.Cfg.ColorEnabled() {
		bannerColor.Fprintf(out, "%s — type '%s' to exit\n", r.Cfg.Banner, exitSentinel)
	} else {
		io.WriteString(out, r.Cfg.Banner+" — type '"+exitSentinel+"' to exit\n")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Cfg.Prompt,
		HistoryFile: r.Cfg.HistoryPath,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	it := interpreter.New()
	it.Out = out

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil // EOF / Ctrl+D ends the session cleanly
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitSentinel {
			return nil
		}

		r.evalLine(out, it, line)
	}
}

func (r *Repl) evalLine(out io.Writer, it *interpreter.Interpreter, line string) {
	stmts, err := parser.New(line).Parse()
	if err != nil {
		r.printErrors(out, err)
		return
	}

	if err := resolver.New().Resolve(stmts); err != nil {
		r.printErrors(out, err)
		return
	}

	if err := it.Interpret(stmts); err != nil {
		r.printErrors(out, err)
	}
}

// printErrors prints one line per accumulated diagnostic when err is a
// *multierror.Error (parser/resolver failures), or a single line
// otherwise (a runtime error).
func (r *Repl) printErrors(out io.Writer, err error) {
	var merr *multierror.Error
	if asMultiError(err, &merr) {
		for _, e := range merr.Errors {
			r.printOne(out, e)
		}
		return
	}
	r.printOne(out, err)
}

func (r *Repl) printOne(out io.Writer, err error) {
	if r.Cfg.ColorEnabled() {
		errorColor.Fprintf(out, "%s\n", err)
		return
	}
	io.WriteString(out, err.Error()+"\n")
}

func asMultiError(err error, target **multierror.Error) bool {
	merr, ok := err.(*multierror.Error)
	if ok {
		*target = merr
	}
	return ok
}
