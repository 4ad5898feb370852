package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/interpreter"
	"github.com/pontaoski/lovego/values"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "repl")

const (
	Prompt             = "love> "
	ContinuationPrompt = "...  "
	ExitCommand        = "breakup;"
)

// REPL reads statements line by line and evaluates each complete input
// against one interpreter, so definitions persist between inputs.
type REPL struct {
	interp *interpreter.Interpreter
	out    io.Writer

	good *color.Color
	bad  *color.Color
	hint *color.Color
}

func New(out io.Writer, useColor bool) *REPL {
	r := &REPL{
		interp: interpreter.New(out),
		out:    out,
		good:   color.New(color.FgHiGreen),
		bad:    color.New(color.FgHiRed),
		hint:   color.New(color.FgHiMagenta),
	}
	for _, c := range []*color.Color{r.good, r.bad, r.hint} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *REPL) Interpreter() *interpreter.Interpreter {
	return r.interp
}

func countBraces(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

func (r *REPL) Welcome() {
	r.hint.Fprintln(r.out, "Welcome to Love Language. Let's write with love!")
	fmt.Fprintln(r.out, "   heart x match 10;")
	fmt.Fprintln(r.out, "   whisper x;")
	r.hint.Fprintf(r.out, "Type '%s' to exit\n\n", ExitCommand)
}

// Run loops until in is exhausted or the exit command is read.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	var current strings.Builder
	braces := 0

	for {
		if braces > 0 {
			fmt.Fprint(r.out, ContinuationPrompt)
		} else {
			fmt.Fprint(r.out, Prompt)
		}

		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.EqualFold(trimmed, ExitCommand) {
			r.bad.Fprintln(r.out, "Goodbye! Our love story ends here...")
			return nil
		}

		braces += countBraces(trimmed)
		current.WriteString(line)
		current.WriteString("\n")

		switch {
		case braces < 0:
			r.bad.Fprintln(r.out, "Syntax error: Unmatched closing brace")
			current.Reset()
			braces = 0
		case braces > 0 || trimmed == "":
		case !strings.HasSuffix(trimmed, ";") && !strings.HasSuffix(trimmed, "{") &&
			!strings.HasSuffix(trimmed, "}") && !strings.Contains(current.String(), "devotion"):
			r.bad.Fprintln(r.out, "Syntax error: Missing semicolon at end of statement")
			current.Reset()
		case strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}"):
			r.eval(current.String())
			current.Reset()
		}
	}
}

func (r *REPL) eval(input string) {
	plog.Debugf("evaluating %d bytes", len(input))

	v, err := r.interp.EvalSource(input)
	if err != nil {
		r.bad.Fprintln(r.out, errors.Format(err))
		return
	}
	if _, isNull := v.(values.Null); !isNull {
		r.good.Fprintln(r.out, v.Debug())
	}
}
