package runner

import (
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/interpreter"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "runner")

// Extension is the only file extension RunFile accepts.
const Extension = ".love"

type Runner struct {
	interp *interpreter.Interpreter
	out    io.Writer

	info    *color.Color
	heading *color.Color
	success *color.Color
	failure *color.Color
}

// New creates a runner writing both banners and program output to out.
func New(out io.Writer, useColor bool) *Runner {
	r := &Runner{
		interp:  interpreter.New(out),
		out:     out,
		info:    color.New(color.FgHiCyan),
		heading: color.New(color.FgHiYellow),
		success: color.New(color.FgHiGreen),
		failure: color.New(color.FgHiRed),
	}
	for _, c := range []*color.Color{r.info, r.heading, r.success, r.failure} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Runner) Interpreter() *interpreter.Interpreter {
	return r.interp
}

// Border frames message in hearts.
func Border(message string) string {
	width := 0
	for _, line := range strings.Split(message, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	border := strings.Repeat("♥", width+4)
	return fmt.Sprintf("%s\n♥ %s ♥\n%s", border, message, border)
}

func checkExtension(path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return errors.NewRuntimeError("File must have a %s extension!", Extension)
	}
	if ext != Extension {
		return errors.NewRuntimeError("Only %s files can contain our love story!", Extension)
	}
	return nil
}

// RunFile loads a .love file and runs it to completion or first error.
func (r *Runner) RunFile(path string) error {
	if err := checkExtension(path); err != nil {
		return tracerr.Wrap(err)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return tracerr.Wrap(errors.NewRuntimeError("Failed to read love letter: %s", err))
	}

	plog.Infof("running %s (%d bytes)", path, len(content))
	r.info.Fprintln(r.out, Border("Reading love story from: "+path))
	return r.RunSource(string(content))
}

// RunSource runs an already loaded program and reports the outcome.
func (r *Runner) RunSource(source string) error {
	r.heading.Fprintln(r.out, "Love story output:")
	fmt.Fprintln(r.out)

	if _, err := r.interp.EvalSource(source); err != nil {
		r.failure.Fprintln(r.out, Border(errors.Format(err)))
		return err
	}

	r.success.Fprintln(r.out, Border("Love story executed successfully!"))
	return nil
}
