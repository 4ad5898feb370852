package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/fatih/color"
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/config"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/lexer"
	"github.com/pontaoski/lovego/parser"
	"github.com/pontaoski/lovego/repl"
	"github.com/pontaoski/lovego/runner"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "main")

func setupLogging(c *cli.Context) error {
	level, err := capnslog.ParseLevel(strings.ToUpper(c.String("log-level")))
	if err != nil {
		return err
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(level)
	return nil
}

// useColor combines --no-color with the project file, when there is one.
func useColor(c *cli.Context) bool {
	if c.Bool("no-color") {
		return false
	}
	if mod, err := config.Load(config.FileName); err == nil {
		return mod.UseColor()
	}
	return true
}

// report prints err and turns it into a non-zero exit.
func report(c *cli.Context, err error) error {
	if c.Bool("trace") {
		tracerr.PrintSourceColor(err)
	} else {
		color.New(color.FgHiRed).Fprintln(os.Stderr, errors.Format(err))
	}
	return cli.Exit("", 1)
}

func readSource(c *cli.Context) (string, error) {
	file := c.Args().First()
	if file == "" {
		return "", fmt.Errorf("no file provided")
	}
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return string(data), nil
}

func runREPL(c *cli.Context) error {
	r := repl.New(os.Stdout, useColor(c))
	r.Welcome()
	return r.Run(os.Stdin)
}

func main() {
	app := &cli.App{
		Name:  "lovego",
		Usage: "love language interpreter",
		ExitErrHandler: func(context *cli.Context, err error) {
			if coder, ok := err.(cli.ExitCoder); ok {
				os.Exit(coder.ExitCode())
			}
			plog.Fatalf("error with lovego: %s", err)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "WARNING",
				Usage: "one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print errors with their stack trace",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
		Before: setupLogging,
		Action: runREPL,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "init a love story in the current directory",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no story name provided", 1)
					}
					if err := config.Save(config.FileName, config.Default(name)); err != nil {
						return report(c, err)
					}
					plog.Infof("wrote %s for %s", config.FileName, name)
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "run a .love file, or the story's entry file",
				ArgsUsage: "[file]",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						mod, err := config.Load(config.FileName)
						if err != nil {
							return report(c, err)
						}
						path = mod.Entry
					}

					if err := runner.New(os.Stdout, useColor(c)).RunFile(path); err != nil {
						if errors.KindOf(err) == errors.Unknown || c.Bool("trace") {
							return report(c, err)
						}
						return cli.Exit("", 1)
					}
					return nil
				},
			},
			{
				Name:   "repl",
				Usage:  "start an interactive session",
				Action: runREPL,
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					src, err := readSource(c)
					if err != nil {
						return report(c, err)
					}
					toks, err := lexer.Tokenize(src)
					if err != nil {
						return report(c, err)
					}
					repr.Println(toks)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "sexp",
						Usage: "print a compact s-expression instead of the full tree",
					},
				},
				Action: func(c *cli.Context) error {
					src, err := readSource(c)
					if err != nil {
						return report(c, err)
					}
					toks, err := lexer.Tokenize(src)
					if err != nil {
						return report(c, err)
					}
					prog, err := parser.Parse(toks)
					if err != nil {
						return report(c, err)
					}
					if c.Bool("sexp") {
						fmt.Println(ast.Sexp(prog))
						return nil
					}
					repr.Println(prog)
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
