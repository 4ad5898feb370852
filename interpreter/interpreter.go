package interpreter

import (
	"fmt"
	"io"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/lexer"
	"github.com/pontaoski/lovego/parser"
	"github.com/pontaoski/lovego/values"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "interpreter")

// signal tells statement lists whether to keep going. A promise raises
// returning, which unwinds up to the enclosing call or the program.
type signal int

const (
	normal signal = iota
	returning
)

// Interpreter evaluates programs against one live Environment. Calling
// Interpret repeatedly accumulates top-level bindings.
type Interpreter struct {
	env *Environment
	out io.Writer
}

// New creates an interpreter whose whisper statements write to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		env: NewEnvironment(),
		out: out,
	}
}

// Environment returns the currently active environment.
func (in *Interpreter) Environment() *Environment {
	return in.env
}

func (in *Interpreter) Interpret(node ast.Node) (values.Value, error) {
	v, _, err := in.eval(node)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return v, nil
}

// EvalSource runs source text through the lexer, the parser and the
// interpreter. A failing stage stops the ones after it.
func (in *Interpreter) EvalSource(source string) (values.Value, error) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return nil, err
	}
	return in.Interpret(prog)
}

// swap makes env the active environment and returns a func restoring the
// previous one.
func (in *Interpreter) swap(env *Environment) func() {
	old := in.env
	in.env = env
	return func() { in.env = old }
}

func (in *Interpreter) statements(stmts []ast.Node) (values.Value, signal, error) {
	var result values.Value = values.Null{}
	for _, stmt := range stmts {
		v, sig, err := in.eval(stmt)
		if err != nil {
			return nil, normal, err
		}
		result = v
		if sig == returning {
			return result, returning, nil
		}
	}
	return result, normal, nil
}

func (in *Interpreter) expr(node ast.Node) (values.Value, error) {
	v, _, err := in.eval(node)
	return v, err
}

func (in *Interpreter) condition(node ast.Node) (bool, error) {
	v, err := in.expr(node)
	if err != nil {
		return false, err
	}
	b, ok := v.(values.Boolean)
	if !ok {
		return false, errors.NewRuntimeError("Condition must evaluate to a feeling (yes/no)")
	}
	return bool(b), nil
}

func (in *Interpreter) eval(node ast.Node) (values.Value, signal, error) {
	switch n := node.(type) {
	case ast.Program:
		v, _, err := in.statements(n.Statements)
		return v, normal, err
	case ast.VariableDecl:
		v, err := in.expr(n.Initializer)
		if err != nil {
			return nil, normal, err
		}
		in.env.Define(n.Name, v)
		return v, normal, nil
	case ast.FunctionDecl:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		fn := &values.Function{Name: n.Name, Params: params, Body: n.Body}
		in.env.Define(n.Name, fn)
		return fn, normal, nil
	case ast.Call:
		v, err := in.call(n)
		return v, normal, err
	case ast.ReturnStmt:
		if n.Value == nil {
			return values.Null{}, returning, nil
		}
		v, err := in.expr(n.Value)
		if err != nil {
			return nil, normal, err
		}
		return v, returning, nil
	case ast.If:
		cond, err := in.condition(n.Condition)
		if err != nil {
			return nil, normal, err
		}
		if cond {
			return in.statements(n.Then)
		}
		if n.Else != nil {
			return in.statements(n.Else)
		}
		return values.Null{}, normal, nil
	case ast.While:
		var result values.Value = values.Null{}
		for {
			cond, err := in.condition(n.Condition)
			if err != nil {
				return nil, normal, err
			}
			if !cond {
				return result, normal, nil
			}
			v, sig, err := in.statements(n.Body)
			if err != nil || sig == returning {
				return v, sig, err
			}
			result = v
		}
	case ast.Block:
		plog.Tracef("entering block, setting aside %d bindings", len(in.env.values))
		defer in.swap(NewEnvironment())()
		return in.statements(n)
	case ast.ExpressionStmt:
		v, err := in.expr(n.Expr)
		return v, normal, err
	case ast.Grouping:
		v, err := in.expr(n.Inner)
		return v, normal, err
	case ast.PrintStmt:
		v, err := in.expr(n.Expr)
		if err != nil {
			return nil, normal, err
		}
		if _, err := fmt.Fprintln(in.out, v.Debug()); err != nil {
			return nil, normal, errors.NewRuntimeError("cannot whisper: %s", err)
		}
		return values.Null{}, normal, nil
	case ast.Lit:
		return values.FromLiteral(n.Literal), normal, nil
	case ast.Variable:
		v, ok := in.env.Get(n.Name)
		if !ok {
			return nil, normal, errors.NewRuntimeError("Undefined variable '%s'.", n.Name)
		}
		return v, normal, nil
	case ast.Assign:
		v, err := in.expr(n.Value)
		if err != nil {
			return nil, normal, err
		}
		if err := in.env.Assign(n.Name, v); err != nil {
			return nil, normal, err
		}
		return v, normal, nil
	case ast.Binary:
		v, err := in.binary(n)
		return v, normal, err
	case ast.Unary:
		v, err := in.unary(n)
		return v, normal, err
	}

	return nil, normal, errors.NewRuntimeError("Not implemented: %T", node)
}

func (in *Interpreter) call(n ast.Call) (values.Value, error) {
	callee, ok := in.env.Get(n.Callee)
	if !ok {
		return nil, errors.NewRuntimeError("Undefined function '%s'", n.Callee)
	}
	fn, ok := callee.(*values.Function)
	if !ok {
		return nil, errors.NewRuntimeError("'%s' is not a function", n.Callee)
	}
	if len(fn.Params) != len(n.Arguments) {
		return nil, errors.NewRuntimeError("Expected %d arguments but got %d.", len(fn.Params), len(n.Arguments))
	}

	// arguments are evaluated in the caller's environment
	callEnv := NewEnvironment()
	for i, arg := range n.Arguments {
		v, err := in.expr(arg)
		if err != nil {
			return nil, err
		}
		callEnv.Define(fn.Params[i], v)
	}

	plog.Debugf("calling %s with %d arguments", fn.Name, len(n.Arguments))
	defer in.swap(callEnv)()

	v, _, err := in.statements(fn.Body)
	return v, err
}
