package errors

import (
	"fmt"

	"github.com/pontaoski/lovego/token"
	"github.com/ztrue/tracerr"
)

type Kind int

const (
	Unknown Kind = iota
	Lexical
	Syntax
	Runtime
	Type
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "Lexer error"
	case Syntax:
		return "Parser error"
	case Runtime:
		return "Runtime error"
	case Type:
		return "Type error"
	}
	return "error"
}

// LexError reports the first character no token rule matches.
type LexError struct {
	Location token.Position
}

func (e LexError) Error() string {
	return fmt.Sprintf("Invalid token at line %d, column %d", e.Location.Line, e.Location.Column)
}

func (e LexError) Kind() Kind { return Lexical }

// SyntaxError carries only the violated expectation; parse errors have no
// source position.
type SyntaxError struct {
	Message string
	Got     token.Kind
}

func (e SyntaxError) Error() string {
	return e.Message
}

func (e SyntaxError) Kind() Kind { return Syntax }

type RuntimeError struct {
	Message string
}

func NewRuntimeError(msg string, fmts ...interface{}) RuntimeError {
	return RuntimeError{Message: fmt.Sprintf(msg, fmts...)}
}

func (e RuntimeError) Error() string {
	return e.Message
}

func (e RuntimeError) Kind() Kind { return Runtime }

// TypeError is raised when an operand's runtime type is not the one the
// operator requires. Expected and Found are type names, Value is the debug
// rendering of the offending value.
type TypeError struct {
	Expected string
	Found    string
	Value    string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("Expected %s, but found %s (%s)", e.Expected, e.Found, e.Value)
}

func (e TypeError) Kind() Kind { return Type }

type kinded interface {
	Kind() Kind
}

// KindOf classifies err, looking through tracerr wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	if k, ok := tracerr.Unwrap(err).(kinded); ok {
		return k.Kind()
	}
	return Unknown
}

// Format renders err prefixed with its stage, e.g. "Runtime error: cannot divide by zero".
func Format(err error) string {
	return fmt.Sprintf("%s: %s", KindOf(err), tracerr.Unwrap(err))
}
