package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pontaoski/lovego/ast"
)

// Type is the runtime type tag of a Value. It is only used for type checking
// operands and for error messages.
type Type int

const (
	NumberType Type = iota
	TextType
	BooleanType
	FunctionType
	NullType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "Number"
	case TextType:
		return "Text"
	case BooleanType:
		return "Boolean"
	case FunctionType:
		return "Function"
	case NullType:
		return "Null"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// FromDeclared maps a type annotation in source to its runtime tag.
func FromDeclared(t ast.DeclaredType) Type {
	switch t {
	case ast.DeclaredNumber:
		return NumberType
	case ast.DeclaredText:
		return TextType
	case ast.DeclaredFeeling:
		return BooleanType
	}
	return NullType
}

type Value interface {
	Type() Type
	// Debug renders the value in its debug form, e.g. Number(7.0) or Text("hi").
	Debug() string
}

type Number float64

func (v Number) Type() Type { return NumberType }
func (v Number) Debug() string {
	return "Number(" + formatNumber(float64(v)) + ")"
}

type Text string

func (v Text) Type() Type     { return TextType }
func (v Text) Debug() string { return "Text(" + strconv.Quote(string(v)) + ")" }

type Boolean bool

func (v Boolean) Type() Type     { return BooleanType }
func (v Boolean) Debug() string { return "Boolean(" + strconv.FormatBool(bool(v)) + ")" }

// Function holds only what is needed to call it: no defining environment is
// captured.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Node
}

func (v *Function) Type() Type { return FunctionType }
func (v *Function) Debug() string {
	return fmt.Sprintf("Function(%s(%s))", v.Name, strings.Join(v.Params, ", "))
}

type Null struct{}

func (v Null) Type() Type     { return NullType }
func (v Null) Debug() string { return "Null" }

func formatNumber(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}

// FromLiteral converts a parsed literal into its runtime value.
func FromLiteral(l ast.Literal) Value {
	switch v := l.(type) {
	case ast.NumberLiteral:
		return Number(float64(v))
	case ast.TextLiteral:
		return Text(string(v))
	case ast.BooleanLiteral:
		return Boolean(bool(v))
	}
	return Null{}
}

// Equal reports whether a and b are the same value. ok is false when the
// pair cannot be compared.
func Equal(a, b Value) (eq bool, ok bool) {
	switch a := a.(type) {
	case Number:
		if b, isNum := b.(Number); isNum {
			return a == b, true
		}
	case Text:
		if b, isText := b.(Text); isText {
			return a == b, true
		}
	case Boolean:
		if b, isBool := b.(Boolean); isBool {
			return a == b, true
		}
	case Null:
		if _, isNull := b.(Null); isNull {
			return true, true
		}
	}
	return false, false
}
