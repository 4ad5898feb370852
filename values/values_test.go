package values

import (
	"math"
	"testing"

	"github.com/pontaoski/lovego/ast"
)

func TestDebug(t *testing.T) {
	tests := []struct {
		value Value
		want  string
		kind  Type
	}{
		{Number(7), "Number(7.0)", NumberType},
		{Number(-0.5), "Number(-0.5)", NumberType},
		{Number(math.Inf(1)), "Number(+Inf)", NumberType},
		{Text(`say "hi"`), `Text("say \"hi\"")`, TextType},
		{Boolean(false), "Boolean(false)", BooleanType},
		{Null{}, "Null", NullType},
		{&Function{Name: "f", Params: []string{"a", "b"}}, "Function(f(a, b))", FunctionType},
	}

	for _, tt := range tests {
		if got := tt.value.Debug(); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
		if tt.value.Type() != tt.kind {
			t.Errorf("%s: got type %s, want %s", tt.want, tt.value.Type(), tt.kind)
		}
	}
}

func TestFromLiteral(t *testing.T) {
	if v := FromLiteral(ast.NumberLiteral(3)); v != Number(3) {
		t.Errorf("got %s", v.Debug())
	}
	if v := FromLiteral(ast.TextLiteral("x")); v != Text("x") {
		t.Errorf("got %s", v.Debug())
	}
	if v := FromLiteral(ast.BooleanLiteral(true)); v != Boolean(true) {
		t.Errorf("got %s", v.Debug())
	}
	if _, ok := FromLiteral(ast.NullLiteral{}).(Null); !ok {
		t.Error("lonely should be Null")
	}
}

func TestFromDeclared(t *testing.T) {
	if FromDeclared(ast.DeclaredNumber) != NumberType || FromDeclared(ast.DeclaredText) != TextType || FromDeclared(ast.DeclaredFeeling) != BooleanType {
		t.Error("declared types map wrongly")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b   Value
		eq, ok bool
	}{
		{Number(1), Number(1), true, true},
		{Number(1), Number(2), false, true},
		{Text("a"), Text("a"), true, true},
		{Boolean(true), Boolean(false), false, true},
		{Null{}, Null{}, true, true},
		{Number(1), Text("1"), false, false},
		{&Function{Name: "f"}, &Function{Name: "f"}, false, false},
	}

	for _, tt := range tests {
		eq, ok := Equal(tt.a, tt.b)
		if eq != tt.eq || ok != tt.ok {
			t.Errorf("%s vs %s: got (%v, %v)", tt.a.Debug(), tt.b.Debug(), eq, ok)
		}
	}
}
