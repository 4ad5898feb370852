package errors

import (
	"fmt"
	"testing"

	"github.com/pontaoski/lovego/token"
	"github.com/ztrue/tracerr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{LexError{Location: token.Position{Line: 2, Column: 4}}, Lexical},
		{tracerr.Wrap(SyntaxError{Message: "Expected expression"}), Syntax},
		{tracerr.Wrap(NewRuntimeError("cannot divide by zero")), Runtime},
		{TypeError{Expected: "Number", Found: "Text", Value: `Text("a")`}, Type},
		{fmt.Errorf("plain"), Unknown},
		{nil, Unknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.kind {
			t.Errorf("%v: got %s, want %s", tt.err, got, tt.kind)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{tracerr.Wrap(LexError{Location: token.Position{Line: 2, Column: 4}}), "Lexer error: Invalid token at line 2, column 4"},
		{SyntaxError{Message: "Expected type"}, "Parser error: Expected type"},
		{NewRuntimeError("Undefined variable '%s'.", "x"), "Runtime error: Undefined variable 'x'."},
		{TypeError{Expected: "Number", Found: "Text", Value: `Text("a")`}, `Type error: Expected Number, but found Text (Text("a"))`},
	}

	for _, tt := range tests {
		if got := Format(tt.err); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
