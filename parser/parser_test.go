package parser

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/lovego/ast"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/lexer"
	"github.com/pontaoski/lovego/token"
	"github.com/ztrue/tracerr"
)

func parseSource(t *testing.T, src string) (ast.Program, error) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("%q: lex error %s", src, err)
	}
	return Parse(toks)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"heart x match 3 cuddle 4;", "(program [(heart x (cuddle 3 4))])"},
		{"forever y: number match 1;", "(program [(forever y:number 1)])"},
		{"1 cuddle 2 kiss 3;", "(program [(cuddle 1 (kiss 2 3));])"},
		{"(1 cuddle 2) kiss 3;", "(program [(kiss (group (cuddle 1 2)) 3);])"},
		{"1 breakup 2 breakup 3;", "(program [(breakup (breakup 1 2) 3);])"},
		{"8 split 4 split 2;", "(program [(split (split 8 4) 2);])"},
		{"a envies b soulmate c admires d;", "(program [(soulmate (envies a b) (admires c d));])"},
		{"a yearns b adores c;", "(program [(adores (yearns a b) c);])"},
		{"a or b and c;", "(program [(or a (and b c));])"},
		{"a and b heartbreak c;", "(program [(and a (heartbreak b c));])"},
		{"not not yes;", "(program [(not (not yes));])"},
		{"not a soulmate b;", "(program [(soulmate (not a) b);])"},
		{"x match y match 3;", "(program [(match x (match y 3));])"},
		{"x match 1 cuddle 2;", "(program [(match x (cuddle 1 2));])"},
		{`whisper "hi";`, `(program [(whisper "hi")])`},
		{"whisper lonely;", "(program [(whisper lonely)])"},
		{"promise;", "(program [(promise)])"},
		{"promise 1;", "(program [(promise 1)])"},
		{"{ heart a match 1; a; }", "(program [(block [(heart a 1) a;])])"},
		{"{}", "(program [(block [])])"},
		{"crush (yes) { 1; }", "(program [(crush yes [1;])])"},
		{"crush (x) { 1; } butterflies { 2; }", "(program [(crush x [1;] [2;])])"},
		{"dating (i envies 3) { i match i cuddle 1; }", "(program [(dating (envies i 3) [(match i (cuddle i 1));])])"},
		{"devotion add(x: number, y: number) -> number { promise x cuddle y; }", "(program [(devotion add(x:number, y:number) -> number [(promise (cuddle x y))])])"},
		{"devotion hello() { whisper \"hi\"; }", "(program [(devotion hello() [(whisper \"hi\")])])"},
		{"add(1, 2 kiss 3);", "(program [(call add [1 (kiss 2 3)]);])"},
		{"f();", "(program [(call f []);])"},
		{"heart a match 1; heart b match 2;", "(program [(heart a 1) (heart b 2)])"},
		{"", "(program [])"},
	}

	for _, tt := range tests {
		prog, err := parseSource(t, tt.input)
		if err != nil {
			t.Errorf("%q: unexpected error %s", tt.input, err)
			continue
		}
		if got := ast.Sexp(prog); got != tt.want {
			t.Errorf("%q:\n got %s\nwant %s", tt.input, got, tt.want)
		}
	}
}

func TestElseBranchPresence(t *testing.T) {
	prog, err := parseSource(t, "crush (yes) {} butterflies {}")
	if err != nil {
		t.Fatal(err)
	}
	node := prog.Statements[0].(ast.If)
	if node.Else == nil {
		t.Fatalf("empty else branch should be recorded: %s", repr.String(node))
	}

	prog, err = parseSource(t, "crush (yes) {}")
	if err != nil {
		t.Fatal(err)
	}
	if prog.Statements[0].(ast.If).Else != nil {
		t.Fatal("missing else branch should be nil")
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"1 match 2;", "Invalid assignment target"},
		{"(x) match 2;", "Invalid assignment target"},
		{"heart match 1;", "Expected variable name"},
		{"heart x 1;", "Expected 'match' after variable name"},
		{"heart x match 1", "Expected ';' after variable declaration"},
		{"heart x: banana match 1;", "Expected type"},
		{"x cuddle;", "Expected expression"},
		{"1 2;", "Expected ';' after expression"},
		{"(1;", "Expected ')' after expression"},
		{"whisper 1", "Expected ';' after value"},
		{"crush yes { }", "Expected '(' after 'crush'"},
		{"crush (yes { }", "Expected ')' after condition"},
		{"crush (yes) 1;", "Expected '{' before block"},
		{"dating yes { }", "Expected '(' after 'dating'"},
		{"{ 1;", "Expected '}' after block"},
		{"promise 1", "Expected ';' after return value"},
		{"devotion (x: number) {}", "Expected function name"},
		{"devotion f x: number) {}", "Expected '(' after function name"},
		{"devotion f(1) {}", "Expected parameter name"},
		{"devotion f(x number) {}", "Expected ':' after parameter name"},
		{"devotion f(x: number {}", "Expected ')' after parameters"},
		{"devotion f(x: number) -> {}", "Expected type"},
		{"devotion f(x: number)", "Expected '{' before block"},
		{"f(1, 2;", "Expected ')' after arguments"},
		{"relationship;", "Expected expression"},
		{"}", "Expected expression"},
	}

	for _, tt := range tests {
		prog, err := parseSource(t, tt.input)
		if err == nil {
			t.Errorf("%q: expected error, got %s", tt.input, ast.Sexp(prog))
			continue
		}
		if errors.KindOf(err) != errors.Syntax {
			t.Errorf("%q: got kind %s", tt.input, errors.KindOf(err))
		}
		serr, ok := tracerr.Unwrap(err).(errors.SyntaxError)
		if !ok {
			t.Fatalf("%q: got %T", tt.input, tracerr.Unwrap(err))
		}
		if serr.Message != tt.msg {
			t.Errorf("%q: got %q, want %q", tt.input, serr.Message, tt.msg)
		}
		if len(prog.Statements) != 0 {
			t.Errorf("%q: partial result %s", tt.input, ast.Sexp(prog))
		}
	}
}

// Every prefix of a valid program must either parse or fail cleanly.
func TestPrefixesTerminate(t *testing.T) {
	src := `devotion add(x: number, y: number) -> number { promise x cuddle y; }
heart total match add(1, 2);
crush (total admires 2 and not no) { whisper "big"; } butterflies { whisper "small"; }
dating (total envies 10) { total match total cuddle 1; }`

	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= len(toks); i++ {
		prefix := append([]token.Token(nil), toks[:i]...)
		_, _ = Parse(prefix)
	}
	if _, err := Parse(toks); err != nil {
		t.Fatalf("full program: %s", err)
	}
}
