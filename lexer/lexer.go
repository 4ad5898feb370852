package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lovego/errors"
	"github.com/pontaoski/lovego/token"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lovego", "lexer")

type Lexer struct {
	pos    token.Position
	reader *bufio.Reader
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    token.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

// Tokenize lexes the whole of source. Either every token is returned or the
// first lexical error is; there is no partial result.
func Tokenize(source string) ([]token.Token, error) {
	return NewLexer(strings.NewReader(source), "").All()
}

// All lexes until EOF. The EOF token itself is not included.
func (l *Lexer) All() (toks []token.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			lerr, ok := r.(errors.LexError)
			if !ok {
				panic(r)
			}
			toks = nil
			err = tracerr.Wrap(lerr)
		}
	}()

	for {
		tok := l.Lex()
		if tok.Kind == token.EOF {
			plog.Tracef("lexed %d tokens", len(toks))
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos.Column--
}

// read returns the next rune, or ok=false at end of input.
func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	l.pos.Column++
	return r, true
}

func (l *Lexer) peekByte() byte {
	byt, err := l.reader.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0
		}
		panic(err)
	}
	return byt[0]
}

func (l *Lexer) illegal(at token.Position) {
	panic(errors.LexError{Location: at})
}

func (l *Lexer) kinded(t token.Kind, from token.Position) token.Token {
	return token.Token{
		Location: token.Span{From: from, To: l.pos},
		Kind:     t,
	}
}

func firstChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func (l *Lexer) lexIdent(first rune) string {
	var lit strings.Builder
	lit.WriteRune(first)

	for {
		r, ok := l.read()
		if !ok {
			return lit.String()
		}
		if !otherChar(r) {
			l.backup()
			return lit.String()
		}
		lit.WriteRune(r)
	}
}

func (l *Lexer) lexNumber(first rune, from token.Position) token.Token {
	var lit strings.Builder
	lit.WriteRune(first)

	for {
		r, ok := l.read()
		if !ok {
			break
		}
		if !isDigit(r) {
			l.backup()
			break
		}
		lit.WriteRune(r)
	}

	n, err := strconv.ParseInt(lit.String(), 10, 64)
	if err != nil {
		l.illegal(from)
	}

	tok := l.kinded(token.NUMBER, from)
	tok.Number = n
	return tok
}

// lexText is called after the opening quote has been read.
func (l *Lexer) lexText(from token.Position) token.Token {
	var lit strings.Builder

	for {
		r, ok := l.read()
		if !ok {
			l.illegal(from)
		}
		switch r {
		case '"':
			tok := l.kinded(token.TEXT, from)
			tok.Name = lit.String()
			return tok
		case '\n':
			l.newline()
		}
		lit.WriteRune(r)
	}
}

func (l *Lexer) skipComment() {
	for {
		r, ok := l.read()
		if !ok {
			return
		}
		if r == '\n' {
			l.backup()
			return
		}
	}
}

// Lex returns the next token. Unrecognised input panics with an
// errors.LexError, which All recovers.
func (l *Lexer) Lex() token.Token {
	for {
		r, ok := l.read()
		if !ok {
			return l.kinded(token.EOF, l.pos)
		}
		from := l.pos

		if isSpace(r) {
			if r == '\n' {
				l.newline()
			}
			continue
		}

		if kind, ok := token.Punctuation[r]; ok {
			return l.kinded(kind, from)
		}

		switch {
		case r == '/':
			if l.peekByte() == '/' {
				l.skipComment()
				continue
			}
		case r == '-':
			next := l.peekByte()
			if next == '>' {
				l.read()
				return l.kinded(token.ARROW, from)
			}
			if isDigit(rune(next)) {
				return l.lexNumber(r, from)
			}
		case r == '"':
			return l.lexText(from)
		case isDigit(r):
			return l.lexNumber(r, from)
		case firstChar(r):
			lit := l.lexIdent(r)
			if kind, ok := token.Keywords[lit]; ok {
				return l.kinded(kind, from)
			}
			tok := l.kinded(token.IDENT, from)
			tok.Name = lit
			return tok
		}

		l.illegal(from)
	}
}
