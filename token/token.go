package token

import (
	"fmt"
	"strconv"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// literals
	NUMBER
	TEXT
	YES
	NO
	LONELY

	IDENT

	// keywords
	HEART
	FOREVER
	DEVOTION
	CRUSH
	BUTTERFLIES
	DATING
	PROMISE
	WHISPER
	RELATIONSHIP

	// type names
	TYPE_NUMBER
	TYPE_TEXT
	TYPE_FEELING

	// operators
	CUDDLE
	BREAKUP
	KISS
	SPLIT
	MATCH
	SOULMATE
	HEARTBREAK
	ADMIRES
	ADORES
	ENVIES
	YEARNS
	NOT
	AND
	OR

	// punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON
	COMMA
	COLON
	ARROW
)

var kindNames = map[Kind]string{
	EOF:          "EOF",
	ILLEGAL:      "ILLEGAL",
	NUMBER:       "NUMBER",
	TEXT:         "TEXT",
	YES:          "YES",
	NO:           "NO",
	LONELY:       "LONELY",
	IDENT:        "IDENT",
	HEART:        "HEART",
	FOREVER:      "FOREVER",
	DEVOTION:     "DEVOTION",
	CRUSH:        "CRUSH",
	BUTTERFLIES:  "BUTTERFLIES",
	DATING:       "DATING",
	PROMISE:      "PROMISE",
	WHISPER:      "WHISPER",
	RELATIONSHIP: "RELATIONSHIP",
	TYPE_NUMBER:  "TYPE_NUMBER",
	TYPE_TEXT:    "TYPE_TEXT",
	TYPE_FEELING: "TYPE_FEELING",
	CUDDLE:       "CUDDLE",
	BREAKUP:      "BREAKUP",
	KISS:         "KISS",
	SPLIT:        "SPLIT",
	MATCH:        "MATCH",
	SOULMATE:     "SOULMATE",
	HEARTBREAK:   "HEARTBREAK",
	ADMIRES:      "ADMIRES",
	ADORES:       "ADORES",
	ENVIES:       "ENVIES",
	YEARNS:       "YEARNS",
	NOT:          "NOT",
	AND:          "AND",
	OR:           "OR",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	SEMICOLON:    "SEMICOLON",
	COMMA:        "COMMA",
	COLON:        "COLON",
	ARROW:        "ARROW",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps every reserved word to its token kind. Words listed here never
// lex as identifiers.
var Keywords = map[string]Kind{
	"heart":        HEART,
	"forever":      FOREVER,
	"devotion":     DEVOTION,
	"crush":        CRUSH,
	"butterflies":  BUTTERFLIES,
	"lonely":       LONELY,
	"dating":       DATING,
	"promise":      PROMISE,
	"whisper":      WHISPER,
	"relationship": RELATIONSHIP,
	"number":       TYPE_NUMBER,
	"text":         TYPE_TEXT,
	"feeling":      TYPE_FEELING,
	"yes":          YES,
	"no":           NO,
	"cuddle":       CUDDLE,
	"breakup":      BREAKUP,
	"kiss":         KISS,
	"split":        SPLIT,
	"match":        MATCH,
	"soulmate":     SOULMATE,
	"heartbreak":   HEARTBREAK,
	"admires":      ADMIRES,
	"adores":       ADORES,
	"envies":       ENVIES,
	"yearns":       YEARNS,
	"not":          NOT,
	"and":          AND,
	"or":           OR,
}

// Punctuation maps single-character punctuation to its kind. The arrow is
// two characters long and is handled by the lexer directly.
var Punctuation = map[rune]Kind{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	';': SEMICOLON,
	',': COMMA,
	':': COLON,
}

var lexemes = func() map[Kind]string {
	m := map[Kind]string{ARROW: "->"}
	for word, kind := range Keywords {
		m[kind] = word
	}
	for r, kind := range Punctuation {
		m[kind] = string(r)
	}
	return m
}()

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Token struct {
	Kind     Kind
	Location Span

	// Name holds the identifier name or the text literal contents.
	Name   string
	Number int64
}

func (t Token) Is(kinds ...Kind) bool {
	for _, kind := range kinds {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// String renders the token the way it is spelled in source, so lexing the
// result yields an equivalent token.
func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return strconv.FormatInt(t.Number, 10)
	case TEXT:
		return `"` + t.Name + `"`
	case IDENT:
		return t.Name
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ERROR"
	}
	return lexemes[t.Kind]
}
