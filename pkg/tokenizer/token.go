package tokenizer

import "fmt"

// TokenType represents the different types of tokens. Keyword types use the
// keyword spelling itself as their value, so a keyword token's Text always
// equals string(Type).
type TokenType string

const (
	// Keywords
	ModuleToken   TokenType = "module"
	UseToken      TokenType = "use"
	TypeToken     TokenType = "type"
	DuckToken     TokenType = "duck"
	GoToken       TokenType = "go"
	StructToken   TokenType = "struct"
	FnToken       TokenType = "fn"
	ReturnToken   TokenType = "return"
	LetToken      TokenType = "let"
	IfToken       TokenType = "if"
	ElseToken     TokenType = "else"
	WhileToken    TokenType = "while"
	BreakToken    TokenType = "break"
	ContinueToken TokenType = "continue"
	AsToken       TokenType = "as"
	MatchToken    TokenType = "match"

	// Identifiers and symbols
	IdentToken       TokenType = "identifier"
	ControlCharToken TokenType = "control"
	EqualsToken      TokenType = "equals"     // ==
	ScopeResToken    TokenType = "scope-res"  // ::
	ThinArrowToken   TokenType = "thin-arrow" // ->

	// Literals
	StringToken       TokenType = "string"
	CharToken         TokenType = "char"
	IntToken          TokenType = "int"
	FloatToken        TokenType = "float"
	BoolToken         TokenType = "bool"
	InlineGoToken     TokenType = "inline-go"
	FormatStringToken TokenType = "format-string"
)

// keywordTable maps reserved words to their token types. Lookup happens only
// after the maximal identifier run has been extracted, so a keyword is never
// recognized as a prefix of a longer identifier.
var keywordTable = map[string]TokenType{
	"module":   ModuleToken,
	"use":      UseToken,
	"type":     TypeToken,
	"duck":     DuckToken,
	"go":       GoToken,
	"struct":   StructToken,
	"fn":       FnToken,
	"return":   ReturnToken,
	"let":      LetToken,
	"if":       IfToken,
	"else":     ElseToken,
	"while":    WhileToken,
	"break":    BreakToken,
	"continue": ContinueToken,
	"as":       AsToken,
	"match":    MatchToken,
}

// Token represents a single token from Gosling source code. Text is always
// the raw source slice; the pointer fields hold decoded literal payloads and
// are set only for the token types they belong to.
type Token struct {
	Text string    `json:"text" yaml:"text"`
	Type TokenType `json:"type" yaml:"type"`
	Span Span      `json:"span" yaml:"span"`

	// String literals (decoded) and inline-go blocks (braces stripped)
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`

	// Character literal (decoded, exactly one character)
	Char *string `json:"char,omitempty" yaml:"char,omitempty"`

	// Numeric and boolean literals
	Int   *int64   `json:"int,omitempty" yaml:"int,omitempty"`
	Float *float64 `json:"float,omitempty" yaml:"float,omitempty"`
	Bool  *bool    `json:"bool,omitempty" yaml:"bool,omitempty"`

	// Format-string literal contents, in source order
	Contents []FmtContent `json:"contents,omitempty" yaml:"contents,omitempty"`
}

// FmtContent is one item of a format-string literal: either a single decoded
// literal character, or the token sequence of an embedded {...} section.
// Exactly one of the two fields is set.
type FmtContent struct {
	Char   *string  `json:"char,omitempty" yaml:"char,omitempty"`
	Tokens []*Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// NewToken creates a new token with the basic required fields.
func NewToken(text string, tokenType TokenType, span Span) *Token {
	return &Token{
		Text: text,
		Type: tokenType,
		Span: span,
	}
}

// NewIdentToken creates an identifier token holding its text.
func NewIdentToken(text string, span Span) *Token {
	return NewToken(text, IdentToken, span)
}

// NewControlCharToken creates a token for a single control character.
func NewControlCharToken(c rune, span Span) *Token {
	return NewToken(string(c), ControlCharToken, span)
}

// NewStringToken creates a string literal token with its decoded value.
func NewStringToken(text, value string, span Span) *Token {
	token := NewToken(text, StringToken, span)
	token.Value = &value
	return token
}

// NewCharToken creates a character literal token with its decoded character.
func NewCharToken(text string, c rune, span Span) *Token {
	token := NewToken(text, CharToken, span)
	decoded := string(c)
	token.Char = &decoded
	return token
}

// NewIntToken creates an integer literal token.
func NewIntToken(text string, value int64, span Span) *Token {
	token := NewToken(text, IntToken, span)
	token.Int = &value
	return token
}

// NewFloatToken creates a float literal token.
func NewFloatToken(text string, value float64, span Span) *Token {
	token := NewToken(text, FloatToken, span)
	token.Float = &value
	return token
}

// NewBoolToken creates a boolean literal token.
func NewBoolToken(text string, value bool, span Span) *Token {
	token := NewToken(text, BoolToken, span)
	token.Bool = &value
	return token
}

// NewInlineGoToken creates an inline-go token. body is the verbatim text
// between the outermost braces, which are not included.
func NewInlineGoToken(text, body string, span Span) *Token {
	token := NewToken(text, InlineGoToken, span)
	token.Value = &body
	return token
}

// NewFormatStringToken creates a format-string literal token from its ordered
// contents.
func NewFormatStringToken(text string, contents []FmtContent, span Span) *Token {
	token := NewToken(text, FormatStringToken, span)
	token.Contents = contents
	return token
}

// String renders a short human-readable description of the token, suitable
// for diagnostics.
func (t *Token) String() string {
	switch t.Type {
	case IdentToken:
		return fmt.Sprintf("identifier %q", t.Text)
	case ControlCharToken:
		return fmt.Sprintf("%q", t.Text)
	case StringToken:
		return fmt.Sprintf("string %q", *t.Value)
	case FormatStringToken:
		return "format string"
	case InlineGoToken:
		return "inline go"
	default:
		return t.Text
	}
}

// EraseSpans recursively rewrites every span in the token to the zero Span,
// descending through format-string contents at any nesting depth. It lets
// tests compare token content independent of position; the lexing pipeline
// itself never calls it.
func EraseSpans(token *Token) {
	token.Span = Span{}
	for _, content := range token.Contents {
		for _, nested := range content.Tokens {
			EraseSpans(nested)
		}
	}
}
