package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer is a cursor over one immutable source text. A fresh instance is
// used per file; nothing is shared across Tokenize calls except the read-only
// input and its Context.
type Tokenizer struct {
	input     string
	position  int
	context   *Context
	markStack []int // Stack of position markers for backtracking
}

// Regular expressions for token matching
var (
	identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)
	digitsRegex     = regexp.MustCompile(`^[0-9]+`)
	fractionRegex   = regexp.MustCompile(`^\.[0-9]+`)
)

// controlChars is the fixed set of single-character symbol tokens.
const controlChars = "!=:{};,&()->.+*/%|[]"

// NewTokenizer creates a tokenizer for one source file. fileName is only used
// for diagnostics; input is the full file text.
func NewTokenizer(fileName, input string) *Tokenizer {
	return &Tokenizer{
		input:   input,
		context: &Context{FileName: fileName, Contents: input},
	}
}

// Lex tokenizes a whole file in one call.
func Lex(fileName, input string) ([]*Token, error) {
	return NewTokenizer(fileName, input).Tokenize()
}

// Tokenize processes the input and returns the token sequence in program
// order. On failure it returns the tokens produced before the error together
// with the error itself, so callers can hold partial output alongside the
// diagnostic. Empty or whitespace-only input yields an empty sequence.
func (t *Tokenizer) Tokenize() ([]*Token, error) {
	tokens := make([]*Token, 0)
	for {
		t.skipWhitespace()
		if !t.hasMoreInput() {
			return tokens, nil
		}
		token, err := t.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, token)
	}
}

// nextToken produces exactly one token from the current position, which must
// not be at end of input or on whitespace.
//
// The order of the alternatives is load-bearing: "->" and "::" must come
// before the single control characters '-' and ':', boolean literals before
// the identifier rule, and inline-go / format-string recognition before the
// "go" keyword and the 'f' identifier. A rule that fails without consuming
// input falls through to the next; a rule that has committed (an opening
// quote, an "f\"" prefix, "go" plus whitespace plus '{') reports a hard error
// instead.
func (t *Tokenizer) nextToken() (*Token, error) {
	if token, err := t.matchInlineGo(); token != nil || err != nil {
		return token, err
	}
	if token, err := t.matchFormatString(); token != nil || err != nil {
		return token, err
	}
	if token := t.matchSymbol("->", ThinArrowToken); token != nil {
		return token, nil
	}
	if token := t.matchSymbol("::", ScopeResToken); token != nil {
		return token, nil
	}
	if token := t.matchBool(); token != nil {
		return token, nil
	}
	if token := t.matchSymbol("==", EqualsToken); token != nil {
		return token, nil
	}
	if token := t.matchIdentOrKeyword(); token != nil {
		return token, nil
	}
	if token := t.matchControlChar(); token != nil {
		return token, nil
	}
	if token, err := t.matchString(); token != nil || err != nil {
		return token, err
	}
	if token, err := t.matchNumber(); token != nil || err != nil {
		return token, err
	}
	if token, err := t.matchChar(); token != nil || err != nil {
		return token, err
	}

	r, _ := t.peek()
	return nil, t.errUnexpected(t.position, fmt.Sprintf("unexpected character %q", r))
}

// matchSymbol matches a fixed multi-character symbol.
func (t *Tokenizer) matchSymbol(text string, tokenType TokenType) *Token {
	start := t.position
	if !t.tryConsumeText(text) {
		return nil
	}
	return NewToken(text, tokenType, t.spanFrom(start))
}

// matchBool matches the boolean literals. The maximal identifier run is
// extracted first, so trueX stays an identifier.
func (t *Tokenizer) matchBool() *Token {
	word := identifierRegex.FindString(t.input[t.position:])
	if word != "true" && word != "false" {
		return nil
	}
	start := t.position
	t.advance(len(word))
	return NewBoolToken(word, word == "true", t.spanFrom(start))
}

// matchIdentOrKeyword extracts the maximal identifier run and classifies the
// whole of it against the keyword table.
func (t *Tokenizer) matchIdentOrKeyword() *Token {
	word := identifierRegex.FindString(t.input[t.position:])
	if word == "" {
		return nil
	}
	start := t.position
	t.advance(len(word))
	if tokenType, ok := keywordTable[word]; ok {
		return NewToken(word, tokenType, t.spanFrom(start))
	}
	return NewIdentToken(word, t.spanFrom(start))
}

// matchControlChar matches one character from the fixed symbol set.
func (t *Tokenizer) matchControlChar() *Token {
	r, ok := t.peek()
	if !ok || !strings.ContainsRune(controlChars, r) {
		return nil
	}
	start := t.position
	t.consume()
	return NewControlCharToken(r, t.spanFrom(start))
}

// skipWhitespace advances past any run of whitespace characters.
func (t *Tokenizer) skipWhitespace() {
	for t.hasMoreInput() {
		r, _ := t.peek()
		if !unicode.IsSpace(r) {
			break
		}
		t.consume()
	}
}

// spanFrom builds the span of a token whose first byte is at start and whose
// last byte is just before the current position.
func (t *Tokenizer) spanFrom(start int) Span {
	return Span{Start: start, End: t.position, Context: t.context}
}

// hasMoreInput reports whether any input remains to be processed.
func (t *Tokenizer) hasMoreInput() bool {
	return t.position < len(t.input)
}

func (t *Tokenizer) peek() (rune, bool) {
	if !t.hasMoreInput() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(t.input[t.position:])
	return r, size > 0
}

// consume reads the current rune and advances past it.
func (t *Tokenizer) consume() rune {
	r, size := utf8.DecodeRuneInString(t.input[t.position:])
	t.position += size
	return r
}

// tryConsumeText consumes the given text if the input starts with it.
func (t *Tokenizer) tryConsumeText(text string) bool {
	if strings.HasPrefix(t.input[t.position:], text) {
		t.advance(len(text))
		return true
	}
	return false
}

// advance moves the position forward by n bytes.
func (t *Tokenizer) advance(n int) {
	t.position += n
	if t.position > len(t.input) {
		t.position = len(t.input)
	}
}

// markPosition remembers the current position so a rule that consumes input
// before discovering it cannot match can rewind.
func (t *Tokenizer) markPosition() {
	t.markStack = append(t.markStack, t.position)
}

// resetPosition rewinds to the most recent mark.
func (t *Tokenizer) resetPosition() {
	if len(t.markStack) == 0 {
		return
	}
	n1 := len(t.markStack) - 1
	t.position = t.markStack[n1]
	t.markStack = t.markStack[:n1]
}

// dropMark discards the most recent mark without rewinding.
func (t *Tokenizer) dropMark() {
	if len(t.markStack) > 0 {
		t.markStack = t.markStack[:len(t.markStack)-1]
	}
}
