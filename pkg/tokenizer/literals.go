package tokenizer

import (
	"fmt"
	"strconv"
	"strings"
)

// matchString attempts to match a string literal delimited by double quotes.
func (t *Tokenizer) matchString() (*Token, error) {
	r, ok := t.peek()
	if !ok || r != '"' {
		return nil, nil
	}
	start := t.position
	t.consume() // Consume the opening quote

	var value strings.Builder
	for {
		if !t.hasMoreInput() {
			return nil, t.errUnterminated(start, "unterminated string literal")
		}
		r := t.consume()
		switch r {
		case '"':
			text := t.input[start:t.position]
			return NewStringToken(text, value.String(), t.spanFrom(start)), nil
		case '\\':
			decoded, err := t.readEscape('"', false)
			if err != nil {
				return nil, err
			}
			value.WriteRune(decoded)
		case '\n', '\t':
			return nil, t.errUnexpected(t.position-1, "unescaped line break or tab in string literal")
		default:
			value.WriteRune(r)
		}
	}
}

// matchChar attempts to match a character literal delimited by single quotes.
// The body is exactly one character, possibly escaped.
func (t *Tokenizer) matchChar() (*Token, error) {
	r, ok := t.peek()
	if !ok || r != '\'' {
		return nil, nil
	}
	start := t.position
	t.consume() // Consume the opening quote

	if !t.hasMoreInput() {
		return nil, t.errUnterminated(start, "unterminated character literal")
	}
	var decoded rune
	switch r := t.consume(); r {
	case '\'':
		return nil, t.errUnexpected(t.position-1, "empty character literal")
	case '\n', '\t':
		return nil, t.errUnexpected(t.position-1, "unescaped line break or tab in character literal")
	case '\\':
		var err error
		decoded, err = t.readEscape('\'', false)
		if err != nil {
			return nil, err
		}
	default:
		decoded = r
	}

	if !t.hasMoreInput() {
		return nil, t.errUnterminated(start, "unterminated character literal")
	}
	if r := t.consume(); r != '\'' {
		return nil, t.errUnexpected(t.position-1, fmt.Sprintf("expected closing quote in character literal, found %q", r))
	}
	text := t.input[start:t.position]
	return NewCharToken(text, decoded, t.spanFrom(start)), nil
}

// matchNumber attempts to match an integer or float literal. A digit run
// followed by '.' and at least one more digit is a float; the '.' is
// otherwise left alone so it can lex as a control character.
func (t *Tokenizer) matchNumber() (*Token, error) {
	digits := digitsRegex.FindString(t.input[t.position:])
	if digits == "" {
		return nil, nil
	}
	start := t.position
	t.advance(len(digits))

	if fraction := fractionRegex.FindString(t.input[t.position:]); fraction != "" {
		t.advance(len(fraction))
		text := t.input[start:t.position]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, t.errInvalidNumber(start, fmt.Sprintf("invalid float literal %q", text))
		}
		return NewFloatToken(text, value, t.spanFrom(start)), nil
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, t.errInvalidNumber(start, fmt.Sprintf("invalid integer literal %q", digits))
	}
	return NewIntToken(digits, value, t.spanFrom(start)), nil
}

// readEscape decodes the character following an already-consumed backslash.
// quote is the delimiter of the enclosing literal and is part of its escape
// set; allowBrace additionally admits \{ (format strings only).
func (t *Tokenizer) readEscape(quote rune, allowBrace bool) (rune, error) {
	slash := t.position - 1
	if !t.hasMoreInput() {
		return 0, t.errUnterminated(slash, "unterminated escape sequence")
	}
	r := t.consume()
	switch r {
	case '\\', quote:
		return r, nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case '{':
		if allowBrace {
			return '{', nil
		}
	}
	return 0, t.errUnexpected(slash, fmt.Sprintf("invalid escape sequence \\%c", r))
}
