package tokenizer

import "strings"

// matchFormatString attempts to match a format-string literal, triggered by
// an f" prefix. The body interleaves literal characters with embedded {...}
// sections whose interiors are lexed by the full dispatcher, so format
// strings nest to arbitrary depth.
func (t *Tokenizer) matchFormatString() (*Token, error) {
	if !strings.HasPrefix(t.input[t.position:], `f"`) {
		return nil, nil
	}
	start := t.position
	t.advance(2)

	var contents []FmtContent
	for {
		if !t.hasMoreInput() {
			return nil, t.errUnterminated(start, "unterminated format string")
		}
		r, _ := t.peek()
		switch r {
		case '"':
			t.consume()
			text := t.input[start:t.position]
			return NewFormatStringToken(text, contents, t.spanFrom(start)), nil
		case '{':
			tokens, err := t.lexEmbeddedTokens(start, false)
			if err != nil {
				return nil, err
			}
			contents = append(contents, FmtContent{Tokens: tokens})
		case '\\':
			t.consume()
			decoded, err := t.readEscape('"', true)
			if err != nil {
				return nil, err
			}
			contents = append(contents, fmtChar(decoded))
		case '\n', '\t':
			return nil, t.errUnexpected(t.position, "unescaped line break or tab in format string")
		default:
			t.consume()
			contents = append(contents, fmtChar(r))
		}
	}
}

// lexEmbeddedTokens lexes ordinary tokens from the '{' at the current
// position up to and including its matching '}'. An immediate nested '{'
// descends one brace-group level instead of ending the section.
//
// keepBraces controls what happens to the boundary braces: the outermost
// section drops them (they delimit the format string, they are not tokens of
// the embedded code), while nested brace groups keep theirs as real
// control-character tokens with their actual file spans.
func (t *Tokenizer) lexEmbeddedTokens(literalStart int, keepBraces bool) ([]*Token, error) {
	tokens := make([]*Token, 0)

	openStart := t.position
	t.consume() // Consume the '{'
	if keepBraces {
		tokens = append(tokens, NewControlCharToken('{', t.spanFrom(openStart)))
	}

	for {
		t.skipWhitespace()
		if !t.hasMoreInput() {
			return nil, t.errUnterminated(literalStart, "unterminated format string")
		}
		r, _ := t.peek()
		switch r {
		case '}':
			closeStart := t.position
			t.consume()
			if keepBraces {
				tokens = append(tokens, NewControlCharToken('}', t.spanFrom(closeStart)))
			}
			return tokens, nil
		case '{':
			nested, err := t.lexEmbeddedTokens(literalStart, true)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, nested...)
		default:
			token, err := t.nextToken()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)
		}
	}
}

func fmtChar(r rune) FmtContent {
	decoded := string(r)
	return FmtContent{Char: &decoded}
}
