package tokenizer

import "unicode"

// matchInlineGo attempts to match an inline host-code block: the keyword "go",
// at least one whitespace character, then a brace-balanced {...} group whose
// interior is captured verbatim. Without the whitespace or the brace this
// backtracks completely and "go" lexes as an ordinary keyword.
func (t *Tokenizer) matchInlineGo() (*Token, error) {
	t.markPosition()
	start := t.position
	if !t.tryConsumeText("go") {
		t.dropMark()
		return nil, nil
	}

	sawWhitespace := false
	for t.hasMoreInput() {
		r, _ := t.peek()
		if !unicode.IsSpace(r) {
			break
		}
		t.consume()
		sawWhitespace = true
	}
	r, ok := t.peek()
	if !sawWhitespace || !ok || r != '{' {
		t.resetPosition()
		return nil, nil
	}
	t.dropMark()

	body, err := t.readBraceBalanced(start, "unterminated inline go block")
	if err != nil {
		return nil, err
	}
	text := t.input[start:t.position]
	return NewInlineGoToken(text, body, t.spanFrom(start)), nil
}

// readBraceBalanced consumes a {...} group starting at the current '{',
// tracking nesting depth, and returns the interior text with the outermost
// brace pair stripped. The interior is opaque: no string, escape, or comment
// awareness applies, only brace balance.
func (t *Tokenizer) readBraceBalanced(literalStart int, unterminatedMsg string) (string, error) {
	open := t.position
	t.consume() // Consume the '{'
	depth := 1
	for t.hasMoreInput() {
		switch t.consume() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return t.input[open+1 : t.position-1], nil
			}
		}
	}
	return "", t.errUnterminated(literalStart, unterminatedMsg)
}
