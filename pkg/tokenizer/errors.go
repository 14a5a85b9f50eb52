package tokenizer

import "fmt"

// ErrorKind classifies the ways lexing can fail.
type ErrorKind int

const (
	// UnexpectedCharacter means no token rule matches at the current position.
	UnexpectedCharacter ErrorKind = iota
	// InvalidNumber means a digit run does not fit the numeric representation.
	InvalidNumber
	// UnterminatedLiteral means a string, character, format-string, or
	// inline-go block reached end of input before its terminator.
	UnterminatedLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case InvalidNumber:
		return "invalid number"
	case UnterminatedLiteral:
		return "unterminated literal"
	default:
		return "unknown"
	}
}

// Error is a lexing failure pinned to a source span. The span's start is the
// position at which the condition was detected: the opening delimiter for
// unterminated literals, the first digit for invalid numbers, the offending
// character otherwise.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
}

func (e *Error) Error() string {
	if e.Span.Context != nil {
		line, col := e.Span.Context.LineCol(e.Span.Start)
		return fmt.Sprintf("%s:%d:%d: %s", e.Span.Context.FileName, line, col, e.Message)
	}
	return e.Message
}

// errUnexpected reports an unexpected character at the given offset.
func (t *Tokenizer) errUnexpected(offset int, message string) error {
	end := offset
	if end < len(t.input) {
		end++
	}
	return &Error{
		Kind:    UnexpectedCharacter,
		Message: message,
		Span:    Span{Start: offset, End: end, Context: t.context},
	}
}

// errUnterminated reports a literal that began at start and ran out of input.
func (t *Tokenizer) errUnterminated(start int, message string) error {
	return &Error{
		Kind:    UnterminatedLiteral,
		Message: message,
		Span:    Span{Start: start, End: t.position, Context: t.context},
	}
}

// errInvalidNumber reports a digit run that does not parse.
func (t *Tokenizer) errInvalidNumber(start int, message string) error {
	return &Error{
		Kind:    InvalidNumber,
		Message: message,
		Span:    Span{Start: start, End: t.position, Context: t.context},
	}
}
