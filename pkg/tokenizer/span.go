package tokenizer

import "encoding/json"

// Context is the shared identity of one source file: its name and full text.
// Every span produced from a file points at the same Context value, so it must
// never be mutated after lexing starts. Line/column coordinates are not stored
// anywhere; they are derived from the contents on demand.
type Context struct {
	FileName string
	Contents string
}

// LineCol converts a byte offset into 1-based line and column numbers.
func (c *Context) LineCol(offset int) (line, col int) {
	line, col = 1, 1
	if offset > len(c.Contents) {
		offset = len(c.Contents)
	}
	for _, b := range []byte(c.Contents[:offset]) {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Span is a half-open byte interval [Start, End) into Context.Contents.
// Offsets are always relative to the whole file, including for tokens nested
// inside format-string sections.
type Span struct {
	Start   int
	End     int
	Context *Context
}

// MarshalJSON implements custom JSON marshaling for Span.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

// UnmarshalJSON implements custom JSON unmarshaling for Span. The context is
// not part of the wire format and is left nil.
func (s *Span) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	s.Start = arr[0]
	s.End = arr[1]
	s.Context = nil
	return nil
}

// MarshalYAML keeps the YAML output shape identical to the JSON one.
func (s Span) MarshalYAML() (interface{}, error) {
	return [2]int{s.Start, s.End}, nil
}
