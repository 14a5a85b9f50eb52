package tokenizer

import (
	"reflect"
	"testing"
)

func TestFormatStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []*Token
	}{
		{
			"Empty",
			`f""`,
			[]*Token{fstr(`f""`)},
		},
		{
			"Plain characters",
			`f"ab"`,
			[]*Token{fstr(`f"ab"`, fmtCh('a'), fmtCh('b'))},
		},
		{
			"Single embedded token",
			`f"{1}"`,
			[]*Token{fstr(`f"{1}"`, fmtToks(integer("1", 1)))},
		},
		{
			"Empty embedded section",
			`f"{}"`,
			[]*Token{fstr(`f"{}"`, fmtToks())},
		},
		{
			"Characters around a section",
			`f"FMT {var}"`,
			[]*Token{fstr(`f"FMT {var}"`,
				fmtCh('F'), fmtCh('M'), fmtCh('T'), fmtCh(' '),
				fmtToks(ident("var")),
			)},
		},
		{
			"Nested brace groups keep their boundary braces",
			`f"{{{1}}}"`,
			[]*Token{fstr(`f"{{{1}}}"`,
				fmtToks(ctrl('{'), ctrl('{'), integer("1", 1), ctrl('}'), ctrl('}')),
			)},
		},
		{
			"Struct literal inside a section",
			`f"{ Point{1, 2} }"`,
			[]*Token{fstr(`f"{ Point{1, 2} }"`,
				fmtToks(ident("Point"), ctrl('{'), integer("1", 1), ctrl(','), integer("2", 2), ctrl('}')),
			)},
		},
		{
			"Escaped braces are literal characters",
			`f"\{1}"`,
			[]*Token{fstr(`f"\{1}"`, fmtCh('{'), fmtCh('1'), fmtCh('}'))},
		},
		{
			"Escape sequences",
			`f"a\n\t\"\\b"`,
			[]*Token{fstr(`f"a\n\t\"\\b"`,
				fmtCh('a'), fmtCh('\n'), fmtCh('\t'), fmtCh('"'), fmtCh('\\'), fmtCh('b'),
			)},
		},
		{
			"Expression in a section",
			`f"{a + b}"`,
			[]*Token{fstr(`f"{a + b}"`,
				fmtToks(ident("a"), ctrl('+'), ident("b")),
			)},
		},
		{
			"String literal in a section",
			`f"{"x"}"`,
			[]*Token{fstr(`f"{"x"}"`, fmtToks(str(`"x"`, "x")))},
		},
		{
			"Nested format string",
			`f"{f"x"}"`,
			[]*Token{fstr(`f"{f"x"}"`,
				fmtToks(fstr(`f"x"`, fmtCh('x'))),
			)},
		},
		{
			"Doubly nested format string",
			`f"a{f"b{c}"}"`,
			[]*Token{fstr(`f"a{f"b{c}"}"`,
				fmtCh('a'),
				fmtToks(fstr(`f"b{c}"`, fmtCh('b'), fmtToks(ident("c")))),
			)},
		},
		{
			"Multiple sections",
			`f"{a}-{b}"`,
			[]*Token{fstr(`f"{a}-{b}"`,
				fmtToks(ident("a")), fmtCh('-'), fmtToks(ident("b")),
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := lexAndErase(t, tt.input)
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Input %q:\n  got      %v\n  expected %v", tt.input, tokens, tt.expected)
			}
		})
	}
}

// Spans of tokens inside format-string sections are offsets into the whole
// file, not into a private slice of it.
func TestFormatStringSpansAreGlobal(t *testing.T) {
	input := `f"a{xy}"`
	tokens, err := Lex("test.gos", input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	outer := tokens[0]
	if outer.Span.Start != 0 || outer.Span.End != len(input) {
		t.Errorf("Expected outer span [0,%d], got [%d,%d]", len(input), outer.Span.Start, outer.Span.End)
	}
	if len(outer.Contents) != 2 {
		t.Fatalf("Expected 2 content items, got %d", len(outer.Contents))
	}
	nested := outer.Contents[1].Tokens
	if len(nested) != 1 {
		t.Fatalf("Expected 1 nested token, got %d", len(nested))
	}
	if nested[0].Span.Start != 4 || nested[0].Span.End != 6 {
		t.Errorf("Expected nested span [4,6], got [%d,%d]", nested[0].Span.Start, nested[0].Span.End)
	}
	if nested[0].Span.Context != outer.Span.Context {
		t.Error("Expected nested tokens to share the outer Context")
	}
}

func TestNestedBraceGroupSpans(t *testing.T) {
	// f " { { 1 } } "
	// 0 1 2 3 4 5 6 7
	tokens, err := Lex("test.gos", `f"{{1}}"`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	nested := tokens[0].Contents[0].Tokens
	spans := [][2]int{{3, 4}, {4, 5}, {5, 6}}
	if len(nested) != len(spans) {
		t.Fatalf("Expected %d nested tokens, got %d", len(spans), len(nested))
	}
	for i, expected := range spans {
		if nested[i].Span.Start != expected[0] || nested[i].Span.End != expected[1] {
			t.Errorf("Token %d: expected span %v, got [%d,%d]", i, expected, nested[i].Span.Start, nested[i].Span.End)
		}
	}
}

func TestInlineGoSpans(t *testing.T) {
	tokens, err := Lex("test.gos", "go { x() } 1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Span.Start != 0 || tokens[0].Span.End != 10 {
		t.Errorf("Expected span [0,10], got [%d,%d]", tokens[0].Span.Start, tokens[0].Span.End)
	}
	if *tokens[0].Value != " x() " {
		t.Errorf("Expected body %q, got %q", " x() ", *tokens[0].Value)
	}
}

func TestEraseSpans(t *testing.T) {
	tokens, err := Lex("test.gos", `f"{f"{x}"}"`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	EraseSpans(tokens[0])

	var check func(token *Token)
	check = func(token *Token) {
		if token.Span != (Span{}) {
			t.Errorf("Expected zero span on %v, got [%d,%d]", token, token.Span.Start, token.Span.End)
		}
		for _, content := range token.Contents {
			for _, nested := range content.Tokens {
				check(nested)
			}
		}
	}
	check(tokens[0])
}
