package json_test

import (
	"io"
	"testing"

	"github.com/karitora/gltfgen/source/json"
)

func drain(t *testing.T, src json.Source) []json.Token {
	t.Helper()
	var out []json.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		out = append(out, tok)
	}
}

func TestTokenStream(t *testing.T) {
	src := json.NewBytes([]byte(`{"a": 1, "b": [true, null], "c": {"d": "x"}}`))
	got := drain(t, src)

	want := []json.Token{
		{Kind: json.KindBeginObject},
		{Kind: json.KindKey, String: "a"},
		{Kind: json.KindNumber, Number: "1"},
		{Kind: json.KindKey, String: "b"},
		{Kind: json.KindBeginArray},
		{Kind: json.KindBool, Bool: true},
		{Kind: json.KindNull},
		{Kind: json.KindEndArray},
		{Kind: json.KindKey, String: "c"},
		{Kind: json.KindBeginObject},
		{Kind: json.KindKey, String: "d"},
		{Kind: json.KindString, String: "x"},
		{Kind: json.KindEndObject},
		{Kind: json.KindEndObject},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		g := got[i]
		if g.Kind != w.Kind || g.String != w.String || g.Number != w.Number || g.Bool != w.Bool {
			t.Fatalf("token %d = %+v, want %+v", i, g, w)
		}
	}
}

// Strings in value position must not be mistaken for keys, including right
// after a nested container closes.
func TestStringValueAfterContainer(t *testing.T) {
	src := json.NewBytes([]byte(`{"a": [], "b": "v", "c": {"x": 1}, "d": "w"}`))
	var keys, values []string
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		switch tok.Kind {
		case json.KindKey:
			keys = append(keys, tok.String)
		case json.KindString:
			values = append(values, tok.String)
		}
	}
	if len(keys) != 5 {
		t.Fatalf("keys = %v, want a, b, c, x, d", keys)
	}
	if len(values) != 2 || values[0] != "v" || values[1] != "w" {
		t.Fatalf("string values = %v, want [v w]", values)
	}
}

func TestNumbersStayTextual(t *testing.T) {
	src := json.NewBytes([]byte(`[9007199254740993, 0.1]`))
	got := drain(t, src)
	if got[1].Number != "9007199254740993" {
		t.Fatalf("large integer = %q, want exact text", got[1].Number)
	}
	if got[2].Number != "0.1" {
		t.Fatalf("decimal = %q, want exact text", got[2].Number)
	}
}

func TestOffsetsAdvance(t *testing.T) {
	src := json.NewBytes([]byte(`{"key": "value"}`))
	last := int64(-1)
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if tok.Offset < last {
			t.Fatalf("offset went backwards: %d after %d", tok.Offset, last)
		}
		last = tok.Offset
	}
	if src.Location() <= 0 {
		t.Fatalf("Location() = %d after draining", src.Location())
	}
}

func TestTruncatedInput(t *testing.T) {
	cases := map[string]string{
		"cut after key":       `{"a": `,
		"unclosed object":     `{"a": 1`,
		"unclosed array":      `[1, 2`,
		"nested cut":          `{"a": {"b": [1`,
		"value cut mid-token": `{"a": tru`,
	}
	for name, in := range cases {
		src := json.NewBytes([]byte(in))
		for {
			_, err := src.NextToken()
			if err == io.EOF {
				t.Fatalf("%s: truncated input ended with clean EOF", name)
			}
			if err != nil {
				break
			}
		}
	}
}

// A complete document still ends with a clean EOF.
func TestCompleteInputEndsCleanly(t *testing.T) {
	src := json.NewBytes([]byte(`{"a": [1, 2]}`))
	for {
		_, err := src.NextToken()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
	}
}
