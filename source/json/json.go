// Package json provides the pull-based token protocol the generated
// decoders are written against: begin-object, iterate keys in document
// order, typed scalar reads.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"
)

// Kind enumerates JSON token kinds.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token is one token from the input stream. Offset records the byte
// position when known (-1 otherwise).
type Token struct {
	Kind   Kind
	String string // Stored for key/string tokens.
	Number string // Stored as text; callers choose the numeric interpretation.
	Bool   bool
	Offset int64
}

// Source yields tokens from a JSON document.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec        *gojson.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into a Source.
func NewReader(r io.Reader) Source {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into a Source.
func NewBytes(b []byte) Source { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			// EOF with open containers means the document was cut off.
			if len(s.stack) > 0 {
				return Token{}, io.ErrUnexpectedEOF
			}
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case gojson.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject, Offset: s.lastOffset}, nil
		case '}':
			s.pop()
			s.valueDone()
			return Token{Kind: KindEndObject, Offset: s.lastOffset}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray, Offset: s.lastOffset}, nil
		case ']':
			s.pop()
			s.valueDone()
			return Token{Kind: KindEndArray, Offset: s.lastOffset}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v, Offset: s.lastOffset}, nil
			}
		}
		s.valueDone()
		return Token{Kind: KindString, String: v, Offset: s.lastOffset}, nil
	case bool:
		s.valueDone()
		return Token{Kind: KindBool, Bool: v, Offset: s.lastOffset}, nil
	case gojson.Number:
		s.valueDone()
		return Token{Kind: KindNumber, Number: string(v), Offset: s.lastOffset}, nil
	case nil:
		s.valueDone()
		return Token{Kind: KindNull, Offset: s.lastOffset}, nil
	}
	s.valueDone()
	return Token{Kind: KindNull, Offset: s.lastOffset}, nil
}

func (s *source) Location() int64 { return s.lastOffset }

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}

// valueDone flips the enclosing object frame back to expecting a key after a
// complete value.
func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
