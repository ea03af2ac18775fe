// Package gltf is the compiled glTF 2.0 data model. The declarations and
// decoders in gltf.go are emitted by gltfgen; this file is the hand-written
// runtime they are generated against.
package gltf

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/karitora/gltfgen/source/json"
)

// ErrMissingRequired marks a decode that failed because a required property
// was absent. It turns one object's decode into a "could not decode"
// outcome; callers choose whether to propagate or recover.
var ErrMissingRequired = errors.New("missing required property")

func missingErr(title, prop string) error {
	return fmt.Errorf("%s: %s: %w", title, prop, ErrMissingRequired)
}

// decoder drives a token source with one token of lookahead and a sticky
// first error.
type decoder struct {
	src    json.Source
	peeked *json.Token
	err    error
}

func newDecoderBytes(b []byte) *decoder { return &decoder{src: json.NewBytes(b)} }

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) next() json.Token {
	if d.err != nil {
		return json.Token{}
	}
	if d.peeked != nil {
		t := *d.peeked
		d.peeked = nil
		return t
	}
	t, err := d.src.NextToken()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		d.fail(err)
		return json.Token{}
	}
	return t
}

func (d *decoder) peek() json.Token {
	if d.err != nil {
		return json.Token{}
	}
	if d.peeked == nil {
		t, err := d.src.NextToken()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			d.fail(err)
			return json.Token{}
		}
		d.peeked = &t
	}
	return *d.peeked
}

func (d *decoder) beginObject() bool {
	t := d.next()
	if d.err != nil {
		return false
	}
	if t.Kind != json.KindBeginObject {
		d.fail(fmt.Errorf("expected object at offset %d", t.Offset))
		return false
	}
	return true
}

// nextKey returns the next property name, or false at the end of the
// object.
func (d *decoder) nextKey() (string, bool) {
	t := d.next()
	if d.err != nil {
		return "", false
	}
	switch t.Kind {
	case json.KindEndObject:
		return "", false
	case json.KindKey:
		return t.String, true
	}
	d.fail(fmt.Errorf("unexpected token inside object at offset %d", t.Offset))
	return "", false
}

func (d *decoder) beginArray() bool {
	t := d.next()
	if d.err != nil {
		return false
	}
	if t.Kind != json.KindBeginArray {
		d.fail(fmt.Errorf("expected array at offset %d", t.Offset))
		return false
	}
	return true
}

// endArray reports whether the array is finished, consuming the closing
// token when it is.
func (d *decoder) endArray() bool {
	if d.err != nil {
		return true
	}
	if d.peek().Kind == json.KindEndArray && d.err == nil {
		d.next()
		return true
	}
	return d.err != nil
}

func (d *decoder) str() string {
	t := d.next()
	if d.err != nil {
		return ""
	}
	if t.Kind != json.KindString {
		d.fail(fmt.Errorf("expected string at offset %d", t.Offset))
		return ""
	}
	return t.String
}

func (d *decoder) integer() int64 {
	t := d.next()
	if d.err != nil {
		return 0
	}
	if t.Kind != json.KindNumber {
		d.fail(fmt.Errorf("expected integer at offset %d", t.Offset))
		return 0
	}
	v, err := strconv.ParseInt(t.Number, 10, 64)
	if err != nil {
		d.fail(fmt.Errorf("expected integer at offset %d: %w", t.Offset, err))
		return 0
	}
	return v
}

func (d *decoder) number() float64 {
	t := d.next()
	if d.err != nil {
		return 0
	}
	if t.Kind != json.KindNumber {
		d.fail(fmt.Errorf("expected number at offset %d", t.Offset))
		return 0
	}
	v, err := strconv.ParseFloat(t.Number, 64)
	if err != nil {
		d.fail(fmt.Errorf("expected number at offset %d: %w", t.Offset, err))
		return 0
	}
	return v
}

func (d *decoder) boolean() bool {
	t := d.next()
	if d.err != nil {
		return false
	}
	if t.Kind != json.KindBool {
		d.fail(fmt.Errorf("expected boolean at offset %d", t.Offset))
		return false
	}
	return t.Bool
}

// skip consumes one complete value, nested containers included.
func (d *decoder) skip() {
	t := d.next()
	if d.err != nil {
		return
	}
	switch t.Kind {
	case json.KindBeginObject, json.KindBeginArray:
		depth := 1
		for depth > 0 {
			t = d.next()
			if d.err != nil {
				return
			}
			switch t.Kind {
			case json.KindBeginObject, json.KindBeginArray:
				depth++
			case json.KindEndObject, json.KindEndArray:
				depth--
			}
		}
	}
}

// anyValue materializes one complete value as an opaque Go value, used for
// the passthrough extension slots.
func (d *decoder) anyValue() any {
	t := d.next()
	if d.err != nil {
		return nil
	}
	return d.valueFrom(t)
}

func (d *decoder) valueFrom(t json.Token) any {
	switch t.Kind {
	case json.KindBeginObject:
		m := make(map[string]any)
		for {
			t := d.next()
			if d.err != nil {
				return nil
			}
			if t.Kind == json.KindEndObject {
				return m
			}
			if t.Kind != json.KindKey {
				d.fail(fmt.Errorf("unexpected token inside object at offset %d", t.Offset))
				return nil
			}
			key := t.String
			m[key] = d.anyValue()
			if d.err != nil {
				return nil
			}
		}
	case json.KindBeginArray:
		out := []any{}
		for {
			t := d.next()
			if d.err != nil {
				return nil
			}
			if t.Kind == json.KindEndArray {
				return out
			}
			out = append(out, d.valueFrom(t))
			if d.err != nil {
				return nil
			}
		}
	case json.KindString:
		return t.String
	case json.KindNumber:
		if i, err := strconv.ParseInt(t.Number, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(t.Number, 64)
		return f
	case json.KindBool:
		return t.Bool
	case json.KindNull:
		return nil
	}
	d.fail(fmt.Errorf("unexpected token at offset %d", t.Offset))
	return nil
}

func strPtr(d *decoder) *string {
	v := d.str()
	if d.err != nil {
		return nil
	}
	return &v
}

func intPtr(d *decoder) *int64 {
	v := d.integer()
	if d.err != nil {
		return nil
	}
	return &v
}

func floatPtr(d *decoder) *float64 {
	v := d.number()
	if d.err != nil {
		return nil
	}
	return &v
}

func boolPtr(d *decoder) *bool {
	v := d.boolean()
	if d.err != nil {
		return nil
	}
	return &v
}

func intSlice(d *decoder) []int64 {
	if !d.beginArray() {
		return nil
	}
	var out []int64
	for !d.endArray() {
		out = append(out, d.integer())
		if d.err != nil {
			return nil
		}
	}
	return out
}

func floatSlice(d *decoder) []float64 {
	if !d.beginArray() {
		return nil
	}
	var out []float64
	for !d.endArray() {
		out = append(out, d.number())
		if d.err != nil {
			return nil
		}
	}
	return out
}

func stringSlice(d *decoder) []string {
	if !d.beginArray() {
		return nil
	}
	var out []string
	for !d.endArray() {
		out = append(out, d.str())
		if d.err != nil {
			return nil
		}
	}
	return out
}

func boolSlice(d *decoder) []bool {
	if !d.beginArray() {
		return nil
	}
	var out []bool
	for !d.endArray() {
		out = append(out, d.boolean())
		if d.err != nil {
			return nil
		}
	}
	return out
}

func anySlice(d *decoder) []any {
	if !d.beginArray() {
		return nil
	}
	var out []any
	for !d.endArray() {
		out = append(out, d.anyValue())
		if d.err != nil {
			return nil
		}
	}
	return out
}

func decodeSlice[T any](d *decoder, fn func(*decoder) (T, error)) []T {
	if !d.beginArray() {
		return nil
	}
	var out []T
	for !d.endArray() {
		v, err := fn(d)
		if err != nil {
			d.fail(err)
			return nil
		}
		out = append(out, v)
	}
	return out
}

// fixedFloats reads a number array that must hold exactly n elements.
func fixedFloats(d *decoder, n int) ([]float64, bool) {
	v := floatSlice(d)
	if d.err != nil {
		return nil, false
	}
	if len(v) != n {
		d.fail(fmt.Errorf("expected %d array elements, got %d", n, len(v)))
		return nil, false
	}
	return v, true
}

// fixedInts reads an integer array that must hold exactly n elements.
func fixedInts(d *decoder, n int) ([]int64, bool) {
	v := intSlice(d)
	if d.err != nil {
		return nil, false
	}
	if len(v) != n {
		d.fail(fmt.Errorf("expected %d array elements, got %d", n, len(v)))
		return nil, false
	}
	return v, true
}

// intMap reads an object whose values are all integers, e.g. the mesh
// primitive attribute dictionary.
func intMap(d *decoder) map[string]int64 {
	if !d.beginObject() {
		return nil
	}
	m := make(map[string]int64)
	for {
		key, ok := d.nextKey()
		if !ok {
			break
		}
		m[key] = d.integer()
		if d.err != nil {
			return nil
		}
	}
	if d.err != nil {
		return nil
	}
	return m
}
