package gltfgen

import (
	"testing"
	"testing/fstest"
)

func TestLoaderCachesParsedDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"a.schema.json": &fstest.MapFile{Data: []byte(`{"title": "A"}`)},
	}
	ld := newLoader(fsys)

	first, err := ld.resolve("a.schema.json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := ld.resolve("a.schema.json")
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	// Same parsed tree, not a re-parse.
	first["marker"] = true
	if _, ok := second["marker"]; !ok {
		t.Fatalf("second resolve returned a distinct document")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	ld := newLoader(fstest.MapFS{})
	_, err := ld.resolve("nope.schema.json")
	wantCode(t, err, CodeNotFound)
	se, _ := AsSchemaError(err)
	if se.Path != "nope.schema.json" {
		t.Fatalf("error path = %q", se.Path)
	}
	if se.Unwrap() == nil {
		t.Fatalf("missing file error should wrap the fs error")
	}
}

func TestLoaderInvalidJSON(t *testing.T) {
	ld := newLoader(fstest.MapFS{
		"bad.schema.json": &fstest.MapFile{Data: []byte(`{"title":`)},
	})
	_, err := ld.resolve("bad.schema.json")
	wantCode(t, err, CodeParseError)
}

func TestLoaderPreservesNumberText(t *testing.T) {
	ld := newLoader(fstest.MapFS{
		"n.schema.json": &fstest.MapFile{Data: []byte(`{"maximum": 9007199254740993}`)},
	})
	doc, err := ld.resolve("n.schema.json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	// 2^53+1 is not representable as float64; textual numbers keep it exact.
	v, ok := intVal(doc["maximum"])
	if !ok || v != 9007199254740993 {
		t.Fatalf("maximum = %v (%v), want 9007199254740993", v, ok)
	}
}
