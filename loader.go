package gltfgen

import (
	"bytes"
	"io/fs"

	gojson "github.com/goccy/go-json"
)

// loader fetches and parses schema documents by path relative to the
// compilation root, caching parsed trees so every reference to the same
// file observes identical content. It performs no $ref interpretation.
type loader struct {
	fsys  fs.FS
	cache map[string]map[string]any
}

func newLoader(fsys fs.FS) *loader {
	return &loader{fsys: fsys, cache: make(map[string]map[string]any)}
}

func (l *loader) resolve(path string) (map[string]any, error) {
	if doc, ok := l.cache[path]; ok {
		return doc, nil
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, &SchemaError{Path: path, Code: CodeNotFound, Message: "schema file not found", Cause: err}
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	// Numbers stay textual so integer bounds survive exactly.
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, &SchemaError{Path: path, Code: CodeParseError, Message: "invalid JSON", Cause: err}
	}
	l.cache[path] = doc
	return doc, nil
}
