package gltfgen_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/karitora/gltfgen"
)

func sceneSchemas() fstest.MapFS {
	return fstest.MapFS{
		"scene.schema.json": &fstest.MapFile{Data: []byte(`{
			"type": "object",
			"title": "Scene",
			"description": "A tiny scene graph.",
			"properties": {
				"nodes": {
					"type": "array",
					"items": {"$ref": "node.schema.json"}
				},
				"name": {"type": "string"}
			},
			"required": ["nodes"]
		}`)},
		"node.schema.json": &fstest.MapFile{Data: []byte(`{
			"type": "object",
			"title": "Node",
			"properties": {
				"mode": {
					"anyOf": [
						{"enum": [0], "description": "OFF"},
						{"enum": [1], "description": "ON"},
						{"type": "integer"}
					]
				},
				"scale": {
					"type": "array",
					"items": {"type": "number"},
					"minItems": 3,
					"maxItems": 3
				}
			}
		}`)},
	}
}

func TestCompileAndGenerate(t *testing.T) {
	comp, diag, err := gltfgen.Compile(sceneSchemas(), "scene.schema.json", gltfgen.Options{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if diag.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", diag.Warnings())
	}
	if comp.NumStructs() != 2 {
		t.Fatalf("structs = %d, want 2", comp.NumStructs())
	}
	if comp.NumEnums() != 1 {
		t.Fatalf("enums = %d, want 1", comp.NumEnums())
	}

	src, _, err := comp.Generate("scene")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by gltfgen. DO NOT EDIT.",
		"package scene",
		"func FromJSON(data []byte) (*Scene, error)",
		"type Scene struct",
		"type Node struct",
		"Scale *[3]float64",
		"type NodeMode int64",
		"NodeModeOff NodeMode = 0",
		"NodeModeOn  NodeMode = 1",
		"func decodeNodeMode(d *decoder) NodeMode",
		`missingErr("Scene", "nodes")`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("generated output missing %q:\n%s", want, out)
		}
	}

	// The entry struct is emitted first; its dependencies follow in reverse
	// discovery order.
	if strings.Index(out, "type Scene struct") > strings.Index(out, "type Node struct") {
		t.Fatalf("Scene should be emitted before Node:\n%s", out)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	var outputs [][]byte
	for i := 0; i < 2; i++ {
		comp, _, err := gltfgen.Compile(sceneSchemas(), "scene.schema.json", gltfgen.Options{})
		if err != nil {
			t.Fatalf("compile: %v", err)
		}
		src, _, err := comp.Generate("scene")
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		outputs = append(outputs, src)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatalf("two runs over the same input produced different output")
	}
}

func TestGenerateWarnsOnPassthrough(t *testing.T) {
	fsys := fstest.MapFS{
		"root.schema.json": &fstest.MapFile{Data: []byte(`{
			"type": "object",
			"title": "Root",
			"properties": {
				"extensions": {"type": "object"}
			}
		}`)},
	}
	comp, _, err := gltfgen.Compile(fsys, "root.schema.json", gltfgen.Options{})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	src, diag, err := comp.Generate("root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !diag.HasWarnings() {
		t.Fatalf("expected a passthrough warning")
	}
	if !strings.Contains(string(src), "Extensions any") {
		t.Fatalf("extensions should be emitted as an opaque value:\n%s", src)
	}
}

func TestCompileDirMissingEntry(t *testing.T) {
	_, _, err := gltfgen.CompileDir(t.TempDir(), "missing.schema.json", gltfgen.Options{})
	se, ok := gltfgen.AsSchemaError(err)
	if !ok {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if se.Code != gltfgen.CodeNotFound {
		t.Fatalf("code = %s, want %s", se.Code, gltfgen.CodeNotFound)
	}
}
