package gltfgen

import (
	"testing"
	"testing/fstest"

	"github.com/karitora/gltfgen/internal/ir"
)

func compileFS(t *testing.T, files map[string]string, entry string, opts Options) (*compiler, error) {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	c := newCompiler(newLoader(fsys), opts)
	_, err := c.normalizeFile(entry, 0)
	return c, err
}

func mustCompileFS(t *testing.T, files map[string]string, entry string) *compiler {
	t.Helper()
	c, err := compileFS(t, files, entry, Options{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return c
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	se, ok := AsSchemaError(err)
	if !ok {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if se.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, se.Code, err)
	}
}

func TestPropertiesSortedByName(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"zeta":  {"type": "string"},
				"alpha": {"type": "integer"},
				"mid":   {"type": "boolean"}
			},
			"required": ["alpha"]
		}`,
	}, "root.schema.json")

	h, ok := c.reg.LookupStruct("Root")
	if !ok {
		t.Fatalf("Root not registered")
	}
	def := c.reg.Struct(h)
	got := make([]string, 0, len(def.Properties))
	for _, p := range def.Properties {
		got = append(got, p.Name)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("properties = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("properties = %v, want %v", got, want)
		}
	}
	if !def.Properties[0].Required {
		t.Fatalf("alpha should be required")
	}
	if def.Properties[2].Required {
		t.Fatalf("zeta should not be required")
	}
}

func TestSharedRefRegistersOnce(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"a": {"$ref": "child.schema.json"},
				"b": {"$ref": "child.schema.json"}
			}
		}`,
		"child.schema.json": `{
			"type": "object",
			"title": "Child",
			"properties": {"value": {"type": "number"}}
		}`,
	}, "root.schema.json")

	if n := len(c.reg.Structs()); n != 2 {
		t.Fatalf("expected 2 structs, got %d", n)
	}
	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	a, aok := def.Properties[0].Item.(ir.StructRef)
	b, bok := def.Properties[1].Item.(ir.StructRef)
	if !aok || !bok {
		t.Fatalf("expected struct refs, got %T and %T", def.Properties[0].Item, def.Properties[1].Item)
	}
	if a.Handle != b.Handle {
		t.Fatalf("shared reference produced distinct handles %d and %d", a.Handle, b.Handle)
	}
}

func TestAllOfFirstWriterWins(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"name": {"type": "string"}
			},
			"allOf": [{"$ref": "base.schema.json"}]
		}`,
		"base.schema.json": `{
			"type": "object",
			"title": "Base",
			"properties": {
				"name":  {"type": "integer"},
				"extra": {"type": "boolean"}
			}
		}`,
	}, "root.schema.json")

	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	if len(def.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(def.Properties))
	}
	// Own declaration comes first and keeps its type; the base contributes
	// only what the owner did not already declare.
	if def.Properties[0].Name != "name" {
		t.Fatalf("first property = %q, want name", def.Properties[0].Name)
	}
	if def.Properties[0].Item.Kind() != ir.KindString {
		t.Fatalf("name kind = %v, want string", def.Properties[0].Item.Kind())
	}
	if def.Properties[1].Name != "extra" {
		t.Fatalf("second property = %q, want extra", def.Properties[1].Name)
	}
	if _, ok := c.reg.LookupStruct("Base"); !ok {
		t.Fatalf("base struct not registered")
	}
}

func TestAnyOfEnumInference(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"mode": {
					"anyOf": [
						{"enum": [1], "description": "A"},
						{"enum": [2], "description": "B"},
						{"type": "integer"}
					]
				}
			}
		}`,
	}, "root.schema.json")

	enums := c.reg.Enums()
	if len(enums) != 1 {
		t.Fatalf("expected 1 enum, got %d", len(enums))
	}
	e := enums[0]
	if e.Title != "Root mode" {
		t.Fatalf("enum title = %q, want %q", e.Title, "Root mode")
	}
	if e.Scalar != ir.KindInteger {
		t.Fatalf("enum scalar = %v, want integer", e.Scalar)
	}
	if len(e.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(e.Options))
	}
	if e.Options[0].Name != "A" || e.Options[0].Value.Int != 1 {
		t.Fatalf("option 0 = %+v", e.Options[0])
	}
	if e.Options[1].Name != "B" || e.Options[1].Value.Int != 2 {
		t.Fatalf("option 1 = %+v", e.Options[1])
	}
}

func TestAnyOfEnumsNotDeduplicated(t *testing.T) {
	enum := `{
		"anyOf": [
			{"enum": ["x"], "description": "X"},
			{"type": "string"}
		]
	}`
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"first": ` + enum + `,
				"second": ` + enum + `
			}
		}`,
	}, "root.schema.json")

	if n := len(c.reg.Enums()); n != 2 {
		t.Fatalf("expected 2 enum definitions, got %d", n)
	}
}

func TestAnyOfWithoutScalarType(t *testing.T) {
	_, err := compileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"mode": {"anyOf": [{"enum": [1]}]}
			}
		}`,
	}, "root.schema.json", Options{})
	wantCode(t, err, CodeMissingEnumBranchType)
}

func TestObjectWithoutTitle(t *testing.T) {
	_, err := compileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"properties": {"a": {"type": "string"}}
		}`,
	}, "root.schema.json", Options{})
	wantCode(t, err, CodeMissingTitle)
}

func TestArrayWithoutItems(t *testing.T) {
	_, err := compileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"values": {"type": "array"}
			}
		}`,
	}, "root.schema.json", Options{})
	wantCode(t, err, CodeMissingItems)
}

func TestArrayBounds(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"fixed":  {"type": "array", "items": {"type": "number"}, "minItems": 3, "maxItems": 3},
				"open":   {"type": "array", "items": {"type": "number"}},
				"capped": {"type": "array", "items": {"type": "number"}, "maxItems": 4}
			}
		}`,
	}, "root.schema.json")

	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	byName := make(map[string]ir.Array)
	for _, p := range def.Properties {
		byName[p.Name] = p.Item.(ir.Array)
	}

	if n, ok := byName["fixed"].Fixed(); !ok || n != 3 {
		t.Fatalf("fixed = %+v, want exactly 3 elements", byName["fixed"])
	}
	open := byName["open"]
	if open.MinItems != 0 || open.MaxItems != ir.MaxItemsUnbounded {
		t.Fatalf("open = %+v, want unbounded defaults", open)
	}
	capped := byName["capped"]
	if _, ok := capped.Fixed(); ok {
		t.Fatalf("capped should not be fixed-length")
	}
	if capped.MaxItems != 4 {
		t.Fatalf("capped.MaxItems = %d, want 4", capped.MaxItems)
	}
}

func TestIntegerBounds(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"bounded": {"type": "integer", "minimum": 4, "maximum": 252},
				"free":    {"type": "integer"}
			}
		}`,
	}, "root.schema.json")

	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	bounded := def.Properties[0].Item.(ir.Integer)
	if bounded.Min != 4 || bounded.Max != 252 {
		t.Fatalf("bounded = %+v, want [4, 252]", bounded)
	}
	free := def.Properties[1].Item.(ir.Integer)
	if free != ir.FullRange() {
		t.Fatalf("free = %+v, want full int64 range", free)
	}
}

func TestExtensionsAndExtrasArePassthrough(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"extensions": {"type": "object"},
				"extras":     {}
			}
		}`,
	}, "root.schema.json")

	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	for _, p := range def.Properties {
		if p.Item.Kind() != ir.KindExtension {
			t.Fatalf("%s kind = %v, want extension passthrough", p.Name, p.Item.Kind())
		}
	}
}

func TestReferenceCycle(t *testing.T) {
	_, err := compileFS(t, map[string]string{
		"a.schema.json": `{
			"type": "object",
			"title": "A",
			"properties": {"b": {"$ref": "b.schema.json"}}
		}`,
		"b.schema.json": `{
			"type": "object",
			"title": "B",
			"properties": {"a": {"$ref": "a.schema.json"}}
		}`,
	}, "a.schema.json", Options{})
	wantCode(t, err, CodeReferenceCycle)
}

func TestDepthExceeded(t *testing.T) {
	_, err := compileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {
				"v": {"type": "array", "items": {"type": "array", "items": {"type": "array", "items": {"type": "integer"}}}}
			}
		}`,
	}, "root.schema.json", Options{MaxDepth: 2})
	wantCode(t, err, CodeDepthExceeded)
}

func TestUnknownTypeWarns(t *testing.T) {
	c := mustCompileFS(t, map[string]string{
		"root.schema.json": `{
			"type": "object",
			"title": "Root",
			"properties": {"odd": {"type": "null"}}
		}`,
	}, "root.schema.json")

	h, _ := c.reg.LookupStruct("Root")
	def := c.reg.Struct(h)
	if def.Properties[0].Item.Kind() != ir.KindUnknown {
		t.Fatalf("odd kind = %v, want unknown", def.Properties[0].Item.Kind())
	}
	if !c.diag.HasWarnings() {
		t.Fatalf("expected a warning for the unhandled type")
	}
}
