package gltfgen

import (
	"sort"

	gojson "github.com/goccy/go-json"

	"github.com/karitora/gltfgen/internal/ir"
)

// compiler threads all compilation state through normalization calls; there
// is no ambient global registry.
type compiler struct {
	ld       *loader
	reg      *ir.Registry
	diag     *simpleDiag
	maxDepth int
	// resolving tracks files on the current $ref chain so a revisit is
	// reported as a cycle instead of recursing forever.
	resolving map[string]bool
}

func newCompiler(ld *loader, opts Options) *compiler {
	return &compiler{
		ld:        ld,
		reg:       ir.NewRegistry(),
		diag:      &simpleDiag{},
		maxDepth:  opts.maxDepth(),
		resolving: make(map[string]bool),
	}
}

// normalizeFile resolves path through the loader and normalizes the
// document's root object.
func (c *compiler) normalizeFile(path string, depth int) (ir.Item, error) {
	if c.resolving[path] {
		return nil, schemaErrf(path, CodeReferenceCycle, "$ref chain revisits file")
	}
	doc, err := c.ld.resolve(path)
	if err != nil {
		return nil, err
	}
	c.resolving[path] = true
	defer delete(c.resolving, path)
	return c.normalize(path, doc, "", depth)
}

// normalize turns one raw schema object into one Item, registering struct
// and enum definitions as a side effect. hint names enum definitions, which
// have no title of their own in property position.
func (c *compiler) normalize(path string, doc map[string]any, hint string, depth int) (ir.Item, error) {
	if depth > c.maxDepth {
		return nil, schemaErrf(path, CodeDepthExceeded, "schema nesting exceeds %d levels", c.maxDepth)
	}

	// A reference site never creates its own definition; it aliases the
	// target's.
	if ref, ok := doc["$ref"].(string); ok {
		return c.normalizeFile(ref, depth+1)
	}

	if t, ok := doc["type"].(string); ok {
		switch t {
		case "object":
			return c.normalizeObject(path, doc, depth)
		case "array":
			return c.normalizeArray(path, doc, hint, depth)
		case "integer":
			return integerItem(doc), nil
		case "number":
			return ir.Number{}, nil
		case "string":
			return ir.String{}, nil
		case "boolean":
			return ir.Boolean{}, nil
		default:
			c.diag.warnf("%s: unhandled type %q treated as unknown", path, t)
			return ir.Unknown{}, nil
		}
	}

	// The source schemas use a bare allOf purely to splice property sets
	// onto a base object type, never to express unions; the first branch
	// carries the type.
	if allOf, ok := doc["allOf"].([]any); ok && len(allOf) > 0 {
		if first, ok := allOf[0].(map[string]any); ok {
			return c.normalize(path, first, hint, depth+1)
		}
	}

	if _, ok := doc["anyOf"]; ok {
		return c.normalizeEnum(path, doc, hint, depth)
	}

	// The open-ended "anything goes" slot, e.g. extras.
	return ir.Unknown{}, nil
}

func (c *compiler) normalizeObject(path string, doc map[string]any, depth int) (ir.Item, error) {
	title, ok := doc["title"].(string)
	if !ok || title == "" {
		return nil, schemaErrf(path, CodeMissingTitle, "anonymous object schema cannot become a named type")
	}
	if h, ok := c.reg.LookupStruct(title); ok {
		return ir.StructRef{Handle: h}, nil
	}

	var props []ir.Property
	seen := make(map[string]bool)
	if err := c.appendProperties(path, doc, title, &props, seen, depth); err != nil {
		return nil, err
	}

	// allOf branches splice additional properties onto the struct; a name
	// already present is never overwritten (first writer wins).
	if allOf, ok := doc["allOf"].([]any); ok {
		for _, raw := range allOf {
			branch, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if err := c.mergeBranch(path, branch, title, &props, seen, depth); err != nil {
				return nil, err
			}
		}
	}

	h := c.reg.RegisterStruct(ir.StructDef{
		Title:       title,
		Description: stringVal(doc["description"]),
		Properties:  props,
	})
	return ir.StructRef{Handle: h}, nil
}

// appendProperties normalizes doc's properties in name-sorted order and
// appends each one not already present to props.
func (c *compiler) appendProperties(path string, doc map[string]any, owner string, props *[]ir.Property, seen map[string]bool, depth int) error {
	pm, ok := doc["properties"].(map[string]any)
	if !ok {
		return nil
	}
	required := requiredSet(doc)

	names := make([]string, 0, len(pm))
	for name := range pm {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if seen[name] {
			continue
		}
		ps, ok := pm[name].(map[string]any)
		if !ok {
			c.diag.warnf("%s: property %q is not an object schema, skipped", path, name)
			continue
		}

		var item ir.Item
		if name == "extensions" || name == "extras" {
			item = ir.Extension{}
		} else {
			var err error
			item, err = c.normalize(path, ps, owner+" "+name, depth+1)
			if err != nil {
				return err
			}
		}

		seen[name] = true
		*props = append(*props, ir.Property{
			Name:        name,
			Description: stringVal(ps["description"]),
			Item:        item,
			Required:    required[name],
		})
	}
	return nil
}

// mergeBranch appends one allOf branch's properties. Branches are either a
// $ref (or titled object) whose registered definition is spliced in, or an
// inline property set.
func (c *compiler) mergeBranch(path string, branch map[string]any, owner string, props *[]ir.Property, seen map[string]bool, depth int) error {
	_, isRef := branch["$ref"]
	t, _ := branch["type"].(string)
	if isRef || t == "object" {
		item, err := c.normalize(path, branch, owner, depth+1)
		if err != nil {
			return err
		}
		sr, ok := item.(ir.StructRef)
		if !ok {
			c.diag.warnf("%s: allOf branch of %s is not an object type, ignored", path, owner)
			return nil
		}
		for _, p := range c.reg.Struct(sr.Handle).Properties {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			*props = append(*props, p)
		}
		return nil
	}
	return c.appendProperties(path, branch, owner, props, seen, depth+1)
}

func (c *compiler) normalizeArray(path string, doc map[string]any, hint string, depth int) (ir.Item, error) {
	items, ok := doc["items"].(map[string]any)
	if !ok {
		return nil, schemaErrf(path, CodeMissingItems, "array schema has no items")
	}
	elem, err := c.normalize(path, items, hint, depth+1)
	if err != nil {
		return nil, err
	}
	arr := ir.Array{Elem: elem, MinItems: 0, MaxItems: ir.MaxItemsUnbounded}
	if v, ok := intVal(doc["minItems"]); ok {
		arr.MinItems = v
	}
	if v, ok := intVal(doc["maxItems"]); ok {
		arr.MaxItems = v
	}
	return arr, nil
}

// normalizeEnum treats an anyOf whose branches carry single-element enum
// constant lists as an enumeration. The scalar kind comes from the last
// branch's type; branches without an enum key contribute nothing.
func (c *compiler) normalizeEnum(path string, doc map[string]any, hint string, depth int) (ir.Item, error) {
	branches, _ := doc["anyOf"].([]any)
	if len(branches) == 0 {
		return nil, schemaErrf(path, CodeMissingEnumBranchType, "empty anyOf")
	}
	last, _ := branches[len(branches)-1].(map[string]any)
	ts, _ := last["type"].(string)

	var scalar ir.ItemKind
	switch ts {
	case "integer":
		scalar = ir.KindInteger
	case "number":
		scalar = ir.KindNumber
	case "string":
		scalar = ir.KindString
	default:
		return nil, schemaErrf(path, CodeMissingEnumBranchType, "anyOf has no resolvable scalar type (got %q)", ts)
	}

	var opts []ir.EnumOption
	for _, raw := range branches {
		branch, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ev, ok := branch["enum"].([]any)
		if !ok || len(ev) == 0 {
			continue
		}
		lit, err := enumLiteral(path, scalar, ev[0])
		if err != nil {
			return nil, err
		}
		desc := stringVal(branch["description"])
		name := desc
		if name == "" {
			name = "Placeholder"
		}
		opts = append(opts, ir.EnumOption{Name: name, Description: desc, Value: lit})
	}

	h := c.reg.RegisterEnum(ir.EnumDef{
		Title:       hint,
		Description: stringVal(doc["description"]),
		Scalar:      scalar,
		Options:     opts,
	})
	return ir.EnumRef{Handle: h}, nil
}

func integerItem(doc map[string]any) ir.Integer {
	it := ir.FullRange()
	if v, ok := intVal(doc["minimum"]); ok {
		it.Min = v
	}
	if v, ok := intVal(doc["maximum"]); ok {
		it.Max = v
	}
	return it
}

func enumLiteral(path string, scalar ir.ItemKind, v any) (ir.EnumLiteral, error) {
	switch scalar {
	case ir.KindInteger:
		if n, ok := intVal(v); ok {
			return ir.EnumLiteral{Scalar: scalar, Int: n}, nil
		}
	case ir.KindNumber:
		if n, ok := floatVal(v); ok {
			return ir.EnumLiteral{Scalar: scalar, Num: n}, nil
		}
	case ir.KindString:
		if s, ok := v.(string); ok {
			return ir.EnumLiteral{Scalar: scalar, Str: s}, nil
		}
	}
	return ir.EnumLiteral{}, schemaErrf(path, CodeMissingEnumBranchType, "enum constant %v does not match branch type", v)
}

func stringVal(v any) string {
	s, _ := v.(string)
	return s
}

func requiredSet(doc map[string]any) map[string]bool {
	out := make(map[string]bool)
	if req, ok := doc["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				out[s] = true
			}
		}
	}
	return out
}

func intVal(v any) (int64, bool) {
	switch n := v.(type) {
	case gojson.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

func floatVal(v any) (float64, bool) {
	switch n := v.(type) {
	case gojson.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}
