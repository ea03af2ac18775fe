// Package gen renders registered struct and enum definitions as one Go
// source file: type declarations plus pull-based decoders in the style of
// the committed gltf package. Output is deterministic for a given registry.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/karitora/gltfgen/internal/ir"
)

type renderer struct {
	reg      *ir.Registry
	body     bytes.Buffer
	warnings []string
	needsFmt bool
}

// Render emits every definition in reverse discovery order. Opaque
// passthrough fields produce warnings, never an error.
func Render(pkg string, reg *ir.Registry) ([]byte, []string, error) {
	r := &renderer{reg: reg}

	structs := reg.Structs()
	if len(structs) > 0 {
		r.renderEntry(structs[len(structs)-1])
	}
	for i := len(structs) - 1; i >= 0; i-- {
		r.renderStruct(structs[i])
	}
	enums := reg.Enums()
	for i := len(enums) - 1; i >= 0; i-- {
		r.renderEnum(enums[i])
	}

	var out bytes.Buffer
	out.WriteString("// Code generated by gltfgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", pkg)
	if r.needsFmt {
		out.WriteString("import \"fmt\"\n\n")
	}
	out.Write(r.body.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, r.warnings, fmt.Errorf("gen: format output: %w", err)
	}
	return src, r.warnings, nil
}

func (r *renderer) warnf(f string, a ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(f, a...))
}

func (r *renderer) pf(f string, a ...any) { fmt.Fprintf(&r.body, f, a...) }

// renderEntry emits the package-level entry point for the root struct, the
// struct registered last (every other definition is one of its
// dependencies).
func (r *renderer) renderEntry(root ir.StructDef) {
	name := typeIdent(root.Title)
	r.pf("// FromJSON decodes a complete %s document.\n", root.Title)
	r.pf("func FromJSON(data []byte) (*%s, error) {\n", name)
	r.pf("\td := newDecoderBytes(data)\n")
	r.pf("\tv, err := decode%s(d)\n", name)
	r.pf("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	r.pf("\treturn &v, nil\n}\n\n")
}

func (r *renderer) renderStruct(def ir.StructDef) {
	name := typeIdent(def.Title)

	if def.Description != "" {
		r.pf("// %s\n", def.Description)
	}
	r.pf("type %s struct {\n", name)
	for _, p := range def.Properties {
		if p.Description != "" {
			r.pf("\t// %s\n", p.Description)
		}
		r.pf("\t%s %s\n", fieldIdent(p.Name), r.goType(p.Item, p.Required))
		switch p.Item.Kind() {
		case ir.KindExtension:
			r.warnf("%s.%s: passthrough extension emitted as opaque value", def.Title, p.Name)
		case ir.KindUnknown:
			r.warnf("%s.%s: untyped schema emitted as opaque value", def.Title, p.Name)
		}
	}
	r.pf("}\n\n")

	r.renderDecoder(def, name)
}

func (r *renderer) renderDecoder(def ir.StructDef, name string) {
	r.pf("func decode%s(d *decoder) (%s, error) {\n", name, name)
	r.pf("\tvar x %s\n", name)
	for _, p := range def.Properties {
		if p.Required {
			r.pf("\tvar has%s bool\n", fieldIdent(p.Name))
		}
	}
	r.pf("\tif !d.beginObject() {\n\t\treturn x, d.err\n\t}\n")
	r.pf("\tfor {\n")
	r.pf("\t\tkey, ok := d.nextKey()\n")
	r.pf("\t\tif !ok {\n\t\t\tbreak\n\t\t}\n")
	r.pf("\t\tswitch key {\n")
	for _, p := range def.Properties {
		r.pf("\t\tcase %q:\n", p.Name)
		r.renderCase(def, p)
	}
	r.pf("\t\tdefault:\n\t\t\td.skip()\n")
	r.pf("\t\t}\n\t}\n")
	r.pf("\tif d.err != nil {\n\t\treturn x, d.err\n\t}\n")
	for _, p := range def.Properties {
		if p.Required {
			r.pf("\tif !has%s {\n\t\treturn x, missingErr(%q, %q)\n\t}\n", fieldIdent(p.Name), def.Title, p.Name)
		}
	}
	r.pf("\treturn x, nil\n}\n\n")
}

// renderCase emits the body of one property's switch case at three tabs.
func (r *renderer) renderCase(def ir.StructDef, p ir.Property) {
	f := fieldIdent(p.Name)
	seen := ""
	if p.Required {
		seen = fmt.Sprintf("\t\t\thas%s = true\n", f)
	}

	switch it := p.Item.(type) {
	case ir.Integer:
		min, max := it.Min, it.Max
		bounded := min != math.MinInt64 || max != math.MaxInt64
		switch {
		case p.Required && !bounded:
			r.pf("\t\t\tx.%s = d.integer()\n%s", f, seen)
		case p.Required && bounded:
			r.needsFmt = true
			r.pf("\t\t\tx.%s = d.integer()\n", f)
			r.pf("\t\t\tif d.err == nil && (%s) {\n", rangeCond("x."+f, min, max))
			r.pf("\t\t\t\td.fail(fmt.Errorf(\"%s: %s out of range\"))\n\t\t\t}\n", def.Title, p.Name)
			r.pf("%s", seen)
		case !bounded:
			r.pf("\t\t\tx.%s = intPtr(d)\n", f)
		default:
			r.needsFmt = true
			r.pf("\t\t\tif v := d.integer(); d.err == nil {\n")
			r.pf("\t\t\t\tif %s {\n", rangeCond("v", min, max))
			r.pf("\t\t\t\t\td.fail(fmt.Errorf(\"%s: %s out of range\"))\n", def.Title, p.Name)
			r.pf("\t\t\t\t} else {\n\t\t\t\t\tx.%s = &v\n\t\t\t\t}\n\t\t\t}\n", f)
		}
	case ir.Number:
		if p.Required {
			r.pf("\t\t\tx.%s = d.number()\n%s", f, seen)
		} else {
			r.pf("\t\t\tx.%s = floatPtr(d)\n", f)
		}
	case ir.String:
		if p.Required {
			r.pf("\t\t\tx.%s = d.str()\n%s", f, seen)
		} else {
			r.pf("\t\t\tx.%s = strPtr(d)\n", f)
		}
	case ir.Boolean:
		if p.Required {
			r.pf("\t\t\tx.%s = d.boolean()\n%s", f, seen)
		} else {
			r.pf("\t\t\tx.%s = boolPtr(d)\n", f)
		}
	case ir.StructRef:
		sub := typeIdent(r.reg.Struct(it.Handle).Title)
		r.pf("\t\t\tv, err := decode%s(d)\n", sub)
		r.pf("\t\t\tif err != nil {\n\t\t\t\treturn x, err\n\t\t\t}\n")
		if p.Required {
			r.pf("\t\t\tx.%s = v\n%s", f, seen)
		} else {
			r.pf("\t\t\tx.%s = &v\n", f)
		}
	case ir.EnumRef:
		sub := typeIdent(r.reg.Enum(it.Handle).Title)
		if p.Required {
			r.pf("\t\t\tx.%s = decode%s(d)\n%s", f, sub, seen)
		} else {
			r.pf("\t\t\tif v := decode%s(d); d.err == nil {\n\t\t\t\tx.%s = &v\n\t\t\t}\n", sub, f)
		}
	case ir.Array:
		r.renderArrayCase(def, p, it, f, seen)
	case ir.Extension, ir.Unknown:
		r.pf("\t\t\tx.%s = d.anyValue()\n%s", f, seen)
	default:
		r.pf("\t\t\td.skip()\n")
	}
}

func (r *renderer) renderArrayCase(def ir.StructDef, p ir.Property, arr ir.Array, f, seen string) {
	if n, ok := arr.Fixed(); ok {
		switch arr.Elem.Kind() {
		case ir.KindNumber, ir.KindInteger:
			helper, goElem := "fixedFloats", "float64"
			if arr.Elem.Kind() == ir.KindInteger {
				helper, goElem = "fixedInts", "int64"
			}
			r.pf("\t\t\tif v, ok := %s(d, %d); ok {\n", helper, n)
			r.pf("\t\t\t\tvar a [%d]%s\n", n, goElem)
			r.pf("\t\t\t\tcopy(a[:], v)\n")
			if p.Required {
				r.pf("\t\t\t\tx.%s = a\n", f)
				r.pf("\t\t\t\thas%s = true\n", f)
			} else {
				r.pf("\t\t\t\tx.%s = &a\n", f)
			}
			r.pf("\t\t\t}\n")
			return
		}
		// Fixed-length arrays of non-scalar elements fall through to the
		// variable-length form, matching goType.
	}

	switch elem := arr.Elem.(type) {
	case ir.Integer:
		r.pf("\t\t\tx.%s = intSlice(d)\n%s", f, seen)
	case ir.Number:
		r.pf("\t\t\tx.%s = floatSlice(d)\n%s", f, seen)
	case ir.String:
		r.pf("\t\t\tx.%s = stringSlice(d)\n%s", f, seen)
	case ir.Boolean:
		r.pf("\t\t\tx.%s = boolSlice(d)\n%s", f, seen)
	case ir.StructRef:
		sub := typeIdent(r.reg.Struct(elem.Handle).Title)
		r.pf("\t\t\tx.%s = decodeSlice(d, decode%s)\n%s", f, sub, seen)
	case ir.EnumRef:
		sub := typeIdent(r.reg.Enum(elem.Handle).Title)
		r.pf("\t\t\tx.%s = decodeSlice(d, func(d *decoder) (%s, error) {\n", f, sub)
		r.pf("\t\t\t\treturn decode%s(d), d.err\n\t\t\t})\n%s", sub, seen)
	default:
		r.warnf("%s.%s: array element emitted as opaque value", def.Title, p.Name)
		r.pf("\t\t\tx.%s = anySlice(d)\n%s", f, seen)
	}
}

func (r *renderer) renderEnum(def ir.EnumDef) {
	name := typeIdent(def.Title)
	r.needsFmt = true

	var underlying, read string
	switch def.Scalar {
	case ir.KindInteger:
		underlying, read = "int64", "d.integer()"
	case ir.KindNumber:
		underlying, read = "float64", "d.number()"
	default:
		underlying, read = "string", "d.str()"
	}

	if def.Description != "" {
		r.pf("// %s\n", def.Description)
	}
	r.pf("type %s %s\n\n", name, underlying)

	idents := make([]string, len(def.Options))
	used := make(map[string]bool)
	r.pf("const (\n")
	for i, opt := range def.Options {
		id := name + optionIdent(opt.Name)
		if used[id] {
			id += strconv.Itoa(i)
		}
		used[id] = true
		idents[i] = id
		if opt.Description != "" && opt.Description != opt.Name {
			r.pf("\t// %s\n", opt.Description)
		}
		r.pf("\t%s %s = %s\n", id, name, enumLiteral(opt.Value))
	}
	r.pf(")\n\n")

	r.pf("func (v %s) valid() bool {\n", name)
	if len(idents) > 0 {
		r.pf("\tswitch v {\n\tcase %s:\n\t\treturn true\n\t}\n", strings.Join(idents, ", "))
	}
	r.pf("\treturn false\n}\n\n")

	r.pf("func decode%s(d *decoder) %s {\n", name, name)
	r.pf("\tv := %s(%s)\n", name, read)
	r.pf("\tif d.err == nil && !v.valid() {\n")
	r.pf("\t\td.fail(fmt.Errorf(\"invalid %s value %%v\", %s(v)))\n", def.Title, underlying)
	r.pf("\t}\n\treturn v\n}\n\n")
}

func (r *renderer) goType(it ir.Item, required bool) string {
	ptr := func(s string) string {
		if required {
			return s
		}
		return "*" + s
	}
	switch v := it.(type) {
	case ir.StructRef:
		return ptr(typeIdent(r.reg.Struct(v.Handle).Title))
	case ir.EnumRef:
		return ptr(typeIdent(r.reg.Enum(v.Handle).Title))
	case ir.Array:
		if n, ok := v.Fixed(); ok {
			switch v.Elem.Kind() {
			case ir.KindNumber:
				return ptr(fmt.Sprintf("[%d]float64", n))
			case ir.KindInteger:
				return ptr(fmt.Sprintf("[%d]int64", n))
			}
		}
		if v.Elem.Kind() == ir.KindArray || v.Elem.Kind() == ir.KindExtension || v.Elem.Kind() == ir.KindUnknown {
			return "[]any"
		}
		return "[]" + r.goType(v.Elem, true)
	case ir.Integer:
		return ptr("int64")
	case ir.Number:
		return ptr("float64")
	case ir.String:
		return ptr("string")
	case ir.Boolean:
		return ptr("bool")
	default:
		return "any"
	}
}

func rangeCond(expr string, min, max int64) string {
	switch {
	case min != math.MinInt64 && max != math.MaxInt64:
		return fmt.Sprintf("%s < %d || %s > %d", expr, min, expr, max)
	case min != math.MinInt64:
		return fmt.Sprintf("%s < %d", expr, min)
	default:
		return fmt.Sprintf("%s > %d", expr, max)
	}
}

func enumLiteral(v ir.EnumLiteral) string {
	switch v.Scalar {
	case ir.KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case ir.KindNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	default:
		return strconv.Quote(v.Str)
	}
}

// typeIdent turns a schema title into an exported Go identifier:
// "Animation Channel Target" -> AnimationChannelTarget,
// "Sampler magFilter" -> SamplerMagFilter.
func typeIdent(title string) string {
	var b strings.Builder
	for _, w := range splitWords(title) {
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	if b.Len() == 0 {
		return "Anonymous"
	}
	return b.String()
}

// optionIdent turns an enum option name into an identifier fragment:
// "NEAREST" -> Nearest, "image/jpeg" -> ImageJpeg,
// "NEAREST_MIPMAP_LINEAR" -> NearestMipmapLinear.
func optionIdent(name string) string {
	var b strings.Builder
	for _, w := range splitWords(name) {
		if w == strings.ToUpper(w) && len(w) > 1 {
			w = strings.ToLower(w)
		}
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	if b.Len() == 0 {
		return "Placeholder"
	}
	return b.String()
}

func fieldIdent(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return "Field"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
