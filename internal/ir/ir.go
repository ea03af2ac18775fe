// Package ir defines the type model shared by the schema normalizer and the
// code emitter.
package ir

import "math"

// Handle is a stable integer identifying a registered struct or enum
// definition. Handles are indices into the registry's append-only slices,
// so the type graph never needs cyclic ownership links.
type Handle int

// ItemKind identifies an Item variant.
type ItemKind int

const (
	KindStruct ItemKind = iota
	KindEnum
	KindArray
	KindInteger
	KindNumber
	KindString
	KindBoolean
	KindExtension
	KindUnknown
)

// Item is one normalized schema object. Items are small values copied at
// every reference site; they are never shared by pointer.
type Item interface {
	Kind() ItemKind
}

// StructRef points at a registered struct definition.
type StructRef struct{ Handle Handle }

func (StructRef) Kind() ItemKind { return KindStruct }

// EnumRef points at a registered enum definition.
type EnumRef struct{ Handle Handle }

func (EnumRef) Kind() ItemKind { return KindEnum }

// MaxItemsUnbounded marks an array with no declared upper bound.
const MaxItemsUnbounded = int64(math.MaxInt64)

// Array is a sequence of Elem. When MinItems == MaxItems and both are
// bounded, the sequence has exactly that length.
type Array struct {
	Elem     Item
	MinItems int64
	MaxItems int64
}

func (Array) Kind() ItemKind { return KindArray }

// Fixed reports whether the array is a fixed-length sequence, and of what
// length.
func (a Array) Fixed() (int64, bool) {
	if a.MinItems == a.MaxItems && a.MaxItems != MaxItemsUnbounded {
		return a.MaxItems, true
	}
	return 0, false
}

// Integer carries an inclusive value range; absent schema bounds default to
// the full representable range.
type Integer struct {
	Min int64
	Max int64
}

func (Integer) Kind() ItemKind { return KindInteger }

// FullRange returns the Integer item for a schema with no declared bounds.
func FullRange() Integer { return Integer{Min: math.MinInt64, Max: math.MaxInt64} }

// Number is a JSON number mapped to the language's float type.
type Number struct{}

func (Number) Kind() ItemKind { return KindNumber }

// String is a JSON string.
type String struct{}

func (String) Kind() ItemKind { return KindString }

// Boolean is a JSON boolean.
type Boolean struct{}

func (Boolean) Kind() ItemKind { return KindBoolean }

// Extension is the open-ended extension slot carried through decoding as an
// opaque value.
type Extension struct{}

func (Extension) Kind() ItemKind { return KindExtension }

// Unknown is a schema object the normalizer could not classify. It decodes
// as an opaque value and the emitter reports a non-fatal diagnostic.
type Unknown struct{}

func (Unknown) Kind() ItemKind { return KindUnknown }

// Property is one named struct field with its decode contract.
type Property struct {
	Name        string
	Description string
	Item        Item
	// Required marks a property whose absence at decode time is an error.
	// Optional properties default to an empty sequence (arrays) or an
	// absent sentinel.
	Required bool
}

// StructDef is a named record type. Its property list is complete before
// the definition is registered; it never changes afterwards.
type StructDef struct {
	Title       string
	Description string
	Properties  []Property
}

// EnumLiteral is one enumeration constant. Scalar selects which field holds
// the value.
type EnumLiteral struct {
	Scalar ItemKind // KindInteger, KindNumber or KindString
	Int    int64
	Num    float64
	Str    string
}

// EnumOption is one named enumeration member.
type EnumOption struct {
	Name        string
	Description string
	Value       EnumLiteral
}

// EnumDef is a named enumeration inferred from an anyOf constant list.
type EnumDef struct {
	Title       string
	Description string
	Scalar      ItemKind
	Options     []EnumOption
}

// Registry owns all struct and enum definitions for one compilation run.
// It is append-only: definitions are never removed or mutated once
// registered, so a handle observed by one caller stays valid and stable
// for every later lookup.
type Registry struct {
	structs []StructDef
	enums   []EnumDef
	byTitle map[string]Handle
}

func NewRegistry() *Registry {
	return &Registry{byTitle: make(map[string]Handle)}
}

// RegisterStruct stores def under its title. The first registration wins;
// later calls for the same title return the existing handle and discard the
// argument.
func (r *Registry) RegisterStruct(def StructDef) Handle {
	if h, ok := r.byTitle[def.Title]; ok {
		return h
	}
	h := Handle(len(r.structs))
	r.byTitle[def.Title] = h
	r.structs = append(r.structs, def)
	return h
}

// LookupStruct returns the handle registered for title, if any.
func (r *Registry) LookupStruct(title string) (Handle, bool) {
	h, ok := r.byTitle[title]
	return h, ok
}

// RegisterEnum stores def and returns its handle. Enums are not
// deduplicated by title; every anyOf occurrence produces its own
// definition.
func (r *Registry) RegisterEnum(def EnumDef) Handle {
	h := Handle(len(r.enums))
	r.enums = append(r.enums, def)
	return h
}

// Struct returns the definition behind h.
func (r *Registry) Struct(h Handle) StructDef { return r.structs[h] }

// Enum returns the definition behind h.
func (r *Registry) Enum(h Handle) EnumDef { return r.enums[h] }

// Structs returns all struct definitions in discovery order.
func (r *Registry) Structs() []StructDef { return r.structs }

// Enums returns all enum definitions in discovery order.
func (r *Registry) Enums() []EnumDef { return r.enums }
