// Package gltfgen compiles the glTF 2.0 JSON Schema tree into a typed Go
// data model:
//
// - Named struct and enum definitions deduplicated by schema title
// - Field-level decode contracts (required/optional, defaults, integer ranges)
// - A single generated Go source file with pull-based decoders
//
// Design policy:
// - Keep the compiler (loader, normalizer, registry) in the root package;
//   put the source emitter under internal/gen and the shared type model
//   under internal/ir.
// - The token protocol lives in source/json; the committed generated model
//   in gltf; the binary container reader in glb; the CLI in cmd/gltfgen.
//
// Typical usage:
//
//	c, diag, err := gltfgen.CompileDir("schema", "glTF.schema.json", gltfgen.Options{})
//	src, diag, err := c.Generate("gltf")
package gltfgen
