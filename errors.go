package gltfgen

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNotFound              = "not_found"
	CodeParseError            = "parse_error"
	CodeMissingTitle          = "missing_title"
	CodeMissingItems          = "missing_items"
	CodeMissingEnumBranchType = "missing_enum_branch_type"
	CodeReferenceCycle        = "reference_cycle"
	CodeDepthExceeded         = "depth_exceeded"
)

// SchemaError is a fatal compilation error. Every error carries the path of
// the schema document that produced it; there is no partial result.
type SchemaError struct {
	Path    string // Schema file path relative to the compilation root.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

func (e *SchemaError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Code, e.Path)
	}
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// AsSchemaError extracts a *SchemaError from an error using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	if err == nil {
		return nil, false
	}
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func schemaErrf(path, code, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}
