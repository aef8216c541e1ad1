package flatkind

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Schema errors (raised while interpreting definitions).
	CodeMissingField          = "missing_field"
	CodeBadField              = "bad_field"
	CodeUnknownCategory       = "unknown_category"
	CodeUnknownKind           = "unknown_kind"
	CodeDuplicateKind         = "duplicate_kind"
	CodeDuplicateRegistration = "duplicate_registration"
	CodeCyclicReference       = "cyclic_reference"
	CodeBadNiche              = "bad_niche"
	CodeTooManyVariants       = "too_many_variants"
	CodeBadDocument           = "bad_document"

	// Codegen errors (raised while emitting expressions).
	CodeNotInitialized = "not_initialized"
	CodeNoGenerator    = "no_generator"
	CodeMisaligned     = "misaligned_position"
)

// SchemaError reports a malformed or inconsistent schema definition: a missing
// required field, an unknown category or kind reference, a cyclic member
// reference, or a conflicting registration. Schema errors are fail-fast and
// non-retriable; a failed kind invalidates every composite referencing it.
type SchemaError struct {
	Kind    string // name of the offending kind ("" when none applies)
	Code    string // one of the schema codes above
	Message string
}

func (e *SchemaError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("schema: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("schema: kind %q: %s: %s", e.Kind, e.Code, e.Message)
}

// CodeGenError reports that expression generation failed: a kind was queried
// before initialization completed, has no generator for its name, or was asked
// to read from a position incompatible with its view width.
type CodeGenError struct {
	Kind    string // name of the kind whose generation failed
	Code    string // one of the codegen codes above
	Message string
}

func (e *CodeGenError) Error() string {
	return fmt.Sprintf("codegen: kind %q: %s: %s", e.Kind, e.Code, e.Message)
}

// AsSchemaError extracts a SchemaError from an error using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsCodeGenError extracts a CodeGenError from an error using errors.As internally.
func AsCodeGenError(err error) (*CodeGenError, bool) {
	var ce *CodeGenError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func schemaErrf(kind, code, format string, a ...any) *SchemaError {
	return &SchemaError{Kind: kind, Code: code, Message: fmt.Sprintf(format, a...)}
}

func codegenErrf(kind, code, format string, a ...any) *CodeGenError {
	return &CodeGenError{Kind: kind, Code: code, Message: fmt.Sprintf(format, a...)}
}
