package warehouse

import "errors"

// === Registration errors ===
var (
	// ErrInvalidPathDecl is returned when a schema path declaration has no
	// recognizable shape (not a SchemaType, constructor, type map, array, or
	// plain object). The query, update and sort compilers also wrap it when a
	// document they are given is malformed ($not/$where/list/sort direction).
	ErrInvalidPathDecl = errors.New("invalid value for schema path")

	// ErrUnknownBuiltinType is returned when a type tag does not match any
	// built-in constructor and is not itself a constructor function.
	ErrUnknownBuiltinType = errors.New("unknown built-in schema type")

	// ErrUnknownHookKind is returned when pre/post is called with a kind other
	// than "save" or "remove".
	ErrUnknownHookKind = errors.New("unknown hook kind")

	// ErrNonCallableHook is returned when pre/post is given a non-function value.
	ErrNonCallableHook = errors.New("hook is not callable")

	// ErrEmptyMethodName is returned when method/static is given an empty name.
	ErrEmptyMethodName = errors.New("method name must not be empty")

	// ErrNonCallableMethod is returned when method/static is given a non-function value.
	ErrNonCallableMethod = errors.New("method is not callable")
)

// === Validation errors ===
// Validate does not return these sentinels themselves: it returns a
// *ValidationError whose Message is the sentinel's text, so errors.Is does not
// match them there. setPath returns ErrTypeMismatch directly.
var (
	// ErrRequired is the message of the validate() failure for a missing
	// required path.
	ErrRequired = errors.New("path is required")

	// ErrTypeMismatch is the message of the validate() failure for a value
	// that does not match its SchemaType's expected shape.
	ErrTypeMismatch = errors.New("value does not match schema type")

	// ErrFormatMismatch is the message of the validate() failure for a string
	// that fails its declared format while formats are asserted.
	ErrFormatMismatch = errors.New("value does not match declared format")
)

// === Operator errors ===
var (
	// ErrUnknownQueryOperator is returned when a query document references a
	// "$op" for which the path's SchemaType has no q$op method.
	ErrUnknownQueryOperator = errors.New("unknown query operator")

	// ErrUnknownUpdateOperator is returned when an update document references
	// a "$op" for which the path's SchemaType has no u$op method.
	ErrUnknownUpdateOperator = errors.New("unknown update operator")
)

// === Population errors ===
var (
	// ErrPopulateMissingModel is returned when a populate item has no model
	// and none can be derived from the referenced path's SchemaType.
	ErrPopulateMissingModel = errors.New("model is required")

	// ErrPopulateMissingPath is returned when a populate item has no path.
	ErrPopulateMissingPath = errors.New("path is required")

	// ErrPopulateInvalidInput is returned when the populate expression is not
	// one of the accepted input forms.
	ErrPopulateInvalidInput = errors.New("invalid populate expression")
)

// === Codec errors ===
var (
	// ErrJSONUnmarshal is returned when a persisted document cannot be decoded;
	// MarshalDocument also wraps encoding failures with it.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when a YAML schema declaration cannot be decoded.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Default value errors ===
var (
	// ErrUnknownDefaultFunc is returned when a default value function call
	// references a name that was never registered.
	ErrUnknownDefaultFunc = errors.New("unknown default function")
)
