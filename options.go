package warehouse

// Option mutates a SchemaType at construction time. It mirrors the teacher's
// functional-options Keyword pattern, collapsed to a single shared type since
// every built-in type already exposes its TypeOptions through Options().
//
// Type-specific options (MinLength, Min, UniqueItems, ...) live next to the
// type they apply to and type-assert the SchemaType they receive; applying
// one to the wrong concrete type is a silent no-op rather than a panic, so
// that option lists can be built generically by callers that don't always
// know the concrete type in hand.
type Option func(SchemaType)

// Required marks a path as required: present and non-null whenever the
// document is validated (spec §3, invariant 3).
func Required() Option {
	return func(t SchemaType) { t.Options().Required = true }
}

// Default sets the path's default value, consulted by Cast whenever the
// stored value is nil. v may be a literal, a func() any, a func() (any,
// error), or a function-call string such as "now()" or "uuid()".
func Default(v any) Option {
	return func(t SchemaType) { t.Options().Default = v }
}

// Ref names the model a path's value (or an Array path's elements) point at,
// consulted by the population descriptor parser (spec §4.G).
func Ref(model string) Option {
	return func(t SchemaType) { t.Options().Ref = model }
}
