package warehouse

// QueryOpFunc is the signature every q$<op> method on a SchemaType must satisfy:
// a pure predicate over the current path's value, the operator's query argument,
// and the owning document (for cross-path comparisons).
type QueryOpFunc func(value, query any, doc map[string]any) bool

// UpdateOpFunc is the signature every u$<op> method on a SchemaType must
// satisfy: it returns the replacement value for the path, or nil to clear it.
// $rename is the one operator that ignores this convention — it writes a
// different path directly through the accessor and then returns nil; given
// a target that is not a non-empty string it returns the value unchanged.
type UpdateOpFunc func(value, update any, doc map[string]any) any

// TypeOptions holds the attributes common to every SchemaType: whether the
// path is required and its default. Required and Default are immutable after
// registration (invariant 3, spec §3).
type TypeOptions struct {
	Required bool
	Default  any // a Value, a func() any, or a func() (any, error)
	Ref      string // population target model name, consulted by §4.G
}

// resolveDefault evaluates Default, calling a function default each time it
// is consulted rather than once at registration (testable property #2).
func (o *TypeOptions) resolveDefault() (any, error) {
	switch d := o.Default.(type) {
	case nil:
		return nil, nil
	case func() any:
		return d(), nil
	case func() (any, error):
		return d()
	case string:
		if fc, err := parseFunctionCall(d); err == nil && fc != nil {
			return callDefaultFunc(fc)
		}
		return d, nil
	default:
		return d, nil
	}
}

// SchemaType is the polymorphic capability set every field type must
// implement (spec §3). Array and Object additionally carry a child
// SchemaType / nested path set, held on the concrete type, not the interface.
type SchemaType interface {
	// TypeName is the type's registered tag, e.g. "String", "Number".
	TypeName() string

	// Options returns the shared required/default/ref attributes.
	Options() *TypeOptions

	// Cast ingresses a persisted value into in-memory form; null/absent
	// substitutes the default.
	Cast(value any, doc map[string]any) any

	// Validate egresses a value before persistence, enforcing Required and
	// canonicalizing; returns a *ValidationError (nil on success).
	Validate(value any, doc map[string]any) (any, error)

	// Parse decodes a persisted/wire form (e.g. ISO-8601 string -> time.Time).
	Parse(value any) any

	// Export encodes the in-memory value to its JSON-safe persisted form;
	// this is spec §3's `value(value, doc) -> value`, renamed to avoid
	// shadowing the Value type alias.
	Export(value any, doc map[string]any) any

	// Compare returns a total order over two values of this type, used by
	// the sort compiler.
	Compare(a, b any) int

	// Match is the default equality-style predicate for bare field queries.
	Match(v, q any, doc map[string]any) bool

	// QueryOp looks up a q$<op> method by operator name (without the $).
	QueryOp(name string) (QueryOpFunc, bool)

	// UpdateOp looks up a u$<op> method by operator name (without the $).
	UpdateOp(name string) (UpdateOpFunc, bool)
}

// operatorAliases implements the well-known aliases from spec §4.B: a query
// or update operator name is canonicalized before being looked up in a type's
// operator table.
var operatorAliases = map[string]string{
	"exists": "exist",
	"max":    "lte",
	"min":    "gte",
}

func canonicalOp(name string) string {
	if alias, ok := operatorAliases[name]; ok {
		return alias
	}
	return name
}

// BaseType is the bare SchemaType synthesized on the fly for a path with no
// registered type (spec §4.D/§4.E/§4.F: unknown paths never fail compilation,
// they get default equality/compare). It is also embedded by every built-in
// type to pick up the common operator tables in commonQueryOps/commonUpdateOps.
type BaseType struct {
	TypeOptions
	compareFn func(a, b any) int
	queryOps  map[string]QueryOpFunc
	updateOps map[string]UpdateOpFunc
}

// newBaseType builds a BaseType carrying the operators every SchemaType
// supports regardless of its value kind. compare is normally the concrete
// type's own Compare method value, so that gt/gte/lt/lte and equality-style
// ops (ne/in/nin/Match) respect type-specific ordering (e.g. Date) instead of
// falling back to the generic compareAny for everything.
func newBaseType(opts TypeOptions, compare func(a, b any) int) BaseType {
	b := BaseType{TypeOptions: opts, compareFn: compare}
	b.queryOps = commonQueryOps(compare)
	b.updateOps = commonUpdateOps()
	return b
}

func (t *BaseType) TypeName() string      { return "Base" }
func (t *BaseType) Options() *TypeOptions { return &t.TypeOptions }

func (t *BaseType) Cast(value any, _ map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		return d
	}
	return value
}

func (t *BaseType) Validate(value any, _ map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, &ValidationError{Keyword: "required", Code: "required", Message: ErrRequired.Error()}
		}
		return nil, nil
	}
	return value, nil
}

func (t *BaseType) Parse(value any) any                   { return value }
func (t *BaseType) Export(value any, _ map[string]any) any { return value }

func (t *BaseType) Compare(a, b any) int {
	if t.compareFn != nil {
		return t.compareFn(a, b)
	}
	return compareAny(a, b)
}

func (t *BaseType) Match(v, q any, _ map[string]any) bool { return t.Compare(v, q) == 0 }

func (t *BaseType) QueryOp(name string) (QueryOpFunc, bool) {
	fn, ok := t.queryOps[canonicalOp(name)]
	return fn, ok
}

func (t *BaseType) UpdateOp(name string) (UpdateOpFunc, bool) {
	fn, ok := t.updateOps[canonicalOp(name)]
	return fn, ok
}

// commonQueryOps returns the operator table every SchemaType inherits:
// comparison and membership operators built on the type's own ordering.
func commonQueryOps(compare func(a, b any) int) map[string]QueryOpFunc {
	eq := func(a, b any) bool { return compare(a, b) == 0 }
	return map[string]QueryOpFunc{
		"exist": func(value, query any, _ map[string]any) bool {
			want, _ := query.(bool)
			return (value != nil) == want
		},
		"ne": func(value, query any, _ map[string]any) bool {
			return !eq(value, query)
		},
		"in": func(value, query any, _ map[string]any) bool {
			list, ok := query.([]any)
			if !ok {
				return false
			}
			for _, item := range list {
				if eq(value, item) {
					return true
				}
			}
			return false
		},
		"nin": func(value, query any, _ map[string]any) bool {
			list, ok := query.([]any)
			if !ok {
				return true
			}
			for _, item := range list {
				if eq(value, item) {
					return false
				}
			}
			return true
		},
		"gt":  func(value, query any, _ map[string]any) bool { return compare(value, query) > 0 },
		"gte": func(value, query any, _ map[string]any) bool { return compare(value, query) >= 0 },
		"lt":  func(value, query any, _ map[string]any) bool { return compare(value, query) < 0 },
		"lte": func(value, query any, _ map[string]any) bool { return compare(value, query) <= 0 },
	}
}

// commonUpdateOps returns the operator table every SchemaType inherits: the
// generic mutation operators that apply to any value kind.
func commonUpdateOps() map[string]UpdateOpFunc {
	return map[string]UpdateOpFunc{
		"set": func(_, update any, _ map[string]any) any {
			return update
		},
		"unset": func(_, _ any, _ map[string]any) any {
			return nil
		},
		// rename is the documented exception to the UpdateOpFunc convention:
		// it writes the current value at a different path directly through
		// the accessor and returns nil, so the caller's delPath branch
		// clears the source path. A missing source value (nil) is a no-op
		// rather than overwriting the target, so applying rename twice never
		// clobbers an already-moved value. A target that is not a non-empty
		// string writes nothing and returns the value, leaving the source as is.
		"rename": func(value, update any, doc map[string]any) any {
			if value == nil {
				return nil
			}
			target, ok := update.(string)
			if !ok || target == "" {
				return value
			}
			_ = setPath(doc, target, value)
			return nil
		},
	}
}
