package warehouse

import (
	"regexp"
	"strings"
)

// StringType is the built-in "String" SchemaType: a UTF-8 text value with
// optional length, pattern, and named-format constraints.
type StringType struct {
	BaseType
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Format    string

	// formatGate reports whether the owning Schema currently asserts
	// formats (SPEC_FULL §4.J). It is wired up by Schema.install once this
	// type is attached to a path; nil (the standalone case) always enforces.
	formatGate func() bool
}

// String constructs a String SchemaType. opts may mix the shared Option
// (Required/Default/Ref) with the String-specific options below.
func String(opts ...Option) *StringType {
	t := &StringType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	t.queryOps["regex"] = t.queryRegex
	for _, o := range opts {
		o(t)
	}
	return t
}

// MinLength rejects strings shorter than n runes.
func MinLength(n int) Option {
	return func(st SchemaType) {
		if t, ok := st.(*StringType); ok {
			t.MinLength = &n
		}
	}
}

// MaxLength rejects strings longer than n runes.
func MaxLength(n int) Option {
	return func(st SchemaType) {
		if t, ok := st.(*StringType); ok {
			t.MaxLength = &n
		}
	}
}

// Pattern rejects strings that do not match the regular expression re. An
// invalid expression is silently dropped; Validate then never enforces it.
func Pattern(re string) Option {
	return func(st SchemaType) {
		t, ok := st.(*StringType)
		if !ok {
			return
		}
		if compiled, err := regexp.Compile(re); err == nil {
			t.Pattern = compiled
		}
	}
}

// Format names a registered format validator (e.g. "email", "uuid"),
// enforced by Validate only when the owning Schema asserts formats
// (SPEC_FULL §4.J).
func Format(name string) Option {
	return func(st SchemaType) {
		if t, ok := st.(*StringType); ok {
			t.Format = name
		}
	}
}

func (t *StringType) TypeName() string { return "String" }

func (t *StringType) Cast(value any, doc map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		return d
	}
	return value
}

func (t *StringType) Validate(value any, doc map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}

	length := len([]rune(s))
	if t.MinLength != nil && length < *t.MinLength {
		return nil, NewValidationError("minLength", "min_length", "string shorter than minLength",
			map[string]any{"minLength": *t.MinLength})
	}
	if t.MaxLength != nil && length > *t.MaxLength {
		return nil, NewValidationError("maxLength", "max_length", "string longer than maxLength",
			map[string]any{"maxLength": *t.MaxLength})
	}
	if t.Pattern != nil && !t.Pattern.MatchString(s) {
		return nil, NewValidationError("pattern", "pattern_mismatch", "string does not match pattern",
			map[string]any{"pattern": t.Pattern.String()})
	}
	if t.Format != "" && (t.formatGate == nil || t.formatGate()) {
		if fn, ok := lookupFormat(t.Format); ok && !fn(s) {
			return nil, NewValidationError("format", "format_mismatch", ErrFormatMismatch.Error(),
				map[string]any{"format": t.Format})
		}
	}

	return s, nil
}

func (t *StringType) Parse(value any) any { return value }

func (t *StringType) Export(value any, doc map[string]any) any { return value }

func (t *StringType) Compare(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}
	return compareAny(a, b)
}

func (t *StringType) queryRegex(value, query any, _ map[string]any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	switch q := query.(type) {
	case string:
		re, err := regexp.Compile(q)
		if err != nil {
			return false
		}
		return re.MatchString(s)
	case *regexp.Regexp:
		return q.MatchString(s)
	default:
		return false
	}
}
