package warehouse

import "time"

// DateType is the built-in "Date" SchemaType. Its in-memory representation
// is time.Time; its persisted representation is an ISO-8601 (RFC3339)
// string (spec §6: "dates as ISO-8601 strings").
type DateType struct {
	BaseType
}

// Date constructs a Date SchemaType.
func Date(opts ...Option) *DateType {
	t := &DateType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *DateType) TypeName() string { return "Date" }

// Cast inflates a persisted document's value into time.Time, tolerating a
// value that arrives already parsed (the getter stack may run on a document
// that already went through the import stack).
func (t *DateType) Cast(value any, _ map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		value = d
	}
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
		return v
	default:
		return v
	}
}

func (t *DateType) Validate(value any, _ map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
		}
		return parsed, nil
	default:
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}
}

// Parse decodes the persisted ISO-8601 string into time.Time (import stack).
func (t *DateType) Parse(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return value
	}
	return parsed
}

// Export encodes time.Time back to its ISO-8601 string form (export stack).
func (t *DateType) Export(value any, _ map[string]any) any {
	tm, ok := value.(time.Time)
	if !ok {
		return value
	}
	return tm.Format(time.RFC3339)
}

func (t *DateType) Compare(a, b any) int {
	at, aok := asTime(a)
	bt, bok := asTime(b)
	if !aok || !bok {
		return compareAny(a, b)
	}
	switch {
	case at.Before(bt):
		return -1
	case at.After(bt):
		return 1
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}
