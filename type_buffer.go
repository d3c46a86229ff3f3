package warehouse

import "encoding/hex"

// BufferType is the built-in "Buffer" SchemaType. Its in-memory
// representation is []byte; its persisted representation is a hex string
// (spec §6: "buffers as hex strings").
type BufferType struct {
	BaseType
}

// Buffer constructs a Buffer SchemaType.
func Buffer(opts ...Option) *BufferType {
	t := &BufferType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *BufferType) TypeName() string { return "Buffer" }

func (t *BufferType) Cast(value any, _ map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		value = d
	}
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return v
	case string:
		if decoded, err := hex.DecodeString(v); err == nil {
			return decoded
		}
		return v
	default:
		return v
	}
}

func (t *BufferType) Validate(value any, _ map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		decoded, err := hex.DecodeString(v)
		if err != nil {
			return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
		}
		return decoded, nil
	default:
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}
}

// Parse decodes the persisted hex string into []byte (import stack).
func (t *BufferType) Parse(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return value
	}
	return decoded
}

// Export encodes []byte back to its hex string form (export stack).
func (t *BufferType) Export(value any, _ map[string]any) any {
	b, ok := value.([]byte)
	if !ok {
		return value
	}
	return hex.EncodeToString(b)
}

func (t *BufferType) Compare(a, b any) int {
	ab, aok := a.([]byte)
	bb, bok := b.([]byte)
	if !aok || !bok {
		return compareAny(a, b)
	}
	n := len(ab)
	if len(bb) < n {
		n = len(bb)
	}
	for i := 0; i < n; i++ {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(ab) < len(bb):
		return -1
	case len(ab) > len(bb):
		return 1
	default:
		return 0
	}
}
