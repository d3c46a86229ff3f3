package warehouse

import "github.com/google/uuid"

// IdType is the built-in "Id"/"CUID" SchemaType: an opaque string identifier,
// typically referencing another model (spec §4.G consults its Ref option
// during population). Left without a default, a path of this type generates
// a random UUID the first time it is cast, the common stand-in for a
// collection-assigned id.
type IdType struct {
	BaseType
}

// Id constructs an Id/CUID SchemaType.
func Id(opts ...Option) *IdType {
	t := &IdType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	for _, o := range opts {
		o(t)
	}
	return t
}

// CUID is an alias for Id: both are registered as the same built-in type
// tag (spec §3 lists them together), only the declared tag name differs.
func CUID(opts ...Option) *IdType { return Id(opts...) }

func (t *IdType) TypeName() string { return "Id" }

func (t *IdType) Cast(value any, _ map[string]any) any {
	if value == nil {
		if d, _ := t.resolveDefault(); d != nil {
			return d
		}
		if t.Default == nil {
			return uuid.NewString()
		}
		return nil
	}
	return value
}

func (t *IdType) Validate(value any, _ map[string]any) (any, error) {
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
	return s, nil
}

func (t *IdType) Parse(value any) any { return value }

func (t *IdType) Export(value any, _ map[string]any) any { return value }

func (t *IdType) Compare(a, b any) int {
	as, aok := a.(string)
	bs, bok := b.(string)
	if !aok || !bok {
		return compareAny(a, b)
	}
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
