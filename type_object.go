package warehouse

// ObjectType is the synthetic SchemaType materialized for a plain-mapping
// schema node (spec invariant 2): it is itself a path in the stacks, but its
// children — not this type's own cast/validate — carry the real field
// semantics. It only guards presence and required-ness of the group.
type ObjectType struct {
	BaseType
}

// Object constructs the synthetic Object SchemaType installed at a grouping
// path by the schema compiler before it recurses into that path's children.
func Object(opts ...Option) *ObjectType {
	t := &ObjectType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *ObjectType) TypeName() string { return "Object" }

func (t *ObjectType) Cast(value any, _ map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		if d != nil {
			return d
		}
		return map[string]any{}
	}
	return value
}

func (t *ObjectType) Validate(value any, _ map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}
	if _, ok := value.(map[string]any); !ok {
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}
	return value, nil
}

func (t *ObjectType) Parse(value any) any { return value }

func (t *ObjectType) Export(value any, _ map[string]any) any { return value }

func (t *ObjectType) Compare(a, b any) int { return compareAny(a, b) }
