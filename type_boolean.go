package warehouse

// BooleanType is the built-in "Boolean" SchemaType.
type BooleanType struct {
	BaseType
}

// Boolean constructs a Boolean SchemaType.
func Boolean(opts ...Option) *BooleanType {
	t := &BooleanType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	t.updateOps["toggle"] = t.updateToggle
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *BooleanType) TypeName() string { return "Boolean" }

func (t *BooleanType) Cast(value any, doc map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		return d
	}
	return value
}

func (t *BooleanType) Validate(value any, doc map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}
	b, ok := value.(bool)
	if !ok {
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}
	return b, nil
}

func (t *BooleanType) Parse(value any) any { return value }

func (t *BooleanType) Export(value any, doc map[string]any) any { return value }

func (t *BooleanType) Compare(a, b any) int { return compareAny(a, b) }

// updateToggle implements u$toggle: flips the current boolean value,
// treating a nil current value as false.
func (t *BooleanType) updateToggle(value, _ any, _ map[string]any) any {
	b, _ := value.(bool)
	return !b
}
