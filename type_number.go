package warehouse

// NumberType is the built-in "Number" SchemaType: a float64-valued field with
// optional range and multiple-of constraints.
type NumberType struct {
	BaseType
	Min          *float64
	Max          *float64
	ExclusiveMin *float64
	ExclusiveMax *float64
	MultipleOf   *float64
}

// Number constructs a Number SchemaType.
func Number(opts ...Option) *NumberType {
	t := &NumberType{}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	t.updateOps["inc"] = t.updateInc
	t.updateOps["mul"] = t.updateMul
	for _, o := range opts {
		o(t)
	}
	return t
}

// Min rejects numbers less than n.
func Min(n float64) Option {
	return func(st SchemaType) {
		if t, ok := st.(*NumberType); ok {
			t.Min = &n
		}
	}
}

// Max rejects numbers greater than n.
func Max(n float64) Option {
	return func(st SchemaType) {
		if t, ok := st.(*NumberType); ok {
			t.Max = &n
		}
	}
}

// ExclusiveMin rejects numbers less than or equal to n.
func ExclusiveMin(n float64) Option {
	return func(st SchemaType) {
		if t, ok := st.(*NumberType); ok {
			t.ExclusiveMin = &n
		}
	}
}

// ExclusiveMax rejects numbers greater than or equal to n.
func ExclusiveMax(n float64) Option {
	return func(st SchemaType) {
		if t, ok := st.(*NumberType); ok {
			t.ExclusiveMax = &n
		}
	}
}

// MultipleOf rejects numbers that are not an exact multiple of n, checked
// with big.Rat arithmetic so float drift never produces a false rejection.
func MultipleOf(n float64) Option {
	return func(st SchemaType) {
		if t, ok := st.(*NumberType); ok {
			t.MultipleOf = &n
		}
	}
}

func (t *NumberType) TypeName() string { return "Number" }

func (t *NumberType) Cast(value any, doc map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		value = d
	}
	if value == nil {
		return nil
	}
	if f, ok := toFloat64(value); ok {
		return f
	}
	return value
}

func (t *NumberType) Validate(value any, doc map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}

	f, ok := toFloat64(value)
	if !ok {
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}

	switch {
	case t.Min != nil && f < *t.Min:
		return nil, NewValidationError("minimum", "minimum", "number below minimum", map[string]any{"minimum": *t.Min})
	case t.Max != nil && f > *t.Max:
		return nil, NewValidationError("maximum", "maximum", "number above maximum", map[string]any{"maximum": *t.Max})
	case t.ExclusiveMin != nil && f <= *t.ExclusiveMin:
		return nil, NewValidationError("exclusiveMinimum", "exclusive_minimum", "number not above exclusiveMinimum",
			map[string]any{"exclusiveMinimum": *t.ExclusiveMin})
	case t.ExclusiveMax != nil && f >= *t.ExclusiveMax:
		return nil, NewValidationError("exclusiveMaximum", "exclusive_maximum", "number not below exclusiveMaximum",
			map[string]any{"exclusiveMaximum": *t.ExclusiveMax})
	case t.MultipleOf != nil && !isMultipleOf(f, *t.MultipleOf):
		return nil, NewValidationError("multipleOf", "multiple_of", "number is not a multiple",
			map[string]any{"multipleOf": *t.MultipleOf})
	}

	return f, nil
}

func (t *NumberType) Parse(value any) any {
	if f, ok := toFloat64(value); ok {
		return f
	}
	return value
}

func (t *NumberType) Export(value any, doc map[string]any) any { return value }

func (t *NumberType) Compare(a, b any) int { return compareAny(a, b) }

// updateInc implements u$inc: adds update to the current numeric value,
// treating a nil current value as zero.
func (t *NumberType) updateInc(value, update any, _ map[string]any) any {
	cur, _ := toFloat64(value)
	delta, _ := toFloat64(update)
	return cur + delta
}

// updateMul implements u$mul: multiplies the current numeric value by
// update, treating a nil current value as zero.
func (t *NumberType) updateMul(value, update any, _ map[string]any) any {
	cur, _ := toFloat64(value)
	factor, _ := toFloat64(update)
	return cur * factor
}
