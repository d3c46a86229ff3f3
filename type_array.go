package warehouse

// ArrayType is the built-in "Array" SchemaType: an ordered sequence whose
// elements are each governed by a child SchemaType (spec §3, §4.C). Arrays
// are addressed as whole values — no element-level path exists — so Cast,
// Validate, Parse, and Export all operate over the whole slice.
type ArrayType struct {
	BaseType
	Child       SchemaType
	MinItems    *int
	MaxItems    *int
	UniqueItems bool
}

// Array constructs an Array SchemaType whose elements are each compiled
// against child (a bare SchemaType when the declaration's sequence was
// empty, per §4.C).
func Array(child SchemaType, opts ...Option) *ArrayType {
	t := &ArrayType{Child: child}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	t.queryOps["size"] = t.querySize
	t.updateOps["push"] = t.updatePush
	t.updateOps["pull"] = t.updatePull
	t.updateOps["addToSet"] = t.updateAddToSet
	for _, o := range opts {
		o(t)
	}
	return t
}

// UniqueItemsOption rejects arrays containing two deeply-equal elements.
func UniqueItemsOption() Option {
	return func(st SchemaType) {
		if t, ok := st.(*ArrayType); ok {
			t.UniqueItems = true
		}
	}
}

// MinItems rejects arrays shorter than n elements.
func MinItems(n int) Option {
	return func(st SchemaType) {
		if t, ok := st.(*ArrayType); ok {
			t.MinItems = &n
		}
	}
}

// MaxItems rejects arrays longer than n elements.
func MaxItems(n int) Option {
	return func(st SchemaType) {
		if t, ok := st.(*ArrayType); ok {
			t.MaxItems = &n
		}
	}
}

func (t *ArrayType) TypeName() string { return "Array" }

func (t *ArrayType) Cast(value any, doc map[string]any) any {
	if value == nil {
		d, _ := t.resolveDefault()
		value = d
	}
	items, ok := value.([]any)
	if !ok {
		return value
	}
	if t.Child == nil {
		return items
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = t.Child.Cast(item, doc)
	}
	return out
}

func (t *ArrayType) Validate(value any, doc map[string]any) (any, error) {
	if value == nil {
		if t.Required {
			return nil, NewValidationError("required", "required", ErrRequired.Error())
		}
		return nil, nil
	}

	items, ok := value.([]any)
	if !ok {
		return nil, NewValidationError("type", "type_mismatch", ErrTypeMismatch.Error())
	}
	if t.MinItems != nil && len(items) < *t.MinItems {
		return nil, NewValidationError("minItems", "min_items", "array shorter than minItems",
			map[string]any{"minItems": *t.MinItems})
	}
	if t.MaxItems != nil && len(items) > *t.MaxItems {
		return nil, NewValidationError("maxItems", "max_items", "array longer than maxItems",
			map[string]any{"maxItems": *t.MaxItems})
	}
	if t.UniqueItems {
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if deepEqual(items[i], items[j]) {
					return nil, NewValidationError("uniqueItems", "unique_items", "array contains duplicate items")
				}
			}
		}
	}

	if t.Child == nil {
		return items, nil
	}
	out := make([]any, len(items))
	for i, item := range items {
		v, err := t.Child.Validate(item, doc)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *ArrayType) Parse(value any) any {
	items, ok := value.([]any)
	if !ok || t.Child == nil {
		return value
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = t.Child.Parse(item)
	}
	return out
}

func (t *ArrayType) Export(value any, doc map[string]any) any {
	items, ok := value.([]any)
	if !ok || t.Child == nil {
		return value
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = t.Child.Export(item, doc)
	}
	return out
}

func (t *ArrayType) Compare(a, b any) int {
	as, aok := a.([]any)
	bs, bok := b.([]any)
	if !aok || !bok {
		return compareAny(a, b)
	}
	if len(as) != len(bs) {
		if len(as) < len(bs) {
			return -1
		}
		return 1
	}
	for i := range as {
		var c int
		if t.Child != nil {
			c = t.Child.Compare(as[i], bs[i])
		} else {
			c = compareAny(as[i], bs[i])
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

func (t *ArrayType) querySize(value, query any, _ map[string]any) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}
	n, ok := toFloat64(query)
	if !ok {
		return false
	}
	return float64(len(items)) == n
}

func (t *ArrayType) updatePush(value, update any, _ map[string]any) any {
	items, _ := value.([]any)
	return append(append([]any{}, items...), update)
}

func (t *ArrayType) updatePull(value, update any, _ map[string]any) any {
	items, _ := value.([]any)
	out := make([]any, 0, len(items))
	for _, item := range items {
		if !deepEqual(item, update) {
			out = append(out, item)
		}
	}
	return out
}

func (t *ArrayType) updateAddToSet(value, update any, _ map[string]any) any {
	items, _ := value.([]any)
	for _, item := range items {
		if deepEqual(item, update) {
			return items
		}
	}
	return append(append([]any{}, items...), update)
}
