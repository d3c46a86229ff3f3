package warehouse

// VirtualType is the built-in "Virtual" SchemaType (spec §4.I): a computed
// field with a user-supplied getter and an inert setter. It participates in
// the getter stack like any other path but is never persisted — its Export
// always clears the field (spec invariant 4).
type VirtualType struct {
	BaseType
	getter func(doc map[string]any) any
}

// Virtual constructs a Virtual SchemaType. getter may be nil, in which case
// the path's cast value is whatever the underlying document already holds.
func Virtual(getter func(doc map[string]any) any, opts ...Option) *VirtualType {
	t := &VirtualType{getter: getter}
	t.BaseType = newBaseType(TypeOptions{}, t.Compare)
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *VirtualType) TypeName() string { return "Virtual" }

func (t *VirtualType) Cast(value any, doc map[string]any) any {
	if t.getter != nil {
		return t.getter(doc)
	}
	return value
}

// Validate never fails: a virtual path's value is excluded from persistence
// so it has nothing to canonicalize.
func (t *VirtualType) Validate(value any, _ map[string]any) (any, error) {
	return value, nil
}

func (t *VirtualType) Parse(value any) any { return value }

// Export always yields nil, which the export stack closure treats as "delete
// the field" — a Virtual path never appears in a persisted document.
func (t *VirtualType) Export(_ any, _ map[string]any) any { return nil }

func (t *VirtualType) Compare(a, b any) int { return compareAny(a, b) }
