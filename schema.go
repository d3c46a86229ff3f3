package warehouse

import "fmt"

// GetterFunc/SetterFunc/ImporterFunc/ExporterFunc are the four stack closure
// shapes spec §4.C names; setter is the only one that can fail, since it is
// the sole stage that runs validate(). They are exported so an out-of-package
// collection layer can read the compiled stacks via Schema.Stacks (spec §6
// read access: "paths, statics, methods, hooks, stacks").
type GetterFunc func(doc map[string]any)
type SetterFunc func(doc map[string]any) *ValidationError
type ImporterFunc func(doc map[string]any)
type ExporterFunc func(doc map[string]any)

// Stacks is a read-only snapshot of the four parallel per-path closure
// stacks, returned by Schema.Stacks.
type Stacks struct {
	Getters   []GetterFunc
	Setters   []SetterFunc
	Importers []ImporterFunc
	Exporters []ExporterFunc
}

// Schema is a compiled path-indexed pipeline set (spec §3). It is built once
// by repeated Path/Add calls; the four stacks grow monotonically and in
// lockstep with paths (invariant 1).
type Schema struct {
	paths       map[string]SchemaType
	pathOrder   []string
	getters     []GetterFunc
	setters     []SetterFunc
	importers   []ImporterFunc
	exporters   []ExporterFunc
	hooks       Hooks
	methods     map[string]any
	statics     map[string]any

	// assertFormat gates String Format validation (SPEC_FULL §4.J); off by
	// default so declarations that set Format purely as metadata don't
	// suddenly start failing validation.
	assertFormat bool

	jsonEncoder jsonEncoderFunc
	jsonDecoder jsonDecoderFunc
}

// NewSchema constructs a Schema, optionally compiling an initial declaration
// tree the way Add would (spec §6: "Schema(declaration?)").
func NewSchema(declaration ...map[string]any) (*Schema, error) {
	s := &Schema{paths: make(map[string]SchemaType)}
	if len(declaration) > 0 && declaration[0] != nil {
		if err := s.Add(declaration[0], ""); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetAssertFormat enables or disables String Format enforcement during
// Validate (SPEC_FULL §4.J), returning s for chaining.
func (s *Schema) SetAssertFormat(on bool) *Schema {
	s.assertFormat = on
	return s
}

// Paths returns the compiled path -> SchemaType map (spec §6 read access).
func (s *Schema) Paths() map[string]SchemaType { return s.paths }

// Hooks returns the registered pre/post hook lists.
func (s *Schema) Hooks() Hooks { return s.hooks }

// Methods returns the registered instance method table.
func (s *Schema) Methods() map[string]any { return s.methods }

// Statics returns the registered static method table.
func (s *Schema) Statics() map[string]any { return s.statics }

// Stacks returns the compiled getter/setter/importer/exporter closure stacks
// (spec §6 read access), so a collection layer can replay them over a
// document without re-deriving them from Paths.
func (s *Schema) Stacks() Stacks {
	return Stacks{
		Getters:   s.getters,
		Setters:   s.setters,
		Importers: s.importers,
		Exporters: s.exporters,
	}
}

// Path installs a single typed path when decl is given, or reads back the
// SchemaType already installed at name otherwise (spec §6: "path(name)",
// "path(name, decl)").
func (s *Schema) Path(name string, decl ...any) (SchemaType, error) {
	if len(decl) == 0 {
		return s.paths[name], nil
	}
	st, err := s.compileLeaf(name, decl[0])
	if err != nil {
		return nil, err
	}
	s.install(name, st)
	return st, nil
}

// Add ingests a declaration tree rooted at prefix, materializing a synthetic
// Object parent before recursing into a nested plain mapping (invariant 2),
// and a single typed path for every leaf declaration (spec §4.C).
func (s *Schema) Add(declaration map[string]any, prefix string) error {
	for key, decl := range declaration {
		name := joinPath(prefix, key)
		if nested, ok := asPlainObjectDecl(decl); ok {
			s.install(name, Object())
			if len(nested) > 0 {
				if err := s.Add(nested, name); err != nil {
					return err
				}
			}
			continue
		}
		st, err := s.compileLeaf(name, decl)
		if err != nil {
			return err
		}
		s.install(name, st)
	}
	return nil
}

// Virtual registers a Virtual SchemaType at name with an optional getter and
// returns the installed *VirtualType (spec §4.I). VirtualType has no methods
// for attaching a getter or setter afterwards; the getter given here is the
// only one the path ever has.
func (s *Schema) Virtual(name string, getter ...func(doc map[string]any) any) *VirtualType {
	var fn func(doc map[string]any) any
	if len(getter) > 0 {
		fn = getter[0]
	}
	t := Virtual(fn)
	s.install(name, t)
	return t
}

// install appends one entry to each of the four stacks for t at path,
// preserving invariant 1 (stack length == |paths|) and invariant 5 (the
// compiled closures below close over t, not over a re-lookup of s.paths, so
// they remain valid even if s.paths is mutated afterward — which the spec
// says is undefined behavior anyway).
func (s *Schema) install(path string, t SchemaType) {
	if _, exists := s.paths[path]; !exists {
		s.pathOrder = append(s.pathOrder, path)
	}
	s.paths[path] = t

	if str, ok := t.(*StringType); ok {
		str.formatGate = func() bool { return s.assertFormat }
	}

	s.getters = append(s.getters, func(doc map[string]any) {
		v, _ := getPath(doc, path)
		cast := t.Cast(v, doc)
		if cast != nil {
			_ = setPath(doc, path, cast)
		}
	})

	s.setters = append(s.setters, func(doc map[string]any) *ValidationError {
		v, _ := getPath(doc, path)
		validated, err := t.Validate(v, doc)
		if err != nil {
			if ve, ok := err.(*ValidationError); ok {
				return ve
			}
			return NewValidationError("validate", "validate", err.Error())
		}
		if validated != nil {
			_ = setPath(doc, path, validated)
		} else {
			delPath(doc, path)
		}
		return nil
	})

	s.importers = append(s.importers, func(doc map[string]any) {
		v, ok := getPath(doc, path)
		if !ok {
			return
		}
		parsed := t.Parse(v)
		if parsed != nil {
			_ = setPath(doc, path, parsed)
		}
	})

	s.exporters = append(s.exporters, func(doc map[string]any) {
		v, _ := getPath(doc, path)
		exported := t.Export(v, doc)
		if exported != nil {
			_ = setPath(doc, path, exported)
		} else {
			delPath(doc, path)
		}
	})
}

// ApplyGetters runs the getter stack over doc in insertion order, inflating
// persisted values (e.g. post-load) into their in-memory form.
func (s *Schema) ApplyGetters(doc map[string]any) {
	for _, g := range s.getters {
		g(doc)
	}
}

// ApplySetters runs the setter stack over doc, collecting every validation
// failure rather than stopping at the first (spec §7 policy).
func (s *Schema) ApplySetters(doc map[string]any) error {
	var errs ValidationErrors
	for i, setter := range s.setters {
		if ve := setter(doc); ve != nil {
			errs.add(s.pathOrder[i], ve)
		}
	}
	if errs.isEmpty() {
		return nil
	}
	return &errs
}

// ParseDatabase decodes a freshly-loaded persisted document in place and
// returns it, running the import stack.
func (s *Schema) ParseDatabase(doc map[string]any) map[string]any {
	for _, imp := range s.importers {
		imp(doc)
	}
	return doc
}

// ExportDatabase encodes doc to its JSON-safe persisted form in place and
// returns it, running the export stack (invariant 4: Virtual paths vanish).
func (s *Schema) ExportDatabase(doc map[string]any) map[string]any {
	for _, exp := range s.exporters {
		exp(doc)
	}
	return doc
}

// compileLeaf compiles a single non-Object declaration form into a
// SchemaType (spec §4.C): a SchemaType instance, a bare type constructor, an
// ordered sequence ([]any) denoting Array, or a mapping carrying a "type"
// field.
func (s *Schema) compileLeaf(name string, decl any) (SchemaType, error) {
	switch d := decl.(type) {
	case SchemaType:
		return d, nil

	case func(...Option) SchemaType:
		return d(), nil

	case []any:
		var childDecl any
		if len(d) > 0 {
			childDecl = d[0]
		}
		var child SchemaType
		if childDecl != nil {
			var err error
			child, err = s.compileLeaf(name, childDecl)
			if err != nil {
				return nil, err
			}
		} else {
			base := newBaseType(TypeOptions{}, compareAny)
			child = &base
		}
		return buildArray(child, map[string]any{}), nil

	case map[string]any:
		return s.compileTypeMap(name, d)

	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidPathDecl, name)
	}
}

// compileTypeMap compiles a {type: ..., ...options} declaration mapping,
// dispatching on the type field's shape (spec §4.C: "a mapping with a `type`
// field -> built-in lookup ... else user constructor").
func (s *Schema) compileTypeMap(name string, d map[string]any) (SchemaType, error) {
	tag, hasTag := d["type"]
	if !hasTag {
		// A plain mapping without "type" only reaches here through Path(),
		// since Add() intercepts it earlier to recurse with invariant 2's
		// preorder semantics; Path() treats it as a single Object node.
		return Object(commonOptions(d)...), nil
	}

	switch v := tag.(type) {
	case string:
		ctor, ok := lookupBuiltin(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltinType, v)
		}
		return ctor(d)

	case SchemaType:
		return v, nil

	case func(...Option) SchemaType:
		return v(commonOptions(d)...), nil

	case []any:
		var childDecl any
		if len(v) > 0 {
			childDecl = v[0]
		}
		var child SchemaType
		if childDecl != nil {
			var err error
			child, err = s.compileLeaf(name, childDecl)
			if err != nil {
				return nil, err
			}
		} else {
			base := newBaseType(TypeOptions{}, compareAny)
			child = &base
		}
		return buildArray(child, d), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltinType, name)
	}
}

// asPlainObjectDecl reports whether decl is a nested schema declaration
// (a map with no "type" key), returning it for recursion.
func asPlainObjectDecl(decl any) (map[string]any, bool) {
	m, ok := decl.(map[string]any)
	if !ok {
		return nil, false
	}
	if _, hasType := m["type"]; hasType {
		return nil, false
	}
	return m, true
}
