package warehouse

import "fmt"

// Mutator is one compiled update action, applied to a document in place
// (spec §4.E).
type Mutator func(doc map[string]any)

// ParseUpdate compiles an update document into an ordered list of mutators
// (spec §4.E, §6: "_parseUpdate(u) -> [mutator]"), applied in declaration
// order by the caller.
func (s *Schema) ParseUpdate(update map[string]any) ([]Mutator, error) {
	return s.compileUpdate(update, "")
}

func (s *Schema) compileUpdate(update map[string]any, prefix string) ([]Mutator, error) {
	mutators := make([]Mutator, 0, len(update))

	for key, value := range update {
		if len(key) > 0 && key[0] == '$' {
			m, err := s.compileInlineOp(key, value, prefix)
			if err != nil {
				return nil, err
			}
			mutators = append(mutators, m...)
			continue
		}

		nested, isNested := value.(map[string]any)
		if isNested && !isOperatorMap(nested) {
			sub, err := s.compileUpdate(nested, joinPath(prefix, key))
			if err != nil {
				return nil, err
			}
			mutators = append(mutators, sub...)
			continue
		}

		path := joinPath(prefix, key)
		if isNested {
			// First-class form on a path: key: {$op: value, ...}.
			m, err := s.compileFirstClassOps(path, nested)
			if err != nil {
				return nil, err
			}
			mutators = append(mutators, m...)
			continue
		}

		literal := value
		mutators = append(mutators, func(doc map[string]any) {
			_ = setPath(doc, path, literal)
		})
	}

	return mutators, nil
}

// compileInlineOp compiles the inline form `"$op": {field: value, ...}`. It
// fixes the source's documented bug (spec §4.E, §9): the loop variable for
// the field being updated must be the *inner* range variable — fields[j], in
// the source's terms — never the outer operator-loop index.
func (s *Schema) compileInlineOp(opToken string, value any, prefix string) ([]Mutator, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q requires a field map", ErrInvalidPathDecl, opToken)
	}
	opName := canonicalOp(opToken[1:])

	mutators := make([]Mutator, 0, len(fields))
	for field, arg := range fields {
		path := joinPath(prefix, field)
		t := s.typeAt(path)
		fn, ok := t.UpdateOp(opName)
		if !ok {
			return nil, fmt.Errorf("%w: %q on path %q", ErrUnknownUpdateOperator, opToken, path)
		}
		arg := arg
		path := path
		mutators = append(mutators, func(doc map[string]any) {
			v, _ := getPath(doc, path)
			next := fn(v, arg, doc)
			if next != nil {
				_ = setPath(doc, path, next)
			} else {
				delPath(doc, path)
			}
		})
	}
	return mutators, nil
}

// compileFirstClassOps compiles the first-class form `key: {$op: value}`: an
// operator invoked on the prefix path's own SchemaType (spec §4.E).
func (s *Schema) compileFirstClassOps(path string, ops map[string]any) ([]Mutator, error) {
	t := s.typeAt(path)
	mutators := make([]Mutator, 0, len(ops))

	for opToken, arg := range ops {
		opName := canonicalOp(opToken[1:])
		fn, ok := t.UpdateOp(opName)
		if !ok {
			return nil, fmt.Errorf("%w: %q on path %q", ErrUnknownUpdateOperator, opToken, path)
		}
		arg := arg
		mutators = append(mutators, func(doc map[string]any) {
			v, _ := getPath(doc, path)
			next := fn(v, arg, doc)
			if next != nil {
				_ = setPath(doc, path, next)
			} else {
				delPath(doc, path)
			}
		})
	}
	return mutators, nil
}
