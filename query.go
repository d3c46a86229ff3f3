package warehouse

import "fmt"

// Predicate is a compiled query, evaluated once per document (spec §4.D).
type Predicate func(doc map[string]any) bool

// ExecQuery compiles a query document into a single AND-composed predicate
// over documents (spec §4.D, §6: "_execQuery(q) -> predicate"). Compilation
// never fails on an unregistered path — a bare SchemaType is synthesized on
// the fly (spec §7 policy) — but an unknown operator on a registered type is
// a compile-time error (spec §7 kind 4).
func (s *Schema) ExecQuery(query map[string]any) (Predicate, error) {
	preds, err := s.compileQuery(query, "")
	if err != nil {
		return nil, err
	}
	return andAll(preds), nil
}

func andAll(preds []Predicate) Predicate {
	return func(doc map[string]any) bool {
		for _, p := range preds {
			if !p(doc) {
				return false
			}
		}
		return true
	}
}

func orAny(preds []Predicate) Predicate {
	return func(doc map[string]any) bool {
		for _, p := range preds {
			if p(doc) {
				return true
			}
		}
		return false
	}
}

// compileQuery compiles one query document's clauses into a predicate list,
// AND-composed by the caller (spec §4.D grammar's top-level Query rule).
func (s *Schema) compileQuery(query map[string]any, prefix string) ([]Predicate, error) {
	preds := make([]Predicate, 0, len(query))

	for key, value := range query {
		switch key {
		case "$and":
			sub, err := s.compileQueryList(value)
			if err != nil {
				return nil, err
			}
			preds = append(preds, sub...)

		case "$or":
			sub, err := s.compileQueryList(value)
			if err != nil {
				return nil, err
			}
			preds = append(preds, orAny(sub))

		case "$nor":
			sub, err := s.compileQueryList(value)
			if err != nil {
				return nil, err
			}
			or := orAny(sub)
			preds = append(preds, func(doc map[string]any) bool { return !or(doc) })

		case "$not":
			inner, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: $not requires a query document", ErrInvalidPathDecl)
			}
			sub, err := s.compileQuery(inner, prefix)
			if err != nil {
				return nil, err
			}
			all := andAll(sub)
			preds = append(preds, func(doc map[string]any) bool { return !all(doc) })

		case "$where":
			fn, ok := value.(func(doc map[string]any) bool)
			if !ok {
				return nil, fmt.Errorf("%w: $where requires a func(map[string]any) bool", ErrInvalidPathDecl)
			}
			preds = append(preds, Predicate(fn))

		default:
			p, err := s.compileFieldQuery(joinPath(prefix, key), value)
			if err != nil {
				return nil, err
			}
			preds = append(preds, p)
		}
	}

	return preds, nil
}

func (s *Schema) compileQueryList(value any) ([]Predicate, error) {
	list, ok := value.([]map[string]any)
	if !ok {
		if raw, okAny := value.([]any); okAny {
			list = make([]map[string]any, 0, len(raw))
			for _, item := range raw {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w: expected a list of query documents", ErrInvalidPathDecl)
				}
				list = append(list, m)
			}
		} else {
			return nil, fmt.Errorf("%w: expected a list of query documents", ErrInvalidPathDecl)
		}
	}

	preds := make([]Predicate, 0, len(list))
	for _, q := range list {
		sub, err := s.compileQuery(q, "")
		if err != nil {
			return nil, err
		}
		preds = append(preds, andAll(sub))
	}
	return preds, nil
}

// compileFieldQuery compiles FieldQuery: key: (Value | NestedQuery |
// OperatorMap). path is the dotted path this field query addresses (spec
// §4.D: "descend with prefix K into parseNormalQuery").
func (s *Schema) compileFieldQuery(path string, value any) (Predicate, error) {
	t := s.typeAt(path)

	m, ok := value.(map[string]any)
	if !ok {
		// Scalar value: default equality check via the path's match.
		return func(doc map[string]any) bool {
			v, _ := getPath(doc, path)
			return t.Match(v, value, doc)
		}, nil
	}

	if isOperatorMap(m) {
		return s.compileOperatorMap(path, t, m)
	}

	// NestedQuery: recurse into the dotted path (carries the leading-dot fix:
	// joinPath never emits one when the running prefix is empty).
	sub, err := s.compileQuery(m, path)
	if err != nil {
		return nil, err
	}
	return andAll(sub), nil
}

// isOperatorMap reports whether every key in m begins with "$" — the
// OperatorMap production — as opposed to a NestedQuery, whose keys are plain
// sub-field names.
func isOperatorMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if len(k) == 0 || k[0] != '$' {
			return false
		}
	}
	return true
}

func (s *Schema) compileOperatorMap(path string, t SchemaType, m map[string]any) (Predicate, error) {
	type opCheck struct {
		fn    QueryOpFunc
		query any
	}
	checks := make([]opCheck, 0, len(m))

	for opToken, query := range m {
		opName := canonicalOp(opToken[1:])
		fn, ok := t.QueryOp(opName)
		if !ok {
			return nil, fmt.Errorf("%w: %q on path %q", ErrUnknownQueryOperator, opToken, path)
		}
		checks = append(checks, opCheck{fn: fn, query: query})
	}

	return func(doc map[string]any) bool {
		v, _ := getPath(doc, path)
		for _, c := range checks {
			if !c.fn(v, c.query, doc) {
				return false
			}
		}
		return true
	}, nil
}

// typeAt returns the registered SchemaType at path, synthesizing a bare
// BaseType when none is registered (spec §4.D/§7: unknown paths never fail
// query compilation).
func (s *Schema) typeAt(path string) SchemaType {
	if t, ok := s.paths[path]; ok {
		return t
	}
	base := newBaseType(TypeOptions{}, compareAny)
	return &base
}
