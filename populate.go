package warehouse

// PopulateDescriptor is one resolved populate reference (spec §4.G).
type PopulateDescriptor struct {
	Path  string
	Model string
}

// ParsePopulate normalizes a populate expression into an ordered list of
// resolved descriptors (spec §4.G, §6: "_parsePopulate(e) -> [descriptor]").
// Accepted input forms: a single path string, a space-separated string of
// several paths, a []string, a []map[string]any of option mappings, or a
// single map[string]any.
func (s *Schema) ParsePopulate(expr any) ([]PopulateDescriptor, error) {
	items, err := normalizePopulateInput(expr)
	if err != nil {
		return nil, err
	}

	descriptors := make([]PopulateDescriptor, 0, len(items))
	for _, item := range items {
		path, _ := item["path"].(string)
		if path == "" {
			return nil, ErrPopulateMissingPath
		}

		model, _ := item["model"].(string)
		if model == "" {
			model = s.refModelFor(path)
		}
		if model == "" {
			return nil, ErrPopulateMissingModel
		}

		descriptors = append(descriptors, PopulateDescriptor{Path: path, Model: model})
	}

	return descriptors, nil
}

// refModelFor derives a path's referenced model from its SchemaType: an
// Array's child Ref option, or the path's own Ref option (spec §4.G).
func (s *Schema) refModelFor(path string) string {
	t, ok := s.paths[path]
	if !ok {
		return ""
	}
	if arr, ok := t.(*ArrayType); ok {
		if arr.Child != nil {
			return arr.Child.Options().Ref
		}
		return ""
	}
	return t.Options().Ref
}

func normalizePopulateInput(expr any) ([]map[string]any, error) {
	switch v := expr.(type) {
	case string:
		return splitPopulatePaths(v), nil

	case []string:
		items := make([]map[string]any, 0, len(v))
		for _, p := range v {
			items = append(items, map[string]any{"path": p})
		}
		return items, nil

	case []map[string]any:
		return v, nil

	case []any:
		items := make([]map[string]any, 0, len(v))
		for _, raw := range v {
			switch e := raw.(type) {
			case string:
				items = append(items, map[string]any{"path": e})
			case map[string]any:
				items = append(items, e)
			default:
				return nil, ErrPopulateInvalidInput
			}
		}
		return items, nil

	case map[string]any:
		return []map[string]any{v}, nil

	default:
		return nil, ErrPopulateInvalidInput
	}
}

func splitPopulatePaths(s string) []map[string]any {
	var items []map[string]any
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				items = append(items, map[string]any{"path": s[start:i]})
			}
			start = i + 1
		}
	}
	return items
}
