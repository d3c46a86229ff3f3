package warehouse

import "fmt"

// Comparator is one compiled sort key's binary ordering, returning -1/0/1
// (spec §4.F).
type Comparator func(a, b map[string]any) int

// SortField is one entry of a sort document. A plain Go map has no
// iteration order, so unlike Query/Update documents a sort specification is
// an ordered slice — the direct analogue of the source's ordered-object
// iteration, preserving the declaration-order semantics spec §4.F and the
// end-to-end multi-key scenario in §8 depend on.
type SortField struct {
	Path string
	// Direction is 1, -1, "asc", or "desc".
	Direction any
}

// ParseSort compiles a sort specification into its list of per-key
// comparators in declaration order (spec §6: "_parseSort(s) -> [comparator]").
func (s *Schema) ParseSort(fields []SortField) ([]Comparator, error) {
	comparators := make([]Comparator, 0, len(fields))
	for _, f := range fields {
		path := f.Path
		t := s.typeAt(path)
		direction, err := sortDirection(f.Direction)
		if err != nil {
			return nil, fmt.Errorf("%w: sort key %q: %s", ErrInvalidPathDecl, path, err)
		}
		comparators = append(comparators, func(a, b map[string]any) int {
			av, _ := getPath(a, path)
			bv, _ := getPath(b, path)
			return direction * t.Compare(av, bv)
		})
	}
	return comparators, nil
}

// ExecSort compiles a sort specification into a single lexicographic
// comparator (spec §4.F, §6: "_execSort(s) -> comparator"): the first
// non-zero per-key comparison wins.
func (s *Schema) ExecSort(fields []SortField) (Comparator, error) {
	comparators, err := s.ParseSort(fields)
	if err != nil {
		return nil, err
	}
	return func(a, b map[string]any) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}, nil
}

func sortDirection(v any) (int, error) {
	switch d := v.(type) {
	case string:
		switch d {
		case "asc":
			return 1, nil
		case "desc":
			return -1, nil
		}
	case int:
		if d >= 0 {
			return 1, nil
		}
		return -1, nil
	case float64:
		if d >= 0 {
			return 1, nil
		}
		return -1, nil
	}
	return 0, fmt.Errorf("unrecognized sort direction %v", v)
}
