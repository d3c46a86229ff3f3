package warehouse

import "strings"

// getPath reads the value at a dotted path in doc. It returns (nil, false) if
// any intermediate segment is absent or is not itself a nested object — arrays
// are addressed as whole values, never indexed.
func getPath(doc map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	cur := any(doc)

	for _, seg := range segments {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		v, exists := m[seg]
		if !exists {
			return nil, false
		}
		cur = v
	}

	return cur, true
}

// setPath writes value at a dotted path in doc, creating missing intermediate
// objects as needed. It reports an error if an intermediate segment already
// holds a non-object value.
func setPath(doc map[string]any, path string, value any) error {
	segments := strings.Split(path, ".")
	cur := doc

	for _, seg := range segments[:len(segments)-1] {
		next, exists := cur[seg]
		if !exists {
			m := make(map[string]any)
			cur[seg] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return ErrTypeMismatch
		}
		cur = m
	}

	cur[segments[len(segments)-1]] = value
	return nil
}

// delPath removes the leaf key named by path, leaving any empty intermediate
// objects in place — del never prunes parents.
func delPath(doc map[string]any, path string) {
	segments := strings.Split(path, ".")
	cur := doc

	for _, seg := range segments[:len(segments)-1] {
		next, exists := cur[seg]
		if !exists {
			return
		}
		m, ok := next.(map[string]any)
		if !ok {
			return
		}
		cur = m
	}

	delete(cur, segments[len(segments)-1])
}

// joinPath joins a (possibly empty) prefix and a key into a dotted path
// without ever producing a leading dot — see spec §4.D's documented fix for
// the leading-dot bug in nested normal-query recursion.
func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
