package warehouse

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// LoadYAML builds a Schema from a YAML-encoded declaration tree, the textual
// counterpart to constructing one from a Go map literal (SPEC_FULL §6). Type
// tags in the YAML must name a registered built-in (or a tag previously
// added with RegisterBuiltinType) since a text format cannot carry a Go
// constructor value directly (spec §4.B/§4.C).
func LoadYAML(decl []byte) (*Schema, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(decl, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrYAMLUnmarshal, err)
	}
	return NewSchema(normalizeYAMLTree(tree).(map[string]any))
}

// normalizeYAMLTree recursively converts goccy/go-yaml's decoded
// map[string]interface{}/[]interface{} shapes (which may nest
// map[any]any-like values depending on the document) into the
// map[string]any/[]any shapes compileLeaf expects.
func normalizeYAMLTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[k] = normalizeYAMLTree(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[fmt.Sprint(k)] = normalizeYAMLTree(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = normalizeYAMLTree(vv)
		}
		return out
	default:
		return v
	}
}
