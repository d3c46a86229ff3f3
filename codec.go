package warehouse

import (
	"fmt"

	"github.com/goccy/go-json"
)

// jsonEncoder/jsonDecoder are the pluggable JSON codec a Schema uses to
// (de)serialize persisted documents, grounded on the teacher's Compiler
// jsonEncoder/jsonDecoder fields — defaulting to goccy/go-json rather than
// encoding/json. Only MarshalDocument and UnmarshalDocument use the codec; the
// getter/setter/import/export stacks never do.
type jsonEncoderFunc func(v any) ([]byte, error)
type jsonDecoderFunc func(data []byte, v any) error

// WithEncoderJSON overrides the JSON encoder MarshalDocument uses.
func (s *Schema) WithEncoderJSON(encoder jsonEncoderFunc) *Schema {
	s.jsonEncoder = encoder
	return s
}

// WithDecoderJSON overrides the JSON decoder UnmarshalDocument uses.
func (s *Schema) WithDecoderJSON(decoder jsonDecoderFunc) *Schema {
	s.jsonDecoder = decoder
	return s
}

func defaultJSONEncoder() jsonEncoderFunc { return json.Marshal }
func defaultJSONDecoder() jsonDecoderFunc { return json.Unmarshal }

// MarshalDocument encodes doc to JSON text, after running ExportDatabase so
// Virtual paths are stripped and Date/Buffer values are in their wire form.
func (s *Schema) MarshalDocument(doc map[string]any) ([]byte, error) {
	encoder := s.jsonEncoder
	if encoder == nil {
		encoder = defaultJSONEncoder()
	}
	out := s.ExportDatabase(cloneDoc(doc))
	data, err := encoder(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrJSONUnmarshal, err)
	}
	return data, nil
}

// UnmarshalDocument decodes JSON text into a document and runs ParseDatabase
// over it, inflating ISO-8601/hex wire forms into their runtime types.
func (s *Schema) UnmarshalDocument(data []byte) (map[string]any, error) {
	decoder := s.jsonDecoder
	if decoder == nil {
		decoder = defaultJSONDecoder()
	}
	var doc map[string]any
	if err := decoder(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrJSONUnmarshal, err)
	}
	return s.ParseDatabase(doc), nil
}

// cloneDoc makes a shallow-recursive copy of doc so MarshalDocument's export
// pass never mutates the caller's in-memory document.
func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if m, ok := v.(map[string]any); ok {
			out[k] = cloneDoc(m)
			continue
		}
		out[k] = v
	}
	return out
}
