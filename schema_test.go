package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStackLengthInvariant covers testable property #1: after any Add/Path
// call, |paths| == |getter| == |setter| == |import| == |export|.
func TestStackLengthInvariant(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	err = s.Add(map[string]any{
		"age": Number(),
		"name": map[string]any{
			"first": String(),
			"last":  String(Default("Doe")),
		},
	}, "")
	require.NoError(t, err)

	n := len(s.paths)
	assert.Equal(t, n, len(s.getters))
	assert.Equal(t, n, len(s.setters))
	assert.Equal(t, n, len(s.importers))
	assert.Equal(t, n, len(s.exporters))

	// invariant 2: synthetic Object parent precedes its children.
	nameIdx, firstIdx := -1, -1
	for i, p := range s.pathOrder {
		if p == "name" {
			nameIdx = i
		}
		if p == "name.first" {
			firstIdx = i
		}
	}
	require.NotEqual(t, -1, nameIdx)
	require.NotEqual(t, -1, firstIdx)
	assert.Less(t, nameIdx, firstIdx)
}

// TestEndToEnd_SetterThenExport covers the first §8 end-to-end scenario.
func TestEndToEnd_SetterThenExport(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"age": Number(),
		"name": map[string]any{
			"first": String(),
			"last":  String(Default("Doe")),
		},
	}, ""))

	doc := map[string]any{"age": 30.0, "name": map[string]any{"first": "Jane"}}

	s.ApplyGetters(doc)
	require.NoError(t, s.ApplySetters(doc))
	out := s.ExportDatabase(doc)

	assert.Equal(t, 30.0, out["age"])
	name, ok := out["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", name["first"])
	assert.Equal(t, "Doe", name["last"])
}

// TestImportExportRoundTrip covers testable property #3 for Date/Buffer.
func TestImportExportRoundTrip(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"createdAt": Date(),
		"payload":   Buffer(),
	}, ""))

	orig := map[string]any{
		"createdAt": "2024-01-02T03:04:05Z",
		"payload":   "deadbeef",
	}

	doc := s.ParseDatabase(cloneDoc(orig))
	exported := s.ExportDatabase(cloneDoc(doc))

	assert.Equal(t, orig["createdAt"], exported["createdAt"])
	assert.Equal(t, orig["payload"], exported["payload"])
}

// TestVirtualNonPersistence covers testable property #8.
func TestVirtualNonPersistence(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{"first": String(), "last": String()}, ""))
	s.Virtual("fullName", func(doc map[string]any) any {
		return doc["first"].(string) + " " + doc["last"].(string)
	})

	doc := map[string]any{"first": "Jane", "last": "Doe"}
	s.ApplyGetters(doc)
	assert.Equal(t, "Jane Doe", doc["fullName"])

	out := s.ExportDatabase(doc)
	_, exists := out["fullName"]
	assert.False(t, exists)
}

func TestApplySetters_RequiredAggregatesErrors(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"name": String(Required()),
		"age":  Number(Required()),
	}, ""))

	doc := map[string]any{}
	err = s.ApplySetters(doc)
	require.Error(t, err)

	ve, ok := err.(*ValidationErrors)
	require.True(t, ok)
	assert.Len(t, ve.ByPath, 2)
	assert.Contains(t, ve.ByPath, "name")
	assert.Contains(t, ve.ByPath, "age")
}

func TestPath_ReadBack(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	_, err = s.Path("age", Number(Required()))
	require.NoError(t, err)

	st, err := s.Path("age")
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.True(t, st.Options().Required)
}

func TestAdd_InvalidDecl(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	err = s.Add(map[string]any{"bad": 42}, "")
	assert.ErrorIs(t, err, ErrInvalidPathDecl)
}

func TestAdd_UnknownBuiltinTag(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	err = s.Add(map[string]any{"bad": map[string]any{"type": "NotAType"}}, "")
	assert.ErrorIs(t, err, ErrUnknownBuiltinType)
}

func TestStacks_MatchesPathCount(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"age":  Number(),
		"name": map[string]any{"first": String()},
	}, ""))

	stacks := s.Stacks()
	n := len(s.Paths())
	assert.Len(t, stacks.Getters, n)
	assert.Len(t, stacks.Setters, n)
	assert.Len(t, stacks.Importers, n)
	assert.Len(t, stacks.Exporters, n)

	doc := map[string]any{"age": 1.0, "name": map[string]any{"first": "a"}}
	for _, g := range stacks.Getters {
		g(doc)
	}
	assert.Equal(t, 1.0, doc["age"])
}

func TestAssertFormat_GatesStringFormatValidation(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{"email": String(Format("email"))}, ""))

	doc := map[string]any{"email": "not-an-email"}
	require.NoError(t, s.ApplySetters(doc), "format is not enforced until asserted")

	s.SetAssertFormat(true)
	err = s.ApplySetters(doc)
	require.Error(t, err)
	ve, ok := err.(*ValidationErrors)
	require.True(t, ok)
	assert.Contains(t, ve.ByPath, "email")
}

func TestAdd_ArrayDecl(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{"tags": []any{String()}}, ""))

	st, _ := s.Path("tags")
	arr, ok := st.(*ArrayType)
	require.True(t, ok)
	assert.Equal(t, "String", arr.Child.TypeName())
}
