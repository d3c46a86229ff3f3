package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAgeVisitsSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"age":    Number(),
		"visits": Number(),
	}, ""))
	return s
}

func applyMutators(mutators []Mutator, doc map[string]any) {
	for _, m := range mutators {
		m(doc)
	}
}

// TestEndToEnd_Update covers the third §8 end-to-end scenario: $set + $inc.
func TestEndToEnd_Update(t *testing.T) {
	s := buildAgeVisitsSchema(t)

	mutators, err := s.ParseUpdate(map[string]any{
		"$set": map[string]any{"age": 31.0},
		"$inc": map[string]any{"visits": 1.0},
	})
	require.NoError(t, err)

	doc := map[string]any{"age": 30.0, "visits": 5.0}
	applyMutators(mutators, doc)

	assert.Equal(t, 31.0, doc["age"])
	assert.Equal(t, 6.0, doc["visits"])
}

// TestUpdateIdempotence covers testable property #7.
func TestUpdateIdempotence(t *testing.T) {
	s := buildAgeVisitsSchema(t)

	setMutators, err := s.ParseUpdate(map[string]any{"$set": map[string]any{"age": 40.0}})
	require.NoError(t, err)

	doc := map[string]any{"age": 1.0}
	applyMutators(setMutators, doc)
	applyMutators(setMutators, doc)
	assert.Equal(t, 40.0, doc["age"])

	unsetMutators, err := s.ParseUpdate(map[string]any{"$unset": map[string]any{"age": ""}})
	require.NoError(t, err)
	applyMutators(unsetMutators, doc)
	applyMutators(unsetMutators, doc)
	_, exists := doc["age"]
	assert.False(t, exists)
}

// TestUpdate_RenameMovesValueOnce covers testable property #7's $rename
// clause: the value moves from the source path to the target exactly once,
// and a second application (source already gone) is a no-op rather than
// clobbering the target with nil.
func TestUpdate_RenameMovesValueOnce(t *testing.T) {
	s := buildAgeVisitsSchema(t)

	mutators, err := s.ParseUpdate(map[string]any{"$rename": map[string]any{"age": "years"}})
	require.NoError(t, err)

	doc := map[string]any{"age": 30.0}
	applyMutators(mutators, doc)

	_, stillPresent := doc["age"]
	assert.False(t, stillPresent)
	assert.Equal(t, 30.0, doc["years"])

	applyMutators(mutators, doc)
	assert.Equal(t, 30.0, doc["years"])
	_, stillPresent = doc["age"]
	assert.False(t, stillPresent)
}

func TestUpdate_FirstClassForm(t *testing.T) {
	s := buildAgeVisitsSchema(t)
	mutators, err := s.ParseUpdate(map[string]any{"visits": map[string]any{"$inc": 3.0}})
	require.NoError(t, err)

	doc := map[string]any{"visits": 5.0}
	applyMutators(mutators, doc)
	assert.Equal(t, 8.0, doc["visits"])
}

func TestUpdate_InlineFormMultipleFields(t *testing.T) {
	// Covers the documented fields[j]-vs-fields[i] fix (spec §4.E/§9): with
	// multiple fields under one operator, every field must be updated using
	// its own value, not another field's.
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"a": Number(),
		"b": Number(),
		"c": Number(),
	}, ""))

	mutators, err := s.ParseUpdate(map[string]any{
		"$inc": map[string]any{"a": 1.0, "b": 2.0, "c": 3.0},
	})
	require.NoError(t, err)

	doc := map[string]any{"a": 0.0, "b": 0.0, "c": 0.0}
	applyMutators(mutators, doc)

	assert.Equal(t, 1.0, doc["a"])
	assert.Equal(t, 2.0, doc["b"])
	assert.Equal(t, 3.0, doc["c"])
}

func TestUpdate_NestedAssignment(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"name": map[string]any{"first": String(), "last": String()},
	}, ""))

	mutators, err := s.ParseUpdate(map[string]any{"name": map[string]any{"first": "Jane"}})
	require.NoError(t, err)

	doc := map[string]any{}
	applyMutators(mutators, doc)
	name, ok := doc["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", name["first"])
}

func TestUpdate_UnknownOperatorErrors(t *testing.T) {
	s := buildAgeVisitsSchema(t)
	_, err := s.ParseUpdate(map[string]any{"$frobnicate": map[string]any{"age": 1.0}})
	assert.ErrorIs(t, err, ErrUnknownUpdateOperator)
}
