package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthorCommentsSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema()
	require.NoError(t, err)
	require.NoError(t, s.Add(map[string]any{
		"author":   Id(Ref("User")),
		"comments": []any{Id(Ref("Comment"))},
		"tags":     []any{String()},
	}, ""))
	return s
}

// TestEndToEnd_Populate covers the fifth §8 end-to-end scenario.
func TestEndToEnd_Populate(t *testing.T) {
	s := buildAuthorCommentsSchema(t)

	descs, err := s.ParsePopulate("author comments")
	require.NoError(t, err)
	require.Len(t, descs, 2)
	assert.Equal(t, PopulateDescriptor{Path: "author", Model: "User"}, descs[0])
	assert.Equal(t, PopulateDescriptor{Path: "comments", Model: "Comment"}, descs[1])
}

func TestPopulate_MissingModelErrors(t *testing.T) {
	s := buildAuthorCommentsSchema(t)
	_, err := s.ParsePopulate([]any{map[string]any{"path": "tags"}})
	assert.ErrorIs(t, err, ErrPopulateMissingModel)
}

func TestPopulate_MissingPathErrors(t *testing.T) {
	s := buildAuthorCommentsSchema(t)
	_, err := s.ParsePopulate([]any{map[string]any{"model": "User"}})
	assert.ErrorIs(t, err, ErrPopulateMissingPath)
}

func TestPopulate_ExplicitModelOverridesRef(t *testing.T) {
	s := buildAuthorCommentsSchema(t)
	descs, err := s.ParsePopulate([]any{map[string]any{"path": "author", "model": "Override"}})
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "Override", descs[0].Model)
}

func TestPopulate_StringSliceInput(t *testing.T) {
	s := buildAuthorCommentsSchema(t)
	descs, err := s.ParsePopulate([]string{"author", "comments"})
	require.NoError(t, err)
	require.Len(t, descs, 2)
}

func TestPopulate_InvalidInputErrors(t *testing.T) {
	s := buildAuthorCommentsSchema(t)
	_, err := s.ParsePopulate(42)
	assert.ErrorIs(t, err, ErrPopulateInvalidInput)
}
