package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPath(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}

	v, ok := getPath(doc, "a.b.c")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = getPath(doc, "a.x.c")
	assert.False(t, ok)

	_, ok = getPath(doc, "a.b.c.d")
	assert.False(t, ok)
}

func TestSetPath(t *testing.T) {
	doc := map[string]any{}
	require := assert.New(t)

	require.NoError(setPath(doc, "a.b.c", 42))
	v, ok := getPath(doc, "a.b.c")
	require.True(ok)
	require.Equal(42, v)

	doc2 := map[string]any{"a": 1}
	err := setPath(doc2, "a.b", 2)
	require.ErrorIs(err, ErrTypeMismatch)
}

func TestDelPath(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	delPath(doc, "a.b")

	_, ok := getPath(doc, "a.b")
	assert.False(t, ok)

	a, _ := doc["a"].(map[string]any)
	assert.Contains(t, a, "c")
	assert.Len(t, a, 1)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "key", joinPath("", "key"))
	assert.Equal(t, "prefix.key", joinPath("prefix", "key"))
}

