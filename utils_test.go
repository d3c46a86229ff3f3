package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		template string
		params   map[string]any
		expected string
	}{
		{
			"Value should be at most {maximum}",
			map[string]any{"maximum": 100},
			"Value should be at most 100",
		},
		{
			"Encoding '{encoding}' is not supported",
			map[string]any{"encoding": "utf-8"},
			"Encoding 'utf-8' is not supported",
		},
		{
			"No placeholders here",
			map[string]any{"placeholder": "value"},
			"No placeholders here",
		},
		{
			"{value} should be greater than {exclusiveMinimum}",
			map[string]any{"value": 5, "exclusiveMinimum": 3},
			"5 should be greater than 3",
		},
	}

	for _, test := range tests {
		t.Run(test.template, func(t *testing.T) {
			result := replace(test.template, test.params)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"bool", true, "boolean"},
		{"int", 5, "number"},
		{"float", 5.5, "number"},
		{"string", "hi", "string"},
		{"array", []any{1, 2}, "array"},
		{"object", map[string]any{"a": 1}, "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, valueKind(tt.value))
		})
	}
}

func TestDeepEqual(t *testing.T) {
	assert.True(t, deepEqual(1, 1.0))
	assert.True(t, deepEqual(int64(3), float32(3)))
	assert.True(t, deepEqual("a", "a"))
	assert.False(t, deepEqual("a", "b"))
	assert.True(t, deepEqual([]any{1, 2}, []any{1, 2}))
	assert.False(t, deepEqual([]any{1, 2}, []any{1, 3}))
}

func TestCompareAny(t *testing.T) {
	assert.Equal(t, -1, compareAny(1, 2))
	assert.Equal(t, 1, compareAny(2.0, 1))
	assert.Equal(t, 0, compareAny(3, 3.0))
	assert.Equal(t, -1, compareAny("a", "b"))
	assert.Equal(t, -1, compareAny(false, true))
	assert.Equal(t, 0, compareAny(true, true))
}

func TestIsMultipleOf(t *testing.T) {
	assert.True(t, isMultipleOf(0.3, 0.1))
	assert.True(t, isMultipleOf(9, 3))
	assert.False(t, isMultipleOf(10, 3))
	assert.False(t, isMultipleOf(5, 0))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", formatNumber(5.0))
	assert.Equal(t, "5.5", formatNumber(5.5))
}
