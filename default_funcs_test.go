package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNowFunc(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "default RFC3339", args: []any{}},
		{name: "custom date format", args: []any{"2006-01-02"}},
		{name: "custom time format", args: []any{"15:04:05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DefaultNowFunc(tt.args...)
			require.NoError(t, err)
			_, ok := result.(string)
			assert.True(t, ok, "DefaultNowFunc result should be a string")
		})
	}
}

func TestDefaultUUIDFunc(t *testing.T) {
	result, err := DefaultUUIDFunc()
	require.NoError(t, err)
	s, ok := result.(string)
	require.True(t, ok)
	assert.Len(t, s, 36)
}

func TestParseFunctionCall(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *FunctionCall
	}{
		{name: "no args", in: "now()", want: &FunctionCall{Name: "now", Args: []any{}}},
		{name: "string arg", in: "now(unix)", want: &FunctionCall{Name: "now", Args: []any{"unix"}}},
		{
			name: "multiple args",
			in:   "func(arg1, 42, 3.14)",
			want: &FunctionCall{Name: "func", Args: []any{"arg1", int64(42), float64(3.14)}},
		},
		{name: "not a function call", in: "just a string", want: nil},
		{name: "empty string", in: "", want: nil},
		{name: "unterminated", in: "func(", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFunctionCall(tt.in)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Args, got.Args)
		})
	}
}

func TestRegisterDefaultFunc(t *testing.T) {
	RegisterDefaultFunc("static_test_value", func(args ...any) (any, error) {
		return "registered", nil
	})

	fc, err := parseFunctionCall("static_test_value()")
	require.NoError(t, err)
	result, err := callDefaultFunc(fc)
	require.NoError(t, err)
	assert.Equal(t, "registered", result)
}

func TestCallDefaultFunc_Unknown(t *testing.T) {
	_, err := callDefaultFunc(&FunctionCall{Name: "does_not_exist"})
	assert.ErrorIs(t, err, ErrUnknownDefaultFunc)
}

func TestTypeOptions_ResolveDefault_FunctionCallString(t *testing.T) {
	opts := TypeOptions{Default: "now()"}
	v, err := opts.resolveDefault()
	require.NoError(t, err)
	_, ok := v.(string)
	assert.True(t, ok)
}

func TestTypeOptions_ResolveDefault_Literal(t *testing.T) {
	opts := TypeOptions{Default: "active"}
	v, err := opts.resolveDefault()
	require.NoError(t, err)
	assert.Equal(t, "active", v)
}

func TestTypeOptions_ResolveDefault_Func(t *testing.T) {
	opts := TypeOptions{Default: func() any { return 42 }}
	v, err := opts.resolveDefault()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
