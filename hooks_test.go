package warehouse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPre_SyncErrorReturningHook(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	boom := errors.New("boom")
	require.NoError(t, s.Pre("save", func(doc map[string]any) error {
		if doc["fail"] == true {
			return boom
		}
		return nil
	}))

	require.Len(t, s.hooks.PreSave, 1)
	assert.NoError(t, s.hooks.PreSave[0](map[string]any{}))
	assert.ErrorIs(t, s.hooks.PreSave[0](map[string]any{"fail": true}), boom)
}

func TestPre_PromiseStyleHook(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	boom := errors.New("async boom")
	require.NoError(t, s.Pre("save", func(doc map[string]any) <-chan error {
		ch := make(chan error, 1)
		if doc["fail"] == true {
			ch <- boom
		} else {
			ch <- nil
		}
		return ch
	}))

	require.Len(t, s.hooks.PreSave, 1)
	assert.NoError(t, s.hooks.PreSave[0](map[string]any{}))
	assert.ErrorIs(t, s.hooks.PreSave[0](map[string]any{"fail": true}), boom)
}

func TestPost_CallbackStyleHook(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	boom := errors.New("callback boom")
	require.NoError(t, s.Post("remove", func(doc map[string]any, cb func(error)) {
		if doc["fail"] == true {
			cb(boom)
			return
		}
		cb(nil)
	}))

	require.Len(t, s.hooks.PostRemove, 1)
	assert.NoError(t, s.hooks.PostRemove[0](map[string]any{}))
	assert.ErrorIs(t, s.hooks.PostRemove[0](map[string]any{"fail": true}), boom)
}

func TestPre_UnknownKindErrors(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	err = s.Pre("sync", func(doc map[string]any) error { return nil })
	assert.ErrorIs(t, err, ErrUnknownHookKind)
}

func TestPre_NonCallableHookErrors(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Pre("save", "not a function"), ErrNonCallableHook)
	assert.ErrorIs(t, s.Pre("save", func() error { return nil }), ErrNonCallableHook)
}

func TestMethod_RegistersAndValidates(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	require.NoError(t, s.Method("greet", func(doc map[string]any) string { return "hi" }))
	assert.Contains(t, s.Methods(), "greet")

	assert.ErrorIs(t, s.Method("", func() {}), ErrEmptyMethodName)
	assert.ErrorIs(t, s.Method("bad", "not a func"), ErrNonCallableMethod)
}

func TestStatic_RegistersAndValidates(t *testing.T) {
	s, err := NewSchema()
	require.NoError(t, err)

	require.NoError(t, s.Static("findActive", func() []map[string]any { return nil }))
	assert.Contains(t, s.Statics(), "findActive")

	assert.ErrorIs(t, s.Static("", func() {}), ErrEmptyMethodName)
	assert.ErrorIs(t, s.Static("bad", 42), ErrNonCallableMethod)
}
