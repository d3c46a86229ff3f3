package warehouse

import (
	"fmt"
	"reflect"
)

// HookFunc is the uniform contract every pre/post hook is adapted to,
// replacing the source's Bluebird-style promise shim (spec §9): synchronous
// or asynchronous user functions are all wrapped down to one blocking,
// error-returning call. A caller that needs true asynchrony runs the hook in
// its own goroutine; the engine itself never blocks intentionally.
type HookFunc func(doc map[string]any) error

// Hooks stores the ordered pre/post lists for the two lifecycle kinds the
// engine recognizes (spec §4.H); invocation is the collection layer's job,
// the engine only stores and exposes these lists.
type Hooks struct {
	PreSave    []HookFunc
	PostSave   []HookFunc
	PreRemove  []HookFunc
	PostRemove []HookFunc
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// wrapHook adapts an arbitrary user function to HookFunc. A function
// declaring exactly one parameter is called directly, synchronously or as a
// value-returning "promise" (a receive-only error channel); a function
// declaring more than one parameter is assumed callback-style, with the
// final parameter an err-first callback (spec §4.H).
func wrapHook(fn any) (HookFunc, error) {
	if fn == nil {
		return nil, ErrNonCallableHook
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, ErrNonCallableHook
	}
	rt := rv.Type()
	if rt.NumIn() == 0 {
		return nil, ErrNonCallableHook
	}

	if rt.NumIn() == 1 {
		return func(doc map[string]any) error {
			out := rv.Call([]reflect.Value{reflect.ValueOf(doc)})
			return resultToError(out)
		}, nil
	}

	return func(doc map[string]any) error {
		errCh := make(chan error, 1)
		cbType := rt.In(rt.NumIn() - 1)
		cb := reflect.MakeFunc(cbType, func(args []reflect.Value) []reflect.Value {
			if len(args) > 0 && !args[0].IsNil() {
				errCh <- args[0].Interface().(error)
			} else {
				errCh <- nil
			}
			return make([]reflect.Value, cbType.NumOut())
		})

		args := make([]reflect.Value, rt.NumIn())
		args[0] = reflect.ValueOf(doc)
		for i := 1; i < rt.NumIn()-1; i++ {
			args[i] = reflect.Zero(rt.In(i))
		}
		args[rt.NumIn()-1] = cb

		rv.Call(args)
		return <-errCh
	}, nil
}

// resultToError normalizes a called hook's return values: no result is
// success; an error result is passed through; a channel result is treated as
// a promise and received from once.
func resultToError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	switch {
	case last.Type().Implements(errType):
		if last.IsNil() {
			return nil
		}
		return last.Interface().(error)
	case last.Kind() == reflect.Chan:
		v, ok := last.Recv()
		if ok && !v.IsNil() {
			if e, ok := v.Interface().(error); ok {
				return e
			}
		}
		return nil
	default:
		return nil
	}
}

// Pre registers a hook run before the named lifecycle action. kind must be
// "save" or "remove".
func (s *Schema) Pre(kind string, fn any) error {
	wrapped, err := wrapHook(fn)
	if err != nil {
		return err
	}
	switch kind {
	case "save":
		s.hooks.PreSave = append(s.hooks.PreSave, wrapped)
	case "remove":
		s.hooks.PreRemove = append(s.hooks.PreRemove, wrapped)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHookKind, kind)
	}
	return nil
}

// Post registers a hook run after the named lifecycle action. kind must be
// "save" or "remove".
func (s *Schema) Post(kind string, fn any) error {
	wrapped, err := wrapHook(fn)
	if err != nil {
		return err
	}
	switch kind {
	case "save":
		s.hooks.PostSave = append(s.hooks.PostSave, wrapped)
	case "remove":
		s.hooks.PostRemove = append(s.hooks.PostRemove, wrapped)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHookKind, kind)
	}
	return nil
}

// Method registers a named instance method, stored for the document wrapper
// to dispatch through; the engine does not call these itself.
func (s *Schema) Method(name string, fn any) error {
	if name == "" {
		return ErrEmptyMethodName
	}
	if reflect.ValueOf(fn).Kind() != reflect.Func {
		return ErrNonCallableMethod
	}
	if s.methods == nil {
		s.methods = make(map[string]any)
	}
	s.methods[name] = fn
	return nil
}

// Static registers a named static (collection-level) method.
func (s *Schema) Static(name string, fn any) error {
	if name == "" {
		return ErrEmptyMethodName
	}
	if reflect.ValueOf(fn).Kind() != reflect.Func {
		return ErrNonCallableMethod
	}
	if s.statics == nil {
		s.statics = make(map[string]any)
	}
	s.statics[name] = fn
	return nil
}
