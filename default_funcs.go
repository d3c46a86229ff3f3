package warehouse

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFunc generates a dynamic default value for a path's `default` option
// when it is declared as a function-call string, e.g. `"now()"` or `"uuid()"`.
type DefaultFunc func(args ...any) (any, error)

// defaultFuncs is the process-wide registry of named default functions.
// Registration mirrors the teacher's Compiler.RegisterDefaultFunc, simplified
// to a package-level table since this spec has no global Compiler type —
// Schema instances share it the way every Schema shares the built-in type
// registry in registry.go.
var defaultFuncs = map[string]DefaultFunc{
	"now":  DefaultNowFunc,
	"uuid": DefaultUUIDFunc,
}

// RegisterDefaultFunc adds or overrides a named default function, callable
// from a schema declaration as `"name(args...)"`.
func RegisterDefaultFunc(name string, fn DefaultFunc) {
	defaultFuncs[name] = fn
}

// FunctionCall is a parsed `name(arg, arg, ...)` default-value expression.
type FunctionCall struct {
	Name string
	Args []any
}

// parseFunctionCall recognizes the `name(...)` shape. It returns (nil, nil)
// for any string that is not in that shape, so callers can fall back to
// treating the string as a literal default value.
func parseFunctionCall(input string) (*FunctionCall, error) {
	if len(input) < 2 || !strings.HasSuffix(input, ")") {
		return nil, nil
	}

	parenIndex := strings.IndexByte(input, '(')
	if parenIndex <= 0 {
		return nil, nil
	}

	name := strings.TrimSpace(input[:parenIndex])
	argsStr := strings.TrimSpace(input[parenIndex+1 : len(input)-1])

	args := []any{}
	if argsStr != "" {
		args = parseArgs(argsStr)
	}

	return &FunctionCall{Name: name, Args: args}, nil
}

// parseArgs parses comma-separated function arguments, preferring integer and
// float interpretations before falling back to a bare string.
func parseArgs(argsStr string) []any {
	parts := strings.Split(argsStr, ",")
	args := make([]any, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i, err := strconv.ParseInt(part, 10, 64); err == nil {
			args = append(args, i)
			continue
		}
		if f, err := strconv.ParseFloat(part, 64); err == nil {
			args = append(args, f)
			continue
		}
		args = append(args, strings.Trim(part, `"'`))
	}

	return args
}

// callDefaultFunc looks up and invokes a parsed function call against the
// registry, used by TypeOptions.resolveDefault.
func callDefaultFunc(fc *FunctionCall) (any, error) {
	fn, ok := defaultFuncs[fc.Name]
	if !ok {
		return nil, ErrUnknownDefaultFunc
	}
	return fn(fc.Args...)
}

// DefaultNowFunc generates the current timestamp, formatted with the optional
// first argument (a time.Format layout string) or RFC3339 otherwise.
func DefaultNowFunc(args ...any) (any, error) {
	format := time.RFC3339
	if len(args) > 0 {
		if f, ok := args[0].(string); ok {
			format = f
		}
	}
	return time.Now().Format(format), nil
}

// DefaultUUIDFunc generates a random UUID string, the common default for an
// Id/CUID path that is not otherwise allocated by the collection layer.
func DefaultUUIDFunc(_ ...any) (any, error) {
	return uuid.NewString(), nil
}
