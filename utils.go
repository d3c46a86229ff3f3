package warehouse

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

// replace substitutes {key} placeholders in a template string with parameter
// values, used to render ValidationError.Message without a templating engine.
// Numeric params are rendered through formatNumber rather than fmt.Sprint so
// a bound like 0.1 never prints with float64's binary-representation noise.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, formatParam(value))
	}
	return template
}

func formatParam(value any) string {
	if f, ok := toFloat64(value); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(value)
}

// valueKind classifies a Go value into the JSON kinds the data model (spec §3)
// distinguishes: null, boolean, number, string, array, object.
func valueKind(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		_ = v
		return "unknown"
	}
}

// deepEqual compares two Values for structural equality. Numbers compare by
// numeric value regardless of their concrete Go numeric type, matching JSON's
// single number kind.
func deepEqual(a, b any) bool {
	if isNumeric(a) && isNumeric(b) {
		ar, aok := toBigRat(a)
		br, bok := toBigRat(b)
		if aok && bok {
			return ar.Cmp(br) == 0
		}
	}
	return reflect.DeepEqual(a, b)
}

// compareAny returns -1/0/1 for a total order between two values, used by the
// BaseType fallback comparator and by types whose Compare delegates to it.
// Numbers compare numerically, strings lexically, booleans false<true;
// mismatched kinds compare by kind name so the order is still total.
func compareAny(a, b any) int {
	if isNumeric(a) && isNumeric(b) {
		ar, _ := toBigRat(a)
		br, _ := toBigRat(b)
		return ar.Cmp(br)
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs)
	}

	ab, aok := a.(bool)
	bb, bok := b.(bool)
	if aok && bok {
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	}

	ak, bk := valueKind(a), valueKind(b)
	return strings.Compare(ak, bk)
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func toBigRat(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case float32:
		return new(big.Rat).SetFloat64(float64(n)), true
	case float64:
		return new(big.Rat).SetFloat64(n), true
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int8:
		return new(big.Rat).SetInt64(int64(n)), true
	case int16:
		return new(big.Rat).SetInt64(int64(n)), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	default:
		return nil, false
	}
}

// toFloat64 converts any numeric Value to float64, used by types that do not
// need big.Rat precision (e.g. Array length comparisons).
func toFloat64(v any) (float64, bool) {
	r, ok := toBigRat(v)
	if !ok {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}
