package warehouse

// builtinConstructor builds a SchemaType for one built-in type tag from the
// raw options mapping of a declarative (JSON/YAML) schema node — the form a
// textual declaration must use, since it cannot carry a Go function value
// (spec §4.B: "built-in type tag names ... to constructors").
type builtinConstructor func(opts map[string]any) (SchemaType, error)

// builtins is the registry of built-in type tags. RegisterBuiltinType lets a
// caller add a user-defined tag so it can be driven by the same textual
// declaration path (spec §4.C: "built-in lookup on the type's tag, else user
// constructor").
var builtins = map[string]builtinConstructor{
	"String":  buildString,
	"Number":  buildNumber,
	"Boolean": buildBoolean,
	"Date":    buildDate,
	"Buffer":  buildBuffer,
	"Id":      buildID,
	"CUID":    buildID,
	"Object":  buildObject,
}

// RegisterBuiltinType adds or overrides a type tag resolvable from a textual
// schema declaration's "type" field.
func RegisterBuiltinType(tag string, fn builtinConstructor) {
	builtins[tag] = fn
}

func lookupBuiltin(tag string) (builtinConstructor, bool) {
	fn, ok := builtins[tag]
	return fn, ok
}

func commonOptions(opts map[string]any) []Option {
	var result []Option
	if req, ok := opts["required"].(bool); ok && req {
		result = append(result, Required())
	}
	if def, ok := opts["default"]; ok {
		result = append(result, Default(def))
	}
	if ref, ok := opts["ref"].(string); ok && ref != "" {
		result = append(result, Ref(ref))
	}
	return result
}

func optFloat(opts map[string]any, key string) (float64, bool) {
	v, ok := opts[key]
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

func optInt(opts map[string]any, key string) (int, bool) {
	f, ok := optFloat(opts, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func optString(opts map[string]any, key string) (string, bool) {
	s, ok := opts[key].(string)
	return s, ok
}

func optBool(opts map[string]any, key string) bool {
	b, _ := opts[key].(bool)
	return b
}

func buildString(opts map[string]any) (SchemaType, error) {
	all := commonOptions(opts)
	if n, ok := optInt(opts, "minLength"); ok {
		all = append(all, MinLength(n))
	}
	if n, ok := optInt(opts, "maxLength"); ok {
		all = append(all, MaxLength(n))
	}
	if re, ok := optString(opts, "pattern"); ok {
		all = append(all, Pattern(re))
	}
	if f, ok := optString(opts, "format"); ok {
		all = append(all, Format(f))
	}
	return String(all...), nil
}

func buildNumber(opts map[string]any) (SchemaType, error) {
	all := commonOptions(opts)
	if n, ok := optFloat(opts, "min"); ok {
		all = append(all, Min(n))
	}
	if n, ok := optFloat(opts, "max"); ok {
		all = append(all, Max(n))
	}
	if n, ok := optFloat(opts, "exclusiveMin"); ok {
		all = append(all, ExclusiveMin(n))
	}
	if n, ok := optFloat(opts, "exclusiveMax"); ok {
		all = append(all, ExclusiveMax(n))
	}
	if n, ok := optFloat(opts, "multipleOf"); ok {
		all = append(all, MultipleOf(n))
	}
	return Number(all...), nil
}

func buildBoolean(opts map[string]any) (SchemaType, error) {
	return Boolean(commonOptions(opts)...), nil
}

func buildDate(opts map[string]any) (SchemaType, error) {
	return Date(commonOptions(opts)...), nil
}

func buildBuffer(opts map[string]any) (SchemaType, error) {
	return Buffer(commonOptions(opts)...), nil
}

func buildID(opts map[string]any) (SchemaType, error) {
	return Id(commonOptions(opts)...), nil
}

func buildObject(opts map[string]any) (SchemaType, error) {
	return Object(commonOptions(opts)...), nil
}

// buildArray builds an Array SchemaType whose elements are already-compiled
// child SchemaType and whose own array-level options (minItems, maxItems,
// uniqueItems) come from opts.
func buildArray(child SchemaType, opts map[string]any) SchemaType {
	all := commonOptions(opts)
	if n, ok := optInt(opts, "minItems"); ok {
		all = append(all, MinItems(n))
	}
	if n, ok := optInt(opts, "maxItems"); ok {
		all = append(all, MaxItems(n))
	}
	if optBool(opts, "uniqueItems") {
		all = append(all, UniqueItemsOption())
	}
	return Array(child, all...)
}
