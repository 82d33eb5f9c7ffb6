package parser

import (
	"encoding/json"
	"math"
)

// converter extracts a typed value from a decoded JSON value, reporting
// false when the JSON type does not match.
type converter[T any] func(v any) (T, bool)

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// asInt accepts only numbers written as integer literals.
func asInt(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func asFloat(v any) (float64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func asUint32(v any) (uint32, bool) {
	i, ok := asInt(v)
	if !ok || i < 0 || i > math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}

// AsObject reports whether v is a JSON object.
func AsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// AsArray reports whether v is a JSON array.
func AsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// readOr is the single read-or-default rule: obj[key] converted with conv,
// or the zero value of T when the key is missing or has another type.
func readOr[T any](obj map[string]any, key string, conv converter[T]) T {
	v, ok := obj[key]
	if !ok {
		var zero T
		return zero
	}
	out, ok := conv(v)
	if !ok {
		var zero T
		return zero
	}
	return out
}

// ReadString returns obj[key] if it is a string, otherwise "".
func ReadString(obj map[string]any, key string) string { return readOr(obj, key, asString) }

// ReadBool returns obj[key] if it is a boolean, otherwise false.
func ReadBool(obj map[string]any, key string) bool { return readOr(obj, key, asBool) }

// ReadInt returns obj[key] if it is an integer number, otherwise 0.
func ReadInt(obj map[string]any, key string) int64 { return readOr(obj, key, asInt) }

// ReadFloat returns obj[key] if it is a number, otherwise 0.
func ReadFloat(obj map[string]any, key string) float64 { return readOr(obj, key, asFloat) }

// ReadObject returns obj[key] if it is an object, otherwise an empty object.
func ReadObject(obj map[string]any, key string) map[string]any {
	if out, ok := AsObject(obj[key]); ok {
		return out
	}
	return map[string]any{}
}

// ReadArray returns obj[key] if it is an array, otherwise nil.
func ReadArray(obj map[string]any, key string) []any {
	out, _ := AsArray(obj[key])
	return out
}
