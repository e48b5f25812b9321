package deep

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Kind tells which variant a Value holds
type Kind uint8

const (
	// KindPrimitive is a scalar or opaque value compared with ==
	KindPrimitive Kind = iota

	// KindSequence is an ordered list keyed by index
	KindSequence

	// KindMapping is a keyed structure
	KindMapping
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a plain data value: a Primitive, a Sequence or a Mapping.
// A nil Value is treated as Primitive{nil}.
type Value interface {
	Kind() Kind
	// Interface returns the value as plain Go data ([]any, map[string]any or the scalar itself)
	Interface() any
}

// Primitive wraps a scalar such as nil, a bool, a number or a string.
// Anything Of does not recognize as a sequence or mapping also ends up here.
type Primitive struct {
	V any
}

// Sequence is an ordered list of values
type Sequence []Value

// Mapping is a set of values keyed by string
type Mapping map[string]Value

func (Primitive) Kind() Kind { return KindPrimitive }
func (Sequence) Kind() Kind  { return KindSequence }
func (Mapping) Kind() Kind   { return KindMapping }

func (p Primitive) Interface() any { return p.V }

func (s Sequence) Interface() any {
	out := make([]any, len(s))
	for i, item := range s {
		out[i] = normalize(item).Interface()
	}
	return out
}

func (m Mapping) Interface() any {
	out := make(map[string]any, len(m))
	for key, item := range m {
		out[key] = normalize(item).Interface()
	}
	return out
}

// Null is the nil primitive
var Null = Primitive{}

// Of converts plain Go data into a Value. Maps become a Mapping, with
// non-string keys written out with fmt.Sprint. Structs become a Mapping of
// their exported fields by name. Slices and arrays become a Sequence, pointers
// and interfaces are followed. Nil maps, slices and pointers become Null.
//
// Structs without exported fields, types that encode themselves as text or
// JSON (time.Time for one) and every other type are kept whole as a Primitive.
func Of(v any) Value {
	switch typed := v.(type) {
	case nil:
		return Null
	case Value:
		return normalize(typed)
	case map[string]any:
		if typed == nil {
			return Null
		}
		out := make(Mapping, len(typed))
		for key, item := range typed {
			out[key] = Of(item)
		}
		return out
	case []any:
		if typed == nil {
			return Null
		}
		out := make(Sequence, len(typed))
		for i, item := range typed {
			out[i] = Of(item)
		}
		return out
	case string, bool, float64, float32, int, int64, int32, uint, uint64:
		return Primitive{V: typed}
	}

	return ofReflect(reflect.ValueOf(v))
}

func ofReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return Of(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return Null
		}
		return ofList(rv)
	case reflect.Array:
		return ofList(rv)
	case reflect.Map:
		if rv.IsNil() {
			return Null
		}
		stringKeys := rv.Type().Key().Kind() == reflect.String
		out := make(Mapping, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			name := key.String()
			if !stringKeys {
				name = fmt.Sprint(key.Interface())
			}
			out[name] = Of(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		if opaque(rv.Type()) {
			return Primitive{V: rv.Interface()}
		}
		return ofStruct(rv)
	}
	return Primitive{V: rv.Interface()}
}

var (
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

// opaque reports whether a struct type is kept whole instead of split into fields
func opaque(rt reflect.Type) bool {
	if rt.Implements(textMarshalerType) || rt.Implements(jsonMarshalerType) ||
		reflect.PointerTo(rt).Implements(textMarshalerType) || reflect.PointerTo(rt).Implements(jsonMarshalerType) {
		return true
	}
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			return false
		}
	}
	return true
}

func ofStruct(rv reflect.Value) Mapping {
	rt := rv.Type()
	out := make(Mapping, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		out[field.Name] = Of(rv.Field(i).Interface())
	}
	return out
}

func ofList(rv reflect.Value) Sequence {
	out := make(Sequence, rv.Len())
	for i := range out {
		out[i] = Of(rv.Index(i).Interface())
	}
	return out
}

func normalize(v Value) Value {
	if v == nil {
		return Null
	}
	return v
}

// keys returns the own keys of a structured value; sequences use their indices
func keys(v Value) []string {
	switch typed := v.(type) {
	case Sequence:
		out := make([]string, len(typed))
		for i := range typed {
			out[i] = strconv.Itoa(i)
		}
		return out
	case Mapping:
		out := make([]string, 0, len(typed))
		for key := range typed {
			out = append(out, key)
		}
		return out
	}
	return nil
}

// lookup returns the value stored under key in a structured value
func lookup(v Value, key string) (Value, bool) {
	switch typed := v.(type) {
	case Sequence:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(typed) || strconv.Itoa(i) != key {
			return nil, false
		}
		return normalize(typed[i]), true
	case Mapping:
		item, ok := typed[key]
		return normalize(item), ok
	}
	return nil, false
}
