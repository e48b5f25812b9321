package deep

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal.
//
// Primitives compare with strict equality, numbers by numeric value whatever
// their Go type. Structured values are equal when they have the same number of
// own keys and every key of a holds an equal value in b. Sequences are keyed by
// index, so element order matters. A primitive never equals a structured value.
func Equal(a, b Value) bool {
	a, b = normalize(a), normalize(b)

	if a.Kind() == KindPrimitive || b.Kind() == KindPrimitive {
		pa, okA := a.(Primitive)
		pb, okB := b.(Primitive)
		return okA && okB && primitiveEqual(pa.V, pb.V)
	}

	switch ta := a.(type) {
	case Sequence:
		if tb, ok := b.(Sequence); ok {
			return sequenceEqual(ta, tb)
		}
	case Mapping:
		if tb, ok := b.(Mapping); ok {
			return mappingEqual(ta, tb)
		}
	}

	return keywiseEqual(a, b)
}

// EqualAny converts a and b with Of and compares them with Equal
func EqualAny(a, b any) bool {
	return Equal(Of(a), Of(b))
}

func sequenceEqual(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func mappingEqual(a, b Mapping) bool {
	if len(a) != len(b) {
		return false
	}
	for key, item := range a {
		other, ok := b[key]
		if !ok || !Equal(item, other) {
			return false
		}
	}
	return true
}

// keywiseEqual compares a sequence with a mapping through their own keys
func keywiseEqual(a, b Value) bool {
	keysA := keys(a)
	if len(keysA) != len(keys(b)) {
		return false
	}
	for _, key := range keysA {
		itemA, _ := lookup(a, key)
		itemB, ok := lookup(b, key)
		if !ok || !Equal(itemA, itemB) {
			return false
		}
	}
	return true
}

func primitiveEqual(x, y any) (equal bool) {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	cx, cy := classify(vx), classify(vy)
	if cx != notNumber || cy != notNumber {
		return cx != notNumber && cy != notNumber && numberEqual(vx, cx, vy, cy)
	}

	tx, ty := vx.Type(), vy.Type()
	if tx != ty || !tx.Comparable() {
		return false
	}

	// Comparable structs may still hold uncomparable values in interface fields.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return x == y
}

type numberClass uint8

const (
	notNumber numberClass = iota
	signedNumber
	unsignedNumber
	floatNumber
)

func classify(rv reflect.Value) numberClass {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	}
	return notNumber
}

// numberEqual compares two numbers by value without losing integer precision
func numberEqual(x reflect.Value, cx numberClass, y reflect.Value, cy numberClass) bool {
	if cx > cy {
		x, cx, y, cy = y, cy, x, cx
	}

	switch {
	case cx == signedNumber && cy == signedNumber:
		return x.Int() == y.Int()
	case cx == signedNumber && cy == unsignedNumber:
		return x.Int() >= 0 && uint64(x.Int()) == y.Uint()
	case cx == unsignedNumber && cy == unsignedNumber:
		return x.Uint() == y.Uint()
	case cx == signedNumber && cy == floatNumber:
		f := y.Float()
		return f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 && int64(f) == x.Int()
	case cx == unsignedNumber && cy == floatNumber:
		f := y.Float()
		return f == math.Trunc(f) && f >= 0 && f < 1<<64 && uint64(f) == x.Uint()
	}
	return x.Float() == y.Float()
}
