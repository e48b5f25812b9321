package deep

// Copy returns a copy of v that shares no sequence or mapping with it.
// Primitives are returned as they are. Cyclic values never finish.
func Copy(v Value) Value {
	switch typed := v.(type) {
	case Sequence:
		out := make(Sequence, len(typed))
		for i, item := range typed {
			out[i] = Copy(item)
		}
		return out
	case Mapping:
		out := make(Mapping, len(typed))
		for key, item := range typed {
			out[key] = Copy(item)
		}
		return out
	}
	return v
}

// CopyAny deep copies plain Go data. The result is built from []any and
// map[string]any, whatever the concrete slice, map and struct types of v were.
// Values Of keeps whole, such as time.Time, are shared with v.
func CopyAny(v any) any {
	return Copy(Of(v)).Interface()
}
