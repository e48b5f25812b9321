// Package deep compares and copies plain structured data.
//
// Data is modelled as a small sum type: Primitive for scalars, Sequence for
// ordered lists and Mapping for keyed structures. Of builds that model from
// ordinary Go values such as decoded JSON, and Value.Interface turns it back.
//
//	a := deep.Of(map[string]any{"a": 1, "b": []any{1, 2}})
//	b := deep.Copy(a)
//	deep.Equal(a, b) // true
//
// Diff and Patch express the difference between two values as a JSON merge patch,
// which is how settings forms report what the user changed.
package deep
