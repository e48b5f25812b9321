package deep

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Parse decodes a JSON document into a Value
func Parse(data []byte) (Value, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode json value: %w", err)
	}
	return Of(decoded), nil
}

// Marshal encodes v as JSON
func Marshal(v Value) ([]byte, error) {
	data, err := json.Marshal(normalize(v).Interface())
	if err != nil {
		return nil, fmt.Errorf("encode json value: %w", err)
	}
	return data, nil
}

// emptyDocument is the merge patch target used in place of a non-mapping document
var emptyDocument = []byte("{}")

// Diff returns an RFC 7386 merge patch turning from into to.
// Equal mappings produce "{}". When to is not a mapping the patch is to
// itself, which replaces the whole document. Merge patches cannot express
// null members: a null in to reads as a removal.
func Diff(from, to Value) ([]byte, error) {
	if normalize(to).Kind() != KindMapping {
		return Marshal(to)
	}

	original := emptyDocument
	if normalize(from).Kind() == KindMapping {
		var err error
		if original, err = Marshal(from); err != nil {
			return nil, err
		}
	}
	modified, err := Marshal(to)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.CreateMergePatch(original, modified)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return patch, nil
}

// Patch applies a merge patch produced by Diff to a copy of v
func Patch(v Value, patch []byte) (Value, error) {
	replacement, err := Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	if replacement.Kind() != KindMapping {
		return replacement, nil
	}

	original := emptyDocument
	if normalize(v).Kind() == KindMapping {
		if original, err = Marshal(v); err != nil {
			return nil, err
		}
	}

	patched, err := jsonpatch.MergePatch(original, patch)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return Parse(patched)
}

// EqualJSON reports whether two JSON documents are structurally equal
func EqualJSON(a, b []byte) bool {
	return jsonpatch.Equal(a, b)
}
