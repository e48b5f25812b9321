package deep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":[true,null,"x"]}`))
	require.NoError(t, err)

	assert.True(t, EqualAny(map[string]any{"a": 1, "b": []any{true, nil, "x"}}, v.Interface()))

	_, err = Parse([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Mapping{"a": Sequence{Primitive{V: 1}, nil}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,null]}`, string(data))
}

func TestDiffAndPatch(t *testing.T) {
	from, err := Parse([]byte(`{"interval":"5m","radarr":{"enabled":true,"items":3},"drop":1}`))
	require.NoError(t, err)
	to, err := Parse([]byte(`{"interval":"10m","radarr":{"enabled":true,"items":3}}`))
	require.NoError(t, err)

	patch, err := Diff(from, to)
	require.NoError(t, err)
	assert.JSONEq(t, `{"interval":"10m","drop":null}`, string(patch))

	patched, err := Patch(from, patch)
	require.NoError(t, err)
	assert.True(t, Equal(to, patched))

	// the input is untouched
	assert.Equal(t, "5m", from.(Mapping)["interval"].Interface())
}

func TestDiff_Equal(t *testing.T) {
	v := Of(map[string]any{"a": []any{1, 2}})

	patch, err := Diff(v, Copy(v))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(patch))
}

func TestDiff_NonMappings(t *testing.T) {
	tests := []struct {
		name          string
		from, to      any
		expectedPatch string
	}{
		{"equal sequences", []any{1, 2}, []any{1, 2}, `[1,2]`},
		{"reordered sequence", []any{1, 2}, []any{2, 1}, `[2,1]`},
		{"mapping to sequence", map[string]any{"a": 1}, []any{1}, `[1]`},
		{"sequence to mapping", []any{1}, map[string]any{"a": 1}, `{"a":1}`},
		{"primitive to mapping", 1, map[string]any{"a": []any{true}}, `{"a":[true]}`},
		{"primitives", 1, "1", `"1"`},
		{"mapping to null", map[string]any{"a": 1}, nil, `null`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			from, to := Of(test.from), Of(test.to)

			patch, err := Diff(from, to)
			require.NoError(t, err)
			assert.JSONEq(t, test.expectedPatch, string(patch))

			patched, err := Patch(from, patch)
			require.NoError(t, err)
			assert.True(t, Equal(to, patched), "patched %v", patched.Interface())
		})
	}
}

func TestPatch_InvalidPatch(t *testing.T) {
	_, err := Patch(Mapping{}, []byte(`{"a":`))
	assert.Error(t, err)
}

func TestEqualJSON(t *testing.T) {
	assert.True(t, EqualJSON([]byte(`{"a":1,"b":[1,2]}`), []byte(`{"b":[1,2],"a":1}`)))
	assert.False(t, EqualJSON([]byte(`{"a":1,"b":[1,2]}`), []byte(`{"a":1,"b":[2,1]}`)))
}
