package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var cases = []struct {
		in string
		ok bool
	}{
		{"1.2.3", true},
		{"1:2.30-1ubuntu1", true},
		{"0.0.23.1-5+b1", true},
		{"", false},
		{"abc", false},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.EqualValues(t, tt.in, v.String())
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	assert.Equal(t, -1, MustParse("1.0").Compare(MustParse("1.1")))
	assert.Equal(t, 1, MustParse("1:0.1").Compare(MustParse("9.9")))
	assert.Equal(t, 0, MustParse("1.0-1").Compare(MustParse("1.0-1")))
	assert.Equal(t, -1, MustParse("1.0~rc1").Compare(MustParse("1.0")))
	assert.Equal(t, -1, Version{}.Compare(MustParse("0")))
	assert.True(t, Version{}.Equal(Version{}))
}

func TestVersion_UnmarshalJSON(t *testing.T) {
	var out struct {
		A Version `json:"a"`
		B Version `json:"b"`
		C Version `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "1.2.3", "b": "1.10", "c": null}`), &out))
	assert.EqualValues(t, "1.2.3", out.A.String())
	assert.EqualValues(t, "1.10", out.B.String())
	assert.True(t, out.C.IsZero())

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "1.2.3", "b": "1.10", "c": ""}`, string(data))

	t.Run("numbers are rejected", func(t *testing.T) {
		var v Version
		for _, in := range []string{`1.10`, `2`, `true`} {
			err := json.Unmarshal([]byte(in), &v)
			assert.ErrorIs(t, err, ErrUnquoted, in)
		}
	})
}
