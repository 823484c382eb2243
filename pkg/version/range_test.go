package version

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	var cases = []struct {
		in  string
		out string
		ok  bool
	}{
		{">= 1.0", ">= 1.0", true},
		{"= 2.0", "= 2.0", true},
		{"< 3.0", "< 3.0", true},
		{"0.5", "= 0.5", true},
		{">>1.0", "> 1.0", true},
		{"<< 2:1.0-1", "< 2:1.0-1", true},
		{"", "*", true},
		{"*", "*", true},
		{">=", "", false},
		{">= nope", "", false},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRange(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tt.out, r.String())

			// canonical form must parse back to the same value
			again, err := ParseRange(r.String())
			require.NoError(t, err)
			assert.Equal(t, r.String(), again.String())
			assert.Equal(t, r.Op == OpAny || r.Op == "", again.IsAny())
		})
	}
}

func TestRange_Contains(t *testing.T) {
	var cases = []struct {
		r  string
		v  string
		ok bool
	}{
		{">= 1.0", "1.0", true},
		{">= 1.0", "0.9", false},
		{"> 1.0", "1.0", false},
		{"< 3.0", "2.9", true},
		{"<= 3.0", "3.0", true},
		{"= 2.0", "2.0", true},
		{"= 2.0", "2.0-1", false},
		{"*", "9", true},
		{"*", "", true},
		{">= 1.0", "", false},
	}

	for _, tt := range cases {
		t.Run(tt.r+" "+tt.v, func(t *testing.T) {
			var v Version
			if tt.v != "" {
				v = MustParse(tt.v)
			}
			assert.EqualValues(t, tt.ok, MustParseRange(tt.r).Contains(v))
		})
	}

	assert.True(t, Range{}.Contains(MustParse("1")))
}

func TestRange_UnmarshalJSON(t *testing.T) {
	var out []Range
	require.NoError(t, json.Unmarshal([]byte(`[">= 1.0", "0.5", "*"]`), &out))
	require.Len(t, out, 3)
	assert.Equal(t, OpGreaterEqual, out[0].Op)
	assert.Equal(t, OpEqual, out[1].Op)
	assert.True(t, out[2].IsAny())

	t.Run("numbers are rejected", func(t *testing.T) {
		var r Range
		assert.ErrorIs(t, json.Unmarshal([]byte(`0.5`), &r), ErrUnquoted)
	})
}
