package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLabel(t *testing.T) {
	for _, ok := range []string{"A", "z", "7", "é", "#"} {
		assert.NoError(t, ValidateLabel(ok), ok)
	}
	for _, bad := range []string{"", " ", "\t", "AB", "A "} {
		assert.ErrorIs(t, ValidateLabel(bad), ErrInvalidLabel, "%q", bad)
	}
}

func TestParseWeight(t *testing.T) {
	cases := map[string]int64{"0": 0, "7": 7, "+12": 12, "-3": -3, " 5 ": 5}
	for in, want := range cases {
		got, err := ParseWeight(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "x", "1.5", "--1", "1e3", "99999999999999999999"} {
		_, err := ParseWeight(bad)
		assert.ErrorIs(t, err, ErrInvalidWeight, bad)
	}
}
