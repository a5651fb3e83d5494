package measure

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{1, "1"},
		{-1, "-1"},
		{0, "0"},
		{2.5, "2.5"},
		{101.01, "101.01"},
		{0.3048, "0.3048"},
		{59.999999998752, "59.999999998752"},
		{88.51392000000001, "88.51392000000001"},
		{0.000001, "0.000001"},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatValue(test.value))
			// shortest representation must round-trip
			parsed, err := strconv.ParseFloat(FormatValue(test.value), 64)
			require.NoError(t, err)
			assert.Equal(t, test.value, parsed)
		})
	}
}

func TestFormatValueNonFinite(t *testing.T) {
	assert.Equal(t, "NaN", FormatValue(math.NaN()))
	assert.Equal(t, "+Inf", FormatValue(math.Inf(1)))
	assert.Equal(t, "-Inf", FormatValue(math.Inf(-1)))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1 ft", Format(1, "ft"))
	assert.Equal(t, "55 mi/h", Format(55, "mi/h"))
	assert.Equal(t, "60 ㎐", Format(60, "㎐"))
	assert.Equal(t, "18.5 in²", Format(18.5, "in²"))
}
