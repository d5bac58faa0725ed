package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	p, err := Parse("100.00000")
	require.NoError(t, err)
	assert.Equal(t, "100.00000", p.String())
}

func TestParse_SmallestPositive(t *testing.T) {
	p, err := Parse("0.00001")
	require.NoError(t, err)
	assert.Equal(t, "0.00001", p.String())
	assert.True(t, p > 0)
}

func TestParse_SevenIntegerDigits(t *testing.T) {
	p, err := Parse("9999999.99999")
	require.NoError(t, err)
	assert.Equal(t, "9999999.99999", p.String())
}

func TestParse_EightIntegerDigitsRejected(t *testing.T) {
	_, err := Parse("19999999.00000")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParse_WrongFractionalDigitsRejected(t *testing.T) {
	for _, s := range []string{"100.0", "100.000000", "100", "100."} {
		_, err := Parse(s)
		assert.ErrorIsf(t, err, ErrFormat, "input %q", s)
	}
}

func TestParse_ZeroRejected(t *testing.T) {
	_, err := Parse("0.00000")
	assert.ErrorIs(t, err, ErrNotPositive)
}

func TestParse_NegativeRejected(t *testing.T) {
	_, err := Parse("-1.00000")
	assert.ErrorIs(t, err, ErrNotPositive)
}

func TestParse_NonNumericRejected(t *testing.T) {
	_, err := Parse("abc.12345")
	assert.Error(t, err)
}

func TestIdenticalStringsCompareEqual(t *testing.T) {
	a, err := Parse("100.00000")
	require.NoError(t, err)
	b, err := Parse("100.00000")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOrdering(t *testing.T) {
	low, err := Parse("99.00000")
	require.NoError(t, err)
	high, err := Parse("100.00000")
	require.NoError(t, err)
	assert.True(t, low < high)
}
