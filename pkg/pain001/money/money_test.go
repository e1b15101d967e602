package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		currency   string
		minorUnits int64
		formatted  string
	}{
		{"CHF", 130000, "1300.00"},
		{"CHF", -3500, "-35.00"},
		{"EUR", 70000, "700.00"},
		{"JPY", 800, "800"},
		{"KWD", 300001, "300.001"},
	}

	for _, tt := range tests {
		m, err := New(tt.currency, tt.minorUnits)
		require.NoError(t, err)
		assert.Equal(t, tt.currency, m.Currency())
		assert.Equal(t, tt.formatted, m.Format())
	}
}

func TestNewUnknownCurrency(t *testing.T) {
	_, err := New("XXX", 100)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	m, err := Parse("CHF", "1300.00")
	require.NoError(t, err)
	assert.True(t, m.Equal(CHF(130000)))

	m, err = Parse("KWD", "300.001")
	require.NoError(t, err)
	assert.True(t, m.Equal(KWD(300001)))

	m, err = Parse("CHF", "45")
	require.NoError(t, err)
	assert.Equal(t, "45.00", m.Format())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		currency string
		value    string
	}{
		{"XXX", "10.00"},
		{"CHF", "ten"},
		{"CHF", "10.001"}, // too many decimal places
		{"JPY", "10.5"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.currency, tt.value)
		assert.Error(t, err, tt.value)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, CHF(100).Equal(CHF(100)))
	assert.False(t, CHF(100).Equal(CHF(101)))
	assert.False(t, CHF(100).Equal(EUR(100)))
}

func TestSumPlus(t *testing.T) {
	var sum Sum
	sum = sum.Plus(CHF(130000))
	sum = sum.Plus(EUR(70000))
	assert.Equal(t, "2000.00", sum.Format())
}

func TestSumZeroValue(t *testing.T) {
	var sum Sum
	assert.Equal(t, "0", sum.Format())
	assert.Equal(t, "0.00", sum.Plus(CHF(0)).Format())
}

func TestSumMixedDecimals(t *testing.T) {
	// The aggregate keeps the largest number of minor unit digits seen
	var sum Sum
	sum = sum.Plus(CHF(130000))
	sum = sum.Plus(KWD(300001))
	assert.Equal(t, "1600.001", sum.Format())

	// Order must not matter
	var reversed Sum
	reversed = reversed.Plus(KWD(300001))
	reversed = reversed.Plus(CHF(130000))
	assert.Equal(t, sum.Format(), reversed.Format())
}

func TestSumMerge(t *testing.T) {
	var a Sum
	a = a.Plus(CHF(30000))
	var b Sum
	b = b.Plus(KWD(300001))

	merged := a.Merge(b)
	assert.Equal(t, "600.001", merged.Format())
}
