package pain001

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBIC(t *testing.T) {
	valid := []string{
		"ZKBKCHZZ80A",
		"POFICHBEXXX",
		"UBSWCHZH80A",
		"NWBKGB2L",
		"COBADEFFXXX",
	}
	for _, input := range valid {
		bic, err := NewBIC(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, bic.Format())
	}

	invalid := []string{
		"",
		"AABB",
		"HANDNL2AXX",   // branch code of wrong length
		"HANDNL2AXXXX", // too long
		"HAND5L2A",     // digit within the institution code
		"handnl2a",     // lower case
		"POFI CHBEXXX", // space
		"ZKBKCHZO80A",  // letter O in the second location character
	}
	for _, input := range invalid {
		_, err := NewBIC(input)
		assert.Error(t, err, input)
	}
}

func TestBICIdentification(t *testing.T) {
	bic, err := NewBIC("POFICHBEXXX")
	require.NoError(t, err)

	element := bic.Identification(SPS2021)
	require.NotNil(t, element.Find("BIC"))
	assert.Equal(t, "POFICHBEXXX", element.Find("BIC").Text)
	assert.Nil(t, element.Find("BICFI"))

	element = bic.Identification(SPS2022)
	require.NotNil(t, element.Find("BICFI"))
	assert.Equal(t, "POFICHBEXXX", element.Find("BICFI").Text)
	assert.Nil(t, element.Find("BIC"))
}
