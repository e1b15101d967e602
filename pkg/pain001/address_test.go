package pain001

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredPostalAddress(t *testing.T) {
	address, err := NewStructuredPostalAddress("Wiesenweg", "14b", "8058", "Zürich-Flughafen", "")
	require.NoError(t, err)

	element := address.AsElement()
	assert.Equal(t, "PstlAdr", element.Tag)
	assert.Equal(t, "Wiesenweg", element.Find("StrtNm").Text)
	assert.Equal(t, "14b", element.Find("BldgNb").Text)
	assert.Equal(t, "8058", element.Find("PstCd").Text)
	assert.Equal(t, "Zürich-Flughafen", element.Find("TwnNm").Text)
	assert.Equal(t, "CH", element.Find("Ctry").Text)
}

func TestNewStructuredPostalAddressOptionalParts(t *testing.T) {
	address, err := NewStructuredPostalAddress("", "", "3000", "Bern", "CH")
	require.NoError(t, err)

	element := address.AsElement()
	assert.Nil(t, element.Find("StrtNm"))
	assert.Nil(t, element.Find("BldgNb"))
	assert.Equal(t, "3000", element.Find("PstCd").Text)
}

func TestNewStructuredPostalAddressInvalid(t *testing.T) {
	_, err := NewStructuredPostalAddress("Altstadt", "1a", "", "Musterhausen", "CH")
	assert.Error(t, err)

	_, err = NewStructuredPostalAddress("Altstadt", "1a", "4998", "", "CH")
	assert.Error(t, err)

	_, err = NewStructuredPostalAddress("Altstadt", "1a", "4998", "Musterhausen", "Schweiz")
	assert.Error(t, err)
}

func TestNewUnstructuredPostalAddress(t *testing.T) {
	address, err := NewUnstructuredPostalAddress("DE", "Musterstraße 35", "80333 München")
	require.NoError(t, err)

	element := address.AsElement()
	require.Len(t, element.Children, 3)
	// country first, then the lines in order
	assert.Equal(t, "Ctry", element.Children[0].Tag)
	assert.Equal(t, "DE", element.Children[0].Text)
	assert.Equal(t, "AdrLine", element.Children[1].Tag)
	assert.Equal(t, "Musterstraße 35", element.Children[1].Text)
	assert.Equal(t, "80333 München", element.Children[2].Text)
}

func TestNewUnstructuredPostalAddressDefaultsToSwitzerland(t *testing.T) {
	address, err := NewUnstructuredPostalAddress("")
	require.NoError(t, err)
	assert.Equal(t, "CH", address.AsElement().Find("Ctry").Text)
}

func TestNewUnstructuredPostalAddressTooManyLines(t *testing.T) {
	_, err := NewUnstructuredPostalAddress("CH", "line 1", "line 2", "line 3")
	assert.Error(t, err)
}

func TestNewGeneralAccount(t *testing.T) {
	account, err := NewGeneralAccount("123-4567890-78")
	require.NoError(t, err)
	assert.Equal(t, "123-4567890-78", account.Format())
	assert.Equal(t, "123-4567890-78", account.AccountID().Find("Othr", "Id").Text)

	for _, input := range []string{"", "too_long_underscore", "ä"} {
		_, err := NewGeneralAccount(input)
		assert.Error(t, err, input)
	}
}

func TestNewFinancialInstitutionAddress(t *testing.T) {
	address, err := NewUnstructuredPostalAddress("BE", "Pachecolaan 44", "1000 Brussel")
	require.NoError(t, err)
	institution, err := NewFinancialInstitutionAddress("Belfius Bank", address)
	require.NoError(t, err)
	assert.Equal(t, "Belfius Bank", institution.Name())

	id := institution.Identification(SPS2022)
	assert.Equal(t, "FinInstnId", id.Tag)
	assert.Equal(t, "Belfius Bank", id.Find("Nm").Text)
	require.NotNil(t, id.Find("PstlAdr"))

	_, err = NewFinancialInstitutionAddress("", address)
	assert.Error(t, err)
}
