package pain001

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalAccount(t *testing.T) {
	tests := []struct {
		input      string
		normalized string
		formatted  string
	}{
		{"80-5928-4", "800059284", "80-5928-4"},
		{"80-151-4", "800001514", "80-151-4"},
		{"60-9-9", "600000099", "60-9-9"},
	}

	for _, tt := range tests {
		account, err := NewPostalAccount(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.normalized, account.Normalize())
		assert.Equal(t, tt.formatted, account.Format())
	}
}

func TestNewPostalAccountInvalid(t *testing.T) {
	invalid := []string{
		"",
		"805928-4",
		"80-5928",
		"80-5928-5", // wrong check digit
		"8-5928-4",
		"80-59284567-4",
	}
	for _, input := range invalid {
		_, err := NewPostalAccount(input)
		assert.Error(t, err, input)
	}
}

func TestPostalAccountID(t *testing.T) {
	account, err := NewPostalAccount("80-5928-4")
	require.NoError(t, err)
	id := account.AccountID()
	require.NotNil(t, id.Find("Othr", "Id"))
	assert.Equal(t, "800059284", id.Find("Othr", "Id").Text)
}
