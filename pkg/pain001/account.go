package pain001

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
)

// AccountReference identifies a creditor or debtor account. Implemented by
// IBAN, PostalAccount, ISRParticipant and GeneralAccount.
type AccountReference interface {
	// AccountID returns the <Id> block of a cash account.
	AccountID() *xmlutils.Element
}

var generalAccountPattern = regexp.MustCompile(`^[A-Za-z0-9 .,:'/()?+\-]{1,34}$`)

// GeneralAccount is an account identification in a national format, used for
// foreign transfers to countries without IBAN.
type GeneralAccount struct {
	account string
}

// NewGeneralAccount validates and creates a general account identification.
func NewGeneralAccount(account string) (GeneralAccount, error) {
	if !generalAccountPattern.MatchString(account) {
		return GeneralAccount{}, NewValidationError("account number", "is not properly formatted")
	}
	return GeneralAccount{account: account}, nil
}

// Format returns the account identification as supplied.
func (g GeneralAccount) Format() string {
	return g.account
}

// AccountID returns the account identification block.
func (g GeneralAccount) AccountID() *xmlutils.Element {
	other := xmlutils.NewElement("Othr").AppendText("Id", g.account)
	return xmlutils.NewElement("Id").Append(other)
}
