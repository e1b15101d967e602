package pain001

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/pain001/internal/xmlutils"
)

var postalAccountPattern = regexp.MustCompile(`^(\d{2})-(\d{1,6})-(\d)$`)

// PostalAccount is a Swiss PostFinance account number such as 80-5928-4.
type PostalAccount struct {
	// nine digit canonical form: prefix, zero padded middle part, check digit
	number string
}

// NewPostalAccount validates and creates a postal account number from its
// dashed form.
func NewPostalAccount(account string) (PostalAccount, error) {
	matches := postalAccountPattern.FindStringSubmatch(account)
	if matches == nil {
		return PostalAccount{}, NewValidationError("postal account", "is not properly formatted")
	}
	number := matches[1] + zeroPad(matches[2], 6) + matches[3]
	if !ValidMod10(number) {
		return PostalAccount{}, NewValidationError("postal account", "has an invalid check digit")
	}
	return PostalAccount{number: number}, nil
}

// Format returns the dashed display form without padding zeros.
func (p PostalAccount) Format() string {
	middle := strings.TrimLeft(p.number[2:8], "0")
	if middle == "" {
		middle = "0"
	}
	return fmt.Sprintf("%s-%s-%s", p.number[:2], middle, p.number[8:])
}

// Normalize returns the nine digit machine form.
func (p PostalAccount) Normalize() string {
	return p.number
}

// AccountID returns the account identification block.
func (p PostalAccount) AccountID() *xmlutils.Element {
	other := xmlutils.NewElement("Othr").AppendText("Id", p.number)
	return xmlutils.NewElement("Id").Append(other)
}
