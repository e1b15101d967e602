package pain001

import (
	"regexp"
	"strings"

	"fjacquet/pain001/internal/xmlutils"
)

var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)

// IBAN is a validated International Bank Account Number. The canonical form
// is stored compact and upper case.
type IBAN struct {
	iban string
}

// NewIBAN validates and creates an IBAN. Spaces in the input are ignored.
func NewIBAN(iban string) (IBAN, error) {
	compact := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if !ibanPattern.MatchString(compact) {
		return IBAN{}, NewValidationError("IBAN", "is not properly formatted")
	}
	if Mod97(compact[4:]+compact[:4]) != 1 {
		return IBAN{}, NewValidationError("IBAN", "has an invalid checksum")
	}
	return IBAN{iban: compact}, nil
}

// Normalize returns the compact machine representation.
func (i IBAN) Normalize() string {
	return i.iban
}

// Format returns the human readable representation in groups of four.
func (i IBAN) Format() string {
	var groups []string
	for start := 0; start < len(i.iban); start += 4 {
		end := start + 4
		if end > len(i.iban) {
			end = len(i.iban)
		}
		groups = append(groups, i.iban[start:end])
	}
	return strings.Join(groups, " ")
}

// Country returns the two-letter country code of the IBAN.
func (i IBAN) Country() string {
	return i.iban[:2]
}

// AccountID returns the account identification block.
func (i IBAN) AccountID() *xmlutils.Element {
	return xmlutils.NewElement("Id").AppendText("IBAN", i.iban)
}
