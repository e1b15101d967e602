package pain001

import (
	"regexp"
	"strings"

	"fjacquet/pain001/internal/xmlutils"
)

var iidPattern = regexp.MustCompile(`^[0-9]{3,5}$`)

// IID is an institution identification, the Swiss bank clearing number
// (Bankenclearing-Nummer).
type IID struct {
	iid string
}

// NewIID validates and creates an IID.
func NewIID(iid string) (IID, error) {
	if !iidPattern.MatchString(iid) {
		return IID{}, NewValidationError("IID", "must consist of three to five digits")
	}
	return IID{iid: iid}, nil
}

// IIDFromIBAN derives the institution identification from the bank code
// segment of a Swiss or Liechtenstein IBAN.
func IIDFromIBAN(iban IBAN) (IID, error) {
	if iban.Country() != "CH" && iban.Country() != "LI" {
		return IID{}, NewValidationError("IID", "can only be derived from Swiss or Liechtenstein IBANs")
	}
	iid := strings.TrimLeft(iban.Normalize()[4:9], "0")
	return NewIID(iid)
}

// Format returns the canonical representation of the IID.
func (i IID) Format() string {
	return i.iid
}

// Identification returns the financial institution identification block using
// the Swiss clearing system member scheme.
func (i IID) Identification(v Version) *xmlutils.Element {
	member := xmlutils.NewElement("ClrSysMmbId").
		Append(xmlutils.NewElement("ClrSysId").AppendText("Cd", "CHBCC")).
		AppendText("MmbId", i.iid)
	return xmlutils.NewElement("FinInstnId").Append(member)
}
