package pain001

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
)

var bicPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z2-9][A-NP-Z0-9]([A-Z0-9]{3})?$`)

// BIC is a validated Business Identifier Code (ISO 9362).
type BIC struct {
	bic string
}

// NewBIC validates and creates a BIC from its 8 or 11 character form.
func NewBIC(bic string) (BIC, error) {
	if !bicPattern.MatchString(bic) {
		return BIC{}, NewValidationError("BIC", "is not properly formatted")
	}
	return BIC{bic: bic}, nil
}

// Format returns the canonical representation of the BIC.
func (b BIC) Format() string {
	return b.bic
}

// Identification returns the financial institution identification block. The
// element name of the code changed from BIC to BICFI with the 2022
// generation.
func (b BIC) Identification(v Version) *xmlutils.Element {
	tag := "BICFI"
	if v == SPS2021 {
		tag = "BIC"
	}
	return xmlutils.NewElement("FinInstnId").AppendText(tag, b.bic)
}
