package payment

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
)

var categoryPurposePattern = regexp.MustCompile(`^[A-Z]{4}$`)

// CategoryPurposeCode classifies the purpose of a whole payment batch, e.g.
// SALA for salary payments.
type CategoryPurposeCode struct {
	code string
}

// NewCategoryPurposeCode validates and creates a category purpose code.
func NewCategoryPurposeCode(code string) (CategoryPurposeCode, error) {
	if !categoryPurposePattern.MatchString(code) {
		return CategoryPurposeCode{}, pain001.NewValidationError("category purpose code", "is not properly formatted")
	}
	return CategoryPurposeCode{code: code}, nil
}

// Format returns the four letter code.
func (c CategoryPurposeCode) Format() string {
	return c.code
}

// AsElement renders the category purpose block.
func (c CategoryPurposeCode) AsElement() *xmlutils.Element {
	return xmlutils.NewElement("CtgyPurp").AppendText("Cd", c.code)
}
