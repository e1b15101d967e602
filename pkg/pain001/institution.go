package pain001

import "fjacquet/pain001/internal/xmlutils"

// FinancialInstitution identifies a bank, either by code (BIC, IID) or by
// name and address. The identification block's element names depend on the
// schema generation, so rendering takes the resolved version.
type FinancialInstitution interface {
	// Identification returns the <FinInstnId> block.
	Identification(v Version) *xmlutils.Element
}

// FinancialInstitutionAddress identifies a bank by name and postal address,
// used where neither a BIC nor a clearing number is known.
type FinancialInstitutionAddress struct {
	name    string
	address PostalReference
}

// NewFinancialInstitutionAddress validates the name and creates the
// identification.
func NewFinancialInstitutionAddress(name string, address PostalReference) (FinancialInstitutionAddress, error) {
	name, err := Assert(name, 70)
	if err != nil {
		return FinancialInstitutionAddress{}, err
	}
	return FinancialInstitutionAddress{name: name, address: address}, nil
}

// Name returns the institution name.
func (f FinancialInstitutionAddress) Name() string {
	return f.name
}

// Identification returns the financial institution identification block.
func (f FinancialInstitutionAddress) Identification(v Version) *xmlutils.Element {
	id := xmlutils.NewElement("FinInstnId")
	id.AppendText("Nm", f.name)
	if f.address != nil {
		id.Append(f.address.AsElement())
	}
	return id
}
