package pain001

import "fjacquet/pain001/internal/xmlutils"

// PostalReference is a postal address in one of the forms the standard
// accepts. Each implementation renders its own <PstlAdr> block.
type PostalReference interface {
	AsElement() *xmlutils.Element
}

// StructuredPostalAddress is an address with separate street, building
// number, postcode and town fields.
type StructuredPostalAddress struct {
	street     string
	buildingNo string
	postCode   string
	town       string
	country    string
}

// NewStructuredPostalAddress sanitizes the inputs and creates a structured
// address. Street and building number may be empty. The country defaults to
// Switzerland when empty.
func NewStructuredPostalAddress(street, buildingNo, postCode, town, country string) (StructuredPostalAddress, error) {
	if country == "" {
		country = "CH"
	}
	country, err := AssertCountryCode(country)
	if err != nil {
		return StructuredPostalAddress{}, err
	}
	postCode, err = Assert(Sanitize(postCode, 16), 16)
	if err != nil {
		return StructuredPostalAddress{}, NewValidationError("postcode", "must not be empty")
	}
	town, err = Assert(Sanitize(town, 35), 35)
	if err != nil {
		return StructuredPostalAddress{}, NewValidationError("town", "must not be empty")
	}
	return StructuredPostalAddress{
		street:     Sanitize(street, 70),
		buildingNo: Sanitize(buildingNo, 16),
		postCode:   postCode,
		town:       town,
		country:    country,
	}, nil
}

// AsElement renders the address block.
func (a StructuredPostalAddress) AsElement() *xmlutils.Element {
	address := xmlutils.NewElement("PstlAdr")
	if a.street != "" {
		address.AppendText("StrtNm", a.street)
	}
	if a.buildingNo != "" {
		address.AppendText("BldgNb", a.buildingNo)
	}
	address.AppendText("PstCd", a.postCode)
	address.AppendText("TwnNm", a.town)
	address.AppendText("Ctry", a.country)
	return address
}

// UnstructuredPostalAddress is an address of up to two free-form lines plus a
// country code.
type UnstructuredPostalAddress struct {
	lines   []string
	country string
}

// NewUnstructuredPostalAddress sanitizes the lines and creates an address.
// The country defaults to Switzerland when empty.
func NewUnstructuredPostalAddress(country string, lines ...string) (UnstructuredPostalAddress, error) {
	if country == "" {
		country = "CH"
	}
	country, err := AssertCountryCode(country)
	if err != nil {
		return UnstructuredPostalAddress{}, err
	}
	var kept []string
	for _, line := range lines {
		if sanitized, ok := SanitizeOptional(line, 70); ok {
			kept = append(kept, sanitized)
		}
	}
	if len(kept) > 2 {
		return UnstructuredPostalAddress{}, NewValidationError("address", "must not have more than two lines")
	}
	return UnstructuredPostalAddress{lines: kept, country: country}, nil
}

// AsElement renders the address block.
func (a UnstructuredPostalAddress) AsElement() *xmlutils.Element {
	address := xmlutils.NewElement("PstlAdr")
	address.AppendText("Ctry", a.country)
	for _, line := range a.lines {
		address.AppendText("AdrLine", line)
	}
	return address
}
