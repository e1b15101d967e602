// Package pain001 contains the validated building blocks of a Swiss
// "Customer Credit Transfer Initiation" (pain.001) message: character set
// rules, identifiers, postal addresses and financial institution references.
package pain001

// Version selects the generation of the Swiss Payment Standards a message is
// rendered against. The two generations differ in namespace, in a few element
// names and in which transaction kinds are still allowed.
type Version string

const (
	// SPS2021 is the implementation guide generation supported until
	// November 2024.
	SPS2021 Version = "SPS-2021"

	// SPS2022 is the ISO version 09 based generation.
	SPS2022 Version = "SPS-2022"
)

// Valid reports whether v is a known schema generation.
func (v Version) Valid() bool {
	return v == SPS2021 || v == SPS2022
}

// SchemaName returns the XML namespace URI of the generation.
func (v Version) SchemaName() string {
	if v == SPS2021 {
		return "http://www.six-interbank-clearing.com/de/pain.001.001.03.ch.02.xsd"
	}
	return "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"
}

// SchemaLocation returns the schema file name used in xsi:schemaLocation and
// for external validation.
func (v Version) SchemaLocation() string {
	if v == SPS2021 {
		return "pain.001.001.03.ch.02.xsd"
	}
	return "pain.001.001.09.ch.03.xsd"
}
