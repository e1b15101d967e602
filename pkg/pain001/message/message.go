// Package message assembles complete pain.001 documents. The message walks
// its payment batches once to compute the header totals, then renders every
// batch in insertion order, injecting the chosen schema generation so each
// level can pick its element names and check its version eligibility.
package message

import (
	"strconv"
	"time"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// Payment is a payment batch the message can carry. Satisfied by
// payment.PaymentInformation and its specializations.
type Payment interface {
	TransactionCount() int
	TransactionSum() money.Sum
	AsElement(v pain001.Version) (*xmlutils.Element, error)
}

// CustomerCreditTransfer is a Customer Credit Transfer Initiation (pain.001)
// message.
type CustomerCreditTransfer struct {
	id               string
	initiatingParty  string
	version          pain001.Version
	creationTime     time.Time
	creationTimeSet  bool
	softwareName     string
	softwareVersion  string
	manufacturerName string
	payments         []Payment
}

// NewCustomerCreditTransfer validates the header fields and creates an empty
// message. The message identification should stay unique over at least 90
// days. The creation time defaults to now.
func NewCustomerCreditTransfer(id, initiatingParty string, version pain001.Version) (*CustomerCreditTransfer, error) {
	id, err := pain001.AssertIdentifier(id)
	if err != nil {
		return nil, err
	}
	initiatingParty, err = pain001.Assert(initiatingParty, 70)
	if err != nil {
		return nil, err
	}
	if !version.Valid() {
		return nil, pain001.NewValidationError("schema version", "%q is not a known generation", string(version))
	}
	return &CustomerCreditTransfer{
		id:              id,
		initiatingParty: initiatingParty,
		version:         version,
		creationTime:    time.Now(),
	}, nil
}

// SetSoftwareInfo declares the software that produced the message. The
// manufacturer is only rendered under the 2022 generation.
func (m *CustomerCreditTransfer) SetSoftwareInfo(name, version, manufacturer string) {
	m.softwareName, _ = pain001.SanitizeOptional(name, 35)
	m.softwareVersion, _ = pain001.SanitizeOptional(version, 35)
	m.manufacturerName, _ = pain001.SanitizeOptional(manufacturer, 35)
}

// SetCreationTime overrides the creation timestamp. It may be called at most
// once.
func (m *CustomerCreditTransfer) SetCreationTime(creationTime time.Time) error {
	if m.creationTimeSet {
		return pain001.NewValidationError("creation time", "has already been overridden")
	}
	m.creationTime = creationTime
	m.creationTimeSet = true
	return nil
}

// AddPayment appends a payment batch.
func (m *CustomerCreditTransfer) AddPayment(p Payment) {
	m.payments = append(m.payments, p)
}

// PaymentCount returns the number of payment batches.
func (m *CustomerCreditTransfer) PaymentCount() int {
	return len(m.payments)
}

// Version returns the schema generation the message renders against.
func (m *CustomerCreditTransfer) Version() pain001.Version {
	return m.version
}

// SchemaName returns the namespace URI of the message's generation.
func (m *CustomerCreditTransfer) SchemaName() string {
	return m.version.SchemaName()
}

// SchemaLocation returns the schema file name for external validation.
func (m *CustomerCreditTransfer) SchemaLocation() string {
	return m.version.SchemaLocation()
}

// Build renders the complete document. The first schema version or business
// rule violation aborts the build; no partial document is returned.
func (m *CustomerCreditTransfer) Build() (*xmlutils.Document, error) {
	transactionCount := 0
	var transactionSum money.Sum
	for _, p := range m.payments {
		transactionCount += p.TransactionCount()
		transactionSum = transactionSum.Merge(p.TransactionSum())
	}

	initiatingParty := xmlutils.NewElement("InitgPty").AppendText("Nm", m.initiatingParty)
	initiatingParty.Append(m.contactDetails())

	header := xmlutils.NewElement("GrpHdr")
	header.AppendText("MsgId", m.id)
	header.AppendText("CreDtTm", m.creationTime.Format("2006-01-02T15:04:05-07:00"))
	header.AppendText("NbOfTxs", strconv.Itoa(transactionCount))
	header.AppendText("CtrlSum", transactionSum.Format())
	header.Append(initiatingParty)

	initiation := xmlutils.NewElement("CstmrCdtTrfInitn").Append(header)
	for _, p := range m.payments {
		element, err := p.AsElement(m.version)
		if err != nil {
			return nil, err
		}
		initiation.Append(element)
	}

	schema := m.SchemaName()
	root := xmlutils.NewElement("Document")
	root.SetAttr("xmlns", schema)
	root.SetAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")
	root.SetAttr("xsi:schemaLocation", schema+" "+m.SchemaLocation())
	root.Append(initiation)
	return xmlutils.NewDocument(root), nil
}

// AsXML renders the document and returns it as a string.
func (m *CustomerCreditTransfer) AsXML() (string, error) {
	doc, err := m.Build()
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// contactDetails builds the block describing the producing software. The
// sub-structure differs between the generations: the 2021 schema carries two
// free-text fields, the 2022 schema channel-typed entries including the fixed
// implementation guide version marker.
func (m *CustomerCreditTransfer) contactDetails() *xmlutils.Element {
	// Without a software name the whole block is omitted.
	if m.softwareName == "" {
		return nil
	}
	details := xmlutils.NewElement("CtctDtls")
	if m.version == pain001.SPS2021 {
		details.AppendText("Nm", m.softwareName)
		if m.softwareVersion != "" {
			details.AppendText("Othr", m.softwareVersion)
		}
		return details
	}
	details.Append(channelEntry("NAME", m.softwareName))
	if m.softwareVersion != "" {
		details.Append(channelEntry("VRSN", m.softwareVersion))
	}
	if m.manufacturerName != "" {
		details.Append(channelEntry("PRVD", m.manufacturerName))
	}
	details.Append(channelEntry("SPSV", "0200"))
	return details
}

func channelEntry(channel, id string) *xmlutils.Element {
	return xmlutils.NewElement("Othr").
		AppendText("ChanlTp", channel).
		AppendText("Id", id)
}
