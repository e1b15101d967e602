// Package transaction contains the transaction kinds a payment batch can
// carry. Every kind validates its own fields at construction; whether a kind
// is allowed under the schema generation of the enclosing message is only
// known at render time and checked there.
package transaction

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// Context carries the message-level facts a transaction needs while
// rendering.
type Context struct {
	// Version is the schema generation of the enclosing message.
	Version pain001.Version

	// BatchPaymentTypeInfo is set when the payment batch already emitted a
	// <PmtTpInf> block, in which case transactions must not repeat the
	// service level.
	BatchPaymentTypeInfo bool
}

// Transaction is a single credit transfer instruction inside a payment batch.
type Transaction interface {
	// Amount returns the instructed amount.
	Amount() money.Money

	// AsElement renders the <CdtTrfTxInf> block. It fails with a
	// SchemaVersionError when the kind is not eligible under the context's
	// generation.
	AsElement(ctx Context) (*xmlutils.Element, error)
}

var purposePattern = regexp.MustCompile(`^[A-Z]{4}$`)

// PurposeCode classifies the purpose of a single transaction (external code
// set, e.g. AIRB or SALA).
type PurposeCode struct {
	code string
}

// NewPurposeCode validates and creates a purpose code.
func NewPurposeCode(code string) (PurposeCode, error) {
	if !purposePattern.MatchString(code) {
		return PurposeCode{}, pain001.NewValidationError("purpose code", "is not properly formatted")
	}
	return PurposeCode{code: code}, nil
}

// Format returns the four letter code.
func (p PurposeCode) Format() string {
	return p.code
}

// info holds the fields every transaction kind shares. Variants embed it and
// use the build helpers to keep the element order of the schema.
type info struct {
	instructionID string
	endToEndID    string
	amount        money.Money
	remittance    string
	purpose       *PurposeCode
}

func newInfo(instructionID, endToEndID string, amount money.Money) (info, error) {
	instructionID, err := pain001.AssertIdentifier(instructionID)
	if err != nil {
		return info{}, err
	}
	endToEndID, err = pain001.AssertIdentifier(endToEndID)
	if err != nil {
		return info{}, err
	}
	return info{
		instructionID: instructionID,
		endToEndID:    endToEndID,
		amount:        amount,
	}, nil
}

// Amount returns the instructed amount.
func (t *info) Amount() money.Money {
	return t.amount
}

// SetRemittanceInformation attaches unstructured remittance text. An empty
// result after sanitizing clears it.
func (t *info) SetRemittanceInformation(remittance string) {
	t.remittance, _ = pain001.SanitizeOptional(remittance, 140)
}

// SetPurpose attaches a purpose code.
func (t *info) SetPurpose(purpose PurposeCode) {
	t.purpose = &purpose
}

func (t *info) paymentID() *xmlutils.Element {
	return xmlutils.NewElement("PmtId").
		AppendText("InstrId", t.instructionID).
		AppendText("EndToEndId", t.endToEndID)
}

func (t *info) amountElement() *xmlutils.Element {
	instructed := xmlutils.TextElement("InstdAmt", t.amount.Format())
	instructed.SetAttr("Ccy", t.amount.Currency())
	return xmlutils.NewElement("Amt").Append(instructed)
}

// paymentTypeInfo builds the transaction level <PmtTpInf>. The service level
// is suppressed when the batch already carries one; a nil result means the
// block is omitted entirely.
func paymentTypeInfo(ctx Context, serviceLevel, localInstrument string) *xmlutils.Element {
	typeInfo := xmlutils.NewElement("PmtTpInf")
	if serviceLevel != "" && !ctx.BatchPaymentTypeInfo {
		typeInfo.Append(xmlutils.NewElement("SvcLvl").AppendText("Cd", serviceLevel))
	}
	if localInstrument != "" {
		typeInfo.Append(xmlutils.NewElement("LclInstrm").AppendText("Prtry", localInstrument))
	}
	if len(typeInfo.Children) == 0 {
		return nil
	}
	return typeInfo
}

func (t *info) purposeElement() *xmlutils.Element {
	if t.purpose == nil {
		return nil
	}
	return xmlutils.NewElement("Purp").AppendText("Cd", t.purpose.Format())
}

func (t *info) remittanceElement() *xmlutils.Element {
	if t.remittance == "" {
		return nil
	}
	return xmlutils.NewElement("RmtInf").AppendText("Ustrd", t.remittance)
}

// creditor builds the <Cdtr> block from a name and an optional address.
func creditor(name string, address pain001.PostalReference) *xmlutils.Element {
	cdtr := xmlutils.NewElement("Cdtr").AppendText("Nm", name)
	if address != nil {
		cdtr.Append(address.AsElement())
	}
	return cdtr
}

// creditorAccount wraps an account identification into <CdtrAcct>.
func creditorAccount(account pain001.AccountReference) *xmlutils.Element {
	return xmlutils.NewElement("CdtrAcct").Append(account.AccountID())
}

// creditorAgent wraps an institution identification into <CdtrAgt>.
func creditorAgent(ctx Context, institution pain001.FinancialInstitution) *xmlutils.Element {
	return xmlutils.NewElement("CdtrAgt").Append(institution.Identification(ctx.Version))
}
