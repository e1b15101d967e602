package transaction

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

var isrReferencePattern = regexp.MustCompile(`^\d{1,27}$`)

// ISRCreditTransfer pays an ISR payment slip: the creditor side consists of
// an ISR participant number and a reference number instead of a named
// account (local instrument CH03). The type was retired after SPS 2021.
type ISRCreditTransfer struct {
	info
	participant     pain001.ISRParticipant
	reference       string
	creditorName    string
	creditorAddress pain001.PostalReference
}

// NewISRCreditTransfer validates the reference number and creates the
// transaction.
func NewISRCreditTransfer(instructionID, endToEndID string, amount money.Money, participant pain001.ISRParticipant, reference string) (*ISRCreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	if !isrReferencePattern.MatchString(reference) || !pain001.ValidMod10(reference) {
		return nil, pain001.NewValidationError("ISR reference number", "is not valid")
	}
	return &ISRCreditTransfer{
		info:        base,
		participant: participant,
		reference:   reference,
	}, nil
}

// SetCreditorDetails attaches the optional creditor name and address.
func (t *ISRCreditTransfer) SetCreditorDetails(name string, address pain001.PostalReference) error {
	name, err := pain001.Assert(name, 70)
	if err != nil {
		return err
	}
	t.creditorName = name
	t.creditorAddress = address
	return nil
}

// AsElement renders the transaction block.
func (t *ISRCreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	if ctx.Version != pain001.SPS2021 {
		return nil, &pain001.SchemaVersionError{Reason: "ISR payments can only be created until SPS 2021 version"}
	}
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(paymentTypeInfo(ctx, "", "CH03"))
	tx.Append(t.amountElement())
	if t.creditorName != "" {
		tx.Append(creditor(t.creditorName, t.creditorAddress))
	}
	tx.Append(creditorAccount(t.participant))
	reference := xmlutils.NewElement("CdtrRefInf").AppendText("Ref", t.reference)
	tx.Append(xmlutils.NewElement("RmtInf").Append(xmlutils.NewElement("Strd").Append(reference)))
	return tx, nil
}
