package transaction

import (
	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// SEPACreditTransfer is a transfer within the Single Euro Payments Area. The
// creditor bank is identified by BIC and the service level is SEPA, emitted
// per transaction unless the batch already declares it.
type SEPACreditTransfer struct {
	info
	creditorName    string
	creditorAddress pain001.PostalReference
	creditorIBAN    pain001.IBAN
	creditorAgent   pain001.BIC
}

// NewSEPACreditTransfer validates the creditor details and creates the
// transaction. The creditor address may be nil.
func NewSEPACreditTransfer(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, creditorIBAN pain001.IBAN, agent pain001.BIC) (*SEPACreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	creditorName, err = pain001.Assert(creditorName, 70)
	if err != nil {
		return nil, err
	}
	return &SEPACreditTransfer{
		info:            base,
		creditorName:    creditorName,
		creditorAddress: creditorAddress,
		creditorIBAN:    creditorIBAN,
		creditorAgent:   agent,
	}, nil
}

// AsElement renders the transaction block.
func (t *SEPACreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(paymentTypeInfo(ctx, "SEPA", ""))
	tx.Append(t.amountElement())
	tx.Append(creditorAgent(ctx, t.creditorAgent))
	tx.Append(creditor(t.creditorName, t.creditorAddress))
	tx.Append(creditorAccount(t.creditorIBAN))
	tx.Append(t.purposeElement())
	tx.Append(t.remittanceElement())
	return tx, nil
}
