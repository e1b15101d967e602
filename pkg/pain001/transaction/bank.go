package transaction

import (
	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// BankCreditTransfer is a domestic transfer to an IBAN held at a bank
// identified by BIC or clearing number. It is allowed under both schema
// generations.
type BankCreditTransfer struct {
	info
	creditorName    string
	creditorAddress pain001.PostalReference
	creditorIBAN    pain001.IBAN
	creditorAgent   pain001.FinancialInstitution
}

// NewBankCreditTransfer validates the creditor details and creates the
// transaction. The creditor address may be nil.
func NewBankCreditTransfer(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, creditorIBAN pain001.IBAN, agent pain001.FinancialInstitution) (*BankCreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	creditorName, err = pain001.Assert(creditorName, 70)
	if err != nil {
		return nil, err
	}
	return &BankCreditTransfer{
		info:            base,
		creditorName:    creditorName,
		creditorAddress: creditorAddress,
		creditorIBAN:    creditorIBAN,
		creditorAgent:   agent,
	}, nil
}

// AsElement renders the transaction block.
func (t *BankCreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(t.amountElement())
	tx.Append(creditorAgent(ctx, t.creditorAgent))
	tx.Append(creditor(t.creditorName, t.creditorAddress))
	tx.Append(creditorAccount(t.creditorIBAN))
	tx.Append(t.purposeElement())
	tx.Append(t.remittanceElement())
	return tx, nil
}
