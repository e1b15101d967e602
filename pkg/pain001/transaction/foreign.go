package transaction

import (
	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// ForeignCreditTransfer is a transfer to a creditor outside Switzerland and
// SEPA. The creditor account may be an IBAN or a national account number and
// the creditor bank may be identified by BIC or by name and address. An
// intermediary bank can be routed through when the creditor bank requires it.
type ForeignCreditTransfer struct {
	info
	creditorName      string
	creditorAddress   pain001.PostalReference
	creditorAccount   pain001.AccountReference
	creditorAgent     pain001.FinancialInstitution
	intermediaryAgent pain001.FinancialInstitution
}

// NewForeignCreditTransfer validates the creditor details and creates the
// transaction.
func NewForeignCreditTransfer(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, account pain001.AccountReference, agent pain001.FinancialInstitution) (*ForeignCreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	creditorName, err = pain001.Assert(creditorName, 70)
	if err != nil {
		return nil, err
	}
	return &ForeignCreditTransfer{
		info:            base,
		creditorName:    creditorName,
		creditorAddress: creditorAddress,
		creditorAccount: account,
		creditorAgent:   agent,
	}, nil
}

// SetIntermediaryAgent routes the transfer through an intermediary bank.
func (t *ForeignCreditTransfer) SetIntermediaryAgent(agent pain001.FinancialInstitution) {
	t.intermediaryAgent = agent
}

// AsElement renders the transaction block.
func (t *ForeignCreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(t.amountElement())
	if t.intermediaryAgent != nil {
		tx.Append(xmlutils.NewElement("IntrmyAgt1").Append(t.intermediaryAgent.Identification(ctx.Version)))
	}
	tx.Append(creditorAgent(ctx, t.creditorAgent))
	tx.Append(creditor(t.creditorName, t.creditorAddress))
	tx.Append(creditorAccount(t.creditorAccount))
	tx.Append(t.purposeElement())
	tx.Append(t.remittanceElement())
	return tx, nil
}
