package transaction

import (
	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

// errISTwoStage is the fixed message for the retired IS payment types.
const errISTwoStage = "IS 2-stage payments can only be created until SPS 2021 version"

// IS1CreditTransfer is a two-stage payment slip transfer to a postal account
// (local instrument CH01). The type was retired after SPS 2021.
type IS1CreditTransfer struct {
	info
	creditorName    string
	creditorAddress pain001.PostalReference
	creditorAccount pain001.PostalAccount
}

// NewIS1CreditTransfer validates the creditor details and creates the
// transaction.
func NewIS1CreditTransfer(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, account pain001.PostalAccount) (*IS1CreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	creditorName, err = pain001.Assert(creditorName, 70)
	if err != nil {
		return nil, err
	}
	return &IS1CreditTransfer{
		info:            base,
		creditorName:    creditorName,
		creditorAddress: creditorAddress,
		creditorAccount: account,
	}, nil
}

// AsElement renders the transaction block.
func (t *IS1CreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	if ctx.Version != pain001.SPS2021 {
		return nil, &pain001.SchemaVersionError{Reason: errISTwoStage}
	}
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(paymentTypeInfo(ctx, "", "CH01"))
	tx.Append(t.amountElement())
	tx.Append(creditor(t.creditorName, t.creditorAddress))
	tx.Append(creditorAccount(t.creditorAccount))
	tx.Append(t.purposeElement())
	tx.Append(t.remittanceElement())
	return tx, nil
}

// IS2CreditTransfer is a two-stage payment slip transfer to a bank account,
// where the creditor bank is named and reached through its postal account
// (local instrument CH02). The type was retired after SPS 2021.
type IS2CreditTransfer struct {
	info
	creditorName       string
	creditorAddress    pain001.PostalReference
	creditorIBAN       pain001.IBAN
	agentName          string
	agentPostalAccount pain001.PostalAccount
}

// NewIS2CreditTransfer validates the creditor and agent details and creates
// the transaction.
func NewIS2CreditTransfer(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, creditorIBAN pain001.IBAN, agentName string, agentAccount pain001.PostalAccount) (*IS2CreditTransfer, error) {
	base, err := newInfo(instructionID, endToEndID, amount)
	if err != nil {
		return nil, err
	}
	creditorName, err = pain001.Assert(creditorName, 70)
	if err != nil {
		return nil, err
	}
	agentName, err = pain001.Assert(agentName, 70)
	if err != nil {
		return nil, err
	}
	return &IS2CreditTransfer{
		info:               base,
		creditorName:       creditorName,
		creditorAddress:    creditorAddress,
		creditorIBAN:       creditorIBAN,
		agentName:          agentName,
		agentPostalAccount: agentAccount,
	}, nil
}

// AsElement renders the transaction block.
func (t *IS2CreditTransfer) AsElement(ctx Context) (*xmlutils.Element, error) {
	if ctx.Version != pain001.SPS2021 {
		return nil, &pain001.SchemaVersionError{Reason: errISTwoStage}
	}
	agent := xmlutils.NewElement("FinInstnId").
		AppendText("Nm", t.agentName).
		Append(xmlutils.NewElement("Othr").AppendText("Id", t.agentPostalAccount.Normalize()))
	tx := xmlutils.NewElement("CdtTrfTxInf")
	tx.Append(t.paymentID())
	tx.Append(paymentTypeInfo(ctx, "", "CH02"))
	tx.Append(t.amountElement())
	tx.Append(xmlutils.NewElement("CdtrAgt").Append(agent))
	tx.Append(creditor(t.creditorName, t.creditorAddress))
	tx.Append(creditorAccount(t.creditorIBAN))
	tx.Append(t.purposeElement())
	tx.Append(t.remittanceElement())
	return tx, nil
}
