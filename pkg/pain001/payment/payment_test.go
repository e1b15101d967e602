package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
	"fjacquet/pain001/pkg/pain001/transaction"
)

func buildPayment(t *testing.T) *PaymentInformation {
	t.Helper()
	agent, err := pain001.NewBIC("ZKBKCHZZ80A")
	require.NoError(t, err)
	iban, err := pain001.NewIBAN("CH6600700110000204481")
	require.NoError(t, err)
	payment, err := NewPaymentInformation("payment-000", "InnoMuster AG", agent, iban)
	require.NoError(t, err)
	return payment
}

func buildTransfer(t *testing.T, instructionID string, amount money.Money) transaction.Transaction {
	t.Helper()
	iban, err := pain001.NewIBAN("CH51 0022 5225 9529 1301 C")
	require.NoError(t, err)
	agent, err := pain001.NewBIC("UBSWCHZH80A")
	require.NoError(t, err)
	tx, err := transaction.NewBankCreditTransfer(instructionID, "e2e-"+instructionID, amount, "Muster Transport AG", nil, iban, agent)
	require.NoError(t, err)
	return tx
}

func buildSEPATransfer(t *testing.T, instructionID string) transaction.Transaction {
	t.Helper()
	iban, err := pain001.NewIBAN("DE89 3704 0044 0532 0130 00")
	require.NoError(t, err)
	agent, err := pain001.NewBIC("COBADEFFXXX")
	require.NoError(t, err)
	tx, err := transaction.NewSEPACreditTransfer(instructionID, "e2e-"+instructionID, money.EUR(10000), "Bau Muster AG", nil, iban, agent)
	require.NoError(t, err)
	return tx
}

func TestNewPaymentInformationInvalid(t *testing.T) {
	agent, err := pain001.NewBIC("ZKBKCHZZ80A")
	require.NoError(t, err)
	iban, err := pain001.NewIBAN("CH6600700110000204481")
	require.NoError(t, err)

	_, err = NewPaymentInformation("pmt//1", "InnoMuster AG", agent, iban)
	assert.Error(t, err)

	_, err = NewPaymentInformation("payment-000", "", agent, iban)
	assert.Error(t, err)
}

func TestTransactionCountAndSum(t *testing.T) {
	payment := buildPayment(t)
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))
	payment.AddTransaction(buildTransfer(t, "instr-001", money.CHF(30000)))

	assert.Equal(t, 2, payment.TransactionCount())
	assert.Equal(t, "1600.00", payment.TransactionSum().Format())
}

func TestPaymentInformationAsElement(t *testing.T) {
	payment := buildPayment(t)
	payment.SetExecutionDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))

	element, err := payment.AsElement(pain001.SPS2021)
	require.NoError(t, err)
	assert.Equal(t, "PmtInf", element.Tag)
	assert.Equal(t, "payment-000", element.Find("PmtInfId").Text)
	assert.Equal(t, "TRF", element.Find("PmtMtd").Text)
	assert.Equal(t, "true", element.Find("BtchBookg").Text)
	assert.Nil(t, element.Find("PmtTpInf"))
	// bare date under the 2021 generation
	assert.Equal(t, "2026-09-01", element.Find("ReqdExctnDt").Text)
	assert.Empty(t, element.Find("ReqdExctnDt").Children)
	assert.Equal(t, "InnoMuster AG", element.Find("Dbtr", "Nm").Text)
	assert.Equal(t, "CH6600700110000204481", element.Find("DbtrAcct", "Id", "IBAN").Text)
	require.NotNil(t, element.Find("DbtrAgt", "FinInstnId", "BIC"))
	require.NotNil(t, element.Find("CdtTrfTxInf"))
}

func TestExecutionDateWrappedUnder2022(t *testing.T) {
	payment := buildPayment(t)
	payment.SetExecutionDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))

	element, err := payment.AsElement(pain001.SPS2022)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", element.Find("ReqdExctnDt", "Dt").Text)
}

func TestCategoryPurpose(t *testing.T) {
	payment := buildPayment(t)
	purpose, err := NewCategoryPurposeCode("SALA")
	require.NoError(t, err)
	payment.SetCategoryPurpose(purpose)
	payment.AddTransaction(buildTransfer(t, "instr-003", money.CHF(130000)))

	element, err := payment.AsElement(pain001.SPS2022)
	require.NoError(t, err)
	assert.Equal(t, "SALA", element.Find("PmtTpInf", "CtgyPurp", "Cd").Text)
}

func TestNewCategoryPurposeCodeInvalid(t *testing.T) {
	for _, input := range []string{"", "SAL", "SALAX", "sala"} {
		_, err := NewCategoryPurposeCode(input)
		assert.Error(t, err, input)
	}
}

func TestNewNotificationInstruction(t *testing.T) {
	for _, code := range []string{NoAdvice, SingleAdvice, CollectiveNoDetails, CollectiveWithDetails} {
		instruction, err := NewNotificationInstruction(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, instruction.Format())
	}

	_, err := NewNotificationInstruction("XXX")
	assert.Error(t, err)
}

func TestNotificationInstructionBatchBookingRules(t *testing.T) {
	tests := []struct {
		instruction  string
		batchBooking bool
		allowed      bool
	}{
		{NoAdvice, true, true},
		{NoAdvice, false, true},
		{SingleAdvice, true, false},
		{SingleAdvice, false, true},
		{CollectiveNoDetails, true, true},
		{CollectiveNoDetails, false, false},
		{CollectiveWithDetails, true, true},
		{CollectiveWithDetails, false, false},
	}

	for _, tt := range tests {
		instruction, err := NewNotificationInstruction(tt.instruction)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, instruction.CheckAgainstBatchBooking(tt.batchBooking),
			"%s with batch booking %t", tt.instruction, tt.batchBooking)
	}
}

func TestNotificationRenderedAsAccountType(t *testing.T) {
	payment := buildPayment(t)
	instruction, err := NewNotificationInstruction(CollectiveWithDetails)
	require.NoError(t, err)
	payment.SetNotificationInstruction(instruction)
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))

	element, err := payment.AsElement(pain001.SPS2022)
	require.NoError(t, err)
	assert.Equal(t, "CWD", element.Find("DbtrAcct", "Tp", "Prtry").Text)
}

func TestIncompatibleNotificationFailsRender(t *testing.T) {
	payment := buildPayment(t)
	instruction, err := NewNotificationInstruction(SingleAdvice)
	require.NoError(t, err)
	payment.SetNotificationInstruction(instruction)
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))

	// batch booking defaults to true, which single advices do not allow
	_, err = payment.AsElement(pain001.SPS2022)
	require.Error(t, err)
	var ruleErr *pain001.BusinessRuleError
	assert.ErrorAs(t, err, &ruleErr)

	payment.SetBatchBooking(false)
	_, err = payment.AsElement(pain001.SPS2022)
	assert.NoError(t, err)
}

func TestSEPAPaymentInformation(t *testing.T) {
	agent, err := pain001.NewBIC("POFICHBEXXX")
	require.NoError(t, err)
	iban, err := pain001.NewIBAN("CH6309000000250097798")
	require.NoError(t, err)
	payment, err := NewSEPAPaymentInformation("payment-020", "InnoMuster AG", agent, iban)
	require.NoError(t, err)
	payment.AddTransaction(buildSEPATransfer(t, "instr-020"))

	element, err := payment.AsElement(pain001.SPS2022)
	require.NoError(t, err)
	// service level at batch level, not repeated per transaction
	assert.Equal(t, "SEPA", element.Find("PmtTpInf", "SvcLvl", "Cd").Text)
	assert.Nil(t, element.Find("CdtTrfTxInf", "PmtTpInf"))
}

func TestSEPAPaymentInformationRejectsOtherTransfers(t *testing.T) {
	agent, err := pain001.NewBIC("POFICHBEXXX")
	require.NoError(t, err)
	iban, err := pain001.NewIBAN("CH6309000000250097798")
	require.NoError(t, err)
	payment, err := NewSEPAPaymentInformation("payment-020", "InnoMuster AG", agent, iban)
	require.NoError(t, err)
	payment.AddTransaction(buildTransfer(t, "instr-000", money.CHF(130000)))

	_, err = payment.AsElement(pain001.SPS2022)
	require.Error(t, err)
	var ruleErr *pain001.BusinessRuleError
	assert.ErrorAs(t, err, &ruleErr)
}

func TestRenderAbortsOnFirstIneligibleTransaction(t *testing.T) {
	payment := buildPayment(t)
	account, err := pain001.NewPostalAccount("80-5928-4")
	require.NoError(t, err)
	is1, err := transaction.NewIS1CreditTransfer("instr-101", "e2e-101", money.CHF(30000), "Finanzverwaltung Stadt Musterhausen", nil, account)
	require.NoError(t, err)
	payment.AddTransaction(is1)

	_, err = payment.AsElement(pain001.SPS2022)
	require.Error(t, err)
	var versionErr *pain001.SchemaVersionError
	assert.ErrorAs(t, err, &versionErr)
}
