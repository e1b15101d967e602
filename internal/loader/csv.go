package loader

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gocarina/gocsv"

	"fjacquet/pain001/internal/logging"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/message"
	"fjacquet/pain001/pkg/pain001/money"
	"fjacquet/pain001/pkg/pain001/payment"
	"fjacquet/pain001/pkg/pain001/transaction"
)

// TransactionRow represents a single row in a CSV payment file.
// It uses struct tags for gocsv unmarshaling.
type TransactionRow struct {
	InstructionID    string `csv:"instruction_id"`
	EndToEndID       string `csv:"end_to_end_id"`
	Currency         string `csv:"currency"`
	Amount           string `csv:"amount"`
	CreditorName     string `csv:"creditor_name"`
	CreditorIBAN     string `csv:"creditor_iban"`
	CreditorBIC      string `csv:"creditor_bic"`
	CreditorStreet   string `csv:"creditor_street"`
	CreditorBuilding string `csv:"creditor_building"`
	CreditorPostCode string `csv:"creditor_postcode"`
	CreditorTown     string `csv:"creditor_town"`
	CreditorCountry  string `csv:"creditor_country"`
	Reference        string `csv:"reference"`
	Remittance       string `csv:"remittance"`
}

// LoadCSV decodes a flat CSV transaction list and builds a message with a
// single payment batch. The message and debtor details come from meta.
func LoadCSV(r io.Reader, meta Meta, logger logging.Logger) (*message.CustomerCreditTransfer, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var rows []*TransactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to read CSV payment file")
		return nil, fmt.Errorf("error reading CSV payment file: %w", err)
	}
	logger.Info("Read rows from CSV payment file", logging.F("count", len(rows)))

	msg, err := message.NewCustomerCreditTransfer(fallbackID(meta.MessageID), meta.InitiatingParty, meta.Version)
	if err != nil {
		return nil, err
	}

	debtorIBAN, err := pain001.NewIBAN(meta.DebtorIBAN)
	if err != nil {
		return nil, err
	}
	var agent pain001.FinancialInstitution
	if meta.DebtorBIC != "" {
		agent, err = pain001.NewBIC(meta.DebtorBIC)
	} else {
		agent, err = pain001.IIDFromIBAN(debtorIBAN)
	}
	if err != nil {
		return nil, err
	}

	info, err := payment.NewPaymentInformation(fallbackID(meta.PaymentID), meta.DebtorName, agent, debtorIBAN)
	if err != nil {
		return nil, err
	}
	if meta.ExecutionDate != "" {
		date, err := parseDate(meta.ExecutionDate)
		if err != nil {
			return nil, err
		}
		info.SetExecutionDate(date)
	}

	for i, row := range rows {
		// Skip empty rows
		if row.CreditorIBAN == "" && row.Amount == "" {
			continue
		}
		tx, err := convertRowToTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		info.AddTransaction(tx)
	}
	msg.AddPayment(info)

	logger.Info("Loaded CSV payment file",
		logging.F(logging.FieldSPSVersion, string(meta.Version)),
		logging.F(logging.FieldTransactions, info.TransactionCount()))
	return msg, nil
}

// convertRowToTransaction converts a TransactionRow to a bank transfer,
// picking the QRR or SCOR variant when the row carries a structured
// reference.
func convertRowToTransaction(row *TransactionRow) (transaction.Transaction, error) {
	amount, err := money.Parse(row.Currency, row.Amount)
	if err != nil {
		return nil, err
	}
	iban, err := pain001.NewIBAN(row.CreditorIBAN)
	if err != nil {
		return nil, err
	}
	var agent pain001.FinancialInstitution
	if row.CreditorBIC != "" {
		agent, err = pain001.NewBIC(row.CreditorBIC)
	} else {
		agent, err = pain001.IIDFromIBAN(iban)
	}
	if err != nil {
		return nil, err
	}
	address, err := rowAddress(row)
	if err != nil {
		return nil, err
	}

	instructionID := fallbackID(row.InstructionID)
	endToEndID := fallbackID(row.EndToEndID)

	var tx interface {
		transaction.Transaction
		SetRemittanceInformation(string)
	}
	switch referenceKind(row.Reference) {
	case referenceQRR:
		tx, err = transaction.NewBankCreditTransferWithQRR(instructionID, endToEndID, amount, row.CreditorName, address, iban, agent, compactReference(row.Reference))
	case referenceSCOR:
		tx, err = transaction.NewBankCreditTransferWithCreditorReference(instructionID, endToEndID, amount, row.CreditorName, address, iban, agent, row.Reference)
	default:
		if row.Reference != "" {
			return nil, fmt.Errorf("unrecognized reference format %q", row.Reference)
		}
		tx, err = transaction.NewBankCreditTransfer(instructionID, endToEndID, amount, row.CreditorName, address, iban, agent)
	}
	if err != nil {
		return nil, err
	}
	if row.Remittance != "" {
		tx.SetRemittanceInformation(row.Remittance)
	}
	return tx, nil
}

func rowAddress(row *TransactionRow) (pain001.PostalReference, error) {
	if row.CreditorPostCode == "" && row.CreditorTown == "" {
		return nil, nil
	}
	return pain001.NewStructuredPostalAddress(
		row.CreditorStreet, row.CreditorBuilding,
		row.CreditorPostCode, row.CreditorTown, row.CreditorCountry)
}

type reference int

const (
	referenceNone reference = iota
	referenceQRR
	referenceSCOR
)

var (
	qrReferenceForm       = regexp.MustCompile(`^\d{27}$`)
	creditorReferenceForm = regexp.MustCompile(`^(?i:RF)[0-9]{2}`)
)

func compactReference(ref string) string {
	return strings.ReplaceAll(ref, " ", "")
}

// referenceKind classifies a structured reference by its shape. Spaces are
// ignored, validity is checked by the transaction constructors.
func referenceKind(ref string) reference {
	compact := compactReference(ref)
	switch {
	case compact == "":
		return referenceNone
	case qrReferenceForm.MatchString(compact):
		return referenceQRR
	case creditorReferenceForm.MatchString(compact):
		return referenceSCOR
	}
	return referenceNone
}
