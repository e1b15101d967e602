package loader

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"fjacquet/pain001/internal/logging"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/message"
	"fjacquet/pain001/pkg/pain001/money"
	"fjacquet/pain001/pkg/pain001/payment"
	"fjacquet/pain001/pkg/pain001/transaction"
)

// yamlFile is the top level structure of a YAML payment file.
type yamlFile struct {
	Message  yamlMessage   `yaml:"message"`
	Payments []yamlPayment `yaml:"payments"`
}

type yamlMessage struct {
	ID              string `yaml:"id"`
	InitiatingParty string `yaml:"initiating-party"`
	Version         string `yaml:"version"`
}

type yamlPayment struct {
	ID              string            `yaml:"id"`
	DebtorName      string            `yaml:"debtor-name"`
	DebtorIBAN      string            `yaml:"debtor-iban"`
	DebtorBIC       string            `yaml:"debtor-bic"`
	DebtorIID       string            `yaml:"debtor-iid"`
	ExecutionDate   string            `yaml:"execution-date"`
	BatchBooking    *bool             `yaml:"batch-booking"`
	Notification    string            `yaml:"notification"`
	CategoryPurpose string            `yaml:"category-purpose"`
	SEPA            bool              `yaml:"sepa"`
	Transactions    []yamlTransaction `yaml:"transactions"`
}

type yamlTransaction struct {
	Type          string       `yaml:"type"`
	InstructionID string       `yaml:"instruction-id"`
	EndToEndID    string       `yaml:"end-to-end-id"`
	Currency      string       `yaml:"currency"`
	Amount        string       `yaml:"amount"`
	Creditor      yamlCreditor `yaml:"creditor"`
	Agent         yamlAgent    `yaml:"agent"`
	Intermediary  *yamlAgent   `yaml:"intermediary"`
	Reference     string       `yaml:"reference"`
	Remittance    string       `yaml:"remittance"`
	Purpose       string       `yaml:"purpose"`
}

type yamlCreditor struct {
	Name           string       `yaml:"name"`
	IBAN           string       `yaml:"iban"`
	Account        string       `yaml:"account"`
	PostalAccount  string       `yaml:"postal-account"`
	ISRParticipant string       `yaml:"isr-participant"`
	Address        *yamlAddress `yaml:"address"`
}

type yamlAgent struct {
	BIC           string       `yaml:"bic"`
	IID           string       `yaml:"iid"`
	Name          string       `yaml:"name"`
	PostalAccount string       `yaml:"postal-account"`
	Address       *yamlAddress `yaml:"address"`
}

type yamlAddress struct {
	Street   string   `yaml:"street"`
	Building string   `yaml:"building"`
	PostCode string   `yaml:"postcode"`
	Town     string   `yaml:"town"`
	Country  string   `yaml:"country"`
	Lines    []string `yaml:"lines"`
}

// LoadYAML decodes a YAML payment file and builds the message. Values in the
// file win over the ones in meta.
func LoadYAML(r io.Reader, meta Meta, logger logging.Logger) (*message.CustomerCreditTransfer, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		logger.WithError(err).Error("Failed to decode YAML payment file")
		return nil, fmt.Errorf("error decoding YAML payment file: %w", err)
	}

	id := file.Message.ID
	if id == "" {
		id = fallbackID(meta.MessageID)
	}
	party := file.Message.InitiatingParty
	if party == "" {
		party = meta.InitiatingParty
	}
	version := meta.Version
	if file.Message.Version != "" {
		version = pain001.Version(file.Message.Version)
	}

	msg, err := message.NewCustomerCreditTransfer(id, party, version)
	if err != nil {
		return nil, err
	}

	for i, p := range file.Payments {
		info, err := buildPayment(p, meta)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		msg.AddPayment(info)
	}

	logger.Info("Loaded YAML payment file",
		logging.F(logging.FieldMessageID, id),
		logging.F(logging.FieldSPSVersion, string(version)),
		logging.F("payments", len(file.Payments)))
	return msg, nil
}

// batch is the part of the payment information surface the YAML builder
// needs. Both batch flavors satisfy it.
type batch interface {
	message.Payment
	SetExecutionDate(date time.Time)
	SetBatchBooking(batchBooking bool)
	SetCategoryPurpose(purpose payment.CategoryPurposeCode)
	SetNotificationInstruction(instruction payment.NotificationInstruction)
	AddTransaction(tx transaction.Transaction)
}

func buildPayment(p yamlPayment, meta Meta) (message.Payment, error) {
	debtorName := p.DebtorName
	if debtorName == "" {
		debtorName = meta.DebtorName
	}
	debtorIBANSource := p.DebtorIBAN
	if debtorIBANSource == "" {
		debtorIBANSource = meta.DebtorIBAN
	}
	debtorIBAN, err := pain001.NewIBAN(debtorIBANSource)
	if err != nil {
		return nil, err
	}
	agent, err := debtorAgent(p, debtorIBAN)
	if err != nil {
		return nil, err
	}

	var info batch
	if p.SEPA {
		sepa, err := payment.NewSEPAPaymentInformation(fallbackID(p.ID), debtorName, agent, debtorIBAN)
		if err != nil {
			return nil, err
		}
		info = sepa
	} else {
		plain, err := payment.NewPaymentInformation(fallbackID(p.ID), debtorName, agent, debtorIBAN)
		if err != nil {
			return nil, err
		}
		info = plain
	}

	if p.ExecutionDate != "" {
		date, err := parseDate(p.ExecutionDate)
		if err != nil {
			return nil, err
		}
		info.SetExecutionDate(date)
	}
	if p.BatchBooking != nil {
		info.SetBatchBooking(*p.BatchBooking)
	}
	if p.Notification != "" {
		instruction, err := payment.NewNotificationInstruction(p.Notification)
		if err != nil {
			return nil, err
		}
		info.SetNotificationInstruction(instruction)
	}
	if p.CategoryPurpose != "" {
		purpose, err := payment.NewCategoryPurposeCode(p.CategoryPurpose)
		if err != nil {
			return nil, err
		}
		info.SetCategoryPurpose(purpose)
	}

	for i, t := range p.Transactions {
		tx, err := buildTransaction(t)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		info.AddTransaction(tx)
	}
	return info, nil
}

// debtorAgent builds the debtor bank identification from the BIC or the IID,
// falling back to the IID embedded in the debtor IBAN.
func debtorAgent(p yamlPayment, iban pain001.IBAN) (pain001.FinancialInstitution, error) {
	if p.DebtorBIC != "" {
		return pain001.NewBIC(p.DebtorBIC)
	}
	if p.DebtorIID != "" {
		return pain001.NewIID(p.DebtorIID)
	}
	return pain001.IIDFromIBAN(iban)
}

func buildTransaction(t yamlTransaction) (transaction.Transaction, error) {
	amount, err := money.Parse(t.Currency, t.Amount)
	if err != nil {
		return nil, err
	}
	instructionID := fallbackID(t.InstructionID)
	endToEndID := fallbackID(t.EndToEndID)

	address, err := buildAddress(t.Creditor.Address)
	if err != nil {
		return nil, err
	}

	var tx transaction.Transaction
	switch t.Type {
	case "", "bank":
		tx, err = buildBankTransfer(t, instructionID, endToEndID, amount, address)
	case "sepa":
		tx, err = buildSEPATransfer(t, instructionID, endToEndID, amount, address)
	case "foreign":
		tx, err = buildForeignTransfer(t, instructionID, endToEndID, amount, address)
	case "is1":
		tx, err = buildIS1Transfer(t, instructionID, endToEndID, amount, address)
	case "is2":
		tx, err = buildIS2Transfer(t, instructionID, endToEndID, amount, address)
	case "isr":
		tx, err = buildISRTransfer(t, instructionID, endToEndID, amount, address)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if err != nil {
		return nil, err
	}

	if setter, ok := tx.(interface{ SetRemittanceInformation(string) }); ok && t.Remittance != "" {
		setter.SetRemittanceInformation(t.Remittance)
	}
	if setter, ok := tx.(interface{ SetPurpose(transaction.PurposeCode) }); ok && t.Purpose != "" {
		purpose, err := transaction.NewPurposeCode(t.Purpose)
		if err != nil {
			return nil, err
		}
		setter.SetPurpose(purpose)
	}
	return tx, nil
}

// buildBankTransfer creates a plain bank transfer, or a QRR/SCOR variant when
// the row carries a structured reference.
func buildBankTransfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	iban, err := pain001.NewIBAN(t.Creditor.IBAN)
	if err != nil {
		return nil, err
	}
	agent, err := creditorAgent(t.Agent, iban)
	if err != nil {
		return nil, err
	}
	switch referenceKind(t.Reference) {
	case referenceQRR:
		return transaction.NewBankCreditTransferWithQRR(instructionID, endToEndID, amount, t.Creditor.Name, address, iban, agent, compactReference(t.Reference))
	case referenceSCOR:
		return transaction.NewBankCreditTransferWithCreditorReference(instructionID, endToEndID, amount, t.Creditor.Name, address, iban, agent, t.Reference)
	}
	if t.Reference != "" {
		return nil, fmt.Errorf("unrecognized reference format %q", t.Reference)
	}
	return transaction.NewBankCreditTransfer(instructionID, endToEndID, amount, t.Creditor.Name, address, iban, agent)
}

func buildSEPATransfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	iban, err := pain001.NewIBAN(t.Creditor.IBAN)
	if err != nil {
		return nil, err
	}
	bic, err := pain001.NewBIC(t.Agent.BIC)
	if err != nil {
		return nil, err
	}
	return transaction.NewSEPACreditTransfer(instructionID, endToEndID, amount, t.Creditor.Name, address, iban, bic)
}

func buildForeignTransfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	var account pain001.AccountReference
	if t.Creditor.IBAN != "" {
		iban, err := pain001.NewIBAN(t.Creditor.IBAN)
		if err != nil {
			return nil, err
		}
		account = iban
	} else {
		general, err := pain001.NewGeneralAccount(t.Creditor.Account)
		if err != nil {
			return nil, err
		}
		account = general
	}
	agent, err := namedAgent(t.Agent)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.NewForeignCreditTransfer(instructionID, endToEndID, amount, t.Creditor.Name, address, account, agent)
	if err != nil {
		return nil, err
	}
	if t.Intermediary != nil {
		intermediary, err := namedAgent(*t.Intermediary)
		if err != nil {
			return nil, err
		}
		tx.SetIntermediaryAgent(intermediary)
	}
	return tx, nil
}

func buildIS1Transfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	account, err := pain001.NewPostalAccount(t.Creditor.PostalAccount)
	if err != nil {
		return nil, err
	}
	return transaction.NewIS1CreditTransfer(instructionID, endToEndID, amount, t.Creditor.Name, address, account)
}

func buildIS2Transfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	iban, err := pain001.NewIBAN(t.Creditor.IBAN)
	if err != nil {
		return nil, err
	}
	account, err := pain001.NewPostalAccount(t.Agent.PostalAccount)
	if err != nil {
		return nil, err
	}
	return transaction.NewIS2CreditTransfer(instructionID, endToEndID, amount, t.Creditor.Name, address, iban, t.Agent.Name, account)
}

func buildISRTransfer(t yamlTransaction, instructionID, endToEndID string, amount money.Money, address pain001.PostalReference) (transaction.Transaction, error) {
	participant, err := pain001.NewISRParticipant(t.Creditor.ISRParticipant)
	if err != nil {
		return nil, err
	}
	tx, err := transaction.NewISRCreditTransfer(instructionID, endToEndID, amount, participant, t.Reference)
	if err != nil {
		return nil, err
	}
	if t.Creditor.Name != "" {
		if err := tx.SetCreditorDetails(t.Creditor.Name, address); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

// creditorAgent builds the creditor bank identification, falling back to the
// IID embedded in the creditor IBAN when the file names no bank.
func creditorAgent(a yamlAgent, iban pain001.IBAN) (pain001.FinancialInstitution, error) {
	if a.BIC != "" {
		return pain001.NewBIC(a.BIC)
	}
	if a.IID != "" {
		return pain001.NewIID(a.IID)
	}
	return pain001.IIDFromIBAN(iban)
}

// namedAgent builds a bank identification for transfers where the bank may be
// given by BIC or by name and address.
func namedAgent(a yamlAgent) (pain001.FinancialInstitution, error) {
	if a.BIC != "" {
		return pain001.NewBIC(a.BIC)
	}
	address, err := buildAddress(a.Address)
	if err != nil {
		return nil, err
	}
	return pain001.NewFinancialInstitutionAddress(a.Name, address)
}

func buildAddress(a *yamlAddress) (pain001.PostalReference, error) {
	if a == nil {
		return nil, nil
	}
	if len(a.Lines) > 0 {
		address, err := pain001.NewUnstructuredPostalAddress(a.Country, a.Lines...)
		if err != nil {
			return nil, err
		}
		return address, nil
	}
	address, err := pain001.NewStructuredPostalAddress(a.Street, a.Building, a.PostCode, a.Town, a.Country)
	if err != nil {
		return nil, err
	}
	return address, nil
}
