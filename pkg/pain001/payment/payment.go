// Package payment contains the payment batch level of a pain.001 message: a
// set of transactions sharing one debtor and one execution date, together
// with the batch options and their consistency rules.
package payment

import (
	"strconv"
	"time"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
	"fjacquet/pain001/pkg/pain001/transaction"
)

// PaymentInformation is a batch of credit transfer transactions debited from
// one account on one execution date. Transactions keep their insertion order;
// that order is the execution and reporting order.
//
// Appending transactions performs no cross-validation: options such as the
// batch booking flag may still change afterwards, so the mutual consistency
// rules run at render time.
type PaymentInformation struct {
	id              string
	debtorName      string
	debtorAgent     pain001.FinancialInstitution
	debtorIBAN      pain001.IBAN
	executionDate   time.Time
	batchBooking    bool
	categoryPurpose *CategoryPurposeCode
	notification    *NotificationInstruction
	serviceLevel    string
	sepaOnly        bool
	transactions    []transaction.Transaction
}

// NewPaymentInformation validates the batch identification and debtor details
// and creates an empty batch. Batch booking defaults to true and the
// execution date to today.
func NewPaymentInformation(id, debtorName string, debtorAgent pain001.FinancialInstitution, debtorIBAN pain001.IBAN) (*PaymentInformation, error) {
	id, err := pain001.AssertIdentifier(id)
	if err != nil {
		return nil, err
	}
	debtorName, err = pain001.Assert(debtorName, 70)
	if err != nil {
		return nil, err
	}
	return &PaymentInformation{
		id:            id,
		debtorName:    debtorName,
		debtorAgent:   debtorAgent,
		debtorIBAN:    debtorIBAN,
		executionDate: time.Now(),
		batchBooking:  true,
	}, nil
}

// SetExecutionDate overrides the requested execution date.
func (p *PaymentInformation) SetExecutionDate(date time.Time) {
	p.executionDate = date
}

// SetBatchBooking requests booking as one ledger entry (true) or one entry
// per transaction (false).
func (p *PaymentInformation) SetBatchBooking(batchBooking bool) {
	p.batchBooking = batchBooking
}

// SetCategoryPurpose classifies the whole batch.
func (p *PaymentInformation) SetCategoryPurpose(purpose CategoryPurposeCode) {
	p.categoryPurpose = &purpose
}

// SetNotificationInstruction controls the debit advice for the batch. Its
// compatibility with the batch booking flag is checked at render time.
func (p *PaymentInformation) SetNotificationInstruction(instruction NotificationInstruction) {
	p.notification = &instruction
}

// AddTransaction appends a transaction to the batch.
func (p *PaymentInformation) AddTransaction(tx transaction.Transaction) {
	p.transactions = append(p.transactions, tx)
}

// TransactionCount returns the number of transactions in the batch.
func (p *PaymentInformation) TransactionCount() int {
	return len(p.transactions)
}

// TransactionSum returns the sum of all transaction amounts.
func (p *PaymentInformation) TransactionSum() money.Sum {
	var sum money.Sum
	for _, tx := range p.transactions {
		sum = sum.Plus(tx.Amount())
	}
	return sum
}

// hasPaymentTypeInfo reports whether the batch emits its own <PmtTpInf>, in
// which case transactions must not repeat the service level.
func (p *PaymentInformation) hasPaymentTypeInfo() bool {
	return p.serviceLevel != "" || p.categoryPurpose != nil
}

// AsElement renders the <PmtInf> block for the given schema generation. The
// batch level consistency rules are checked here, before any output is
// produced.
func (p *PaymentInformation) AsElement(v pain001.Version) (*xmlutils.Element, error) {
	if p.notification != nil && !p.notification.CheckAgainstBatchBooking(p.batchBooking) {
		return nil, pain001.NewBusinessRuleError(
			"notification instruction %s is not allowed with batch booking set to %t",
			p.notification.Format(), p.batchBooking)
	}
	if p.sepaOnly {
		for _, tx := range p.transactions {
			if _, ok := tx.(*transaction.SEPACreditTransfer); !ok {
				return nil, pain001.NewBusinessRuleError("SEPA payments can only contain SEPA credit transfers")
			}
		}
	}

	ctx := transaction.Context{
		Version:              v,
		BatchPaymentTypeInfo: p.hasPaymentTypeInfo(),
	}
	var transactions []*xmlutils.Element
	for _, tx := range p.transactions {
		element, err := tx.AsElement(ctx)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, element)
	}

	info := xmlutils.NewElement("PmtInf")
	info.AppendText("PmtInfId", p.id)
	info.AppendText("PmtMtd", "TRF")
	info.AppendText("BtchBookg", strconv.FormatBool(p.batchBooking))
	if p.hasPaymentTypeInfo() {
		typeInfo := xmlutils.NewElement("PmtTpInf")
		if p.serviceLevel != "" {
			typeInfo.Append(xmlutils.NewElement("SvcLvl").AppendText("Cd", p.serviceLevel))
		}
		if p.categoryPurpose != nil {
			typeInfo.Append(p.categoryPurpose.AsElement())
		}
		info.Append(typeInfo)
	}
	info.Append(executionDate(v, p.executionDate))
	info.Append(xmlutils.NewElement("Dbtr").AppendText("Nm", p.debtorName))

	account := xmlutils.NewElement("DbtrAcct").Append(p.debtorIBAN.AccountID())
	if p.notification != nil {
		account.Append(xmlutils.NewElement("Tp").Append(p.notification.AsElement()))
	}
	info.Append(account)
	info.Append(xmlutils.NewElement("DbtrAgt").Append(p.debtorAgent.Identification(v)))
	info.Append(transactions...)
	return info, nil
}

// executionDate renders <ReqdExctnDt>. The 2022 generation wraps the date
// into a choice element.
func executionDate(v pain001.Version, date time.Time) *xmlutils.Element {
	formatted := date.Format("2006-01-02")
	if v == pain001.SPS2021 {
		return xmlutils.TextElement("ReqdExctnDt", formatted)
	}
	return xmlutils.NewElement("ReqdExctnDt").AppendText("Dt", formatted)
}

// SEPAPaymentInformation is a batch restricted to SEPA credit transfers. The
// SEPA service level is declared once at batch level and the composition rule
// is enforced when the batch renders.
type SEPAPaymentInformation struct {
	PaymentInformation
}

// NewSEPAPaymentInformation creates a SEPA-only batch.
func NewSEPAPaymentInformation(id, debtorName string, debtorAgent pain001.FinancialInstitution, debtorIBAN pain001.IBAN) (*SEPAPaymentInformation, error) {
	inner, err := NewPaymentInformation(id, debtorName, debtorAgent, debtorIBAN)
	if err != nil {
		return nil, err
	}
	inner.serviceLevel = "SEPA"
	inner.sepaOnly = true
	return &SEPAPaymentInformation{PaymentInformation: *inner}, nil
}
