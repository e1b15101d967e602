package transaction

import (
	"regexp"
	"strings"

	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
	"fjacquet/pain001/pkg/pain001/money"
)

var (
	qrReferencePattern       = regexp.MustCompile(`^\d{27}$`)
	creditorReferencePattern = regexp.MustCompile(`^RF\d{2}[0-9A-Z]{1,21}$`)
)

// BankCreditTransferWithQRR is a transfer to a QR-IBAN carrying a 27 digit
// QR reference. QR-IBANs use the clearing number range reserved for the QR
// procedure.
type BankCreditTransferWithQRR struct {
	BankCreditTransfer
	reference string
}

// NewBankCreditTransferWithQRR validates the QR-IBAN and the QR reference and
// creates the transaction.
func NewBankCreditTransferWithQRR(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, creditorIBAN pain001.IBAN, agent pain001.FinancialInstitution, reference string) (*BankCreditTransferWithQRR, error) {
	if !isQRIBAN(creditorIBAN) {
		return nil, pain001.NewValidationError("QR-IBAN", "the creditor IBAN is not within the QR-IID range")
	}
	if !qrReferencePattern.MatchString(reference) || !pain001.ValidMod10(reference) {
		return nil, pain001.NewValidationError("QR reference", "is not valid")
	}
	inner, err := NewBankCreditTransfer(instructionID, endToEndID, amount, creditorName, creditorAddress, creditorIBAN, agent)
	if err != nil {
		return nil, err
	}
	return &BankCreditTransferWithQRR{BankCreditTransfer: *inner, reference: reference}, nil
}

// AsElement renders the transaction block.
func (t *BankCreditTransferWithQRR) AsElement(ctx Context) (*xmlutils.Element, error) {
	tx, err := t.BankCreditTransfer.AsElement(ctx)
	if err != nil {
		return nil, err
	}
	return appendStructuredReference(tx, t.remittance, "Prtry", "QRR", t.reference), nil
}

// BankCreditTransferWithCreditorReference is a transfer carrying a
// structured ISO 11649 creditor reference (RF...).
type BankCreditTransferWithCreditorReference struct {
	BankCreditTransfer
	reference string
}

// NewBankCreditTransferWithCreditorReference validates the shape of the
// creditor reference and creates the transaction. Spaces in the reference are
// ignored. The check digits are not verified, references are accepted as
// issued by the creditor.
func NewBankCreditTransferWithCreditorReference(instructionID, endToEndID string, amount money.Money, creditorName string, creditorAddress pain001.PostalReference, creditorIBAN pain001.IBAN, agent pain001.FinancialInstitution, reference string) (*BankCreditTransferWithCreditorReference, error) {
	compact := strings.ToUpper(strings.ReplaceAll(reference, " ", ""))
	if !creditorReferencePattern.MatchString(compact) {
		return nil, pain001.NewValidationError("creditor reference", "is not valid")
	}
	inner, err := NewBankCreditTransfer(instructionID, endToEndID, amount, creditorName, creditorAddress, creditorIBAN, agent)
	if err != nil {
		return nil, err
	}
	return &BankCreditTransferWithCreditorReference{BankCreditTransfer: *inner, reference: compact}, nil
}

// AsElement renders the transaction block.
func (t *BankCreditTransferWithCreditorReference) AsElement(ctx Context) (*xmlutils.Element, error) {
	tx, err := t.BankCreditTransfer.AsElement(ctx)
	if err != nil {
		return nil, err
	}
	return appendStructuredReference(tx, t.remittance, "Cd", "SCOR", t.reference), nil
}

// appendStructuredReference replaces the plain remittance block with one that
// carries the structured creditor reference, keeping any unstructured text.
func appendStructuredReference(tx *xmlutils.Element, remittance, typeTag, typeValue, reference string) *xmlutils.Element {
	filtered := tx.Children[:0]
	for _, child := range tx.Children {
		if child.Tag != "RmtInf" {
			filtered = append(filtered, child)
		}
	}
	tx.Children = filtered

	remit := xmlutils.NewElement("RmtInf")
	if remittance != "" {
		remit.AppendText("Ustrd", remittance)
	}
	referenceType := xmlutils.NewElement("Tp").
		Append(xmlutils.NewElement("CdOrPrtry").AppendText(typeTag, typeValue))
	referenceInfo := xmlutils.NewElement("CdtrRefInf").
		Append(referenceType).
		AppendText("Ref", reference)
	remit.Append(xmlutils.NewElement("Strd").Append(referenceInfo))
	return tx.Append(remit)
}

// isQRIBAN reports whether the IBAN's institution identification lies within
// the range 30000-31999 reserved for QR-IBANs.
func isQRIBAN(iban pain001.IBAN) bool {
	if iban.Country() != "CH" && iban.Country() != "LI" {
		return false
	}
	iid := iban.Normalize()[4:9]
	return iid >= "30000" && iid <= "31999"
}
