package payment

import (
	"fjacquet/pain001/internal/xmlutils"
	"fjacquet/pain001/pkg/pain001"
)

// Debit advice instructions.
const (
	// NoAdvice requests no debit advice.
	NoAdvice = "NOA"
	// SingleAdvice requests one advice per transaction.
	SingleAdvice = "SIA"
	// CollectiveNoDetails requests a collective advice without details.
	CollectiveNoDetails = "CND"
	// CollectiveWithDetails requests a collective advice with details.
	CollectiveWithDetails = "CWD"
)

// NotificationInstruction controls whether and how the debtor bank sends a
// debit advice for a batch.
type NotificationInstruction struct {
	instruction string
}

// NewNotificationInstruction validates and creates a notification
// instruction.
func NewNotificationInstruction(instruction string) (NotificationInstruction, error) {
	switch instruction {
	case NoAdvice, SingleAdvice, CollectiveNoDetails, CollectiveWithDetails:
		return NotificationInstruction{instruction: instruction}, nil
	}
	return NotificationInstruction{}, pain001.NewValidationError("notification instruction", "must be one of NOA, SIA, CND or CWD")
}

// Format returns the instruction code.
func (n NotificationInstruction) Format() string {
	return n.instruction
}

// CheckAgainstBatchBooking reports whether the instruction is compatible with
// the batch booking flag: single advices require per-transaction booking,
// collective advices require batch booking.
func (n NotificationInstruction) CheckAgainstBatchBooking(batchBooking bool) bool {
	if batchBooking {
		return n.instruction == NoAdvice || n.instruction == CollectiveNoDetails || n.instruction == CollectiveWithDetails
	}
	return n.instruction == NoAdvice || n.instruction == SingleAdvice
}

// AsElement renders the proprietary account type element carrying the
// instruction.
func (n NotificationInstruction) AsElement() *xmlutils.Element {
	return xmlutils.TextElement("Prtry", n.instruction)
}
