package pain001

import (
	"regexp"

	"fjacquet/pain001/internal/xmlutils"
)

var (
	isrParticipantDashed  = regexp.MustCompile(`^(\d{2})-(\d{1,6})-(\d)$`)
	isrParticipantCompact = regexp.MustCompile(`^\d{9}$`)
)

// ISRParticipant is the participant number of an ISR payment slip, e.g.
// 01-1439-8.
type ISRParticipant struct {
	number string
}

// NewISRParticipant validates and creates a participant number from either
// the dashed or the nine digit form.
func NewISRParticipant(number string) (ISRParticipant, error) {
	var compact string
	if matches := isrParticipantDashed.FindStringSubmatch(number); matches != nil {
		compact = matches[1] + zeroPad(matches[2], 6) + matches[3]
	} else if isrParticipantCompact.MatchString(number) {
		compact = number
	} else {
		return ISRParticipant{}, NewValidationError("ISR participant number", "is not properly formatted")
	}
	if !ValidMod10(compact) {
		return ISRParticipant{}, NewValidationError("ISR participant number", "has an invalid check digit")
	}
	return ISRParticipant{number: compact}, nil
}

// Format returns the nine digit canonical form.
func (p ISRParticipant) Format() string {
	return p.number
}

// AccountID returns the account identification block.
func (p ISRParticipant) AccountID() *xmlutils.Element {
	other := xmlutils.NewElement("Othr").AppendText("Id", p.number)
	return xmlutils.NewElement("Id").Append(other)
}
