package pain001

import "fmt"

// ValidationError reports input that violates a format, length or character
// set contract. It is returned at construction time; no value is produced
// alongside it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// SchemaVersionError reports a transaction kind that is not eligible under the
// schema generation of the enclosing message. It can only surface during
// rendering because the generation is unknown until then.
type SchemaVersionError struct {
	Reason string
}

func (e *SchemaVersionError) Error() string {
	return e.Reason
}

// BusinessRuleError reports a violated cross-field business rule, such as an
// incompatible notification instruction and batch-booking combination.
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

// NewBusinessRuleError creates a BusinessRuleError.
func NewBusinessRuleError(format string, args ...interface{}) *BusinessRuleError {
	return &BusinessRuleError{Reason: fmt.Sprintf(format, args...)}
}
