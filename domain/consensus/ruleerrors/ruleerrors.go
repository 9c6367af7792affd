package ruleerrors

import "github.com/pkg/errors"

// These values identify a specific RuleError. The caller can use type
// assertions (via errors.As) to determine which rule a candidate header
// violated.
var (
	// ErrTimestampTooLow indicates the candidate header's timestamp is
	// before BCOBlockUnixtimeMin.
	ErrTimestampTooLow = newRuleError("ErrTimestampTooLow")

	// ErrBitsMismatch indicates the candidate header's Bits field does not
	// equal the retargeted base target CalculateBaseTarget computed.
	ErrBitsMismatch = newRuleError("ErrBitsMismatch")

	// ErrDeadlineNotMet indicates the candidate header's timestamp does not
	// exceed the parent's timestamp plus the computed deadline.
	ErrDeadlineNotMet = newRuleError("ErrDeadlineNotMet")
)

// RuleError identifies a rule violation found while validating a candidate
// block header. The caller can use errors.Is/errors.As to determine which
// of the package-level Err* values caused a validation failure.
type RuleError struct {
	message string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message}
}

// Wrap attaches a stack trace to a RuleError at the point it is returned,
// rather than at construction, so the trace points at the call site that
// rejected the header.
func Wrap(err RuleError) error {
	return errors.WithStack(err)
}
