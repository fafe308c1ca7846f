package errors

// ErrorBuilder builds an InternalError fluently. The terminal Mark call
// attaches the error code and returns the built error.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder with an internal developer-facing message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{Message: message},
	}
}

// WithError starts a builder wrapping an underlying cause.
func WithError(cause error) *ErrorBuilder {
	return &ErrorBuilder{
		err: &InternalError{Cause: cause},
	}
}

// WithMessage sets the internal message.
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	b.err.Message = message
	return b
}

// WithHint sets the user-facing hint included in API responses.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.Hint = hint
	return b
}

// WithReportableDetails attaches safe structured fields to the error.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.err.ReportableDetails = details
	return b
}

// Mark attaches the error code and returns the built error.
func (b *ErrorBuilder) Mark(code error) error {
	b.err.Code = code
	return b.err
}
