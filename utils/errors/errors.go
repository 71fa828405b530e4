package errors

import "github.com/muhammadheryan/rare-treasures/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
	details []string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Detail is the value rendered under "detail" in error responses: the field
// messages when present, otherwise the error text.
func (c CustomError) Detail() any {
	if len(c.details) > 0 {
		return c.details
	}
	return c.Error()
}

// Is matches on error type only, so callers can compare against
// SetCustomError(t) regardless of attached message or details.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

// WithMessage replaces the default message of the error type.
func (c CustomError) WithMessage(msg string) CustomError {
	c.message = msg
	return c
}

// WithDetails attaches one message per offending input field.
func (c CustomError) WithDetails(details ...string) CustomError {
	c.details = append([]string(nil), details...)
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}
