package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes a single request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a new Failure for a request whose fields did not pass validation.
// The message is the first field's message unless msg is set.
func Validation(msg string, fields ...FieldError) error {
	if msg == "" && len(fields) > 0 {
		msg = fields[0].Message
	}

	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Fields:  fields,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the field-level details of a validation failure, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	return GetCode(err) == http.StatusUnprocessableEntity
}
