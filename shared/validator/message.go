package validator

import (
	"errors"
	"resto/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackMessage = "{field} is invalid"

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"notblank": "{field} must not be blank",
		"uuid":     "{field} must be a valid UUID",
		"alphanum": "{field} must contain only letters and digits",
	}
)

func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]failure.FieldError, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		param := valErr.Param()

		template, ok := messages[valErr.Tag()]
		if !ok {
			template = fallbackMessage
		}

		message := strings.NewReplacer("{field}", field, "{param}", param).Replace(template)

		fields = append(fields, failure.FieldError{Field: field, Message: message})
	}

	return fields
}
