package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"resto/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerNotBlankValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return true
	}

	return strings.TrimSpace(str) != ""
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return failure.Validation("", failure.FieldError{ //nolint:wrapcheck
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type.String()),
			})
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		fields := fieldErrors(err)
		if len(fields) == 0 {
			return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
		}

		return failure.Validation("", fields...) //nolint:wrapcheck
	}

	return nil
}
