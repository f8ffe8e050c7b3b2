package validator

import (
	val "github.com/go-playground/validator/v10"

	"flightdesk/shared/datefmt"
	"flightdesk/shared/failure"
)

var validate *val.Validate

func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return datefmt.ValidDate(value)
}

func registerClockValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return datefmt.ValidClock(value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("flightdate", registerDateValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("flightclock", registerClockValidation); err != nil {
		panic(err)
	}
}

// ValidateStruct performs validation on the struct using the validator
// package. If the struct is invalid according to the validation rules, a
// validation failure is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.ValidationFromString(msg) //nolint:wrapcheck
	}

	return nil
}
