package validator

import (
	"encoding/json"
	"fmt"
	"hoteldash/shared/failure"
	"io"
	"reflect"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

type selfValidator interface {
	Validate() error
}

func registerDateOnlyValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(time.DateOnly, str)

	return err == nil
}

func registerSelfValidation(field val.FieldLevel) bool {
	if field.Field().CanInterface() {
		if v, ok := field.Field().Interface().(selfValidator); ok {
			return v.Validate() == nil
		}
	}

	method := field.Field().MethodByName("Validate")
	if !method.IsValid() {
		return false
	}

	result := method.Call([]reflect.Value{})

	return len(result) == 1 && result[0].IsNil()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("selfvalid", registerSelfValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateonly", registerDateOnlyValidation)
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
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
