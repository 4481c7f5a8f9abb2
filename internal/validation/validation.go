// Package validation checks request payloads against their `validate` struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// Password strength thresholds.
const (
	MinPasswordLength    = 8
	MinPasswordLowercase = 1
	MinPasswordUppercase = 1
	MinPasswordNumbers   = 1
	MinPasswordSymbols   = 1
)

const passwordSymbols = "-#!$@£%^&*()_+|~=`{}[]:\";'<>?,./\\ "

// ValidationError lists one message per failing field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks v and returns a *ValidationError when any rule fails.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Messages = append(out.Messages, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be an email"
	case "strongpassword":
		return field + " is not strong enough"
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

// IsStrongPassword reports whether s meets the length and character-class
// thresholds above. Letter and digit classes are ASCII only.
func IsStrongPassword(s string) bool {
	var length, lower, upper, digits, symbols int
	for _, r := range s {
		length++
		switch {
		case 'a' <= r && r <= 'z':
			lower++
		case 'A' <= r && r <= 'Z':
			upper++
		case '0' <= r && r <= '9':
			digits++
		case strings.ContainsRune(passwordSymbols, r):
			symbols++
		}
	}
	return length >= MinPasswordLength &&
		lower >= MinPasswordLowercase &&
		upper >= MinPasswordUppercase &&
		digits >= MinPasswordNumbers &&
		symbols >= MinPasswordSymbols
}
