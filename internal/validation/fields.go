package validation

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	fieldValidator     *validator.Validate
	fieldValidatorOnce sync.Once
)

func engine() *validator.Validate {
	fieldValidatorOnce.Do(func() {
		fieldValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	return fieldValidator
}

// RequiredField fails with MissingParamError when the field is absent, null or an empty string.
func RequiredField(field string) Validator {
	return Func(func(input map[string]any) error {
		value, ok := input[field]
		if !ok || value == nil {
			return &MissingParamError{Field: field}
		}
		if s, isString := value.(string); isString && s == "" {
			return &MissingParamError{Field: field}
		}

		return nil
	})
}

// CompareFields fails with InvalidParamError naming fieldToCompare when the two values differ.
// Values are compared exactly, without trimming or case folding.
func CompareFields(field, fieldToCompare string) Validator {
	return Func(func(input map[string]any) error {
		if !reflect.DeepEqual(input[field], input[fieldToCompare]) {
			return &InvalidParamError{Field: fieldToCompare}
		}

		return nil
	})
}

// EmailField fails with InvalidParamError when the field is present but is not an email address.
// Absence is left to RequiredField.
func EmailField(field string) Validator {
	return Func(func(input map[string]any) error {
		value, ok := input[field]
		if !ok || value == nil {
			return nil
		}

		s, isString := value.(string)
		if !isString || engine().Var(s, "required,email") != nil {
			return &InvalidParamError{Field: field}
		}

		return nil
	})
}

// MaxBytesField fails with InvalidParamError when the field is a string longer than limit bytes.
// Other types and absence are left to the remaining validators.
func MaxBytesField(field string, limit int) Validator {
	return Func(func(input map[string]any) error {
		if s, isString := input[field].(string); isString && len(s) > limit {
			return &InvalidParamError{Field: field}
		}

		return nil
	})
}
