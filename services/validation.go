package services

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Shared validator, built once.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Report form field names instead of Go field names
		validatorInst.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validatorInst
}

// FieldError is a validation failure on one form field
type FieldError struct {
	Field string // form field name
	Tag   string // failed rule, e.g. "required", "email", "max"
	Param string // rule parameter, e.g. "100" for max=100
}

// ValidateStruct validates v and returns one FieldError per failing field.
// Non-validation errors (e.g. a nil pointer) are returned as err.
func ValidateStruct(v any) ([]FieldError, error) {
	err := getValidator().Struct(v)
	if err == nil {
		return nil, nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out, nil
}
