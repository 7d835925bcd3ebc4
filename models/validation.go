package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"
	apiError "github.com/techagentng/bookxchange/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateWhiteSpaces(data interface{}) error {
	if err := conform.Strings(data); err != nil {
		return apiError.Validation(err.Error())
	}
	return nil
}

// translateError turns validator output into the single notice shown to the user.
// A missing field always wins over the other failures.
func translateError(err error, required *apiError.Error) error {
	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apiError.ErrBadRequest
	}
	for _, tag := range []string{"required", "eqfield", "email", "max"} {
		for _, e := range validatorErrs {
			if e.Tag() != tag {
				continue
			}
			switch tag {
			case "required":
				return required
			case "eqfield":
				return apiError.ErrPasswordMismatch
			case "email":
				return apiError.ErrInvalidEmail
			case "max":
				return apiError.Validation(fmt.Sprintf("%s must be at most %s characters.", label(e.Field()), e.Param()))
			}
		}
	}
	return apiError.Validation(fmt.Sprintf("%s is invalid.", label(validatorErrs[0].Field())))
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
