package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// エラーのフィールド名はJSONキーで返す
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate は構造体タグに基づいて値を検証し、最初の違反をValidationErrorとして返す。
func Validate(s any) error {
	return toValidationError(validate.Struct(s))
}

// ValidateFields はfieldsに挙げたフィールドだけを検証する。フィールドはGoの名前で指定する。
func ValidateFields(s any, fields ...string) error {
	return toValidationError(validate.StructPartial(s, fields...))
}

func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return NewValidationError(fe.Field(), causeFor(fe))
}

func causeFor(fe validator.FieldError) error {
	switch fe.Tag() {
	case "notblank":
		return ErrEmptyTitle
	case "datetime":
		return ErrInvalidDate
	case "required":
		return fmt.Errorf("missing required value %q", fe.Field())
	}
	switch fe.Field() {
	case "priority":
		return fmt.Errorf("%w: %v", ErrInvalidPriority, fe.Value())
	case "progress":
		return ErrInvalidProgress
	}
	return fmt.Errorf("failed on %q rule", fe.Tag())
}
