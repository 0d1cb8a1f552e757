package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagNoteColor is the custom tag for "#RRGGBB" / "#RRGGBBAA" colors.
const TagNoteColor = "notecolor"

var noteColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// RequestValidator validates request DTOs by their `validate` struct tags.
// Field names in the reported errors are the JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with JSON tag names and
// the [TagNoteColor] tag registered.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// the regexp is compiled once above, registration cannot fail
	_ = v.RegisterValidation(TagNoteColor, func(fl validator.FieldLevel) bool {
		return noteColorRe.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj, a struct or pointer to struct. When fields are
// given only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &FieldErrors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), formatFieldError(fe))
	}
	return out
}

// IsValidColor reports whether color is "#RRGGBB" or "#RRGGBBAA".
func IsValidColor(color string) bool {
	return noteColorRe.MatchString(color)
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case TagNoteColor:
		return "Enter a valid hex color (#RRGGBB or #RRGGBBAA)."
	case "min":
		if fe.Kind() == reflect.String {
			if param == "1" {
				return "This field may not be blank."
			}
			return "Ensure this field has at least " + param + " characters."
		}
		return "Ensure this value is greater than or equal to " + param + "."
	case "max":
		if fe.Kind() == reflect.String {
			return "Ensure this field has no more than " + param + " characters."
		}
		return "Ensure this value is less than or equal to " + param + "."
	case "gt":
		return "Ensure this value is greater than " + param + "."
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}
