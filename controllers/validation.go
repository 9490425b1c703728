package controllers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// RegisterValidators adds the site's field rules to gin's validator and
// makes it report fields by their JSON names. Call once before serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator is not go-playground/validator")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("lenientphone", func(fl validator.FieldLevel) bool {
		return utils.ValidatePhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("siteemail", func(fl validator.FieldLevel) bool {
		return utils.ValidateEmail(fl.Field().String())
	})
}

var tagMessages = map[string]string{
	"required":     "is required",
	"lenientphone": "is not a valid phone number",
	"siteemail":    "is not a valid email address",
	"oneof":        "is not an allowed value",
	"min":          "is too small",
	"max":          "is too large",
}

// bindingErrors converts validator failures into field errors. ok is false
// for anything else (malformed JSON, wrong types).
func bindingErrors(err error) (services.ValidationErrors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := services.ValidationErrors{}
	for _, fe := range verrs {
		kind := services.InvalidFormat
		if fe.Tag() == "required" {
			kind = services.MissingField
		}
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		out[fe.Field()] = services.FieldError{Kind: kind, Message: fieldLabel(fe.Field()) + " " + msg}
	}
	return out, true
}

// fieldLabel turns "serviceInterest" into "Service interest".
func fieldLabel(field string) string {
	var sb strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			sb.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			sb.WriteByte(' ')
			sb.WriteString(strings.ToLower(string(r)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
