// Package validator adapts go-playground/validator to echo. Every failed field
// becomes one {msg, param} entry. The message comes from the field's `msg_<rule>`
// tag for the failed rule, falling back to its `msg` tag.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	domainerrors "devconnector/internal/domain/errors"
	"devconnector/internal/errors"

	"github.com/go-playground/validator/v10"
)

// MessageTag names the struct tag holding the client facing message of a field.
const MessageTag = "msg"

// maxBytesTag caps the encoded length of a string, for limits such as bcrypt's
// 72 byte input that max (which counts runes) cannot express.
const maxBytesTag = "maxbytes"

type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation(maxBytesTag, maxBytes); err != nil {
		panic(errors.Wrapf(err, "register %s rule", maxBytesTag))
	}

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Rule violations come back as a
// *domainerrors.ValidationError, anything else is a programming error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	structType := reflect.TypeOf(i)
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Msg:   message(structType, fe),
			Param: fe.Field(),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func message(structType reflect.Type, fe validator.FieldError) string {
	if field, ok := structType.FieldByName(fe.StructField()); ok {
		if msg := field.Tag.Get(MessageTag + "_" + fe.Tag()); msg != "" {
			return msg
		}
		if msg := field.Tag.Get(MessageTag); msg != "" {
			return msg
		}
	}

	return fe.Field() + " is invalid"
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(errors.Wrapf(err, "%s param %q", maxBytesTag, fl.Param()))
	}

	return len(fl.Field().String()) <= limit
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}

	return name
}
