package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "flamesblue/pkg/errors"
	"flamesblue/pkg/logger"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v FieldError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type FieldErrors []FieldError

func (v FieldErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields returns the names of the failing fields, in order.
func (v FieldErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}
	return fields
}

// AppError converts the failures into the 422 response error.
func (v FieldErrors) AppError() *apperrors.AppError {
	return apperrors.Validation("Validation failed", map[string]any{"errors": []FieldError(v)})
}

// RecordValidator checks records and request bodies against their struct
// tags. Field names in errors are the JSON names clients sent.
type RecordValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRecordValidator(log *logger.Logger) *RecordValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		log.Fatal("Failed to register 'notblank' validator", "error", err)
	}

	log.Info("Record validator initialized successfully")

	return &RecordValidator{
		validate: v,
		logger:   log,
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate returns nil, FieldErrors, or an unexpected validator error
// (for example when record is not a struct).
func (v *RecordValidator) Validate(record any) error {
	if err := v.validate.Struct(record); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

// Check is Validate mapped to an AppError ready for the HTTP layer.
func (v *RecordValidator) Check(record any) error {
	err := v.Validate(record)
	if err == nil {
		return nil
	}

	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		v.logger.Debug("Record validation failed", "fields", fieldErrs.Fields())
		return fieldErrs.AppError()
	}
	return apperrors.Internal("Failed to validate record", err)
}

func translateValidationErrors(errs validator.ValidationErrors) FieldErrors {
	var fieldErrors FieldErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required", "notblank":
			message = fmt.Sprintf("%s is required", err.Field())
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
		case "len":
			message = fmt.Sprintf("%s must be exactly %s characters long", err.Field(), err.Param())
		case "numeric":
			message = fmt.Sprintf("%s must contain digits only", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return fieldErrors
}
