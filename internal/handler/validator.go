package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cadencehq/cadence-server/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validations for game enums
	_ = v.RegisterValidation("slottype", validateSlotType)
	_ = v.RegisterValidation("jobtype", validateJobType)
	_ = v.RegisterValidation("housingtype", validateHousingType)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner error messages.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "slottype":
			errs[field] = "Invalid slot type"
		case "jobtype":
			errs[field] = "Invalid job type"
		case "housingtype":
			errs[field] = "Invalid housing type"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateSlotType(fl validator.FieldLevel) bool {
	switch domain.SlotType(fl.Field().String()) {
	case domain.SlotPrimaryFocus, domain.SlotFreeTime:
		return true
	}
	return false
}

func validateJobType(fl validator.FieldLevel) bool {
	return domain.JobType(fl.Field().String()).Valid()
}

func validateHousingType(fl validator.FieldLevel) bool {
	return domain.HousingType(fl.Field().String()).Valid()
}
