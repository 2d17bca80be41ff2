package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator with custom rules
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("provider", validateProvider)
	_ = v.RegisterValidation("opstatus", validateOperatorStatus)
	_ = v.RegisterValidation("blocktype", validateBlockType)
	_ = v.RegisterValidation("sortby", validateSortBy)

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
// This prevents leaking internal struct names.
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
		case "provider":
			errs[field] = "Invalid provider"
		case "opstatus":
			errs[field] = "Invalid status"
		case "blocktype":
			errs[field] = "Invalid block type"
		case "sortby":
			errs[field] = "Invalid sort order"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or more", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be %s or less", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Empty values pass; pair with 'required' where the field is mandatory.
func validateProvider(fl validator.FieldLevel) bool {
	provider := fl.Field().String()
	if provider == "" {
		return true
	}
	return domain.ValidProviders[strings.ToLower(provider)]
}

func validateOperatorStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	if status == "" {
		return true
	}
	return domain.IsValidOperatorStatus(strings.ToLower(status))
}

func validateBlockType(fl validator.FieldLevel) bool {
	blockType := fl.Field().String()
	if blockType == "" {
		return true
	}
	return domain.IsValidBlockType(strings.ToLower(blockType))
}

func validateSortBy(fl validator.FieldLevel) bool {
	return domain.IsValidSortBy(fl.Field().String())
}
