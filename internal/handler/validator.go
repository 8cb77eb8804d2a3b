package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/NutriFind_Go/internal/domain"
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

	_ = v.RegisterValidation("diet", validateDiet)
	_ = v.RegisterValidation("intolerance", validateIntolerance)

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

// FormatValidationError formats validation errors into a field → message map
// without leaking internal struct names
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
		case "diet":
			errs[field] = "Unknown diet"
		case "intolerance":
			errs[field] = "Unknown intolerance"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or more", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be %s or less", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidDiets defines the diets the catalog understands
var ValidDiets = map[string]bool{
	domain.DietVegetarian:  true,
	domain.DietVegan:       true,
	domain.DietGlutenFree:  true,
	domain.DietKeto:        true,
	domain.DietPescetarian: true,
	domain.DietPaleo:       true,
	domain.DietPrimal:      true,
	domain.DietWhole30:     true,
}

// ValidIntolerances defines the intolerances the catalog understands
var ValidIntolerances = map[string]bool{
	domain.IntoleranceDairy:     true,
	domain.IntoleranceEgg:       true,
	domain.IntoleranceGluten:    true,
	domain.IntoleranceGrain:     true,
	domain.IntolerancePeanut:    true,
	domain.IntoleranceSeafood:   true,
	domain.IntoleranceSesame:    true,
	domain.IntoleranceShellfish: true,
	domain.IntoleranceSoy:       true,
	domain.IntoleranceTreeNut:   true,
	domain.IntoleranceWheat:     true,
}

// Empty values are allowed; required handles presence.
func validateDiet(fl validator.FieldLevel) bool {
	diet := strings.TrimSpace(fl.Field().String())
	if diet == "" {
		return true
	}
	return ValidDiets[strings.ToLower(diet)]
}

func validateIntolerance(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return ValidIntolerances[strings.ToLower(value)]
}
