package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SpaceBot_Go/internal/domain"
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

	_ = v.RegisterValidation("side_kind", validateSideKind)
	_ = v.RegisterValidation("stock_order", validateStockOrder)

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

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lowercased field name, so struct names never leak to clients.
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
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "nefield":
			errs[field] = "Must differ from " + strings.ToLower(e.Param())
		case "side_kind":
			errs[field] = "Must be item or credits"
		case "stock_order":
			errs[field] = "Must be highest or lowest"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateSideKind(fl validator.FieldLevel) bool {
	switch domain.TradeSideKind(fl.Field().String()) {
	case domain.TradeSideItem, domain.TradeSideCredits:
		return true
	}
	return false
}

// Allow empty so the handler can apply its default order
func validateStockOrder(fl validator.FieldLevel) bool {
	switch domain.StockOrder(strings.ToLower(fl.Field().String())) {
	case "", domain.StockOrderHighest, domain.StockOrderLowest:
		return true
	}
	return false
}
