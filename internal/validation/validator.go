package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-view/internal/filter"
	"finance-view/internal/formatting"
	"finance-view/internal/models"
	"finance-view/internal/paginator"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("txn_type", validateTransactionType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("us_date", validateDate)
	_ = v.RegisterValidation("month_year", validateMonthYear)
	_ = v.RegisterValidation("date_filter", validateDateFilter)
	_ = v.RegisterValidation("type_filter", validateTypeFilter)
	_ = v.RegisterValidation("page_size", validatePageSize)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field name to message pairs.
// It returns nil for errors that are not validation errors.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	case "txn_type":
		return "must be expense or income"
	case "positive_amount":
		return "must be a positive amount"
	case "us_date":
		return "must be a date in MM/DD/YYYY format"
	case "month_year":
		return "must be a month in MM/YYYY format"
	case "date_filter":
		return "must be one of all, 30, 90, 180, 365, ytd, custom"
	case "type_filter":
		return "must be one of all, expense, income"
	case "page_size":
		return "must be a positive number or all"
	default:
		return "is invalid"
	}
}

// validateTransactionType accepts expense and income, case-insensitively
func validateTransactionType(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case models.TransactionTypeExpense, models.TransactionTypeIncome:
		return true
	default:
		return false
	}
}

// validatePositiveAmount validates that an amount is greater than 0. Strings are
// parsed as currency input.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String:
		amount, err := formatting.ParseCurrency(fl.Field().String())
		return err == nil && amount.IsPositive()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

func validateDate(fl validator.FieldLevel) bool {
	_, ok := formatting.ParseDateIn(strings.TrimSpace(fl.Field().String()), time.UTC)
	return ok
}

func validateMonthYear(fl validator.FieldLevel) bool {
	_, err := formatting.ParseMonthYear(strings.TrimSpace(fl.Field().String()), time.UTC)
	return err == nil
}

func validateDateFilter(fl validator.FieldLevel) bool {
	return filter.IsValidDateFilter(fl.Field().String())
}

func validateTypeFilter(fl validator.FieldLevel) bool {
	return filter.IsValidTypeFilter(fl.Field().String())
}

func validatePageSize(fl validator.FieldLevel) bool {
	_, err := paginator.ParsePageSize(fl.Field().String())
	return err == nil
}
