package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

// CustomValidator はEcho用のカスタムバリデーターです
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator は新しいCustomValidatorを作成します
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// カスタムバリデーション登録
	v.RegisterValidation("currency", validateCurrency)
	v.RegisterValidation("country", validateCountry)
	v.RegisterValidation("symbol", validateSymbol)

	return &CustomValidator{validator: v}
}

// Validate はリクエストを検証します
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return cv.formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors はバリデーションエラーをフォーマットします
func (cv *CustomValidator) formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidationError(err.Error(), nil)
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   toSnakeCase(e.Field()),
			Message: getValidationMessage(e),
		})
	}

	return apperror.NewValidationError("validation failed", details)
}

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// validateCurrency はISO 4217通貨コードのバリデーション
func validateCurrency(fl validator.FieldLevel) bool {
	return currencyPattern.MatchString(fl.Field().String())
}

var countryPattern = regexp.MustCompile(`^[A-Z]{2}$`)

// validateCountry はISO 3166-1 alpha-2国コードのバリデーション
func validateCountry(fl validator.FieldLevel) bool {
	return countryPattern.MatchString(fl.Field().String())
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.\-]{1,20}$`)

// validateSymbol は資産シンボルのバリデーション
func validateSymbol(fl validator.FieldLevel) bool {
	return symbolPattern.MatchString(fl.Field().String())
}

// getValidationMessage はバリデーションエラーメッセージを返します
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "uuid":
		return "must be a valid UUID"
	case "currency":
		return "must be a 3-letter ISO 4217 currency code"
	case "country":
		return "must be a 2-letter ISO 3166-1 country code"
	case "symbol":
		return "must be a valid asset symbol"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "validation failed"
	}
}

// toSnakeCase はPascalCase/camelCaseをsnake_caseに変換します
func toSnakeCase(str string) string {
	var result []rune
	for i, r := range str {
		if i > 0 && 'A' <= r && r <= 'Z' {
			result = append(result, '_')
		}
		result = append(result, r)
	}
	return strings.ToLower(string(result))
}
