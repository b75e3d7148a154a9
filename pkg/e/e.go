package e

import (
	"fmt"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки поиска сущностей
	ErrSaleNotFound     = fmt.Errorf("sale not found")
	ErrCustomerNotFound = fmt.Errorf("customer not found")
	ErrBranchNotFound   = fmt.Errorf("branch not found")
	ErrProductNotFound  = fmt.Errorf("product not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidSaleID    = fmt.Errorf("invalid sale id")
	ErrEmptyRequestBody = fmt.Errorf("empty request body")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Переменные окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// FieldError — одно нарушение правила валидации конкретного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError собирает все нарушения правил валидации за один проход.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// ProductLimitError — превышение лимита количества по одной или нескольким позициям.
// Содержит имена всех продуктов-нарушителей, а не только первого.
type ProductLimitError struct {
	Products []string
}

func NewProductLimitError(products []string) *ProductLimitError {
	return &ProductLimitError{Products: products}
}

func (p *ProductLimitError) Error() string {
	return fmt.Sprintf(
		"the product exceeds the maximum limit of 20 items per product: %s",
		strings.Join(p.Products, ", "),
	)
}
