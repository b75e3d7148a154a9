package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
)

const (
	nameMinLen = 3
	nameMaxLen = 200
)

var minSaleDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

// SaleValidator проверяет структурную и бизнес-корректность запроса на
// создание продажи. Единственная точка валидации для всех входов:
// нарушения собираются за один проход, без прерывания на первом.
type SaleValidator struct {
	clock clock.Clock
}

func NewSaleValidator(clock clock.Clock) *SaleValidator {
	return &SaleValidator{clock: clock}
}

// Validate возвращает nil, если запрос валиден, иначе *e.ValidationError
// со всеми нарушенными правилами. Побочных эффектов нет.
func (v *SaleValidator) Validate(req *CreateSaleReq) *e.ValidationError {
	var fields []e.FieldError

	fields = append(fields, v.validateDate(req.SaleDate)...)
	fields = append(fields, v.validateCustomer(req.Customer)...)
	fields = append(fields, v.validateBranch(req.Branch)...)
	fields = append(fields, v.validateTotal(req)...)
	fields = append(fields, v.validateProducts(req.Products)...)

	if len(fields) == 0 {
		return nil
	}

	return e.NewValidationError(fields)
}

func (v *SaleValidator) validateDate(date time.Time) []e.FieldError {
	const field = "SaleDate"

	if date.IsZero() {
		return []e.FieldError{{Field: field, Message: "The date is required."}}
	}

	var fields []e.FieldError
	if !date.After(minSaleDate) {
		fields = append(fields, e.FieldError{Field: field, Message: "The date must be after 01/01/1990."})
	}
	if date.After(v.clock.Now()) {
		fields = append(fields, e.FieldError{Field: field, Message: "The date cannot be in the future."})
	}

	return fields
}

func (v *SaleValidator) validateCustomer(customer *CustomerRef) []e.FieldError {
	if customer == nil {
		return []e.FieldError{{Field: "Customer", Message: "The Customer is required."}}
	}

	return validateName("Customer.Name", customer.Name)
}

func (v *SaleValidator) validateBranch(branch *BranchRef) []e.FieldError {
	if branch == nil {
		return []e.FieldError{{Field: "Branch", Message: "The Branch is required."}}
	}

	return validateName("Branch.Name", branch.Name)
}

// validateTotal проверяет присланную клиентом сумму на границе.
// Авторитетный итог всё равно пересчитывается по строкам после расчёта цен.
func (v *SaleValidator) validateTotal(req *CreateSaleReq) []e.FieldError {
	const field = "TotalSaleAmount"

	var fields []e.FieldError
	if req.TotalSaleAmount.IsZero() {
		fields = append(fields, e.FieldError{Field: field, Message: "The Total Sales Amount is required."})
	}
	if !req.TotalSaleAmount.IsPositive() {
		fields = append(fields, e.FieldError{Field: field, Message: "The Total Sales Amount must be positive."})
	}

	return fields
}

func (v *SaleValidator) validateProducts(products []ProductLineReq) []e.FieldError {
	if len(products) == 0 {
		return []e.FieldError{{Field: "Products", Message: "The product list cannot be empty."}}
	}

	var fields []e.FieldError
	for i, product := range products {
		prefix := fmt.Sprintf("Products[%d]", i)

		if strings.TrimSpace(product.Name) == "" {
			fields = append(fields, e.FieldError{Field: prefix + ".Name", Message: "Product Name is required."})
		}
		if product.Quantities <= 0 {
			fields = append(fields, e.FieldError{Field: prefix + ".Quantities", Message: "Product Quantities must be greater than zero."})
		}
		if !product.UnitPrice.IsPositive() {
			fields = append(fields, e.FieldError{Field: prefix + ".UnitPrice", Message: "Product Unit Price must be greater than zero."})
		}
	}

	return fields
}

func validateName(field, name string) []e.FieldError {
	if strings.TrimSpace(name) == "" {
		return []e.FieldError{{Field: field, Message: "The Name entered is invalid"}}
	}

	var fields []e.FieldError
	length := utf8.RuneCountInString(name)
	if length < nameMinLen {
		fields = append(fields, e.FieldError{Field: field, Message: "Name must be at least 3 characters long."})
	}
	if length > nameMaxLen {
		fields = append(fields, e.FieldError{Field: field, Message: "Name cannot be longer than 200 characters."})
	}

	return fields
}
