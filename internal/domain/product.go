package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product описывает позицию каталога. Справочная запись: количество и скидки
// к конкретной продаже относятся к SaleLine, а не к продукту.
type Product struct {
	ID        uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProduct(id uuid.UUID, name string, unitPrice decimal.Decimal) *Product {
	return &Product{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
	}
}
