package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// BranchModel представляет запись таблицы branches в PostgreSQL.
type BranchModel struct {
	ID        uuid.UUID  `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt *time.Time      `db:"updated_at"`
}

// SaleModel представляет запись таблицы sales в PostgreSQL.
type SaleModel struct {
	ID              uuid.UUID       `db:"id"`
	SaleDate        time.Time       `db:"sale_date"`
	CustomerID      uuid.UUID       `db:"customer_id"`
	BranchID        uuid.UUID       `db:"branch_id"`
	TotalSaleAmount decimal.Decimal `db:"total_sale_amount"`
	IsCancelled     bool            `db:"is_cancelled"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
}

// SaleLineModel представляет запись таблицы sale_lines в PostgreSQL.
// line_no хранит позицию строки в исходном запросе.
type SaleLineModel struct {
	SaleID    uuid.UUID       `db:"sale_id"`
	LineNo    int             `db:"line_no"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Discount  decimal.Decimal `db:"discount"`
	LineTotal decimal.Decimal `db:"line_total"`
}
