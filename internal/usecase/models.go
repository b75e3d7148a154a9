package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SALE USECASE

// CreateSaleReq — запрос на создание продажи.
// Идентификаторы сущностей могут быть пустыми (uuid.Nil) — такие ссылки
// разрешаются в новые записи.
type CreateSaleReq struct {
	SaleDate        time.Time
	Customer        *CustomerRef
	Branch          *BranchRef
	Products        []ProductLineReq
	TotalSaleAmount decimal.Decimal // граничное значение клиента, итог пересчитывается на сервере
}

// CustomerRef — ссылка на покупателя: существующий идентификатор либо данные для создания.
type CustomerRef struct {
	ID   uuid.UUID
	Name string
}

// BranchRef — ссылка на филиал.
type BranchRef struct {
	ID   uuid.UUID
	Name string
}

// ProductLineReq — одна позиция продажи: ссылка на продукт каталога плюс
// количество и цена, заявленные клиентом.
type ProductLineReq struct {
	ID         uuid.UUID
	Name       string
	Quantities int
	UnitPrice  decimal.Decimal
}

// MAPPERS

func NewCreateSaleReq(saleDate time.Time, customer *CustomerRef, branch *BranchRef,
	products []ProductLineReq, totalSaleAmount decimal.Decimal) *CreateSaleReq {
	return &CreateSaleReq{
		SaleDate:        saleDate,
		Customer:        customer,
		Branch:          branch,
		Products:        products,
		TotalSaleAmount: totalSaleAmount,
	}
}

func NewCustomerRef(id uuid.UUID, name string) *CustomerRef {
	return &CustomerRef{ID: id, Name: name}
}

func NewBranchRef(id uuid.UUID, name string) *BranchRef {
	return &BranchRef{ID: id, Name: name}
}

func NewProductLineReq(id uuid.UUID, name string, quantities int, unitPrice decimal.Decimal) ProductLineReq {
	return ProductLineReq{
		ID:         id,
		Name:       name,
		Quantities: quantities,
		UnitPrice:  unitPrice,
	}
}
