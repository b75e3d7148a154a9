package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale — агрегат продажи: покупатель, филиал и строки продаж с итоговой суммой.
type Sale struct {
	ID              uuid.UUID
	SaleDate        time.Time
	Customer        *Customer
	Branch          *Branch
	Lines           []SaleLine
	TotalSaleAmount decimal.Decimal
	IsCancelled     bool
	Status          SaleStatus
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func NewSale(saleDate time.Time, customer *Customer, branch *Branch, lines []SaleLine) *Sale {
	return &Sale{
		SaleDate:        saleDate,
		Customer:        customer,
		Branch:          branch,
		Lines:           lines,
		TotalSaleAmount: decimal.Zero,
		Status:          SaleActive,
	}
}

// RecalculateTotal пересчитывает итоговую сумму продажи по строкам.
// Значение, присланное клиентом, всегда отбрасывается.
func (s *Sale) RecalculateTotal() {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.LineTotal)
	}
	s.TotalSaleAmount = total
}

// Activate переводит продажу в статус Active.
func (s *Sale) Activate(now time.Time) {
	s.Status = SaleActive
	s.UpdatedAt = &now
}

// Deactivate переводит продажу в статус Inactive.
func (s *Sale) Deactivate(now time.Time) {
	s.Status = SaleInactive
	s.UpdatedAt = &now
}

// Suspend переводит продажу в статус Suspended.
func (s *Sale) Suspend(now time.Time) {
	s.Status = SaleSuspended
	s.UpdatedAt = &now
}

// Cancel помечает продажу отменённой, статус при этом не меняется.
func (s *Sale) Cancel(now time.Time) {
	s.IsCancelled = true
	s.UpdatedAt = &now
}
