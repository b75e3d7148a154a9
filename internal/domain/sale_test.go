package domain

import (
	"testing"
	"time"

	guuid "github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newID(t *testing.T) guuid.UUID {
	t.Helper()
	return guuid.New()
}

func testSale(t *testing.T) *Sale {
	t.Helper()

	customer := NewCustomer(newID(t), "John Smith")
	branch := NewBranch(newID(t), "Downtown")
	product := NewProduct(newID(t), "Keyboard", decimal.NewFromInt(100))

	return NewSale(time.Now(), customer, branch, []SaleLine{NewSaleLine(product, 5)})
}

func TestNewSale(t *testing.T) {
	sale := testSale(t)

	require.Equal(t, SaleActive, sale.Status)
	require.False(t, sale.IsCancelled)
	require.True(t, sale.TotalSaleAmount.IsZero())
	require.Nil(t, sale.UpdatedAt)
}

func TestSaleRecalculateTotal(t *testing.T) {
	t.Run("sums line totals", func(t *testing.T) {
		sale := testSale(t)
		sale.Lines[0].ApplyPricing()

		sale.RecalculateTotal()

		require.True(t, decimal.NewFromInt(450).Equal(sale.TotalSaleAmount))
	})

	t.Run("discards a preset total", func(t *testing.T) {
		sale := testSale(t)
		sale.Lines[0].ApplyPricing()
		sale.TotalSaleAmount = decimal.NewFromInt(999)

		sale.RecalculateTotal()

		require.True(t, decimal.NewFromInt(450).Equal(sale.TotalSaleAmount))
	})
}

func TestSaleStatusTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("deactivate", func(t *testing.T) {
		sale := testSale(t)
		sale.Deactivate(now)

		require.Equal(t, SaleInactive, sale.Status)
		require.Equal(t, now, *sale.UpdatedAt)
	})

	t.Run("suspend", func(t *testing.T) {
		sale := testSale(t)
		sale.Suspend(now)

		require.Equal(t, SaleSuspended, sale.Status)
		require.Equal(t, now, *sale.UpdatedAt)
	})

	t.Run("activate after suspend", func(t *testing.T) {
		sale := testSale(t)
		sale.Suspend(now)
		later := now.Add(time.Hour)

		sale.Activate(later)

		require.Equal(t, SaleActive, sale.Status)
		require.Equal(t, later, *sale.UpdatedAt)
	})

	t.Run("cancel keeps status", func(t *testing.T) {
		sale := testSale(t)
		sale.Cancel(now)

		require.True(t, sale.IsCancelled)
		require.Equal(t, SaleActive, sale.Status)
		require.Equal(t, now, *sale.UpdatedAt)
	})
}
