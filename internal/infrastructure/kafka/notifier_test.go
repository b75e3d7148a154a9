package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type mockWriter struct {
	key   []byte
	value []byte
	err   error
}

func (w *mockWriter) WriteMessage(ctx context.Context, key, value []byte) error {
	w.key = key
	w.value = value
	return w.err
}

func notifierSale() *domain.Sale {
	product := domain.NewProduct(uuid.New(), "Keyboard", decimal.NewFromInt(100))
	line := domain.NewSaleLine(product, 5)
	line.ApplyPricing()

	sale := domain.NewSale(
		time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC),
		domain.NewCustomer(uuid.New(), "John Smith"),
		domain.NewBranch(uuid.New(), "Downtown"),
		[]domain.SaleLine{line},
	)
	sale.ID = uuid.New()
	sale.RecalculateTotal()
	return sale
}

func TestSaleCreatedNotifier(t *testing.T) {
	eventTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("stamps event timestamp from clock", func(t *testing.T) {
		writer := &mockWriter{}
		n := NewSaleCreatedNotifier(writer, clock.NewMockClock(eventTime))
		sale := notifierSale()

		require.NoError(t, n.SaleCreated(context.Background(), sale))

		var event saleCreatedEvent
		require.NoError(t, json.Unmarshal(writer.value, &event))
		require.Equal(t, eventTime.UnixNano(), event.EventTimestamp)
	})

	t.Run("keys message by sale id", func(t *testing.T) {
		writer := &mockWriter{}
		n := NewSaleCreatedNotifier(writer, clock.NewMockClock(eventTime))
		sale := notifierSale()

		require.NoError(t, n.SaleCreated(context.Background(), sale))
		require.Equal(t, sale.ID.String(), string(writer.key))
	})

	t.Run("serializes sale fields", func(t *testing.T) {
		writer := &mockWriter{}
		n := NewSaleCreatedNotifier(writer, clock.NewMockClock(eventTime))
		sale := notifierSale()

		require.NoError(t, n.SaleCreated(context.Background(), sale))

		var event saleCreatedEvent
		require.NoError(t, json.Unmarshal(writer.value, &event))
		require.Equal(t, sale.ID, event.SaleID)
		require.Equal(t, "John Smith", event.CustomerName)
		require.Equal(t, "Downtown", event.BranchName)
		require.Len(t, event.Lines, 1)
		require.Equal(t, "Keyboard", event.Lines[0].ProductName)
		require.True(t, event.TotalSaleAmount.Equal(sale.TotalSaleAmount))
		require.NotEmpty(t, event.EventID)
	})

	t.Run("propagates writer error", func(t *testing.T) {
		writer := &mockWriter{err: errors.New("broker unavailable")}
		n := NewSaleCreatedNotifier(writer, clock.NewMockClock(eventTime))

		require.Error(t, n.SaleCreated(context.Background(), notifierSale()))
	})
}
