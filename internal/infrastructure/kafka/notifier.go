package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type messageWriter interface {
	WriteMessage(ctx context.Context, key, value []byte) error
}

// SaleCreatedNotifier публикует событие SaleCreated с публичными полями
// сохранённой продажи. Реализует usecase.SaleEventPublisher.
type SaleCreatedNotifier struct {
	writer messageWriter
	clock  clock.Clock
}

func NewSaleCreatedNotifier(writer messageWriter, clock clock.Clock) *SaleCreatedNotifier {
	return &SaleCreatedNotifier{writer: writer, clock: clock}
}

type saleCreatedEvent struct {
	EventID         string          `json:"event_id"`
	EventTimestamp  int64           `json:"event_timestamp"`
	SaleID          uuid.UUID       `json:"sale_id"`
	SaleDate        time.Time       `json:"sale_date"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	BranchID        uuid.UUID       `json:"branch_id"`
	BranchName      string          `json:"branch_name"`
	Lines           []saleLineItem  `json:"lines"`
	TotalSaleAmount decimal.Decimal `json:"total_sale_amount"`
	Status          string          `json:"status"`
}

type saleLineItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Discount    decimal.Decimal `json:"discount"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// SaleCreated сериализует продажу в JSON и отправляет с ключом по
// идентификатору продажи, сохраняя порядок событий внутри одной продажи.
func (n *SaleCreatedNotifier) SaleCreated(ctx context.Context, sale *domain.Sale) error {
	lines := make([]saleLineItem, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, saleLineItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Discount:    line.Discount,
			LineTotal:   line.LineTotal,
		})
	}

	event := saleCreatedEvent{
		EventID:         uuid.NewString(),
		EventTimestamp:  n.clock.Now().UnixNano(),
		SaleID:          sale.ID,
		SaleDate:        sale.SaleDate,
		CustomerID:      sale.Customer.ID,
		CustomerName:    sale.Customer.Name,
		BranchID:        sale.Branch.ID,
		BranchName:      sale.Branch.Name,
		Lines:           lines,
		TotalSaleAmount: sale.TotalSaleAmount,
		Status:          string(sale.Status),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return n.writer.WriteMessage(ctx, []byte(sale.ID.String()), value)
}
