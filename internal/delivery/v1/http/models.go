package http

import (
	"time"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/usecase"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSaleRequest — тело запроса POST /api/v1/sales.
type CreateSaleRequest struct {
	SaleDate        time.Time         `json:"saleDate"`
	Customer        *EntityRefRequest `json:"customer"`
	Branch          *EntityRefRequest `json:"branch"`
	Products        []SaleLineRequest `json:"products"`
	TotalSaleAmount decimal.Decimal   `json:"totalSaleAmount"`
}

// EntityRefRequest — ссылка на покупателя или филиал.
type EntityRefRequest struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// SaleLineRequest — позиция продажи в запросе.
type SaleLineRequest struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Quantities int             `json:"quantities"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// SaleResponse — представление продажи в ответах API.
type SaleResponse struct {
	ID              uuid.UUID          `json:"id"`
	SaleDate        time.Time          `json:"saleDate"`
	Customer        EntityRefResponse  `json:"customer"`
	Branch          EntityRefResponse  `json:"branch"`
	Lines           []SaleLineResponse `json:"lines"`
	TotalSaleAmount decimal.Decimal    `json:"totalSaleAmount"`
	IsCancelled     bool               `json:"isCancelled"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
}

type EntityRefResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SaleLineResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// toCreateSaleReq переводит тело запроса во входную модель usecase-слоя.
func toCreateSaleReq(req *CreateSaleRequest) *usecase.CreateSaleReq {
	var customer *usecase.CustomerRef
	if req.Customer != nil {
		customer = usecase.NewCustomerRef(req.Customer.ID, req.Customer.Name)
	}

	var branch *usecase.BranchRef
	if req.Branch != nil {
		branch = usecase.NewBranchRef(req.Branch.ID, req.Branch.Name)
	}

	products := make([]usecase.ProductLineReq, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, usecase.NewProductLineReq(p.ID, p.Name, p.Quantities, p.UnitPrice))
	}

	return usecase.NewCreateSaleReq(req.SaleDate, customer, branch, products, req.TotalSaleAmount)
}

// toSaleResponse переводит доменную продажу в представление API.
func toSaleResponse(sale *domain.Sale) *SaleResponse {
	lines := make([]SaleLineResponse, 0, len(sale.Lines))
	for _, line := range sale.Lines {
		lines = append(lines, SaleLineResponse{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.UnitPrice,
			Discount:    line.Discount,
			LineTotal:   line.LineTotal,
		})
	}

	return &SaleResponse{
		ID:              sale.ID,
		SaleDate:        sale.SaleDate,
		Customer:        EntityRefResponse{ID: sale.Customer.ID, Name: sale.Customer.Name},
		Branch:          EntityRefResponse{ID: sale.Branch.ID, Name: sale.Branch.Name},
		Lines:           lines,
		TotalSaleAmount: sale.TotalSaleAmount,
		IsCancelled:     sale.IsCancelled,
		Status:          string(sale.Status),
		CreatedAt:       sale.CreatedAt,
	}
}
