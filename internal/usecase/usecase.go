package usecase

import (
	"context"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/google/uuid"
)

type SaleUC interface {
	CreateSale(ctx context.Context, req *CreateSaleReq) (*domain.Sale, error)
	GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
}
