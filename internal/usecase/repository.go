package usecase

import (
	"context"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/google/uuid"
)

// Репозитории возвращают сигнальные ошибки e.ErrXxxNotFound,
// когда запись отсутствует.

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Branch, error)
	GetByName(ctx context.Context, name string) (*domain.Branch, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
