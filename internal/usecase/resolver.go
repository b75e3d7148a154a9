package usecase

import (
	"context"
	"errors"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/google/uuid"
)

// EntityResolver приводит ссылки на покупателя, филиал и продукты к
// каноническим записям хранилища: находит запись по идентификатору либо
// создаёт новую. "Висячий" идентификатор ошибкой не считается — запись
// создаётся с данными из запроса, сохраняя присланный идентификатор.
// На каждую неразрешённую ссылку выполняется ровно одно создание.
type EntityResolver struct {
	customerRepo CustomerRepository
	branchRepo   BranchRepository
	productRepo  ProductRepository
}

func NewEntityResolver(
	customerRepo CustomerRepository,
	branchRepo BranchRepository,
	productRepo ProductRepository,
) *EntityResolver {
	return &EntityResolver{
		customerRepo: customerRepo,
		branchRepo:   branchRepo,
		productRepo:  productRepo,
	}
}

// ResolveCustomer возвращает каноническую запись покупателя и признак того,
// что запись была создана этим вызовом. Для найденной записи поля из
// запроса отбрасываются в пользу сохранённых значений.
func (r *EntityResolver) ResolveCustomer(ctx context.Context, ref *CustomerRef) (*domain.Customer, bool, error) {
	if ref == nil || ref.ID == uuid.Nil {
		created, err := r.customerRepo.Create(ctx, domain.NewCustomer(uuid.Nil, refCustomerName(ref)))
		return created, true, err
	}

	existing, err := r.customerRepo.GetByID(ctx, ref.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, e.ErrCustomerNotFound) {
		return nil, false, err
	}

	created, err := r.customerRepo.Create(ctx, domain.NewCustomer(ref.ID, ref.Name))
	return created, true, err
}

// ResolveBranch — см. ResolveCustomer.
func (r *EntityResolver) ResolveBranch(ctx context.Context, ref *BranchRef) (*domain.Branch, bool, error) {
	if ref == nil || ref.ID == uuid.Nil {
		created, err := r.branchRepo.Create(ctx, domain.NewBranch(uuid.Nil, refBranchName(ref)))
		return created, true, err
	}

	existing, err := r.branchRepo.GetByID(ctx, ref.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, e.ErrBranchNotFound) {
		return nil, false, err
	}

	created, err := r.branchRepo.Create(ctx, domain.NewBranch(ref.ID, ref.Name))
	return created, true, err
}

// ResolveProduct разрешает ссылку позиции продажи в запись каталога.
// Для существующего продукта выигрывает сохранённая цена, а не присланная.
func (r *EntityResolver) ResolveProduct(ctx context.Context, ref *ProductLineReq) (*domain.Product, bool, error) {
	if ref.ID == uuid.Nil {
		created, err := r.productRepo.Create(ctx, domain.NewProduct(uuid.Nil, ref.Name, ref.UnitPrice))
		return created, true, err
	}

	existing, err := r.productRepo.GetByID(ctx, ref.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, e.ErrProductNotFound) {
		return nil, false, err
	}

	created, err := r.productRepo.Create(ctx, domain.NewProduct(ref.ID, ref.Name, ref.UnitPrice))
	return created, true, err
}

func refCustomerName(ref *CustomerRef) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}

func refBranchName(ref *BranchRef) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}
