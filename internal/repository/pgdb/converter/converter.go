package converter

import (
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/google/uuid"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
type CustomerConverter interface {
	ToModel(entity *domain.Customer) *CustomerModel
	ToEntity(model *CustomerModel) *domain.Customer
}

// BranchConverter преобразует сущности Branch между domain и моделью PostgreSQL.
type BranchConverter interface {
	ToModel(entity *domain.Branch) *BranchModel
	ToEntity(model *BranchModel) *domain.Branch
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// SaleConverter преобразует сущности Sale между domain и моделями PostgreSQL.
// Строки продажи собираются отдельно, так как требуют связанных продуктов.
type SaleConverter interface {
	ToModel(entity *domain.Sale) *SaleModel
	ToEntity(model *SaleModel, customer *domain.Customer, branch *domain.Branch, lines []domain.SaleLine) *domain.Sale
	ToLineModel(saleID uuid.UUID, lineNo int, line *domain.SaleLine) *SaleLineModel
	ToLineEntity(model *SaleLineModel, product *domain.Product) domain.SaleLine
}

type CustomerConverterImpl struct{}

func (c *CustomerConverterImpl) ToModel(entity *domain.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Status:    string(entity.Status),
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (c *CustomerConverterImpl) ToEntity(model *CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Status:    domain.CustomerStatus(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type BranchConverterImpl struct{}

func (c *BranchConverterImpl) ToModel(entity *domain.Branch) *BranchModel {
	return &BranchModel{
		ID:        entity.ID,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (c *BranchConverterImpl) ToEntity(model *BranchModel) *domain.Branch {
	return &domain.Branch{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:        entity.ID,
		Name:      entity.Name,
		UnitPrice: entity.UnitPrice,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		UnitPrice: model.UnitPrice,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type SaleConverterImpl struct{}

func (c *SaleConverterImpl) ToModel(entity *domain.Sale) *SaleModel {
	return &SaleModel{
		ID:              entity.ID,
		SaleDate:        entity.SaleDate,
		CustomerID:      entity.Customer.ID,
		BranchID:        entity.Branch.ID,
		TotalSaleAmount: entity.TotalSaleAmount,
		IsCancelled:     entity.IsCancelled,
		Status:          string(entity.Status),
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (c *SaleConverterImpl) ToEntity(
	model *SaleModel,
	customer *domain.Customer,
	branch *domain.Branch,
	lines []domain.SaleLine,
) *domain.Sale {
	return &domain.Sale{
		ID:              model.ID,
		SaleDate:        model.SaleDate,
		Customer:        customer,
		Branch:          branch,
		Lines:           lines,
		TotalSaleAmount: model.TotalSaleAmount,
		IsCancelled:     model.IsCancelled,
		Status:          domain.SaleStatus(model.Status),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (c *SaleConverterImpl) ToLineModel(saleID uuid.UUID, lineNo int, line *domain.SaleLine) *SaleLineModel {
	return &SaleLineModel{
		SaleID:    saleID,
		LineNo:    lineNo,
		ProductID: line.Product.ID,
		Quantity:  line.Quantity,
		Discount:  line.Discount,
		LineTotal: line.LineTotal,
	}
}

func (c *SaleConverterImpl) ToLineEntity(model *SaleLineModel, product *domain.Product) domain.SaleLine {
	return domain.SaleLine{
		Product:   product,
		Quantity:  model.Quantity,
		Discount:  model.Discount,
		LineTotal: model.LineTotal,
	}
}
