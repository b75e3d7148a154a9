package converter

import (
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
)

// ProductConverter преобразует продукт между domain и моделью кэша Redis.
type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:        entity.ID,
		Name:      entity.Name,
		UnitPrice: entity.UnitPrice,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		UnitPrice: model.UnitPrice,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
