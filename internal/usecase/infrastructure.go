package usecase

import (
	"context"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
)

// SaleEventPublisher публикует интеграционное событие о созданной продаже.
// Публикация выполняется по принципу "отправил и забыл": ошибка транспорта
// логируется вызывающей стороной и не влияет на результат создания продажи.
type SaleEventPublisher interface {
	SaleCreated(ctx context.Context, sale *domain.Sale) error
}
