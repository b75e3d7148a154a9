package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/cfg"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/redis/converter"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/usecase"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clients"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CachedProductRepo декорирует репозиторий каталога сквозным кэшем Redis.
// Ошибки кэша не видны вызывающему, промах всегда уходит в базовый репозиторий.
type CachedProductRepo struct {
	inner  usecase.ProductRepository
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCachedProductRepo(
	inner usecase.ProductRepository,
	client *clients.RedisClient,
	conv converter.ProductConverter,
	cfg *cfg.RedisCfg,
	logger logger.Logger,
) *CachedProductRepo {
	return &CachedProductRepo{
		inner:  inner,
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Create пишет продукт в базовый репозиторий и прогревает кэш.
func (c *CachedProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created, err := c.inner.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	c.setProduct(ctx, created)

	return created, nil
}

// GetByID сначала опрашивает кэш, при промахе обращается к базовому
// репозиторию и кэширует результат.
func (c *CachedProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if cached := c.getProduct(ctx, id); cached != nil {
		return cached, nil
	}

	product, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.setProduct(ctx, product)

	return product, nil
}

// GetByName не кэшируется, имя не входит в ключ кэша.
func (c *CachedProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	return c.inner.GetByName(ctx, name)
}

// Delete удаляет продукт из базового репозитория и инвалидирует кэш.
func (c *CachedProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := c.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if err := c.client.Client.Del(ctx, c.productKey(id)).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return deleted, nil
}

// getProduct возвращает продукт из кэша либо nil при промахе или ошибке.
func (c *CachedProductRepo) getProduct(ctx context.Context, id uuid.UUID) *domain.Product {
	key := c.productKey(id)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil
	}

	return c.conv.ToEntity(&model)
}

// setProduct кэширует продукт с заданным TTL, логируя ошибки записи.
func (c *CachedProductRepo) setProduct(ctx context.Context, product *domain.Product) {
	data, err := json.Marshal(c.conv.ToRedisModel(product))
	if err != nil {
		c.logger.Warnf("Failed to marshal product for caching (Product ID: %s): %v", product.ID, e.Wrap(whereami.WhereAmI(), err))
		return
	}

	if err := c.client.Client.Set(ctx, c.productKey(product.ID), data, c.cfg.ProductTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// productKey возвращает Redis-ключ для одного продукта
func (c *CachedProductRepo) productKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}
