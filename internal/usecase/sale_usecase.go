package usecase

import (
	"context"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/clock"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaleUseCase реализует конвейер создания продажи: валидация, разрешение
// сущностей, расчёт скидок и итога, сохранение и публикация события.
type SaleUseCase struct {
	saleRepo  SaleRepository
	resolver  *EntityResolver
	validator *SaleValidator
	publisher SaleEventPublisher
	dbPool    transaction.Transactional
	clock     clock.Clock
	logger    logger.Logger
}

func NewSaleUC(
	saleRepo SaleRepository,
	resolver *EntityResolver,
	validator *SaleValidator,
	publisher SaleEventPublisher,
	dbPool transaction.Transactional,
	clock clock.Clock,
	logger logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		saleRepo:  saleRepo,
		resolver:  resolver,
		validator: validator,
		publisher: publisher,
		dbPool:    dbPool,
		clock:     clock,
		logger:    logger,
	}
}

// CreateSale обрабатывает создание продажи в фиксированном порядке шагов.
// Создание покупателя/филиала/продуктов фиксируется сразу и не откатывается
// при отказе последующих шагов; сама продажа со строками сохраняется в одной
// транзакции. Ошибка публикации события только логируется.
func (s *SaleUseCase) CreateSale(ctx context.Context, req *CreateSaleReq) (*domain.Sale, error) {
	const op = "SaleUseCase.CreateSale"

	// Валидация данных: все нарушения собираются за один проход
	if verr := s.validator.Validate(req); verr != nil {
		return nil, e.Wrap(op, verr)
	}

	// Разрешение покупателя и филиала
	customer, createdCustomer, err := s.resolver.ResolveCustomer(ctx, req.Customer)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if createdCustomer {
		s.logger.Debugf("created customer %s for sale request", customer.ID)
	}

	branch, createdBranch, err := s.resolver.ResolveBranch(ctx, req.Branch)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if createdBranch {
		s.logger.Debugf("created branch %s for sale request", branch.ID)
	}

	// Разрешение позиций в порядке запроса
	lines, err := s.resolveLines(ctx, req.Products)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Контроль потолка количества по всем строкам разом
	if lerr := checkQuantityLimit(lines); lerr != nil {
		return nil, e.Wrap(op, lerr)
	}

	// Расчёт скидок и итога; значение клиента отбрасывается
	for i := range lines {
		lines[i].ApplyPricing()
	}

	sale := domain.NewSale(s.clock.Now(), customer, branch, lines)
	sale.RecalculateTotal()

	// Сохранение продажи со строками в одной транзакции
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := s.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Публикация события "продажа создана": отправил и забыл
	if perr := s.publisher.SaleCreated(ctx, created); perr != nil {
		s.logger.Warnf("Failed to publish SaleCreated event for sale %s: %v", created.ID, e.Wrap(op, perr))
	}

	return created, nil
}

// GetSale возвращает продажу со строками в исходном порядке.
func (s *SaleUseCase) GetSale(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	const op = "SaleUseCase.GetSale"

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sale, nil
}

// resolveLines разрешает позиции запроса в канонические записи каталога,
// сохраняя исходный порядок списка.
func (s *SaleUseCase) resolveLines(ctx context.Context, products []ProductLineReq) ([]domain.SaleLine, error) {
	lines := make([]domain.SaleLine, 0, len(products))
	for i := range products {
		product, created, err := s.resolver.ResolveProduct(ctx, &products[i])
		if err != nil {
			return nil, err
		}
		if created {
			s.logger.Debugf("created catalog product %s for sale request", product.ID)
		}

		lines = append(lines, domain.NewSaleLine(product, products[i].Quantities))
	}

	return lines, nil
}

// checkQuantityLimit отклоняет продажу целиком, если хотя бы одна строка
// превышает потолок количества, перечисляя все продукты-нарушители.
func checkQuantityLimit(lines []domain.SaleLine) *e.ProductLimitError {
	var offending []string
	for _, line := range lines {
		if line.Quantity > domain.MaxQuantityPerProduct {
			offending = append(offending, line.Product.Name)
		}
	}

	if len(offending) == 0 {
		return nil
	}

	return e.NewProductLimitError(offending)
}
