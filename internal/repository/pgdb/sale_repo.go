package pgdb

import (
	"context"
	"errors"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/pgdb/converter"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SaleRepo реализует репозиторий продаж поверх PostgreSQL.
// Продажа и её строки пишутся в рамках транзакции из контекста.
type SaleRepo struct {
	pool         *pgxpool.Pool
	conv         converter.SaleConverter
	customerConv converter.CustomerConverter
	branchConv   converter.BranchConverter
	productConv  converter.ProductConverter
}

func NewSaleRepo(
	pool *pgxpool.Pool,
	conv converter.SaleConverter,
	customerConv converter.CustomerConverter,
	branchConv converter.BranchConverter,
	productConv converter.ProductConverter,
) *SaleRepo {
	return &SaleRepo{
		pool:         pool,
		conv:         conv,
		customerConv: customerConv,
		branchConv:   branchConv,
		productConv:  productConv,
	}
}

// Create сохраняет продажу вместе со строками. Номер строки line_no
// фиксирует порядок позиций из запроса.
func (s *SaleRepo) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	id := sale.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	saleQuery := `
		INSERT INTO sales (id, sale_date, customer_id, branch_id, total_sale_amount, is_cancelled, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, sale_date, customer_id, branch_id, total_sale_amount, is_cancelled, status, created_at, updated_at;
	`

	var model converter.SaleModel
	err = tx.QueryRow(ctx, saleQuery,
		id, sale.SaleDate, sale.Customer.ID, sale.Branch.ID,
		sale.TotalSaleAmount, sale.IsCancelled, string(sale.Status),
	).Scan(
		&model.ID, &model.SaleDate, &model.CustomerID, &model.BranchID,
		&model.TotalSaleAmount, &model.IsCancelled, &model.Status,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO sale_lines (sale_id, line_no, product_id, quantity, discount, line_total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`

	for i := range sale.Lines {
		lineModel := s.conv.ToLineModel(model.ID, i, &sale.Lines[i])
		_, err = tx.Exec(ctx, lineQuery,
			lineModel.SaleID, lineModel.LineNo, lineModel.ProductID,
			lineModel.Quantity, lineModel.Discount, lineModel.LineTotal,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return s.conv.ToEntity(&model, sale.Customer, sale.Branch, sale.Lines), nil
}

// GetByID возвращает продажу с покупателем, филиалом и строками
// в исходном порядке line_no.
func (s *SaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	saleQuery := `
		SELECT
			s.id, s.sale_date, s.customer_id, s.branch_id,
			s.total_sale_amount, s.is_cancelled, s.status, s.created_at, s.updated_at,
			c.id, c.name, c.status, c.created_at, c.updated_at,
			b.id, b.name, b.created_at, b.updated_at
		FROM sales s
		JOIN customers c ON s.customer_id = c.id
		JOIN branches b ON s.branch_id = b.id
		WHERE s.id = $1;
	`

	var saleModel converter.SaleModel
	var customerModel converter.CustomerModel
	var branchModel converter.BranchModel
	err := s.pool.QueryRow(ctx, saleQuery, id).Scan(
		&saleModel.ID, &saleModel.SaleDate, &saleModel.CustomerID, &saleModel.BranchID,
		&saleModel.TotalSaleAmount, &saleModel.IsCancelled, &saleModel.Status,
		&saleModel.CreatedAt, &saleModel.UpdatedAt,
		&customerModel.ID, &customerModel.Name, &customerModel.Status,
		&customerModel.CreatedAt, &customerModel.UpdatedAt,
		&branchModel.ID, &branchModel.Name, &branchModel.CreatedAt, &branchModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrSaleNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	linesQuery := `
		SELECT
			l.sale_id, l.line_no, l.product_id, l.quantity, l.discount, l.line_total,
			p.id, p.name, p.unit_price, p.created_at, p.updated_at
		FROM sale_lines l
		JOIN products p ON l.product_id = p.id
		WHERE l.sale_id = $1
		ORDER BY l.line_no;
	`

	rows, err := s.pool.Query(ctx, linesQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	lines := make([]domain.SaleLine, 0)
	for rows.Next() {
		var lineModel converter.SaleLineModel
		var productModel converter.ProductModel
		if err := rows.Scan(
			&lineModel.SaleID, &lineModel.LineNo, &lineModel.ProductID,
			&lineModel.Quantity, &lineModel.Discount, &lineModel.LineTotal,
			&productModel.ID, &productModel.Name, &productModel.UnitPrice,
			&productModel.CreatedAt, &productModel.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		lines = append(lines, s.conv.ToLineEntity(&lineModel, s.productConv.ToEntity(&productModel)))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(
		&saleModel,
		s.customerConv.ToEntity(&customerModel),
		s.branchConv.ToEntity(&branchModel),
		lines,
	), nil
}
