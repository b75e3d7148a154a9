package pgdb

import (
	"context"
	"errors"

	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/domain"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/internal/repository/pgdb/converter"
	"github.com/EduardoZakkNet/Eduardo-Amorim-Test/pkg/e"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет покупателя. Нулевой идентификатор заменяется новым,
// присланный идентификатор сохраняется как есть.
func (c *CustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	id := customer.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO customers (id, name, status)
		VALUES ($1, $2, $3)
		RETURNING id, name, status, created_at, updated_at;
	`

	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, query, id, customer.Name, string(customer.Status)).
		Scan(&model.ID, &model.Name, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM customers
		WHERE id = $1;
	`

	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCustomerNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CustomerRepo) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	query := `
		SELECT id, name, status, created_at, updated_at
		FROM customers
		WHERE name = $1;
	`

	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.Status, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCustomerNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет покупателя и сообщает, была ли запись найдена.
func (c *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := c.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}
