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

// BranchRepo реализует репозиторий филиалов поверх PostgreSQL.
type BranchRepo struct {
	pool *pgxpool.Pool
	conv converter.BranchConverter
}

func NewBranchRepo(pool *pgxpool.Pool, conv converter.BranchConverter) *BranchRepo {
	return &BranchRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет филиал. Нулевой идентификатор заменяется новым,
// присланный идентификатор сохраняется как есть.
func (b *BranchRepo) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	id := branch.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO branches (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at;
	`

	var model converter.BranchModel
	err := b.pool.QueryRow(ctx, query, id, branch.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Branch, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM branches
		WHERE id = $1;
	`

	var model converter.BranchModel
	err := b.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrBranchNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BranchRepo) GetByName(ctx context.Context, name string) (*domain.Branch, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM branches
		WHERE name = $1;
	`

	var model converter.BranchModel
	err := b.pool.QueryRow(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrBranchNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

// Delete удаляет филиал и сообщает, была ли запись найдена.
func (b *BranchRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := b.pool.Exec(ctx, `DELETE FROM branches WHERE id = $1;`, id)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}
