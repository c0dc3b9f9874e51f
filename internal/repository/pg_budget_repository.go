package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starke/backend/internal/model"
)

// BudgetRepository defines the persistence interface for quote requests.
type BudgetRepository interface {
	Save(ctx context.Context, b *model.Budget) error
	List(ctx context.Context, limit, offset int) ([]*model.Budget, int, error)
}

// PgBudgetRepository is the PostgreSQL implementation of BudgetRepository.
type PgBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewPgBudgetRepository creates a PgBudgetRepository backed by the given pool.
func NewPgBudgetRepository(pool *pgxpool.Pool) *PgBudgetRepository {
	return &PgBudgetRepository{pool: pool}
}

var _ BudgetRepository = (*PgBudgetRepository)(nil)

// Save inserts a new budgets row and populates b.ID from the RETURNING clause.
func (r *PgBudgetRepository) Save(ctx context.Context, b *model.Budget) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO budgets (name, email, phone, service, details, company, city, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		b.Name, b.Email, b.Phone, b.Service, b.Details, b.Company, b.City, b.CreatedAt,
	).Scan(&b.ID)
}

// List returns one page of budgets ordered newest-first, plus the total row
// count independent of pagination.
func (r *PgBudgetRepository) List(ctx context.Context, limit, offset int) ([]*model.Budget, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM budgets`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, service, details, company, city, created_at
		 FROM budgets
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var budgets []*model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Service, &b.Details, &b.Company, &b.City, &b.CreatedAt); err != nil {
			return nil, 0, err
		}
		budgets = append(budgets, &b)
	}
	return budgets, total, rows.Err()
}
