package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/starke/backend/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
	List(ctx context.Context, limit, offset int) ([]*model.Message, int, error)
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Ensure PgMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new messages row and populates msg.ID from the database
// RETURNING clause. The insert is a single statement, committed immediately.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt,
	).Scan(&msg.ID)
}

// List returns one page of messages ordered newest-first, plus the total row
// count independent of pagination. An offset beyond the last row yields an
// empty page with the correct total.
func (r *PgMessageRepository) List(ctx context.Context, limit, offset int) ([]*model.Message, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM messages
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		messages = append(messages, &m)
	}
	return messages, total, rows.Err()
}
