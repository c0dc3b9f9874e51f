package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const messagesSchema = `CREATE TABLE IF NOT EXISTS messages (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

const budgetsSchema = `CREATE TABLE IF NOT EXISTS budgets (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	service TEXT NOT NULL,
	details TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// EnsureSchema creates the messages and budgets tables if they do not
// already exist. It is idempotent and safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{messagesSchema, budgetsSchema} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes both tables. Used by the migrate tool's reset command.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS messages`,
		`DROP TABLE IF EXISTS budgets`,
	} {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}
	}
	return nil
}
