package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(100) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		type VARCHAR(20) NOT NULL,
		color VARCHAR(7),
		is_default BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_user_type ON categories (user_id, type)`,
	`CREATE TABLE IF NOT EXISTS user_cards (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type VARCHAR(20) NOT NULL,
		name VARCHAR(100) NOT NULL,
		monthly_target INTEGER CHECK (monthly_target >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_cards_user ON user_cards (user_id)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
		type VARCHAR(20) NOT NULL,
		amount NUMERIC(15, 2) NOT NULL,
		description VARCHAR(500),
		payment_type VARCHAR(20),
		user_card_id UUID REFERENCES user_cards(id) ON DELETE SET NULL,
		is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
		transacted_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_transacted ON transactions (user_id, transacted_at DESC)`,
}

// Migrate creates the schema when it is missing. Every statement is idempotent.
func (s *DBService) Migrate(ctx context.Context) error {
	for i, m := range migrations {
		if _, err := s.DB.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
