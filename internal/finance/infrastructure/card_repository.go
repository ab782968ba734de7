package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

type CardRepository struct {
	db *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	query := `SELECT id, user_id, type, name, monthly_target, created_at
              FROM user_cards
              WHERE user_id = $1
              ORDER BY created_at ASC, id ASC`

	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Name, &c.MonthlyTarget, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *CardRepository) FindByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	query := `SELECT id, user_id, type, name, monthly_target, created_at
              FROM user_cards
              WHERE id = $1 AND user_id = $2`

	var c domain.Card
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, cardID, userID).
		Scan(&c.ID, &c.UserID, &c.Type, &c.Name, &c.MonthlyTarget, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCardNotFound
		}
		return nil, fmt.Errorf("could not find card: %w", err)
	}
	return &c, nil
}

func (r *CardRepository) ExistsForUser(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_cards WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, cardID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check card: %w", err)
	}
	return exists, nil
}

func (r *CardRepository) Create(ctx context.Context, c *domain.Card) error {
	query := `INSERT INTO user_cards (id, user_id, type, name, monthly_target, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query, c.ID, c.UserID, c.Type, c.Name, c.MonthlyTarget, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create card: %w", err)
	}
	return nil
}

func (r *CardRepository) UpdateMonthlyTarget(ctx context.Context, userID, cardID uuid.UUID, target *int) (int64, error) {
	query := `UPDATE user_cards SET monthly_target = $1 WHERE id = $2 AND user_id = $3`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, target, cardID, userID)
	if err != nil {
		return 0, fmt.Errorf("could not update card: %w", err)
	}
	return result.RowsAffected()
}

func (r *CardRepository) Delete(ctx context.Context, userID, cardID uuid.UUID) (int64, error) {
	query := `DELETE FROM user_cards WHERE id = $1 AND user_id = $2`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, cardID, userID)
	if err != nil {
		return 0, fmt.Errorf("could not delete card: %w", err)
	}
	return result.RowsAffected()
}
