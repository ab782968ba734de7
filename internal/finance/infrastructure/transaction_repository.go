package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

const transactionColumns = `id, user_id, category_id, type, amount, description, payment_type, user_card_id,
              is_favorite, transacted_at, created_at, updated_at`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(row interface{ Scan(...any) error }, t *domain.Transaction) error {
	return row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Type, &t.Amount, &t.Description, &t.PaymentType,
		&t.UserCardID, &t.IsFavorite, &t.TransactedAt, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
              FROM transactions
              WHERE user_id = $1
              ORDER BY transacted_at DESC, created_at DESC`

	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
              FROM transactions
              WHERE id = $1 AND user_id = $2`

	var t domain.Transaction
	err := scanTransaction(database.Conn(ctx, r.db).QueryRowContext(ctx, query, transactionID, userID), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return &t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		t.ID, t.UserID, t.CategoryID, t.Type, t.Amount, t.Description, t.PaymentType,
		t.UserCardID, t.IsFavorite, t.TransactedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, t *domain.Transaction) (int64, error) {
	query := `
        UPDATE transactions
        SET category_id = $1, type = $2, amount = $3, description = $4, payment_type = $5,
            user_card_id = $6, transacted_at = $7, updated_at = $8
        WHERE id = $9 AND user_id = $10
    `

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		t.CategoryID, t.Type, t.Amount, t.Description, t.PaymentType,
		t.UserCardID, t.TransactedAt, t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("could not update transaction: %w", err)
	}
	return result.RowsAffected()
}

func (r *TransactionRepository) SetFavorite(ctx context.Context, userID, transactionID uuid.UUID, favorite bool, updatedAt time.Time) (int64, error) {
	query := `UPDATE transactions SET is_favorite = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, favorite, updatedAt, transactionID, userID)
	if err != nil {
		return 0, fmt.Errorf("could not update favorite flag: %w", err)
	}
	return result.RowsAffected()
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, transactionID uuid.UUID) (int64, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, transactionID, userID)
	if err != nil {
		return 0, fmt.Errorf("could not delete transaction: %w", err)
	}
	return result.RowsAffected()
}
