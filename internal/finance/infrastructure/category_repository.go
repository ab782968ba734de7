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

const categoryColumns = `id, user_id, name, type, color, is_default, created_at`

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row interface{ Scan(...any) error }, c *domain.Category) error {
	return row.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color, &c.IsDefault, &c.CreatedAt)
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + `
              FROM categories
              WHERE user_id = $1
              ORDER BY created_at DESC, id DESC`

	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + `
              FROM categories
              WHERE id = $1 AND user_id = $2`

	var c domain.Category
	err := scanCategory(database.Conn(ctx, r.db).QueryRowContext(ctx, query, categoryID, userID), &c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`

	var exists bool
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, categoryID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check category: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) CountByType(ctx context.Context, userID uuid.UUID, categoryType string) (int, error) {
	query := `SELECT COUNT(1) FROM categories WHERE user_id = $1 AND type = $2`

	var count int
	if err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, userID, categoryType).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count categories: %w", err)
	}
	return count, nil
}

// LockOwner takes a row lock on the owning user until the surrounding
// transaction ends, serializing category creation per user.
func (r *CategoryRepository) LockOwner(ctx context.Context, userID uuid.UUID) error {
	var id uuid.UUID
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not lock user: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (` + categoryColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Type, c.Color, c.IsDefault, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []domain.Category) error {
	conn := database.Conn(ctx, r.db)
	query := `INSERT INTO categories (` + categoryColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i := range categories {
		c := &categories[i]
		if _, err := conn.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Type, c.Color, c.IsDefault, c.CreatedAt); err != nil {
			return fmt.Errorf("could not create category %q: %w", c.Name, err)
		}
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) (int64, error) {
	query := `
        UPDATE categories
        SET name = $1, type = $2, color = $3
        WHERE id = $4 AND user_id = $5 AND is_default = FALSE
    `

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, c.Name, c.Type, c.Color, c.ID, c.UserID)
	if err != nil {
		return 0, fmt.Errorf("could not update category: %w", err)
	}
	return result.RowsAffected()
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2 AND is_default = FALSE`

	result, err := database.Conn(ctx, r.db).ExecContext(ctx, query, categoryID, userID)
	if err != nil {
		return 0, fmt.Errorf("could not delete category: %w", err)
	}
	return result.RowsAffected()
}
