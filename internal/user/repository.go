package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(ctx context.Context, user *User) error
	getUserByEmail(ctx context.Context, email string) (*User, error)
	getUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.Name, user.IsActive, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *userRepository) getUser(ctx context.Context, where string, arg any) (*User, error) {
	query := `
		SELECT id, email, password_hash, name, is_active, created_at
		FROM users
		WHERE ` + where

	var user User
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) getUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx, "email = $1", email)
}

func (r *userRepository) getUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.getUser(ctx, "id = $1", id)
}
