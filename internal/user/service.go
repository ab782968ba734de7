package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/badoux/checkmail"
	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

const (
	maxEmailLength    = 255
	minEmailLength    = 3
	minPasswordLength = 8
	maxNameLength     = 100
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrEmailLength        = fmt.Errorf("email address is too long or too short, max length: %d, min length: %d", maxEmailLength, minEmailLength)
	ErrPasswordLength     = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrNameLength         = fmt.Errorf("name must be between 1 and %d characters", maxNameLength)
	ErrEmailAlreadyExists = errors.New("email already registered")
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategorySeeder gives a freshly registered user the starter categories.
type CategorySeeder interface {
	SeedDefaults(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
}

type Service interface {
	Register(ctx context.Context, email, password, name string) (*User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

type service struct {
	repo   Repository
	seeder CategorySeeder
	tx     database.TxRunner
}

func NewUserService(repo Repository, seeder CategorySeeder, tx database.TxRunner) Service {
	return &service{
		repo:   repo,
		seeder: seeder,
		tx:     tx,
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrEmailLength) ||
		errors.Is(err, ErrPasswordLength) || errors.Is(err, ErrNameLength)
}

func validateEmailAddress(email string) error {
	if len(email) > maxEmailLength || len(email) < minEmailLength {
		log.Println("Email Validation length check error")
		return ErrEmailLength
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		log.Println("Email Validation FORMAT check error")
		return ErrInvalidEmail
	}
	return nil
}

func validateRegistration(email, password, name string) error {
	if err := validateEmailAddress(email); err != nil {
		return err
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordLength
	}
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return ErrNameLength
	}
	return nil
}

// Register creates the user and seeds the default categories in one
// transaction, so a user never exists without its starter catalog.
func (s *service) Register(ctx context.Context, email, password, name string) (*User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if err := validateRegistration(email, password, name); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	newUser := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := s.repo.getUserByEmail(ctx, email)
		if err == nil {
			return ErrEmailAlreadyExists
		}
		if !errors.Is(err, ErrUserNotFound) {
			return err
		}

		if err := s.repo.createUser(ctx, newUser); err != nil {
			return err
		}
		if _, err := s.seeder.SeedDefaults(ctx, newUser.ID); err != nil {
			return fmt.Errorf("could not seed default categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newUser, nil
}

func (s *service) GetUserByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	return s.repo.getUserByID(ctx, userID)
}

func (s *service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.getUserByEmail(ctx, strings.TrimSpace(email))
}
