package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"

	maxCategoryNameLength = 100
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      string
	Color     *string
	IsDefault bool
	CreatedAt time.Time
}

type CategoryInput struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color *string `json:"color"`
}

type CategoryPatch struct {
	Name  Optional[string] `json:"name"`
	Type  Optional[string] `json:"type"`
	Color Optional[string] `json:"color"`
}

type CategoryRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Category, error)
	FindByID(ctx context.Context, userID, categoryID uuid.UUID) (*Category, error)
	ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
	CountByType(ctx context.Context, userID uuid.UUID, categoryType string) (int, error)
	LockOwner(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, category *Category) error
	CreateBatch(ctx context.Context, categories []Category) error
	Update(ctx context.Context, category *Category) (int64, error)
	Delete(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)
}

func IsValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense || t == TypeTransfer
}

func validateCategoryName(name string) error {
	if name == "" {
		return errors.NewValidationError("Name is required")
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		return errors.NewValidationError(fmt.Sprintf("Name must be at most %d characters", maxCategoryNameLength))
	}
	return nil
}

func validateCategoryType(t string) error {
	if !IsValidTransactionType(t) {
		return errors.NewValidationError("Type must be 'income', 'expense' or 'transfer'")
	}
	return nil
}

func validateColor(color *string) error {
	if color != nil && !hexColorPattern.MatchString(*color) {
		return errors.NewValidationError("Color must be a hex value like #22C55E")
	}
	return nil
}

func (in CategoryInput) Validate() error {
	var ve errors.ValidationErrors
	if err := validateCategoryName(in.Name); err != nil {
		ve.Add(err)
	}
	if err := validateCategoryType(in.Type); err != nil {
		ve.Add(err)
	}
	if err := validateColor(in.Color); err != nil {
		ve.Add(err)
	}
	return ve.ErrOrNil()
}

func (p CategoryPatch) Validate() error {
	var ve errors.ValidationErrors
	if p.Name.Set {
		if p.Name.Value == nil {
			ve.Add(errors.NewValidationError("Name cannot be null"))
		} else if err := validateCategoryName(*p.Name.Value); err != nil {
			ve.Add(err)
		}
	}
	if p.Type.Set {
		if p.Type.Value == nil {
			ve.Add(errors.NewValidationError("Type cannot be null"))
		} else if err := validateCategoryType(*p.Type.Value); err != nil {
			ve.Add(err)
		}
	}
	if p.Color.Set {
		if err := validateColor(p.Color.Value); err != nil {
			ve.Add(err)
		}
	}
	return ve.ErrOrNil()
}

// Apply copies the present fields onto c. Call Validate first.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name.Set && p.Name.Value != nil {
		c.Name = *p.Name.Value
	}
	if p.Type.Set && p.Type.Value != nil {
		c.Type = *p.Type.Value
	}
	if p.Color.Set {
		c.Color = p.Color.Value
	}
}
