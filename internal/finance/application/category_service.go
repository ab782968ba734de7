package application

import (
	"context"
	"time"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

type CategoryService struct {
	repo  domain.CategoryRepository
	tx    database.TxRunner
	clock func() time.Time
}

func NewCategoryService(repo domain.CategoryRepository, tx database.TxRunner) *CategoryService {
	return &CategoryService{repo: repo, tx: tx, clock: now}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *CategoryService) GetCategory(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	return s.repo.FindByID(ctx, userID, categoryID)
}

// CreateCategory stores a user category. The per-type cap is checked with the
// owner row locked so concurrent creates cannot overshoot it.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, in domain.CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		Color:     in.Color,
		IsDefault: false,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.LockOwner(ctx, userID); err != nil {
			return err
		}
		count, err := s.repo.CountByType(ctx, userID, in.Type)
		if err != nil {
			return err
		}
		if count >= financeErrors.CategoryLimitPerType {
			return financeErrors.ErrCategoryLimitExceeded
		}
		category.CreatedAt = s.clock()
		return s.repo.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var category *domain.Category
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		category, err = s.repo.FindByID(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		if category.IsDefault {
			return financeErrors.ErrDefaultCategoryImmutable
		}

		patch.Apply(category)
		affected, err := s.repo.Update(ctx, category)
		if err != nil {
			return err
		}
		if affected == 0 {
			return financeErrors.ErrCategoryNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		category, err := s.repo.FindByID(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		if category.IsDefault {
			return financeErrors.ErrDefaultCategoryUndeletable
		}

		affected, err := s.repo.Delete(ctx, userID, categoryID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return financeErrors.ErrCategoryNotFound
		}
		return nil
	})
}
