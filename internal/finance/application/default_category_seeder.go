package application

import (
	"context"
	"time"

	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type DefaultCategorySeeder struct {
	repo  domain.CategoryRepository
	clock func() time.Time
}

func NewDefaultCategorySeeder(repo domain.CategoryRepository) *DefaultCategorySeeder {
	return &DefaultCategorySeeder{repo: repo, clock: now}
}

// SeedDefaults inserts the starter catalog for userID. It is not idempotent;
// registration calls it once inside the transaction that creates the user.
// Timestamps step back one microsecond per entry so a newest-first listing
// keeps catalog order.
func (s *DefaultCategorySeeder) SeedDefaults(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	catalog := domain.DefaultCategories()
	base := s.clock()

	categories := make([]domain.Category, 0, len(catalog))
	for i, entry := range catalog {
		color := entry.Color
		categories = append(categories, domain.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      entry.Name,
			Type:      entry.Type,
			Color:     &color,
			IsDefault: true,
			CreatedAt: base.Add(-time.Duration(i) * time.Microsecond),
		})
	}

	if err := s.repo.CreateBatch(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}
