package application

import (
	"context"
	"time"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

type CardService struct {
	repo  domain.CardRepository
	tx    database.TxRunner
	clock func() time.Time
}

func NewCardService(repo domain.CardRepository, tx database.TxRunner) *CardService {
	return &CardService{repo: repo, tx: tx, clock: now}
}

func (s *CardService) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *CardService) CreateCard(ctx context.Context, userID uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	card := &domain.Card{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      in.Type,
		Name:      in.Name,
		CreatedAt: s.clock(),
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateCard changes the monthly target. An omitted target leaves the card
// untouched; an explicit null clears it.
func (s *CardService) UpdateCard(ctx context.Context, userID, cardID uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var card *domain.Card
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if patch.MonthlyTarget.Set {
			affected, err := s.repo.UpdateMonthlyTarget(ctx, userID, cardID, patch.MonthlyTarget.Value)
			if err != nil {
				return err
			}
			if affected == 0 {
				return financeErrors.ErrCardNotFound
			}
		}
		var err error
		card, err = s.repo.FindByID(ctx, userID, cardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, userID, cardID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrCardNotFound
	}
	return nil
}
