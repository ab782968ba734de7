package application

import (
	"context"
	"time"

	database "github.com/benefitbutler/backend/internal/db"
	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

// OwnershipChecker reports whether an entity id belongs to a user.
type OwnershipChecker interface {
	ExistsForUser(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

type TransactionService struct {
	repo       domain.TransactionRepository
	categories OwnershipChecker
	cards      OwnershipChecker
	tx         database.TxRunner
	clock      func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository, categories, cards OwnershipChecker, tx database.TxRunner) *TransactionService {
	return &TransactionService{repo: repo, categories: categories, cards: cards, tx: tx, clock: now}
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *TransactionService) GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, userID, transactionID)
}

// validateReferences rejects category or card ids the user does not own.
func (s *TransactionService) validateReferences(ctx context.Context, userID uuid.UUID, categoryID, cardID *uuid.UUID) error {
	if categoryID != nil {
		ok, err := s.categories.ExistsForUser(ctx, userID, *categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return financeErrors.ErrInvalidCategory
		}
	}
	if cardID != nil {
		ok, err := s.cards.ExistsForUser(ctx, userID, *cardID)
		if err != nil {
			return err
		}
		if !ok {
			return financeErrors.ErrInvalidCard
		}
	}
	return nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, in domain.TransactionInput) (*domain.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   in.CategoryID,
		Type:         in.Type,
		Amount:       domain.NormalizeAmount(*in.Amount),
		Description:  in.Description,
		PaymentType:  in.PaymentType,
		UserCardID:   in.UserCardID,
		IsFavorite:   false,
		TransactedAt: *in.TransactedAt,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.validateReferences(ctx, userID, in.CategoryID, in.UserCardID); err != nil {
			return err
		}
		transaction.CreatedAt = s.clock()
		transaction.UpdatedAt = transaction.CreatedAt
		return s.repo.Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var transaction *domain.Transaction
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		transaction, err = s.repo.FindByID(ctx, userID, transactionID)
		if err != nil {
			return err
		}

		var categoryID, cardID *uuid.UUID
		if patch.CategoryID.Set {
			categoryID = patch.CategoryID.Value
		}
		if patch.UserCardID.Set {
			cardID = patch.UserCardID.Value
		}
		if err := s.validateReferences(ctx, userID, categoryID, cardID); err != nil {
			return err
		}

		patch.Apply(transaction)
		transaction.UpdatedAt = s.clock()

		affected, err := s.repo.Update(ctx, transaction)
		if err != nil {
			return err
		}
		if affected == 0 {
			return financeErrors.ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// SetFavorite touches only the favorite flag and updated_at of one transaction.
func (s *TransactionService) SetFavorite(ctx context.Context, userID, transactionID uuid.UUID, favorite bool) (*domain.Transaction, error) {
	var transaction *domain.Transaction
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		affected, err := s.repo.SetFavorite(ctx, userID, transactionID, favorite, s.clock())
		if err != nil {
			return err
		}
		if affected == 0 {
			return financeErrors.ErrTransactionNotFound
		}
		transaction, err = s.repo.FindByID(ctx, userID, transactionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}
