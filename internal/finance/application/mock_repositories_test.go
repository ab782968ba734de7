package application

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
)

var errRepository = errors.New("repository error")

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockCategoryRepository struct {
	categories  []domain.Category
	lockedUsers []uuid.UUID
	shouldFail  bool
}

func (m *mockCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errRepository
	}
	out := []domain.Category{}
	for _, c := range m.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCategoryRepository) FindByID(_ context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == categoryID && c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *mockCategoryRepository) ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	_, err := m.FindByID(ctx, userID, categoryID)
	return err == nil, nil
}

func (m *mockCategoryRepository) CountByType(_ context.Context, userID uuid.UUID, categoryType string) (int, error) {
	count := 0
	for _, c := range m.categories {
		if c.UserID == userID && c.Type == categoryType {
			count++
		}
	}
	return count, nil
}

func (m *mockCategoryRepository) LockOwner(_ context.Context, userID uuid.UUID) error {
	m.lockedUsers = append(m.lockedUsers, userID)
	return nil
}

func (m *mockCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	if m.shouldFail {
		return errRepository
	}
	m.categories = append(m.categories, *category)
	return nil
}

func (m *mockCategoryRepository) CreateBatch(_ context.Context, categories []domain.Category) error {
	if m.shouldFail {
		return errRepository
	}
	m.categories = append(m.categories, categories...)
	return nil
}

func (m *mockCategoryRepository) Update(_ context.Context, category *domain.Category) (int64, error) {
	for i, c := range m.categories {
		if c.ID == category.ID && c.UserID == category.UserID && !c.IsDefault {
			m.categories[i] = *category
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockCategoryRepository) Delete(_ context.Context, userID, categoryID uuid.UUID) (int64, error) {
	for i, c := range m.categories {
		if c.ID == categoryID && c.UserID == userID && !c.IsDefault {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockTransactionRepository struct {
	transactions []domain.Transaction
}

func (m *mockTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	for _, t := range m.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TransactedAt.After(out[j].TransactedAt) })
	return out, nil
}

func (m *mockTransactionRepository) FindByID(_ context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error) {
	for _, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			found := t
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *mockTransactionRepository) Create(_ context.Context, transaction *domain.Transaction) error {
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *mockTransactionRepository) Update(_ context.Context, transaction *domain.Transaction) (int64, error) {
	for i, t := range m.transactions {
		if t.ID == transaction.ID && t.UserID == transaction.UserID {
			m.transactions[i] = *transaction
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockTransactionRepository) SetFavorite(_ context.Context, userID, transactionID uuid.UUID, favorite bool, updatedAt time.Time) (int64, error) {
	for i, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			m.transactions[i].IsFavorite = favorite
			m.transactions[i].UpdatedAt = updatedAt
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockTransactionRepository) Delete(_ context.Context, userID, transactionID uuid.UUID) (int64, error) {
	for i, t := range m.transactions {
		if t.ID == transactionID && t.UserID == userID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type mockCardRepository struct {
	cards []domain.Card
}

func (m *mockCardRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]domain.Card, error) {
	out := []domain.Card{}
	for _, c := range m.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCardRepository) FindByID(_ context.Context, userID, cardID uuid.UUID) (*domain.Card, error) {
	for _, c := range m.cards {
		if c.ID == cardID && c.UserID == userID {
			found := c
			return &found, nil
		}
	}
	return nil, financeErrors.ErrCardNotFound
}

func (m *mockCardRepository) ExistsForUser(ctx context.Context, userID, cardID uuid.UUID) (bool, error) {
	_, err := m.FindByID(ctx, userID, cardID)
	return err == nil, nil
}

func (m *mockCardRepository) Create(_ context.Context, card *domain.Card) error {
	m.cards = append(m.cards, *card)
	return nil
}

func (m *mockCardRepository) UpdateMonthlyTarget(_ context.Context, userID, cardID uuid.UUID, target *int) (int64, error) {
	for i, c := range m.cards {
		if c.ID == cardID && c.UserID == userID {
			m.cards[i].MonthlyTarget = target
			return 1, nil
		}
	}
	return 0, nil
}

func (m *mockCardRepository) Delete(_ context.Context, userID, cardID uuid.UUID) (int64, error) {
	for i, c := range m.cards {
		if c.ID == cardID && c.UserID == userID {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
