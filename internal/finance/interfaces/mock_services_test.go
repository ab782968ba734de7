package interfaces

import (
	"context"

	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type mockCategoryService struct {
	categories []domain.Category
	category   *domain.Category
	err        error

	lastUserID uuid.UUID
	lastID     uuid.UUID
	lastInput  domain.CategoryInput
	lastPatch  domain.CategoryPatch
}

func (m *mockCategoryService) ListCategories(_ context.Context, userID uuid.UUID) ([]domain.Category, error) {
	m.lastUserID = userID
	return m.categories, m.err
}

func (m *mockCategoryService) CreateCategory(_ context.Context, userID uuid.UUID, in domain.CategoryInput) (*domain.Category, error) {
	m.lastUserID, m.lastInput = userID, in
	return m.category, m.err
}

func (m *mockCategoryService) GetCategory(_ context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	m.lastUserID, m.lastID = userID, categoryID
	return m.category, m.err
}

func (m *mockCategoryService) UpdateCategory(_ context.Context, userID, categoryID uuid.UUID, patch domain.CategoryPatch) (*domain.Category, error) {
	m.lastUserID, m.lastID, m.lastPatch = userID, categoryID, patch
	return m.category, m.err
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, userID, categoryID uuid.UUID) error {
	m.lastUserID, m.lastID = userID, categoryID
	return m.err
}

type mockTransactionService struct {
	transactions []domain.Transaction
	transaction  *domain.Transaction
	err          error

	lastID       uuid.UUID
	lastInput    domain.TransactionInput
	lastPatch    domain.TransactionPatch
	lastFavorite *bool
}

func (m *mockTransactionService) ListTransactions(context.Context, uuid.UUID) ([]domain.Transaction, error) {
	return m.transactions, m.err
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, _ uuid.UUID, in domain.TransactionInput) (*domain.Transaction, error) {
	m.lastInput = in
	return m.transaction, m.err
}

func (m *mockTransactionService) GetTransaction(_ context.Context, _ uuid.UUID, transactionID uuid.UUID) (*domain.Transaction, error) {
	m.lastID = transactionID
	return m.transaction, m.err
}

func (m *mockTransactionService) UpdateTransaction(_ context.Context, _ uuid.UUID, transactionID uuid.UUID, patch domain.TransactionPatch) (*domain.Transaction, error) {
	m.lastID, m.lastPatch = transactionID, patch
	return m.transaction, m.err
}

func (m *mockTransactionService) SetFavorite(_ context.Context, _ uuid.UUID, transactionID uuid.UUID, favorite bool) (*domain.Transaction, error) {
	m.lastID, m.lastFavorite = transactionID, &favorite
	return m.transaction, m.err
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, _ uuid.UUID, transactionID uuid.UUID) error {
	m.lastID = transactionID
	return m.err
}

type mockCardService struct {
	cards []domain.Card
	card  *domain.Card
	err   error

	lastID    uuid.UUID
	lastInput domain.CardInput
	lastPatch domain.CardPatch
}

func (m *mockCardService) ListCards(context.Context, uuid.UUID) ([]domain.Card, error) {
	return m.cards, m.err
}

func (m *mockCardService) CreateCard(_ context.Context, _ uuid.UUID, in domain.CardInput) (*domain.Card, error) {
	m.lastInput = in
	return m.card, m.err
}

func (m *mockCardService) UpdateCard(_ context.Context, _ uuid.UUID, cardID uuid.UUID, patch domain.CardPatch) (*domain.Card, error) {
	m.lastID, m.lastPatch = cardID, patch
	return m.card, m.err
}

func (m *mockCardService) DeleteCard(_ context.Context, _ uuid.UUID, cardID uuid.UUID) error {
	m.lastID = cardID
	return m.err
}
