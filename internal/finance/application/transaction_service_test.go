package application

import (
	"context"
	"testing"
	"time"

	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	service    *TransactionService
	repo       *mockTransactionRepository
	categories *mockCategoryRepository
	cards      *mockCardRepository
	tx         *mockTxRunner
}

func newTransactionFixture() *transactionFixture {
	f := &transactionFixture{
		repo:       &mockTransactionRepository{},
		categories: &mockCategoryRepository{},
		cards:      &mockCardRepository{},
		tx:         &mockTxRunner{},
	}
	f.service = NewTransactionService(f.repo, f.categories, f.cards, f.tx)
	f.service.clock = steppingClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	return f
}

func expense(amount string, at time.Time) domain.TransactionInput {
	value := decimal.RequireFromString(amount)
	return domain.TransactionInput{Type: domain.TypeExpense, Amount: &value, TransactedAt: &at}
}

func TestCreateTransaction_MinimalFields(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()

	created, err := f.service.CreateTransaction(context.Background(), userID, expense("10000", time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "10000.00", created.Amount.StringFixed(2))
	assert.False(t, created.IsFavorite)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.CategoryID)
	assert.Nil(t, created.PaymentType)
	assert.Nil(t, created.UserCardID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, 1, f.tx.calls)
}

func TestCreateTransaction_RoundsAmount(t *testing.T) {
	f := newTransactionFixture()

	created, err := f.service.CreateTransaction(context.Background(), uuid.New(), expense("12.345", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "12.35", created.Amount.StringFixed(2))
}

func TestCreateTransaction_ForeignReferences(t *testing.T) {
	f := newTransactionFixture()
	alice, bob := uuid.New(), uuid.New()
	bobCategory := domain.Category{ID: uuid.New(), UserID: bob, Name: "식비", Type: domain.TypeExpense}
	bobCard := domain.Card{ID: uuid.New(), UserID: bob, Type: domain.CardTypeCredit, Name: "Bob card"}
	f.categories.categories = append(f.categories.categories, bobCategory)
	f.cards.cards = append(f.cards.cards, bobCard)

	in := expense("5000", time.Now())
	in.CategoryID = &bobCategory.ID
	_, err := f.service.CreateTransaction(context.Background(), alice, in)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidCategory)

	in = expense("5000", time.Now())
	in.UserCardID = &bobCard.ID
	_, err = f.service.CreateTransaction(context.Background(), alice, in)
	assert.ErrorIs(t, err, financeErrors.ErrInvalidCard)

	assert.Empty(t, f.repo.transactions)

	in.UserCardID = &bobCard.ID
	in.CategoryID = &bobCategory.ID
	_, err = f.service.CreateTransaction(context.Background(), bob, in)
	assert.NoError(t, err)
}

func TestListTransactions_OrderedByTransactedAt(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	_, err := f.service.CreateTransaction(ctx, userID, expense("1", base))
	require.NoError(t, err)
	_, err = f.service.CreateTransaction(ctx, userID, expense("2", base.Add(48*time.Hour)))
	require.NoError(t, err)
	_, err = f.service.CreateTransaction(ctx, userID, expense("3", base.Add(-48*time.Hour)))
	require.NoError(t, err)

	listed, err := f.service.ListTransactions(ctx, userID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "2.00", listed[0].Amount.StringFixed(2))
	assert.Equal(t, "1.00", listed[1].Amount.StringFixed(2))
	assert.Equal(t, "3.00", listed[2].Amount.StringFixed(2))
}

func TestUpdateTransaction_PartialAndRefreshesUpdatedAt(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()
	ctx := context.Background()
	description := "점심"

	in := expense("9000", time.Now())
	in.Description = &description
	created, err := f.service.CreateTransaction(ctx, userID, in)
	require.NoError(t, err)

	updated, err := f.service.UpdateTransaction(ctx, userID, created.ID, domain.TransactionPatch{
		Amount: domain.Some(decimal.RequireFromString("9500")),
	})
	require.NoError(t, err)

	assert.Equal(t, "9500.00", updated.Amount.StringFixed(2))
	require.NotNil(t, updated.Description)
	assert.Equal(t, "점심", *updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	updated, err = f.service.UpdateTransaction(ctx, userID, created.ID, domain.TransactionPatch{
		Description: domain.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
}

func TestUpdateTransaction_ForeignCategory(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()
	ctx := context.Background()

	created, err := f.service.CreateTransaction(ctx, userID, expense("100", time.Now()))
	require.NoError(t, err)

	_, err = f.service.UpdateTransaction(ctx, userID, created.ID, domain.TransactionPatch{CategoryID: domain.Some(uuid.New())})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestUpdateTransaction_OtherUserNotFound(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	created, err := f.service.CreateTransaction(ctx, uuid.New(), expense("100", time.Now()))
	require.NoError(t, err)

	_, err = f.service.UpdateTransaction(ctx, uuid.New(), created.ID, domain.TransactionPatch{Type: domain.Some(domain.TypeIncome)})
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	assert.ErrorIs(t, f.service.DeleteTransaction(ctx, uuid.New(), created.ID), financeErrors.ErrTransactionNotFound)
}

func TestSetFavorite_OnlyTargetChanges(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()
	ctx := context.Background()

	first, err := f.service.CreateTransaction(ctx, userID, expense("100", time.Now()))
	require.NoError(t, err)
	second, err := f.service.CreateTransaction(ctx, userID, expense("200", time.Now()))
	require.NoError(t, err)

	favorite, err := f.service.SetFavorite(ctx, userID, first.ID, true)
	require.NoError(t, err)
	assert.True(t, favorite.IsFavorite)

	sibling, err := f.service.GetTransaction(ctx, userID, second.ID)
	require.NoError(t, err)
	assert.False(t, sibling.IsFavorite)

	unfavorite, err := f.service.SetFavorite(ctx, userID, first.ID, false)
	require.NoError(t, err)
	assert.False(t, unfavorite.IsFavorite)

	_, err = f.service.SetFavorite(ctx, uuid.New(), first.ID, true)
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
}

func TestDeleteTransaction(t *testing.T) {
	f := newTransactionFixture()
	userID := uuid.New()
	ctx := context.Background()

	created, err := f.service.CreateTransaction(ctx, userID, expense("100", time.Now()))
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteTransaction(ctx, userID, created.ID))
	_, err = f.service.GetTransaction(ctx, userID, created.ID)
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
}
