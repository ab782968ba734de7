package application

import (
	"context"
	"testing"
	"time"

	"github.com/benefitbutler/backend/internal/finance/domain"
	financeErrors "github.com/benefitbutler/backend/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCardService() (*CardService, *mockCardRepository) {
	repo := &mockCardRepository{}
	service := NewCardService(repo, &mockTxRunner{})
	service.clock = steppingClock(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	return service, repo
}

func TestCreateCard_TargetStartsUnset(t *testing.T) {
	service, _ := newCardService()

	card, err := service.CreateCard(context.Background(), uuid.New(), domain.CardInput{Type: domain.CardTypeCredit, Name: "신한 Deep Dream"})
	require.NoError(t, err)
	assert.Nil(t, card.MonthlyTarget)
}

func TestCreateCard_InvalidType(t *testing.T) {
	service, repo := newCardService()

	_, err := service.CreateCard(context.Background(), uuid.New(), domain.CardInput{Type: "prepaid", Name: "카드"})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.cards)
}

func TestUpdateCard_MonthlyTargetSemantics(t *testing.T) {
	service, _ := newCardService()
	userID := uuid.New()
	ctx := context.Background()

	card, err := service.CreateCard(ctx, userID, domain.CardInput{Type: domain.CardTypeDebit, Name: "체크카드"})
	require.NoError(t, err)

	updated, err := service.UpdateCard(ctx, userID, card.ID, domain.CardPatch{MonthlyTarget: domain.Some(300000)})
	require.NoError(t, err)
	require.NotNil(t, updated.MonthlyTarget)
	assert.Equal(t, 300000, *updated.MonthlyTarget)

	untouched, err := service.UpdateCard(ctx, userID, card.ID, domain.CardPatch{})
	require.NoError(t, err)
	require.NotNil(t, untouched.MonthlyTarget)
	assert.Equal(t, 300000, *untouched.MonthlyTarget)

	cleared, err := service.UpdateCard(ctx, userID, card.ID, domain.CardPatch{MonthlyTarget: domain.Null[int]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.MonthlyTarget)
}

func TestUpdateCard_OtherUserNotFound(t *testing.T) {
	service, _ := newCardService()
	ctx := context.Background()

	card, err := service.CreateCard(ctx, uuid.New(), domain.CardInput{Type: domain.CardTypeCredit, Name: "카드"})
	require.NoError(t, err)

	_, err = service.UpdateCard(ctx, uuid.New(), card.ID, domain.CardPatch{MonthlyTarget: domain.Some(1)})
	assert.ErrorIs(t, err, financeErrors.ErrCardNotFound)

	_, err = service.UpdateCard(ctx, uuid.New(), card.ID, domain.CardPatch{})
	assert.ErrorIs(t, err, financeErrors.ErrCardNotFound)
}

func TestDeleteCard(t *testing.T) {
	service, _ := newCardService()
	userID := uuid.New()
	ctx := context.Background()

	card, err := service.CreateCard(ctx, userID, domain.CardInput{Type: domain.CardTypeCredit, Name: "카드"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteCard(ctx, uuid.New(), card.ID), financeErrors.ErrCardNotFound)
	require.NoError(t, service.DeleteCard(ctx, userID, card.ID))

	cards, err := service.ListCards(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
