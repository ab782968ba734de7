package user

import (
	"context"
	"errors"

	"github.com/benefitbutler/backend/internal/finance/domain"
	"github.com/google/uuid"
)

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockRepository struct {
	users map[uuid.UUID]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: map[uuid.UUID]*User{}}
}

func (m *mockRepository) createUser(_ context.Context, user *User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockRepository) getUserByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

type mockSeeder struct {
	seeded     []uuid.UUID
	shouldFail bool
}

func (m *mockSeeder) SeedDefaults(_ context.Context, userID uuid.UUID) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("seed failed")
	}
	m.seeded = append(m.seeded, userID)
	return make([]domain.Category, len(domain.DefaultCategories())), nil
}

type mockService struct {
	user *User
	err  error
}

func (m *mockService) Register(_ context.Context, email, _, name string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &User{ID: uuid.New(), Email: email, Name: name, IsActive: true}, nil
}

func (m *mockService) GetUserByID(_ context.Context, _ uuid.UUID) (*User, error) {
	return m.user, m.err
}

func (m *mockService) GetUserByEmail(_ context.Context, _ string) (*User, error) {
	return m.user, m.err
}
