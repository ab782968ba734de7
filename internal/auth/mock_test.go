package auth

import (
	"context"

	"github.com/benefitbutler/backend/internal/user"
	"github.com/google/uuid"
)

type mockUserService struct {
	users   map[uuid.UUID]*user.User
	lookups int
}

func newMockUserService(users ...*user.User) *mockUserService {
	m := &mockUserService{users: map[uuid.UUID]*user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserService) Register(context.Context, string, string, string) (*user.User, error) {
	panic("not used")
}

func (m *mockUserService) GetUserByID(_ context.Context, userID uuid.UUID) (*user.User, error) {
	m.lookups++
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newTestUser(t interface{ Fatalf(string, ...any) }, email, password string, active bool) *user.User {
	hash, err := user.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &user.User{ID: uuid.New(), Email: email, Name: "Alice", PasswordHash: hash, IsActive: active}
}
