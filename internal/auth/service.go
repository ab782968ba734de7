package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/benefitbutler/backend/internal/user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("account is inactive")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	userCache   *UserCache
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, userCache *UserCache) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		userCache:   userCache,
	}
}

// Login checks the credentials and returns a signed access token.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Printf("error when getting user from database: %v", err)
		return "", ErrInternalError
	}

	if !existingUser.IsActive {
		return "", ErrUserInactive
	}

	if !user.DoPasswordsMatch(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID.String())
	if err != nil {
		log.Printf("error during JWT generation: %v", err)
		return "", ErrInternalError
	}
	return token, nil
}
