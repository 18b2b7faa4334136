package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harshjindal13/brainly-fullStack/internal/apperr"
	"github.com/harshjindal13/brainly-fullStack/internal/auth"
	"github.com/harshjindal13/brainly-fullStack/internal/repository"
)

// Domain errors for auth flows. Unknown user and wrong password carry the
// same client message so signin failures don't reveal which one happened.
var (
	ErrUsernameTaken   = apperr.New(apperr.KindNotFound, "User already exists")
	ErrUserNotFound    = apperr.New(apperr.KindAuth, "Incorrect credentials")
	ErrInvalidPassword = apperr.New(apperr.KindAuth, "Incorrect credentials")
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
	tokens   *auth.TokenManager
}

func NewAuthService(repo repository.Authorization, tokens *auth.TokenManager) *AuthService {
	return &AuthService{authRepo: repo, tokens: tokens}
}

// SignUp hashes the password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, apperr.New(apperr.KindValidation, "username is required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindValidation, "password is required", err)
	}

	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindStore, "look up username", err)
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	id, err := s.authRepo.Create(ctx, username, hash)
	if err != nil {
		// the UNIQUE constraint decides under concurrent signups
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, apperr.Wrap(apperr.KindStore, "create user", err)
	}
	return id, nil
}

// GenerateToken validates credentials and returns a signed JWT.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "look up username", err)
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSigningKey) {
			return "", apperr.Wrap(apperr.KindMisconfigured, "token service unavailable", err)
		}
		return "", fmt.Errorf("issue token for user %d: %w", u.ID, err)
	}
	return token, nil
}

// ParseToken verifies a bearer token and returns the user id it carries.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	uid, err := s.tokens.Verify(accessToken)
	if err != nil {
		if errors.Is(err, auth.ErrNoSigningKey) {
			return 0, apperr.Wrap(apperr.KindMisconfigured, "token service unavailable", err)
		}
		return 0, apperr.Wrap(apperr.KindAuth, "invalid token", err)
	}
	return uid, nil
}
