package service

import (
	"context"

	"github.com/harshjindal13/brainly-fullStack/internal/auth"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
	"github.com/harshjindal13/brainly-fullStack/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Contents exposes the saved-link operations, always scoped to the owner.
type Contents interface {
	Create(ctx context.Context, userID int, p CreateContentParams) (models.Content, error)
	List(ctx context.Context, userID int, contentType string) ([]models.Content, error)
	Delete(ctx context.Context, userID int, contentID string) error
}

// Sharing owns the share-link registry and the public resolver.
type Sharing interface {
	SetSharing(ctx context.Context, userID int, enabled bool) (string, error)
	Resolve(ctx context.Context, hash string) (SharedBrain, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Contents
	Sharing
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokens *auth.TokenManager) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens),
		Contents:      NewContentService(repos.Contents),
		Sharing:       NewShareService(repos.ShareLinks, repos.Auth, repos.Contents),
	}
}
