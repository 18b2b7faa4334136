package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/harshjindal13/brainly-fullStack/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type ContentRepo interface {
	Create(ctx context.Context, c models.Content) error
	ListByUser(ctx context.Context, userID int, contentType string) ([]models.Content, error)
	Delete(ctx context.Context, userID int, contentID string) error
}

type ShareLinkRepo interface {
	Create(ctx context.Context, link models.ShareLink) error
	GetByUserID(ctx context.Context, userID int) (*models.ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

// Sentinel errors raised when a storage uniqueness constraint fires.
// Services match on these instead of parsing driver messages.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateUserLink = errors.New("share link already exists for user")
	ErrDuplicateHash     = errors.New("share hash already in use")
)

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure on the given table.column.
func isUniqueViolation(err error, column string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

type Repository struct {
	Auth       Authorization
	Contents   ContentRepo
	ShareLinks ShareLinkRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Contents:   NewContentSQLite(db),
		ShareLinks: NewShareLinkSQLite(db),
	}
}
