package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/harshjindal13/brainly-fullStack/internal/apperr"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
	"github.com/harshjindal13/brainly-fullStack/internal/repository"
)

const (
	shareHashLen      = 10
	shareHashAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// attempts before giving up when generated hashes keep colliding
	maxHashAttempts = 3
)

// Domain errors for share flows. A link whose owner row is gone is kept
// distinct from an unknown hash, though both answer the same status.
var (
	ErrShareLinkNotFound = apperr.New(apperr.KindNotFound, "Sorry incorrect input")
	ErrShareOwnerMissing = apperr.New(apperr.KindNotFound, "user not found")
)

type ShareService struct {
	shareRepo   repository.ShareLinkRepo
	authRepo    repository.Authorization
	contentRepo repository.ContentRepo
}

func NewShareService(shareRepo repository.ShareLinkRepo, authRepo repository.Authorization, contentRepo repository.ContentRepo) *ShareService {
	return &ShareService{shareRepo: shareRepo, authRepo: authRepo, contentRepo: contentRepo}
}

// generateHash draws a fixed-length random hash from the base62 alphabet.
func generateHash() (string, error) {
	b := make([]byte, shareHashLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate share hash: %w", err)
	}
	for i := range b {
		b[i] = shareHashAlphabet[int(b[i])%len(shareHashAlphabet)]
	}
	return string(b), nil
}

// SetSharing enables or disables the user's public share link and returns
// the live hash when enabling. Enabling is lookup-or-create: an existing
// hash is returned unchanged, never regenerated. Disabling deletes the
// link and is idempotent; re-enabling later mints a fresh hash.
func (s *ShareService) SetSharing(ctx context.Context, userID int, enabled bool) (string, error) {
	if !enabled {
		if err := s.shareRepo.DeleteByUserID(ctx, userID); err != nil {
			return "", apperr.Wrap(apperr.KindStore, "remove share link", err)
		}
		return "", nil
	}

	existing, err := s.shareRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "look up share link", err)
	}
	if existing != nil {
		return existing.Hash, nil
	}

	for attempt := 0; attempt < maxHashAttempts; attempt++ {
		hash, err := generateHash()
		if err != nil {
			return "", apperr.Wrap(apperr.KindStore, "generate share hash", err)
		}

		err = s.shareRepo.Create(ctx, models.ShareLink{UserID: userID, Hash: hash})
		switch {
		case err == nil:
			return hash, nil
		case errors.Is(err, repository.ErrDuplicateUserLink):
			// lost a concurrent enable; the winner's hash is the answer
			winner, err := s.shareRepo.GetByUserID(ctx, userID)
			if err != nil {
				return "", apperr.Wrap(apperr.KindStore, "re-read share link", err)
			}
			if winner == nil {
				// the racing link was disabled already; retry with a fresh hash
				continue
			}
			return winner.Hash, nil
		case errors.Is(err, repository.ErrDuplicateHash):
			// another user holds this hash; regenerate
			continue
		default:
			return "", apperr.Wrap(apperr.KindStore, "save share link", err)
		}
	}
	return "", apperr.New(apperr.KindStore, "could not allocate a share hash")
}

// Resolve maps a public hash to the owner's username and full content
// collection. This is the unauthenticated read path.
func (s *ShareService) Resolve(ctx context.Context, hash string) (SharedBrain, error) {
	link, err := s.shareRepo.GetByHash(ctx, hash)
	if err != nil {
		return SharedBrain{}, apperr.Wrap(apperr.KindStore, "look up share hash", err)
	}
	if link == nil {
		return SharedBrain{}, ErrShareLinkNotFound
	}

	owner, err := s.authRepo.GetByID(ctx, link.UserID)
	if err != nil {
		return SharedBrain{}, apperr.Wrap(apperr.KindStore, "load share owner", err)
	}
	if owner == nil {
		return SharedBrain{}, ErrShareOwnerMissing
	}

	content, err := s.contentRepo.ListByUser(ctx, link.UserID, "")
	if err != nil {
		return SharedBrain{}, apperr.Wrap(apperr.KindStore, "load shared content", err)
	}

	return SharedBrain{Username: owner.Username, Content: content}, nil
}
