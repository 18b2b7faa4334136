package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshjindal13/brainly-fullStack/internal/apperr"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
	"github.com/harshjindal13/brainly-fullStack/internal/repository"
)

type ContentService struct {
	contentRepo repository.ContentRepo
}

func NewContentService(contentRepo repository.ContentRepo) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

var (
	errMissingTitle     = apperr.New(apperr.KindValidation, "title is required")
	errMissingLink      = apperr.New(apperr.KindValidation, "link is required")
	errInvalidType      = apperr.New(apperr.KindValidation, "type must be youtube or twitter")
	errMissingContentID = apperr.New(apperr.KindValidation, "contentId is required")
)

// normalizeContentType trims and lowercases a type and checks it against
// the closed set. An empty value passes through for filter use.
func normalizeContentType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", models.ContentTypeYouTube, models.ContentTypeTwitter:
		return s, nil
	default:
		return "", errInvalidType
	}
}

// Create validates and persists a new saved link owned by userID.
func (s *ContentService) Create(ctx context.Context, userID int, p CreateContentParams) (models.Content, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return models.Content{}, errMissingTitle
	}
	link := strings.TrimSpace(p.Link)
	if link == "" {
		return models.Content{}, errMissingLink
	}
	typ, err := normalizeContentType(p.Type)
	if err != nil || typ == "" {
		return models.Content{}, errInvalidType
	}

	c := models.Content{
		ID:        uuid.NewString(),
		Title:     title,
		Link:      link,
		Type:      typ,
		Tags:      p.Tags,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contentRepo.Create(ctx, c); err != nil {
		return models.Content{}, apperr.Wrap(apperr.KindStore, "save content", err)
	}
	return c, nil
}

// List returns the user's saved links, optionally narrowed by type.
func (s *ContentService) List(ctx context.Context, userID int, contentType string) ([]models.Content, error) {
	typ, err := normalizeContentType(contentType)
	if err != nil {
		return nil, err
	}
	items, err := s.contentRepo.ListByUser(ctx, userID, typ)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "list content", err)
	}
	return items, nil
}

// Delete removes one saved link if the user owns it. Unknown ids and
// other users' rows are a no-op, not an error.
func (s *ContentService) Delete(ctx context.Context, userID int, contentID string) error {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return errMissingContentID
	}
	if err := s.contentRepo.Delete(ctx, userID, contentID); err != nil {
		return apperr.Wrap(apperr.KindStore, "delete content", err)
	}
	return nil
}
