package service

import "github.com/harshjindal13/brainly-fullStack/internal/models"

// CreateContentParams carries the fields a user submits when saving a link.
type CreateContentParams struct {
	Title string
	Link  string
	Type  string // youtube | twitter
	Tags  []string
}

// SharedBrain is the public projection of one user's brain: the owner's
// username plus every saved link, oldest first.
type SharedBrain struct {
	Username string           `json:"username"`
	Content  []models.Content `json:"content"`
}
