package models

import "time"

// Content types a user can save. The frontend renders each kind with its
// own embed widget, so unknown types are rejected at the API boundary.
const (
	ContentTypeYouTube = "youtube"
	ContentTypeTwitter = "twitter"
)

// Content is a single saved link in a user's brain.
type Content struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Type      string    `json:"type"` // youtube | twitter
	Tags      []string  `json:"tags,omitempty"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
