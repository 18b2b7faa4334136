package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
)

type ContentSQLite struct {
	db *sql.DB
}

func NewContentSQLite(db *sql.DB) *ContentSQLite { return &ContentSQLite{db: db} }

var _ ContentRepo = (*ContentSQLite)(nil)

// marshalTags converts the slice to a JSON string for the tags column.
func marshalTags(tags []string) (string, error) {
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalTags parses a JSON string into a slice.
func unmarshalTags(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a content row. If ID or CreatedAt are empty, they're set.
func (r *ContentSQLite) Create(ctx context.Context, c models.Content) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	} else {
		c.CreatedAt = c.CreatedAt.UTC()
	}

	tagsJSON, err := marshalTags(c.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags for content %q: %w", c.ID, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO content (id, title, link, type, tags, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID,
		c.Title,
		c.Link,
		c.Type,
		tagsJSON,
		c.UserID,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert content %q: %w", c.ID, err)
	}
	return nil
}

// ListByUser returns the user's content ordered oldest first, optionally
// narrowed to a single type.
func (r *ContentSQLite) ListByUser(ctx context.Context, userID int, contentType string) ([]models.Content, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if contentType = strings.ToLower(strings.TrimSpace(contentType)); contentType != "" {
		conds = append(conds, "type = ?")
		args = append(args, contentType)
	}

	q := `SELECT id, title, link, type, tags, user_id, created_at FROM content`
	q += " WHERE " + strings.Join(conds, " AND ")
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Content, 0, 16)
	for rows.Next() {
		var c models.Content
		var tagsStr sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &c.Link, &c.Type, &tagsStr, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()

		if tagsStr.Valid && tagsStr.String != "" {
			// a malformed tags cell drops the tags, not the row
			if tags, err := unmarshalTags(tagsStr.String); err == nil {
				c.Tags = tags
			}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const deleteContentSQL = `DELETE FROM content WHERE id = ? AND user_id = ?`

// Delete removes a content row owned by the user. Rows that do not exist
// or belong to someone else are left untouched and no error is raised.
func (r *ContentSQLite) Delete(ctx context.Context, userID int, contentID string) error {
	if _, err := r.db.ExecContext(ctx, deleteContentSQL, contentID, userID); err != nil {
		return fmt.Errorf("delete content %q: %w", contentID, err)
	}
	return nil
}
