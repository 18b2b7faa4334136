package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harshjindal13/brainly-fullStack/internal/models"
)

type ShareLinkSQLite struct {
	db *sql.DB
}

func NewShareLinkSQLite(db *sql.DB) *ShareLinkSQLite {
	return &ShareLinkSQLite{db: db}
}

var _ ShareLinkRepo = (*ShareLinkSQLite)(nil)

const (
	insertShareLinkSQL       = `INSERT INTO share_links (user_id, hash, created_at) VALUES (?, ?, ?)`
	selectShareLinkByUserSQL = `SELECT user_id, hash, created_at FROM share_links WHERE user_id = ?`
	selectShareLinkByHashSQL = `SELECT user_id, hash, created_at FROM share_links WHERE hash = ?`
	deleteShareLinkSQL       = `DELETE FROM share_links WHERE user_id = ?`
)

// Create inserts a share link. The user_id primary key and the unique
// hash column both guard the at-most-one-link invariant: a second link
// for the same user comes back as ErrDuplicateUserLink, a hash held by
// another user as ErrDuplicateHash.
func (r *ShareLinkSQLite) Create(ctx context.Context, link models.ShareLink) error {
	ts := link.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertShareLinkSQL, link.UserID, link.Hash, ts)
	if err != nil {
		switch {
		case isUniqueViolation(err, "share_links.user_id"):
			return ErrDuplicateUserLink
		case isUniqueViolation(err, "share_links.hash"):
			return ErrDuplicateHash
		}
		return fmt.Errorf("insert share link for user %d: %w", link.UserID, err)
	}
	return nil
}

// GetByUserID fetches the user's share link. Returns (nil, nil) if none.
func (r *ShareLinkSQLite) GetByUserID(ctx context.Context, userID int) (*models.ShareLink, error) {
	return r.getOne(ctx, selectShareLinkByUserSQL, userID)
}

// GetByHash fetches the share link holding the hash. Returns (nil, nil) if none.
func (r *ShareLinkSQLite) GetByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	return r.getOne(ctx, selectShareLinkByHashSQL, hash)
}

func (r *ShareLinkSQLite) getOne(ctx context.Context, query string, arg any) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.UserID, &link.Hash, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select share link: %w", err)
	}
	link.CreatedAt = link.CreatedAt.UTC()
	return &link, nil
}

// DeleteByUserID removes the user's share link; no-op when none exists.
func (r *ShareLinkSQLite) DeleteByUserID(ctx context.Context, userID int) error {
	if _, err := r.db.ExecContext(ctx, deleteShareLinkSQL, userID); err != nil {
		return fmt.Errorf("delete share link for user %d: %w", userID, err)
	}
	return nil
}
