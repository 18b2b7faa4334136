package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harshjindal13/brainly-fullStack/internal/models"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestContentCreate_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	// We don't know the generated id or timestamp, but we can pin the rest.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO content (id, title, link, type, tags, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(),
			"Go proverbs", "https://youtube.com/watch?v=PAAkCSZUG1c", "youtube",
			`["go","talks"]`, 7,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(ctx(t), models.Content{
		// ID empty -> repo generates
		// CreatedAt zero -> repo sets UTC now
		Title:  "Go proverbs",
		Link:   "https://youtube.com/watch?v=PAAkCSZUG1c",
		Type:   "youtube",
		Tags:   []string{"go", "talks"},
		UserID: 7,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentCreate_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	mock.ExpectExec("INSERT INTO content").
		WillReturnError(errors.New("down"))

	err = repo.Create(ctx(t), models.Content{
		Title:  "x",
		Link:   "https://x.com/golang/status/1",
		Type:   "twitter",
		UserID: 1,
	})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentListByUser_NoFilter_And_TagsParsing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "title", "link", "type", "tags", "user_id", "created_at"}).
		AddRow("c1", "t1", "https://youtu.be/a", "youtube", `["go","talks"]`, 7, now).
		AddRow("c2", "t2", "https://x.com/b", "twitter", nil, 7, now.Add(time.Hour)).
		AddRow("c3", "t3", "https://youtu.be/c", "youtube", `{not: "an array"}`, 7, now.Add(2*time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, link, type, tags, user_id, created_at FROM content WHERE user_id = ? ORDER BY created_at ASC`)).
		WithArgs(7).
		WillReturnRows(rows)

	got, err := repo.ListByUser(ctx(t), 7, "")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	if got[0].ID != "c1" || got[1].ID != "c2" || got[2].ID != "c3" {
		t.Fatalf("unexpected ids: %v, %v, %v", got[0].ID, got[1].ID, got[2].ID)
	}
	// tags parsed
	if len(got[0].Tags) != 2 || got[0].Tags[0] != "go" || got[0].Tags[1] != "talks" {
		t.Fatalf("tags mismatch: %v", got[0].Tags)
	}
	// nil tags stay nil
	if got[1].Tags != nil {
		t.Fatalf("expected nil tags, got %#v", got[1].Tags)
	}
	// malformed tags cell drops the tags, keeps the row
	if got[2].Tags != nil {
		t.Fatalf("expected malformed tags to be dropped, got %#v", got[2].Tags)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentListByUser_TypeFilter_NormalizedArgs(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	query := `SELECT id, title, link, type, tags, user_id, created_at FROM content WHERE user_id = ? AND type = ? ORDER BY created_at ASC`

	rows := sqlmock.NewRows([]string{"id", "title", "link", "type", "tags", "user_id", "created_at"}).
		AddRow("c9", "only yt", "https://youtu.be/z", "youtube", nil, 3, now)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(3, "youtube").
		WillReturnRows(rows)

	got, err := repo.ListByUser(ctx(t), 3, "  YouTube ") // will be normalized to youtube
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c9" {
		t.Fatalf("unexpected results: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentListByUser_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	rows := sqlmock.NewRows([]string{"id", "title", "link", "type", "tags", "user_id", "created_at"}).
		// created_at wrong type to force scan error
		AddRow("x", "t", "l", "youtube", nil, 1, 123)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, link, type, tags, user_id, created_at FROM content WHERE user_id = ? ORDER BY created_at ASC`)).
		WithArgs(1).
		WillReturnRows(rows)

	_, err = repo.ListByUser(ctx(t), 1, "")
	if err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentDelete_ScopedToOwner(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).
		WithArgs("c1", 7).
		WillReturnResult(sqlmock.NewResult(0, 0)) // someone else's row: nothing deleted

	if err := repo.Delete(ctx(t), 7, "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestContentDelete_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {

		}
	}(db)

	repo := NewContentSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(deleteContentSQL)).
		WithArgs("c1", 7).
		WillReturnError(errors.New("down"))

	err = repo.Delete(ctx(t), 7, "c1")
	if err == nil || !strings.Contains(err.Error(), "delete content") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
