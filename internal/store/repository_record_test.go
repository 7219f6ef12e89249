package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/password-vault/internal/logger"
	"github.com/MKhiriev/password-vault/models"
)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vaultRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testDraft() models.EncryptedDraft {
	return models.EncryptedDraft{
		Title:    "ct-title",
		Username: "ct-username",
		Password: "ct-password",
		Notes:    "ct-notes",
	}
}

func TestVaultRepository_ListByUser(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "title", "username", "password", "notes", "created_at"}).
		AddRow("id-2", "t2", "u2", "p2", "", created).
		AddRow("id-1", "t1", "u1", "p1", "n1", created.AddDate(0, 0, -1))

	mock.ExpectQuery("SELECT id, title, username, password, notes, created_at FROM vault_records").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "id-2" {
		t.Errorf("expected id-2 first, got %s", records[0].ID)
	}
	if records[0].CreatedAt != "2026-08-30" {
		t.Errorf("expected wire date 2026-08-30, got %s", records[0].CreatedAt)
	}
	if records[1].Notes != "n1" {
		t.Errorf("expected notes n1, got %s", records[1].Notes)
	}
}

func TestVaultRepository_ListByUser_Empty(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "username", "password", "notes", "created_at"})

	mock.ExpectQuery("SELECT id, title, username, password, notes, created_at FROM vault_records").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestVaultRepository_ListByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, username, password, notes, created_at FROM vault_records").
		WithArgs(int64(7)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListByUser(context.Background(), 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestVaultRepository_GetByID(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "title", "username", "password", "notes", "created_at"}).
		AddRow("id-1", "t1", "u1", "p1", "n1", created)

	mock.ExpectQuery("SELECT id, title, username, password, notes, created_at FROM vault_records").
		WithArgs("id-1", int64(7)).
		WillReturnRows(rows)

	record, err := repo.GetByID(context.Background(), 7, "id-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "id-1" {
		t.Errorf("expected id-1, got %s", record.ID)
	}
	if record.CreatedAt != "2026-08-30" {
		t.Errorf("expected wire date 2026-08-30, got %s", record.CreatedAt)
	}
}

func TestVaultRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title, username, password, notes, created_at FROM vault_records").
		WithArgs("missing", int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 7, "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestVaultRepository_Create(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	draft := testDraft()
	created := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "title", "username", "password", "notes", "created_at"}).
		AddRow("new-id", string(draft.Title), string(draft.Username), string(draft.Password), string(draft.Notes), created)

	mock.ExpectQuery("INSERT INTO vault_records").
		WithArgs("new-id", int64(7), string(draft.Title), string(draft.Username), string(draft.Password), string(draft.Notes)).
		WillReturnRows(rows)

	record, err := repo.Create(context.Background(), 7, "new-id", draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "new-id" {
		t.Errorf("expected id new-id, got %s", record.ID)
	}
	if record.CreatedAt != "2026-08-30" {
		t.Errorf("expected wire date 2026-08-30, got %s", record.CreatedAt)
	}
}

func TestVaultRepository_Update(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	draft := testDraft()
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.
		NewRows([]string{"id", "title", "username", "password", "notes", "created_at"}).
		AddRow("id-1", string(draft.Title), string(draft.Username), string(draft.Password), string(draft.Notes), created)

	mock.ExpectQuery("UPDATE vault_records").
		WithArgs(string(draft.Title), string(draft.Username), string(draft.Password), string(draft.Notes), "id-1", int64(7)).
		WillReturnRows(rows)

	record, err := repo.Update(context.Background(), 7, "id-1", draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.CreatedAt != "2026-08-01" {
		t.Errorf("expected original creation date preserved, got %s", record.CreatedAt)
	}
}

func TestVaultRepository_Update_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "title", "username", "password", "notes", "created_at"})

	mock.ExpectQuery("UPDATE vault_records").
		WillReturnRows(rows)

	_, err := repo.Update(context.Background(), 7, "missing", testDraft())
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestVaultRepository_Delete(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_records").
		WithArgs("id-1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 7, "id-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVaultRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM vault_records").
		WithArgs("missing", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 7, "missing")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
