package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates a database in a temporary directory.
func setupTestDB(t testing.TB) (db *Database, dbPath string) {
	t.Helper()

	dbPath = filepath.Join(t.TempDir(), "test.db")
	db, err := New(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db, dbPath
}

func TestNewIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, dbPath := setupTestDB(t)
	if db.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", db.Path(), dbPath)
	}

	n, err := db.CountFormats(context.Background())
	if err != nil {
		t.Fatalf("CountFormats failed: %v", err)
	}
	if n != 0 {
		t.Errorf("new database has %d formats, want 0", n)
	}
}

func TestNewMissingDirectoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	dbPath := filepath.Join(t.TempDir(), "missing", "test.db")
	if _, err := New(context.Background(), dbPath); err == nil {
		t.Error("expected error opening database in missing directory")
	}
}

func TestSaveAndListFormatsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, _ := setupTestDB(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)

	for key, pattern := range map[string]string{
		"month_and_year": "%B %Y",
		"mine":           "%Y-%m-%d %H:%M:%S",
	} {
		if err := db.SaveFormat(ctx, key, pattern); err != nil {
			t.Fatalf("SaveFormat(%q) failed: %v", key, err)
		}
	}

	formats, err := db.ListFormats(ctx)
	if err != nil {
		t.Fatalf("ListFormats failed: %v", err)
	}
	if len(formats) != 2 {
		t.Fatalf("ListFormats returned %d formats, want 2", len(formats))
	}
	if formats[0].Key != "mine" || formats[1].Key != "month_and_year" {
		t.Errorf("ListFormats not ordered by key: %+v", formats)
	}
	if formats[1].Pattern != "%B %Y" {
		t.Errorf("month_and_year pattern = %q, want %%B %%Y", formats[1].Pattern)
	}
	if formats[0].UpdatedAt.Before(before.Truncate(time.Second)) {
		t.Errorf("UpdatedAt %v is before test start %v", formats[0].UpdatedAt, before)
	}
}

func TestSaveFormatReplacesIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, _ := setupTestDB(t)
	ctx := context.Background()

	if err := db.SaveFormat(ctx, "short", "%d %b"); err != nil {
		t.Fatalf("SaveFormat failed: %v", err)
	}
	if err := db.SaveFormat(ctx, "short", "%e %b"); err != nil {
		t.Fatalf("SaveFormat failed: %v", err)
	}

	formats, err := db.ListFormats(ctx)
	if err != nil {
		t.Fatalf("ListFormats failed: %v", err)
	}
	if len(formats) != 1 {
		t.Fatalf("expected 1 format after replace, got %d", len(formats))
	}
	if formats[0].Pattern != "%e %b" {
		t.Errorf("pattern = %q, want the replacement", formats[0].Pattern)
	}
}

func TestSaveFormatEmptyIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, _ := setupTestDB(t)
	ctx := context.Background()

	if err := db.SaveFormat(ctx, "", "%Y"); !errors.Is(err, ErrEmptyFormat) {
		t.Errorf("empty key error = %v, want ErrEmptyFormat", err)
	}
	if err := db.SaveFormat(ctx, "k", ""); !errors.Is(err, ErrEmptyFormat) {
		t.Errorf("empty pattern error = %v, want ErrEmptyFormat", err)
	}
}

func TestFormatsSurviveReopenIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	db, err := New(ctx, dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := db.SaveFormat(ctx, "mine", "%Y"); err != nil {
		t.Fatalf("SaveFormat failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := New(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	n, err := reopened.CountFormats(ctx)
	if err != nil {
		t.Fatalf("CountFormats failed: %v", err)
	}
	if n != 1 {
		t.Errorf("CountFormats after reopen = %d, want 1", n)
	}
}

func TestListFormatsCanceledContextIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, _ := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := db.ListFormats(ctx); err == nil {
		t.Error("expected error with canceled context")
	}
}
