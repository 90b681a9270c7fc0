package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSQLMigrationProducesValidFile(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Care Guides!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_care_guides.sql") {
		t.Fatalf("unexpected filename %q", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created migration: %v", err)
	}
	body := string(b)
	if !strings.Contains(body, "-- +goose Up") || !strings.Contains(body, "-- +goose Down") {
		t.Fatalf("stub missing goose markers:\n%s", body)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration should validate: %v", err)
	}
}

func TestCreateSQLMigrationRejectsUnusableNames(t *testing.T) {
	dir := t.TempDir()

	if _, err := CreateSQLMigration(dir, ""); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := CreateSQLMigration(dir, "!!!"); err == nil {
		t.Fatal("expected error for name with no usable characters")
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "not_versioned.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected validation failure for unversioned filename")
	}
}
