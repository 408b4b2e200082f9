package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations should validate: %v", err)
	}
}

func TestUsersMigrationDefinesUniqueIdentity(t *testing.T) {
	sql := readMigration(t, "create_users")
	for _, index := range []string{"users_email_key", "users_username_key"} {
		if !strings.Contains(sql, index) {
			t.Fatalf("users migration missing unique index %s", index)
		}
	}
	if !strings.Contains(sql, "otp") {
		t.Fatalf("users migration missing otp column")
	}
}

func TestTokensMigrationEnforcesSingleTokenPerUser(t *testing.T) {
	sql := readMigration(t, "create_auth_tokens")
	if !strings.Contains(sql, "auth_tokens_user_id_key") {
		t.Fatalf("tokens migration missing unique user index")
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "01_bad.sql")
	if err := os.WriteFile(bad, []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatalf("expected error for malformed filename")
	}
}

func readMigration(t *testing.T, suffix string) string {
	t.Helper()
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix+".sql") {
			b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
			if err != nil {
				t.Fatalf("read %s: %v", e.Name(), err)
			}
			return string(b)
		}
	}
	t.Fatalf("migration %s not found", suffix)
	return ""
}
