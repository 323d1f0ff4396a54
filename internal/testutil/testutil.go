package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"canteenPreOrder/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies
// migrations (schema plus seed users and menu). The shared cache keeps
// the database alive across the pool's connections. Closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// OpenFileDB opens a migrated SQLite database backed by a file under a
// test temp dir. Use this for tests that hammer the database from many
// goroutines: file-backed WAL databases give the real write-lock
// serialization, which shared-cache in-memory databases do not.
func OpenFileDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), name))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeededUserID returns the id of a user created by the seed migration.
func SeededUserID(t *testing.T, d *sql.DB, username string) int64 {
	t.Helper()
	var id int64
	if err := d.QueryRowContext(context.Background(), `SELECT id FROM users WHERE username = ?`, username).Scan(&id); err != nil {
		t.Fatalf("seeded user %q not found: %v", username, err)
	}
	return id
}

// MenuItemIDByName returns the id of a seeded menu item.
func MenuItemIDByName(t *testing.T, d *sql.DB, name string) int64 {
	t.Helper()
	var id int64
	if err := d.QueryRowContext(context.Background(), `SELECT id FROM menu_items WHERE name = ?`, name).Scan(&id); err != nil {
		t.Fatalf("menu item %q not found: %v", name, err)
	}
	return id
}
