package db

import (
	"path/filepath"
	"testing"
)

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var applied int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 3 {
		t.Fatalf("expected 3 applied migrations, got %d", applied)
	}
	var users, items int
	if err := d.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := d.QueryRow(`SELECT COUNT(*) FROM menu_items`).Scan(&items); err != nil {
		t.Fatalf("count menu items: %v", err)
	}
	if users != 5 || items != 30 {
		t.Fatalf("seed mismatch: %d users, %d items", users, items)
	}
	_ = d.Close()

	// Reopening must not reseed.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()
	if err := d.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		t.Fatalf("count users after reopen: %v", err)
	}
	if users != 5 {
		t.Fatalf("reseeded on reopen: %d users", users)
	}
}

func TestSchemaInvariants(t *testing.T) {
	d, err := Open(filepath.Join(t.TempDir(), "invariants.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	// A nonpositive quantity never reaches the table.
	if _, err := d.Exec(`INSERT INTO selections (user_id, menu_item_id, selected_for_date, quantity) VALUES (1, 1, '2025-01-10', 0)`); err == nil {
		t.Fatalf("zero quantity accepted by schema")
	}

	// At most one row per (user, item, date).
	if _, err := d.Exec(`INSERT INTO selections (user_id, menu_item_id, selected_for_date, quantity) VALUES (1, 1, '2025-01-10', 2)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO selections (user_id, menu_item_id, selected_for_date, quantity) VALUES (1, 1, '2025-01-10', 3)`); err == nil {
		t.Fatalf("duplicate triple accepted by schema")
	}

	// Foreign keys are on: a selection cannot reference a missing item.
	if _, err := d.Exec(`INSERT INTO selections (user_id, menu_item_id, selected_for_date, quantity) VALUES (1, 99999, '2025-01-10', 2)`); err == nil {
		t.Fatalf("dangling menu_item_id accepted")
	}

	// Usernames are unique.
	if _, err := d.Exec(`INSERT INTO users (username, password, role) VALUES ('student1', 'x', 'student')`); err == nil {
		t.Fatalf("duplicate username accepted")
	}
}

func TestWithImmediateTxLock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"food.db", "food.db?_txlock=immediate"},
		{"file:x?mode=memory", "file:x?mode=memory&_txlock=immediate"},
		{"food.db?_txlock=deferred", "food.db?_txlock=deferred"},
		{"file:y?cache=shared&_txlock=immediate", "file:y?cache=shared&_txlock=immediate"},
	}
	for _, c := range cases {
		if got := withImmediateTxLock(c.in); got != c.want {
			t.Errorf("withImmediateTxLock(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
