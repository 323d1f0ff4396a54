package repository

import (
	"context"
	"testing"

	"canteenPreOrder/internal/testutil"
	"canteenPreOrder/models"
)

func TestTotalsByItem_ZeroSelections(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "totals_zero")
	repo := NewSelectionRepository(d)

	totals, err := repo.TotalsByItem(context.Background(), "2025-06-01")
	if err != nil {
		t.Fatalf("TotalsByItem: %v", err)
	}
	if len(totals) != 30 {
		t.Fatalf("expected all 30 seeded items, got %d", len(totals))
	}
	for _, tt := range totals {
		if tt.Total != 0 {
			t.Errorf("item %q: total %d, want 0", tt.Name, tt.Total)
		}
	}
}

func TestTotalsByItem_SumsAcrossUsers(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "totals_sum")
	repo := NewSelectionRepository(d)
	ctx := context.Background()
	student1 := testutil.SeededUserID(t, d, "student1")
	student2 := testutil.SeededUserID(t, d, "student2")
	staff1 := testutil.SeededUserID(t, d, "staff1")
	poha := testutil.MenuItemIDByName(t, d, "Poha")

	for userID, qty := range map[int64]int{student1: 3, student2: 2, staff1: 4} {
		if _, err := repo.SetQuantity(ctx, userID, poha, testDate, qty); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	// A selection for another date must not leak into the total.
	if _, err := repo.SetQuantity(ctx, student1, poha, "2025-02-01", 50); err != nil {
		t.Fatalf("set other date: %v", err)
	}

	totals, err := repo.TotalsByItem(ctx, testDate)
	if err != nil {
		t.Fatalf("TotalsByItem: %v", err)
	}
	found := false
	for _, tt := range totals {
		if tt.Name == "Poha" {
			found = true
			if tt.Total != 9 {
				t.Fatalf("Poha total = %d, want 9", tt.Total)
			}
		}
	}
	if !found {
		t.Fatalf("Poha missing from totals")
	}
	// Ordering: meal groups ascend, names ascend within a meal.
	for i := 1; i < len(totals); i++ {
		prev, cur := totals[i-1], totals[i]
		if prev.Meal == cur.Meal && prev.Name > cur.Name {
			t.Fatalf("totals out of name order: %q before %q", prev.Name, cur.Name)
		}
	}
}

func TestUserwise_OrderAndContent(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userwise")
	repo := NewSelectionRepository(d)
	ctx := context.Background()
	student1 := testutil.SeededUserID(t, d, "student1")
	staff1 := testutil.SeededUserID(t, d, "staff1")
	poha := testutil.MenuItemIDByName(t, d, "Poha")
	tea := testutil.MenuItemIDByName(t, d, "Tea")

	if _, err := repo.SetQuantity(ctx, student1, tea, testDate, 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := repo.SetQuantity(ctx, student1, poha, testDate, 2); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := repo.SetQuantity(ctx, staff1, poha, testDate, 3); err != nil {
		t.Fatalf("set: %v", err)
	}

	rows, err := repo.Userwise(ctx, testDate)
	if err != nil {
		t.Fatalf("Userwise: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// staff1 sorts before student1; within student1, Poha before Tea.
	want := []struct {
		username string
		item     string
		qty      int
	}{
		{"staff1", "Poha", 3},
		{"student1", "Poha", 2},
		{"student1", "Tea", 1},
	}
	for i, w := range want {
		if rows[i].Username != w.username || rows[i].Item != w.item || rows[i].Quantity != w.qty {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
	if rows[0].Role != models.RoleStaff || rows[1].Role != models.RoleStudent {
		t.Fatalf("roles not joined: %+v", rows[:2])
	}
	if rows[0].CreatedAt == "" {
		t.Fatalf("created_at missing")
	}
}

func TestListForUser(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "list_for_user")
	repo := NewSelectionRepository(d)
	ctx := context.Background()
	student1 := testutil.SeededUserID(t, d, "student1")
	student2 := testutil.SeededUserID(t, d, "student2")
	poha := testutil.MenuItemIDByName(t, d, "Poha")

	if _, err := repo.SetQuantity(ctx, student1, poha, testDate, 3); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := repo.SetQuantity(ctx, student2, poha, testDate, 8); err != nil {
		t.Fatalf("set: %v", err)
	}

	list, err := repo.ListForUser(ctx, student1, testDate)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 selection, got %d", len(list))
	}
	got := list[0]
	if got.Name != "Poha" || got.Quantity != 3 || got.Meal != models.MealBreakfast || got.Img == "" {
		t.Fatalf("unexpected detail: %+v", got)
	}

	// Empty for a date with nothing selected.
	list, err = repo.ListForUser(ctx, student1, "2030-01-01")
	if err != nil {
		t.Fatalf("ListForUser empty: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no selections, got %d", len(list))
	}
}
