package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"canteenPreOrder/models"
)

// ErrMenuItemNotFound is returned when a reconcile targets a menu item
// that does not exist. No mutation happens in that case.
var ErrMenuItemNotFound = errors.New("menu item not found")

// SelectionRepository owns all writes to the selections table. It keeps
// two invariants: at most one row per (user, item, date), and every
// stored quantity is positive. Reconciling to zero or below deletes the
// row.
//
// Both reconcile operations run their read-modify-write inside a single
// transaction. The database is opened with _txlock=immediate, so the
// transaction holds the write lock from BEGIN and concurrent reconciles
// on the same triple serialize: no update is ever lost.
type SelectionRepository struct {
	db *sql.DB
}

func NewSelectionRepository(db *sql.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

// SetQuantity reconciles the triple to exactly quantity. A quantity of
// zero or below removes the row. Returns the stored quantity after the
// operation (0 when the row is absent).
func (r *SelectionRepository) SetQuantity(ctx context.Context, userID, menuItemID int64, date string, quantity int) (int, error) {
	return r.reconcile(ctx, userID, menuItemID, date, func(current int, exists bool) int {
		return quantity
	})
}

// ChangeQuantity reconciles the triple to current+delta, where current is
// zero when no row exists. A nonpositive result removes the row. Returns
// the stored quantity after the operation.
func (r *SelectionRepository) ChangeQuantity(ctx context.Context, userID, menuItemID int64, date string, delta int) (int, error) {
	return r.reconcile(ctx, userID, menuItemID, date, func(current int, exists bool) int {
		return current + delta
	})
}

// reconcile applies target to the triple's current state inside one
// transaction and makes the stored row match the result: insert when a
// positive quantity appears, update when it changes, delete when it drops
// to zero or below.
func (r *SelectionRepository) reconcile(ctx context.Context, userID, menuItemID int64, date string, target func(current int, exists bool) int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	// Reject unknown items before touching selections.
	var one int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM menu_items WHERE id = ?`, menuItemID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrMenuItemNotFound
		}
		return 0, err
	}

	var rowID int64
	var current int
	exists := true
	err = tx.QueryRowContext(ctx, `SELECT id, quantity FROM selections WHERE user_id = ? AND menu_item_id = ? AND selected_for_date = ?`,
		userID, menuItemID, date).Scan(&rowID, &current)
	if errors.Is(err, sql.ErrNoRows) {
		exists = false
		current = 0
	} else if err != nil {
		return 0, err
	}

	next := target(current, exists)
	switch {
	case !exists && next <= 0:
		// Nothing stored, nothing to store.
		return 0, tx.Commit()
	case !exists:
		if _, err := tx.ExecContext(ctx, `INSERT INTO selections (user_id, menu_item_id, selected_for_date, quantity) VALUES (?, ?, ?, ?)`,
			userID, menuItemID, date, next); err != nil {
			return 0, err
		}
		return next, tx.Commit()
	case next <= 0:
		if _, err := tx.ExecContext(ctx, `DELETE FROM selections WHERE id = ?`, rowID); err != nil {
			return 0, err
		}
		return 0, tx.Commit()
	default:
		// created_at is set once at insert and stays untouched here.
		if _, err := tx.ExecContext(ctx, `UPDATE selections SET quantity = ? WHERE id = ?`, next, rowID); err != nil {
			return 0, err
		}
		return next, tx.Commit()
	}
}

// Get returns the selection for a triple, or nil when absent.
func (r *SelectionRepository) Get(ctx context.Context, userID, menuItemID int64, date string) (*models.Selection, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s models.Selection
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id, menu_item_id, selected_for_date, quantity, created_at FROM selections WHERE user_id = ? AND menu_item_id = ? AND selected_for_date = ?`,
		userID, menuItemID, date).Scan(&s.ID, &s.UserID, &s.MenuItemID, &s.SelectedForDate, &s.Quantity, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
