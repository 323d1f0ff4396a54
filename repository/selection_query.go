package repository

import (
	"context"
	"time"

	"canteenPreOrder/models"
)

// ListForUser returns the caller's selections for a date joined with the
// menu item details.
func (r *SelectionRepository) ListForUser(ctx context.Context, userID int64, date string) ([]models.SelectionDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT s.id, s.menu_item_id, s.quantity, m.name, m.meal, m.img
FROM selections s JOIN menu_items m ON m.id = s.menu_item_id
WHERE s.user_id = ? AND s.selected_for_date = ?
ORDER BY m.meal, m.name`, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.SelectionDetail
	for rows.Next() {
		var d models.SelectionDetail
		if err := rows.Scan(&d.ID, &d.MenuItemID, &d.Quantity, &d.Name, &d.Meal, &d.Img); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TotalsByItem returns every menu item with its summed quantity across
// all users for a date. The LEFT JOIN keeps items nobody selected in the
// result with a total of 0. Ordered by meal, then name.
func (r *SelectionRepository) TotalsByItem(ctx context.Context, date string) ([]models.ItemTotal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT m.id, m.name, m.meal, m.img, IFNULL(SUM(s.quantity), 0) AS total
FROM menu_items m
LEFT JOIN selections s ON s.menu_item_id = m.id AND s.selected_for_date = ?
GROUP BY m.id
ORDER BY m.meal, m.name`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.ItemTotal
	for rows.Next() {
		var t models.ItemTotal
		if err := rows.Scan(&t.MenuItemID, &t.Name, &t.Meal, &t.Img, &t.Total); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Userwise returns every selection for a date joined with its user and
// menu item, ordered by username, then meal, then item name.
func (r *SelectionRepository) Userwise(ctx context.Context, date string) ([]models.UserwiseRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT u.username, u.role, m.name AS item, m.meal, s.quantity, s.created_at
FROM selections s
JOIN users u ON u.id = s.user_id
JOIN menu_items m ON m.id = s.menu_item_id
WHERE s.selected_for_date = ?
ORDER BY u.username, m.meal, m.name`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.UserwiseRow
	for rows.Next() {
		var w models.UserwiseRow
		if err := rows.Scan(&w.Username, &w.Role, &w.Item, &w.Meal, &w.Quantity, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
