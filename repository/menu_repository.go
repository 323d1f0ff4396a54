package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"canteenPreOrder/models"
)

// MenuRepository reads the seeded menu. Menu items are reference data:
// there is no write path outside the seed migration.
type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// List returns all menu items ordered by meal, then name.
func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, meal, img FROM menu_items ORDER BY meal, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Meal, &m.Img); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupByMeal returns the menu bucketed by meal, each bucket in name order.
func (r *MenuRepository) GroupByMeal(ctx context.Context) (map[models.Meal][]models.MenuItem, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[models.Meal][]models.MenuItem, 3)
	for _, m := range items {
		grouped[m.Meal] = append(grouped[m.Meal], m)
	}
	return grouped, nil
}

// Exists reports whether a menu item with the given id exists.
func (r *MenuRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM menu_items WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
