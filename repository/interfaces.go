package repository

import (
	"context"

	"canteenPreOrder/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	GetByCredentials(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]models.User, error)
}

// MenuRepositoryI defines read operations on the seeded menu.
type MenuRepositoryI interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	GroupByMeal(ctx context.Context) (map[models.Meal][]models.MenuItem, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// SelectionRepositoryI is the reconciler plus its read side. SetQuantity
// and ChangeQuantity keep the invariant that at most one row exists per
// (user, item, date) and that stored quantities are positive.
type SelectionRepositoryI interface {
	SetQuantity(ctx context.Context, userID, menuItemID int64, date string, quantity int) (int, error)
	ChangeQuantity(ctx context.Context, userID, menuItemID int64, date string, delta int) (int, error)
	Get(ctx context.Context, userID, menuItemID int64, date string) (*models.Selection, error)
	ListForUser(ctx context.Context, userID int64, date string) ([]models.SelectionDetail, error)
	TotalsByItem(ctx context.Context, date string) ([]models.ItemTotal, error)
	Userwise(ctx context.Context, date string) ([]models.UserwiseRow, error)
}
