package models

// Selection is one user's requested quantity of one menu item for one
// calendar date. At most one row exists per (user, item, date) triple,
// and a stored quantity is always positive: reconciling to zero or below
// deletes the row instead.
type Selection struct {
	ID              int64  `db:"id" json:"id"`
	UserID          int64  `db:"user_id" json:"user_id"`
	MenuItemID      int64  `db:"menu_item_id" json:"menu_item_id"`
	SelectedForDate string `db:"selected_for_date" json:"selected_for_date"`
	Quantity        int    `db:"quantity" json:"quantity"`
	CreatedAt       string `db:"created_at" json:"created_at"`
}

// SelectionDetail is a Selection joined with its menu item, as returned
// to the selecting user.
type SelectionDetail struct {
	ID         int64  `db:"id" json:"id"`
	MenuItemID int64  `db:"menu_item_id" json:"menu_item_id"`
	Quantity   int    `db:"quantity" json:"quantity"`
	Name       string `db:"name" json:"name"`
	Meal       Meal   `db:"meal" json:"meal"`
	Img        string `db:"img" json:"img"`
}

// ItemTotal is one menu item with its summed quantity across all users
// for a date. Items nobody selected appear with Total 0.
type ItemTotal struct {
	MenuItemID int64  `db:"menu_item_id" json:"menu_item_id"`
	Name       string `db:"name" json:"name"`
	Meal       Meal   `db:"meal" json:"meal"`
	Img        string `db:"img" json:"img"`
	Total      int    `db:"total" json:"total"`
}

// UserwiseRow is one selection joined with its user and menu item, as
// shown on the admin breakdown.
type UserwiseRow struct {
	Username  string `db:"username" json:"username"`
	Role      Role   `db:"role" json:"role"`
	Item      string `db:"item" json:"item"`
	Meal      Meal   `db:"meal" json:"meal"`
	Quantity  int    `db:"quantity" json:"quantity"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
