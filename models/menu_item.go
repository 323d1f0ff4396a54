package models

// Meal is one of the three fixed categories partitioning the menu.
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

// MenuItem is read-only reference data seeded at schema creation time.
// It maps to the `menu_items` table in SQLite.
type MenuItem struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Meal Meal   `db:"meal" json:"meal"`
	Img  string `db:"img" json:"img"`
}
