package models

// Role classifies a user account. Self-registration only allows student
// and staff; the admin account exists from seeding.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// User represents an account in the system.
// It maps to the `users` table in SQLite.
//
// Password is stored and compared in plain text. This is a known
// weakness of this demo system, kept deliberately; do not reuse real
// credentials with it.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     Role   `db:"role" json:"role"`
}
