// Package session issues and validates the signed tokens carried in the
// service's cookies. There are two independent capabilities: a user
// session (who is logged in) and the admin capability (knowledge of the
// shared admin secret). They live in separate cookies and separate token
// kinds, so holding one never implies the other.
package session

import (
	"errors"
	"strconv"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"canteenPreOrder/models"
)

const (
	kindUser  = "user"
	kindAdmin = "admin"
)

// Principal represents the authenticated caller of a request.
type Principal struct {
	UserID   int64
	Username string
	Role     models.Role
}

// Manager signs and parses session tokens with a single HS256 secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

type claims struct {
	Username string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

// IssueUser returns a signed user-session token for u.
func (m *Manager) IssueUser(u *models.User) (string, error) {
	if u == nil || u.ID == 0 {
		return "", errors.New("user is required")
	}
	c := claims{
		Username: u.Username,
		Role:     string(u.Role),
		Kind:     kindUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(u.ID, 10),
			ID:      uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// IssueAdmin returns a signed admin-capability token. It carries no user
// identity: the capability is a shared secret, not a role on an account.
func (m *Manager) IssueAdmin() (string, error) {
	c := claims{
		Kind: kindAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

// ParseUser validates a user-session token and returns its Principal.
func (m *Manager) ParseUser(token string) (*Principal, error) {
	c, err := m.parse(token)
	if err != nil {
		return nil, err
	}
	if c.Kind != kindUser || c.Subject == "" || c.Username == "" {
		return nil, errors.New("invalid session claims")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.New("invalid session subject")
	}
	return &Principal{UserID: id, Username: c.Username, Role: models.Role(c.Role)}, nil
}

// ParseAdmin validates an admin-capability token.
func (m *Manager) ParseAdmin(token string) error {
	c, err := m.parse(token)
	if err != nil {
		return err
	}
	if c.Kind != kindAdmin {
		return errors.New("not an admin token")
	}
	return nil
}

func (m *Manager) parse(token string) (*claims, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("cookie secret is empty")
	}
	tok, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*claims)
	if c == nil {
		return nil, errors.New("invalid claims")
	}
	return c, nil
}
