package session

import (
	"testing"

	"canteenPreOrder/models"
)

const testSecret = "test-secret"

func TestIssueParseUser_RoundTrip(t *testing.T) {
	m := NewManager(testSecret)
	tok, err := m.IssueUser(&models.User{ID: 7, Username: "student1", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("IssueUser: %v", err)
	}
	p, err := m.ParseUser(tok)
	if err != nil {
		t.Fatalf("ParseUser: %v", err)
	}
	if p.UserID != 7 || p.Username != "student1" || p.Role != models.RoleStudent {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func TestParseUser_WrongSecret(t *testing.T) {
	tok, err := NewManager(testSecret).IssueUser(&models.User{ID: 1, Username: "alice", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("IssueUser: %v", err)
	}
	if _, err := NewManager("other-secret").ParseUser(tok); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestIssueUser_RequiresUser(t *testing.T) {
	m := NewManager(testSecret)
	if _, err := m.IssueUser(nil); err == nil {
		t.Fatalf("expected error for nil user")
	}
	if _, err := m.IssueUser(&models.User{Username: "noid"}); err == nil {
		t.Fatalf("expected error for zero id")
	}
}

func TestAdminAndUserTokensAreDistinct(t *testing.T) {
	m := NewManager(testSecret)
	adminTok, err := m.IssueAdmin()
	if err != nil {
		t.Fatalf("IssueAdmin: %v", err)
	}
	if err := m.ParseAdmin(adminTok); err != nil {
		t.Fatalf("ParseAdmin: %v", err)
	}
	// An admin token never resolves to a user session.
	if _, err := m.ParseUser(adminTok); err == nil {
		t.Fatalf("admin token accepted as user session")
	}
	// A user token never grants the admin capability.
	userTok, err := m.IssueUser(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("IssueUser: %v", err)
	}
	if err := m.ParseAdmin(userTok); err == nil {
		t.Fatalf("user token accepted as admin capability")
	}
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager(testSecret)
	if _, err := m.ParseUser("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
	if err := m.ParseAdmin(""); err == nil {
		t.Fatalf("expected error for empty token")
	}
}
