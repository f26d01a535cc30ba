package auth

import (
	"testing"
	"time"
)

func TestSessionIsAdmin(t *testing.T) {
	if (Session{Role: RoleUser}).IsAdmin() {
		t.Error("user session should not be admin")
	}
	if !(Session{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin session should be admin")
	}
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	live := Session{ExpiresAt: now.Add(time.Hour)}
	if live.IsExpired(now) {
		t.Error("session expiring in the future should not be expired")
	}

	dead := Session{ExpiresAt: now.Add(-time.Second)}
	if !dead.IsExpired(now) {
		t.Error("session expiring in the past should be expired")
	}

	// Boundary: a session expiring exactly now is still valid.
	edge := Session{ExpiresAt: now}
	if edge.IsExpired(now) {
		t.Error("session expiring exactly now should not be expired yet")
	}
}
