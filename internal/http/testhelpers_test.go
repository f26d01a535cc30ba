package httpx

import (
	"io"
	"log/slog"
	"time"

	domainauth "github.com/jobtrail/jobtrail-api/internal/domain/auth"
)

// testLogger returns a logger that discards output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testSession returns a live session for the given user.
func testSession(userID string) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + userID,
		UserID:    userID,
		Name:      "Test User",
		Email:     userID + "@example.com",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
