package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobtrail/jobtrail-api/internal/domain/auth"
	mocks "github.com/jobtrail/jobtrail-api/internal/mocks/auth"
	"github.com/jobtrail/jobtrail-api/internal/ports"
)

func newTestAuthService() (*AuthService, *mocks.MockAuthProvider, *mocks.MemorySessionStore) {
	provider := mocks.NewMockAuthProvider()
	sessions := mocks.NewMemorySessionStore()
	roles := mocks.StaticRoleMapper{AdminEmails: []string{"admin@example.com"}}
	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: sessions,
		Roles:    roles,
	})
	return svc, provider, sessions
}

func TestAuthService_BeginLogin(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()

	result, err := svc.BeginLogin(context.Background(), "http://localhost:8080/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)
}

func TestAuthService_BeginLogin_RequiresRedirectURL(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()

	_, err := svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthService_CompleteLogin(t *testing.T) {
	t.Parallel()

	svc, _, sessions := newTestAuthService()

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Session.ID)
	assert.Equal(t, "mock-user-1", result.Session.UserID)
	assert.Equal(t, "mock.user@example.com", result.Session.Email)
	assert.Equal(t, domainauth.RoleUser, result.Session.Role)
	assert.Equal(t, 1, sessions.Len())
}

func TestAuthService_CompleteLogin_MapsAdminRole(t *testing.T) {
	t.Parallel()

	svc, provider, _ := newTestAuthService()
	provider.DefaultUser.Email = "admin@example.com"

	result, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleAdmin, result.Session.Role)
}

func TestAuthService_CompleteLogin_ValidatesInput(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input CompleteLoginInput
	}{
		{"missing code", CompleteLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteLoginInput{Code: "c", State: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CompleteLogin(ctx, tt.input)
			assert.Error(t, err)
		})
	}
}

func TestAuthService_CompleteLogin_ExchangeFailure(t *testing.T) {
	t.Parallel()

	svc, provider, sessions := newTestAuthService()
	provider.ExchangeFunc = func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
		return domainauth.Identity{}, errors.New("idp unavailable")
	}

	_, err := svc.CompleteLogin(context.Background(), CompleteLoginInput{
		Code:  "code",
		State: "state-1",
		Nonce: "nonce-1",
	})
	assert.Error(t, err)
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_GetSession(t *testing.T) {
	t.Parallel()

	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.Save(ctx, sess))

	got, err := svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestAuthService_GetSession_ExpiredIsDeleted(t *testing.T) {
	t.Parallel()

	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "sess-old",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, sessions.Save(ctx, sess))

	_, err := svc.GetSession(ctx, "sess-old")
	require.Error(t, err)
	assert.True(t, ErrSessionExpired(err))
	assert.Equal(t, 0, sessions.Len())
}

func TestAuthService_GetSession_RequiresID(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService()
	_, err := svc.GetSession(context.Background(), "")
	assert.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	svc, _, sessions := newTestAuthService()
	ctx := context.Background()

	require.NoError(t, sessions.Save(ctx, domainauth.Session{ID: "sess-1"}))
	require.NoError(t, svc.Logout(ctx, "sess-1"))
	assert.Equal(t, 0, sessions.Len())

	// Logging out with no session ID is a no-op.
	assert.NoError(t, svc.Logout(ctx, ""))
}
