package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/jobtrail/jobtrail-api/internal/domain/auth"
)

func TestSessionContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserSessionFromContext(ctx)
	assert.False(t, ok)

	sess := &domainauth.Session{ID: "sess-1", UserID: "user-1"}
	ctx = SetSessionInContext(ctx, sess)

	got, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestSetSessionInContext_NilIsNoOp(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, SetSessionInContext(ctx, nil))
}
