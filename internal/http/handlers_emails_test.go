package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"github.com/jobtrail/jobtrail-api/internal/service"
)

// mockEmailService is a test double for EmailServiceInterface.
type mockEmailService struct {
	listFunc func(ctx context.Context, opts model.EmailListOptions) (*service.EmailPage, error)
}

func (m *mockEmailService) List(ctx context.Context, opts model.EmailListOptions) (*service.EmailPage, error) {
	return m.listFunc(ctx, opts)
}

func TestEmailHandlers_List(t *testing.T) {
	var gotOpts model.EmailListOptions
	h := &EmailHandlers{Svc: &mockEmailService{
		listFunc: func(_ context.Context, opts model.EmailListOptions) (*service.EmailPage, error) {
			gotOpts = opts
			return &service.EmailPage{
				Emails: []*model.UserEmail{{ID: "e1", UserID: opts.UserID, ApplicationStatus: "rejection"}},
				Total:  12,
			}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest("/api/emails?limit=10&offset=20", "alice"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.EmailListOptions{UserID: "alice", Limit: 10, Offset: 20}, gotOpts)

	var page service.EmailPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 12, page.Total)
	require.Len(t, page.Emails, 1)
	assert.Equal(t, "e1", page.Emails[0].ID)
}

func TestEmailHandlers_List_ClampsPaging(t *testing.T) {
	var gotOpts model.EmailListOptions
	h := &EmailHandlers{Svc: &mockEmailService{
		listFunc: func(_ context.Context, opts model.EmailListOptions) (*service.EmailPage, error) {
			gotOpts = opts
			return &service.EmailPage{Emails: []*model.UserEmail{}}, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest("/api/emails?limit=9999&offset=-1", "alice"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 200, gotOpts.Limit)
	assert.Equal(t, 0, gotOpts.Offset)
}

func TestEmailHandlers_List_NoSessionIs401(t *testing.T) {
	h := &EmailHandlers{Svc: &mockEmailService{}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/emails", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmailHandlers_List_ServiceError(t *testing.T) {
	var logBuf bytes.Buffer
	h := &EmailHandlers{
		Svc: &mockEmailService{
			listFunc: func(_ context.Context, _ model.EmailListOptions) (*service.EmailPage, error) {
				return nil, errors.New("db down")
			},
		},
		Logger: slog.New(slog.NewJSONHandler(&logBuf, nil)),
	}

	rec := httptest.NewRecorder()
	h.List(rec, authedRequest("/api/emails", "alice"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal errors must not leak detail to clients.
	assert.NotContains(t, rec.Body.String(), "db down")

	// The failure is logged with the user and stage.
	logged := logBuf.String()
	assert.Contains(t, logged, `"user_id":"alice"`)
	assert.Contains(t, logged, `"stage":"list_emails"`)
	assert.Contains(t, logged, "db down")
}
