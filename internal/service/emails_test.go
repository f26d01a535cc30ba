package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"github.com/jobtrail/jobtrail-api/internal/mocks"
)

func newTestEmailService(t *testing.T) (*EmailService, *mocks.MockEmailRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockEmailRepository(ctrl)
	return NewEmailService(EmailServiceOptions{Repo: repo}), repo
}

func TestEmailService_List(t *testing.T) {
	t.Parallel()

	svc, repo := newTestEmailService(t)

	emails := []*model.UserEmail{
		{ID: "e1", UserID: "user-1", ApplicationStatus: "rejection"},
		{ID: "e2", UserID: "user-1", ApplicationStatus: "unknown"},
	}
	repo.EXPECT().
		List(gomock.Any(), model.EmailListOptions{UserID: "user-1", Limit: 50}).
		Return(emails, nil)
	repo.EXPECT().Count(gomock.Any(), "user-1").Return(7, nil)

	page, err := svc.List(context.Background(), model.EmailListOptions{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, page.Emails, 2)
	assert.Equal(t, 7, page.Total)
}

func TestEmailService_List_NormalizesPaging(t *testing.T) {
	t.Parallel()

	svc, repo := newTestEmailService(t)

	// Out-of-range limit and negative offset fall back to defaults.
	repo.EXPECT().
		List(gomock.Any(), model.EmailListOptions{UserID: "user-1", Limit: 50, Offset: 0}).
		Return(nil, nil)
	repo.EXPECT().Count(gomock.Any(), "user-1").Return(0, nil)

	page, err := svc.List(context.Background(), model.EmailListOptions{
		UserID: "user-1",
		Limit:  5000,
		Offset: -3,
	})
	require.NoError(t, err)
	assert.NotNil(t, page.Emails)
	assert.Empty(t, page.Emails)
}

func TestEmailService_List_RepoError(t *testing.T) {
	t.Parallel()

	svc, repo := newTestEmailService(t)
	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	// The count query runs concurrently with the page query.
	repo.EXPECT().Count(gomock.Any(), "user-1").Return(0, nil).AnyTimes()

	_, err := svc.List(context.Background(), model.EmailListOptions{UserID: "user-1"})
	assert.Error(t, err)
}
