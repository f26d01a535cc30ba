// Package mocks provides mock implementations for testing the jobtrail API.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockEmailRepository(ctrl)
//	mockRepo.EXPECT().ListAllByUser(gomock.Any(), "user-1").Return(emails, nil)
package mocks

// Generate mock for EmailRepository interface from internal/core package.
// This creates MockEmailRepository with methods for all EmailRepository interface methods:
// List, Count, ListAllByUser, ListAllByUserLatest
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=email_repository_mock.go github.com/jobtrail/jobtrail-api/internal/core EmailRepository

// Generate mock for RateLimiter interface from internal/core package.
// This creates MockRateLimiter with methods for all RateLimiter interface methods:
// Allow
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=rate_limiter_mock.go github.com/jobtrail/jobtrail-api/internal/core RateLimiter
