package core

import (
	"context"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// EmailRepository defines the interface for user email data operations.
type EmailRepository interface {
	// List returns a page of emails for a user, newest received first.
	List(ctx context.Context, opts model.EmailListOptions) ([]*model.UserEmail, error)

	// Count returns the total number of emails stored for a user.
	Count(ctx context.Context, userID string) (int, error)

	// ListAllByUser returns every email for a user, newest received first.
	ListAllByUser(ctx context.Context, userID string) ([]*model.UserEmail, error)

	// ListAllByUserLatest behaves like ListAllByUser but reads in a fresh
	// read-committed transaction, so rows committed by concurrent writers
	// since the pool connection's last snapshot are visible.
	ListAllByUserLatest(ctx context.Context, userID string) ([]*model.UserEmail, error)
}

// RateLimiter enforces a fixed-window request budget per key.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within limit
	// for the current window.
	Allow(ctx context.Context, key string, limit int) (bool, error)
}
