package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jobtrail/jobtrail-api/internal/core"
	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

// EmailServiceOptions groups dependencies for EmailService.
type EmailServiceOptions struct {
	Repo core.EmailRepository
}

// EmailService serves read access to a user's stored email records.
type EmailService struct {
	repo core.EmailRepository
}

// NewEmailService constructs a new EmailService.
func NewEmailService(opts EmailServiceOptions) *EmailService {
	if opts.Repo == nil {
		panic("EmailService requires a Repo")
	}
	return &EmailService{repo: opts.Repo}
}

// EmailPage is one page of a user's emails plus the total count.
type EmailPage struct {
	Emails []*model.UserEmail `json:"emails"`
	Total  int                `json:"total"`
}

// List returns a page of the user's emails, newest received first,
// together with the user's total email count. The page and the count
// are fetched concurrently.
func (s *EmailService) List(ctx context.Context, opts model.EmailListOptions) (*EmailPage, error) {
	opts = normalizeEmailListOptions(opts)

	g, gctx := errgroup.WithContext(ctx)
	var emails []*model.UserEmail
	var total int

	g.Go(func() error {
		var err error
		emails, err = s.repo.List(gctx, opts)
		if err != nil {
			return fmt.Errorf("list emails: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, opts.UserID)
		if err != nil {
			return fmt.Errorf("count emails: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if emails == nil {
		emails = []*model.UserEmail{}
	}
	return &EmailPage{Emails: emails, Total: total}, nil
}

func normalizeEmailListOptions(opts model.EmailListOptions) model.EmailListOptions {
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
