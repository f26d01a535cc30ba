// Package testutil provides testing utilities and helpers for the jobtrail analytics system.
package testutil

import (
	"time"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
)

// EmailBuilder provides a fluent interface for building UserEmail objects for testing.
type EmailBuilder struct {
	email *model.UserEmail
}

// NewEmail creates a new EmailBuilder with sensible defaults.
func NewEmail(userID string) *EmailBuilder {
	return &EmailBuilder{
		email: &model.UserEmail{
			UserID:            userID,
			ApplicationStatus: model.StatusUnknown,
			CreatedAt:         time.Now().UTC(),
		},
	}
}

// WithCompany sets the company name.
func (b *EmailBuilder) WithCompany(name string) *EmailBuilder {
	b.email.CompanyName = &name
	return b
}

// WithTitle sets the raw job title.
func (b *EmailBuilder) WithTitle(title string) *EmailBuilder {
	b.email.JobTitle = &title
	return b
}

// WithNormalizedTitle sets the stored normalized job title.
func (b *EmailBuilder) WithNormalizedTitle(title string) *EmailBuilder {
	b.email.NormalizedJobTitle = &title
	return b
}

// WithStatus sets the application status.
func (b *EmailBuilder) WithStatus(status string) *EmailBuilder {
	b.email.ApplicationStatus = status
	return b
}

// WithReceivedAt sets the received timestamp.
func (b *EmailBuilder) WithReceivedAt(t time.Time) *EmailBuilder {
	b.email.ReceivedAt = &t
	return b
}

// Build returns the constructed UserEmail.
func (b *EmailBuilder) Build() *model.UserEmail {
	return b.email
}

// Common test email presets

// ConfirmationEmail creates a confirmation email for the given company.
func ConfirmationEmail(userID, company string) *model.UserEmail {
	return NewEmail(userID).
		WithCompany(company).
		WithStatus(model.StatusConfirmation).
		Build()
}

// RejectionEmail creates a rejection email for the given company.
func RejectionEmail(userID, company string) *model.UserEmail {
	return NewEmail(userID).
		WithCompany(company).
		WithStatus(model.StatusRejection).
		Build()
}

// InterviewEmail creates an interview invitation email for the given company.
func InterviewEmail(userID, company string) *model.UserEmail {
	return NewEmail(userID).
		WithCompany(company).
		WithStatus(model.StatusInterviewInvite).
		Build()
}
