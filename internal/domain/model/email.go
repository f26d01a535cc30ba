//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// Well-known application statuses produced by the upstream email
// classifier. Statuses are free-form text in the database; these
// constants cover the values the metrics computations key on.
// Comparisons are always done on the trimmed, lowercased form.
const (
	StatusUnknown          = "unknown"
	StatusFalsePositive    = "false positive"
	StatusConfirmation     = "application confirmation"
	StatusRejection        = "rejection"
	StatusInterviewInvite  = "interview invitation"
	StatusAssessmentSent   = "assessment sent"
	StatusOfferMade        = "offer made"
	StatusWithdrew         = "withdrew application"
	StatusHiringFreeze     = "hiring freeze notification"
)

// UserEmail is one classified job-related email belonging to a user.
// Rows are written by the ingestion pipeline and read-only here.
type UserEmail struct {
	ID                 string     `json:"id"                             db:"id"`
	UserID             string     `json:"user_id"                       db:"user_id"`
	CompanyName        *string    `json:"company_name,omitempty"        db:"company_name"`
	JobTitle           *string    `json:"job_title,omitempty"           db:"job_title"`
	NormalizedJobTitle *string    `json:"normalized_job_title,omitempty" db:"normalized_job_title"`
	ApplicationStatus  string     `json:"application_status"            db:"application_status"`
	ReceivedAt         *time.Time `json:"received_at,omitempty"         db:"received_at"`
	CreatedAt          time.Time  `json:"created_at"                    db:"created_at"`
}

// Status returns the canonical (trimmed, lowercased) application status.
func (e *UserEmail) Status() string {
	return strings.ToLower(strings.TrimSpace(e.ApplicationStatus))
}

// Company returns the company name, or "" when absent.
func (e *UserEmail) Company() string {
	if e.CompanyName == nil {
		return ""
	}
	return *e.CompanyName
}

// EmailListOptions controls paging for listing a user's emails.
type EmailListOptions struct {
	UserID string
	Limit  int
	Offset int
}
