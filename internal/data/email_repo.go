package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jobtrail/jobtrail-api/internal/data/pgxutil"
	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	apperrors "github.com/jobtrail/jobtrail-api/internal/errors"
)

// EmailRepo provides database operations for stored user emails.
type EmailRepo struct {
	DB *sql.DB
}

// NewEmailRepo creates a new EmailRepo.
func NewEmailRepo(db *sql.DB) *EmailRepo {
	return &EmailRepo{DB: db}
}

// SQL query constants for static queries (no dynamic WHERE/ORDER BY).
const (
	emailColumns = `id, user_id, company_name, job_title, normalized_job_title,
	       application_status, received_at, created_at`

	emailListQuery = `
		SELECT ` + emailColumns + `
		FROM user_emails
		WHERE user_id = $1
		ORDER BY received_at DESC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3`

	emailListAllQuery = `
		SELECT ` + emailColumns + `
		FROM user_emails
		WHERE user_id = $1
		ORDER BY received_at DESC NULLS LAST, created_at DESC`

	emailCountQuery = `SELECT COUNT(*) FROM user_emails WHERE user_id = $1`
)

// Insert stores a new email record and returns it with generated fields.
func (r *EmailRepo) Insert(ctx context.Context, email *model.UserEmail) (*model.UserEmail, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(email.UserID) == "" {
		return nil, ErrUserIDRequired
	}

	status := email.ApplicationStatus
	if strings.TrimSpace(status) == "" {
		status = model.StatusUnknown
	}

	var out model.UserEmail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO user_emails (
				user_id, company_name, job_title, normalized_job_title, application_status, received_at
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) RETURNING `+emailColumns,
			email.UserID,
			email.CompanyName,
			email.JobTitle,
			email.NormalizedJobTitle,
			status,
			email.ReceivedAt,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.UserEmail])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("insert email: %w", err))
	}
	return &out, nil
}

// List retrieves a page of emails for a user, newest received first.
func (r *EmailRepo) List(ctx context.Context, opts model.EmailListOptions) ([]*model.UserEmail, error) {
	if strings.TrimSpace(opts.UserID) == "" {
		return nil, ErrUserIDRequired
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	var rowsOut []model.UserEmail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, emailListQuery, opts.UserID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserEmail])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list emails: %w", err))
	}
	return toPtrSlice(rowsOut), nil
}

// Count returns the total number of emails stored for a user.
func (r *EmailRepo) Count(ctx context.Context, userID string) (int, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrUserIDRequired
	}

	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, emailCountQuery, userID).Scan(&count)
	}); err != nil {
		return 0, apperrors.MapDBError(fmt.Errorf("count emails: %w", err))
	}
	return count, nil
}

// ListAllByUser retrieves every email for a user, newest received first.
func (r *EmailRepo) ListAllByUser(ctx context.Context, userID string) ([]*model.UserEmail, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	var rowsOut []model.UserEmail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, emailListAllQuery, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserEmail])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list all emails: %w", err))
	}
	return toPtrSlice(rowsOut), nil
}

// ListAllByUserLatest retrieves every email for a user inside a fresh
// read-committed transaction. A new snapshot is taken when the transaction
// begins, so rows committed by concurrent writers are visible.
func (r *EmailRepo) ListAllByUserLatest(ctx context.Context, userID string) ([]*model.UserEmail, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserIDRequired
	}

	var rowsOut []model.UserEmail
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: true},
		Fn: func(tx pgx.Tx) error {
			rows, err := tx.Query(ctx, emailListAllQuery, userID)
			if err != nil {
				return err
			}
			defer rows.Close()
			rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.UserEmail])
			return err
		},
	}); err != nil {
		return nil, apperrors.MapDBError(fmt.Errorf("list latest emails: %w", err))
	}
	return toPtrSlice(rowsOut), nil
}

func toPtrSlice(rows []model.UserEmail) []*model.UserEmail {
	res := make([]*model.UserEmail, len(rows))
	for i := range rows {
		res[i] = &rows[i]
	}
	return res
}
