package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jobtrail/jobtrail-api/internal/domain/model"
	"github.com/jobtrail/jobtrail-api/internal/service"
)

// EmailServiceInterface defines the interface for email listing operations.
type EmailServiceInterface interface {
	List(ctx context.Context, opts model.EmailListOptions) (*service.EmailPage, error)
}

// EmailHandlers provides HTTP handlers for a user's stored email records.
type EmailHandlers struct {
	Svc    EmailServiceInterface
	Logger *slog.Logger
}

func (h *EmailHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// List handles the email listing endpoint.
// GET /api/emails?limit=<n>&offset=<n>.
func (h *EmailHandlers) List(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		writeSessionRequired(w)
		return
	}

	limit, offset := ParseLimitOffset(r, 50, 200)
	page, err := h.Svc.List(r.Context(), model.EmailListOptions{
		UserID: session.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "email listing failed",
			slog.String("stage", "list_emails"),
			slog.String("user_id", session.UserID),
			slog.Any("error", err))
		RenderError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, page)
}
