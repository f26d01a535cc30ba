package httpx

import (
	"net/http"

	apperrors "github.com/jobtrail/jobtrail-api/internal/errors"
)

// statusForCode maps application error codes to HTTP status codes.
func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		// Client went away; 499 is the conventional (nginx) status for this.
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// RenderError writes a JSON error response for an application error,
// mapping its code to the appropriate HTTP status. Errors that are not
// AppErrors render as 500 internal errors without leaking detail.
func RenderError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := statusForCode(code)

	errCode := string(code)
	if errCode == "" {
		errCode = "internal"
	}
	if status == http.StatusInternalServerError {
		WriteJSON(w, status, map[string]string{
			"error":   errCode,
			"message": "internal server error",
		})
		return
	}

	WriteError(w, ErrorParams{Code: status, ErrCode: errCode, Err: err})
}
