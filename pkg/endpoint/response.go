package endpoint

import (
	"fmt"
	"log/slog"
	"net/http"
)

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func LogNotFound(msg string, err error) *ApiError {
	slog.Warn(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Not found error: %s", msg),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}
