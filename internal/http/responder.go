package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/course-scheduler/internal/scheduler"
	"github.com/example/course-scheduler/internal/timetable"
)

var errBadRequestBody = errors.New("request body is not valid JSON")

// validationError carries field-level problems with an otherwise well-formed
// request.
type validationError struct {
	FieldErrors map[string]string
}

func (e *validationError) Error() string {
	return "request validation failed"
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := http.StatusText(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// handleServiceError maps engine failures onto HTTP statuses: broken
// upstream feeds become 502, invalid input becomes 422, everything else is a
// 500.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	logger := r.loggerFor(ctx)

	switch {
	case errors.Is(err, scheduler.ErrDataUnavailable):
		logger.ErrorContext(ctx, "upstream feed unavailable", "error", err)
		r.writeJSON(ctx, w, http.StatusBadGateway, errorResponse{
			ErrorCode: "DATA_UNAVAILABLE",
			Message:   "Course data is currently unavailable. Try again shortly.",
		})
	case errors.Is(err, scheduler.ErrSeatDataMissing):
		logger.ErrorContext(ctx, "seat data missing", "error", err)
		r.writeJSON(ctx, w, http.StatusBadGateway, errorResponse{
			ErrorCode: "SEAT_DATA_MISSING",
			Message:   "Seat availability could not be determined. Try again shortly.",
		})
	case errors.Is(err, timetable.ErrMalformedTime):
		logger.ErrorContext(ctx, "malformed feed data", "error", err)
		r.writeJSON(ctx, w, http.StatusBadGateway, errorResponse{
			ErrorCode: "MALFORMED_FEED",
			Message:   "Course data could not be parsed.",
		})
	default:
		var vErr *validationError
		if errors.As(err, &vErr) {
			r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
				Message: "The request is invalid.",
				Errors:  vErr.FieldErrors,
			})
			return
		}

		logger.ErrorContext(ctx, "unexpected failure", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Internal server error."})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

type errorResponse struct {
	ErrorCode string            `json:"error_code,omitempty"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}
