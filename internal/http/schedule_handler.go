package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/example/course-scheduler/internal/export"
	"github.com/example/course-scheduler/internal/scheduler"
	"github.com/example/course-scheduler/internal/stats"
)

type generateService interface {
	Generate(ctx context.Context, queries []scheduler.CourseQuery, options scheduler.QueryOptions) ([]scheduler.Schedule, error)
}

// ScheduleHandler serves schedule generation and calendar export.
type ScheduleHandler struct {
	service   generateService
	termStart time.Time
	termEnd   time.Time
	responder responder
	logger    *slog.Logger
}

// NewScheduleHandler wires the generation service and the term window used
// for calendar export.
func NewScheduleHandler(service generateService, termStart, termEnd time.Time, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service:   service,
		termStart: termStart,
		termEnd:   termEnd,
		responder: newResponder(logger),
		logger:    defaultLogger(logger),
	}
}

type generateRequest struct {
	Queries []string               `json:"queries"`
	Options scheduler.QueryOptions `json:"options"`
}

type calendarRequest struct {
	generateRequest
	Index int `json:"index"`
}

type metricDTO struct {
	Value      float64 `json:"value"`
	Normalized float64 `json:"normalized"`
	Display    string  `json:"display"`
}

type scheduleDTO struct {
	Sections []scheduler.Section  `json:"sections"`
	Stats    map[string]metricDTO `json:"stats"`
}

type generateResponse struct {
	Schedules []scheduleDTO `json:"schedules"`
}

// Generate enumerates every conflict-free schedule for the requested course
// queries and returns them with their computed metrics.
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	queries, err := parseQueries(req.Queries)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	schedules, err := h.service.Generate(r.Context(), queries, req.Options)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger := handlerLogger(r.Context(), h.logger, "schedule", "Generate")
	logger.InfoContext(r.Context(), "schedules generated", "queries", len(queries), "schedules", len(schedules))

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toGenerateResponse(schedules))
}

// Calendar regenerates the schedules for the request and renders the one at
// the requested index as an iCalendar document.
func (h *ScheduleHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req calendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	queries, err := parseQueries(req.Queries)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	schedules, err := h.service.Generate(r.Context(), queries, req.Options)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	if req.Index < 0 || req.Index >= len(schedules) {
		h.responder.handleServiceError(r.Context(), w, &validationError{FieldErrors: map[string]string{
			"index": fmt.Sprintf("must be between 0 and %d", len(schedules)-1),
		}})
		return
	}

	calendar := export.Calendar(schedules[req.Index], h.termStart, h.termEnd)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(calendar.Serialize())); err != nil {
		handlerLogger(r.Context(), h.logger, "schedule", "Calendar").ErrorContext(r.Context(), "failed to write calendar", "error", err)
	}
}

func parseQueries(raw []string) ([]scheduler.CourseQuery, error) {
	if len(raw) == 0 {
		return nil, &validationError{FieldErrors: map[string]string{
			"queries": "at least one course query is required",
		}}
	}

	queries := make([]scheduler.CourseQuery, 0, len(raw))
	for i, pattern := range raw {
		query, err := scheduler.NewCourseQuery(pattern)
		if err != nil {
			return nil, &validationError{FieldErrors: map[string]string{
				fmt.Sprintf("queries[%d]", i): fmt.Sprintf("invalid course pattern %q", pattern),
			}}
		}
		queries = append(queries, query)
	}
	return queries, nil
}

func toGenerateResponse(schedules []scheduler.Schedule) generateResponse {
	out := generateResponse{Schedules: make([]scheduleDTO, 0, len(schedules))}
	for _, schedule := range schedules {
		metrics := stats.Compute(schedule)
		dto := scheduleDTO{
			Sections: schedule,
			Stats:    make(map[string]metricDTO, len(metrics)),
		}
		for name, value := range metrics {
			dto.Stats[name] = metricDTO{
				Value:      value,
				Normalized: stats.Normalize(name, value),
				Display:    stats.Format(name, value),
			}
		}
		out.Schedules = append(out.Schedules, dto)
	}
	return out
}
