package scheduler

import (
	"errors"

	"github.com/example/course-scheduler/internal/timetable"
)

var (
	// ErrDataUnavailable is returned when a required collaborator could not
	// supply catalog or instructor-directory data. It aborts the whole
	// generation call; a silently empty result would be indistinguishable
	// from "no section matched".
	ErrDataUnavailable = errors.New("scheduler: required course data unavailable")

	// ErrSeatDataMissing is returned when the seat feed lacks a section the
	// catalog advertised. Defaulting to zero seats would silently trip the
	// open-seats filter, so the inconsistent batch fails loudly instead.
	ErrSeatDataMissing = errors.New("scheduler: seat data missing for section")
)

// ErrorKind maps engine errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrDataUnavailable):
		return "data_unavailable"
	case errors.Is(err, ErrSeatDataMissing):
		return "seat_data_missing"
	case errors.Is(err, timetable.ErrMalformedTime):
		return "malformed_time"
	}
	return "unexpected"
}
