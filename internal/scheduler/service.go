package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/example/course-scheduler/internal/catalog"
	"github.com/example/course-scheduler/internal/timetable"
)

// CatalogSource supplies raw course records. The hint is a literal
// course-code prefix derived from the query pattern; implementations may
// over-fetch, the generator always re-checks codes against the full pattern.
type CatalogSource interface {
	Courses(ctx context.Context, hint string) ([]catalog.Course, error)
}

// InstructorDirectory resolves instructor records by exact name.
type InstructorDirectory interface {
	Instructors(ctx context.Context, names []string) ([]catalog.InstructorRecord, error)
}

// GradeArchive returns an instructor's historical grade rows. Instructors
// without a record yield an empty slice, not an error.
type GradeArchive interface {
	Grades(ctx context.Context, professor string) ([]catalog.GradeRow, error)
}

// SeatTracker reports live seat counts for every section of a course, keyed
// by section ID. Seat data is volatile and is re-fetched on every generation
// call.
type SeatTracker interface {
	Seats(ctx context.Context, course string) (map[string]catalog.SeatCount, error)
}

// Service orchestrates the schedule search over the injected data sources.
type Service struct {
	catalogSource CatalogSource
	directory     InstructorDirectory
	grades        GradeArchive
	seats         SeatTracker
	logger        *slog.Logger
}

// NewService wires the engine's collaborators.
func NewService(catalogSource CatalogSource, directory InstructorDirectory, grades GradeArchive, seats SeatTracker) *Service {
	return NewServiceWithLogger(catalogSource, directory, grades, seats, nil)
}

// NewServiceWithLogger wires the engine's collaborators with an explicit
// fallback logger for calls whose context carries none.
func NewServiceWithLogger(catalogSource CatalogSource, directory InstructorDirectory, grades GradeArchive, seats SeatTracker, logger *slog.Logger) *Service {
	return &Service{
		catalogSource: catalogSource,
		directory:     directory,
		grades:        grades,
		seats:         seats,
		logger:        defaultLogger(logger),
	}
}

// Generate enumerates every valid schedule for the queries: one section per
// query, no repeated course, no overlapping class time under the active
// zero-minute policy. The search expands breadth-first, one query at a time,
// so the result for identical inputs is identical in content and order. A
// query matching nothing empties the result from that step on; a failed
// catalog or directory fetch aborts the call with ErrDataUnavailable.
func (s *Service) Generate(ctx context.Context, queries []CourseQuery, options QueryOptions) ([]Schedule, error) {
	if s == nil {
		return nil, fmt.Errorf("scheduler: Service is nil")
	}
	logger := serviceLogger(ctx, s.logger, "Generate", "queries", len(queries))

	schedules := []Schedule{{}}
	for _, query := range queries {
		candidates, err := s.candidateSections(ctx, query, options)
		if err != nil {
			logger.ErrorContext(ctx, "candidate collection failed", "query", query.String(), "error_kind", ErrorKind(err), "error", err)
			return nil, err
		}
		if len(candidates) == 0 {
			logger.InfoContext(ctx, "query matched no usable sections", "query", query.String())
		}

		next := make([]Schedule, 0, len(schedules))
		for _, candidate := range candidates {
			for _, partial := range schedules {
				if !admits(partial, candidate, options.AllowZeroMin) {
					continue
				}
				grown := make(Schedule, 0, len(partial)+1)
				grown = append(grown, partial...)
				grown = append(grown, candidate)
				next = append(next, grown)
			}
		}
		schedules = next
	}

	logger.InfoContext(ctx, "generation finished", "schedules", len(schedules))
	return schedules, nil
}

// admits reports whether candidate can extend partial without duplicating a
// course or introducing a time conflict.
func admits(partial Schedule, candidate Section, allowZeroMin bool) bool {
	if partial.HasCourse(candidate.Course) {
		return false
	}
	combined := append(partial.Meetings(), candidate.Meetings)
	return !timetable.HasOverlap(combined, allowZeroMin)
}

// rawCandidate pairs a raw section with the course code it belongs to while
// enrichment is in flight.
type rawCandidate struct {
	course string
	raw    catalog.RawSection
}

// candidateSections resolves one query into its assembled, filtered
// candidate sections, preserving catalog order.
func (s *Service) candidateSections(ctx context.Context, query CourseQuery, options QueryOptions) ([]Section, error) {
	courses, err := s.catalogSource.Courses(ctx, query.FetchHint())
	if err != nil {
		return nil, fmt.Errorf("%w: catalog fetch for %q: %v", ErrDataUnavailable, query.String(), err)
	}

	var raws []rawCandidate
	for _, course := range courses {
		if !query.Matches(course.Code) {
			continue
		}
		for _, section := range course.Sections {
			if options.ExcludeFC && strings.HasPrefix(section.Code, "FC") {
				continue
			}
			if options.ExcludeSG && strings.HasPrefix(section.Code, "ESG") {
				continue
			}
			if options.ExcludeSM && strings.HasPrefix(section.Code, "ESM") {
				continue
			}
			raws = append(raws, rawCandidate{course: course.Code, raw: section})
		}
	}
	if len(raws) == 0 {
		return nil, nil
	}

	enriched, err := s.fetchEnrichment(ctx, raws)
	if err != nil {
		return nil, err
	}

	candidates := make([]Section, 0, len(raws))
	for _, candidate := range raws {
		section, err := AssembleSection(candidate.course, candidate.raw, enriched.instructors, enriched.grades, enriched.seats[candidate.course])
		if err != nil {
			return nil, err
		}
		if !options.ShowFull && section.Seats.OpenSeats <= 0 {
			continue
		}
		candidates = append(candidates, section)
	}
	return candidates, nil
}

// enrichment carries the per-step lookup tables produced by the batched
// collaborator fetches.
type enrichment struct {
	instructors map[string]catalog.InstructorRecord
	grades      map[string][]catalog.GradeRow
	seats       map[string]map[string]catalog.SeatCount
}

// fetchEnrichment batches the enrichment fetches by distinct course and
// distinct instructor name and awaits them as a group. Batching is purely an
// efficiency measure; results are identical to fetching one by one. The
// concurrent fetches write to disjoint slots, so no locking is needed beyond
// the final join.
func (s *Service) fetchEnrichment(ctx context.Context, raws []rawCandidate) (enrichment, error) {
	logger := serviceLogger(ctx, s.logger, "fetchEnrichment")

	courses := make([]string, 0, len(raws))
	names := make([]string, 0, len(raws))
	seenCourse := make(map[string]struct{})
	seenName := make(map[string]struct{})
	for _, candidate := range raws {
		if _, ok := seenCourse[candidate.course]; !ok {
			seenCourse[candidate.course] = struct{}{}
			courses = append(courses, candidate.course)
		}
		for _, name := range candidate.raw.Instructors {
			if name == catalog.InstructorPlaceholder {
				continue
			}
			if _, ok := seenName[name]; !ok {
				seenName[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	enriched := enrichment{
		instructors: make(map[string]catalog.InstructorRecord, len(names)),
		grades:      make(map[string][]catalog.GradeRow, len(names)),
		seats:       make(map[string]map[string]catalog.SeatCount, len(courses)),
	}

	if len(names) > 0 {
		records, err := s.directory.Instructors(ctx, names)
		if err != nil {
			return enrichment{}, fmt.Errorf("%w: instructor directory fetch: %v", ErrDataUnavailable, err)
		}
		for _, record := range records {
			enriched.instructors[record.Name] = record
		}
	}

	gradeRows := make([][]catalog.GradeRow, len(names))
	gradeErrs := make([]error, len(names))
	seatCounts := make([]map[string]catalog.SeatCount, len(courses))
	seatErrs := make([]error, len(courses))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			gradeRows[i], gradeErrs[i] = s.grades.Grades(ctx, name)
		}(i, name)
	}
	for i, course := range courses {
		wg.Add(1)
		go func(i int, course string) {
			defer wg.Done()
			seatCounts[i], seatErrs[i] = s.seats.Seats(ctx, course)
		}(i, course)
	}
	wg.Wait()

	for i, name := range names {
		if gradeErrs[i] != nil {
			// A failed grade lookup is a legitimately absent enrichment,
			// not a broken pipeline; the section proceeds without a GPA.
			logger.WarnContext(ctx, "grade fetch failed", "professor", name, "error", gradeErrs[i])
			continue
		}
		enriched.grades[name] = gradeRows[i]
	}
	for i, course := range courses {
		if seatErrs[i] != nil {
			return enrichment{}, fmt.Errorf("%w: seat fetch for %s: %v", ErrSeatDataMissing, course, seatErrs[i])
		}
		enriched.seats[course] = seatCounts[i]
	}

	return enriched, nil
}
