package testfixtures

import (
	"context"
	"strings"

	"github.com/example/course-scheduler/internal/catalog"
)

// Feed is an in-memory stand-in for every external data collaborator of the
// engine; one Feed value satisfies all four collaborator interfaces. The
// error fields, when set, fail the corresponding fetch.
type Feed struct {
	CourseList []catalog.Course
	Directory  []catalog.InstructorRecord
	GradeRows  map[string][]catalog.GradeRow
	SeatCounts map[string]map[string]catalog.SeatCount

	CatalogErr   error
	DirectoryErr error
	GradesErr    error
	SeatsErr     error
}

// NewFeed returns a feed loaded with the sample fixture data.
func NewFeed() *Feed {
	return &Feed{
		CourseList: SampleCourses(),
		Directory:  SampleInstructors(),
		GradeRows:  SampleGrades(),
		SeatCounts: SampleSeats(),
	}
}

// Courses returns every course whose code starts with hint.
func (f *Feed) Courses(_ context.Context, hint string) ([]catalog.Course, error) {
	if f.CatalogErr != nil {
		return nil, f.CatalogErr
	}
	var matched []catalog.Course
	for _, course := range f.CourseList {
		if strings.HasPrefix(course.Code, hint) {
			matched = append(matched, course)
		}
	}
	return matched, nil
}

// Instructors returns the directory records matching names.
func (f *Feed) Instructors(_ context.Context, names []string) ([]catalog.InstructorRecord, error) {
	if f.DirectoryErr != nil {
		return nil, f.DirectoryErr
	}
	var records []catalog.InstructorRecord
	for _, name := range names {
		for _, record := range f.Directory {
			if record.Name == name {
				records = append(records, record)
				break
			}
		}
	}
	return records, nil
}

// Grades returns the grade history of professor.
func (f *Feed) Grades(_ context.Context, professor string) ([]catalog.GradeRow, error) {
	if f.GradesErr != nil {
		return nil, f.GradesErr
	}
	return f.GradeRows[professor], nil
}

// Seats returns the seat snapshot of course.
func (f *Feed) Seats(_ context.Context, course string) (map[string]catalog.SeatCount, error) {
	if f.SeatsErr != nil {
		return nil, f.SeatsErr
	}
	return f.SeatCounts[course], nil
}
