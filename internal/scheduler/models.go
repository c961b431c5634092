// Package scheduler hosts the schedule search engine: section assembly from
// raw catalog records plus enrichment feeds, and the query-by-query expansion
// of conflict-free schedule combinations.
package scheduler

import (
	"github.com/example/course-scheduler/internal/timetable"
)

// Instructor is a section instructor enriched with directory and grade data.
// GPA is specific to the (instructor, course) pair of the section being
// built; both optional fields are nil when the feeds have no record.
type Instructor struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	GPA           *float64 `json:"gpa,omitempty"`
}

// SeatsInfo is the live seat snapshot attached to an assembled section.
type SeatsInfo struct {
	Seats     int `json:"seats"`
	OpenSeats int `json:"open_seats"`
	Waitlist  int `json:"waitlist"`
}

// Section is one schedulable offering of a course, fully enriched. Its
// identity is the (Course, ID) pair. Sections are assembled once per
// generation pass and treated as immutable afterwards; they are never cached
// across calls.
type Section struct {
	Course      string                   `json:"course"`
	ID          string                   `json:"id"`
	Instructors []Instructor             `json:"instructors"`
	Meetings    timetable.WeeklyMeetings `json:"meetings"`
	Seats       SeatsInfo                `json:"seats"`
}

// Schedule is one valid combination: exactly one section per query, in query
// order. Schedules are immutable value slices; the generator grows them
// copy-on-append so candidates sharing a prefix never alias.
type Schedule []Section

// Meetings returns the sections' weekly meeting sets in schedule order.
func (s Schedule) Meetings() []timetable.WeeklyMeetings {
	meetings := make([]timetable.WeeklyMeetings, 0, len(s))
	for _, section := range s {
		meetings = append(meetings, section.Meetings)
	}
	return meetings
}

// HasCourse reports whether the schedule already contains a section of the
// given course.
func (s Schedule) HasCourse(code string) bool {
	for _, section := range s {
		if section.Course == code {
			return true
		}
	}
	return false
}

// QueryOptions are the global filter switches applied identically to every
// query in a generation run.
type QueryOptions struct {
	// ShowFull keeps sections with no open seats in play.
	ShowFull bool `json:"show_full"`
	// AllowZeroMin permits meetings that touch exactly at a boundary.
	AllowZeroMin bool `json:"allow_zeromin"`
	// ExcludeFC drops FC-prefixed sections.
	ExcludeFC bool `json:"exclude_fc"`
	// ExcludeSG drops ESG-prefixed sections.
	ExcludeSG bool `json:"exclude_sg"`
	// ExcludeSM drops ESM-prefixed sections.
	ExcludeSM bool `json:"exclude_sm"`
}
