// Package catalog defines the wire-level records exchanged with the external
// course-data feeds: the course catalog, the instructor directory, the
// historical grade archive and the live seat tracker. The scheduling engine
// consumes these records through the source interfaces it declares itself.
package catalog

// InstructorPlaceholder is the catalog's marker for sections that have no
// assigned instructor yet. It must never survive into an assembled section.
const InstructorPlaceholder = "Instructor: TBA"

// Course is one catalog record: a course code and its offered sections.
type Course struct {
	Code     string       `json:"code"`
	Sections []RawSection `json:"sections"`
}

// RawSection is a bare catalog section before enrichment. Instructor names
// are raw strings and may include InstructorPlaceholder.
type RawSection struct {
	Code          string         `json:"sec_code"`
	Instructors   []string       `json:"instructors"`
	ClassMeetings []ClassMeeting `json:"class_meetings"`
}

// InstructorRecord is a directory entry looked up by exact name. The rating
// is absent for instructors the directory has no reviews for.
type InstructorRecord struct {
	Name          string   `json:"name" csv:"name"`
	Slug          string   `json:"slug,omitempty" csv:"slug"`
	AverageRating *float64 `json:"average_rating,omitempty" csv:"average_rating"`
}

// SeatCount is the live seat snapshot for one section.
type SeatCount struct {
	Seats     int `json:"seats"`
	OpenSeats int `json:"open_seats"`
	Waitlist  int `json:"waitlist"`
}
