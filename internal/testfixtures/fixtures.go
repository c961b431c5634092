// Package testfixtures provides deterministic sample data and in-memory
// collaborators for engine and handler tests.
package testfixtures

import (
	"time"

	"github.com/example/course-scheduler/internal/catalog"
)

var referenceTime = time.Date(2025, time.September, 1, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

func ratingPtr(v float64) *float64 { return &v }

// SampleCourses returns a small catalog: a MATH140 lecture meeting Monday
// and Wednesday mornings, and two CMSC131 sections of which only the TuTh
// one is compatible with MATH140.
func SampleCourses() []catalog.Course {
	math := catalog.ClassTime{
		Days:  "MW",
		Start: catalog.ClockTime{Hour: 10, Minute: 0, Meridiem: "Am"},
		End:   catalog.ClockTime{Hour: 10, Minute: 50, Meridiem: "Am"},
	}
	cmscMonday := catalog.ClassTime{
		Days:  "M",
		Start: catalog.ClockTime{Hour: 10, Minute: 0, Meridiem: "Am"},
		End:   catalog.ClockTime{Hour: 11, Minute: 0, Meridiem: "Am"},
	}
	cmscTuTh := catalog.ClassTime{
		Days:  "TuTh",
		Start: catalog.ClockTime{Hour: 10, Minute: 0, Meridiem: "Am"},
		End:   catalog.ClockTime{Hour: 10, Minute: 50, Meridiem: "Am"},
	}

	return []catalog.Course{
		{
			Code: "MATH140",
			Sections: []catalog.RawSection{
				{
					Code:          "0101",
					Instructors:   []string{"Justin Wyss-Gallifent"},
					ClassMeetings: []catalog.ClassMeeting{catalog.NewInPerson(&math, "KEY", "0106")},
				},
			},
		},
		{
			Code: "CMSC131",
			Sections: []catalog.RawSection{
				{
					Code:          "0101",
					Instructors:   []string{"Nelson Padua-Perez"},
					ClassMeetings: []catalog.ClassMeeting{catalog.NewInPerson(&cmscMonday, "IRB", "0306")},
				},
				{
					Code:          "0201",
					Instructors:   []string{"Nelson Padua-Perez"},
					ClassMeetings: []catalog.ClassMeeting{catalog.NewInPerson(&cmscTuTh, "IRB", "0306")},
				},
			},
		},
	}
}

// SampleInstructors returns directory records matching SampleCourses.
func SampleInstructors() []catalog.InstructorRecord {
	return []catalog.InstructorRecord{
		{Name: "Justin Wyss-Gallifent", Slug: "wyss-gallifent", AverageRating: ratingPtr(4.3)},
		{Name: "Nelson Padua-Perez", Slug: "padua-perez", AverageRating: ratingPtr(4.1)},
	}
}

// SampleGrades returns grade histories matching SampleCourses.
func SampleGrades() map[string][]catalog.GradeRow {
	return map[string][]catalog.GradeRow{
		"Justin Wyss-Gallifent": {
			{Course: "MATH140", Professor: "Justin Wyss-Gallifent", Semester: "202401", Section: "0101", APlus: 12, A: 30, AMinus: 8, F: 2, W: 3, Other: 1},
		},
		"Nelson Padua-Perez": {
			{Course: "CMSC131", Professor: "Nelson Padua-Perez", Semester: "202401", Section: "0101", APlus: 20, A: 40, AMinus: 10, BPlus: 5, B: 5, F: 1, W: 2},
		},
	}
}

// SampleSeats returns seat snapshots matching SampleCourses, keyed by course
// then section.
func SampleSeats() map[string]map[string]catalog.SeatCount {
	return map[string]map[string]catalog.SeatCount{
		"MATH140": {
			"0101": {Seats: 120, OpenSeats: 30, Waitlist: 0},
		},
		"CMSC131": {
			"0101": {Seats: 200, OpenSeats: 15, Waitlist: 2},
			"0201": {Seats: 200, OpenSeats: 40, Waitlist: 0},
		},
	}
}
