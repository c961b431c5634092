package scheduler

import (
	"fmt"
	"strings"

	"github.com/example/course-scheduler/internal/catalog"
	"github.com/example/course-scheduler/internal/timetable"
)

// dayLetters maps weekday indices (Sunday first) to the catalog's
// weekday-letter alphabet.
var dayLetters = [7]string{"Su", "M", "Tu", "W", "Th", "F", "Sa"}

// AssembleSection fuses a raw catalog section with the enrichment lookups
// into a fully populated Section. Placeholder instructor names are dropped
// here, so no assembled section ever carries one. Directory misses fall back
// to a bare named instructor; a seat-map miss is a collaborator contract
// violation and fails the call.
func AssembleSection(
	course string,
	raw catalog.RawSection,
	directory map[string]catalog.InstructorRecord,
	grades map[string][]catalog.GradeRow,
	seats map[string]catalog.SeatCount,
) (Section, error) {
	meetings, err := buildWeeklyMeetings(raw.ClassMeetings)
	if err != nil {
		return Section{}, fmt.Errorf("scheduler: section %s %s: %w", course, raw.Code, err)
	}

	var instructors []Instructor
	for _, name := range raw.Instructors {
		if name == catalog.InstructorPlaceholder {
			continue
		}
		instructor := Instructor{Name: name}
		if record, ok := directory[name]; ok {
			instructor.Slug = record.Slug
			instructor.AverageRating = record.AverageRating
		}
		instructor.GPA = CalculateGPA(courseRows(grades[name], course))
		instructors = append(instructors, instructor)
	}

	counts, ok := seats[raw.Code]
	if !ok {
		return Section{}, fmt.Errorf("%w: %s %s", ErrSeatDataMissing, course, raw.Code)
	}

	return Section{
		Course:      course,
		ID:          raw.Code,
		Instructors: instructors,
		Meetings:    meetings,
		Seats: SeatsInfo{
			Seats:     counts.Seats,
			OpenSeats: counts.OpenSeats,
			Waitlist:  counts.Waitlist,
		},
	}, nil
}

// buildWeeklyMeetings spreads the tagged meeting records over the weekday
// buckets. Timeless variants land in the Other list: Unspecified stays
// Unspecified, OnlineAsync becomes Async, and an in-person meeting without a
// classtime becomes TBA.
func buildWeeklyMeetings(classMeetings []catalog.ClassMeeting) (timetable.WeeklyMeetings, error) {
	var weekly timetable.WeeklyMeetings
	for _, meeting := range classMeetings {
		switch meeting.Kind {
		case catalog.MeetingUnspecified:
			weekly.Other = append(weekly.Other, timetable.OtherUnspecified)
		case catalog.MeetingOnlineAsync:
			weekly.Other = append(weekly.Other, timetable.OtherAsync)
		case catalog.MeetingInPerson:
			if meeting.InPerson == nil || meeting.InPerson.Classtime == nil {
				weekly.Other = append(weekly.Other, timetable.OtherTBA)
				continue
			}
			location := "TBA"
			if len(meeting.InPerson.Location) > 0 {
				location = strings.Join(meeting.InPerson.Location, " ")
			}
			if err := spreadClassTime(&weekly, *meeting.InPerson.Classtime, location); err != nil {
				return timetable.WeeklyMeetings{}, err
			}
		case catalog.MeetingOnlineSync:
			if meeting.Sync == nil {
				return timetable.WeeklyMeetings{}, fmt.Errorf("scheduler: OnlineSync meeting without classtime")
			}
			if err := spreadClassTime(&weekly, *meeting.Sync, "Online"); err != nil {
				return timetable.WeeklyMeetings{}, err
			}
		default:
			return timetable.WeeklyMeetings{}, fmt.Errorf("scheduler: unhandled meeting kind %d", meeting.Kind)
		}
	}

	weekly.SortDays()
	return weekly, nil
}

func spreadClassTime(weekly *timetable.WeeklyMeetings, classTime catalog.ClassTime, location string) error {
	start, err := timetable.ClockMinutes(classTime.Start.Hour, classTime.Start.Minute, classTime.Start.Meridiem)
	if err != nil {
		return err
	}
	end, err := timetable.ClockMinutes(classTime.End.Hour, classTime.End.Minute, classTime.End.Meridiem)
	if err != nil {
		return err
	}

	meeting := timetable.Meeting{Start: start, End: end, Location: location}
	for day, letter := range dayLetters {
		if strings.Contains(classTime.Days, letter) {
			weekly.Days[day] = append(weekly.Days[day], meeting)
		}
	}
	return nil
}
