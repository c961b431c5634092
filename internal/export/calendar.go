// Package export renders a generated schedule as an iCalendar feed of
// weekly recurring events.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/example/course-scheduler/internal/scheduler"
)

// Calendar builds an iCalendar with one weekly recurring event per meeting
// of every section in the schedule. Events start in the week of termStart
// and repeat until termEnd; timeless meetings (async, TBA) produce no
// events.
func Calendar(schedule scheduler.Schedule, termStart, termEnd time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//course-scheduler//EN")

	stamp := time.Now().UTC()
	until := termEnd.UTC().Format("20060102T150405Z")

	for _, section := range schedule {
		for day, meetings := range section.Meetings.Days {
			if len(meetings) == 0 {
				continue
			}
			date := firstOnOrAfter(termStart, time.Weekday(day))
			for i, meeting := range meetings {
				// The index disambiguates duplicate meetings within a day,
				// which the meeting model allows.
				uid := fmt.Sprintf("%s-%s-%d-%d-%d@course-scheduler", section.Course, section.ID, day, i, meeting.Start)
				event := cal.AddEvent(uid)
				event.SetDtStampTime(stamp)
				event.SetStartAt(atMinutes(date, meeting.Start))
				event.SetEndAt(atMinutes(date, meeting.End))
				event.SetSummary(fmt.Sprintf("%s %s", section.Course, section.ID))
				if meeting.Location != "" {
					event.SetLocation(meeting.Location)
				}
				event.AddRrule("FREQ=WEEKLY;UNTIL=" + until)
			}
		}
	}
	return cal
}

// firstOnOrAfter returns the first date falling on weekday, starting the
// search at t.
func firstOnOrAfter(t time.Time, weekday time.Weekday) time.Time {
	days := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, days)
}

func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
