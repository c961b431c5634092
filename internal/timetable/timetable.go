package timetable

import (
	"encoding/json"
	"sort"
)

// Meeting is a single weekly recurring time block. Start and End are minutes
// from midnight; Start == End describes a legal zero-length meeting.
type Meeting struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Location string `json:"location"`
}

// OtherMeeting classifies class meetings that occupy no fixed weekly slot.
type OtherMeeting string

const (
	// OtherUnspecified marks a meeting the catalog reports without any detail.
	OtherUnspecified OtherMeeting = "Unspecified"
	// OtherAsync marks an asynchronous online meeting.
	OtherAsync OtherMeeting = "Async"
	// OtherTBA marks an in-person meeting whose time is not yet announced.
	OtherTBA OtherMeeting = "TBA"
)

// WeeklyMeetings holds one meeting list per weekday, index 0 being Sunday.
// Day lists are kept sorted ascending by Start; entries within a day may be
// identical when the same block reaches us through co-enrolled sources.
type WeeklyMeetings struct {
	Days  [7][]Meeting   `json:"days"`
	Other []OtherMeeting `json:"other"`
}

// SortDays restores the per-day ordering invariant after direct mutation.
// The sort is stable so equal starts keep their insertion order.
func (w *WeeklyMeetings) SortDays() {
	for i := range w.Days {
		sortDay(w.Days[i])
	}
}

// Empty reports whether no weekday carries a meeting.
func (w WeeklyMeetings) Empty() bool {
	for _, day := range w.Days {
		if len(day) > 0 {
			return false
		}
	}
	return true
}

// MarshalJSON encodes empty day and irregular lists as [] rather than null,
// so consumers of the API always see arrays.
func (w WeeklyMeetings) MarshalJSON() ([]byte, error) {
	days := make([][]Meeting, len(w.Days))
	for i, day := range w.Days {
		if day == nil {
			day = []Meeting{}
		}
		days[i] = day
	}
	other := w.Other
	if other == nil {
		other = []OtherMeeting{}
	}
	return json.Marshal(struct {
		Days  [][]Meeting    `json:"days"`
		Other []OtherMeeting `json:"other"`
	}{Days: days, Other: other})
}

// Combine merges the weekly meeting sets into a single timeline per weekday
// and concatenates the irregular entries. When dedupe is set, structurally
// identical meetings within a weekday collapse to one occurrence. The result
// is freshly allocated; inputs are never mutated, and the empty input yields
// seven empty day lists and no irregular entries.
func Combine(list []WeeklyMeetings, dedupe bool) WeeklyMeetings {
	var combined WeeklyMeetings
	for _, weekly := range list {
		for day := range combined.Days {
			combined.Days[day] = append(combined.Days[day], weekly.Days[day]...)
		}
		combined.Other = append(combined.Other, weekly.Other...)
	}

	if dedupe {
		for day := range combined.Days {
			combined.Days[day] = dedupeDay(combined.Days[day])
		}
	}

	combined.SortDays()
	return combined
}

// HasOverlap reports whether any two meetings across the combined weekly
// timelines conflict. Exactly-touching meetings (one ends the minute the next
// starts) conflict only when allowZeroMinutes is false. Irregular entries
// never participate. The combined day lists are sorted by start, so checking
// adjacent pairs finds every overlap for the closed, non-nested intervals
// this model admits.
func HasOverlap(list []WeeklyMeetings, allowZeroMinutes bool) bool {
	combined := Combine(list, false)
	for _, day := range combined.Days {
		for i := 0; i+1 < len(day); i++ {
			if (!allowZeroMinutes && day[i].End >= day[i+1].Start) || day[i].End > day[i+1].Start {
				return true
			}
		}
	}
	return false
}

func dedupeDay(day []Meeting) []Meeting {
	if len(day) < 2 {
		return day
	}
	seen := make(map[Meeting]struct{}, len(day))
	kept := day[:0]
	for _, meeting := range day {
		if _, ok := seen[meeting]; ok {
			continue
		}
		seen[meeting] = struct{}{}
		kept = append(kept, meeting)
	}
	return kept
}

func sortDay(day []Meeting) {
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].Start < day[j].Start
	})
}
