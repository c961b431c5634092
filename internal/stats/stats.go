// Package stats reduces a finished schedule to named scalar metrics, each
// with a normalization onto roughly [0, 1] for ranking and a display
// formatter.
package stats

import (
	"fmt"
	"math"
	"strconv"

	"github.com/example/course-scheduler/internal/scheduler"
	"github.com/example/course-scheduler/internal/timetable"
)

// Metric names. These are stable display keys, not identifiers.
const (
	MetricOpenSeats  = "% open seats"
	MetricRating     = "Rating"
	MetricGPA        = "GPA"
	MetricDaysOff    = "Days off"
	MetricLongestDay = "Longest day"
	MetricBackToBack = "Back-to-back"
)

// Gaps shorter than this merge adjacent meetings into one back-to-back run.
const backToBackGapMinutes = 30

// Defaults used when no instructor in the schedule carries the source value.
const (
	defaultRating = 2.5
	defaultGPA    = 2.0
)

// Stats maps metric name to its natural-unit value.
type Stats map[string]float64

// Compute derives every metric for one schedule. The input is not modified.
func Compute(schedule scheduler.Schedule) Stats {
	weekly := timetable.Combine(schedule.Meetings(), false)

	var seats, openSeats int
	var ratings, gpas []float64
	for _, section := range schedule {
		seats += section.Seats.Seats
		openSeats += section.Seats.OpenSeats
		for _, instructor := range section.Instructors {
			if instructor.AverageRating != nil {
				ratings = append(ratings, *instructor.AverageRating)
			}
			if instructor.GPA != nil {
				gpas = append(gpas, *instructor.GPA)
			}
		}
	}

	return Stats{
		MetricOpenSeats:  openSeatRatio(openSeats, seats),
		MetricRating:     meanOr(ratings, defaultRating),
		MetricGPA:        meanOr(gpas, defaultGPA),
		MetricDaysOff:    daysOff(weekly),
		MetricLongestDay: longestDay(weekly),
		MetricBackToBack: backToBack(weekly),
	}
}

func openSeatRatio(openSeats, seats int) float64 {
	if seats == 0 {
		return 0
	}
	return float64(openSeats) / float64(seats)
}

func meanOr(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// daysOff counts the Monday through Friday days with no meetings and
// subtracts the two weekend days from the five-day denominator, so a
// Monday-and-Wednesday schedule scores 1.
func daysOff(weekly timetable.WeeklyMeetings) float64 {
	empty := 0
	for day := 1; day <= 5; day++ {
		if len(weekly.Days[day]) == 0 {
			empty++
		}
	}
	return float64(empty - 2)
}

// longestDay is the widest first-start-to-last-end span over the days that
// have meetings, 0 for a meeting-free schedule.
func longestDay(weekly timetable.WeeklyMeetings) float64 {
	longest := 0
	for _, day := range weekly.Days {
		if len(day) == 0 {
			continue
		}
		if span := day[len(day)-1].End - day[0].Start; span > longest {
			longest = span
		}
	}
	return float64(longest)
}

// backToBack averages the span of each maximal run of meetings separated by
// less than the gap threshold, over every run in the week.
func backToBack(weekly timetable.WeeklyMeetings) float64 {
	var spans []float64
	for _, day := range weekly.Days {
		if len(day) == 0 {
			continue
		}
		start, end := day[0].Start, day[0].End
		for _, meeting := range day[1:] {
			if meeting.Start-end >= backToBackGapMinutes {
				spans = append(spans, float64(end-start))
				start, end = meeting.Start, meeting.End
				continue
			}
			if meeting.End > end {
				end = meeting.End
			}
		}
		spans = append(spans, float64(end-start))
	}
	return meanOr(spans, 0)
}

type metricScale struct {
	normalize func(float64) float64
	format    func(float64) string
}

var metricScales = map[string]metricScale{
	MetricOpenSeats: {
		normalize: func(x float64) float64 { return x },
		format:    func(x float64) string { return fmt.Sprintf("%.0f%%", x*100) },
	},
	MetricRating: {
		normalize: func(x float64) float64 { return x / 5 },
		format:    func(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) },
	},
	MetricGPA: {
		normalize: func(x float64) float64 { return x / 4 },
		format:    func(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) },
	},
	MetricDaysOff: {
		normalize: func(x float64) float64 { return x / 5 },
		format:    func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) },
	},
	MetricLongestDay: {
		normalize: func(x float64) float64 { return 1 - x/(8*60) },
		format:    formatSpan,
	},
	MetricBackToBack: {
		normalize: func(x float64) float64 { return 1 - x/(8*60) },
		format:    formatSpan,
	},
}

func formatSpan(x float64) string {
	return timetable.FormatMinutes(int(math.Round(x)))
}

// Normalize maps a metric's natural value onto its comparison scale.
// Unknown metric names pass through unchanged.
func Normalize(name string, value float64) float64 {
	if scale, ok := metricScales[name]; ok {
		return scale.normalize(value)
	}
	return value
}

// Format renders a metric's natural value for display.
func Format(name string, value float64) string {
	if scale, ok := metricScales[name]; ok {
		return scale.format(value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
