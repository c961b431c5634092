package scheduler

import "github.com/example/course-scheduler/internal/catalog"

// CalculateGPA computes the weighted grade-point average over historical
// grade rows. F and W earn zero points but still count students; Other is
// excluded from both the numerator and the denominator. The result is nil
// when the rows carry no counted students.
func CalculateGPA(rows []catalog.GradeRow) *float64 {
	if len(rows) == 0 {
		return nil
	}

	var points, students float64
	for _, row := range rows {
		points += 4.0*float64(row.APlus) +
			4.0*float64(row.A) +
			3.7*float64(row.AMinus) +
			3.3*float64(row.BPlus) +
			3.0*float64(row.B) +
			2.7*float64(row.BMinus) +
			2.3*float64(row.CPlus) +
			2.0*float64(row.C) +
			1.7*float64(row.CMinus) +
			1.3*float64(row.DPlus) +
			1.0*float64(row.D) +
			0.7*float64(row.DMinus)
		students += float64(row.APlus + row.A + row.AMinus +
			row.BPlus + row.B + row.BMinus +
			row.CPlus + row.C + row.CMinus +
			row.DPlus + row.D + row.DMinus +
			row.F + row.W)
	}
	if students == 0 {
		return nil
	}

	gpa := points / students
	return &gpa
}

// courseRows filters grade rows down to those earned teaching course.
func courseRows(rows []catalog.GradeRow, course string) []catalog.GradeRow {
	var matched []catalog.GradeRow
	for _, row := range rows {
		if row.Course == course {
			matched = append(matched, row)
		}
	}
	return matched
}
