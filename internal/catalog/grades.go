package catalog

// GradeRow is one historical per-course-per-semester grade distribution for
// a professor. The thirteen graded buckets (A+ through D-, F, W) count
// toward GPA; Other is excluded from both sides of the average.
type GradeRow struct {
	Course    string `json:"course" csv:"course"`
	Professor string `json:"professor" csv:"professor"`
	Semester  string `json:"semester" csv:"semester"`
	Section   string `json:"section" csv:"section"`
	APlus     int    `json:"A+" csv:"A+"`
	A         int    `json:"A" csv:"A"`
	AMinus    int    `json:"A-" csv:"A-"`
	BPlus     int    `json:"B+" csv:"B+"`
	B         int    `json:"B" csv:"B"`
	BMinus    int    `json:"B-" csv:"B-"`
	CPlus     int    `json:"C+" csv:"C+"`
	C         int    `json:"C" csv:"C"`
	CMinus    int    `json:"C-" csv:"C-"`
	DPlus     int    `json:"D+" csv:"D+"`
	D         int    `json:"D" csv:"D"`
	DMinus    int    `json:"D-" csv:"D-"`
	F         int    `json:"F" csv:"F"`
	W         int    `json:"W" csv:"W"`
	Other     int    `json:"Other" csv:"Other"`
}
