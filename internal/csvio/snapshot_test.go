package csvio

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadGrades_IndexesByProfessor(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "grades.csv",
		"course,professor,semester,section,A+,A,A-,B+,B,B-,C+,C,C-,D+,D,D-,F,W,Other\n"+
			"MATH140,Justin Wyss-Gallifent,202401,0101,12,30,8,0,0,0,0,0,0,0,0,0,2,3,1\n"+
			"MATH241,Justin Wyss-Gallifent,202401,0201,4,10,2,0,0,0,0,0,0,0,0,0,0,0,0\n"+
			"CMSC131,Nelson Padua-Perez,202401,0101,20,40,10,5,5,0,0,0,0,0,0,0,1,2,0\n")

	grades, err := LoadGrades(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grades) != 2 {
		t.Fatalf("expected 2 professors, got %d", len(grades))
	}
	rows := grades["Justin Wyss-Gallifent"]
	if len(rows) != 2 || rows[0].Course != "MATH140" || rows[0].APlus != 12 || rows[0].W != 3 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestLoadGrades_MissingFileFails(t *testing.T) {
	t.Parallel()

	if _, err := LoadGrades(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadInstructors_IndexesByName(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "instructors.csv",
		"name,slug,average_rating\n"+
			"Justin Wyss-Gallifent,wyss-gallifent,4.3\n"+
			"Nelson Padua-Perez,padua-perez,4.1\n")

	directory, err := LoadInstructors(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record, ok := directory["Justin Wyss-Gallifent"]
	if !ok || record.Slug != "wyss-gallifent" || record.AverageRating == nil || *record.AverageRating != 4.3 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestSnapshotAdapters(t *testing.T) {
	t.Parallel()

	gradesPath := writeFile(t, "grades.csv",
		"course,professor,semester,section,A+,A,A-,B+,B,B-,C+,C,C-,D+,D,D-,F,W,Other\n"+
			"MATH140,Justin Wyss-Gallifent,202401,0101,0,10,0,0,0,0,0,0,0,0,0,0,0,0,0\n")
	instructorsPath := writeFile(t, "instructors.csv",
		"name,slug,average_rating\nJustin Wyss-Gallifent,wyss-gallifent,4.3\n")

	grades, err := LoadGrades(gradesPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := LoadInstructors(instructorsPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	archive := NewGradeArchive(grades)
	rows, err := archive.Grades(context.Background(), "Justin Wyss-Gallifent")
	if err != nil || len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v rows err=%v", rows, err)
	}
	if rows, err := archive.Grades(context.Background(), "Nobody"); err != nil || rows != nil {
		t.Fatalf("expected empty history for unknown professor, got %v err=%v", rows, err)
	}

	directory := NewInstructorDirectory(records)
	resolved, err := directory.Instructors(context.Background(), []string{"Justin Wyss-Gallifent", "Nobody"})
	if err != nil || len(resolved) != 1 || resolved[0].Slug != "wyss-gallifent" {
		t.Fatalf("expected single known record, got %v err=%v", resolved, err)
	}
}
