// Package csvio loads offline CSV snapshots of the instructor directory and
// the grade archive. Snapshots stand in for the live APIs in development and
// in air-gapped deployments; the catalog and seat feeds have no snapshot
// form because their data is term-scoped and volatile respectively.
package csvio

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/example/course-scheduler/internal/catalog"
)

// LoadGrades reads a grade-archive snapshot and indexes its rows by
// professor name.
func LoadGrades(path string) (map[string][]catalog.GradeRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open grades snapshot: %w", err)
	}
	defer file.Close()

	var rows []catalog.GradeRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("csvio: parse grades snapshot %s: %w", path, err)
	}

	byProfessor := make(map[string][]catalog.GradeRow)
	for _, row := range rows {
		byProfessor[row.Professor] = append(byProfessor[row.Professor], row)
	}
	return byProfessor, nil
}

// LoadInstructors reads an instructor-directory snapshot and indexes its
// records by name.
func LoadInstructors(path string) (map[string]catalog.InstructorRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open instructor snapshot: %w", err)
	}
	defer file.Close()

	var records []catalog.InstructorRecord
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("csvio: parse instructor snapshot %s: %w", path, err)
	}

	byName := make(map[string]catalog.InstructorRecord, len(records))
	for _, record := range records {
		byName[record.Name] = record
	}
	return byName, nil
}

// GradeArchive serves a loaded grade snapshot. Professors absent from the
// snapshot yield an empty history.
type GradeArchive struct {
	rows map[string][]catalog.GradeRow
}

// NewGradeArchive builds an archive over rows as returned by LoadGrades.
func NewGradeArchive(rows map[string][]catalog.GradeRow) *GradeArchive {
	return &GradeArchive{rows: rows}
}

// Grades returns the snapshot rows for professor.
func (a *GradeArchive) Grades(_ context.Context, professor string) ([]catalog.GradeRow, error) {
	return a.rows[professor], nil
}

// InstructorDirectory serves a loaded directory snapshot.
type InstructorDirectory struct {
	records map[string]catalog.InstructorRecord
}

// NewInstructorDirectory builds a directory over records as returned by
// LoadInstructors.
func NewInstructorDirectory(records map[string]catalog.InstructorRecord) *InstructorDirectory {
	return &InstructorDirectory{records: records}
}

// Instructors returns the snapshot records matching names. Unknown names are
// simply omitted.
func (d *InstructorDirectory) Instructors(_ context.Context, names []string) ([]catalog.InstructorRecord, error) {
	var records []catalog.InstructorRecord
	for _, name := range names {
		if record, ok := d.records[name]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}
