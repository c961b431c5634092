package testfixtures

import (
	"context"
	"errors"
	"testing"
)

func TestFeed_CoursesFiltersByHint(t *testing.T) {
	feed := NewFeed()

	courses, err := feed.Courses(context.Background(), "CMSC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[0].Code != "CMSC131" {
		t.Fatalf("unexpected courses %+v", courses)
	}

	all, err := feed.Courses(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected full catalog for empty hint, got %d courses", len(all))
	}
}

func TestFeed_InstructorsMatchesByName(t *testing.T) {
	feed := NewFeed()

	records, err := feed.Instructors(context.Background(), []string{"Nelson Padua-Perez", "Nobody"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Slug != "padua-perez" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestFeed_InjectedErrors(t *testing.T) {
	feed := NewFeed()
	boom := errors.New("boom")
	feed.CatalogErr = boom
	feed.SeatsErr = boom

	if _, err := feed.Courses(context.Background(), "MATH"); !errors.Is(err, boom) {
		t.Fatalf("expected injected catalog error, got %v", err)
	}
	if _, err := feed.Seats(context.Background(), "MATH140"); !errors.Is(err, boom) {
		t.Fatalf("expected injected seats error, got %v", err)
	}
	if _, err := feed.Grades(context.Background(), "Anyone"); err != nil {
		t.Fatalf("expected grades unaffected, got %v", err)
	}
}
