package scheduler

import (
	"fmt"
	"regexp"
)

// CourseQuery is a course-code pattern occupying one slot of the eventual
// schedule. The pattern is a regular expression matched against whole course
// codes, so "MATH140" selects exactly that course and "CMSC4.." selects the
// 400-level department offerings.
type CourseQuery struct {
	raw string
	re  *regexp.Regexp
}

// NewCourseQuery compiles pattern as a full-code match.
func NewCourseQuery(pattern string) (CourseQuery, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return CourseQuery{}, fmt.Errorf("scheduler: invalid course query %q: %w", pattern, err)
	}
	return CourseQuery{raw: pattern, re: re}, nil
}

// MustCourseQuery is NewCourseQuery for statically known patterns.
func MustCourseQuery(pattern string) CourseQuery {
	query, err := NewCourseQuery(pattern)
	if err != nil {
		panic(err)
	}
	return query
}

// String returns the raw pattern text.
func (q CourseQuery) String() string {
	return q.raw
}

// Matches reports whether the whole course code matches the pattern.
func (q CourseQuery) Matches(code string) bool {
	return q.re != nil && q.re.MatchString(code)
}

// FetchHint returns the pattern's leading literal run, used to scope catalog
// fetches. Matching is always re-checked against the full pattern, so an
// imprecise hint can only over-fetch, never change results.
func (q CourseQuery) FetchHint() string {
	for i, r := range q.raw {
		literal := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !literal {
			return q.raw[:i]
		}
	}
	return q.raw
}
