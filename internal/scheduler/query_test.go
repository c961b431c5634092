package scheduler

import "testing"

func TestNewCourseQuery_AnchorsWholeCode(t *testing.T) {
	t.Parallel()

	query, err := NewCourseQuery("MATH140")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !query.Matches("MATH140") {
		t.Fatalf("expected literal pattern to match its own code")
	}
	if query.Matches("MATH1400") || query.Matches("XMATH140") {
		t.Fatalf("pattern must match the whole code, not a substring")
	}
}

func TestCourseQuery_PatternMatching(t *testing.T) {
	t.Parallel()

	query, err := NewCourseQuery("CMSC4..")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		code string
		want bool
	}{
		{code: "CMSC412", want: true},
		{code: "CMSC499", want: true},
		{code: "CMSC131", want: false},
		{code: "CMSC4120", want: false},
	}
	for _, tc := range cases {
		if got := query.Matches(tc.code); got != tc.want {
			t.Fatalf("Matches(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNewCourseQuery_RejectsInvalidPattern(t *testing.T) {
	t.Parallel()

	if _, err := NewCourseQuery("CMSC["); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestCourseQuery_FetchHint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		want    string
	}{
		{pattern: "MATH140", want: "MATH140"},
		{pattern: "CMSC4..", want: "CMSC4"},
		{pattern: "ENGL10[12]", want: "ENGL10"},
		{pattern: ".*", want: ""},
	}
	for _, tc := range cases {
		query := MustCourseQuery(tc.pattern)
		if got := query.FetchHint(); got != tc.want {
			t.Fatalf("FetchHint(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}
