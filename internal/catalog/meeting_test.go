package catalog

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestClassMeeting_UnmarshalVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		want ClassMeeting
	}{
		{
			name: "online async string",
			data: `"OnlineAsync"`,
			want: ClassMeeting{Kind: MeetingOnlineAsync},
		},
		{
			name: "unspecified string",
			data: `"Unspecified"`,
			want: ClassMeeting{Kind: MeetingUnspecified},
		},
		{
			name: "in person with classtime",
			data: `{"InPerson":{"classtime":{"days":"MWF","start_time":[10,0,"Am"],"end_time":[10,50,"Am"]},"location":["IRB","0306"]}}`,
			want: NewInPerson(&ClassTime{
				Days:  "MWF",
				Start: ClockTime{Hour: 10, Minute: 0, Meridiem: "Am"},
				End:   ClockTime{Hour: 10, Minute: 50, Meridiem: "Am"},
			}, "IRB", "0306"),
		},
		{
			name: "in person without classtime",
			data: `{"InPerson":{}}`,
			want: ClassMeeting{Kind: MeetingInPerson, InPerson: &InPersonDetail{}},
		},
		{
			name: "online sync",
			data: `{"OnlineSync":{"days":"TuTh","start_time":[1,0,"Pm"],"end_time":[2,15,"Pm"]}}`,
			want: NewOnlineSync(ClassTime{
				Days:  "TuTh",
				Start: ClockTime{Hour: 1, Minute: 0, Meridiem: "Pm"},
				End:   ClockTime{Hour: 2, Minute: 15, Meridiem: "Pm"},
			}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got ClassMeeting
			if err := json.Unmarshal([]byte(tc.data), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("decoded %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestClassMeeting_UnmarshalRejectsUnknownShapes(t *testing.T) {
	t.Parallel()

	for _, data := range []string{`"Hybrid"`, `{}`, `{"Carpool":{}}`, `42`} {
		var meeting ClassMeeting
		if err := json.Unmarshal([]byte(data), &meeting); err == nil {
			t.Fatalf("expected error decoding %s", data)
		}
	}
}

func TestClassMeeting_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	meetings := []ClassMeeting{
		NewOnlineAsync(),
		NewUnspecified(),
		NewInPerson(&ClassTime{Days: "M", Start: ClockTime{9, 30, "Am"}, End: ClockTime{10, 45, "Am"}}, "ESJ", "2204"),
		NewInPerson(nil),
		NewOnlineSync(ClassTime{Days: "F", Start: ClockTime{12, 0, "Pm"}, End: ClockTime{12, 50, "Pm"}}),
	}

	for _, meeting := range meetings {
		data, err := json.Marshal(meeting)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded ClassMeeting
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if !reflect.DeepEqual(decoded, meeting) {
			t.Fatalf("round trip changed %+v into %+v", meeting, decoded)
		}
	}
}

func TestRawSection_DecodesFeedPayload(t *testing.T) {
	t.Parallel()

	payload := `{
		"code": "MATH140",
		"sections": [
			{
				"sec_code": "0101",
				"instructors": ["Justin Wyss-Gallifent", "Instructor: TBA"],
				"class_meetings": [
					{"InPerson":{"classtime":{"days":"MW","start_time":[10,0,"Am"],"end_time":[10,50,"Am"]},"location":["KEY","0106"]}},
					"OnlineAsync"
				]
			}
		]
	}`

	var course Course
	if err := json.Unmarshal([]byte(payload), &course); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if course.Code != "MATH140" {
		t.Fatalf("expected course code MATH140, got %q", course.Code)
	}
	if len(course.Sections) != 1 {
		t.Fatalf("expected a single section, got %d", len(course.Sections))
	}
	section := course.Sections[0]
	if section.Code != "0101" {
		t.Fatalf("expected section 0101, got %q", section.Code)
	}
	if len(section.Instructors) != 2 || section.Instructors[1] != InstructorPlaceholder {
		t.Fatalf("expected raw instructor list with placeholder, got %v", section.Instructors)
	}
	if len(section.ClassMeetings) != 2 || section.ClassMeetings[1].Kind != MeetingOnlineAsync {
		t.Fatalf("expected two meetings ending with OnlineAsync, got %+v", section.ClassMeetings)
	}
}
