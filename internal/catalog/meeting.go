package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MeetingKind tags the variant carried by a ClassMeeting.
type MeetingKind int

const (
	// MeetingInPerson is a physical class meeting, possibly without a
	// scheduled time yet.
	MeetingInPerson MeetingKind = iota
	// MeetingOnlineSync is an online meeting with a fixed weekly time.
	MeetingOnlineSync
	// MeetingOnlineAsync is an online meeting with no scheduled time.
	MeetingOnlineAsync
	// MeetingUnspecified is a meeting the catalog reports without detail.
	MeetingUnspecified
)

// ClockTime is the feed's (hour, minute, meridiem) triple. It is encoded on
// the wire as a three-element JSON array such as [10, 0, "Am"].
type ClockTime struct {
	Hour     int
	Minute   int
	Meridiem string
}

// UnmarshalJSON decodes the feed's array encoding.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("catalog: clock time: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("catalog: clock time must have 3 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &t.Hour); err != nil {
		return fmt.Errorf("catalog: clock time hour: %w", err)
	}
	if err := json.Unmarshal(parts[1], &t.Minute); err != nil {
		return fmt.Errorf("catalog: clock time minute: %w", err)
	}
	if err := json.Unmarshal(parts[2], &t.Meridiem); err != nil {
		return fmt.Errorf("catalog: clock time meridiem: %w", err)
	}
	return nil
}

// MarshalJSON encodes the triple back into the feed's array form.
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Hour, t.Minute, t.Meridiem})
}

// ClassTime is a raw weekly meeting time: a weekday-letter string over the
// Su M Tu W Th F Sa alphabet plus start and end clock readings.
type ClassTime struct {
	Days  string    `json:"days"`
	Start ClockTime `json:"start_time"`
	End   ClockTime `json:"end_time"`
}

// InPersonDetail carries the payload of an in-person meeting. Classtime is
// nil when the time is still to be announced; Location parts are joined with
// spaces by the assembler.
type InPersonDetail struct {
	Classtime *ClassTime `json:"classtime,omitempty"`
	Location  []string   `json:"location,omitempty"`
}

// ClassMeeting is the feed's tagged meeting variant. On the wire the
// timeless variants are bare strings ("OnlineAsync", "Unspecified") and the
// timed variants are single-key objects named after their tag. Consumers
// switch on Kind and must handle every constant.
type ClassMeeting struct {
	Kind     MeetingKind
	InPerson *InPersonDetail // set when Kind == MeetingInPerson
	Sync     *ClassTime      // set when Kind == MeetingOnlineSync
}

// NewInPerson builds an in-person meeting variant.
func NewInPerson(classtime *ClassTime, location ...string) ClassMeeting {
	return ClassMeeting{Kind: MeetingInPerson, InPerson: &InPersonDetail{Classtime: classtime, Location: location}}
}

// NewOnlineSync builds a synchronous online meeting variant.
func NewOnlineSync(classtime ClassTime) ClassMeeting {
	return ClassMeeting{Kind: MeetingOnlineSync, Sync: &classtime}
}

// NewOnlineAsync builds the asynchronous online variant.
func NewOnlineAsync() ClassMeeting {
	return ClassMeeting{Kind: MeetingOnlineAsync}
}

// NewUnspecified builds the unspecified variant.
func NewUnspecified() ClassMeeting {
	return ClassMeeting{Kind: MeetingUnspecified}
}

// UnmarshalJSON decodes the string-or-object wire encoding.
func (m *ClassMeeting) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "OnlineAsync":
			*m = ClassMeeting{Kind: MeetingOnlineAsync}
			return nil
		case "Unspecified":
			*m = ClassMeeting{Kind: MeetingUnspecified}
			return nil
		default:
			return fmt.Errorf("catalog: unknown meeting tag %q", tag)
		}
	}

	var obj struct {
		InPerson   *InPersonDetail `json:"InPerson"`
		OnlineSync *ClassTime      `json:"OnlineSync"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("catalog: class meeting: %w", err)
	}
	switch {
	case obj.InPerson != nil:
		*m = ClassMeeting{Kind: MeetingInPerson, InPerson: obj.InPerson}
	case obj.OnlineSync != nil:
		*m = ClassMeeting{Kind: MeetingOnlineSync, Sync: obj.OnlineSync}
	default:
		return errors.New("catalog: class meeting object carries no known variant")
	}
	return nil
}

// MarshalJSON re-encodes the variant in its wire form.
func (m ClassMeeting) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MeetingOnlineAsync:
		return json.Marshal("OnlineAsync")
	case MeetingUnspecified:
		return json.Marshal("Unspecified")
	case MeetingInPerson:
		return json.Marshal(map[string]*InPersonDetail{"InPerson": m.InPerson})
	case MeetingOnlineSync:
		return json.Marshal(map[string]*ClassTime{"OnlineSync": m.Sync})
	default:
		return nil, fmt.Errorf("catalog: unhandled meeting kind %d", m.Kind)
	}
}
