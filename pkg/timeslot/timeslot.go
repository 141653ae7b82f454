package timeslot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Comparisons are plain integer comparisons, so ordering never depends on
// how the time was spelled on the wire.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM" string. Unpadded or
// 12-hour representations are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time of day %q: must be zero-padded 24-hour HH:MM", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return TimeOfDay(hours*60 + minutes), nil
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Interval is a half-open time range [Start, End). The start instant is
// included, the end instant is excluded, so intervals touching at a boundary
// do not overlap.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval parses the two time strings into an interval. It does not
// require Start < End; range ordering is a validation rule, not a parsing one.
func NewInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether the two half-open intervals share any instant.
// The predicate is commutative.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// Date is a calendar date with no time zone attached.
type Date struct {
	t time.Time
}

// ParseDate parses a strict "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return Date{t: t}, nil
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
