package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is an availability window within a day, held as minutes since
// midnight. Slot descriptors ("09:00 - 10:00") are parsed into Windows
// so that booked-slot matching compares clock times numerically instead
// of comparing formatted strings.
type Window struct {
	Start int
	End   int
}

// ParseWindow parses a slot descriptor of the form "HH:MM - HH:MM".
// Spacing around the dash is not significant.
func ParseWindow(descriptor string) (Window, error) {
	parts := strings.Split(descriptor, "-")
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("invalid slot descriptor %q", descriptor)
	}

	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return Window{}, fmt.Errorf("invalid slot descriptor %q: %v", descriptor, err)
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return Window{}, fmt.Errorf("invalid slot descriptor %q: %v", descriptor, err)
	}
	if end <= start {
		return Window{}, fmt.Errorf("invalid slot descriptor %q: end not after start", descriptor)
	}

	return Window{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	hm := strings.Split(s, ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("bad clock time %q", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("bad minute in %q", s)
	}
	return hour*60 + minute, nil
}

// String renders the window in the canonical descriptor shape.
func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

// Period reports "AM" when the window starts before noon, "PM" otherwise.
func (w Window) Period() string {
	if w.Start < 12*60 {
		return "AM"
	}
	return "PM"
}

// InPeriod reports whether the window belongs to the given period,
// "AM" or "PM" in any casing.
func (w Window) InPeriod(amOrPm string) bool {
	return strings.EqualFold(w.Period(), strings.TrimSpace(amOrPm))
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// dayBounds returns the inclusive start and end instants of t's
// calendar day in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	return start, end
}
