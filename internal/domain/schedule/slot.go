package schedule

import (
	"fmt"
	"strings"
)

// TimeOfDay is a minute-precision 24-hour clock value, stored as minutes
// since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded "HH:MM" value. The shape is strict:
// exactly two digits, a colon, two digits. "9:05" is rejected.
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	if len(text) != 5 || text[2] != ':' ||
		!isDigit(text[0]) || !isDigit(text[1]) || !isDigit(text[3]) || !isDigit(text[4]) {
		return 0, fmt.Errorf("time %q (want HH:MM): %w", text, ErrBadFormat)
	}
	hour := int(text[0]-'0')*10 + int(text[1]-'0')
	minute := int(text[3]-'0')*10 + int(text[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("time %q (want HH:MM): %w", text, ErrBadFormat)
	}
	return TimeOfDay(hour*60 + minute), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// String renders the zero-padded "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Slot is a single weekly recurring availability interval on one weekday.
// Slots are immutable once constructed.
type Slot struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// NewSlot constructs a slot, rejecting intervals whose end is not strictly
// after their start.
func NewSlot(day Weekday, start, end TimeOfDay) (Slot, error) {
	if end <= start {
		return Slot{}, fmt.Errorf("slot %s %s-%s: %w", day, start, end, ErrInvalidRange)
	}
	return Slot{Day: day, Start: start, End: end}, nil
}

// Overlaps reports whether two slots intersect. Slots on different weekdays
// never overlap; on the same weekday, touching endpoints count as overlap.
func (s Slot) Overlaps(other Slot) bool {
	if s.Day != other.Day {
		return false
	}
	return s.Start <= other.End && other.Start <= s.End
}

// String renders the canonical "<DOW> <HH:MM>-<HH:MM>" form.
func (s Slot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}

// ParseSlot parses the literal "<DOW> <HH:MM>-<HH:MM>" form.
func ParseSlot(text string) (Slot, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) != 2 {
		return Slot{}, fmt.Errorf("slot %q (want \"DOW HH:MM-HH:MM\"): %w", text, ErrBadFormat)
	}
	day, err := ParseWeekday(parts[0])
	if err != nil {
		return Slot{}, err
	}
	times := strings.Split(parts[1], "-")
	if len(times) != 2 {
		return Slot{}, fmt.Errorf("slot %q (want \"DOW HH:MM-HH:MM\"): %w", text, ErrBadFormat)
	}
	start, err := ParseTimeOfDay(times[0])
	if err != nil {
		return Slot{}, err
	}
	end, err := ParseTimeOfDay(times[1])
	if err != nil {
		return Slot{}, err
	}
	return NewSlot(day, start, end)
}

// AnyOverlap reports whether any slot in a overlaps any slot in b.
func AnyOverlap(a, b []Slot) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Overlaps(y) {
				return true
			}
		}
	}
	return false
}
