package schedule

import (
	"fmt"
	"strings"
)

// Weekday identifies a day of the week.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
	"SUNDAY",
}

// String returns the canonical upper-case long name, which is also the
// persisted form.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("WEEKDAY(%d)", int(d))
	}
	return weekdayNames[d]
}

// ParseWeekday accepts common abbreviations (MON, TUE/TUES, WED,
// THU/THUR/THURS, FRI, SAT, SUN) and full names, case-insensitively.
func ParseWeekday(text string) (Weekday, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "MON", "MONDAY":
		return Monday, nil
	case "TUE", "TUES", "TUESDAY":
		return Tuesday, nil
	case "WED", "WEDNESDAY":
		return Wednesday, nil
	case "THU", "THUR", "THURS", "THURSDAY":
		return Thursday, nil
	case "FRI", "FRIDAY":
		return Friday, nil
	case "SAT", "SATURDAY":
		return Saturday, nil
	case "SUN", "SUNDAY":
		return Sunday, nil
	default:
		return 0, fmt.Errorf("weekday %q: %w", text, ErrBadFormat)
	}
}
