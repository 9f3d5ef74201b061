package schedule

import "errors"

var (
	// ErrInvalidRange indicates a slot whose end is not after its start.
	ErrInvalidRange = errors.New("end must be after start")
	// ErrBadFormat indicates unparsable weekday, time, or slot text.
	ErrBadFormat = errors.New("bad format")
)
