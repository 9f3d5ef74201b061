package student

import "errors"

var (
	// ErrStudentNotFound indicates the student doesn't exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrInvalidInput indicates a blank required profile field.
	ErrInvalidInput = errors.New("invalid profile input")
	// ErrNotEnrolled indicates the requesting student is not in the course.
	ErrNotEnrolled = errors.New("not enrolled in course")
)
