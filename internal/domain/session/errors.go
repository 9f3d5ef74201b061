package session

import "errors"

var (
	// ErrSessionNotFound indicates the session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNotEnrolled indicates a party is not enrolled in the course.
	ErrNotEnrolled = errors.New("not enrolled in course")
	// ErrNotAvailable indicates a party has no slot overlapping the proposal.
	ErrNotAvailable = errors.New("not available at proposed slot")
	// ErrNotParticipant indicates the responder is not attached to the session.
	ErrNotParticipant = errors.New("not a participant of this session")
	// ErrBadStatus indicates unparsable persisted status text.
	ErrBadStatus = errors.New("bad session status")
)
