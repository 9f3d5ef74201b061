package session

import (
	"fmt"
	"slices"

	"github.com/akwright/studybuddy/internal/domain/schedule"
)

// Status represents the lifecycle status of a study session.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusDeclined  Status = "DECLINED"
)

// ParseStatus parses the persisted status text.
func ParseStatus(text string) (Status, error) {
	switch Status(text) {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return Status(text), nil
	default:
		return "", fmt.Errorf("session status %q: %w", text, ErrBadStatus)
	}
}

// StudySession is a proposed group study meeting for one course. The inviter
// is always among the participants; participants are kept sorted.
type StudySession struct {
	ID           string
	CourseCode   string
	Slot         schedule.Slot
	Participants []string
	InviterID    string
	Status       Status
}

// HasParticipant reports whether the student id is attached to the session.
func (ss *StudySession) HasParticipant(studentID string) bool {
	return slices.Contains(ss.Participants, studentID)
}
