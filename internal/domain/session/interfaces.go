package session

import (
	"context"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/student"
)

// StudentRepository provides student lookup for proposal validation.
type StudentRepository interface {
	Get(ctx context.Context, id string) (*student.Student, error)
}

// Repository provides persistence for study sessions.
type Repository interface {
	Create(ctx context.Context, course string, slot schedule.Slot, inviterID string, inviteeIDs []string) (*StudySession, error)
	Get(ctx context.Context, id string) (*StudySession, error)
	List(ctx context.Context) ([]*StudySession, error)
}
