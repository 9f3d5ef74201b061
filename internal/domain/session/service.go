package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/akwright/studybuddy/internal/repository"
)

// Service handles study session proposal and response operations.
type Service struct {
	students StudentRepository
	sessions Repository
	logger   *slog.Logger
}

// NewService creates a new session service.
func NewService(students StudentRepository, sessions Repository, logger *slog.Logger) *Service {
	return &Service{students: students, sessions: sessions, logger: logger}
}

// Propose validates a session proposal and creates it with status PENDING.
// Checks run in order: inviter enrolled in the course, then for each invitee
// enrollment and an availability overlap with the proposed slot, then the
// inviter's own overlap. Nothing is created when any check fails.
func (s *Service) Propose(ctx context.Context, inviterID, course string, slot schedule.Slot, inviteeIDs []string) (*StudySession, error) {
	inviter, err := s.getStudent(ctx, inviterID)
	if err != nil {
		return nil, err
	}
	if !inviter.HasCourse(course) {
		return nil, fmt.Errorf("inviter %s not in course %s: %w", inviterID, course, ErrNotEnrolled)
	}

	proposed := []schedule.Slot{slot}
	for _, inviteeID := range inviteeIDs {
		invitee, err := s.getStudent(ctx, inviteeID)
		if err != nil {
			return nil, err
		}
		if !invitee.HasCourse(course) {
			return nil, fmt.Errorf("invitee %s not in course %s: %w", inviteeID, course, ErrNotEnrolled)
		}
		if !schedule.AnyOverlap(proposed, invitee.Availability) {
			return nil, fmt.Errorf("invitee %s not available at %s: %w", inviteeID, slot, ErrNotAvailable)
		}
	}
	if !schedule.AnyOverlap(proposed, inviter.Availability) {
		return nil, fmt.Errorf("inviter %s not available at %s: %w", inviterID, slot, ErrNotAvailable)
	}

	sess, err := s.sessions.Create(ctx, course, slot, inviterID, inviteeIDs)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Respond records one participant's answer. A single acceptance confirms the
// session for everyone, a decline marks it declined, and any later response
// from any participant overwrites the status again; there is no terminal
// state.
func (s *Service) Respond(ctx context.Context, studentID, sessionID string, accept bool) (*StudySession, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}
	if !sess.HasParticipant(studentID) {
		return nil, fmt.Errorf("student %s: %w", studentID, ErrNotParticipant)
	}

	if accept {
		sess.Status = StatusConfirmed
	} else {
		sess.Status = StatusDeclined
	}
	return sess, nil
}

// ListFor returns every session the student participates in, in creation
// order.
func (s *Service) ListFor(ctx context.Context, studentID string) ([]*StudySession, error) {
	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	mine := make([]*StudySession, 0)
	for _, sess := range all {
		if sess.HasParticipant(studentID) {
			mine = append(mine, sess)
		}
	}
	return mine, nil
}

func (s *Service) getStudent(ctx context.Context, id string) (*student.Student, error) {
	stu, err := s.students.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("student %s: %w", id, student.ErrStudentNotFound)
		}
		return nil, fmt.Errorf("getting student: %w", err)
	}
	return stu, nil
}
