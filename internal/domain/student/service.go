package student

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/repository"
)

// Service handles profile, enrollment, availability, and matching operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new student service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateProfile registers a new student. Name and email are required;
// duplicates are permitted.
func (s *Service) CreateProfile(ctx context.Context, name, email string) (*Student, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("name required: %w", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("email required: %w", ErrInvalidInput)
	}

	stu, err := s.repo.Create(ctx, name, email)
	if err != nil {
		return nil, fmt.Errorf("creating student: %w", err)
	}
	return stu, nil
}

// AddCourse enrolls the student in a course.
func (s *Service) AddCourse(ctx context.Context, studentID, course string) error {
	stu, err := s.getStudent(ctx, studentID)
	if err != nil {
		return err
	}
	stu.AddCourse(strings.TrimSpace(course))
	return nil
}

// RemoveCourse drops an enrollment; removing an absent course is a no-op.
func (s *Service) RemoveCourse(ctx context.Context, studentID, course string) error {
	stu, err := s.getStudent(ctx, studentID)
	if err != nil {
		return err
	}
	stu.RemoveCourse(strings.TrimSpace(course))
	return nil
}

// AddAvailability appends an availability window to the student's schedule.
func (s *Service) AddAvailability(ctx context.Context, studentID string, day schedule.Weekday, start, end schedule.TimeOfDay) error {
	stu, err := s.getStudent(ctx, studentID)
	if err != nil {
		return err
	}
	slot, err := schedule.NewSlot(day, start, end)
	if err != nil {
		return err
	}
	stu.AddSlot(slot)
	return nil
}

// RemoveAvailability deletes exact-match availability entries only.
func (s *Service) RemoveAvailability(ctx context.Context, studentID string, day schedule.Weekday, start, end schedule.TimeOfDay) error {
	stu, err := s.getStudent(ctx, studentID)
	if err != nil {
		return err
	}
	slot, err := schedule.NewSlot(day, start, end)
	if err != nil {
		return err
	}
	stu.RemoveSlot(slot)
	return nil
}

// ClassmatesInCourse returns every student enrolled in the course, in
// registration order.
func (s *Service) ClassmatesInCourse(ctx context.Context, course string) ([]*Student, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	matches := make([]*Student, 0)
	for _, stu := range all {
		if stu.HasCourse(course) {
			matches = append(matches, stu)
		}
	}
	return matches, nil
}

// SuggestMatches returns every other student in the course whose availability
// overlaps the requester's on at least one slot.
func (s *Service) SuggestMatches(ctx context.Context, studentID, course string) ([]*Student, error) {
	me, err := s.getStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !me.HasCourse(course) {
		return nil, fmt.Errorf("student %s is not enrolled in %s: %w", studentID, course, ErrNotEnrolled)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	matches := make([]*Student, 0)
	for _, other := range all {
		if other.ID == me.ID || !other.HasCourse(course) {
			continue
		}
		if schedule.AnyOverlap(me.Availability, other.Availability) {
			matches = append(matches, other)
		}
	}
	return matches, nil
}

func (s *Service) getStudent(ctx context.Context, id string) (*Student, error) {
	stu, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("student %s: %w", id, ErrStudentNotFound)
		}
		return nil, fmt.Errorf("getting student: %w", err)
	}
	return stu, nil
}
