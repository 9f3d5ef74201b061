package mocks

import (
	"context"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/stretchr/testify/mock"
)

// StudentRepository is a mock for student.Repository.
type StudentRepository struct {
	mock.Mock
}

func (m *StudentRepository) Create(ctx context.Context, name, email string) (*student.Student, error) {
	args := m.Called(ctx, name, email)
	if stu, ok := args.Get(0).(*student.Student); ok {
		return stu, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudentRepository) Get(ctx context.Context, id string) (*student.Student, error) {
	args := m.Called(ctx, id)
	if stu, ok := args.Get(0).(*student.Student); ok {
		return stu, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*student.Student); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for session.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, course string, slot schedule.Slot, inviterID string, inviteeIDs []string) (*session.StudySession, error) {
	args := m.Called(ctx, course, slot, inviterID, inviteeIDs)
	if sess, ok := args.Get(0).(*session.StudySession); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Get(ctx context.Context, id string) (*session.StudySession, error) {
	args := m.Called(ctx, id)
	if sess, ok := args.Get(0).(*session.StudySession); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) List(ctx context.Context) ([]*session.StudySession, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]*session.StudySession); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
