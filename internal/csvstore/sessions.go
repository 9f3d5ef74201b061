package csvstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/akwright/studybuddy/internal/domain/schedule"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/repository"
)

// SessionRepository implements session.Repository on a Store
type SessionRepository struct {
	store *Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Create registers a pending session under a fresh id. Participants are the
// inviter plus the invitees, deduplicated and sorted.
func (r *SessionRepository) Create(_ context.Context, course string, slot schedule.Slot, inviterID string, inviteeIDs []string) (*session.StudySession, error) {
	id := fmt.Sprintf("S%d", r.store.sessionSeq)
	r.store.sessionSeq++

	participants := append([]string{inviterID}, inviteeIDs...)
	slices.Sort(participants)
	participants = slices.Compact(participants)

	sess := &session.StudySession{
		ID:           id,
		CourseCode:   course,
		Slot:         slot,
		Participants: participants,
		InviterID:    inviterID,
		Status:       session.StatusPending,
	}
	r.store.sessions[id] = sess
	r.store.sessionOrder = append(r.store.sessionOrder, id)
	return sess, nil
}

// Get retrieves a session by id
func (r *SessionRepository) Get(_ context.Context, id string) (*session.StudySession, error) {
	sess, ok := r.store.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return sess, nil
}

// List returns all sessions in creation order
func (r *SessionRepository) List(_ context.Context) ([]*session.StudySession, error) {
	all := make([]*session.StudySession, 0, len(r.store.sessionOrder))
	for _, id := range r.store.sessionOrder {
		all = append(all, r.store.sessions[id])
	}
	return all, nil
}
