package csvstore

import (
	"context"
	"fmt"

	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/akwright/studybuddy/internal/repository"
)

// StudentRepository implements student.Repository on a Store
type StudentRepository struct {
	store *Store
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// Create registers a student under a fresh id. Duplicate names or emails are
// permitted.
func (r *StudentRepository) Create(_ context.Context, name, email string) (*student.Student, error) {
	id := fmt.Sprintf("s%d", r.store.studentSeq)
	r.store.studentSeq++

	stu := &student.Student{ID: id, Name: name, Email: email}
	r.store.students[id] = stu
	r.store.studentOrder = append(r.store.studentOrder, id)
	return stu, nil
}

// Get retrieves a student by id
func (r *StudentRepository) Get(_ context.Context, id string) (*student.Student, error) {
	stu, ok := r.store.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return stu, nil
}

// List returns all students in registration order
func (r *StudentRepository) List(_ context.Context) ([]*student.Student, error) {
	all := make([]*student.Student, 0, len(r.store.studentOrder))
	for _, id := range r.store.studentOrder {
		all = append(all, r.store.students[id])
	}
	return all, nil
}
