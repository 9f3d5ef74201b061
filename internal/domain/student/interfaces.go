package student

import "context"

// Repository provides persistence for students.
type Repository interface {
	Create(ctx context.Context, name, email string) (*Student, error)
	Get(ctx context.Context, id string) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
}
