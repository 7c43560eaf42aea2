package domain

import (
	"context"
	"time"
)

// User is a registration record kept in the user directory.
// ID is assigned by storage on insert and never changes afterwards.
type User struct {
	ID        int64
	Name      string
	Age       int
	Hobby     string
	CreatedAt time.Time
}

// UserRepository defines persistence operations for users.
// Users are never updated in place.
type UserRepository interface {
	// List returns every user, most recently created first.
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	// Delete removes the user with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
