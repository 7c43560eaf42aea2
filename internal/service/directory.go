package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotpro/tutorial-web/internal/domain"
)

// UserDirectory manages the registered users. Every mutation is a single
// transaction in the repository; callers re-read the listing afterwards
// instead of echoing the written row back.
type UserDirectory struct {
	users domain.UserRepository
}

// NewUserDirectory creates a new UserDirectory.
func NewUserDirectory(users domain.UserRepository) *UserDirectory {
	return &UserDirectory{users: users}
}

// List returns every user, most recently registered first.
func (d *UserDirectory) List(ctx context.Context) ([]domain.User, error) {
	users, err := d.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create registers a new user and returns it with its storage-assigned ID.
func (d *UserDirectory) Create(ctx context.Context, name string, age int, hobby string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	hobby = strings.TrimSpace(hobby)
	if name == "" || hobby == "" {
		return nil, fmt.Errorf("%w: name and hobby are required", domain.ErrInvalidInput)
	}

	user := &domain.User{Name: name, Age: age, Hobby: hobby}
	if err := d.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// DeleteByID removes a user. It returns domain.ErrNotFound if no user has that ID.
func (d *UserDirectory) DeleteByID(ctx context.Context, id int64) error {
	if err := d.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
