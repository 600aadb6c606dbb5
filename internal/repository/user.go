package repository

import (
	"context"

	"servidoc/internal/model"
)

// UserRepository defines data access for user accounts using SQL queries only.
// No business logic here — strictly persistence operations.
type UserRepository interface {
	// Create inserts a new user row. It returns ErrDuplicateEmail when the
	// email unique constraint is violated.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
