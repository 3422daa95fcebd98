package account

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence interface for users. Username and
// email uniqueness are enforced at the store boundary; violations surface as
// field-scoped validation errors.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
