package user

import "context"

type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by email; returns nil, nil when absent
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// ExistsByEmail checks whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// DetachFromOrg clears the org membership of every user in the org
	DetachFromOrg(ctx context.Context, orgID uint) error
}
