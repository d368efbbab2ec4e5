package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create persists a new user. The email and username are unique:
	// conflicts surface as ErrEmailExists / ErrUsernameExists.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByLogin matches either the email or the username.
	GetByLogin(ctx context.Context, login string) (User, error)

	// Update persists all mutable profile columns, with the same
	// uniqueness mapping as Create.
	Update(ctx context.Context, u User) (User, error)

	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
