package userRepo

import (
	"context"

	"github.com/blue9kamrul/SkillBridge-backend/models"
)

// UserRepository defines methods for user data access.
// Lookups return (nil, nil) when the user does not exist.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs retrieves the users with the given IDs, keyed by ID.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	// GetAll retrieves all users ordered by creation time descending.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// UpdateStatus sets the account standing (active/banned).
	UpdateStatus(ctx context.Context, id string, status models.UserStatus) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
	// CountByRole returns user counts grouped by role.
	CountByRole(ctx context.Context) (map[models.Role]int64, error)
}
