package tutorRepo

import (
	"context"

	"github.com/blue9kamrul/SkillBridge-backend/models"
)

// TutorRepository defines methods for tutor profile data access.
// Lookups return (nil, nil) when the profile does not exist.
type TutorRepository interface {
	// GetByID retrieves a tutor profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.TutorProfile, error)
	// GetByUserID retrieves the tutor profile owned by the given user.
	GetByUserID(ctx context.Context, userID string) (*models.TutorProfile, error)
	// GetAll retrieves all tutor profiles.
	GetAll(ctx context.Context) ([]models.TutorProfile, error)
	// CreateWithRoleFlip inserts the profile and promotes the owning user to
	// the tutor role as a single all-or-nothing unit.
	CreateWithRoleFlip(ctx context.Context, profile *models.TutorProfile) error
	// DeleteWithRoleFlip removes the user's profile and demotes the user to
	// the given role as a single all-or-nothing unit.
	DeleteWithRoleFlip(ctx context.Context, userID string, role models.Role) error
	// Update modifies an existing tutor profile record.
	Update(ctx context.Context, profile *models.TutorProfile) error
	// Delete removes a tutor profile record by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the total number of tutor profiles.
	Count(ctx context.Context) (int64, error)
}
