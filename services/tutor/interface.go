package tutor

import (
	"context"
	"errors"

	categoryRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/category"
	reviewRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/review"
	tutorRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/tutor"
	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrProfileNotFound signals that the referenced tutor profile does not exist.
	ErrProfileNotFound = errors.New("Tutor profile not found")
	// ErrUserNotFound signals that the referenced user does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrAlreadyTutor signals that the user already has a tutor profile.
	ErrAlreadyTutor = errors.New("User already has a tutor profile")
	// ErrForbidden signals that the actor may not modify this tutor profile.
	ErrForbidden = errors.New("You don't have permission to modify this tutor profile")
	// ErrCategoryNotFound signals that a referenced category does not exist.
	ErrCategoryNotFound = errors.New("Category not found")
)

// TutorInput is the profile-creation payload.
type TutorInput struct {
	Bio          string   `json:"bio" binding:"required"`
	Subjects     []string `json:"subjects" binding:"required"`
	HourlyRate   float64  `json:"hourly_rate" binding:"required"`
	Experience   int      `json:"experience"`
	Availability string   `json:"availability"`
	CategoryIDs  []string `json:"category_ids"`
}

// TutorUpdate carries partial profile updates; nil fields are left unchanged.
type TutorUpdate struct {
	Bio          *string   `json:"bio"`
	Subjects     *[]string `json:"subjects"`
	HourlyRate   *float64  `json:"hourly_rate"`
	Experience   *int      `json:"experience"`
	Availability *string   `json:"availability"`
	CategoryIDs  *[]string `json:"category_ids"`
}

// TutorService defines tutor profile management and discovery.
type TutorService interface {
	List(ctx context.Context, filter models.TutorFilter) ([]models.TutorDetail, error)
	Featured(ctx context.Context, limit int) ([]models.TutorDetail, error)
	Available(ctx context.Context) ([]models.TutorDetail, error)
	GetByID(ctx context.Context, id string) (*models.TutorDetail, error)
	GetByUserID(ctx context.Context, userID string) (*models.TutorDetail, error)
	GetAvailability(ctx context.Context, tutorID string) (string, error)
	Create(ctx context.Context, userID string, input TutorInput) (*models.TutorDetail, error)
	UpdateByUserID(ctx context.Context, userID string, update TutorUpdate) (*models.TutorDetail, error)
	UpdateAvailability(ctx context.Context, userID, availability string) (*models.TutorDetail, error)
	Delete(ctx context.Context, tutorID string, actor models.Actor) error
}

// DefaultTutorService implements TutorService.
type DefaultTutorService struct {
	Repo         tutorRepo.TutorRepository
	UserRepo     userRepo.UserRepository
	ReviewRepo   reviewRepo.ReviewRepository
	CategoryRepo categoryRepo.CategoryRepository
	// Cache holds the featured listing for a short TTL; nil disables caching.
	Cache *redis.Client
}
