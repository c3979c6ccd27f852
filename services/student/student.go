package student

import (
	"context"
	"errors"

	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"
)

// ErrUserNotFound signals that the account does not exist.
var ErrUserNotFound = errors.New("User not found")

// ProfileUpdate carries partial account updates; nil fields are left unchanged.
type ProfileUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Image *string `json:"image"`
}

// StudentService exposes a user's own account profile.
type StudentService interface {
	GetMyProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateMyProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error)
}

// DefaultStudentService implements StudentService.
type DefaultStudentService struct {
	Repo userRepo.UserRepository
}

// GetMyProfile returns the authenticated user's account record.
func (s *DefaultStudentService) GetMyProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateMyProfile applies partial updates to the authenticated user's account.
func (s *DefaultStudentService) UpdateMyProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if update.Name != nil && *update.Name != "" {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Image != nil {
		user.Image = *update.Image
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
