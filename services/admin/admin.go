package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/booking"
	categoryRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/category"
	reviewRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/review"
	tutorRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/tutor"
	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUserNotFound signals that the target account does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidRole signals an unknown role value.
	ErrInvalidRole = errors.New("Invalid role. Must be STUDENT, TUTOR, or ADMIN")
	// ErrInvalidStatus signals an unknown account status value.
	ErrInvalidStatus = errors.New("Invalid status. Must be ACTIVE or BANNED")
)

const recentBookingsLimit = 5

// AdminService exposes the dashboard and user management operations.
type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUserRole changes a user's role. Flipping to or from the tutor
	// role creates or removes the tutor profile in the same transaction.
	UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error)
	UpdateUserBanStatus(ctx context.Context, userID string, status models.UserStatus) (*models.User, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	UserRepo     userRepo.UserRepository
	TutorRepo    tutorRepo.TutorRepository
	BookingRepo  bookingRepo.BookingRepository
	CategoryRepo categoryRepo.CategoryRepository
	ReviewRepo   reviewRepo.ReviewRepository
}

// DashboardStats aggregates the platform totals and recent activity.
func (s *DefaultAdminService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.Totals.Users, err = s.UserRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if stats.Totals.Tutors, err = s.TutorRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count tutors: %w", err)
	}
	if stats.Totals.Bookings, err = s.BookingRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.Totals.Categories, err = s.CategoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if stats.Totals.Reviews, err = s.ReviewRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	if stats.UsersByRole, err = s.UserRepo.CountByRole(ctx); err != nil {
		return nil, err
	}
	if stats.BookingsByStatus, err = s.BookingRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.RecentBookings, err = s.BookingRepo.ListRecent(ctx, recentBookingsLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

// ListUsers returns all accounts, newest first.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.UserRepo.GetAll(ctx)
}

// UpdateUserRole changes a user's role. Demoting a tutor removes their
// profile; promoting to tutor creates a default profile the user is expected
// to fill in. Either direction is one atomic unit with the role write.
func (s *DefaultAdminService) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == role {
		return user, nil
	}

	profile, err := s.TutorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch {
	case user.Role == models.RoleTutor && role != models.RoleTutor && profile != nil:
		if err := s.TutorRepo.DeleteWithRoleFlip(ctx, userID, role); err != nil {
			return nil, err
		}
	case role == models.RoleTutor && profile == nil:
		now := time.Now()
		defaultProfile := &models.TutorProfile{
			ID:         uuid.New().String(),
			UserID:     userID,
			Bio:        "Experienced tutor ready to help students succeed",
			Subjects:   []string{"General"},
			HourlyRate: 25.0,
			Experience: 1,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.TutorRepo.CreateWithRoleFlip(ctx, defaultProfile); err != nil {
			return nil, err
		}
	default:
		user.Role = role
		if err := s.UserRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	utils.GetLogger().Info("user role updated",
		zap.String("userID", userID), zap.String("role", string(role)))

	return s.UserRepo.GetByID(ctx, userID)
}

// UpdateUserBanStatus bans or unbans an account.
func (s *DefaultAdminService) UpdateUserBanStatus(ctx context.Context, userID string, status models.UserStatus) (*models.User, error) {
	if status != models.UserActive && status != models.UserBanned {
		return nil, ErrInvalidStatus
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.UserRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, err
	}
	user.Status = status

	utils.GetLogger().Info("user ban status updated",
		zap.String("userID", userID), zap.String("status", string(status)))
	return user, nil
}
