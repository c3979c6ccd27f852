package booking

import (
	"context"
	"time"

	bookingRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/booking"
	tutorRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/tutor"
	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"
)

// BookingService defines the booking engine's external operations.
type BookingService interface {
	Create(ctx context.Context, studentID string, input models.BookingInput) (*models.BookingDetail, error)
	Get(ctx context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error)
	List(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error)
	ListByTutor(ctx context.Context, tutorID string) ([]models.BookingDetail, error)
	ChangeStatus(ctx context.Context, bookingID string, actor models.Actor, target models.BookingStatus) (*models.BookingDetail, error)
	Delete(ctx context.Context, bookingID string, actor models.Actor) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	TutorRepo tutorRepo.TutorRepository
	UserRepo  userRepo.UserRepository
	Metrics   *utils.Metrics
	// Clock overrides time.Now in tests; nil means the real clock.
	Clock func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
