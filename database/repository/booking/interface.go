package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/models"
)

// ErrSlotTaken is returned by CreateIfFree when an overlapping reservation
// committed between the caller's pre-check and the insert.
var ErrSlotTaken = errors.New("tutor already has an overlapping booking")

// BookingRepository defines methods for booking data access.
// Lookups return (nil, nil) when the booking does not exist.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListAll retrieves all bookings ordered by start time descending.
	ListAll(ctx context.Context) ([]models.Booking, error)
	// ListByStudent retrieves a student's bookings ordered by start time descending.
	ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error)
	// ListByTutor retrieves a tutor profile's bookings ordered by start time descending.
	ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error)
	// FindOverlapping returns the tutor's firm (confirmed) bookings whose
	// [start, end) range overlaps the candidate range, in insertion order.
	FindOverlapping(ctx context.Context, tutorID string, start, end time.Time) ([]models.Booking, error)
	// CreateIfFree re-checks for overlapping firm bookings and inserts the
	// booking inside a single transaction. Returns ErrSlotTaken if a
	// conflicting reservation exists at commit time.
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	// UpdateStatus sets the booking status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
	// Delete removes a booking record by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the total number of bookings.
	Count(ctx context.Context) (int64, error)
	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
	// ListRecent returns the most recently created bookings.
	ListRecent(ctx context.Context, limit int64) ([]models.Booking, error)
}
