package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/booking"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create reserves a slot for the student against the tutor. The invariants
// run in a fixed order, first failure wins: tutor exists, valid range,
// future start, no overlapping reservation, availability heuristic. On
// success the booking is persisted as confirmed (instant confirmation).
func (s *DefaultBookingService) Create(ctx context.Context, studentID string, input models.BookingInput) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	tutor, err := s.TutorRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}
	if tutor == nil {
		return nil, NewNotFoundError("Tutor not found")
	}

	r := TimeRange{Start: input.StartTime, End: input.EndTime}
	if !r.IsValid() {
		return nil, NewValidationError("End time must be after start time")
	}
	if !r.IsFuture(s.now()) {
		return nil, NewValidationError("Booking must be in the future")
	}

	if err := s.checkOverlap(ctx, tutor.ID, r); err != nil {
		s.recordConflict(err)
		return nil, err
	}

	if err := CheckAvailability(r, tutor.Availability); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &models.Booking{
		ID:        uuid.New().String(),
		StudentID: studentID,
		TutorID:   tutor.ID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    models.BookingConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.insertWithRetry(ctx, b, r); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("tutorID", b.TutorID),
		zap.String("studentID", b.StudentID))
	if s.Metrics != nil {
		s.Metrics.RecordBookingCreated()
	}

	return s.enrich(ctx, b)
}

// insertWithRetry commits the booking through the transactional repository.
// A storage-level race (another reservation committed after the pre-check)
// is the sole transient failure: the full overlap check is re-run once to
// surface the conflicting window, after which the race is reported as a
// ConflictError.
func (s *DefaultBookingService) insertWithRetry(ctx context.Context, b *models.Booking, r TimeRange) error {
	err := s.Repo.CreateIfFree(ctx, b)
	if err == nil {
		return nil
	}
	if !errors.Is(err, bookingRepo.ErrSlotTaken) {
		return fmt.Errorf("failed to persist booking: %w", err)
	}

	if cerr := s.checkOverlap(ctx, b.TutorID, r); cerr != nil {
		s.recordConflict(cerr)
		return cerr
	}

	err = s.Repo.CreateIfFree(ctx, b)
	if err == nil {
		return nil
	}
	if errors.Is(err, bookingRepo.ErrSlotTaken) {
		if s.Metrics != nil {
			s.Metrics.RecordBookingConflict()
		}
		return NewConflictError("This time slot was just taken. Please choose a different time slot.")
	}
	return fmt.Errorf("failed to persist booking: %w", err)
}

func (s *DefaultBookingService) recordConflict(err error) {
	var conflict *ConflictError
	if s.Metrics != nil && errors.As(err, &conflict) {
		s.Metrics.RecordBookingConflict()
	}
}

// Get loads a single booking and applies the read-side access rules:
// absence is NotFoundError, an existing booking the actor may not see is
// ForbiddenError.
func (s *DefaultBookingService) Get(ctx context.Context, bookingID string, actor models.Actor) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("Booking not found")
	}

	profile, err := s.actorTutorProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !CanView(b, actor, profile) {
		return nil, NewForbiddenError("You don't have permission to view this booking")
	}

	return s.enrich(ctx, b)
}

// List returns the bookings the actor may see, ordered by start time
// descending: admins see all, tutors see their profile's bookings (a tutor
// without a profile is a NotFoundError, not an empty list), students see
// their own.
func (s *DefaultBookingService) List(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error) {
	var (
		bookings []models.Booking
		err      error
	)

	switch actor.Role {
	case models.RoleAdmin:
		bookings, err = s.Repo.ListAll(ctx)
	case models.RoleTutor:
		var profile *models.TutorProfile
		profile, err = s.TutorRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
		}
		if profile == nil {
			return nil, NewNotFoundError("Tutor profile not found")
		}
		bookings, err = s.Repo.ListByTutor(ctx, profile.ID)
	default:
		bookings, err = s.Repo.ListByStudent(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return s.enrichAll(ctx, bookings)
}

// ListByTutor returns a tutor profile's bookings for its public page.
func (s *DefaultBookingService) ListByTutor(ctx context.Context, tutorID string) ([]models.BookingDetail, error) {
	tutor, err := s.TutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}
	if tutor == nil {
		return nil, NewNotFoundError("Tutor not found")
	}

	bookings, err := s.Repo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return s.enrichAll(ctx, bookings)
}

// ChangeStatus applies the lifecycle table to a status-change request and
// persists the new status.
func (s *DefaultBookingService) ChangeStatus(ctx context.Context, bookingID string, actor models.Actor, target models.BookingStatus) (*models.BookingDetail, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("Booking not found")
	}

	profile, err := s.actorTutorProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(b, actor, profile, target); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateStatus(ctx, b.ID, target); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = target
	b.UpdatedAt = time.Now()

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", b.ID),
		zap.String("status", string(target)),
		zap.String("actorID", actor.ID))
	if s.Metrics != nil {
		s.Metrics.RecordStatusTransition(string(target))
	}

	return s.enrich(ctx, b)
}

// Delete removes a booking. Only the owning student or an admin may delete,
// and only while the booking is confirmed.
func (s *DefaultBookingService) Delete(ctx context.Context, bookingID string, actor models.Actor) error {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return NewNotFoundError("Booking not found")
	}

	if err := CheckDelete(b, actor); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	utils.GetLogger().Info("booking deleted",
		zap.String("bookingID", b.ID),
		zap.String("actorID", actor.ID))
	if s.Metrics != nil {
		s.Metrics.RecordBookingDeleted()
	}
	return nil
}

// actorTutorProfile resolves the acting tutor's own profile. Non-tutor
// actors have none; a missing profile is not an error here, the caller
// decides what absence means.
func (s *DefaultBookingService) actorTutorProfile(ctx context.Context, actor models.Actor) (*models.TutorProfile, error) {
	if actor.Role != models.RoleTutor {
		return nil, nil
	}
	profile, err := s.TutorRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
	}
	return profile, nil
}

// enrich attaches the student and tutor display fields to a booking.
func (s *DefaultBookingService) enrich(ctx context.Context, b *models.Booking) (*models.BookingDetail, error) {
	details, err := s.enrichAll(ctx, []models.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// enrichAll attaches display fields to a batch of bookings with one tutor
// lookup per distinct profile and one user fetch overall.
func (s *DefaultBookingService) enrichAll(ctx context.Context, bookings []models.Booking) ([]models.BookingDetail, error) {
	details := make([]models.BookingDetail, 0, len(bookings))
	if len(bookings) == 0 {
		return details, nil
	}

	tutors := make(map[string]models.TutorProfile)
	userIDs := make([]string, 0, len(bookings)*2)
	for _, b := range bookings {
		userIDs = append(userIDs, b.StudentID)
		if _, ok := tutors[b.TutorID]; ok {
			continue
		}
		tutor, err := s.TutorRepo.GetByID(ctx, b.TutorID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tutor profile: %w", err)
		}
		if tutor != nil {
			tutors[b.TutorID] = *tutor
			userIDs = append(userIDs, tutor.UserID)
		}
	}

	users, err := s.UserRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking participants: %w", err)
	}

	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}
		if student, ok := users[b.StudentID]; ok {
			detail.Student = student.Public()
		}
		if tutor, ok := tutors[b.TutorID]; ok {
			detail.Tutor = tutor
			if tutorUser, ok := users[tutor.UserID]; ok {
				detail.TutorUser = tutorUser.Public()
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
