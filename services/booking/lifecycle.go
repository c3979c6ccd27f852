package booking

import (
	"fmt"

	"github.com/blue9kamrul/SkillBridge-backend/models"
)

// CheckTransition validates a status-change request against the lifecycle
// table. tutorProfile is the acting tutor's own profile (nil when the actor
// has none); it is only consulted for the completed transition.
//
//	completed: the tutor owning the booking's profile, from confirmed only
//	cancelled: the owning student or an admin, from confirmed only
//	anything else (including confirmed): rejected
func CheckTransition(b *models.Booking, actor models.Actor, tutorProfile *models.TutorProfile, target models.BookingStatus) error {
	switch target {
	case models.BookingCompleted:
		if actor.Role != models.RoleTutor {
			return NewInvalidTransitionError("Only tutors can mark sessions as completed")
		}
		if tutorProfile == nil || b.TutorID != tutorProfile.ID {
			return NewInvalidTransitionError("You can only mark your own sessions as completed")
		}
		if b.Status != models.BookingConfirmed {
			return NewInvalidTransitionError("Only confirmed bookings can be marked as completed")
		}
		return nil

	case models.BookingCancelled:
		if actor.Role == models.RoleTutor {
			return NewInvalidTransitionError("Only students or admins can cancel bookings")
		}
		if actor.Role != models.RoleAdmin && b.StudentID != actor.ID {
			return NewInvalidTransitionError("You can only cancel your own bookings")
		}
		if b.Status != models.BookingConfirmed {
			return NewInvalidTransitionError("Only confirmed bookings can be cancelled")
		}
		return nil

	case models.BookingConfirmed:
		// Bookings are confirmed at creation; there is no approval step to
		// re-enter this state.
		return NewInvalidTransitionError("Bookings are confirmed at creation and cannot be set to confirmed")

	default:
		return NewValidationError(fmt.Sprintf(
			"Invalid status %q. Must be confirmed, cancelled, or completed", target))
	}
}

// CheckDelete validates a delete request. Deletion is permitted only to the
// owning student or an admin, and only while the booking is confirmed:
// cancelled and completed bookings are historical records and are retained.
func CheckDelete(b *models.Booking, actor models.Actor) error {
	if actor.Role != models.RoleAdmin && b.StudentID != actor.ID {
		return NewForbiddenError("You don't have permission to delete this booking")
	}
	if b.Status != models.BookingConfirmed {
		return NewInvalidTransitionError("Only confirmed bookings can be deleted")
	}
	return nil
}
