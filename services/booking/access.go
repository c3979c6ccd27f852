package booking

import "github.com/blue9kamrul/SkillBridge-backend/models"

// CanView reports whether the actor may read the booking: admins see
// everything, a tutor sees bookings against their own profile, a student
// sees their own. tutorProfile is the acting tutor's profile (nil when the
// actor has none).
//
// These read-side rules are deliberately independent from the write-side
// rules in lifecycle.go: a tutor can list their bookings but must never be
// allowed to delete one.
func CanView(b *models.Booking, actor models.Actor, tutorProfile *models.TutorProfile) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}
	if actor.Role == models.RoleTutor && tutorProfile != nil && b.TutorID == tutorProfile.ID {
		return true
	}
	return b.StudentID == actor.ID
}
