package booking

import (
	"testing"

	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:        "bk-1",
		StudentID: "student-1",
		TutorID:   "tutor-1",
		Status:    models.BookingConfirmed,
	}
}

func TestCheckTransitionCompleted(t *testing.T) {
	ownProfile := &models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1"}
	otherProfile := &models.TutorProfile{ID: "tutor-2", UserID: "tutor-user-2"}

	t.Run("owning tutor completes a confirmed booking", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}
		assert.NoError(t, CheckTransition(confirmedBooking(), actor, ownProfile, models.BookingCompleted))
	})

	t.Run("student cannot complete", func(t *testing.T) {
		actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
		err := CheckTransition(confirmedBooking(), actor, nil, models.BookingCompleted)
		require.Error(t, err)
		assert.Equal(t, "Only tutors can mark sessions as completed", err.Error())
	})

	t.Run("admin cannot complete", func(t *testing.T) {
		actor := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
		err := CheckTransition(confirmedBooking(), actor, nil, models.BookingCompleted)
		require.Error(t, err)
		assert.Equal(t, "Only tutors can mark sessions as completed", err.Error())
	})

	t.Run("another tutor cannot complete", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-2", Role: models.RoleTutor}
		err := CheckTransition(confirmedBooking(), actor, otherProfile, models.BookingCompleted)
		require.Error(t, err)
		assert.Equal(t, "You can only mark your own sessions as completed", err.Error())
	})

	t.Run("tutor without profile cannot complete", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-3", Role: models.RoleTutor}
		err := CheckTransition(confirmedBooking(), actor, nil, models.BookingCompleted)
		require.Error(t, err)
		assert.Equal(t, "You can only mark your own sessions as completed", err.Error())
	})

	t.Run("only confirmed bookings can be completed", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}
		for _, status := range []models.BookingStatus{models.BookingCancelled, models.BookingCompleted} {
			b := confirmedBooking()
			b.Status = status
			err := CheckTransition(b, actor, ownProfile, models.BookingCompleted)
			require.Error(t, err, "status %s", status)
			assert.Equal(t, "Only confirmed bookings can be marked as completed", err.Error())
		}
	})
}

func TestCheckTransitionCancelled(t *testing.T) {
	t.Run("owning student cancels", func(t *testing.T) {
		actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
		assert.NoError(t, CheckTransition(confirmedBooking(), actor, nil, models.BookingCancelled))
	})

	t.Run("admin cancels any booking", func(t *testing.T) {
		actor := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
		assert.NoError(t, CheckTransition(confirmedBooking(), actor, nil, models.BookingCancelled))
	})

	t.Run("tutor cannot cancel even their own session", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}
		profile := &models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1"}
		err := CheckTransition(confirmedBooking(), actor, profile, models.BookingCancelled)
		require.Error(t, err)
		assert.Equal(t, "Only students or admins can cancel bookings", err.Error())
	})

	t.Run("another student cannot cancel", func(t *testing.T) {
		actor := models.Actor{ID: "student-2", Role: models.RoleStudent}
		err := CheckTransition(confirmedBooking(), actor, nil, models.BookingCancelled)
		require.Error(t, err)
		assert.Equal(t, "You can only cancel your own bookings", err.Error())
	})

	t.Run("only confirmed bookings can be cancelled", func(t *testing.T) {
		actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
		for _, status := range []models.BookingStatus{models.BookingCancelled, models.BookingCompleted} {
			b := confirmedBooking()
			b.Status = status
			err := CheckTransition(b, actor, nil, models.BookingCancelled)
			require.Error(t, err, "status %s", status)
			assert.Equal(t, "Only confirmed bookings can be cancelled", err.Error())
		}
	})
}

func TestCheckTransitionTerminalStatesAreFinal(t *testing.T) {
	// No actor, of any role, can move a cancelled or completed booking
	// anywhere.
	actors := []models.Actor{
		{ID: "student-1", Role: models.RoleStudent},
		{ID: "tutor-user-1", Role: models.RoleTutor},
		{ID: "admin-1", Role: models.RoleAdmin},
	}
	profile := &models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1"}
	targets := []models.BookingStatus{models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted}

	for _, terminal := range []models.BookingStatus{models.BookingCancelled, models.BookingCompleted} {
		for _, actor := range actors {
			for _, target := range targets {
				b := confirmedBooking()
				b.Status = terminal
				err := CheckTransition(b, actor, profile, target)
				assert.Error(t, err, "from %s to %s as %s", terminal, target, actor.Role)
			}
		}
	}
}

func TestCheckTransitionRejectsConfirmedTarget(t *testing.T) {
	actor := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	err := CheckTransition(confirmedBooking(), actor, nil, models.BookingConfirmed)
	require.Error(t, err)

	var terr *InvalidTransitionError
	assert.ErrorAs(t, err, &terr)
}

func TestCheckTransitionRejectsUnknownStatus(t *testing.T) {
	actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
	err := CheckTransition(confirmedBooking(), actor, nil, models.BookingStatus("paused"))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "Must be confirmed, cancelled, or completed")
}

func TestCheckDelete(t *testing.T) {
	t.Run("owning student deletes a confirmed booking", func(t *testing.T) {
		actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
		assert.NoError(t, CheckDelete(confirmedBooking(), actor))
	})

	t.Run("admin deletes any confirmed booking", func(t *testing.T) {
		actor := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
		assert.NoError(t, CheckDelete(confirmedBooking(), actor))
	})

	t.Run("tutor cannot delete", func(t *testing.T) {
		actor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}
		err := CheckDelete(confirmedBooking(), actor)
		require.Error(t, err)

		var ferr *ForbiddenError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, "You don't have permission to delete this booking", err.Error())
	})

	t.Run("another student cannot delete", func(t *testing.T) {
		actor := models.Actor{ID: "student-2", Role: models.RoleStudent}
		err := CheckDelete(confirmedBooking(), actor)
		require.Error(t, err)

		var ferr *ForbiddenError
		assert.ErrorAs(t, err, &ferr)
	})

	t.Run("terminal bookings are retained", func(t *testing.T) {
		actor := models.Actor{ID: "student-1", Role: models.RoleStudent}
		for _, status := range []models.BookingStatus{models.BookingCancelled, models.BookingCompleted} {
			b := confirmedBooking()
			b.Status = status
			err := CheckDelete(b, actor)
			require.Error(t, err, "status %s", status)

			var terr *InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, "Only confirmed bookings can be deleted", err.Error())
		}
	})
}
