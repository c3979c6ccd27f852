package booking

import (
	"testing"

	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	b := &models.Booking{
		ID:        "bk-1",
		StudentID: "student-1",
		TutorID:   "tutor-1",
		Status:    models.BookingConfirmed,
	}
	ownProfile := &models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1"}
	otherProfile := &models.TutorProfile{ID: "tutor-2", UserID: "tutor-user-2"}

	tests := []struct {
		name    string
		actor   models.Actor
		profile *models.TutorProfile
		want    bool
	}{
		{"admin sees everything", models.Actor{ID: "admin-1", Role: models.RoleAdmin}, nil, true},
		{"owning student sees own booking", models.Actor{ID: "student-1", Role: models.RoleStudent}, nil, true},
		{"other student denied", models.Actor{ID: "student-2", Role: models.RoleStudent}, nil, false},
		{"owning tutor sees own session", models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}, ownProfile, true},
		{"other tutor denied", models.Actor{ID: "tutor-user-2", Role: models.RoleTutor}, otherProfile, false},
		{"tutor without profile denied", models.Actor{ID: "tutor-user-3", Role: models.RoleTutor}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(b, tt.actor, tt.profile))
		})
	}
}

func TestCanViewTutorWhoIsAlsoTheStudent(t *testing.T) {
	// A tutor booking a session as a student still sees their own booking.
	b := &models.Booking{StudentID: "tutor-user-1", TutorID: "tutor-2"}
	profile := &models.TutorProfile{ID: "tutor-1", UserID: "tutor-user-1"}
	actor := models.Actor{ID: "tutor-user-1", Role: models.RoleTutor}

	assert.True(t, CanView(b, actor, profile))
}
