package models

import "time"

// BookingStatus is the closed set of booking states. Completed and Cancelled
// are terminal.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition out of s is allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking represents a reserved session between a student and a tutor.
// StartTime/EndTime are never mutated in place; a changed slot requires
// delete + recreate.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	StudentID string        `bson:"student_id" json:"student_id"`
	TutorID   string        `bson:"tutor_id" json:"tutor_id"`
	StartTime time.Time     `bson:"start_time" json:"start_time"`
	EndTime   time.Time     `bson:"end_time" json:"end_time"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// BookingDetail is a booking enriched with student and tutor display fields.
type BookingDetail struct {
	Booking `bson:",inline"`
	Student PublicUser   `json:"student"`
	Tutor   TutorProfile `json:"tutor"`
	// TutorUser is the account behind the tutor profile.
	TutorUser PublicUser `json:"tutor_user"`
}

// BookingInput is the creation payload accepted from students.
type BookingInput struct {
	TutorID   string    `json:"tutor_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
