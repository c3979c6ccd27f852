package models

import "time"

// Review is a student's rating of a tutor. One review per (student, tutor)
// pair, enforced by a unique index.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"student_id" json:"student_id"`
	TutorID   string    `bson:"tutor_id" json:"tutor_id"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ReviewDetail is a review enriched with student and tutor display fields.
type ReviewDetail struct {
	Review  `bson:",inline"`
	Student PublicUser `json:"student"`
	Tutor   PublicUser `json:"tutor"`
}
