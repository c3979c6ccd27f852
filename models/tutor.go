package models

import "time"

// TutorProfile is a tutor's bookable-service record, distinct from the
// underlying user account. Availability is a free-text schedule description
// (e.g. "Mon-Thu, 9am-5pm"); it is matched heuristically, never parsed.
type TutorProfile struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Bio          string    `bson:"bio" json:"bio"`
	Subjects     []string  `bson:"subjects" json:"subjects"`
	HourlyRate   float64   `bson:"hourly_rate" json:"hourly_rate"`
	Experience   int       `bson:"experience" json:"experience"`
	Availability string    `bson:"availability,omitempty" json:"availability,omitempty"`
	CategoryIDs  []string  `bson:"category_ids,omitempty" json:"category_ids,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// TutorDetail is a tutor profile enriched with its user and review summary.
type TutorDetail struct {
	TutorProfile  `bson:",inline"`
	User          PublicUser `json:"user"`
	Categories    []Category `json:"categories,omitempty"`
	AverageRating float64    `json:"average_rating,omitempty"`
	ReviewCount   int        `json:"review_count,omitempty"`
}

// TutorFilter narrows tutor listings. Zero values mean "no restriction".
type TutorFilter struct {
	Subjects      []string
	MinRate       float64
	MaxRate       float64
	MinExperience int
	CategoryID    string
	MinRating     float64
}
