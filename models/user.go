package models

import "time"

// Role is the closed set of platform roles.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the account standing of a user.
type UserStatus string

const (
	UserActive UserStatus = "ACTIVE"
	UserBanned UserStatus = "BANNED"
)

// User represents a platform account. Students, tutors and admins all share
// this record; a tutor additionally owns a TutorProfile.
type User struct {
	ID            string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Email         string     `bson:"email" json:"email"`
	EmailVerified bool       `bson:"email_verified" json:"email_verified"`
	PasswordHash  string     `bson:"password_hash" json:"-"`
	Image         string     `bson:"image,omitempty" json:"image,omitempty"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Role          Role       `bson:"role" json:"role"`
	Status        UserStatus `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// PublicUser is the projection of a user embedded in booking and review
// responses.
type PublicUser struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Public returns the embeddable projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Image: u.Image}
}

// Actor is the authenticated identity performing a request, resolved once by
// the auth middleware and treated as immutable afterwards.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
