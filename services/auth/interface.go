package auth

import (
	"context"
	"errors"
	"time"

	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrInvalidCredentials signals a wrong email/password combination.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrEmailTaken signals that an account with this email already exists.
	ErrEmailTaken = errors.New("An account with this email already exists")
	// ErrBanned signals that the account is banned.
	ErrBanned = errors.New("This account has been banned")
	// ErrInvalidToken signals a missing, expired or revoked token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// tokenTTL bounds both the JWT expiry and the server-side session record.
const tokenTTL = 72 * time.Hour

// RegisterInput is the signup payload. New accounts start as students.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthService issues and revokes tokens and resolves a request to an actor.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	SignOut(ctx context.Context, token string) error
	// Resolve validates the token, checks the server-side session and the
	// account standing, and returns the immutable actor for this request.
	Resolve(ctx context.Context, token string) (*models.Actor, error)
	// EnsureAdmin seeds the configured admin account if no such user exists.
	EnsureAdmin(ctx context.Context) error
}

// DefaultAuthService implements AuthService backed by the user repository
// and the redis auth cache.
type DefaultAuthService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}
