package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/config"
	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionKey is the redis key holding a live session for a token hash.
func sessionKey(tokenHash string) string {
	return "session:" + tokenHash
}

// Register creates a student account and signs it in.
func (s *DefaultAuthService) Register(ctx context.Context, input RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		Status:       models.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}

	utils.GetLogger().Info("user registered", zap.String("userID", user.ID))
	return user, token, nil
}

// SignIn verifies the credentials and issues a fresh token.
func (s *DefaultAuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Status == models.UserBanned {
		return nil, "", ErrBanned
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut revokes the token's server-side session.
func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	if err := s.Cache.Del(ctx, sessionKey(utils.HashToken(token))).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Resolve validates the token signature, requires a live server-side
// session, and returns the actor. Banned accounts are rejected here so no
// later check needs to consult account standing.
func (s *DefaultAuthService) Resolve(ctx context.Context, token string) (*models.Actor, error) {
	userID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	sessionUserID, err := s.Cache.Get(ctx, sessionKey(utils.HashToken(token))).Result()
	if err != nil || sessionUserID != userID {
		return nil, ErrInvalidToken
	}

	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if user.Status == models.UserBanned {
		return nil, ErrBanned
	}

	return &models.Actor{ID: user.ID, Role: user.Role}, nil
}

// EnsureAdmin seeds the configured admin account on startup.
func (s *DefaultAuthService) EnsureAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(config.AppConfig.AdminEmail))
	if email == "" || config.AppConfig.AdminPassword == "" {
		return nil
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now()
	admin := &models.User{
		ID:            uuid.New().String(),
		Name:          "Admin",
		Email:         email,
		EmailVerified: true,
		PasswordHash:  string(hash),
		Role:          models.RoleAdmin,
		Status:        models.UserActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return err
	}

	utils.GetLogger().Info("seed admin created", zap.String("email", email))
	return nil
}

// issueToken mints a JWT and records its hash as a live session.
func (s *DefaultAuthService) issueToken(ctx context.Context, user *models.User) (string, error) {
	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(utils.HashToken(token)), user.ID, tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}
