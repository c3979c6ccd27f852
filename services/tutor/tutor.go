package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blue9kamrul/SkillBridge-backend/models"
	"github.com/blue9kamrul/SkillBridge-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// List returns tutor profiles matching the filter, newest first. Rate,
// experience and rating filters are applied after enrichment since ratings
// are derived from reviews.
func (s *DefaultTutorService) List(ctx context.Context, filter models.TutorFilter) ([]models.TutorDetail, error) {
	profiles, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.TutorDetail, 0, len(profiles))
	for _, p := range profiles {
		if len(filter.Subjects) > 0 && !hasAnySubject(p.Subjects, filter.Subjects) {
			continue
		}
		if filter.CategoryID != "" && !contains(p.CategoryIDs, filter.CategoryID) {
			continue
		}
		if filter.MinRate > 0 && p.HourlyRate < filter.MinRate {
			continue
		}
		if filter.MaxRate > 0 && p.HourlyRate > filter.MaxRate {
			continue
		}
		if filter.MinExperience > 0 && p.Experience < filter.MinExperience {
			continue
		}

		detail, err := s.enrich(ctx, p)
		if err != nil {
			return nil, err
		}
		if filter.MinRating > 0 && detail.ReviewCount > 0 && detail.AverageRating < filter.MinRating {
			continue
		}
		details = append(details, *detail)
	}
	return details, nil
}

// featuredCacheTTL bounds how stale the featured listing may get after a new
// review or a ban.
const featuredCacheTTL = 5 * time.Minute

// Featured returns the top-rated tutors with at least one review, owned by
// active accounts, sorted by average rating then review count. The result is
// cached briefly since it backs the landing page.
func (s *DefaultTutorService) Featured(ctx context.Context, limit int) ([]models.TutorDetail, error) {
	if limit <= 0 {
		limit = 6
	}

	cacheKey := fmt.Sprintf("tutors:featured:%d", limit)
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.TutorDetail
			if jerr := json.Unmarshal([]byte(raw), &cached); jerr == nil {
				return cached, nil
			}
		}
	}

	profiles, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var featured []models.TutorDetail
	for _, p := range profiles {
		detail, err := s.enrich(ctx, p)
		if err != nil {
			return nil, err
		}
		if detail.ReviewCount == 0 {
			continue
		}
		user, err := s.UserRepo.GetByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil || user.Status != models.UserActive {
			continue
		}
		featured = append(featured, *detail)
	}

	sort.SliceStable(featured, func(i, j int) bool {
		if featured[i].AverageRating != featured[j].AverageRating {
			return featured[i].AverageRating > featured[j].AverageRating
		}
		return featured[i].ReviewCount > featured[j].ReviewCount
	})

	if len(featured) > limit {
		featured = featured[:limit]
	}

	if s.Cache != nil {
		if raw, jerr := json.Marshal(featured); jerr == nil {
			if cerr := s.Cache.Set(ctx, cacheKey, raw, featuredCacheTTL).Err(); cerr != nil {
				utils.GetLogger().Warn("failed to cache featured tutors", zap.Error(cerr))
			}
		}
	}
	return featured, nil
}

// Available returns the tutors that have an availability description set.
func (s *DefaultTutorService) Available(ctx context.Context) ([]models.TutorDetail, error) {
	profiles, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]models.TutorDetail, 0, len(profiles))
	for _, p := range profiles {
		if strings.TrimSpace(p.Availability) == "" {
			continue
		}
		detail, err := s.enrich(ctx, p)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// GetByID retrieves a single tutor profile with its user and review summary.
func (s *DefaultTutorService) GetByID(ctx context.Context, id string) (*models.TutorDetail, error) {
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.enrich(ctx, *profile)
}

// GetByUserID retrieves the profile owned by the given user.
func (s *DefaultTutorService) GetByUserID(ctx context.Context, userID string) (*models.TutorDetail, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.enrich(ctx, *profile)
}

// GetAvailability returns a tutor's raw availability description.
func (s *DefaultTutorService) GetAvailability(ctx context.Context, tutorID string) (string, error) {
	profile, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", ErrProfileNotFound
	}
	return profile.Availability, nil
}

// Create inserts a tutor profile for the user and promotes the user to the
// tutor role. The two writes are a single all-or-nothing unit.
func (s *DefaultTutorService) Create(ctx context.Context, userID string, input TutorInput) (*models.TutorDetail, error) {
	existing, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyTutor
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.checkCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &models.TutorProfile{
		ID:           uuid.New().String(),
		UserID:       userID,
		Bio:          input.Bio,
		Subjects:     input.Subjects,
		HourlyRate:   input.HourlyRate,
		Experience:   input.Experience,
		Availability: input.Availability,
		CategoryIDs:  input.CategoryIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.CreateWithRoleFlip(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create tutor profile: %w", err)
	}

	utils.GetLogger().Info("tutor profile created",
		zap.String("tutorID", profile.ID), zap.String("userID", userID))

	return s.enrich(ctx, *profile)
}

// UpdateByUserID applies partial updates to the user's own profile.
func (s *DefaultTutorService) UpdateByUserID(ctx context.Context, userID string, update TutorUpdate) (*models.TutorDetail, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Subjects != nil {
		profile.Subjects = *update.Subjects
	}
	if update.HourlyRate != nil {
		profile.HourlyRate = *update.HourlyRate
	}
	if update.Experience != nil {
		profile.Experience = *update.Experience
	}
	if update.Availability != nil {
		profile.Availability = *update.Availability
	}
	if update.CategoryIDs != nil {
		if err := s.checkCategories(ctx, *update.CategoryIDs); err != nil {
			return nil, err
		}
		profile.CategoryIDs = *update.CategoryIDs
	}

	if err := s.Repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return s.enrich(ctx, *profile)
}

// UpdateAvailability replaces only the availability description.
func (s *DefaultTutorService) UpdateAvailability(ctx context.Context, userID, availability string) (*models.TutorDetail, error) {
	return s.UpdateByUserID(ctx, userID, TutorUpdate{Availability: &availability})
}

// Delete removes a tutor profile. Only the owning tutor or an admin may
// delete it. The user account and its role are untouched; demotion is an
// admin role-change concern.
func (s *DefaultTutorService) Delete(ctx context.Context, tutorID string, actor models.Actor) error {
	profile, err := s.Repo.GetByID(ctx, tutorID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	if actor.Role != models.RoleAdmin && profile.UserID != actor.ID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, tutorID)
}

func (s *DefaultTutorService) checkCategories(ctx context.Context, ids []string) error {
	for _, id := range ids {
		category, err := s.CategoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}
	return nil
}

// enrich attaches the owning user, resolved categories and review summary.
func (s *DefaultTutorService) enrich(ctx context.Context, profile models.TutorProfile) (*models.TutorDetail, error) {
	detail := &models.TutorDetail{TutorProfile: profile}

	user, err := s.UserRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		detail.User = user.Public()
	}

	for _, id := range profile.CategoryIDs {
		category, err := s.CategoryRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if category != nil {
			detail.Categories = append(detail.Categories, *category)
		}
	}

	reviews, err := s.ReviewRepo.ListByTutor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	detail.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		detail.AverageRating = float64(sum) / float64(len(reviews))
	}

	return detail, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func hasAnySubject(subjects, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range subjects {
			if strings.EqualFold(s, w) {
				return true
			}
		}
	}
	return false
}
