package review

import (
	"context"
	"errors"
	"time"

	reviewRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/review"
	tutorRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/tutor"
	userRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/user"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound signals that the review does not exist.
	ErrReviewNotFound = errors.New("Review not found")
	// ErrTutorNotFound signals that the reviewed tutor does not exist.
	ErrTutorNotFound = errors.New("Tutor not found")
	// ErrForbidden signals that the actor may not modify this review.
	ErrForbidden = errors.New("You don't have permission to modify this review")
	// ErrInvalidRating signals a rating outside 1..5.
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
	// ErrDuplicate signals that the student already reviewed this tutor.
	ErrDuplicate = errors.New("You have already reviewed this tutor")
)

// ReviewInput is the review creation payload.
type ReviewInput struct {
	TutorID string `json:"tutor_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewService manages tutor reviews.
type ReviewService interface {
	// List applies role scoping: admins see all, students their own, tutors
	// the reviews their profile received.
	List(ctx context.Context, actor models.Actor) ([]models.ReviewDetail, error)
	ListByTutor(ctx context.Context, tutorID string) ([]models.ReviewDetail, error)
	Create(ctx context.Context, studentID string, input ReviewInput) (*models.ReviewDetail, error)
	Update(ctx context.Context, reviewID string, actor models.Actor, rating int, comment string) (*models.ReviewDetail, error)
	Delete(ctx context.Context, reviewID string, actor models.Actor) error
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo      reviewRepo.ReviewRepository
	TutorRepo tutorRepo.TutorRepository
	UserRepo  userRepo.UserRepository
}

func (s *DefaultReviewService) List(ctx context.Context, actor models.Actor) ([]models.ReviewDetail, error) {
	var (
		reviews []models.Review
		err     error
	)

	switch actor.Role {
	case models.RoleAdmin:
		reviews, err = s.Repo.GetAll(ctx)
	case models.RoleTutor:
		profile, perr := s.TutorRepo.GetByUserID(ctx, actor.ID)
		if perr != nil {
			return nil, perr
		}
		if profile == nil {
			return []models.ReviewDetail{}, nil
		}
		reviews, err = s.Repo.ListByTutor(ctx, profile.ID)
	default:
		reviews, err = s.Repo.ListByStudent(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, reviews)
}

func (s *DefaultReviewService) ListByTutor(ctx context.Context, tutorID string) ([]models.ReviewDetail, error) {
	reviews, err := s.Repo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, reviews)
}

func (s *DefaultReviewService) Create(ctx context.Context, studentID string, input ReviewInput) (*models.ReviewDetail, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	tutor, err := s.TutorRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, ErrTutorNotFound
	}

	existing, err := s.Repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	for _, rv := range existing {
		if rv.TutorID == input.TutorID {
			return nil, ErrDuplicate
		}
	}

	now := time.Now()
	review := &models.Review{
		ID:        uuid.New().String(),
		StudentID: studentID,
		TutorID:   input.TutorID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return s.enrich(ctx, review)
}

func (s *DefaultReviewService) Update(ctx context.Context, reviewID string, actor models.Actor, rating int, comment string) (*models.ReviewDetail, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if actor.Role != models.RoleAdmin && review.StudentID != actor.ID {
		return nil, ErrForbidden
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.Repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.enrich(ctx, review)
}

func (s *DefaultReviewService) Delete(ctx context.Context, reviewID string, actor models.Actor) error {
	review, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if actor.Role != models.RoleAdmin && review.StudentID != actor.ID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, reviewID)
}

func (s *DefaultReviewService) enrich(ctx context.Context, review *models.Review) (*models.ReviewDetail, error) {
	details, err := s.enrichAll(ctx, []models.Review{*review})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *DefaultReviewService) enrichAll(ctx context.Context, reviews []models.Review) ([]models.ReviewDetail, error) {
	details := make([]models.ReviewDetail, 0, len(reviews))
	for _, rv := range reviews {
		detail := models.ReviewDetail{Review: rv}

		student, err := s.UserRepo.GetByID(ctx, rv.StudentID)
		if err != nil {
			return nil, err
		}
		if student != nil {
			detail.Student = student.Public()
		}

		tutor, err := s.TutorRepo.GetByID(ctx, rv.TutorID)
		if err != nil {
			return nil, err
		}
		if tutor != nil {
			tutorUser, err := s.UserRepo.GetByID(ctx, tutor.UserID)
			if err != nil {
				return nil, err
			}
			if tutorUser != nil {
				detail.Tutor = tutorUser.Public()
			}
		}

		details = append(details, detail)
	}
	return details, nil
}
