package category

import (
	"context"
	"errors"
	"time"

	categoryRepo "github.com/blue9kamrul/SkillBridge-backend/database/repository/category"
	"github.com/blue9kamrul/SkillBridge-backend/models"

	"github.com/google/uuid"
)

// ErrCategoryNotFound signals that the category does not exist.
var ErrCategoryNotFound = errors.New("Category not found")

// CategoryInput is the create/update payload.
type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryService manages subject categories. Mutations are admin-gated at
// the route level.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, input CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

// DefaultCategoryService implements CategoryService.
type DefaultCategoryService struct {
	Repo categoryRepo.CategoryRepository
}

func (s *DefaultCategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultCategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *DefaultCategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	now := time.Now()
	category := &models.Category{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *DefaultCategoryService) Update(ctx context.Context, id string, input CategoryInput) (*models.Category, error) {
	category, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := s.Repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *DefaultCategoryService) Delete(ctx context.Context, id string) error {
	category, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.Repo.Delete(ctx, id)
}
