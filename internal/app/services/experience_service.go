package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/repositories"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ExperienceService handles work experience CRUD
type ExperienceService interface {
	List(ctx context.Context) ([]*models.Experience, error)
	Get(ctx context.Context, id int64) (*models.Experience, error)
	Create(ctx context.Context, form dto.ExperienceForm) (*models.Experience, error)
	Update(ctx context.Context, id int64, form dto.ExperienceForm) (*models.Experience, error)
	Delete(ctx context.Context, id int64) error
}

type experienceService struct {
	repo repositories.ExperienceRepository
}

// NewExperienceService creates a new experience service
func NewExperienceService(repo repositories.ExperienceRepository) ExperienceService {
	return &experienceService{
		repo: repo,
	}
}

func validateExperience(form dto.ExperienceForm) error {
	if strings.TrimSpace(form.Role) == "" {
		return apperrors.NewValidationError("role", "role is required")
	}
	if strings.TrimSpace(form.Company) == "" {
		return apperrors.NewValidationError("company", "company is required")
	}
	return nil
}

// List returns all experiences
func (s *experienceService) List(ctx context.Context) ([]*models.Experience, error) {
	experiences, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing experiences: %w", err)
	}
	return experiences, nil
}

// Get returns one experience by id
func (s *experienceService) Get(ctx context.Context, id int64) (*models.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and inserts a new experience
func (s *experienceService) Create(ctx context.Context, form dto.ExperienceForm) (*models.Experience, error) {
	if err := validateExperience(form); err != nil {
		return nil, err
	}

	exp := &models.Experience{
		Role:        form.Role,
		Company:     form.Company,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Location:    form.Location,
		Description: form.Description,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

// Update overwrites every field of an existing experience
func (s *experienceService) Update(ctx context.Context, id int64, form dto.ExperienceForm) (*models.Experience, error) {
	if err := validateExperience(form); err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ID:          id,
		Role:        form.Role,
		Company:     form.Company,
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Location:    form.Location,
		Description: form.Description,
	}

	if err := s.repo.Update(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

// Delete removes an experience by id
func (s *experienceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
