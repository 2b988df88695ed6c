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

// DefaultSkillCategory is the grouping key for skills without a category
const DefaultSkillCategory = "Other"

// SkillService handles skill creation, listing, grouping and deletion.
// Skills have no edit flow; the admin recreates them instead.
type SkillService interface {
	Create(ctx context.Context, form dto.SkillForm) (*models.Skill, error)
	List(ctx context.Context) ([]*models.Skill, error)
	ListGrouped(ctx context.Context) (map[string][]*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type skillService struct {
	repo repositories.SkillRepository
}

// NewSkillService creates a new skill service
func NewSkillService(repo repositories.SkillRepository) SkillService {
	return &skillService{
		repo: repo,
	}
}

// Create validates and inserts a new skill
func (s *skillService) Create(ctx context.Context, form dto.SkillForm) (*models.Skill, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	skill := &models.Skill{
		Name:     form.Name,
		Level:    form.Level,
		Category: form.Category,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

// List returns all skills ordered by name, for the admin listing
func (s *skillService) List(ctx context.Context) ([]*models.Skill, error) {
	skills, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	return skills, nil
}

// ListGrouped returns skills grouped by trimmed category, preserving the
// category-then-name order within each group. Skills without a category
// land under DefaultSkillCategory.
func (s *skillService) ListGrouped(ctx context.Context) (map[string][]*models.Skill, error) {
	skills, err := s.repo.ListByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing skills: %w", err)
	}

	return GroupSkills(skills), nil
}

// GroupSkills buckets skills by trimmed category, keeping input order
// within each bucket
func GroupSkills(skills []*models.Skill) map[string][]*models.Skill {
	groups := make(map[string][]*models.Skill)
	for _, skill := range skills {
		key := strings.TrimSpace(skill.Category)
		if key == "" {
			key = DefaultSkillCategory
		}
		groups[key] = append(groups[key], skill)
	}
	return groups
}

// Delete removes a skill by id
func (s *skillService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
