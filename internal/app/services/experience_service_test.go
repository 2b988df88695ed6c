package services

import (
	"context"
	"errors"
	"testing"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/repositories"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

type mockExperienceRepository struct {
	createFunc  func(ctx context.Context, exp *models.Experience) error
	getByIDFunc func(ctx context.Context, id int64) (*models.Experience, error)
	listFunc    func(ctx context.Context) ([]*models.Experience, error)
	updateFunc  func(ctx context.Context, exp *models.Experience) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockExperienceRepository) Create(ctx context.Context, exp *models.Experience) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, exp)
	}
	exp.ID = 1
	return nil
}
func (m *mockExperienceRepository) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repositories.ErrExperienceNotFound
}
func (m *mockExperienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockExperienceRepository) Update(ctx context.Context, exp *models.Experience) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, exp)
	}
	return nil
}
func (m *mockExperienceRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestExperienceService_Create_MissingRole(t *testing.T) {
	svc := NewExperienceService(&mockExperienceRepository{})

	_, err := svc.Create(context.Background(), dto.ExperienceForm{Company: "Acme"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := apperrors.FieldOf(err); got != "role" {
		t.Errorf("expected field %q, got %q", "role", got)
	}
}

func TestExperienceService_Create_MissingCompany(t *testing.T) {
	svc := NewExperienceService(&mockExperienceRepository{})

	_, err := svc.Create(context.Background(), dto.ExperienceForm{Role: "Engineer"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := apperrors.FieldOf(err); got != "company" {
		t.Errorf("expected field %q, got %q", "company", got)
	}
}

func TestExperienceService_Update_NotFound(t *testing.T) {
	// Update has no GetByID preflight; the unknown id surfaces from the
	// repository's zero-rows-affected check.
	repo := &mockExperienceRepository{
		updateFunc: func(ctx context.Context, exp *models.Experience) error {
			return repositories.ErrExperienceNotFound
		},
	}
	svc := NewExperienceService(repo)

	_, err := svc.Update(context.Background(), 99, dto.ExperienceForm{Role: "Engineer", Company: "Acme"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestExperienceService_Update_Success(t *testing.T) {
	var updated *models.Experience
	repo := &mockExperienceRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*models.Experience, error) {
			return &models.Experience{ID: id, Role: "Old Role", Company: "Old Co"}, nil
		},
		updateFunc: func(ctx context.Context, exp *models.Experience) error {
			updated = exp
			return nil
		},
	}
	svc := NewExperienceService(repo)

	exp, err := svc.Update(context.Background(), 4, dto.ExperienceForm{
		Role:      "Senior Engineer",
		Company:   "Acme",
		StartDate: "Jan 2023",
		EndDate:   "Present",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated == nil || updated.ID != 4 {
		t.Fatalf("expected repository update with id 4, got %+v", updated)
	}
	if exp.Role != "Senior Engineer" || exp.EndDate != "Present" {
		t.Errorf("unexpected updated experience: %+v", exp)
	}
}
