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

type mockCertificationRepository struct {
	createFunc  func(ctx context.Context, cert *models.Certification) error
	getByIDFunc func(ctx context.Context, id int64) (*models.Certification, error)
	listFunc    func(ctx context.Context) ([]*models.Certification, error)
	updateFunc  func(ctx context.Context, cert *models.Certification) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockCertificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, cert)
	}
	cert.ID = 1
	return nil
}
func (m *mockCertificationRepository) GetByID(ctx context.Context, id int64) (*models.Certification, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repositories.ErrCertificationNotFound
}
func (m *mockCertificationRepository) List(ctx context.Context) ([]*models.Certification, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockCertificationRepository) Update(ctx context.Context, cert *models.Certification) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, cert)
	}
	return repositories.ErrCertificationNotFound
}
func (m *mockCertificationRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return repositories.ErrCertificationNotFound
}

func TestCertificationService_Create_MissingName(t *testing.T) {
	svc := NewCertificationService(&mockCertificationRepository{})

	_, err := svc.Create(context.Background(), dto.CertificationForm{Name: "  ", Issuer: "Acme"})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := apperrors.FieldOf(err); got != "name" {
		t.Errorf("expected field %q, got %q", "name", got)
	}
}

func TestCertificationService_Create_Success(t *testing.T) {
	repo := &mockCertificationRepository{
		createFunc: func(ctx context.Context, cert *models.Certification) error {
			cert.ID = 3
			return nil
		},
	}
	svc := NewCertificationService(repo)

	cert, err := svc.Create(context.Background(), dto.CertificationForm{
		Name:         "Cloud Architect",
		Issuer:       "Acme",
		DateObtained: "2024-05",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cert.ID != 3 {
		t.Errorf("expected id 3, got %d", cert.ID)
	}
}

func TestCertificationService_Update_MissingName(t *testing.T) {
	svc := NewCertificationService(&mockCertificationRepository{})

	_, err := svc.Update(context.Background(), 1, dto.CertificationForm{Name: ""})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCertificationService_Update_NotFound(t *testing.T) {
	svc := NewCertificationService(&mockCertificationRepository{})

	_, err := svc.Update(context.Background(), 99, dto.CertificationForm{Name: "Cloud Architect"})
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCertificationService_Update_Success(t *testing.T) {
	var updated *models.Certification
	repo := &mockCertificationRepository{
		updateFunc: func(ctx context.Context, cert *models.Certification) error {
			updated = cert
			return nil
		},
	}
	svc := NewCertificationService(repo)

	cert, err := svc.Update(context.Background(), 4, dto.CertificationForm{
		Name:          "Cloud Architect",
		Issuer:        "Acme",
		CredentialURL: "https://example.com/cred/4",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated == nil || updated.ID != 4 {
		t.Fatalf("expected repository update with id 4, got %+v", updated)
	}
	if cert.CredentialURL != "https://example.com/cred/4" {
		t.Errorf("unexpected updated certification: %+v", cert)
	}
}

func TestCertificationService_Delete_NotFound(t *testing.T) {
	svc := NewCertificationService(&mockCertificationRepository{})

	err := svc.Delete(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
