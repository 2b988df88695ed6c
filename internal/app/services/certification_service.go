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

// CertificationService handles certification CRUD
type CertificationService interface {
	List(ctx context.Context) ([]*models.Certification, error)
	Get(ctx context.Context, id int64) (*models.Certification, error)
	Create(ctx context.Context, form dto.CertificationForm) (*models.Certification, error)
	Update(ctx context.Context, id int64, form dto.CertificationForm) (*models.Certification, error)
	Delete(ctx context.Context, id int64) error
}

type certificationService struct {
	repo repositories.CertificationRepository
}

// NewCertificationService creates a new certification service
func NewCertificationService(repo repositories.CertificationRepository) CertificationService {
	return &certificationService{
		repo: repo,
	}
}

// List returns all certifications, most recently obtained first
func (s *certificationService) List(ctx context.Context) ([]*models.Certification, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing certifications: %w", err)
	}
	return certs, nil
}

// Get returns one certification by id
func (s *certificationService) Get(ctx context.Context, id int64) (*models.Certification, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and inserts a new certification
func (s *certificationService) Create(ctx context.Context, form dto.CertificationForm) (*models.Certification, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	cert := &models.Certification{
		Name:          form.Name,
		Issuer:        form.Issuer,
		DateObtained:  form.DateObtained,
		CredentialURL: form.CredentialURL,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}

	return cert, nil
}

// Update overwrites every field of an existing certification
func (s *certificationService) Update(ctx context.Context, id int64, form dto.CertificationForm) (*models.Certification, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	cert := &models.Certification{
		ID:            id,
		Name:          form.Name,
		Issuer:        form.Issuer,
		DateObtained:  form.DateObtained,
		CredentialURL: form.CredentialURL,
	}

	if err := s.repo.Update(ctx, cert); err != nil {
		return nil, err
	}

	return cert, nil
}

// Delete removes a certification by id
func (s *certificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
