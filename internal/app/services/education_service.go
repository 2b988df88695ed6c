package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/repositories"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
	"github.com/doruk/portfolio/internal/pkg/filestorage"
	"github.com/doruk/portfolio/internal/pkg/logger"
)

// EducationService handles education CRUD plus the associated icon upload
type EducationService interface {
	List(ctx context.Context) ([]*models.Education, error)
	Get(ctx context.Context, id int64) (*models.Education, error)
	Create(ctx context.Context, form dto.EducationForm, icon *multipart.FileHeader) (*models.Education, error)
	Update(ctx context.Context, id int64, form dto.EducationForm, icon *multipart.FileHeader) (*models.Education, error)
	Delete(ctx context.Context, id int64) error
}

type educationService struct {
	repo    repositories.EducationRepository
	storage filestorage.FileStorage
}

// NewEducationService creates a new education service
func NewEducationService(repo repositories.EducationRepository, storage filestorage.FileStorage) EducationService {
	return &educationService{
		repo:    repo,
		storage: storage,
	}
}

func validateEducation(form dto.EducationForm) error {
	if strings.TrimSpace(form.Degree) == "" {
		return apperrors.NewValidationError("degree", "degree is required")
	}
	if strings.TrimSpace(form.DegreeType) == "" {
		return apperrors.NewValidationError("degree_type", "degree type is required")
	}
	if strings.TrimSpace(form.Institute) == "" {
		return apperrors.NewValidationError("institute", "institute is required")
	}
	if strings.TrimSpace(form.InstituteURL) == "" {
		return apperrors.NewValidationError("institute_url", "institute url is required")
	}
	return nil
}

// List returns all education entries, most recent end year first
func (s *educationService) List(ctx context.Context) ([]*models.Education, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing education entries: %w", err)
	}
	return entries, nil
}

// Get returns one education entry by id
func (s *educationService) Get(ctx context.Context, id int64) (*models.Education, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the form, stores the icon if one was uploaded, then
// inserts the record. Validation runs before the file touches disk.
func (s *educationService) Create(ctx context.Context, form dto.EducationForm, icon *multipart.FileHeader) (*models.Education, error) {
	if err := validateEducation(form); err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveFile(icon, filestorage.EducationIcons)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to store education icon", err)
	}

	edu := &models.Education{
		Degree:       form.Degree,
		DegreeType:   form.DegreeType,
		Institute:    form.Institute,
		InstituteURL: form.InstituteURL,
		StartYear:    form.StartYear,
		EndYear:      form.EndYear,
		Location:     form.Location,
		Description:  form.Description,
		Icon:         filename,
	}

	if err := s.repo.Create(ctx, edu); err != nil {
		if filename != "" {
			if delErr := s.storage.DeleteFile(filestorage.EducationIcons, filename); delErr != nil {
				logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up education icon after insert failure")
			}
		}
		return nil, err
	}

	return edu, nil
}

// Update overwrites every field of an existing education entry. A newly
// uploaded icon replaces the old file after the row update succeeds.
func (s *educationService) Update(ctx context.Context, id int64, form dto.EducationForm, icon *multipart.FileHeader) (*models.Education, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateEducation(form); err != nil {
		return nil, err
	}

	filename, err := s.storage.SaveFile(icon, filestorage.EducationIcons)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to store education icon", err)
	}

	edu := &models.Education{
		ID:           id,
		Degree:       form.Degree,
		DegreeType:   form.DegreeType,
		Institute:    form.Institute,
		InstituteURL: form.InstituteURL,
		StartYear:    form.StartYear,
		EndYear:      form.EndYear,
		Location:     form.Location,
		Description:  form.Description,
		Icon:         existing.Icon,
	}
	if filename != "" {
		edu.Icon = filename
	}

	if err := s.repo.Update(ctx, edu); err != nil {
		if filename != "" {
			if delErr := s.storage.DeleteFile(filestorage.EducationIcons, filename); delErr != nil {
				logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up education icon after update failure")
			}
		}
		return nil, err
	}

	if filename != "" && existing.Icon != "" {
		if err := s.storage.DeleteFile(filestorage.EducationIcons, existing.Icon); err != nil {
			logger.Error().Err(err).Str("filename", existing.Icon).Msg("Failed to delete replaced education icon")
		}
	}

	return edu, nil
}

// Delete removes an education entry and its stored icon, if any
func (s *educationService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Icon != "" {
		if err := s.storage.DeleteFile(filestorage.EducationIcons, existing.Icon); err != nil {
			logger.Error().Err(err).Str("filename", existing.Icon).Msg("Failed to delete education icon")
		}
	}

	return nil
}
