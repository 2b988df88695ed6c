package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/repositories"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
	"github.com/doruk/portfolio/internal/pkg/filestorage"
	"github.com/doruk/portfolio/internal/pkg/logger"
)

// ProjectService handles project CRUD plus the associated image upload
type ProjectService interface {
	List(ctx context.Context) ([]*models.Project, error)
	Get(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, form dto.ProjectForm, image *multipart.FileHeader) (*models.Project, error)
	Update(ctx context.Context, id int64, form dto.ProjectForm, image *multipart.FileHeader) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo    repositories.ProjectRepository
	storage filestorage.FileStorage
}

// NewProjectService creates a new project service
func NewProjectService(repo repositories.ProjectRepository, storage filestorage.FileStorage) ProjectService {
	return &projectService{
		repo:    repo,
		storage: storage,
	}
}

// List returns all projects, newest first
func (s *projectService) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

// Get returns one project by id
func (s *projectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the form, stores the image if one was uploaded, then
// inserts the record. Validation runs before the file touches disk, so a
// rejected submission never leaves an orphaned upload.
func (s *projectService) Create(ctx context.Context, form dto.ProjectForm, image *multipart.FileHeader) (*models.Project, error) {
	if strings.TrimSpace(form.Title) == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}

	filename, err := s.storage.SaveFile(image, filestorage.ProjectImages)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to store project image", err)
	}

	project := &models.Project{
		Title:       form.Title,
		Subtitle:    form.Subtitle,
		Description: form.Description,
		TechStack:   form.TechStack,
		GithubURL:   form.GithubURL,
		LiveURL:     form.LiveURL,
		Image:       filename,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		// The row never made it in, so the stored file must go too.
		if filename != "" {
			if delErr := s.storage.DeleteFile(filestorage.ProjectImages, filename); delErr != nil {
				logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up project image after insert failure")
			}
		}
		return nil, err
	}

	return project, nil
}

// Update overwrites every field of an existing project. A newly uploaded
// image replaces the old file; the old file is deleted only after the row
// update succeeds.
func (s *projectService) Update(ctx context.Context, id int64, form dto.ProjectForm, image *multipart.FileHeader) (*models.Project, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(form.Title) == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}

	filename, err := s.storage.SaveFile(image, filestorage.ProjectImages)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to store project image", err)
	}

	project := &models.Project{
		ID:          id,
		Title:       form.Title,
		Subtitle:    form.Subtitle,
		Description: form.Description,
		TechStack:   form.TechStack,
		GithubURL:   form.GithubURL,
		LiveURL:     form.LiveURL,
		Image:       existing.Image,
		CreatedAt:   existing.CreatedAt,
	}
	if filename != "" {
		project.Image = filename
	}

	if err := s.repo.Update(ctx, project); err != nil {
		if filename != "" {
			if delErr := s.storage.DeleteFile(filestorage.ProjectImages, filename); delErr != nil {
				logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up project image after update failure")
			}
		}
		return nil, err
	}

	if filename != "" && existing.Image != "" {
		if err := s.storage.DeleteFile(filestorage.ProjectImages, existing.Image); err != nil {
			logger.Error().Err(err).Str("filename", existing.Image).Msg("Failed to delete replaced project image")
		}
	}

	return project, nil
}

// Delete removes a project and its stored image, if any
func (s *projectService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != "" {
		if err := s.storage.DeleteFile(filestorage.ProjectImages, existing.Image); err != nil {
			logger.Error().Err(err).Str("filename", existing.Image).Msg("Failed to delete project image")
		}
	}

	return nil
}
