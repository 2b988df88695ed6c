package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrProjectNotFound is returned when a project id does not resolve to a row
var ErrProjectNotFound = apperrors.NewResourceNotFoundError("project not found")

// ProjectRepository handles database operations for projects
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

type projectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create inserts a new project and assigns its id and creation time
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, subtitle, description, tech_stack, github_url, live_url, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		project.Title,
		project.Subtitle,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveURL,
		project.Image,
		project.CreatedAt,
	).Scan(&project.ID)
	if err != nil {
		return fmt.Errorf("error creating project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by id
func (r *projectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `
		SELECT id, title, subtitle, description, tech_stack, github_url, live_url, image, created_at
		FROM projects
		WHERE id = $1
	`

	var project models.Project
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Subtitle,
		&project.Description,
		&project.TechStack,
		&project.GithubURL,
		&project.LiveURL,
		&project.Image,
		&project.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects, newest first
func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, title, subtitle, description, tech_stack, github_url, live_url, image, created_at
		FROM projects
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Subtitle,
			&project.Description,
			&project.TechStack,
			&project.GithubURL,
			&project.LiveURL,
			&project.Image,
			&project.CreatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// Update overwrites every column of an existing project
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, subtitle = $2, description = $3, tech_stack = $4, github_url = $5, live_url = $6, image = $7
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		project.Title,
		project.Subtitle,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveURL,
		project.Image,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Delete removes a project by id
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
