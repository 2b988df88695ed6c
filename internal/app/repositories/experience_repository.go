package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrExperienceNotFound is returned when an experience id does not resolve to a row
var ErrExperienceNotFound = apperrors.NewResourceNotFoundError("experience not found")

// ExperienceRepository handles database operations for work experiences
type ExperienceRepository interface {
	Create(ctx context.Context, exp *models.Experience) error
	GetByID(ctx context.Context, id int64) (*models.Experience, error)
	List(ctx context.Context) ([]*models.Experience, error)
	Update(ctx context.Context, exp *models.Experience) error
	Delete(ctx context.Context, id int64) error
}

type experienceRepository struct {
	db *sql.DB
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *sql.DB) ExperienceRepository {
	return &experienceRepository{
		db: db,
	}
}

// Create inserts a new experience and assigns its id
func (r *experienceRepository) Create(ctx context.Context, exp *models.Experience) error {
	query := `
		INSERT INTO experiences (role, company, start_date, end_date, location, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		exp.Role,
		exp.Company,
		exp.StartDate,
		exp.EndDate,
		exp.Location,
		exp.Description,
	).Scan(&exp.ID)
	if err != nil {
		return fmt.Errorf("error creating experience: %w", err)
	}

	return nil
}

// GetByID retrieves an experience by id
func (r *experienceRepository) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	query := `
		SELECT id, role, company, start_date, end_date, location, description
		FROM experiences
		WHERE id = $1
	`

	var exp models.Experience
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exp.ID,
		&exp.Role,
		&exp.Company,
		&exp.StartDate,
		&exp.EndDate,
		&exp.Location,
		&exp.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving experience: %w", err)
	}

	return &exp, nil
}

// List retrieves all experiences in insertion order
func (r *experienceRepository) List(ctx context.Context) ([]*models.Experience, error) {
	query := `
		SELECT id, role, company, start_date, end_date, location, description
		FROM experiences
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []*models.Experience
	for rows.Next() {
		var exp models.Experience
		if err := rows.Scan(
			&exp.ID,
			&exp.Role,
			&exp.Company,
			&exp.StartDate,
			&exp.EndDate,
			&exp.Location,
			&exp.Description,
		); err != nil {
			return nil, err
		}
		experiences = append(experiences, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return experiences, nil
}

// Update overwrites every column of an existing experience
func (r *experienceRepository) Update(ctx context.Context, exp *models.Experience) error {
	query := `
		UPDATE experiences
		SET role = $1, company = $2, start_date = $3, end_date = $4, location = $5, description = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		exp.Role,
		exp.Company,
		exp.StartDate,
		exp.EndDate,
		exp.Location,
		exp.Description,
		exp.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating experience: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating experience: %w", err)
	}
	if affected == 0 {
		return ErrExperienceNotFound
	}

	return nil
}

// Delete removes an experience by id
func (r *experienceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting experience: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting experience: %w", err)
	}
	if affected == 0 {
		return ErrExperienceNotFound
	}

	return nil
}
