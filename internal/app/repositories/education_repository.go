package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrEducationNotFound is returned when an education id does not resolve to a row
var ErrEducationNotFound = apperrors.NewResourceNotFoundError("education entry not found")

// EducationRepository handles database operations for education entries
type EducationRepository interface {
	Create(ctx context.Context, edu *models.Education) error
	GetByID(ctx context.Context, id int64) (*models.Education, error)
	List(ctx context.Context) ([]*models.Education, error)
	Update(ctx context.Context, edu *models.Education) error
	Delete(ctx context.Context, id int64) error
}

type educationRepository struct {
	db *sql.DB
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(db *sql.DB) EducationRepository {
	return &educationRepository{
		db: db,
	}
}

// Create inserts a new education entry and assigns its id
func (r *educationRepository) Create(ctx context.Context, edu *models.Education) error {
	query := `
		INSERT INTO education (degree, degree_type, institute, institute_url, start_year, end_year, location, description, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		edu.Degree,
		edu.DegreeType,
		edu.Institute,
		edu.InstituteURL,
		edu.StartYear,
		edu.EndYear,
		edu.Location,
		edu.Description,
		edu.Icon,
	).Scan(&edu.ID)
	if err != nil {
		return fmt.Errorf("error creating education entry: %w", err)
	}

	return nil
}

// GetByID retrieves an education entry by id
func (r *educationRepository) GetByID(ctx context.Context, id int64) (*models.Education, error) {
	query := `
		SELECT id, degree, degree_type, institute, institute_url, start_year, end_year, location, description, icon
		FROM education
		WHERE id = $1
	`

	var edu models.Education
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&edu.ID,
		&edu.Degree,
		&edu.DegreeType,
		&edu.Institute,
		&edu.InstituteURL,
		&edu.StartYear,
		&edu.EndYear,
		&edu.Location,
		&edu.Description,
		&edu.Icon,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEducationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving education entry: %w", err)
	}

	return &edu, nil
}

// List retrieves all education entries ordered by end_year descending.
// The column is free text, so this is a string comparison.
func (r *educationRepository) List(ctx context.Context) ([]*models.Education, error) {
	query := `
		SELECT id, degree, degree_type, institute, institute_url, start_year, end_year, location, description, icon
		FROM education
		ORDER BY end_year DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Education
	for rows.Next() {
		var edu models.Education
		if err := rows.Scan(
			&edu.ID,
			&edu.Degree,
			&edu.DegreeType,
			&edu.Institute,
			&edu.InstituteURL,
			&edu.StartYear,
			&edu.EndYear,
			&edu.Location,
			&edu.Description,
			&edu.Icon,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &edu)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Update overwrites every column of an existing education entry
func (r *educationRepository) Update(ctx context.Context, edu *models.Education) error {
	query := `
		UPDATE education
		SET degree = $1, degree_type = $2, institute = $3, institute_url = $4, start_year = $5, end_year = $6, location = $7, description = $8, icon = $9
		WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		edu.Degree,
		edu.DegreeType,
		edu.Institute,
		edu.InstituteURL,
		edu.StartYear,
		edu.EndYear,
		edu.Location,
		edu.Description,
		edu.Icon,
		edu.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating education entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating education entry: %w", err)
	}
	if affected == 0 {
		return ErrEducationNotFound
	}

	return nil
}

// Delete removes an education entry by id
func (r *educationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting education entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting education entry: %w", err)
	}
	if affected == 0 {
		return ErrEducationNotFound
	}

	return nil
}
