package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrSkillNotFound is returned when a skill id does not resolve to a row
var ErrSkillNotFound = apperrors.NewResourceNotFoundError("skill not found")

// SkillRepository handles database operations for skills
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	// ListByName orders by name only, for the admin listing.
	ListByName(ctx context.Context) ([]*models.Skill, error)
	// ListByCategory orders by category then name, for public grouping.
	ListByCategory(ctx context.Context) ([]*models.Skill, error)
	Delete(ctx context.Context, id int64) error
}

type skillRepository struct {
	db *sql.DB
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *sql.DB) SkillRepository {
	return &skillRepository{
		db: db,
	}
}

// Create inserts a new skill and assigns its id
func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := `
		INSERT INTO skills (name, level, category)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, skill.Name, skill.Level, skill.Category).Scan(&skill.ID)
	if err != nil {
		return fmt.Errorf("error creating skill: %w", err)
	}

	return nil
}

// ListByName retrieves all skills ordered by name
func (r *skillRepository) ListByName(ctx context.Context) ([]*models.Skill, error) {
	return r.list(ctx, `
		SELECT id, name, level, category
		FROM skills
		ORDER BY name ASC
	`)
}

// ListByCategory retrieves all skills ordered by category then name
func (r *skillRepository) ListByCategory(ctx context.Context) ([]*models.Skill, error) {
	return r.list(ctx, `
		SELECT id, name, level, category
		FROM skills
		ORDER BY category ASC, name ASC
	`)
}

func (r *skillRepository) list(ctx context.Context, query string) ([]*models.Skill, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.Level, &skill.Category); err != nil {
			return nil, err
		}
		skills = append(skills, &skill)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return skills, nil
}

// Delete removes a skill by id
func (r *skillRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting skill: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting skill: %w", err)
	}
	if affected == 0 {
		return ErrSkillNotFound
	}

	return nil
}
