package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrCertificationNotFound is returned when a certification id does not resolve to a row
var ErrCertificationNotFound = apperrors.NewResourceNotFoundError("certification not found")

// CertificationRepository handles database operations for certifications
type CertificationRepository interface {
	Create(ctx context.Context, cert *models.Certification) error
	GetByID(ctx context.Context, id int64) (*models.Certification, error)
	List(ctx context.Context) ([]*models.Certification, error)
	Update(ctx context.Context, cert *models.Certification) error
	Delete(ctx context.Context, id int64) error
}

type certificationRepository struct {
	db *sql.DB
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(db *sql.DB) CertificationRepository {
	return &certificationRepository{
		db: db,
	}
}

// Create inserts a new certification and assigns its id
func (r *certificationRepository) Create(ctx context.Context, cert *models.Certification) error {
	query := `
		INSERT INTO certifications (name, issuer, date_obtained, credential_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		cert.Name,
		cert.Issuer,
		cert.DateObtained,
		cert.CredentialURL,
	).Scan(&cert.ID)
	if err != nil {
		return fmt.Errorf("error creating certification: %w", err)
	}

	return nil
}

// GetByID retrieves a certification by id
func (r *certificationRepository) GetByID(ctx context.Context, id int64) (*models.Certification, error) {
	query := `
		SELECT id, name, issuer, date_obtained, credential_url
		FROM certifications
		WHERE id = $1
	`

	var cert models.Certification
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cert.ID,
		&cert.Name,
		&cert.Issuer,
		&cert.DateObtained,
		&cert.CredentialURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCertificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving certification: %w", err)
	}

	return &cert, nil
}

// List retrieves all certifications ordered by date_obtained descending.
// The column is free text, so this is a string comparison, not a date sort.
func (r *certificationRepository) List(ctx context.Context) ([]*models.Certification, error) {
	query := `
		SELECT id, name, issuer, date_obtained, credential_url
		FROM certifications
		ORDER BY date_obtained DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certification
	for rows.Next() {
		var cert models.Certification
		if err := rows.Scan(
			&cert.ID,
			&cert.Name,
			&cert.Issuer,
			&cert.DateObtained,
			&cert.CredentialURL,
		); err != nil {
			return nil, err
		}
		certs = append(certs, &cert)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certs, nil
}

// Update overwrites every column of an existing certification
func (r *certificationRepository) Update(ctx context.Context, cert *models.Certification) error {
	query := `
		UPDATE certifications
		SET name = $1, issuer = $2, date_obtained = $3, credential_url = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		cert.Name,
		cert.Issuer,
		cert.DateObtained,
		cert.CredentialURL,
		cert.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating certification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating certification: %w", err)
	}
	if affected == 0 {
		return ErrCertificationNotFound
	}

	return nil
}

// Delete removes a certification by id
func (r *certificationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting certification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting certification: %w", err)
	}
	if affected == 0 {
		return ErrCertificationNotFound
	}

	return nil
}
