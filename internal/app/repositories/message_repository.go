package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// ErrMessageNotFound is returned when a message id does not resolve to a row
var ErrMessageNotFound = apperrors.NewResourceNotFoundError("contact message not found")

// MessageRepository handles database operations for contact messages.
// Messages are append-only: there is no update.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type messageRepository struct {
	db *sql.DB
}

// NewMessageRepository creates a new contact message repository
func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create inserts a new contact message and assigns its id
func (r *messageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (email, message, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, msg.Email, msg.Message, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}

// List retrieves all contact messages, newest first
func (r *messageRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// Delete removes a contact message by id
func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting contact message: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
