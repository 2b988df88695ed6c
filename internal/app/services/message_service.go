package services

import (
	"context"
	"fmt"
	"time"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/app/repositories"
)

// MessageService handles visitor contact submissions and the admin-side
// listing and deletion. Messages are never updated.
type MessageService interface {
	Submit(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error)
	List(ctx context.Context) ([]*models.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type messageService struct {
	repo repositories.MessageRepository
}

// NewMessageService creates a new contact message service
func NewMessageService(repo repositories.MessageRepository) MessageService {
	return &messageService{
		repo: repo,
	}
}

// Submit persists a visitor message. Email format and message length are
// deliberately not checked; the form is the only gate.
func (s *messageService) Submit(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// List returns all messages, newest first
func (s *messageService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing contact messages: %w", err)
	}
	return messages, nil
}

// Delete removes a message by id
func (s *messageService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
