package services

import (
	"context"
	"errors"
	"testing"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
)

type mockMessageRepository struct {
	createFunc func(ctx context.Context, msg *models.ContactMessage) error
	listFunc   func(ctx context.Context) ([]*models.ContactMessage, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	msg.ID = 1
	return nil
}
func (m *mockMessageRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockMessageRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func TestMessageService_Submit(t *testing.T) {
	svc := NewMessageService(&mockMessageRepository{})

	msg, err := svc.Submit(context.Background(), dto.ContactForm{
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if msg.ID == 0 {
		t.Error("expected ID to be set after Submit")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestMessageService_Submit_AcceptsEmptyFields(t *testing.T) {
	// Submissions are stored as-is; there is no presence check on purpose.
	svc := NewMessageService(&mockMessageRepository{})

	if _, err := svc.Submit(context.Background(), dto.ContactForm{}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
}

func TestMessageService_Submit_RepoError(t *testing.T) {
	repo := &mockMessageRepository{
		createFunc: func(ctx context.Context, msg *models.ContactMessage) error {
			return errors.New("insert failed")
		},
	}
	svc := NewMessageService(repo)

	if _, err := svc.Submit(context.Background(), dto.ContactForm{Email: "a@b.c"}); err == nil {
		t.Fatal("expected error from failed insert")
	}
}
