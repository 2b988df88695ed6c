package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models"
	"github.com/doruk/portfolio/internal/app/models/dto"
)

type mockMessageService struct {
	submitFunc func(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error)
	listFunc   func(ctx context.Context) ([]*models.ContactMessage, error)
	deleteFunc func(ctx context.Context, id int64) error
}

func (m *mockMessageService) Submit(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, form)
	}
	return &models.ContactMessage{ID: 1, Email: form.Email, Message: form.Message}, nil
}
func (m *mockMessageService) List(ctx context.Context) ([]*models.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}
func (m *mockMessageService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func contactRouter(svc *mockMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewMessageController(svc)
	router.POST("/contact", ctrl.Submit)
	return router
}

func TestMessageController_Submit_JSON(t *testing.T) {
	var received dto.ContactForm
	svc := &mockMessageService{
		submitFunc: func(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
			received = form
			return &models.ContactMessage{ID: 1, Email: form.Email, Message: form.Message}, nil
		},
	}
	router := contactRouter(svc)

	body := `{"email":"visitor@example.com","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ContactResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Message != "Message sent successfully!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if received.Email != "visitor@example.com" || received.Message != "Hi" {
		t.Errorf("unexpected bound form: %+v", received)
	}
}

func TestMessageController_Submit_Form(t *testing.T) {
	router := contactRouter(&mockMessageService{})

	form := "email=visitor%40example.com&message=Hello"
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMessageController_Submit_ServiceError(t *testing.T) {
	svc := &mockMessageService{
		submitFunc: func(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
			return nil, errors.New("db down")
		},
	}
	router := contactRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"email":"a@b.c"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON error response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != dto.ErrorCodeInternalServer {
		t.Errorf("unexpected error payload: %+v", resp.Error)
	}
}
