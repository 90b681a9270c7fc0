package contact

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

// MessageInput is the contact-form payload.
type MessageInput struct {
	Name    string `json:"name" validate:"required,min=2,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// Repository persists contact-form submissions.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a contact repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the message row.
func (r *Repository) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// List returns all messages, newest first. Admin surface only.
func (r *Repository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

type messageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// Service accepts storefront contact messages.
type Service interface {
	Submit(ctx context.Context, input MessageInput) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

type service struct {
	repo messageRepository
}

// NewService builds a contact service backed by the repository.
func NewService(repo messageRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, input MessageInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	subject := strings.TrimSpace(input.Subject)
	body := strings.TrimSpace(input.Message)
	if name == "" || subject == "" || body == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name, subject and message are required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required")
	}

	message := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: body,
	}
	created, err := s.repo.Create(ctx, message)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving contact message")
	}
	return created, nil
}

func (s *service) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing contact messages")
	}
	return messages, nil
}
