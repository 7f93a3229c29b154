package service

import (
	"context"
	"fmt"
	"time"

	"github.com/creativeclicks/studio-backend/internal/database"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/notify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contactService struct {
	repo     database.ContactRepository
	notifier notify.Notifier
	notifyTo string
}

func NewContactService(repo database.ContactRepository, notifier notify.Notifier, notifyTo string) ContactService {
	return &contactService{
		repo:     repo,
		notifier: notifier,
		notifyTo: notifyTo,
	}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *entity.ContactMessageCreate) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	subject := fmt.Sprintf("Contact Form: %s", message.Subject)
	body := fmt.Sprintf(
		"New contact message received:\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		message.Name, message.Email, message.Subject, message.Message,
	)
	if err := s.notifier.Send(ctx, s.notifyTo, subject, body); err != nil {
		logrus.Errorf("contact notification failed: %s", err.Error())
	}

	return message, nil
}
