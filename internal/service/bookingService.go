package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/creativeclicks/studio-backend/internal/database"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/notify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type bookingService struct {
	repo     database.BookingRepository
	notifier notify.Notifier
	notifyTo string
}

func NewBookingService(repo database.BookingRepository, notifier notify.Notifier, notifyTo string) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		notifyTo: notifyTo,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *entity.EventBookingCreate) (*entity.EventBooking, error) {
	booking := &entity.EventBooking{
		ID:              uuid.New().String(),
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		Phone:           req.Phone,
		EventDate:       req.EventDate,
		EventType:       req.EventType,
		Services:        req.Services,
		EstimatedHours:  req.EstimatedHours,
		SpecialRequests: req.SpecialRequests,
		BookingDate:     time.Now().UTC(),
		Status:          entity.BookingStatusPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Notification is off the critical path; failure is logged and dropped.
	subject := fmt.Sprintf("New Event Booking - %s", booking.EventType)
	body := fmt.Sprintf(
		"New event booking received:\n\nClient: %s\nEmail: %s\nPhone: %s\nEvent Date: %s\nEvent Type: %s\nServices: %s\nEstimated Hours: %d\nSpecial Requests: %s\n",
		booking.ClientName,
		booking.ClientEmail,
		booking.Phone,
		booking.EventDate.Format(time.RFC3339),
		booking.EventType,
		strings.Join(booking.Services, ", "),
		booking.EstimatedHours,
		orNone(booking.SpecialRequests),
	)
	if err := s.notifier.Send(ctx, s.notifyTo, subject, body); err != nil {
		logrus.Errorf("booking notification failed: %s", err.Error())
	}

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string) ([]*entity.EventBooking, error) {
	var filter entity.BookingStatus
	if status != "" {
		parsed, err := entity.ParseBookingStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
		}
		filter = parsed
	}

	return s.repo.GetAll(ctx, filter)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
