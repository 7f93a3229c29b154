package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/creativeclicks/studio-backend/internal/database"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/payment"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type workshopService struct {
	workshopRepo     database.WorkshopRepository
	registrationRepo database.RegistrationRepository
	transactionRepo  database.TransactionRepository
	gateway          payment.CheckoutClient
	currency         string
}

func NewWorkshopService(
	workshopRepo database.WorkshopRepository,
	registrationRepo database.RegistrationRepository,
	transactionRepo database.TransactionRepository,
	gateway payment.CheckoutClient,
	currency string,
) WorkshopService {
	return &workshopService{
		workshopRepo:     workshopRepo,
		registrationRepo: registrationRepo,
		transactionRepo:  transactionRepo,
		gateway:          gateway,
		currency:         currency,
	}
}

func (s *workshopService) CreateWorkshop(ctx context.Context, req *entity.WorkshopCreate) (*entity.Workshop, error) {
	workshop := &entity.Workshop{
		ID:              uuid.New().String(),
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		DurationDays:    req.DurationDays,
		MaxParticipants: req.MaxParticipants,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.workshopRepo.Create(ctx, workshop); err != nil {
		return nil, fmt.Errorf("failed to create workshop: %w", err)
	}
	return workshop, nil
}

func (s *workshopService) GetWorkshop(ctx context.Context, id string) (*entity.Workshop, error) {
	return s.workshopRepo.GetByID(ctx, id)
}

func (s *workshopService) ListWorkshops(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error) {
	return s.workshopRepo.GetAll(ctx, activeOnly)
}

// Register runs the sequential checkout pipeline: registration record,
// gateway session, transaction record, session id patch. There is no
// compensation — if the gateway call fails the registration stays without a
// session and the caller retries the whole registration.
func (s *workshopService) Register(ctx context.Context, workshopID string, req *entity.WorkshopRegistrationCreate, baseURL string) (*entity.CheckoutRedirect, error) {
	workshop, err := s.workshopRepo.GetByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	registration := &entity.WorkshopRegistration{
		ID:               uuid.New().String(),
		WorkshopID:       workshopID,
		ParticipantName:  req.ParticipantName,
		ParticipantEmail: req.ParticipantEmail,
		Phone:            req.Phone,
		PaymentStatus:    entity.PaymentStatusPending,
		RegistrationDate: time.Now().UTC(),
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	metadata := map[string]string{
		"type":              "workshop_registration",
		"registration_id":   registration.ID,
		"workshop_id":       workshopID,
		"participant_email": req.ParticipantEmail,
	}

	session, err := s.gateway.CreateSession(ctx, &payment.SessionRequest{
		Amount:      workshop.Price,
		Currency:    s.currency,
		ProductName: workshop.Title,
		SuccessURL:  baseURL + "/workshop-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   baseURL + "/workshops",
		Metadata:    metadata,
	})
	if err != nil {
		logrus.Errorf("checkout session creation failed for registration %s: %s", registration.ID, err.Error())
		return nil, err
	}

	now := time.Now().UTC()
	tx := &entity.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     session.SessionID,
		Amount:        workshop.Price,
		Currency:      s.currency,
		PaymentType:   entity.PaymentTypeWorkshop,
		ReferenceID:   registration.ID,
		PaymentStatus: entity.PaymentStatusPending,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}

	patch := entity.RegistrationPatch{PaymentSessionID: &session.SessionID}
	if err := s.registrationRepo.Update(ctx, registration.ID, patch); err != nil {
		return nil, fmt.Errorf("failed to attach session to registration: %w", err)
	}

	return &entity.CheckoutRedirect{
		CheckoutURL: session.URL,
		SessionID:   session.SessionID,
	}, nil
}

// GetPaymentStatus pulls the authoritative session state from the gateway and
// reconciles the local records against it.
func (s *workshopService) GetPaymentStatus(ctx context.Context, sessionID string) (*payment.SessionStatus, error) {
	status, err := s.gateway.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, sessionID, status.PaymentStatus); err != nil {
		return nil, err
	}
	return status, nil
}

// HandleWebhook verifies the signed payload and, for completed checkouts,
// applies the same reconciliation as the poll path.
func (s *workshopService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}

	if event.EventType != payment.EventCheckoutCompleted {
		logrus.Debugf("ignoring webhook event type %s", event.EventType)
		return nil
	}

	err = s.reconcile(ctx, event.SessionID, event.PaymentStatus)
	if errors.Is(err, entity.ErrTransactionNotFound) {
		// A verified event for a session we have no record of is acked, not
		// failed: the gateway retries non-2xx deliveries indefinitely.
		logrus.Warnf("webhook for unknown session %s ignored", event.SessionID)
		return nil
	}
	return err
}

// reconcile unconditionally overwrites the transaction's status and, once the
// gateway reports paid, marks the matching registration. Both entry points
// converge here, so running them concurrently or redundantly is safe: the
// registration is only ever moved towards paid, never away from it.
func (s *workshopService) reconcile(ctx context.Context, sessionID string, status entity.PaymentStatus) error {
	patch := entity.TransactionStatusPatch{
		PaymentStatus: status,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.transactionRepo.UpdateStatusBySessionID(ctx, sessionID, patch); err != nil {
		return err
	}

	if status != entity.PaymentStatusPaid {
		return nil
	}

	paid := entity.PaymentStatusPaid
	err := s.registrationRepo.UpdateBySessionID(ctx, sessionID, entity.RegistrationPatch{PaymentStatus: &paid})
	if err != nil && !errors.Is(err, entity.ErrRegistrationNotFound) {
		// Transactions of other payment types have no registration behind them.
		return err
	}
	return nil
}
