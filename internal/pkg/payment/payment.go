package payment

import (
	"context"

	"github.com/creativeclicks/studio-backend/internal/entity"
)

// EventCheckoutCompleted is the only webhook event type that drives
// reconciliation; everything else is acknowledged and dropped.
const EventCheckoutCompleted = "checkout.session.completed"

// SessionRequest describes one hosted checkout to be created at the gateway.
type SessionRequest struct {
	Amount      float64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Session identifies a created checkout at the gateway. URL is where the
// client browser is sent to pay.
type Session struct {
	SessionID string
	URL       string
}

// SessionStatus is the gateway's authoritative view of one checkout session.
type SessionStatus struct {
	SessionID     string               `json:"session_id"`
	Status        string               `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	AmountTotal   int64                `json:"amount_total"`
	Currency      string               `json:"currency"`
}

// WebhookEvent is a verified inbound gateway notification.
type WebhookEvent struct {
	EventType     string
	SessionID     string
	PaymentStatus entity.PaymentStatus
}

// CheckoutClient is the capability surface of the hosted payment provider.
type CheckoutClient interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
