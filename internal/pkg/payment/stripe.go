package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

type stripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewStripeClient(apiKey, webhookSecret string) CheckoutClient {
	return &stripeClient{
		api:           client.New(apiKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (c *stripeClient) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", entity.ErrGateway, err)
	}

	return &Session{SessionID: sess.ID, URL: sess.URL}, nil
}

func (c *stripeClient) GetSessionStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	sess, err := c.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get checkout session %s: %v", entity.ErrGateway, sessionID, err)
	}

	return &SessionStatus{
		SessionID:     sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: mapSessionStatus(sess),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}, nil
}

func (c *stripeClient) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidSignature, err)
	}

	evt := &WebhookEvent{EventType: string(event.Type)}
	if evt.EventType != EventCheckoutCompleted {
		return evt, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: decode session payload: %v", entity.ErrGateway, err)
	}

	evt.SessionID = sess.ID
	evt.PaymentStatus = mapSessionStatus(&sess)
	return evt, nil
}

// mapSessionStatus folds Stripe's two status fields into the single local
// payment status. The gateway is the source of truth; paid wins over expiry.
func mapSessionStatus(sess *stripe.CheckoutSession) entity.PaymentStatus {
	switch {
	case sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return entity.PaymentStatusPaid
	case sess.Status == stripe.CheckoutSessionStatusExpired:
		return entity.PaymentStatusExpired
	default:
		return entity.PaymentStatusPending
	}
}

// Stripe amounts are integral minor units (cents for usd).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
