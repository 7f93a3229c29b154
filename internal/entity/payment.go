package entity

import (
	"time"
)

// PaymentStatus values are produced internally from the gateway mapping and
// never parsed from client input.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
	PaymentStatusExpired PaymentStatus = "expired"
)

type PaymentType string

const (
	PaymentTypeWorkshop       PaymentType = "workshop"
	PaymentTypeBookingDeposit PaymentType = "booking_deposit"
)

// PaymentTransaction is the local bookkeeping row for one checkout session.
// Both reconciliation paths update it in place; it is never deleted.
type PaymentTransaction struct {
	ID            string            `bson:"_id" json:"id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	PaymentID     string            `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	PaymentType   PaymentType       `bson:"payment_type" json:"payment_type"`
	ReferenceID   string            `bson:"reference_id" json:"reference_id"`
	PaymentStatus PaymentStatus     `bson:"payment_status" json:"payment_status"`
	Metadata      map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}

// TransactionStatusPatch carries the fields a reconciliation pass is allowed
// to overwrite on a transaction.
type TransactionStatusPatch struct {
	PaymentStatus PaymentStatus
	PaymentID     string
	UpdatedAt     time.Time
}
