package entity

import (
	"time"
)

type Workshop struct {
	ID              string    `bson:"_id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	Price           float64   `bson:"price" json:"price"`
	DurationDays    int       `bson:"duration_days" json:"duration_days"`
	MaxParticipants int       `bson:"max_participants" json:"max_participants"`
	StartDate       time.Time `bson:"start_date" json:"start_date"`
	EndDate         time.Time `bson:"end_date" json:"end_date"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

type WorkshopCreate struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Price           float64   `json:"price" binding:"min=0"`
	DurationDays    int       `json:"duration_days" binding:"required,min=1"`
	MaxParticipants int       `json:"max_participants" binding:"required,min=1"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
}

type WorkshopRegistration struct {
	ID               string        `bson:"_id" json:"id"`
	WorkshopID       string        `bson:"workshop_id" json:"workshop_id"`
	ParticipantName  string        `bson:"participant_name" json:"participant_name"`
	ParticipantEmail string        `bson:"participant_email" json:"participant_email"`
	Phone            string        `bson:"phone,omitempty" json:"phone,omitempty"`
	PaymentSessionID string        `bson:"payment_session_id,omitempty" json:"payment_session_id,omitempty"`
	PaymentStatus    PaymentStatus `bson:"payment_status" json:"payment_status"`
	RegistrationDate time.Time     `bson:"registration_date" json:"registration_date"`
}

type WorkshopRegistrationCreate struct {
	ParticipantName  string `json:"participant_name" binding:"required"`
	ParticipantEmail string `json:"participant_email" binding:"required,email"`
	Phone            string `json:"phone"`
}

// RegistrationPatch is the full set of registration fields that may change
// after creation. Nil fields are left untouched.
type RegistrationPatch struct {
	PaymentSessionID *string
	PaymentStatus    *PaymentStatus
}

// CheckoutRedirect is returned to the client after a registration so it can
// hand the browser off to the hosted payment page.
type CheckoutRedirect struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
