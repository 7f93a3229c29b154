package entity

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch s {
	case "pending":
		return BookingStatusPending, nil
	case "confirmed":
		return BookingStatusConfirmed, nil
	case "completed":
		return BookingStatusCompleted, nil
	case "cancelled":
		return BookingStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
}

// EventBooking is an inbound shoot request. Status starts at pending; no
// endpoint transitions it yet (confirm/cancel is future work).
type EventBooking struct {
	ID              string        `bson:"_id" json:"id"`
	ClientName      string        `bson:"client_name" json:"client_name"`
	ClientEmail     string        `bson:"client_email" json:"client_email"`
	Phone           string        `bson:"phone" json:"phone"`
	EventDate       time.Time     `bson:"event_date" json:"event_date"`
	EventType       string        `bson:"event_type" json:"event_type"`
	Services        []string      `bson:"services" json:"services"`
	EstimatedHours  int           `bson:"estimated_hours" json:"estimated_hours"`
	SpecialRequests string        `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	BookingDate     time.Time     `bson:"booking_date" json:"booking_date"`
	Status          BookingStatus `bson:"status" json:"status"`
}

type EventBookingCreate struct {
	ClientName      string    `json:"client_name" binding:"required"`
	ClientEmail     string    `json:"client_email" binding:"required,email"`
	Phone           string    `json:"phone" binding:"required"`
	EventDate       time.Time `json:"event_date" binding:"required"`
	EventType       string    `json:"event_type" binding:"required"`
	Services        []string  `json:"services" binding:"required,min=1"`
	EstimatedHours  int       `json:"estimated_hours" binding:"required,min=1"`
	SpecialRequests string    `json:"special_requests"`
}
