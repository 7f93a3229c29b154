package entity

import "errors"

var (
	// Media errors
	ErrMediaNotFound        = errors.New("media item not found")
	ErrUnsupportedMediaType = errors.New("only image and video files are allowed")

	// Workshop errors
	ErrWorkshopNotFound     = errors.New("workshop not found")
	ErrRegistrationNotFound = errors.New("registration not found")

	// Payment errors
	ErrTransactionNotFound = errors.New("payment transaction not found")
	ErrInvalidSignature    = errors.New("webhook signature verification failed")
	ErrGateway             = errors.New("payment gateway error")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
