package database

import (
	"context"

	"github.com/creativeclicks/studio-backend/internal/entity"
)

type MediaRepository interface {
	Create(ctx context.Context, item *entity.MediaItem) error
	GetByID(ctx context.Context, id string) (*entity.MediaItem, error)
	GetAll(ctx context.Context, category entity.MediaCategory) ([]*entity.MediaItem, error)
	Delete(ctx context.Context, id string) error
}

type WorkshopRepository interface {
	Create(ctx context.Context, workshop *entity.Workshop) error
	GetByID(ctx context.Context, id string) (*entity.Workshop, error)
	GetAll(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error)
}

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.WorkshopRegistration) error
	GetByID(ctx context.Context, id string) (*entity.WorkshopRegistration, error)
	GetBySessionID(ctx context.Context, sessionID string) (*entity.WorkshopRegistration, error)
	Update(ctx context.Context, id string, patch entity.RegistrationPatch) error
	UpdateBySessionID(ctx context.Context, sessionID string, patch entity.RegistrationPatch) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.PaymentTransaction) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error)
	UpdateStatusBySessionID(ctx context.Context, sessionID string, patch entity.TransactionStatusPatch) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.EventBooking) error
	GetAll(ctx context.Context, status entity.BookingStatus) ([]*entity.EventBooking, error)
}

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
