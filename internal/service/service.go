package service

import (
	"context"
	"io"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/payment"
)

// UploadMediaRequest carries one multipart upload through validation and
// persistence.
type UploadMediaRequest struct {
	File         io.Reader
	OriginalName string
	ContentType  string
	Title        string
	Description  string
	Category     string
}

type MediaService interface {
	Upload(ctx context.Context, req *UploadMediaRequest) (*entity.MediaItem, error)
	List(ctx context.Context, category string) ([]*entity.MediaItem, error)
	Delete(ctx context.Context, id string) error
}

// WorkshopService covers the catalog plus the registration and payment
// reconciliation flow.
type WorkshopService interface {
	CreateWorkshop(ctx context.Context, req *entity.WorkshopCreate) (*entity.Workshop, error)
	GetWorkshop(ctx context.Context, id string) (*entity.Workshop, error)
	ListWorkshops(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error)

	// Register creates a registration and a hosted checkout session for it.
	// baseURL is the public origin the success/cancel pages hang off.
	Register(ctx context.Context, workshopID string, req *entity.WorkshopRegistrationCreate, baseURL string) (*entity.CheckoutRedirect, error)

	// GetPaymentStatus is the poll reconciliation path.
	GetPaymentStatus(ctx context.Context, sessionID string) (*payment.SessionStatus, error)

	// HandleWebhook is the provider-initiated reconciliation path.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *entity.EventBookingCreate) (*entity.EventBooking, error)

	// ListBookings optionally filters by status; an empty status returns all.
	ListBookings(ctx context.Context, status string) ([]*entity.EventBooking, error)
}

type ContactService interface {
	SubmitMessage(ctx context.Context, req *entity.ContactMessageCreate) (*entity.ContactMessage, error)
}
