package transport

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/creativeclicks/studio-backend/config"
	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/payment"
	"github.com/creativeclicks/studio-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler tests stub the service interfaces with function fields so each test
// scripts exactly the behavior it needs and can capture the arguments the
// handler passed down.

type stubMediaService struct {
	uploadFn func(ctx context.Context, req *service.UploadMediaRequest) (*entity.MediaItem, error)
	listFn   func(ctx context.Context, category string) ([]*entity.MediaItem, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubMediaService) Upload(ctx context.Context, req *service.UploadMediaRequest) (*entity.MediaItem, error) {
	return s.uploadFn(ctx, req)
}

func (s *stubMediaService) List(ctx context.Context, category string) ([]*entity.MediaItem, error) {
	return s.listFn(ctx, category)
}

func (s *stubMediaService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubWorkshopService struct {
	createFn   func(ctx context.Context, req *entity.WorkshopCreate) (*entity.Workshop, error)
	getFn      func(ctx context.Context, id string) (*entity.Workshop, error)
	listFn     func(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error)
	registerFn func(ctx context.Context, workshopID string, req *entity.WorkshopRegistrationCreate, baseURL string) (*entity.CheckoutRedirect, error)
	statusFn   func(ctx context.Context, sessionID string) (*payment.SessionStatus, error)
	webhookFn  func(ctx context.Context, payload []byte, signature string) error
}

func (s *stubWorkshopService) CreateWorkshop(ctx context.Context, req *entity.WorkshopCreate) (*entity.Workshop, error) {
	return s.createFn(ctx, req)
}

func (s *stubWorkshopService) GetWorkshop(ctx context.Context, id string) (*entity.Workshop, error) {
	return s.getFn(ctx, id)
}

func (s *stubWorkshopService) ListWorkshops(ctx context.Context, activeOnly bool) ([]*entity.Workshop, error) {
	return s.listFn(ctx, activeOnly)
}

func (s *stubWorkshopService) Register(ctx context.Context, workshopID string, req *entity.WorkshopRegistrationCreate, baseURL string) (*entity.CheckoutRedirect, error) {
	return s.registerFn(ctx, workshopID, req, baseURL)
}

func (s *stubWorkshopService) GetPaymentStatus(ctx context.Context, sessionID string) (*payment.SessionStatus, error) {
	return s.statusFn(ctx, sessionID)
}

func (s *stubWorkshopService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return s.webhookFn(ctx, payload, signature)
}

type stubBookingService struct {
	createFn func(ctx context.Context, req *entity.EventBookingCreate) (*entity.EventBooking, error)
	listFn   func(ctx context.Context, status string) ([]*entity.EventBooking, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *entity.EventBookingCreate) (*entity.EventBooking, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookingService) ListBookings(ctx context.Context, status string) ([]*entity.EventBooking, error) {
	return s.listFn(ctx, status)
}

type stubContactService struct {
	submitFn func(ctx context.Context, req *entity.ContactMessageCreate) (*entity.ContactMessage, error)
}

func (s *stubContactService) SubmitMessage(ctx context.Context, req *entity.ContactMessageCreate) (*entity.ContactMessage, error) {
	return s.submitFn(ctx, req)
}

type stubServices struct {
	media    service.MediaService
	workshop service.WorkshopService
	booking  service.BookingService
	contact  service.ContactService
}

func newTestRouter(stubs stubServices) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Cors.Origins = "*"
	cfg.Media.UploadDir = os.TempDir()
	cfg.Media.URLPrefix = "/uploads"

	if stubs.media == nil {
		stubs.media = &stubMediaService{}
	}
	if stubs.workshop == nil {
		stubs.workshop = &stubWorkshopService{}
	}
	if stubs.booking == nil {
		stubs.booking = &stubBookingService{}
	}
	if stubs.contact == nil {
		stubs.contact = &stubContactService{}
	}

	return InitRoutes(
		cfg,
		NewMediaHandler(stubs.media),
		NewWorkshopHandler(stubs.workshop),
		NewPaymentHandler(stubs.workshop),
		NewBookingHandler(stubs.booking),
		NewContactHandler(stubs.contact),
	)
}

func performRequest(t *testing.T, router *gin.Engine, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func performJSON(t *testing.T, router *gin.Engine, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	return performRequest(t, router, method, target, body, map[string]string{"Content-Type": "application/json"})
}
