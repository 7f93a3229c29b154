package transport

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	booking := &stubBookingService{
		createFn: func(_ context.Context, req *entity.EventBookingCreate) (*entity.EventBooking, error) {
			return &entity.EventBooking{
				ID:          "b-1",
				ClientName:  req.ClientName,
				ClientEmail: req.ClientEmail,
				EventType:   req.EventType,
				Services:    req.Services,
				Status:      entity.BookingStatusPending,
				BookingDate: time.Now().UTC(),
			}, nil
		},
	}
	router := newTestRouter(stubServices{booking: booking})

	body := `{
		"client_name": "Ann",
		"client_email": "ann@example.com",
		"phone": "555-0101",
		"event_date": "2026-10-01T10:00:00Z",
		"event_type": "wedding",
		"services": ["photography"],
		"estimated_hours": 6
	}`
	rec := performJSON(t, router, http.MethodPost, "/api/bookings", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"b-1"`)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestCreateBookingRequiresServices(t *testing.T) {
	called := false
	booking := &stubBookingService{
		createFn: func(_ context.Context, _ *entity.EventBookingCreate) (*entity.EventBooking, error) {
			called = true
			return nil, nil
		},
	}
	router := newTestRouter(stubServices{booking: booking})

	body := `{
		"client_name": "Ann",
		"client_email": "ann@example.com",
		"phone": "555-0101",
		"event_date": "2026-10-01T10:00:00Z",
		"event_type": "wedding",
		"services": [],
		"estimated_hours": 6
	}`
	rec := performJSON(t, router, http.MethodPost, "/api/bookings", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestListBookingsEmpty(t *testing.T) {
	booking := &stubBookingService{
		listFn: func(_ context.Context, _ string) ([]*entity.EventBooking, error) {
			return nil, nil
		},
	}
	router := newTestRouter(stubServices{booking: booking})

	rec := performJSON(t, router, http.MethodGet, "/api/bookings", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestListBookingsPassesStatusFilter(t *testing.T) {
	var gotStatus string
	booking := &stubBookingService{
		listFn: func(_ context.Context, status string) ([]*entity.EventBooking, error) {
			gotStatus = status
			return nil, nil
		},
	}
	router := newTestRouter(stubServices{booking: booking})

	rec := performJSON(t, router, http.MethodGet, "/api/bookings?status=confirmed", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "confirmed", gotStatus)
}

func TestListBookingsRejectsUnknownStatus(t *testing.T) {
	booking := &stubBookingService{
		listFn: func(_ context.Context, _ string) ([]*entity.EventBooking, error) {
			return nil, entity.ErrInvalidInput
		},
	}
	router := newTestRouter(stubServices{booking: booking})

	rec := performJSON(t, router, http.MethodGet, "/api/bookings?status=archived", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
