package service

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/creativeclicks/studio-backend/internal/entity"
	"github.com/creativeclicks/studio-backend/internal/pkg/payment"
)

// In-memory doubles for the repositories and the gateway. State is asserted
// directly, which keeps the reconciliation tests honest about idempotence.

type fakeWorkshopRepo struct {
	workshops map[string]*entity.Workshop
}

func newFakeWorkshopRepo() *fakeWorkshopRepo {
	return &fakeWorkshopRepo{workshops: make(map[string]*entity.Workshop)}
}

func (r *fakeWorkshopRepo) Create(_ context.Context, w *entity.Workshop) error {
	r.workshops[w.ID] = w
	return nil
}

func (r *fakeWorkshopRepo) GetByID(_ context.Context, id string) (*entity.Workshop, error) {
	w, ok := r.workshops[id]
	if !ok {
		return nil, entity.ErrWorkshopNotFound
	}
	return w, nil
}

func (r *fakeWorkshopRepo) GetAll(_ context.Context, activeOnly bool) ([]*entity.Workshop, error) {
	var out []*entity.Workshop
	for _, w := range r.workshops {
		if activeOnly && !w.IsActive {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

type fakeRegistrationRepo struct {
	registrations map[string]*entity.WorkshopRegistration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[string]*entity.WorkshopRegistration)}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg *entity.WorkshopRegistration) error {
	cp := *reg
	r.registrations[reg.ID] = &cp
	return nil
}

func (r *fakeRegistrationRepo) GetByID(_ context.Context, id string) (*entity.WorkshopRegistration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, entity.ErrRegistrationNotFound
	}
	return reg, nil
}

func (r *fakeRegistrationRepo) GetBySessionID(_ context.Context, sessionID string) (*entity.WorkshopRegistration, error) {
	for _, reg := range r.registrations {
		if reg.PaymentSessionID == sessionID {
			return reg, nil
		}
	}
	return nil, entity.ErrRegistrationNotFound
}

func (r *fakeRegistrationRepo) Update(_ context.Context, id string, patch entity.RegistrationPatch) error {
	reg, ok := r.registrations[id]
	if !ok {
		return entity.ErrRegistrationNotFound
	}
	applyRegistrationPatch(reg, patch)
	return nil
}

func (r *fakeRegistrationRepo) UpdateBySessionID(_ context.Context, sessionID string, patch entity.RegistrationPatch) error {
	for _, reg := range r.registrations {
		if reg.PaymentSessionID == sessionID {
			applyRegistrationPatch(reg, patch)
			return nil
		}
	}
	return entity.ErrRegistrationNotFound
}

func applyRegistrationPatch(reg *entity.WorkshopRegistration, patch entity.RegistrationPatch) {
	if patch.PaymentSessionID != nil {
		reg.PaymentSessionID = *patch.PaymentSessionID
	}
	if patch.PaymentStatus != nil {
		reg.PaymentStatus = *patch.PaymentStatus
	}
}

type fakeTransactionRepo struct {
	bySession map[string]*entity.PaymentTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{bySession: make(map[string]*entity.PaymentTransaction)}
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.PaymentTransaction) error {
	cp := *tx
	r.bySession[tx.SessionID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetBySessionID(_ context.Context, sessionID string) (*entity.PaymentTransaction, error) {
	tx, ok := r.bySession[sessionID]
	if !ok {
		return nil, entity.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *fakeTransactionRepo) UpdateStatusBySessionID(_ context.Context, sessionID string, patch entity.TransactionStatusPatch) error {
	tx, ok := r.bySession[sessionID]
	if !ok {
		return entity.ErrTransactionNotFound
	}
	tx.PaymentStatus = patch.PaymentStatus
	tx.UpdatedAt = patch.UpdatedAt
	if patch.PaymentID != "" {
		tx.PaymentID = patch.PaymentID
	}
	return nil
}

type fakeGateway struct {
	nextSessionID string
	createErr     error
	created       []*payment.SessionRequest

	status    *payment.SessionStatus
	statusErr error

	webhookEvent *payment.WebhookEvent
	webhookErr   error
}

func (g *fakeGateway) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created = append(g.created, req)
	return &payment.Session{
		SessionID: g.nextSessionID,
		URL:       "https://checkout.example/pay/" + g.nextSessionID,
	}, nil
}

func (g *fakeGateway) GetSessionStatus(_ context.Context, sessionID string) (*payment.SessionStatus, error) {
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	status := *g.status
	status.SessionID = sessionID
	return &status, nil
}

func (g *fakeGateway) VerifyWebhook(_ []byte, _ string) (*payment.WebhookEvent, error) {
	if g.webhookErr != nil {
		return nil, g.webhookErr
	}
	return g.webhookEvent, nil
}

type fakeMediaRepo struct {
	items map[string]*entity.MediaItem
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: make(map[string]*entity.MediaItem)}
}

func (r *fakeMediaRepo) Create(_ context.Context, item *entity.MediaItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeMediaRepo) GetByID(_ context.Context, id string) (*entity.MediaItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, entity.ErrMediaNotFound
	}
	return item, nil
}

func (r *fakeMediaRepo) GetAll(_ context.Context, category entity.MediaCategory) ([]*entity.MediaItem, error) {
	var out []*entity.MediaItem
	for _, item := range r.items {
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeMediaRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return entity.ErrMediaNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeFileStorage struct {
	files map[string][]byte
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{files: make(map[string][]byte)}
}

func (s *fakeFileStorage) Save(path string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	s.files[path] = b
	return nil
}

func (s *fakeFileStorage) Get(path string) (io.ReadCloser, error) {
	b, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *fakeFileStorage) Delete(path string) error {
	if _, ok := s.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(s.files, path)
	return nil
}

func (s *fakeFileStorage) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}

type fakeBookingRepo struct {
	bookings []*entity.EventBooking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.EventBooking) error {
	cp := *b
	r.bookings = append(r.bookings, &cp)
	return nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context, status entity.BookingStatus) ([]*entity.EventBooking, error) {
	var out []*entity.EventBooking
	for _, b := range r.bookings {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type fakeContactRepo struct {
	messages []*entity.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	cp := *m
	r.messages = append(r.messages, &cp)
	return nil
}

type sentNotification struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	sendErr error
	sent    []sentNotification
}

func (n *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.sent = append(n.sent, sentNotification{to: to, subject: subject, body: body})
	return nil
}
