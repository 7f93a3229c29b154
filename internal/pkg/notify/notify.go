package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Notifier delivers internal notifications about new bookings and contact
// messages. Delivery is best-effort; callers log failures and move on.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type logNotifier struct {
	enabled bool
}

// NewLogNotifier returns a Notifier that only records the message in the
// application log. Real mail delivery is not wired up yet.
func NewLogNotifier(enabled bool) Notifier {
	return &logNotifier{enabled: enabled}
}

func (n *logNotifier) Send(_ context.Context, to, subject, body string) error {
	if !n.enabled {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("notification dispatched")
	logrus.Debugf("notification body: %s", body)
	return nil
}
