// Package notify delivers one-time codes and account emails over SendGrid
// (email) and the Twilio REST API (SMS).
package notify

import (
	"context"
	"errors"
	"time"

	"project-portal/pkg/metrics"
	"project-portal/pkg/utils"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when a channel has no credentials.
var ErrNotConfigured = errors.New("notification channel not configured")

type Notifier struct {
	email      *emailClient
	sms        *smsClient
	attempts   uint
	retryDelay time.Duration
	log        *zap.Logger
}

func NewNotifier(cfg *utils.Config, log *zap.Logger) *Notifier {
	attempts := cfg.Notify.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}

	return &Notifier{
		email:      newEmailClient(cfg.SendGrid),
		sms:        newSMSClient(cfg.Twilio, resty.New().SetTimeout(10*time.Second)),
		attempts:   attempts,
		retryDelay: cfg.Notify.RetryDelay,
		log:        log.With(zap.String("component", "notifier")),
	}
}

func (n *Notifier) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	msg := passwordResetEmail(email, token)
	return n.deliver(ctx, "email", func() error { return n.email.send(ctx, msg) })
}

func (n *Notifier) SendPasswordResetSMS(ctx context.Context, phone, token string) error {
	body := passwordResetSMS(token)
	return n.deliver(ctx, "sms", func() error { return n.sms.send(ctx, phone, body) })
}

func (n *Notifier) SendUserCreatedEmail(ctx context.Context, email, password string) error {
	msg := userCreatedEmail(email, password)
	return n.deliver(ctx, "email", func() error { return n.email.send(ctx, msg) })
}

func (n *Notifier) SendLatestUpdatesEmail(ctx context.Context, email, title, message string) error {
	msg := latestUpdatesEmail(email, title, message)
	return n.deliver(ctx, "email", func() error { return n.email.send(ctx, msg) })
}

func (n *Notifier) deliver(ctx context.Context, channel string, send func() error) error {
	err := retry.Do(
		send,
		retry.Attempts(n.attempts),
		retry.Delay(n.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrNotConfigured)
		}),
		retry.OnRetry(func(attempt uint, err error) {
			n.log.Warn("Retrying notification",
				zap.String("channel", channel),
				zap.Uint("attempt", attempt+1),
				zap.Error(err),
			)
		}),
		retry.Context(ctx),
	)

	if err != nil {
		metrics.NotificationsSent.WithLabelValues(channel, "failed").Inc()
		n.log.Error("Notification delivery failed", zap.String("channel", channel), zap.Error(err))
		return err
	}

	metrics.NotificationsSent.WithLabelValues(channel, "sent").Inc()
	return nil
}
