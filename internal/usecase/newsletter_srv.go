package usecase

import (
	"context"

	"project-portal/internal/data/repository"
	"project-portal/internal/dto/request"
	"project-portal/internal/dto/response"

	"go.uber.org/zap"
)

type NewsletterService interface {
	SendLatestUpdates(ctx context.Context, req *request.LatestUpdatesRequest) (*response.BroadcastResponse, error)
}

type newsletterService struct {
	subscribers repository.SubscriberRepository
	notifier    Notifier
	log         *zap.Logger
}

func NewNewsletterService(subscribers repository.SubscriberRepository, notifier Notifier, log *zap.Logger) NewsletterService {
	return &newsletterService{
		subscribers: subscribers,
		notifier:    notifier,
		log:         log.With(zap.String("service", "newsletter")),
	}
}

// SendLatestUpdates mails every active subscriber. Failures do not stop the
// loop; they are reported together as one KindDelivery error.
func (s *newsletterService) SendLatestUpdates(ctx context.Context, req *request.LatestUpdatesRequest) (*response.BroadcastResponse, error) {
	if req.Title == "" || req.Message == "" {
		return nil, validationFailed("All fields are required")
	}

	subscribers, err := s.subscribers.FindActive(ctx)
	if err != nil {
		return nil, internal("Failed to get subscribers", err)
	}
	if len(subscribers) == 0 {
		return nil, notFound("No subscribed emails found")
	}

	resp := &response.BroadcastResponse{}
	var lastErr error
	for _, sub := range subscribers {
		if err := s.notifier.SendLatestUpdatesEmail(ctx, sub.Email, req.Title, req.Message); err != nil {
			resp.Failed++
			lastErr = err
			s.log.Warn("Failed to send latest updates", zap.Error(err), zap.String("subscriber_id", sub.ID.String()))
			continue
		}
		resp.Sent++
	}

	if resp.Failed > 0 {
		return resp, newError(KindDelivery, "Failed to send email", lastErr)
	}

	s.log.Info("Latest updates sent", zap.Int("sent", resp.Sent))
	return resp, nil
}
