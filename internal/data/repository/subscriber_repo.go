package repository

import (
	"context"
	"fmt"

	"project-portal/internal/data/entity"
	"project-portal/pkg/database"

	"go.uber.org/zap"
)

type SubscriberRepository interface {
	FindActive(ctx context.Context) ([]*entity.Subscriber, error)
}

type subscriberRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubscriberRepository(db database.PgxIface, log *zap.Logger) SubscriberRepository {
	return &subscriberRepository{
		db:  db,
		log: log.With(zap.String("repository", "subscriber")),
	}
}

func (r *subscriberRepository) FindActive(ctx context.Context) ([]*entity.Subscriber, error) {
	query := `
		SELECT id, email, is_unsubscribed, created_at
		FROM subscribed_emails
		WHERE is_unsubscribed = false
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find subscribers", zap.Error(err))
		return nil, fmt.Errorf("find active subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*entity.Subscriber
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.IsUnsubscribed, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		subscribers = append(subscribers, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriber rows: %w", err)
	}

	return subscribers, nil
}
