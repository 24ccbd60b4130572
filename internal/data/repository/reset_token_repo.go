package repository

import (
	"context"
	"errors"
	"fmt"

	"project-portal/internal/data/entity"
	"project-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ResetTokenRepository stores one-time password reset codes
type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.ResetToken) error
	FindByToken(ctx context.Context, token string) (*entity.ResetToken, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByContact(ctx context.Context, contact entity.Contact) error
}

type resetTokenRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetTokenRepository(db database.PgxIface, log *zap.Logger) ResetTokenRepository {
	return &resetTokenRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset_token")),
	}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *entity.ResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, email, phone_number, token, expires, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		token.ID,
		token.Email,
		token.PhoneNumber,
		token.Token,
		token.Expires,
		token.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create reset token",
			zap.Error(err),
			zap.String("token_id", token.ID.String()),
		)
		return fmt.Errorf("create reset token %s: %w", token.ID.String(), err)
	}

	return nil
}

// FindByToken returns the newest row holding the code, expired or not.
// Expiry is judged by the caller.
func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.ResetToken, error) {
	query := `
		SELECT id, email, phone_number, token, expires, created_at
		FROM password_reset_tokens
		WHERE token = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var t entity.ResetToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&t.ID,
		&t.Email,
		&t.PhoneNumber,
		&t.Token,
		&t.Expires,
		&t.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reset token", zap.Error(err))
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	return &t, nil
}

func (r *resetTokenRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM password_reset_tokens WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reset token",
			zap.Error(err),
			zap.String("token_id", id.String()),
		)
		return fmt.Errorf("delete reset token %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reset token %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

// DeleteByContact drops every token previously issued to contact
func (r *resetTokenRepository) DeleteByContact(ctx context.Context, contact entity.Contact) error {
	column := "email"
	if contact.IsPhone() {
		column = "phone_number"
	}
	query := fmt.Sprintf(`DELETE FROM password_reset_tokens WHERE %s = $1`, column)

	if _, err := r.db.Exec(ctx, query, contact.Value); err != nil {
		r.log.Error("Failed to delete reset tokens for contact",
			zap.Error(err),
			zap.String("contact_kind", contact.Kind.String()),
		)
		return fmt.Errorf("delete reset tokens by %s: %w", column, err)
	}

	return nil
}
