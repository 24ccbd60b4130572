package repository

import (
	"context"
	"fmt"

	"project-portal/internal/data/entity"
	"project-portal/pkg/database"

	"go.uber.org/zap"
)

type AttachmentRepository interface {
	FindByType(ctx context.Context, attachmentType string) ([]*entity.Attachment, error)
	DeleteByType(ctx context.Context, attachmentType string) (int64, error)
}

type attachmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAttachmentRepository(db database.PgxIface, log *zap.Logger) AttachmentRepository {
	return &attachmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "attachment")),
	}
}

func (r *attachmentRepository) FindByType(ctx context.Context, attachmentType string) ([]*entity.Attachment, error) {
	query := `SELECT id, type, url, created_at FROM attachments WHERE type = $1`

	rows, err := r.db.Query(ctx, query, attachmentType)
	if err != nil {
		r.log.Error("Failed to find attachments", zap.Error(err), zap.String("type", attachmentType))
		return nil, fmt.Errorf("find attachments of type %s: %w", attachmentType, err)
	}
	defer rows.Close()

	var attachments []*entity.Attachment
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(&a.ID, &a.Type, &a.URL, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attachment row: %w", err)
		}
		attachments = append(attachments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attachment rows: %w", err)
	}

	return attachments, nil
}

func (r *attachmentRepository) DeleteByType(ctx context.Context, attachmentType string) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM attachments WHERE type = $1`, attachmentType)
	if err != nil {
		r.log.Error("Failed to delete attachments", zap.Error(err), zap.String("type", attachmentType))
		return 0, fmt.Errorf("delete attachments of type %s: %w", attachmentType, err)
	}

	return result.RowsAffected(), nil
}
