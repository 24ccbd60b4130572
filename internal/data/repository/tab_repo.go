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

type TabRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tab, error)
	Create(ctx context.Context, tab *entity.Tab) error
	// Delete removes the tab and returns the deleted row, or nil when none existed
	Delete(ctx context.Context, id uuid.UUID) (*entity.Tab, error)
}

type tabRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTabRepository(db database.PgxIface, log *zap.Logger) TabRepository {
	return &tabRepository{
		db:  db,
		log: log.With(zap.String("repository", "tab")),
	}
}

func (r *tabRepository) FindAll(ctx context.Context) ([]*entity.Tab, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, type, created_at FROM tabs ORDER BY created_at`)
	if err != nil {
		r.log.Error("Failed to list tabs", zap.Error(err))
		return nil, fmt.Errorf("find tabs: %w", err)
	}
	defer rows.Close()

	tabs := []*entity.Tab{}
	for rows.Next() {
		var tab entity.Tab
		if err := rows.Scan(&tab.ID, &tab.Name, &tab.Type, &tab.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tab row: %w", err)
		}
		tabs = append(tabs, &tab)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tab rows: %w", err)
	}

	return tabs, nil
}

func (r *tabRepository) Create(ctx context.Context, tab *entity.Tab) error {
	query := `INSERT INTO tabs (id, name, type, created_at) VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query, tab.ID, tab.Name, tab.Type, tab.CreatedAt); err != nil {
		r.log.Error("Failed to create tab", zap.Error(err), zap.String("name", tab.Name))
		return fmt.Errorf("create tab %s: %w", tab.Name, err)
	}

	return nil
}

func (r *tabRepository) Delete(ctx context.Context, id uuid.UUID) (*entity.Tab, error) {
	query := `DELETE FROM tabs WHERE id = $1 RETURNING id, name, type, created_at`

	var tab entity.Tab
	err := r.db.QueryRow(ctx, query, id).Scan(&tab.ID, &tab.Name, &tab.Type, &tab.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to delete tab", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("delete tab %s: %w", id.String(), err)
	}

	return &tab, nil
}
