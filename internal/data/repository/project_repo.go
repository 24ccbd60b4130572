package repository

import (
	"context"
	"fmt"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProjectFilter narrows project queries. Nil fields are ignored.
type ProjectFilter struct {
	UserID       *uuid.UUID
	Completed    *bool
	CreatedSince *time.Time
}

type ProjectRepository interface {
	Find(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type projectRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProjectRepository(db database.PgxIface, log *zap.Logger) ProjectRepository {
	return &projectRepository{
		db:  db,
		log: log.With(zap.String("repository", "project")),
	}
}

// where renders filter as a WHERE clause. Progress 100 means completed.
func (f ProjectFilter) where() (string, []any) {
	clause := `WHERE ($1::uuid IS NULL OR user_id = $1)
		  AND ($2::boolean IS NULL OR (progress = 100) = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)`
	return clause, []any{f.UserID, f.Completed, f.CreatedSince}
}

func (r *projectRepository) Find(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error) {
	where, args := filter.where()
	query := `
		SELECT id, user_id, project_name, project_image_link, project_start_date,
		       project_end_date, status, identifier, progress, created_at
		FROM projects
		` + where + `
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find projects", zap.Error(err))
		return nil, fmt.Errorf("find projects: %w", err)
	}
	defer rows.Close()

	projects := []*entity.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			r.log.Error("Failed to scan project row", zap.Error(err))
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project rows: %w", err)
	}

	return projects, nil
}

func (r *projectRepository) Count(ctx context.Context, filter ProjectFilter) (int64, error) {
	where, args := filter.where()

	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects `+where, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count projects", zap.Error(err))
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return count, nil
}

func (r *projectRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM projects WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to delete user projects",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("delete projects of user %s: %w", userID.String(), err)
	}

	return result.RowsAffected(), nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ProjectName,
		&p.ProjectImageLink,
		&p.ProjectStartDate,
		&p.ProjectEndDate,
		&p.Status,
		&p.Identifier,
		&p.Progress,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
