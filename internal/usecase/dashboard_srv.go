package usecase

import (
	"context"
	"time"

	"project-portal/internal/data/repository"
	"project-portal/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recentWindow = 7 * 24 * time.Hour

type DashboardService interface {
	AdminDashboard(ctx context.Context) (*response.DashboardResponse, error)
	UserDashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error)
}

type dashboardService struct {
	projects repository.ProjectRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewDashboardService(projects repository.ProjectRepository, log *zap.Logger) DashboardService {
	return &dashboardService{
		projects: projects,
		log:      log.With(zap.String("service", "dashboard")),
		now:      time.Now,
	}
}

func (s *dashboardService) AdminDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	resp, err := s.summary(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, err
	}

	since := s.now().Add(-recentWindow)
	recent, err := s.projects.Find(ctx, repository.ProjectFilter{CreatedSince: &since})
	if err != nil {
		return nil, internal("Failed to get recent projects", err)
	}
	resp.RecentProjects = response.ProjectsToResponse(recent)

	return resp, nil
}

func (s *dashboardService) UserDashboard(ctx context.Context, userID uuid.UUID) (*response.DashboardResponse, error) {
	return s.summary(ctx, repository.ProjectFilter{UserID: &userID})
}

// summary counts ongoing and completed projects within scope and lists the
// ongoing ones
func (s *dashboardService) summary(ctx context.Context, scope repository.ProjectFilter) (*response.DashboardResponse, error) {
	ongoing, completed := false, true

	ongoingScope := scope
	ongoingScope.Completed = &ongoing
	completedScope := scope
	completedScope.Completed = &completed

	ongoingCount, err := s.projects.Count(ctx, ongoingScope)
	if err != nil {
		return nil, internal("Failed to count projects", err)
	}

	completedCount, err := s.projects.Count(ctx, completedScope)
	if err != nil {
		return nil, internal("Failed to count projects", err)
	}

	working, err := s.projects.Find(ctx, ongoingScope)
	if err != nil {
		return nil, internal("Failed to get projects", err)
	}

	return &response.DashboardResponse{
		OngoingProjectCount:   ongoingCount,
		CompletedProjectCount: completedCount,
		WorkingProjects:       response.ProjectsToResponse(working),
	}, nil
}
