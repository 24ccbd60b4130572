package usecase

import (
	"context"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/internal/dto/request"
	"project-portal/internal/dto/response"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TabService interface {
	ListTabs(ctx context.Context) ([]response.TabResponse, error)
	CreateTab(ctx context.Context, req *request.CreateTabRequest) (*response.TabResponse, error)
	DeleteTab(ctx context.Context, id string) (*response.TabDeletedResponse, error)
}

type tabService struct {
	tabs        repository.TabRepository
	attachments repository.AttachmentRepository
	storage     FileStorage
	log         *zap.Logger
}

func NewTabService(repo *repository.Repository, storage FileStorage, log *zap.Logger) TabService {
	return &tabService{
		tabs:        repo.Tab,
		attachments: repo.Attachment,
		storage:     storage,
		log:         log.With(zap.String("service", "tab")),
	}
}

func (s *tabService) ListTabs(ctx context.Context) ([]response.TabResponse, error) {
	tabs, err := s.tabs.FindAll(ctx)
	if err != nil {
		return nil, internal("Failed to get tabs", err)
	}
	return response.TabsToResponse(tabs), nil
}

func (s *tabService) CreateTab(ctx context.Context, req *request.CreateTabRequest) (*response.TabResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	tab := &entity.Tab{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Type: req.Type,
	}

	if err := s.tabs.Create(ctx, tab); err != nil {
		return nil, internal("Failed to create tab", err)
	}

	resp := response.TabToResponse(tab)
	return &resp, nil
}

// DeleteTab removes the tab, then every file attached under its name, then
// the attachment rows. File errors are logged and counted.
func (s *tabService) DeleteTab(ctx context.Context, id string) (*response.TabDeletedResponse, error) {
	tabID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationFailed("Invalid tab ID")
	}

	tab, err := s.tabs.Delete(ctx, tabID)
	if err != nil {
		return nil, internal("Failed to delete tab", err)
	}
	if tab == nil {
		return nil, notFound("Tab not found")
	}

	attachments, err := s.attachments.FindByType(ctx, tab.Name)
	if err != nil {
		return nil, internal("Failed to get attachments", err)
	}

	failed := 0
	for _, a := range attachments {
		if err := s.storage.Delete(ctx, a.URL); err != nil {
			failed++
			s.log.Warn("Failed to delete attachment file",
				zap.Error(err),
				zap.String("attachment_id", a.ID.String()),
			)
		}
	}

	deleted, err := s.attachments.DeleteByType(ctx, tab.Name)
	if err != nil {
		return nil, internal("Failed to delete attachments", err)
	}

	s.log.Info("Tab deleted",
		zap.String("tab_id", tab.ID.String()),
		zap.Int64("attachments_deleted", deleted),
		zap.Int("files_failed", failed),
	)

	return &response.TabDeletedResponse{
		Tab:                response.TabToResponse(tab),
		AttachmentsDeleted: deleted,
		FilesFailed:        failed,
	}, nil
}
