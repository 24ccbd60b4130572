package usecase

import (
	"context"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Find(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	args := m.Called(ctx, filter)
	projects, _ := args.Get(0).([]*entity.Project)
	return projects, args.Error(1)
}

func (m *mockProjectRepo) Count(ctx context.Context, filter repository.ProjectFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProjectRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTabRepo struct {
	mock.Mock
}

func (m *mockTabRepo) FindAll(ctx context.Context) ([]*entity.Tab, error) {
	args := m.Called(ctx)
	tabs, _ := args.Get(0).([]*entity.Tab)
	return tabs, args.Error(1)
}

func (m *mockTabRepo) Create(ctx context.Context, tab *entity.Tab) error {
	return m.Called(ctx, tab).Error(0)
}

func (m *mockTabRepo) Delete(ctx context.Context, id uuid.UUID) (*entity.Tab, error) {
	args := m.Called(ctx, id)
	tab, _ := args.Get(0).(*entity.Tab)
	return tab, args.Error(1)
}

type mockAttachmentRepo struct {
	mock.Mock
}

func (m *mockAttachmentRepo) FindByType(ctx context.Context, attachmentType string) ([]*entity.Attachment, error) {
	args := m.Called(ctx, attachmentType)
	attachments, _ := args.Get(0).([]*entity.Attachment)
	return attachments, args.Error(1)
}

func (m *mockAttachmentRepo) DeleteByType(ctx context.Context, attachmentType string) (int64, error) {
	args := m.Called(ctx, attachmentType)
	return args.Get(0).(int64), args.Error(1)
}

type mockSubscriberRepo struct {
	mock.Mock
}

func (m *mockSubscriberRepo) FindActive(ctx context.Context) ([]*entity.Subscriber, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]*entity.Subscriber)
	return subs, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Delete(ctx context.Context, fileURL string) error {
	return m.Called(ctx, fileURL).Error(0)
}
