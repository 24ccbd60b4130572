package repository

import (
	"errors"

	"project-portal/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is wrapped by writes that matched no row
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Admin      IdentityRepository
	Employee   IdentityRepository
	User       UserRepository
	ResetToken ResetTokenRepository
	Session    SessionRepository
	Project    ProjectRepository
	Tab        TabRepository
	Attachment AttachmentRepository
	Subscriber SubscriberRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:      NewAdminRepository(db, log),
		Employee:   NewEmployeeRepository(db, log),
		User:       NewUserRepository(db, log),
		ResetToken: NewResetTokenRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Project:    NewProjectRepository(db, log),
		Tab:        NewTabRepository(db, log),
		Attachment: NewAttachmentRepository(db, log),
		Subscriber: NewSubscriberRepository(db, log),
	}
}
