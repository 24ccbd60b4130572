package wire

import (
	"project-portal/internal/adaptor"
	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireTab configures the attachment tab routes. Any signed-in role may list
// tabs; only admins and employees change them.
func wireTab(
	r chi.Router,
	tabHandler *adaptor.TabHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(middleware.AuthSession(repo.Session, log)).Route("/api/tabs", func(r chi.Router) {
		r.Get("/", tabHandler.List)

		r.With(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleEmployee)).Group(func(r chi.Router) {
			r.Post("/", tabHandler.Create)
			r.Delete("/{id}", tabHandler.Delete)
		})
	})
}
