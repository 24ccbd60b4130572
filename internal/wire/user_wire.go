package wire

import (
	"project-portal/internal/adaptor"
	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures end-user self service routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authHandler *adaptor.AuthHandler,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.RequireRole(log, entity.RoleUser),
	).Route("/api/user", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.User)
		r.Get("/info", userHandler.GetInfo)
		r.Patch("/info", userHandler.EditInfo)
		r.Get("/email/{email}", userHandler.GetInfoByEmail)
		r.Patch("/password", authHandler.ChangePassword)
	})
}

// wireAdmin configures user management routes for admins
func wireAdmin(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	dashboardHandler *adaptor.DashboardHandler,
	newsletterHandler *adaptor.NewsletterHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin", func(r chi.Router) {
		r.Get("/dashboard", dashboardHandler.Admin)
		r.Post("/send-latest-updates", newsletterHandler.SendLatestUpdates)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers) // GET /api/admin/users?page=1&limit=10
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Patch("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
			r.Post("/{id}/credits", userHandler.AddCredits)
		})
	})
}
