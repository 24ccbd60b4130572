package wire

import (
	"project-portal/internal/adaptor"
	"project-portal/internal/data/repository"
	"project-portal/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	resetHandler *adaptor.ResetHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/user/login", authHandler.UserLogin)
	r.Post("/api/user/signup", authHandler.Signup)

	// Password reset
	r.Post("/api/forgot-password", resetHandler.ForgotPassword)
	r.Post("/api/verify-otp", resetHandler.VerifyOTP)
	r.Patch("/api/new-password-otp-verified", resetHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
