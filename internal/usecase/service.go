package usecase

import (
	"project-portal/internal/data/repository"
	"project-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Resolver   IdentityResolver
	Auth       AuthService
	Reset      ResetService
	User       UserService
	Dashboard  DashboardService
	Tab        TabService
	Newsletter NewsletterService
}

// Dependencies are the outbound adapters services talk to
type Dependencies struct {
	Notifier Notifier
	Hasher   CredentialHasher
	Storage  FileStorage
}

// NewService wires every service. Identities resolve admin first, then
// user, then employee.
func NewService(repo *repository.Repository, deps Dependencies, config *utils.Config, log *zap.Logger) *Service {
	resolver := NewIdentityResolver(log, repo.Admin, repo.User, repo.Employee)

	return &Service{
		Resolver:   resolver,
		Auth:       NewAuthService(resolver, repo, deps.Hasher, config, log),
		Reset:      NewResetService(resolver, repo.ResetToken, deps.Notifier, deps.Hasher, config.OTP, log),
		User:       NewUserService(resolver, repo, deps.Notifier, deps.Hasher, config, log),
		Dashboard:  NewDashboardService(repo.Project, log),
		Tab:        NewTabService(repo, deps.Storage, log),
		Newsletter: NewNewsletterService(repo.Subscriber, deps.Notifier, log),
	}
}
