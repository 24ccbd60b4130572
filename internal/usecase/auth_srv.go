package usecase

import (
	"context"
	"strings"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/internal/dto/request"
	"project-portal/internal/dto/response"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	UserLogin(ctx context.Context, req *request.UserLoginRequest) (*response.AuthResponse, error)
	Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
}

type authService struct {
	resolver IdentityResolver
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   CredentialHasher
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	resolver IdentityResolver,
	repo *repository.Repository,
	hasher CredentialHasher,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		resolver: resolver,
		users:    repo.User,
		sessions: repo.Session,
		hasher:   hasher,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

// Login is the portal sign-in shared by admins, users and employees
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	// 2. Find identity by email or phone number
	identity, err := s.resolver.Resolve(ctx, entity.ParseContact(req.Username))
	if err != nil {
		return nil, err
	}

	// 3. Check password
	if !s.hasher.Compare(req.Password, identity.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("identity_id", identity.ID.String()))
		return nil, newError(KindInvalidCredential, "Invalid password", nil)
	}

	return s.startSession(ctx, identity)
}

func (s *authService) UserLogin(ctx context.Context, req *request.UserLoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("User login validation failed", zap.Any("errors", errs))
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	contact := entity.EmailContact(normalizeEmail(req.Email))
	if req.Email == "" {
		contact = entity.PhoneContact(strings.TrimSpace(req.PhoneNumber))
	}

	identity, err := s.users.FindByContact(ctx, contact)
	if err != nil {
		return nil, internal("Failed to find user", err)
	}
	if identity == nil {
		return nil, notFound("User not found")
	}

	if !s.hasher.Compare(req.Password, identity.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", identity.ID.String()))
		return nil, newError(KindInvalidCredential, "Invalid credentials", nil)
	}

	return s.startSession(ctx, identity)
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.UserResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	// 2. Email must be free
	email := normalizeEmail(req.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, internal("Failed to check email", err)
	}
	if existing != nil {
		return nil, newError(KindConflict, "Email already exists", nil)
	}

	// 3. Build the user
	user, err := newUser(s.hasher, s.config.App.URL, req.FullName, email, req.Password, req.PhoneNumber)
	if err != nil {
		return nil, err
	}

	// 4. Save
	if err := s.users.Create(ctx, user); err != nil {
		return nil, internal("Failed to create account", err)
	}

	s.log.Info("User signed up", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return validationFailed("Invalid token format")
	}

	if err := s.sessions.Revoke(ctx, tokenUUID.String()); err != nil {
		return internal("Failed to logout", err)
	}

	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return internal("Failed to find user", err)
	}
	if user == nil {
		return notFound("User not found")
	}

	if !s.hasher.Compare(req.CurrentPassword, user.PasswordHash) {
		return newError(KindInvalidCredential, "Current password invalid", nil)
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return internal("Failed to process password", err)
	}

	if err := s.users.UpdateCredential(ctx, user.ID, hash); err != nil {
		return internal("Failed to update password", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) startSession(ctx context.Context, identity *entity.Identity) (*response.AuthResponse, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		IdentityID: identity.ID,
		Role:       identity.Role,
		Token:      uuid.New(),
		ExpiresAt:  now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, internal("Failed to create session", err)
	}

	s.log.Info("Logged in",
		zap.String("identity_id", identity.ID.String()),
		zap.String("role", identity.Role.String()),
	)

	resp := response.AuthToResponse(identity, session)
	return &resp, nil
}

// newUser builds an end-user row with a fresh identifier and referral link
func newUser(hasher CredentialHasher, appURL, fullName, email, password string, phone *string) (*entity.User, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, internal("Failed to process password", err)
	}

	identifier, err := utils.GenerateIdentifier()
	if err != nil {
		return nil, internal("Failed to generate identifier", err)
	}

	referral, err := utils.GenerateReferralLink(appURL)
	if err != nil {
		return nil, internal("Failed to generate referral code", err)
	}

	now := time.Now()
	return &entity.User{
		Identity: entity.Identity{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			FullName:     strings.TrimSpace(fullName),
			Email:        email,
			PhoneNumber:  phone,
			PasswordHash: hash,
			Role:         entity.RoleUser,
		},
		Identifier:     identifier,
		MyReferralCode: referral,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
