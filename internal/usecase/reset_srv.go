package usecase

import (
	"context"
	"errors"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"
	"project-portal/internal/dto/request"
	"project-portal/internal/dto/response"
	"project-portal/pkg/metrics"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResetService drives a credential through issued, verified, rotated and
// invalidated. Verification is not remembered: rotation checks the token again.
type ResetService interface {
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (*response.ForgotPasswordResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error
	ResetWithOTP(ctx context.Context, req *request.ResetPasswordRequest) error
}

type resetService struct {
	resolver IdentityResolver
	tokens   repository.ResetTokenRepository
	notifier Notifier
	hasher   CredentialHasher
	otp      utils.OTPConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewResetService(
	resolver IdentityResolver,
	tokens repository.ResetTokenRepository,
	notifier Notifier,
	hasher CredentialHasher,
	otp utils.OTPConfig,
	log *zap.Logger,
) ResetService {
	return &resetService{
		resolver: resolver,
		tokens:   tokens,
		notifier: notifier,
		hasher:   hasher,
		otp:      otp,
		log:      log.With(zap.String("service", "reset")),
		now:      time.Now,
	}
}

// ForgotPassword issues a code for the contact in req.Username and sends it
// over the matching channel. When sending fails the token is kept and the
// response is returned together with a KindDelivery error.
func (s *resetService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (*response.ForgotPasswordResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(utils.FormatValidationErrors(errs))
	}

	// 2. Resolve identity across the role stores
	contact := entity.ParseContact(req.Username)
	identity, err := s.resolver.Resolve(ctx, contact)
	if err != nil {
		s.observe("requested", KindOf(err).String())
		if !IsKind(err, KindNotFound) {
			s.log.Error("Failed to resolve identity", zap.Error(err))
		}
		return nil, err
	}

	// Bind the token to the stored address so rotation resolves the same row
	if !contact.IsPhone() {
		contact = entity.EmailContact(identity.Email)
	}

	// 3. Drop earlier codes for this contact
	if err := s.tokens.DeleteByContact(ctx, contact); err != nil {
		s.log.Warn("Failed to clear previous reset tokens", zap.Error(err))
	}

	// 4. Generate and persist
	code, err := utils.GenerateOTP(s.otp.Length)
	if err != nil {
		s.observe("requested", KindInternal.String())
		return nil, internal("Failed to generate reset code", err)
	}

	now := s.now()
	token := entity.NewResetToken(contact, code, now.Add(s.otp.Expiry()))
	token.ID = uuid.New()
	token.CreatedAt = now

	if err := s.tokens.Create(ctx, token); err != nil {
		s.observe("requested", KindInternal.String())
		return nil, internal("Failed to create reset token", err)
	}

	// 5. Dispatch exactly once, by contact shape
	resp := &response.ForgotPasswordResponse{ExpiresAt: token.Expires}
	if contact.IsPhone() {
		resp.Channel = "sms"
		err = s.notifier.SendPasswordResetSMS(ctx, contact.Value, code)
	} else {
		resp.Channel = "email"
		err = s.notifier.SendPasswordResetEmail(ctx, contact.Value, code)
	}
	if err != nil {
		s.log.Warn("Reset code issued but not delivered",
			zap.Error(err),
			zap.String("channel", resp.Channel),
			zap.String("token_id", token.ID.String()),
		)
		s.observe("requested", KindDelivery.String())
		return resp, newError(KindDelivery, "Failed to send password reset "+resp.Channel, err)
	}

	s.log.Info("Reset code issued",
		zap.String("channel", resp.Channel),
		zap.String("identity_id", identity.ID.String()),
		zap.String("role", identity.Role.String()),
	)
	s.observe("requested", "ok")
	return resp, nil
}

func (s *resetService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(utils.FormatValidationErrors(errs))
	}

	if _, err := s.lookupToken(ctx, req.OTP); err != nil {
		s.observe("verified", KindOf(err).String())
		return err
	}

	s.observe("verified", "ok")
	return nil
}

func (s *resetService) ResetWithOTP(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationFailed(utils.FormatValidationErrors(errs))
	}

	// 2. Check the token again
	token, err := s.lookupToken(ctx, req.OTP)
	if err != nil {
		s.observe("rotated", KindOf(err).String())
		return err
	}

	contact, ok := token.Contact()
	if !ok {
		s.log.Error("Reset token has no contact", zap.String("token_id", token.ID.String()))
		s.observe("rotated", KindInvalidToken.String())
		return newError(KindInvalidToken, "Invalid token", nil)
	}

	// 3. Re-resolve by the stored contact and pick the store by role
	identity, err := s.resolver.Resolve(ctx, contact)
	if err != nil {
		s.observe("rotated", KindOf(err).String())
		return err
	}

	store, ok := s.resolver.StoreFor(identity.Role)
	if !ok {
		s.observe("rotated", KindInternal.String())
		return internal("Failed to update password", errors.New("no store for role "+identity.Role.String()))
	}

	// 4. Hash and overwrite
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.observe("rotated", KindInternal.String())
		return internal("Failed to process password", err)
	}

	if err := store.UpdateCredential(ctx, identity.ID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.observe("rotated", KindNotFound.String())
			return newError(KindNotFound, "User not found", err)
		}
		s.observe("rotated", KindInternal.String())
		return internal("Failed to update password", err)
	}

	// 5. Invalidate. Not atomic with the overwrite above.
	if err := s.tokens.DeleteByID(ctx, token.ID); err != nil {
		s.log.Error("Password rotated but reset token was not deleted",
			zap.Error(err),
			zap.String("token_id", token.ID.String()),
			zap.String("identity_id", identity.ID.String()),
		)
		s.observe("invalidated", KindInternal.String())
	} else {
		s.observe("invalidated", "ok")
	}

	s.log.Info("Password rotated",
		zap.String("identity_id", identity.ID.String()),
		zap.String("role", identity.Role.String()),
	)
	s.observe("rotated", "ok")
	return nil
}

func (s *resetService) lookupToken(ctx context.Context, code string) (*entity.ResetToken, error) {
	token, err := s.tokens.FindByToken(ctx, code)
	if err != nil {
		return nil, internal("Failed to look up token", err)
	}
	if token == nil {
		return nil, newError(KindInvalidToken, "Invalid token", nil)
	}
	if token.IsExpired(s.now()) {
		return nil, newError(KindExpiredToken, "OTP expired", nil)
	}
	return token, nil
}

func (s *resetService) observe(stage, outcome string) {
	metrics.PasswordResets.WithLabelValues(stage, outcome).Inc()
}
