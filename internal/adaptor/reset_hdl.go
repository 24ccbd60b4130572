package adaptor

import (
	"errors"
	"net/http"

	"project-portal/internal/dto/request"
	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"go.uber.org/zap"
)

type ResetHandler struct {
	service usecase.ResetService
	log     *zap.Logger
}

func NewResetHandler(service usecase.ResetService, log *zap.Logger) *ResetHandler {
	return &ResetHandler{
		service: service,
		log:     log,
	}
}

// ForgotPassword handles POST /api/forgot-password
func (h *ResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	response, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		// The code was issued; only sending it failed
		var appErr *usecase.AppError
		if errors.As(err, &appErr) && appErr.Kind == usecase.KindDelivery && response != nil {
			h.log.Warn("forgot password delivery failed", zap.Error(err))
			utils.ResponsePartial(w, "Password reset token generated", response, appErr.Message)
			return
		}
		writeServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "Password reset "+response.Channel+" sent with otp", response)
}

// VerifyOTP handles POST /api/verify-otp
func (h *ResetHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.VerifyOTP(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "verify otp")
		return
	}

	utils.ResponseSuccess(w, "OTP verified", nil)
}

// ResetPassword handles PATCH /api/new-password-otp-verified
func (h *ResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.ResetWithOTP(r.Context(), &req); err != nil {
		writeServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password updated successfully", nil)
}
