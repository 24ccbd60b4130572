package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-portal/internal/dto/request"
	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"go.uber.org/zap"
)

type NewsletterHandler struct {
	service usecase.NewsletterService
	log     *zap.Logger
}

func NewNewsletterHandler(service usecase.NewsletterService, log *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		log:     log,
	}
}

// SendLatestUpdates handles POST /api/admin/send-latest-updates
func (h *NewsletterHandler) SendLatestUpdates(w http.ResponseWriter, r *http.Request) {
	var req request.LatestUpdatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SendLatestUpdates(r.Context(), &req)
	if err != nil {
		var appErr *usecase.AppError
		if errors.As(err, &appErr) && appErr.Kind == usecase.KindDelivery && result != nil && result.Sent > 0 {
			utils.ResponsePartial(w, "Latest updates sent to some subscribers", result, appErr.Message)
			return
		}
		writeServiceError(w, h.log, err, "send latest updates")
		return
	}

	utils.ResponseSuccess(w, "Email sent", result)
}
