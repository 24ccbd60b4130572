package adaptor

import (
	"net/http"

	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

// Admin handles GET /api/admin/dashboard
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.AdminDashboard(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get admin dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}

// User handles GET /api/user/dashboard
func (h *DashboardHandler) User(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	dashboard, err := h.service.UserDashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get user dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}
