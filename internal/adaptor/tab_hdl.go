package adaptor

import (
	"net/http"

	"project-portal/internal/dto/request"
	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TabHandler struct {
	service usecase.TabService
	log     *zap.Logger
}

func NewTabHandler(service usecase.TabService, log *zap.Logger) *TabHandler {
	return &TabHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/tabs
func (h *TabHandler) List(w http.ResponseWriter, r *http.Request) {
	tabs, err := h.service.ListTabs(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list tabs")
		return
	}

	utils.ResponseSuccess(w, "Tabs retrieved successfully", tabs)
}

// Create handles POST /api/tabs
func (h *TabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTabRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tab, err := h.service.CreateTab(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create tab")
		return
	}

	utils.ResponseCreated(w, "Tab created successfully", tab)
}

// Delete handles DELETE /api/tabs/{id}
func (h *TabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteTab(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "delete tab")
		return
	}

	utils.ResponseSuccess(w, "Tab deleted successfully", deleted)
}
