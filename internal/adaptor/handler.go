package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Reset      *ResetHandler
	User       *UserHandler
	Dashboard  *DashboardHandler
	Tab        *TabHandler
	Newsletter *NewsletterHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Reset:      NewResetHandler(service.Reset, log),
		User:       NewUserHandler(service.User, log),
		Dashboard:  NewDashboardHandler(service.Dashboard, log),
		Tab:        NewTabHandler(service.Tab, log),
		Newsletter: NewNewsletterHandler(service.Newsletter, log),
	}
}

// decodeAndValidate reads a JSON body into req and runs struct validation.
// It writes the 400 itself and returns false when the body is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// writeServiceError renders err with the status of its kind. Internal
// failures are logged at error level and their cause is never rendered.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *usecase.AppError
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if appErr.Kind == usecase.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, appErr.Message)
		return
	}

	log.Warn(operation+" failed",
		zap.String("kind", appErr.Kind.String()),
		zap.Error(err),
	)
	utils.ResponseJSON(w, appErr.Kind.Status(), false, appErr.Message, nil, nil)
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentIdentity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := utils.GetIdentityIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
	}
	return id, ok
}
