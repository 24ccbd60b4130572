package adaptor

import (
	"net/http"

	"project-portal/internal/data/entity"
	"project-portal/internal/dto/request"
	"project-portal/internal/usecase"
	"project-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// ListUsers handles GET /api/admin/users?page=1&limit=10&description=
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListUsersRequest{
		PageRequest: request.PageRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 0),
		},
		Description: query.Get("description"),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "list users")
		return
	}

	if users.Empty() {
		utils.ResponseJSON(w, http.StatusOK, false, "No users found", users, nil)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUser handles GET /api/admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// CreateUser handles POST /api/admin/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// UpdateUser handles PATCH /api/admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteUser(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", deleted)
}

// AddCredits handles POST /api/admin/users/{id}/credits
func (h *UserHandler) AddCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.AddCreditsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.AddCredits(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add credits")
		return
	}

	utils.ResponseSuccess(w, "Credits added successfully", user)
}

// GetInfo handles GET /api/user/info
func (h *UserHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "get user info")
		return
	}

	utils.ResponseSuccess(w, "User info retrieved successfully", user)
}

// EditInfo handles PATCH /api/user/info
func (h *UserHandler) EditInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "edit user info")
		return
	}

	utils.ResponseSuccess(w, "User info updated successfully", user)
}

// GetInfoByEmail handles GET /api/user/email/{email}. End users may only
// look themselves up.
func (h *UserHandler) GetInfoByEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, h.log, err, "get user by email")
		return
	}

	if role, _ := utils.GetRoleFromContext(r.Context()); role == entity.RoleUser && user.ID != userID.String() {
		utils.ResponseForbidden(w, "Access denied")
		return
	}

	utils.ResponseSuccess(w, "User info retrieved successfully", user)
}
