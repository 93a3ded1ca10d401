package adaptor

import (
	"encoding/json"
	"net/http"

	"todo-app/internal/dto/request"
	"todo-app/internal/dto/response"
	"todo-app/internal/usecase"
	"todo-app/pkg/utils"

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

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to view user")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	// Lookup before the ownership check so a missing target propagates
	// as NotFound.
	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if p.isAdmin() {
		utils.ResponseSuccess(w, "User retrieved successfully", response.UserToFullResponse(user))
		return
	}

	if p.ID != user.ID {
		utils.ResponseUnauthorized(w, "Not authorized to view this user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", response.UserToResponse(user))
}

// Query handles GET /api/users. With an email filter it behaves like Get;
// without one it is the paginated admin listing.
func (h *UserHandler) Query(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to view users")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		h.list(w, r, p)
		return
	}

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if p.isAdmin() {
		utils.ResponseSuccess(w, "User retrieved successfully", response.UserToFullResponse(user))
		return
	}

	if p.ID != user.ID {
		utils.ResponseUnauthorized(w, "Not authorized to view this user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", response.UserToResponse(user))
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request, p principal) {
	if !p.isAdmin() {
		utils.ResponseUnauthorized(w, "Not authorized to list users")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.List(r.Context(), req)
	if err != nil {
		h.log.Error("Failed to list users", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to update user")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if !p.canAccess(user.ID) {
		utils.ResponseUnauthorized(w, "Not authorized to update this user")
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req, p.isAdmin())
	if err != nil {
		h.log.Warn("User update failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", response.UserToFullResponse(updated))
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to delete user")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if !p.canAccess(user.ID) {
		utils.ResponseUnauthorized(w, "Not authorized to delete this user")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.log.Warn("User delete failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
