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

type TodoHandler struct {
	service usecase.TodoService
	log     *zap.Logger
}

func NewTodoHandler(service usecase.TodoService, log *zap.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/todos
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to create todo")
		return
	}

	var req request.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	todo, err := h.service.Create(r.Context(), p.ID, &req)
	if err != nil {
		h.log.Error("Failed to create todo", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Todo created successfully", response.TodoToResponse(todo))
}

// List handles GET /api/todos. Admins see every todo, everyone else
// only their own.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to list todos")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	todos, err := h.service.List(r.Context(), p.ID, p.isAdmin(), req)
	if err != nil {
		h.log.Error("Failed to list todos", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Todos retrieved successfully", todos)
}

// Get handles GET /api/todos/{id}
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to view todo")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if !p.canAccess(todo.CreatedBy) {
		utils.ResponseUnauthorized(w, "Not authorized to view this todo")
		return
	}

	utils.ResponseSuccess(w, "Todo retrieved successfully", response.TodoToResponse(todo))
}

// Update handles PUT /api/todos/{id}
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to update todo")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if !p.canAccess(todo.CreatedBy) {
		utils.ResponseUnauthorized(w, "Not authorized to update this todo")
		return
	}

	var req request.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if msg := utils.ValidateRequest(req); msg != "" {
		utils.ResponseBadRequest(w, msg, nil)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.log.Warn("Todo update failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Todo updated successfully", response.TodoToResponse(updated))
}

// Delete handles DELETE /api/todos/{id}
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required to delete todo")
		return
	}

	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "id: Must be a valid UUID", nil)
		return
	}

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	if !p.canAccess(todo.CreatedBy) {
		utils.ResponseUnauthorized(w, "Not authorized to delete this todo")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.log.Warn("Todo delete failed", zap.Error(err))
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseNoContent(w)
}
