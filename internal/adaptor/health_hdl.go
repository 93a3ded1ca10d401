package adaptor

import (
	"context"
	"net/http"
	"time"

	"todo-app/pkg/database"
	"todo-app/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHealthHandler(db database.PgxIface, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log,
	}
}

// HealthCheck handles GET /health-check
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Service is healthy", map[string]string{"status": "ok"})
}

// Heartbeat handles GET /heartbeat and verifies database connectivity.
func (h *HealthHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database heartbeat failed", zap.Error(err))
		utils.ResponseInternalError(w, "Database unavailable")
		return
	}

	utils.ResponseSuccess(w, "Service is healthy", map[string]string{"database": "ok"})
}
