package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"dustbinbackend/models/api"
)

// HealthHTTPHandler reports process liveness and database reachability.
// A down database degrades the response to 503 but never crashes the check.
type HealthHTTPHandler struct {
	db          *sqlx.DB
	environment string
}

func NewHealthHTTPHandler(db *sqlx.DB, environment string) *HealthHTTPHandler {
	return &HealthHTTPHandler{db: db, environment: environment}
}

func (h *HealthHTTPHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)
}

func (h *HealthHTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := api.HealthModel{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Environment: h.environment,
		Database:    api.DatabaseHealthModel{Status: "unknown"},
	}

	var version string
	if err := h.db.QueryRowxContext(r.Context(), "SELECT version()").Scan(&version); err != nil {
		log.Printf("❌ Health check database probe failed: %v", err)
		health.Status = "degraded"
		health.Database.Status = "disconnected"
		health.Error = err.Error()
		writeJSONResponse(w, http.StatusServiceUnavailable, health)
		return
	}

	health.Database.Status = "connected"
	health.Database.Version = &version
	writeJSONResponse(w, http.StatusOK, health)
}
