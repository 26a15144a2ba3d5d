package main

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Healthcheck endpoint
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "ok"
	if err := app.storage.Ping(r.Context()); err != nil {
		dbStatus = "error"
	}

	cacheStatus := "ok"
	if err := app.cache.Ping(r.Context()); err != nil {
		cacheStatus = "error"
	}

	// broker: assume ok while the app is running
	queueStatus := "ok"

	response := HealthResponse{
		Status:    "healthy",
		Version:   version,
		Timestamp: time.Now(),
		Services: map[string]string{
			"database": dbStatus,
			"cache":    cacheStatus,
			"queue":    queueStatus,
		},
	}

	if dbStatus != "ok" || cacheStatus != "ok" || queueStatus != "ok" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
