package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/aussiebroadwan/garage/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	garagesdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, garagesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database and reports how many workshop access codes are live.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	garagesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	garagesdk.HealthResponse	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, tokens *qraccess.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &garagesdk.HealthChecks{
			Database: "ok",
			Tokens:   strconv.Itoa(tokens.Store().Len()) + " live",
		}
		status, code := "ok", http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, garagesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
