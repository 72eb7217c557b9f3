package http

import (
	"net/http"
	"time"

	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the credential store and whether session start-up has finished.
//	@Description	An unauthenticated session is ready; one still initializing is not.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get]
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	mgr *session.Manager,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := mgr.Snapshot()
		checks := &HealthChecks{
			Store:   "ok",
			Session: snap.StateName(),
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check store connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Start-up renewal still running
		if snap.State == session.Initializing {
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
