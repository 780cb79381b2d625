package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store"
	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
)

// ReadyzHandler is the readiness probe; it checks the database connection
// and reports 503 while any dependency is down.
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &accountsdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, accountsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
