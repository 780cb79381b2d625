package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
)

// LivezHandler is the liveness probe; it returns 200 whenever the process
// is running.
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, accountsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
