package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tabaccounts/pkg/jwtx"
	"github.com/aussiebroadwan/tabaccounts/pkg/slogx"
)

const bearerPrefix = "Bearer "

// AuthnMiddleware verifies the Authorization bearer token and attaches the
// caller's Identity to the request context. Every failure mode (missing
// header, missing prefix, bad signature, malformed token, expired token)
// produces the same 401 body so callers cannot tell them apart.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, bearerPrefix) {
				writeUnauthorized(w)
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(authz, bearerPrefix))
			if raw == "" {
				writeUnauthorized(w)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = WithIdentity(ctx, Identity{
				UserID: claims.Subject,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
}
