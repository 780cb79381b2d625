package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/service"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
	"github.com/aussiebroadwan/tabaccounts/pkg/jwtx"
	"github.com/aussiebroadwan/tabaccounts/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService  *service.UserService
	TokenService *service.TokenService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /register", &RegisterHandler{UserService: r.UserService})

	r.Mux.Handle("POST /login", &LoginHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	})

	// The auth gate verifies the bearer token before the handler runs; on
	// rejection the handler (and any store call) is never reached.
	r.Mux.Handle("GET /me",
		httpx.Chain(&MeHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
