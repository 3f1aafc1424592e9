package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rpsgame/internal/api/handler"
	apimiddleware "github.com/mcoot/rpsgame/internal/api/middleware"
	"github.com/mcoot/rpsgame/internal/middleware"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
	"github.com/mcoot/rpsgame/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *match.Controller
	Broadcaster     *sse.Broadcaster
	HubManager      *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register mounts the API routes under /api/v1 on an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	presetsHandler := handler.NewPresetsHandler(cfg.MatchController.Policy())
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.Broadcaster, cfg.HubManager)

	// Create middleware
	authMiddleware := apimiddleware.Auth(cfg.AuthService)

	// API subrouter with common middleware. Logging runs outermost so the
	// request ID is available when a panic is recovered.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(apimiddleware.Recovery(cfg.Logger))

	// Public routes
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/presets", presetsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Match routes (all require auth)
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("", matchHandler.Start).Methods(http.MethodPost)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Delete).Methods(http.MethodDelete)
	matches.HandleFunc("/{id}/moves", matchHandler.SubmitMove).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/advance", matchHandler.Advance).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/reset", matchHandler.Reset).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/rounds", matchHandler.ChangeRounds).Methods(http.MethodPatch)
	matches.HandleFunc("/{id}/events", matchHandler.Events).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
