package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/reveal"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
	"github.com/mcoot/rpsgame/internal/web/handler"
	"github.com/mcoot/rpsgame/internal/web/middleware"
	"github.com/mcoot/rpsgame/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *match.Controller
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
	Random          random.Random // shuffles the card layout
	StaticDir       string        // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register mounts the web routes on an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Create SSE plumbing if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}
	broadcaster := cfg.Broadcaster
	if broadcaster == nil {
		broadcaster = sse.NewBroadcaster(hubManager, clock.New(), reveal.DefaultTiming(), cfg.Logger)
	}
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.MatchController.Policy())
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.AuthService, hubManager, broadcaster, rnd, cfg.Logger)

	site := r.NewRoute().Subrouter()
	site.Use(loggingMiddleware)
	site.Use(recoveryMiddleware)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		site.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing player info in nav)
	public := site.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/play", matchHandler.Play).Methods(http.MethodPost)
	public.HandleFunc("/play", matchHandler.PlayLink).Methods(http.MethodGet)

	// Auth actions (no auth required)
	authRoutes := site.PathPrefix("/auth").Subrouter()
	authRoutes.Use(flashMiddleware)
	authRoutes.HandleFunc("/guest", authHandler.CreateGuest).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := site.PathPrefix("/match").Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/{id}", matchHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/{id}/move", matchHandler.Move).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/advance", matchHandler.Advance).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/reset", matchHandler.Reset).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/rounds", matchHandler.ChangeRounds).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/events", matchHandler.Events).Methods(http.MethodGet)
}
