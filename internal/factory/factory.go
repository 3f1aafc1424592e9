package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/reveal"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
	"github.com/mcoot/rpsgame/internal/services/opponent"
	"github.com/mcoot/rpsgame/internal/services/resolver"
	"github.com/mcoot/rpsgame/internal/storage"
	"github.com/mcoot/rpsgame/internal/storage/memory"
	redisstorage "github.com/mcoot/rpsgame/internal/storage/redis"
	"github.com/mcoot/rpsgame/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Resolver        *resolver.Resolver
	MatchController *match.Controller
	AuthService     *auth.Service
	HubManager      *sse.HubManager
	Broadcaster     *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RoundsPolicy bounds configurable round counts (optional)
	// If nil, defaults to model.DefaultRoundsPolicy()
	RoundsPolicy *model.RoundsPolicy
	// RevealTiming paces the staged reveal events (optional)
	// If nil, defaults to reveal.DefaultTiming()
	RevealTiming *reveal.Timing
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	policy := model.DefaultRoundsPolicy()
	if cfg.RoundsPolicy != nil {
		policy = *cfg.RoundsPolicy
	}

	timing := reveal.DefaultTiming()
	if cfg.RevealTiming != nil {
		timing = *cfg.RevealTiming
	}

	deps := dependencies{
		store:    store,
		clock:    clk,
		random:   rnd,
		strategy: opponent.NewRandomStrategy(rnd),
		authCfg:  authCfg,
		policy:   policy,
		timing:   timing,
		logger:   logger,
	}
	return newWithDependencies(deps), nil
}

// dependencies are the externally supplied parts of an App
type dependencies struct {
	store    storage.Storage
	clock    clock.Clock
	random   random.Random
	strategy opponent.Strategy
	authCfg  auth.Config
	policy   model.RoundsPolicy
	timing   reveal.Timing
	logger   *slog.Logger
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(deps dependencies) *App {
	// Create services
	res := resolver.New(deps.strategy)
	matchController := match.NewController(deps.store, res, deps.policy, deps.clock, deps.random, deps.logger)
	authService := auth.New(deps.store, deps.clock, deps.authCfg, deps.logger)
	hubManager := sse.NewHubManager(deps.logger)
	broadcaster := sse.NewBroadcaster(hubManager, deps.clock, deps.timing, deps.logger)

	return &App{
		Storage:         deps.store,
		Clock:           deps.clock,
		Random:          deps.random,
		Resolver:        res,
		MatchController: matchController,
		AuthService:     authService,
		HubManager:      hubManager,
		Broadcaster:     broadcaster,
	}
}
