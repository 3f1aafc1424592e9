// Package scheduler runs periodic housekeeping for the server: expiring
// sessions, closing idle event hubs and pruning stale matches.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/storage"
	"github.com/mcoot/rpsgame/internal/web/sse"
)

// Job names
const (
	JobCleanSessions = "clean-sessions"
	JobCleanHubs     = "clean-hubs"
	JobPruneMatches  = "prune-matches"
)

// Config holds the intervals for each job
type Config struct {
	SessionCleanupInterval time.Duration
	HubCleanupInterval     time.Duration
	MatchPruneInterval     time.Duration
	// MatchMaxAge is how long a match may sit untouched before it is pruned
	MatchMaxAge time.Duration
}

// DefaultConfig returns the default job intervals
func DefaultConfig() Config {
	return Config{
		SessionCleanupInterval: 10 * time.Minute,
		HubCleanupInterval:     time.Minute,
		MatchPruneInterval:     time.Hour,
		MatchMaxAge:            24 * time.Hour,
	}
}

// Scheduler wraps a gocron scheduler with the server's housekeeping jobs
type Scheduler struct {
	sched   gocron.Scheduler
	cfg     Config
	auth    *auth.Service
	hubs    *sse.HubManager
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a Scheduler and registers its jobs. Call Start to run them.
func New(
	cfg Config,
	authService *auth.Service,
	hubs *sse.HubManager,
	store storage.Storage,
	clk clock.Clock,
	logger *slog.Logger,
) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		sched:   sched,
		cfg:     cfg,
		auth:    authService,
		hubs:    hubs,
		storage: store,
		clock:   clk,
		logger:  logger.With(slog.String("component", "scheduler")),
	}

	jobs := []struct {
		name     string
		interval time.Duration
		task     func()
	}{
		{JobCleanSessions, cfg.SessionCleanupInterval, s.CleanSessions},
		{JobCleanHubs, cfg.HubCleanupInterval, s.CleanHubs},
		{JobPruneMatches, cfg.MatchPruneInterval, s.PruneMatches},
	}

	for _, j := range jobs {
		if j.interval <= 0 {
			continue
		}
		_, err := sched.NewJob(
			gocron.DurationJob(j.interval),
			gocron.NewTask(j.task),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = sched.Shutdown()
			return nil, err
		}
	}

	return s, nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.sched.Start()
	s.logger.Info("scheduler started", slog.Int("jobs", len(s.sched.Jobs())))
}

// Shutdown stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

// JobNames returns the names of registered jobs
func (s *Scheduler) JobNames() []string {
	var names []string
	for _, j := range s.sched.Jobs() {
		names = append(names, j.Name())
	}
	return names
}

// CleanSessions drops expired sessions
func (s *Scheduler) CleanSessions() {
	if removed := s.auth.CleanExpiredSessions(); removed > 0 {
		s.logger.Info("expired sessions removed", slog.Int("removed", removed))
	}
}

// CleanHubs closes event hubs nobody is listening to
func (s *Scheduler) CleanHubs() {
	s.hubs.CleanupEmptyHubs()
}

// PruneMatches deletes matches untouched for longer than MatchMaxAge
func (s *Scheduler) PruneMatches() {
	if s.cfg.MatchMaxAge <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := s.clock.Now().Add(-s.cfg.MatchMaxAge)
	removed, err := s.storage.PruneMatches(ctx, cutoff)
	if err != nil {
		s.logger.Error("match prune failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("stale matches pruned", slog.Int("removed", removed))
	}
}
