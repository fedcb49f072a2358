// Package scheduler runs the periodic background jobs: a warm-up refresh
// of the content collections and a sweep of the suggestion rate limiter.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/shapidesign/Index-Design-sub000/internal/common"
	"github.com/shapidesign/Index-Design-sub000/internal/services/suggest"
)

// Refresher warms the collection pipeline so the enrichment cache is
// populated before user traffic hits it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Service owns the cron runner. A blank refresh schedule disables the
// refresh job; the limiter sweep always runs.
type Service struct {
	config    *common.Config
	refresher Refresher
	limiter   *suggest.RateLimiter
	cron      *cron.Cron
	logger    arbor.ILogger

	mu      sync.Mutex
	running bool
}

func NewService(config *common.Config, refresher Refresher, limiter *suggest.RateLimiter, logger arbor.ILogger) *Service {
	return &Service{
		config:    config,
		refresher: refresher,
		limiter:   limiter,
		cron:      cron.New(),
		logger:    logger,
	}
}

// Start registers the jobs and begins the cron runner.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	if schedule := s.config.Scheduler.RefreshSchedule; schedule != "" {
		if _, err := s.cron.AddFunc(schedule, s.runRefresh); err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
		}
		s.logger.Info().Str("schedule", schedule).Msg("Collection refresh scheduled")
	} else {
		s.logger.Debug().Msg("Collection refresh disabled (no schedule configured)")
	}

	// Sweep idle rate-limit entries once per window.
	sweepEvery := s.config.Suggestions.Window
	if sweepEvery < time.Minute {
		sweepEvery = time.Minute
	}
	s.cron.Schedule(cron.Every(sweepEvery), cron.FuncJob(s.runSweep))

	s.cron.Start()
	s.running = true
	return nil
}

// Stop halts the cron runner and waits for running jobs to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info().Msg("Scheduler stopped")
}

func (s *Service) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Collection refresh failed")
		return
	}
	s.logger.Info().Str("duration", time.Since(start).Round(time.Millisecond).String()).Msg("Collection refresh completed")
}

func (s *Service) runSweep() {
	if removed := s.limiter.Sweep(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("Rate limiter entries swept")
	}
}
