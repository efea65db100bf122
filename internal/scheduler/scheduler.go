package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// Reparser re-crawls all active sitemaps.
type Reparser interface {
	ReparseAll(ctx context.Context) error
}

// DigestScanner evaluates all accounts for due digests.
type DigestScanner interface {
	ScanAccounts(ctx context.Context) (*domain.ScanStats, error)
}

// Scheduler drives the two periodic ticks of the engine: the slow reparse
// pass and the frequent digest scan. Both run once at startup.
type Scheduler struct {
	reparser        Reparser
	scanner         DigestScanner
	reparseInterval time.Duration
	scanInterval    time.Duration
	logger          *slog.Logger
}

func NewScheduler(
	reparser Reparser,
	scanner DigestScanner,
	reparseInterval, scanInterval time.Duration,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		reparser:        reparser,
		scanner:         scanner,
		reparseInterval: reparseInterval,
		scanInterval:    scanInterval,
		logger:          logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"reparse_interval", s.reparseInterval,
		"scan_interval", s.scanInterval,
	)

	s.runReparse(ctx)
	s.runScan(ctx)

	reparseTicker := time.NewTicker(s.reparseInterval)
	defer reparseTicker.Stop()

	scanTicker := time.NewTicker(s.scanInterval)
	defer scanTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-reparseTicker.C:
			s.runReparse(ctx)
		case <-scanTicker.C:
			s.runScan(ctx)
		}
	}
}

func (s *Scheduler) runReparse(ctx context.Context) {
	reparseCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	if err := s.reparser.ReparseAll(reparseCtx); err != nil {
		s.logger.Error("reparse pass failed", "error", err)
	}
}

func (s *Scheduler) runScan(ctx context.Context) {
	scanCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if _, err := s.scanner.ScanAccounts(scanCtx); err != nil {
		s.logger.Error("digest scan failed", "error", err)
	}
}
