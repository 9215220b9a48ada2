// Package job runs the reminder use case on cron schedules.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"bnapp/internal/reminder"
	pkgLog "bnapp/pkg/log"
)

type Config struct {
	ScanSpec   string
	DigestSpec string
	Location   *time.Location
}

// Scheduler owns the cron runner for reminder scans and the daily digest.
type Scheduler struct {
	l   pkgLog.Logger
	uc  reminder.UseCase
	c   *cron.Cron
	now func() time.Time
}

// New validates the schedules and registers both jobs. Start must be called to run them.
func New(l pkgLog.Logger, uc reminder.UseCase, cfg Config) (*Scheduler, error) {
	if cfg.ScanSpec == "" {
		cfg.ScanSpec = reminder.DefaultScanSpec
	}
	if cfg.DigestSpec == "" {
		cfg.DigestSpec = reminder.DefaultDigestSpec
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	s := &Scheduler{
		l:   l,
		uc:  uc,
		now: time.Now,
		c: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}

	if _, err := s.c.AddFunc(cfg.ScanSpec, s.scan); err != nil {
		return nil, fmt.Errorf("invalid scan schedule %q: %w", cfg.ScanSpec, err)
	}
	if _, err := s.c.AddFunc(cfg.DigestSpec, s.digest); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", cfg.DigestSpec, err)
	}
	return s, nil
}

// Run starts the jobs and blocks until ctx is done, then waits for running jobs.
func (s *Scheduler) Run(ctx context.Context) error {
	s.c.Start()
	s.l.Infof(ctx, "reminder scheduler started with %d jobs", len(s.c.Entries()))

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	select {
	case <-s.c.Stop().Done():
		s.l.Info(stopCtx, "reminder scheduler stopped")
	case <-stopCtx.Done():
		s.l.Warn(stopCtx, "reminder scheduler stop timed out")
	}
	return nil
}

func (s *Scheduler) scan() {
	ctx := context.Background()
	n, err := s.uc.ScanDue(ctx, s.now())
	if err != nil {
		s.l.Errorf(ctx, "job.scan: %v", err)
	}
	if n > 0 {
		s.l.Infof(ctx, "job.scan: sent %d reminders", n)
	}
}

func (s *Scheduler) digest() {
	ctx := context.Background()
	n, err := s.uc.SendDigest(ctx, s.now())
	if err != nil {
		s.l.Errorf(ctx, "job.digest: %v", err)
	}
	s.l.Infof(ctx, "job.digest: sent %d digests", n)
}
