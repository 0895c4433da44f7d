package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-co-op/gocron/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fortune-watch/internal/config"
	"github.com/heartmarshall/fortune-watch/internal/domain"
	"github.com/heartmarshall/fortune-watch/internal/transport/rest"
)

// familySchedules maps each batch family to its crontab spec.
func familySchedules(cfg config.ScheduleConfig) map[domain.Family]string {
	return map[domain.Family]string{
		domain.FamilyCalendar:    cfg.Calendar,
		domain.FamilyAnniversary: cfg.Anniversary,
		domain.FamilyDaily:       cfg.Daily,
	}
}

// NewScheduler registers one cron job per family in the watch timezone.
// A run still in progress when its next tick arrives is rescheduled, never
// overlapped.
func NewScheduler(ctx context.Context, cfg config.Config, log *slog.Logger, run func(context.Context, domain.Family)) (gocron.Scheduler, error) {
	loc := cfg.Watch.Location
	if loc == nil {
		return nil, fmt.Errorf("scheduler: watch location not resolved")
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	specs := familySchedules(cfg.Schedule)
	for _, family := range domain.Families {
		spec := specs[family]
		_, err := s.NewJob(
			gocron.CronJob(spec, false),
			gocron.NewTask(func() { run(ctx, family) }),
			gocron.WithName(string(family)),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = s.Shutdown()
			return nil, fmt.Errorf("schedule %s batch (%q): %w", family, spec, err)
		}
		log.Info("batch scheduled", slog.String("family", string(family)), slog.String("cron", spec))
	}

	return s, nil
}

// Schedule runs every family on its crontab and serves the health endpoints
// until ctx is cancelled.
func (w *Watcher) Schedule(ctx context.Context) error {
	s, err := NewScheduler(ctx, w.cfg, w.log, func(ctx context.Context, family domain.Family) {
		_, _ = w.service.Run(ctx, family)
	})
	if err != nil {
		return err
	}

	health := rest.NewServer(
		w.cfg.Schedule.HealthAddr,
		w.log,
		rest.NewHealthHandler(w.pool, w.tracker, BuildVersion()),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return health.Serve(ctx) })

	s.Start()
	w.log.Info("scheduler started")

	<-ctx.Done()

	w.log.Info("scheduler stopping")
	shutdownErr := s.Shutdown()
	if err := g.Wait(); err != nil {
		return err
	}
	if shutdownErr != nil {
		return fmt.Errorf("shutdown scheduler: %w", shutdownErr)
	}
	return nil
}
