package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fortune-watch/internal/adapter/llm"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/affinity"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/anniversary"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/delivery"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/settings"
	"github.com/heartmarshall/fortune-watch/internal/catalog"
	"github.com/heartmarshall/fortune-watch/internal/config"
	"github.com/heartmarshall/fortune-watch/internal/domain"
	"github.com/heartmarshall/fortune-watch/internal/service/watch"
)

// Watcher is the wired watch-mode application: the batch service plus the
// resources it owns.
type Watcher struct {
	cfg     config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	service *watch.Service
	tracker *batchTracker
}

// Option tweaks Watcher construction.
type Option func(*watch.Config)

// WithDate pins "today" to the given civil date in the watch timezone.
// Used for backfills and manual reruns.
func WithDate(day time.Time) Option {
	return func(c *watch.Config) {
		y, m, d := day.Date()
		pinned := time.Date(y, m, d, 12, 0, 0, 0, c.Location)
		c.Now = func() time.Time { return pinned }
	}
}

// NewWatcher loads the catalogs, connects to the database and builds the
// watch service. The caller must Close the watcher.
func NewWatcher(ctx context.Context, cfg config.Config, log *slog.Logger, opts ...Option) (*Watcher, error) {
	events, err := catalog.LoadCatalog(cfg.Watch.EventsPath)
	if err != nil {
		return nil, err
	}
	personas, err := catalog.LoadRegistry(cfg.Watch.PersonasPath, cfg.Watch.DefaultPersonaID)
	if err != nil {
		return nil, err
	}

	gen, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if int(cfg.Database.MaxConns) < cfg.Watch.Concurrency {
		log.Warn("database pool smaller than batch concurrency; workers will queue for connections",
			slog.Int("max_conns", int(cfg.Database.MaxConns)),
			slog.Int("concurrency", cfg.Watch.Concurrency),
		)
	}

	tracker := newBatchTracker()
	wcfg := watch.Config{
		Location:        cfg.Watch.Location,
		Concurrency:     cfg.Watch.Concurrency,
		GenerateTimeout: cfg.Watch.GenerateTimeout,
		BatchTimeout:    cfg.Watch.BatchTimeout,
		OnFinish:        tracker.observe,
	}
	if wcfg.Location == nil {
		wcfg.Location = time.UTC
	}
	for _, opt := range opts {
		opt(&wcfg)
	}

	svc := watch.NewService(
		log,
		wcfg,
		settings.New(pool),
		anniversary.New(pool),
		affinity.New(pool),
		delivery.New(pool),
		events,
		personas,
		gen,
	)

	log.Info("watcher ready",
		slog.String("version", BuildVersion()),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("timezone", wcfg.Location.String()),
		slog.Int("concurrency", cfg.Watch.Concurrency),
		slog.Int("events", events.Len()),
		slog.Int("personas", len(personas.List())),
	)

	return &Watcher{cfg: cfg, log: log, pool: pool, service: svc, tracker: tracker}, nil
}

// Close releases the database pool.
func (w *Watcher) Close() {
	w.pool.Close()
}

// RunFamily runs one batch family once.
func (w *Watcher) RunFamily(ctx context.Context, family domain.Family) (watch.BatchResult, error) {
	return w.service.Run(ctx, family)
}

// RunAll runs every family once, in order. A failed family does not stop
// the next one.
func (w *Watcher) RunAll(ctx context.Context) ([]watch.BatchResult, error) {
	return w.service.RunAll(ctx)
}
