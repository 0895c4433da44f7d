// Package watch implements watch mode: batches that decide which opted-in
// users get a proactive message today, pick the speaking persona, generate
// the text and record the delivery.
package watch

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

type settingsRepo interface {
	ListEligible(ctx context.Context, audience domain.Audience) ([]domain.CompanionSettings, error)
}

type anniversaryRepo interface {
	ListNotifiable(ctx context.Context) ([]domain.Anniversary, error)
}

type affinityRepo interface {
	TopPersona(ctx context.Context, userID uuid.UUID) (string, error)
}

type deliveryRepo interface {
	Insert(ctx context.Context, rec domain.DeliveryRecord) (bool, error)
	Exists(ctx context.Context, key domain.DeliveryKey) (bool, error)
}

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type eventCatalog interface {
	EventsOn(date time.Time) []domain.CalendarEvent
}

type personaRegistry interface {
	Get(id string) (domain.Persona, bool)
	Default() domain.Persona
}

// Config holds orchestration settings.
type Config struct {
	// Location defines the civil "today".
	Location *time.Location
	// Concurrency bounds the number of pairs processed at once.
	Concurrency int
	// GenerateTimeout bounds a single call to the text generator.
	GenerateTimeout time.Duration
	// BatchTimeout bounds one batch run. Zero means no bound.
	BatchTimeout time.Duration
	// Now overrides the clock that decides "today". Nil means time.Now.
	Now func() time.Time
	// OnFinish, when set, receives the outcome of every batch run.
	OnFinish func(BatchResult, error)
}

// Service runs watch-mode batches.
type Service struct {
	settings      settingsRepo
	anniversaries anniversaryRepo
	events        eventCatalog

	selector *PersonaSelector
	composer *Composer
	recorder *Recorder

	loc          *time.Location
	concurrency  int
	batchTimeout time.Duration
	now          func() time.Time
	onFinish     func(BatchResult, error)
	log          *slog.Logger
}

// NewService creates a new watch service.
func NewService(
	log *slog.Logger,
	cfg Config,
	settings settingsRepo,
	anniversaries anniversaryRepo,
	affinities affinityRepo,
	deliveries deliveryRepo,
	events eventCatalog,
	personas personaRegistry,
	gen generator,
) *Service {
	log = log.With("service", "watch")

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		settings:      settings,
		anniversaries: anniversaries,
		events:        events,
		selector:      NewPersonaSelector(log, personas, affinities),
		composer:      NewComposer(log, gen, cfg.GenerateTimeout),
		recorder:      NewRecorder(deliveries),
		loc:           loc,
		concurrency:   concurrency,
		batchTimeout:  cfg.BatchTimeout,
		now:           now,
		onFinish:      cfg.OnFinish,
		log:           log,
	}
}

// civilDate returns the calendar day of t in loc, at UTC midnight.
func civilDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
