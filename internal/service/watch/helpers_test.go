package watch

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/fortune-watch/internal/catalog"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

var jst = time.FixedZone("JST", 9*60*60)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testPersonas(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry([]domain.Persona{
		{ID: "tsukuyo", DisplayName: "月夜", Tone: "穏やか", Focus: "癒し"},
		{ID: "hoshino", DisplayName: "星野ひかり", Tone: "明るい", Focus: "恋愛"},
		{ID: "akane", DisplayName: "茜", Tone: "率直", Focus: "仕事"},
	}, "tsukuyo")
	require.NoError(t, err)
	return reg
}

func strPtr(s string) *string { return &s }

// ledger is an in-memory delivery store honoring the idempotency key.
type ledger struct {
	mu      sync.Mutex
	records []domain.DeliveryRecord
	keys    map[domain.DeliveryKey]bool
}

func newLedger() *ledger {
	return &ledger{keys: make(map[domain.DeliveryKey]bool)}
}

func (l *ledger) mock() *deliveryRepoMock {
	return &deliveryRepoMock{
		ExistsFunc: func(_ context.Context, key domain.DeliveryKey) (bool, error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			return l.keys[key], nil
		},
		InsertFunc: func(_ context.Context, rec domain.DeliveryRecord) (bool, error) {
			l.mu.Lock()
			defer l.mu.Unlock()
			if l.keys[rec.Key()] {
				return false, nil
			}
			l.keys[rec.Key()] = true
			l.records = append(l.records, rec)
			return true, nil
		},
	}
}

func (l *ledger) byUser(id uuid.UUID) []domain.DeliveryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.DeliveryRecord
	for _, r := range l.records {
		if r.UserID == id {
			out = append(out, r)
		}
	}
	return out
}

func (l *ledger) all() []domain.DeliveryRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.DeliveryRecord, len(l.records))
	copy(out, l.records)
	return out
}

// testDeps collects the collaborators of a test Service. Nil fields get
// permissive defaults.
type testDeps struct {
	settings      *settingsRepoMock
	anniversaries *anniversaryRepoMock
	affinities    *affinityRepoMock
	deliveries    *deliveryRepoMock
	gen           *generatorMock
	events        []domain.CalendarEvent
	concurrency   int
}

func usersOf(users ...domain.CompanionSettings) *settingsRepoMock {
	return &settingsRepoMock{
		ListEligibleFunc: func(context.Context, domain.Audience) ([]domain.CompanionSettings, error) {
			return users, nil
		},
	}
}

func replying(text string) *generatorMock {
	return &generatorMock{
		GenerateFunc: func(context.Context, string) (string, error) {
			return text, nil
		},
	}
}

func newTestService(t *testing.T, d testDeps, now time.Time) *Service {
	t.Helper()

	if d.settings == nil {
		d.settings = usersOf()
	}
	if d.anniversaries == nil {
		d.anniversaries = &anniversaryRepoMock{
			ListNotifiableFunc: func(context.Context) ([]domain.Anniversary, error) { return nil, nil },
		}
	}
	if d.affinities == nil {
		d.affinities = &affinityRepoMock{
			TopPersonaFunc: func(context.Context, uuid.UUID) (string, error) { return "", domain.ErrNotFound },
		}
	}
	if d.deliveries == nil {
		d.deliveries = newLedger().mock()
	}
	if d.gen == nil {
		d.gen = replying("今日もよい一日を。")
	}
	if d.concurrency == 0 {
		d.concurrency = 4
	}

	cat, err := catalog.NewCatalog(d.events)
	require.NoError(t, err)

	svc := NewService(
		discardLogger(),
		Config{Location: jst, Concurrency: d.concurrency, GenerateTimeout: time.Second},
		d.settings,
		d.anniversaries,
		d.affinities,
		d.deliveries,
		cat,
		testPersonas(t),
		d.gen,
	)
	svc.now = func() time.Time { return now }
	svc.recorder.now = func() time.Time { return now }
	return svc
}
