package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a bare user row and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, created_at) VALUES ($1, $2, $3)`,
		id, "watcher-"+uniqueSuffix()+"@example.com", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedSettings creates a user with the given companion settings. UserID in s
// is ignored and replaced by the new user's id.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, s domain.CompanionSettings) domain.CompanionSettings {
	t.Helper()

	s.UserID = SeedUser(t, pool)
	s.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companion_settings
		   (user_id, watch_mode_enabled, calendar_notifications_enabled,
		    anniversary_notifications_enabled, preferred_persona_id, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.UserID, s.WatchModeEnabled, s.CalendarNotificationsEnabled,
		s.AnniversaryNotificationsEnabled, s.PreferredPersonaID, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}
	return s
}

// SeedAnniversary inserts an anniversary; a zero ID is replaced with a new one.
func SeedAnniversary(t *testing.T, pool *pgxpool.Pool, a domain.Anniversary) domain.Anniversary {
	t.Helper()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Name == "" {
		a.Name = "記念日 " + uniqueSuffix()
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO anniversaries
		   (id, user_id, name, month, day, category, reminder_days_before, notification_enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.UserID, a.Name, a.Month, a.Day, a.Category, a.ReminderDaysBefore, a.NotificationEnabled,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnniversary: %v", err)
	}
	return a
}

// SeedAffinity upserts a persona affinity level for a user.
func SeedAffinity(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, personaID string, level int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO persona_affinities (user_id, persona_id, level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, persona_id) DO UPDATE SET level = excluded.level`,
		userID, personaID, level,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAffinity: %v", err)
	}
}
