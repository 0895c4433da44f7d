// Package settings reads companion (watch-mode) settings from PostgreSQL.
package settings

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

const table = "companion_settings"

var columns = []string{
	"user_id",
	"watch_mode_enabled",
	"calendar_notifications_enabled",
	"anniversary_notifications_enabled",
	"preferred_persona_id",
	"updated_at",
}

type row struct {
	UserID                          uuid.UUID `db:"user_id"`
	WatchModeEnabled                bool      `db:"watch_mode_enabled"`
	CalendarNotificationsEnabled    bool      `db:"calendar_notifications_enabled"`
	AnniversaryNotificationsEnabled bool      `db:"anniversary_notifications_enabled"`
	PreferredPersonaID              *string   `db:"preferred_persona_id"`
	UpdatedAt                       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.CompanionSettings {
	return domain.CompanionSettings{
		UserID:                          r.UserID,
		WatchModeEnabled:                r.WatchModeEnabled,
		CalendarNotificationsEnabled:    r.CalendarNotificationsEnabled,
		AnniversaryNotificationsEnabled: r.AnniversaryNotificationsEnabled,
		PreferredPersonaID:              r.PreferredPersonaID,
		UpdatedAt:                       r.UpdatedAt,
	}
}

// Repo provides read access to companion_settings.
type Repo struct {
	q postgres.Querier
}

// New creates a new settings repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListEligible returns the settings of every user in the audience, ordered
// by user id so batch runs are reproducible.
func (r *Repo) ListEligible(ctx context.Context, audience domain.Audience) ([]domain.CompanionSettings, error) {
	where := sq.Eq{"watch_mode_enabled": true}
	switch audience {
	case domain.AudienceWatch:
	case domain.AudienceCalendar:
		where["calendar_notifications_enabled"] = true
	case domain.AudienceAnniversary:
		where["anniversary_notifications_enabled"] = true
	default:
		return nil, fmt.Errorf("list eligible settings: unknown audience %q: %w", audience, domain.ErrValidation)
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list eligible settings: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list eligible settings (%s): %w", audience, err)
	}

	out := make([]domain.CompanionSettings, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
