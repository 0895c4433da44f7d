// Package anniversary reads user anniversaries from PostgreSQL.
package anniversary

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

type row struct {
	ID                  uuid.UUID `db:"id"`
	UserID              uuid.UUID `db:"user_id"`
	Name                string    `db:"name"`
	Month               int       `db:"month"`
	Day                 int       `db:"day"`
	Category            string    `db:"category"`
	ReminderDaysBefore  int       `db:"reminder_days_before"`
	NotificationEnabled bool      `db:"notification_enabled"`
}

func (r row) toDomain() domain.Anniversary {
	return domain.Anniversary{
		ID:                  r.ID,
		UserID:              r.UserID,
		Name:                r.Name,
		Month:               r.Month,
		Day:                 r.Day,
		Category:            r.Category,
		ReminderDaysBefore:  r.ReminderDaysBefore,
		NotificationEnabled: r.NotificationEnabled,
	}
}

// Repo provides read access to anniversaries.
type Repo struct {
	q postgres.Querier
}

// New creates a new anniversary repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ListNotifiable returns every anniversary with notifications enabled whose
// owner has watch mode and anniversary notifications turned on.
func (r *Repo) ListNotifiable(ctx context.Context) ([]domain.Anniversary, error) {
	query, args, err := postgres.Builder().
		Select(
			"a.id", "a.user_id", "a.name", "a.month", "a.day",
			"a.category", "a.reminder_days_before", "a.notification_enabled",
		).
		From("anniversaries a").
		Join("companion_settings cs ON cs.user_id = a.user_id").
		Where(sq.Eq{
			"a.notification_enabled":               true,
			"cs.watch_mode_enabled":                true,
			"cs.anniversary_notifications_enabled": true,
		}).
		OrderBy("a.user_id", "a.month", "a.day", "a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifiable anniversaries: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notifiable anniversaries: %w", err)
	}

	out := make([]domain.Anniversary, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
