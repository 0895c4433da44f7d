// Package delivery persists the append-only ledger of proactive messages.
package delivery

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

const table = "delivery_records"

// Repo provides delivery record persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new delivery repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// civilDate strips the clock and zone, keeping the calendar date of t as
// observed in t's own location.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Exists reports whether a record with the key was already written.
func (r *Repo) Exists(ctx context.Context, key domain.DeliveryKey) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{
			"user_id":       key.UserID,
			"delivery_date": civilDate(key.DeliveryDate),
			"trigger_type":  string(key.TriggerType),
			"source_key":    key.SourceKey,
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delivery exists: %w", err)
	}

	var exists bool
	if err := r.q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("delivery exists %s/%s: %w", key.UserID, key.TriggerType, err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends a delivery record. It returns false without error when a
// record with the same key already exists.
func (r *Repo) Insert(ctx context.Context, rec domain.DeliveryRecord) (bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "user_id", "persona_id", "trigger_type", "source_key", "delivery_date",
			"title", "content", "status", "scheduled_at", "sent_at",
		).
		Values(
			rec.ID, rec.UserID, rec.PersonaID, string(rec.TriggerType), rec.SourceKey, civilDate(rec.DeliveryDate),
			rec.Title, rec.Content, string(rec.Status), rec.ScheduledAt, rec.SentAt,
		).
		Suffix("ON CONFLICT (user_id, delivery_date, trigger_type, source_key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert delivery: %w", err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "delivery_record", rec.ID)
	}
	return tag.RowsAffected() == 1, nil
}
