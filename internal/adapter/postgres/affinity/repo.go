// Package affinity reads per-persona affinity levels from PostgreSQL.
package affinity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/fortune-watch/internal/adapter/postgres"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// Repo provides read access to persona_affinities.
type Repo struct {
	q postgres.Querier
}

// New creates a new affinity repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Top returns the user's highest affinity. Ties resolve to the lowest
// persona id. Returns domain.ErrNotFound if the user has no affinity rows.
func (r *Repo) Top(ctx context.Context, userID uuid.UUID) (domain.PersonaAffinity, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "persona_id", "level").
		From("persona_affinities").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("level DESC", "persona_id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return domain.PersonaAffinity{}, fmt.Errorf("build top affinity: %w", err)
	}

	var rw struct {
		UserID    uuid.UUID `db:"user_id"`
		PersonaID string    `db:"persona_id"`
		Level     int       `db:"level"`
	}
	if err := pgxscan.Get(ctx, r.q, &rw, query, args...); err != nil {
		return domain.PersonaAffinity{}, postgres.MapError(err, "persona_affinity", userID)
	}

	return domain.PersonaAffinity{UserID: rw.UserID, PersonaID: rw.PersonaID, Level: rw.Level}, nil
}

// TopPersona returns the persona id with the highest affinity for the user.
// Returns domain.ErrNotFound if the user has no affinity rows.
func (r *Repo) TopPersona(ctx context.Context, userID uuid.UUID) (string, error) {
	top, err := r.Top(ctx, userID)
	if err != nil {
		return "", err
	}
	return top.PersonaID, nil
}
