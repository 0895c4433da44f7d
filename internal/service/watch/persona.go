package watch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// PersonaSelector resolves which persona speaks to a user.
type PersonaSelector struct {
	personas   personaRegistry
	affinities affinityRepo
	log        *slog.Logger
}

// NewPersonaSelector creates a new PersonaSelector.
func NewPersonaSelector(log *slog.Logger, personas personaRegistry, affinities affinityRepo) *PersonaSelector {
	return &PersonaSelector{
		personas:   personas,
		affinities: affinities,
		log:        log,
	}
}

// Select returns the preferred persona if it exists in the registry, else the
// persona with the highest affinity, else the registry default. It never
// fails: store errors are logged and fall through to the default.
func (s *PersonaSelector) Select(ctx context.Context, userID uuid.UUID, preferred *string) domain.Persona {
	if preferred != nil && *preferred != "" {
		if p, ok := s.personas.Get(*preferred); ok {
			return p
		}
		s.log.DebugContext(ctx, "preferred persona not in registry",
			slog.String("user_id", userID.String()),
			slog.String("persona", *preferred),
		)
	}

	top, err := s.affinities.TopPersona(ctx, userID)
	switch {
	case err == nil:
		if p, ok := s.personas.Get(top); ok {
			return p
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		s.log.WarnContext(ctx, "affinity lookup failed, using default persona",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	return s.personas.Default()
}
