package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// resolveGreetings emits one daily greeting per watch-mode user.
func (s *Service) resolveGreetings(ctx context.Context, today time.Time) ([]domain.Trigger, error) {
	users, err := s.settings.ListEligible(ctx, domain.AudienceWatch)
	if err != nil {
		return nil, fmt.Errorf("list watch audience: %w", err)
	}

	triggers := make([]domain.Trigger, len(users))
	for i, u := range users {
		triggers[i] = domain.Trigger{
			UserID:             u.UserID,
			Type:               domain.TriggerDailyGreeting,
			Date:               today,
			Weekday:            today.Weekday(),
			PreferredPersonaID: u.PreferredPersonaID,
		}
	}
	return triggers, nil
}
