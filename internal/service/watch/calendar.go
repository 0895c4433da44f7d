package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// resolveCalendar emits one trigger per (user, event) for today's catalog
// events. With no events today the store is not read at all.
func (s *Service) resolveCalendar(ctx context.Context, today time.Time) ([]domain.Trigger, error) {
	events := s.events.EventsOn(today)
	if len(events) == 0 {
		s.log.DebugContext(ctx, "no calendar events today", "date", today.Format(time.DateOnly))
		return nil, nil
	}

	users, err := s.settings.ListEligible(ctx, domain.AudienceCalendar)
	if err != nil {
		return nil, fmt.Errorf("list calendar audience: %w", err)
	}

	return CalendarTriggers(today, events, users), nil
}

// CalendarTriggers pairs every user with every event. Each event keeps its
// own source key so several events on one day yield several messages.
func CalendarTriggers(today time.Time, events []domain.CalendarEvent, users []domain.CompanionSettings) []domain.Trigger {
	triggers := make([]domain.Trigger, 0, len(events)*len(users))
	for _, u := range users {
		for _, ev := range events {
			triggers = append(triggers, domain.Trigger{
				UserID:             u.UserID,
				Type:               domain.TriggerCalendarEvent,
				SourceKey:          ev.Name,
				Date:               today,
				Event:              &ev,
				PreferredPersonaID: u.PreferredPersonaID,
			})
		}
	}
	return triggers
}
