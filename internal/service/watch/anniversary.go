package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// resolveAnniversaries loads notifiable anniversaries and keeps those that
// fall today or whose reminder day is today. Invalid rows are skipped.
func (s *Service) resolveAnniversaries(ctx context.Context, today time.Time) ([]domain.Trigger, error) {
	anniversaries, err := s.anniversaries.ListNotifiable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifiable anniversaries: %w", err)
	}
	if len(anniversaries) == 0 {
		return nil, nil
	}

	users, err := s.settings.ListEligible(ctx, domain.AudienceAnniversary)
	if err != nil {
		return nil, fmt.Errorf("list anniversary audience: %w", err)
	}
	preferred := make(map[uuid.UUID]*string, len(users))
	for _, u := range users {
		preferred[u.UserID] = u.PreferredPersonaID
	}

	var triggers []domain.Trigger
	for _, a := range anniversaries {
		if err := a.Validate(); err != nil {
			s.log.WarnContext(ctx, "skipping invalid anniversary",
				slog.String("anniversary_id", a.ID.String()),
				slog.String("user_id", a.UserID.String()),
				slog.Int("month", a.Month),
				slog.Int("day", a.Day),
				slog.String("error", err.Error()),
			)
			continue
		}

		tr, ok := ResolveAnniversary(today, a)
		if !ok {
			continue
		}
		tr.PreferredPersonaID = preferred[a.UserID]
		triggers = append(triggers, tr)
	}
	return triggers, nil
}

// ResolveAnniversary decides whether the anniversary fires on today's civil
// date. It fires anniversary_today on the date itself and
// anniversary_reminder exactly ReminderDaysBefore days earlier. A February
// 29 anniversary is observed on February 28 in non-leap years. Invalid
// anniversaries never fire.
func ResolveAnniversary(today time.Time, a domain.Anniversary) (domain.Trigger, bool) {
	if a.Validate() != nil {
		return domain.Trigger{}, false
	}
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	daysUntil := DaysUntil(today, a.Month, a.Day)

	var kind domain.TriggerType
	switch {
	case daysUntil == 0:
		kind = domain.TriggerAnniversaryToday
	case a.ReminderDaysBefore > 0 && daysUntil == a.ReminderDaysBefore:
		kind = domain.TriggerAnniversaryReminder
	default:
		return domain.Trigger{}, false
	}

	ann := a
	return domain.Trigger{
		UserID:      a.UserID,
		Type:        kind,
		SourceKey:   a.ID.String(),
		Date:        today,
		Anniversary: &ann,
		DaysUntil:   daysUntil,
	}, true
}

// DaysUntil returns the whole civil days from today to the next occurrence
// of month/day on or after today.
func DaysUntil(today time.Time, month, day int) int {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	next := occurrence(today.Year(), month, day)
	if next.Before(today) {
		next = occurrence(today.Year()+1, month, day)
	}
	return int(next.Sub(today).Hours() / 24)
}

// occurrence returns the observed date of month/day in year.
func occurrence(year, month, day int) time.Time {
	m := time.Month(month)
	if last := domain.DaysIn(m, year); day > last {
		day = last
	}
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}
