package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompanionSettings holds a user's watch-mode opt-ins. The settings UI owns
// writes; the scheduler only reads.
type CompanionSettings struct {
	UserID                          uuid.UUID
	WatchModeEnabled                bool
	CalendarNotificationsEnabled    bool
	AnniversaryNotificationsEnabled bool
	PreferredPersonaID              *string
	UpdatedAt                       time.Time
}

// Anniversary is a user-defined yearly date.
type Anniversary struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Month               int
	Day                 int
	Category            string
	ReminderDaysBefore  int
	NotificationEnabled bool
}

// Validate checks that the anniversary describes a real calendar date.
// February 29 is accepted.
func (a Anniversary) Validate() error {
	var errs []FieldError

	if a.Month < 1 || a.Month > 12 {
		errs = append(errs, FieldError{Field: "month", Message: "must be between 1 and 12"})
	} else if a.Day < 1 || a.Day > DaysIn(time.Month(a.Month), 2024) {
		errs = append(errs, FieldError{Field: "day", Message: "not a valid day for month"})
	}
	if a.ReminderDaysBefore < 0 {
		errs = append(errs, FieldError{Field: "reminder_days_before", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &ValidationError{Entity: "anniversary", Errors: errs}
	}
	return nil
}

// PersonaAffinity is a per-user, per-persona interaction level.
type PersonaAffinity struct {
	UserID    uuid.UUID
	PersonaID string
	Level     int
}

// CalendarEvent is a catalog observance. Lunar events have zero Month and Day.
type CalendarEvent struct {
	Name        string
	Month       time.Month
	Day         int
	EventType   EventType
	Description string
}

// IsFixedDate reports whether the event is resolvable from month and day alone.
func (e CalendarEvent) IsFixedDate() bool {
	return e.EventType != EventTypeLunar && e.Month != 0 && e.Day != 0
}

// Persona is a fortune-teller character used to style generated text.
type Persona struct {
	ID          string
	DisplayName string
	Tone        string
	Focus       string
}

// DeliveryRecord is the append-only ledger row of a proactive message.
type DeliveryRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	PersonaID    string
	TriggerType  TriggerType
	SourceKey    string
	DeliveryDate time.Time
	Title        string
	Content      string
	Status       DeliveryStatus
	ScheduledAt  time.Time
	SentAt       *time.Time
}

// DeliveryKey identifies one message per user, day, trigger and source.
type DeliveryKey struct {
	UserID       uuid.UUID
	DeliveryDate time.Time
	TriggerType  TriggerType
	SourceKey    string
}

// Key returns the idempotency key of the record.
func (r DeliveryRecord) Key() DeliveryKey {
	return DeliveryKey{
		UserID:       r.UserID,
		DeliveryDate: r.DeliveryDate,
		TriggerType:  r.TriggerType,
		SourceKey:    r.SourceKey,
	}
}

// DaysIn returns the number of days in the month of the given year.
func DaysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
