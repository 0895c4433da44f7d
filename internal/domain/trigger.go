package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trigger is a resolver decision that a user should receive a message today.
// Exactly one of the context payloads is set, matching Type.
type Trigger struct {
	UserID uuid.UUID
	Type   TriggerType
	// SourceKey distinguishes multiple triggers of one type on the same day:
	// the event name or the anniversary id. Empty for greetings.
	SourceKey string
	// Date is the civil day the trigger was resolved for, at UTC midnight.
	Date time.Time

	Event       *CalendarEvent
	Anniversary *Anniversary
	DaysUntil   int
	Weekday     time.Weekday

	// PreferredPersonaID is carried from CompanionSettings when the resolver
	// already loaded them.
	PreferredPersonaID *string
}

// Key returns the delivery idempotency key for the trigger.
func (t Trigger) Key() DeliveryKey {
	return DeliveryKey{
		UserID:       t.UserID,
		DeliveryDate: t.Date,
		TriggerType:  t.Type,
		SourceKey:    t.SourceKey,
	}
}
