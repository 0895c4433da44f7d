package domain

// TriggerType identifies why a proactive message is sent.
type TriggerType string

const (
	TriggerCalendarEvent       TriggerType = "calendar_event"
	TriggerAnniversaryToday    TriggerType = "anniversary_today"
	TriggerAnniversaryReminder TriggerType = "anniversary_reminder"
	TriggerDailyGreeting       TriggerType = "daily_greeting"
)

func (t TriggerType) String() string { return string(t) }

func (t TriggerType) IsValid() bool {
	switch t {
	case TriggerCalendarEvent, TriggerAnniversaryToday, TriggerAnniversaryReminder, TriggerDailyGreeting:
		return true
	}
	return false
}

// DeliveryStatus is the outcome stored on a delivery record.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

func (s DeliveryStatus) String() string { return string(s) }

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusSent, DeliveryStatusFailed:
		return true
	}
	return false
}

// EventType classifies catalog events.
type EventType string

const (
	EventTypeSeasonal    EventType = "seasonal"
	EventTypeTraditional EventType = "traditional"
	EventTypeLunar       EventType = "lunar"
)

func (e EventType) String() string { return string(e) }

func (e EventType) IsValid() bool {
	switch e {
	case EventTypeSeasonal, EventTypeTraditional, EventTypeLunar:
		return true
	}
	return false
}

// Family groups trigger types into independently scheduled batches.
type Family string

const (
	FamilyCalendar    Family = "calendar"
	FamilyAnniversary Family = "anniversary"
	FamilyDaily       Family = "daily"
)

// Families lists every batch family in run order.
var Families = []Family{FamilyCalendar, FamilyAnniversary, FamilyDaily}

func (f Family) String() string { return string(f) }

func (f Family) IsValid() bool {
	switch f {
	case FamilyCalendar, FamilyAnniversary, FamilyDaily:
		return true
	}
	return false
}

// Audience selects which opt-in flags a user must have to receive a family
// of messages. Watch mode is always required.
type Audience string

const (
	AudienceWatch       Audience = "watch"
	AudienceCalendar    Audience = "calendar"
	AudienceAnniversary Audience = "anniversary"
)

func (a Audience) String() string { return string(a) }

func (a Audience) IsValid() bool {
	switch a {
	case AudienceWatch, AudienceCalendar, AudienceAnniversary:
		return true
	}
	return false
}

// Audience returns the opt-in audience of the family.
func (f Family) Audience() Audience {
	switch f {
	case FamilyCalendar:
		return AudienceCalendar
	case FamilyAnniversary:
		return AudienceAnniversary
	}
	return AudienceWatch
}
