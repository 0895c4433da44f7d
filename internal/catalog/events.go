package catalog

import (
	"fmt"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// LunarCalendar decides whether a lunar catalog entry occurs on a date.
// No implementation ships yet; without one, lunar entries never match.
type LunarCalendar interface {
	Matches(date time.Time, event domain.CalendarEvent) bool
}

type monthDay struct {
	month time.Month
	day   int
}

// Catalog indexes calendar events by (month, day).
type Catalog struct {
	byDate map[monthDay][]domain.CalendarEvent
	lunar  []domain.CalendarEvent
	moon   LunarCalendar
	size   int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLunarCalendar enables lunar entries through the given calculator.
func WithLunarCalendar(lc LunarCalendar) Option {
	return func(c *Catalog) { c.moon = lc }
}

type eventFile struct {
	Events []eventEntry `yaml:"events"`
}

type eventEntry struct {
	Name        string `yaml:"name"`
	Month       int    `yaml:"month"`
	Day         int    `yaml:"day"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// LoadCatalog parses the events file at path (embedded catalog when empty).
func LoadCatalog(path string, opts ...Option) (*Catalog, error) {
	b, err := readSource(path, "events.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var f eventFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse events: %w", err)
	}

	events := make([]domain.CalendarEvent, 0, len(f.Events))
	for _, e := range f.Events {
		events = append(events, domain.CalendarEvent{
			Name:        e.Name,
			Month:       time.Month(e.Month),
			Day:         e.Day,
			EventType:   domain.EventType(e.Type),
			Description: e.Description,
		})
	}

	return NewCatalog(events, opts...)
}

// NewCatalog validates events and builds the date index.
func NewCatalog(events []domain.CalendarEvent, opts ...Option) (*Catalog, error) {
	c := &Catalog{byDate: make(map[monthDay][]domain.CalendarEvent)}
	for _, opt := range opts {
		opt(c)
	}

	for i, e := range events {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: event %d: %w", i, domain.NewValidationError("event", "name", "required"))
		}
		if !e.EventType.IsValid() {
			return nil, fmt.Errorf("catalog: event %q: %w", e.Name, domain.NewValidationError("event", "type", fmt.Sprintf("unknown type %q", e.EventType)))
		}

		if e.EventType == domain.EventTypeLunar {
			e.Month, e.Day = 0, 0
			c.lunar = append(c.lunar, e)
			c.size++
			continue
		}

		if e.Month < time.January || e.Month > time.December || e.Day < 1 || e.Day > domain.DaysIn(e.Month, 2024) {
			return nil, fmt.Errorf("catalog: event %q: %w", e.Name, domain.NewValidationError("event", "date", fmt.Sprintf("invalid date %d/%d", e.Month, e.Day)))
		}

		key := monthDay{month: e.Month, day: e.Day}
		c.byDate[key] = append(c.byDate[key], e)
		c.size++
	}

	return c, nil
}

// ListEventsOn returns the fixed-date events on exactly (month, day).
func (c *Catalog) ListEventsOn(month time.Month, day int) []domain.CalendarEvent {
	return slices.Clone(c.byDate[monthDay{month: month, day: day}])
}

// EventsOn returns every event observed on date: fixed-date entries plus the
// lunar entries the configured LunarCalendar reports for that date.
func (c *Catalog) EventsOn(date time.Time) []domain.CalendarEvent {
	events := c.ListEventsOn(date.Month(), date.Day())
	if c.moon == nil {
		return events
	}
	for _, e := range c.lunar {
		if c.moon.Matches(date, e) {
			events = append(events, e)
		}
	}
	return events
}

// Len returns the total number of catalog entries, lunar included.
func (c *Catalog) Len() int { return c.size }
