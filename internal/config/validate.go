package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Watch.validate(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))

	switch l.Provider {
	case ProviderAnthropic, ProviderGemini:
		if l.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", l.Provider)
		}
	case ProviderNone:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}

	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}

	return nil
}

func (w *WatchConfig) validate() error {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", w.Timezone, err)
	}
	w.Location = loc

	if w.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1 (got %d)", w.Concurrency)
	}
	if w.GenerateTimeout <= 0 {
		return fmt.Errorf("generate_timeout must be > 0 (got %v)", w.GenerateTimeout)
	}
	if w.BatchTimeout <= 0 {
		return fmt.Errorf("batch_timeout must be > 0 (got %v)", w.BatchTimeout)
	}
	if strings.TrimSpace(w.DefaultPersonaID) == "" {
		return fmt.Errorf("default_persona_id must not be empty")
	}

	return nil
}

func (s *ScheduleConfig) validate() error {
	specs := map[string]string{
		"calendar":    s.Calendar,
		"anniversary": s.Anniversary,
		"daily":       s.Daily,
	}
	for name, spec := range specs {
		if len(strings.Fields(spec)) != 5 {
			return fmt.Errorf("%s: crontab spec must have 5 fields (got %q)", name, spec)
		}
	}
	return nil
}
