package watch

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// BatchResult summarizes one batch run.
type BatchResult struct {
	Family domain.Family
	// Sent counts newly recorded deliveries.
	Sent int
	// Errors counts pairs that failed and were skipped.
	Errors int
	// Skipped counts pairs already delivered earlier the same day.
	Skipped  int
	Duration time.Duration
}

// LogValue implements slog.LogValuer.
func (r BatchResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("family", string(r.Family)),
		slog.Int("sent", r.Sent),
		slog.Int("errors", r.Errors),
		slog.Int("skipped", r.Skipped),
		slog.Duration("duration", r.Duration),
	)
}
