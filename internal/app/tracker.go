package app

import (
	"sync"
	"time"

	"github.com/heartmarshall/fortune-watch/internal/domain"
	"github.com/heartmarshall/fortune-watch/internal/service/watch"
	"github.com/heartmarshall/fortune-watch/internal/transport/rest"
)

// batchTracker remembers the latest run of each family for the /health endpoint.
type batchTracker struct {
	mu   sync.Mutex
	last map[domain.Family]rest.BatchStatus
	now  func() time.Time
}

func newBatchTracker() *batchTracker {
	return &batchTracker{last: make(map[domain.Family]rest.BatchStatus), now: time.Now}
}

func (t *batchTracker) observe(res watch.BatchResult, err error) {
	st := rest.BatchStatus{
		Family:     string(res.Family),
		FinishedAt: t.now().UTC(),
		Sent:       res.Sent,
		Errors:     res.Errors,
		Skipped:    res.Skipped,
		Duration:   res.Duration.String(),
	}
	if err != nil {
		st.Error = err.Error()
	}

	t.mu.Lock()
	t.last[res.Family] = st
	t.mu.Unlock()
}

// LastBatches returns one status per family that has run, in family order.
func (t *batchTracker) LastBatches() []rest.BatchStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]rest.BatchStatus, 0, len(t.last))
	for _, f := range domain.Families {
		if st, ok := t.last[f]; ok {
			out = append(out, st)
		}
	}
	return out
}
