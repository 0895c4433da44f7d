package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// Recorder appends delivery records to the ledger.
type Recorder struct {
	deliveries deliveryRepo
	now        func() time.Time
	newID      func() uuid.UUID
}

// NewRecorder creates a new Recorder.
func NewRecorder(deliveries deliveryRepo) *Recorder {
	return &Recorder{
		deliveries: deliveries,
		now:        time.Now,
		newID:      uuid.New,
	}
}

// Recorded reports whether the trigger was already delivered on its date.
func (r *Recorder) Recorded(ctx context.Context, tr domain.Trigger) (bool, error) {
	exists, err := r.deliveries.Exists(ctx, tr.Key())
	if err != nil {
		return false, fmt.Errorf("check delivery: %w", err)
	}
	return exists, nil
}

// Record persists a sent delivery for the trigger. It returns false when a
// record with the same user, date, trigger type and source already exists.
func (r *Recorder) Record(ctx context.Context, tr domain.Trigger, personaID string, msg Message) (bool, error) {
	now := r.now().UTC()

	inserted, err := r.deliveries.Insert(ctx, domain.DeliveryRecord{
		ID:           r.newID(),
		UserID:       tr.UserID,
		PersonaID:    personaID,
		TriggerType:  tr.Type,
		SourceKey:    tr.SourceKey,
		DeliveryDate: tr.Date,
		Title:        msg.Title,
		Content:      msg.Content,
		Status:       domain.DeliveryStatusSent,
		ScheduledAt:  now,
		SentAt:       &now,
	})
	if err != nil {
		return false, fmt.Errorf("record delivery: %w", err)
	}
	return inserted, nil
}
