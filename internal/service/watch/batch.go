package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fortune-watch/internal/domain"
	"github.com/heartmarshall/fortune-watch/pkg/ctxutil"
)

type resolveFunc func(ctx context.Context, today time.Time) ([]domain.Trigger, error)

type outcome int

const (
	outcomeSent outcome = iota
	outcomeSkipped
	outcomeError
)

// RunCalendarEventBatch messages calendar-opted users about today's catalog events.
func (s *Service) RunCalendarEventBatch(ctx context.Context) (BatchResult, error) {
	return s.runBatch(ctx, domain.FamilyCalendar, s.resolveCalendar)
}

// RunAnniversaryReminderBatch messages users whose anniversary is today or
// whose reminder day is today.
func (s *Service) RunAnniversaryReminderBatch(ctx context.Context) (BatchResult, error) {
	return s.runBatch(ctx, domain.FamilyAnniversary, s.resolveAnniversaries)
}

// RunDailyGreetingBatch sends one greeting to every watch-mode user.
func (s *Service) RunDailyGreetingBatch(ctx context.Context) (BatchResult, error) {
	return s.runBatch(ctx, domain.FamilyDaily, s.resolveGreetings)
}

// Run dispatches to the batch of the given family.
func (s *Service) Run(ctx context.Context, family domain.Family) (BatchResult, error) {
	switch family {
	case domain.FamilyCalendar:
		return s.RunCalendarEventBatch(ctx)
	case domain.FamilyAnniversary:
		return s.RunAnniversaryReminderBatch(ctx)
	case domain.FamilyDaily:
		return s.RunDailyGreetingBatch(ctx)
	}
	return BatchResult{Family: family}, fmt.Errorf("run batch: unknown family %q: %w", family, domain.ErrValidation)
}

// RunAll runs every family in order. A failed family does not prevent the
// next one from running unless the context is done.
func (s *Service) RunAll(ctx context.Context) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(domain.Families))
	var errs []error

	for _, family := range domain.Families {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := s.Run(ctx, family)
		results = append(results, res)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", family, err))
		}
	}

	return results, errors.Join(errs...)
}

// runBatch applies the batch timeout, runs the family and reports the
// outcome to OnFinish.
func (s *Service) runBatch(ctx context.Context, family domain.Family, resolve resolveFunc) (BatchResult, error) {
	if s.batchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.batchTimeout)
		defer cancel()
	}

	res, err := s.execute(ctxutil.WithRunID(ctx, uuid.New()), family, resolve)
	if s.onFinish != nil {
		s.onFinish(res, err)
	}
	return res, err
}

// execute resolves the family's triggers and processes each pair with
// bounded concurrency. Failures inside a pair are counted, never returned.
func (s *Service) execute(ctx context.Context, family domain.Family, resolve resolveFunc) (BatchResult, error) {
	start := s.now()
	today := civilDate(start, s.loc)
	result := BatchResult{Family: family}
	log := s.log.With(slog.String("family", string(family)), slog.String("date", today.Format(time.DateOnly)))

	triggers, err := resolve(ctx, today)
	if err != nil {
		result.Duration = s.now().Sub(start)
		log.ErrorContext(ctx, "resolve triggers failed", slog.String("error", err.Error()))
		return result, fmt.Errorf("resolve %s triggers: %w", family, err)
	}

	var sent, failed, skipped atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, tr := range triggers {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			switch s.processPair(ctx, tr) {
			case outcomeSent:
				sent.Add(1)
			case outcomeSkipped:
				skipped.Add(1)
			case outcomeError:
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result.Sent = int(sent.Load())
	result.Errors = int(failed.Load())
	result.Skipped = int(skipped.Load())
	result.Duration = s.now().Sub(start)

	if err := ctx.Err(); err != nil {
		log.WarnContext(ctx, "batch interrupted",
			slog.Int("pairs", len(triggers)),
			slog.Any("result", result),
		)
		return result, err
	}

	log.InfoContext(ctx, "batch finished",
		slog.Int("pairs", len(triggers)),
		slog.Any("result", result),
	)
	return result, nil
}

// processPair runs the idempotency check, persona selection, composition
// and recording for one trigger. Panics are recovered and reported as errors.
func (s *Service) processPair(ctx context.Context, tr domain.Trigger) (out outcome) {
	log := s.log.With(
		slog.String("user_id", tr.UserID.String()),
		slog.String("trigger", string(tr.Type)),
		slog.String("source", tr.SourceKey),
	)

	defer func() {
		if rec := recover(); rec != nil {
			log.ErrorContext(ctx, "panic while processing pair",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			out = outcomeError
		}
	}()

	done, err := s.recorder.Recorded(ctx, tr)
	if err != nil {
		log.ErrorContext(ctx, "delivery pre-check failed", slog.String("error", err.Error()))
		return outcomeError
	}
	if done {
		log.DebugContext(ctx, "already delivered today")
		return outcomeSkipped
	}

	persona := s.selector.Select(ctx, tr.UserID, tr.PreferredPersonaID)
	msg := s.composer.Compose(ctx, tr, persona)

	inserted, err := s.recorder.Record(ctx, tr, persona.ID, msg)
	if err != nil {
		log.ErrorContext(ctx, "record delivery failed",
			slog.String("persona", persona.ID),
			slog.String("error", err.Error()),
		)
		return outcomeError
	}
	if !inserted {
		log.DebugContext(ctx, "delivery recorded concurrently")
		return outcomeSkipped
	}

	log.InfoContext(ctx, "delivery recorded",
		slog.String("persona", persona.ID),
		slog.Bool("generated", msg.Generated),
	)
	return outcomeSent
}
