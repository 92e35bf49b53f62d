package sync

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Applier applies one decoded message.
type Applier interface {
	Apply(ctx context.Context, m Message) error
}

// Metrics counts message outcomes.
type Metrics interface {
	SyncOutcome(msgType, outcome string)
}

type nopMetrics struct{}

func (nopMetrics) SyncOutcome(string, string) {}

// Sync outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeDropped  = "dropped"
)

// Backoff bounds the retries of one message or one resync burst.
type Backoff struct {
	Attempts  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultBackoff makes six attempts over roughly six seconds.
var DefaultBackoff = Backoff{Attempts: 6, BaseDelay: 250 * time.Millisecond, MaxDelay: 2 * time.Second}

func (b Backoff) policy() retry.Backoff {
	if b.BaseDelay <= 0 {
		b.BaseDelay = DefaultBackoff.BaseDelay
	}
	if b.MaxDelay < b.BaseDelay {
		b.MaxDelay = b.BaseDelay
	}
	retries := uint64(0)
	if b.Attempts > 1 {
		retries = uint64(b.Attempts - 1)
	}
	return retry.WithMaxRetries(retries, retry.WithCappedDuration(b.MaxDelay, retry.NewExponential(b.BaseDelay)))
}

// Worker decodes project records and applies them with bounded retry.
type Worker struct {
	apply   Applier
	backoff Backoff
	metrics Metrics
	log     *zap.Logger
}

// NewWorker returns a worker. Nil metrics and logger are replaced by no-ops.
func NewWorker(apply Applier, backoff Backoff, metrics Metrics, log *zap.Logger) *Worker {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Worker{apply: apply, backoff: backoff, metrics: metrics, log: log}
}

// Handle processes one record value. Undecodable and permanently rejected
// messages are logged and dropped; an error is returned only when retries
// are exhausted or ctx ends.
func (w *Worker) Handle(ctx context.Context, value []byte) error {
	m, err := Decode(value)
	if err != nil {
		w.metrics.SyncOutcome("unknown", OutcomeDropped)
		w.log.Error("drop project message", zap.Error(err))
		return nil
	}
	typ := string(m.Type())
	logger := w.log.With(zap.String("type", typ), zap.String("project_id", m.Project().String()))

	attempt := 0
	err = retry.Do(ctx, w.backoff.policy(), func(ctx context.Context) error {
		attempt++
		err := w.apply.Apply(ctx, m)
		if err == nil || permanent(err) {
			return err
		}
		logger.Warn("apply project message", zap.Int("attempt", attempt), zap.Error(err))
		return retry.RetryableError(err)
	})

	switch {
	case err == nil:
		w.metrics.SyncOutcome(typ, OutcomeApplied)
		return nil
	case permanent(err):
		w.metrics.SyncOutcome(typ, OutcomeRejected)
		logger.Warn("project message rejected", zap.Error(err))
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	w.metrics.SyncOutcome(typ, OutcomeFailed)
	logger.Error("project message failed", zap.Int("attempts", attempt), zap.Error(err))
	return err
}
