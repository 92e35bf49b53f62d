package sync

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/limiter"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/service"
)

// Publisher sends resync requests to the project service.
type Publisher interface {
	RequestResync(ctx context.Context, req ResyncRequest) error
}

// Resyncer recovers wikis whose creation message was lost.
type Resyncer struct {
	wikis    *service.WikiService
	pub      Publisher
	throttle limiter.Throttle
	backoff  Backoff
	log      *zap.Logger
	now      func() time.Time
}

// NewResyncer returns a resyncer. A nil throttle publishes on every burst.
func NewResyncer(wikis *service.WikiService, pub Publisher, throttle limiter.Throttle, backoff Backoff, log *zap.Logger) *Resyncer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resyncer{wikis: wikis, pub: pub, throttle: throttle, backoff: backoff, log: log, now: time.Now}
}

// EnsureWiki returns the wiki of projectID as the system sees it. When it
// is missing one resync request is published and the lookup is retried
// until the wiki appears, the attempts run out (errs.ErrNotFound) or ctx
// ends.
func (r *Resyncer) EnsureWiki(ctx context.Context, projectID uuid.UUID) (*model.Wiki, error) {
	requested := false
	return retry.DoValue(ctx, r.backoff.policy(), func(ctx context.Context) (*model.Wiki, error) {
		w, err := r.wikis.GetByProjectID(ctx, service.System(), projectID)
		if !errors.Is(err, errs.ErrNotFound) {
			return w, err
		}
		if !requested {
			requested = true
			r.request(ctx, projectID)
		}
		return nil, retry.RetryableError(err)
	})
}

func (r *Resyncer) request(ctx context.Context, projectID uuid.UUID) {
	logger := r.log.With(zap.String("project_id", projectID.String()))
	if r.throttle != nil {
		ok, err := r.throttle.Acquire(ctx, "resync:"+projectID.String())
		switch {
		case err != nil:
			logger.Warn("resync throttle unavailable", zap.Error(err))
		case !ok:
			logger.Debug("resync already requested")
			return
		}
	}
	if err := r.pub.RequestResync(ctx, ResyncRequest{ProjectID: projectID, RequestedAt: r.now().UTC()}); err != nil {
		logger.Warn("publish resync request", zap.Error(err))
		return
	}
	logger.Info("resync requested")
}
