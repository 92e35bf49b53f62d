package sync

import (
	"context"
	"errors"
	gosync "sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/projeli/wiki-service/internal/errs"
)

// projectService answers resync requests by applying a snapshot, the way
// the owning service would republish it.
type projectService struct {
	mu       gosync.Mutex
	rec      *Reconciler
	requests []ResyncRequest
	known    map[uuid.UUID]bool
	fail     error
}

func (p *projectService) RequestResync(ctx context.Context, req ResyncRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.requests = append(p.requests, req)
	if !p.known[req.ProjectID] {
		return nil
	}
	return p.rec.Apply(ctx, &ProjectCreated{snapshot(req.ProjectID, "Projeli", ProjectMember{UserID: "u1", IsOwner: true})})
}

// onceThrottle grants each key once.
type onceThrottle struct {
	mu   gosync.Mutex
	held map[string]bool
	err  error
}

func (o *onceThrottle) Acquire(_ context.Context, key string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return false, o.err
	}
	if o.held[key] {
		return false, nil
	}
	o.held[key] = true
	return true, nil
}

func TestResyncer_ExistingWikiPublishesNothing(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())
	require.NoError(t, e.rec.Apply(context.Background(), &ProjectCreated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1", IsOwner: true})}))
	pub := &projectService{rec: e.rec}

	r := NewResyncer(e.svc.Wikis, pub, &onceThrottle{held: map[string]bool{}}, fastBackoff, zaptest.NewLogger(t))
	w, err := r.EnsureWiki(context.Background(), pid)
	require.NoError(t, err)
	require.Equal(t, pid, w.ProjectID)
	require.Empty(t, pub.requests)
}

func TestResyncer_RecoversMissingWiki(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())
	pub := &projectService{rec: e.rec, known: map[uuid.UUID]bool{pid: true}}

	r := NewResyncer(e.svc.Wikis, pub, &onceThrottle{held: map[string]bool{}}, fastBackoff, zaptest.NewLogger(t))
	w, err := r.EnsureWiki(context.Background(), pid)
	require.NoError(t, err)
	require.Equal(t, pid, w.ProjectID)
	require.Len(t, pub.requests, 1)
}

func TestResyncer_PublishesOncePerBurst(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())
	pub := &projectService{rec: e.rec}

	r := NewResyncer(e.svc.Wikis, pub, nil, fastBackoff, zaptest.NewLogger(t))
	_, err := r.EnsureWiki(context.Background(), pid)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Len(t, pub.requests, 1)
}

func TestResyncer_ThrottleCollapsesCallers(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())
	pub := &projectService{rec: e.rec}
	r := NewResyncer(e.svc.Wikis, pub, &onceThrottle{held: map[string]bool{}}, fastBackoff, zaptest.NewLogger(t))

	var wg gosync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.EnsureWiki(context.Background(), pid)
		}()
	}
	wg.Wait()

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.requests, 1)
}

func TestResyncer_ThrottleErrorFailsOpen(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())
	pub := &projectService{rec: e.rec, known: map[uuid.UUID]bool{pid: true}}
	th := &onceThrottle{held: map[string]bool{}, err: errors.New("redis down")}

	r := NewResyncer(e.svc.Wikis, pub, th, fastBackoff, zaptest.NewLogger(t))
	_, err := r.EnsureWiki(context.Background(), pid)
	require.NoError(t, err)
}
