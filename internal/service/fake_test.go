package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/repository/memory"
)

// failingEvents rejects every append.
type failingEvents struct{ *eventlog.Memory }

func (failingEvents) Append(context.Context, uuid.UUID, string, event.Payload) (event.Event, error) {
	return event.Event{}, errors.New("log unavailable")
}

type countingMetrics struct {
	mu       sync.Mutex
	appended map[event.Kind]int
	failed   map[event.Kind]int
	rejected map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{appended: map[event.Kind]int{}, failed: map[event.Kind]int{}, rejected: map[string]int{}}
}

func (m *countingMetrics) EventAppended(k event.Kind) { m.mu.Lock(); m.appended[k]++; m.mu.Unlock() }
func (m *countingMetrics) AppendFailed(k event.Kind)  { m.mu.Lock(); m.failed[k]++; m.mu.Unlock() }
func (m *countingMetrics) Rejected(op, reason string) {
	m.mu.Lock()
	m.rejected[op+"/"+reason]++
	m.mu.Unlock()
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *recordingNotifier) Notify(_ context.Context, ns []Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, ns...)
	return nil
}

type harness struct {
	*Services
	store    *memory.Store
	log      *eventlog.Memory
	metrics  *countingMetrics
	notifier *recordingNotifier
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.NewStore()
	logger := zaptest.NewLogger(t)
	h := &harness{
		store:    store,
		log:      eventlog.NewMemory(nil, logger),
		metrics:  newCountingMetrics(),
		notifier: &recordingNotifier{},
	}
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.Services = New(Deps{
		Wikis:      store.Wikis(),
		Members:    store.Members(),
		Categories: store.Categories(),
		Pages:      store.Pages(),
		Events:     h.log,
		Notifier:   h.notifier,
		Metrics:    h.metrics,
		Log:        logger,
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	return h
}

// seedWiki creates a wiki owned by u1 with members u2 and u3, returning it
// after granting u2 the given permissions.
func (h *harness) seedWiki(t *testing.T, u2perms model.Permissions) *model.Wiki {
	t.Helper()
	ctx := context.Background()
	w, err := h.Wikis.Create(ctx, User("u1"), CreateWikiInput{
		ProjectID:   uuid.Must(uuid.NewV7()),
		ProjectName: "Projeli",
		ProjectSlug: "projeli",
		Members: []MemberInput{
			{UserID: "u1", IsOwner: true},
			{UserID: "u2"},
			{UserID: "u3"},
		},
	})
	if err != nil {
		t.Fatalf("create wiki: %v", err)
	}
	if u2perms != model.PermNone {
		m, _ := w.Member("u2")
		if _, err := h.Members.UpdatePermissions(ctx, User("u1"), w.ID, m.ID, u2perms); err != nil {
			t.Fatalf("grant u2: %v", err)
		}
	}
	return w
}

func (h *harness) events(wikiID uuid.UUID) []event.Kind { return h.log.Kinds(wikiID) }
