package sync

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/repository/memory"
	"github.com/projeli/wiki-service/internal/service"
)

type env struct {
	svc *service.Services
	log *eventlog.Memory
	rec *Reconciler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	logger := zaptest.NewLogger(t)
	store := memory.NewStore()
	log := eventlog.NewMemory(nil, logger)
	svc := service.New(service.Deps{
		Wikis:      store.Wikis(),
		Members:    store.Members(),
		Categories: store.Categories(),
		Pages:      store.Pages(),
		Events:     log,
		Log:        logger,
	})
	return &env{svc: svc, log: log, rec: NewReconciler(svc, logger)}
}

func (e *env) kinds(t *testing.T, projectID uuid.UUID) []event.Kind {
	t.Helper()
	w, err := e.svc.Wikis.GetByProjectID(context.Background(), service.System(), projectID)
	if err != nil {
		t.Fatalf("get wiki: %v", err)
	}
	return e.log.Kinds(w.ID)
}

func snapshot(id uuid.UUID, name string, members ...ProjectMember) ProjectState {
	return ProjectState{ProjectID: id, ProjectName: name, ProjectSlug: "projeli", Members: members}
}

func eventsOf(wikiID uuid.UUID, kinds ...event.Kind) eventlog.Query {
	return eventlog.Query{WikiID: wikiID, Kinds: kinds, Page: 1, PageSize: 50, Direction: eventlog.Forward}
}

var fastBackoff = Backoff{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
