package sync

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/repository"
	"github.com/projeli/wiki-service/internal/repository/memory"
	"github.com/projeli/wiki-service/internal/service"
)

func TestReconciler_CreateIsIdempotent(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	pid := uuid.Must(uuid.NewV7())
	msg := &ProjectCreated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1", IsOwner: true}, ProjectMember{UserID: "u2"})}

	require.NoError(t, e.rec.Apply(ctx, msg))
	require.NoError(t, e.rec.Apply(ctx, msg))

	w, err := e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.NoError(t, err)
	require.Len(t, w.Members, 2)
	require.Equal(t, model.WikiDraft, w.Status)
	require.Equal(t, []event.Kind{event.KindWikiCreated}, e.kinds(t, pid))
}

func TestReconciler_UpdatedConverges(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	pid := uuid.Must(uuid.NewV7())

	// an update for an unknown project creates the wiki
	first := &ProjectUpdated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1", IsOwner: true})}
	require.NoError(t, e.rec.Apply(ctx, first))

	second := &ProjectUpdated{snapshot(pid, "Projeli 2",
		ProjectMember{UserID: "u1"}, ProjectMember{UserID: "u2", IsOwner: true}, ProjectMember{UserID: "u3"})}
	require.NoError(t, e.rec.Apply(ctx, second))
	require.NoError(t, e.rec.Apply(ctx, second))

	w, err := e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.NoError(t, err)
	require.Equal(t, "Projeli 2", w.ProjectName)
	owner, ok := w.Owner()
	require.True(t, ok)
	require.Equal(t, "u2", owner.UserID)
	require.Len(t, w.Members, 3)
	require.Equal(t, []event.Kind{
		event.KindWikiCreated, event.KindWikiUpdatedProjectDetails, event.KindWikiUpdatedMembers,
	}, e.kinds(t, pid))
}

func TestReconciler_MembersAndOwnership(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	pid := uuid.Must(uuid.NewV7())
	require.NoError(t, e.rec.Apply(ctx, &ProjectCreated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1", IsOwner: true})}))

	added := &ProjectMemberAdded{ProjectID: pid, UserID: "u2", PerformingUserID: "u1"}
	require.NoError(t, e.rec.Apply(ctx, added))
	require.NoError(t, e.rec.Apply(ctx, added))

	// ownership moves to a user the wiki has not seen yet
	require.NoError(t, e.rec.Apply(ctx, &ProjectUpdatedOwnership{ProjectID: pid, FromUserID: "u1", ToUserID: "u3"}))

	removed := &ProjectMemberRemoved{ProjectID: pid, UserID: "u2"}
	require.NoError(t, e.rec.Apply(ctx, removed))
	require.NoError(t, e.rec.Apply(ctx, removed))

	w, err := e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.NoError(t, err)
	owner, _ := w.Owner()
	require.Equal(t, "u3", owner.UserID)
	prev, ok := w.Member("u1")
	require.True(t, ok)
	require.Equal(t, model.PermAllNamed, prev.Permissions)
	_, ok = w.Member("u2")
	require.False(t, ok)

	require.Equal(t, []event.Kind{
		event.KindWikiCreated,
		event.KindMemberAdded,
		event.KindMemberAdded,
		event.KindWikiUpdatedOwnership,
		event.KindMemberRemoved,
	}, e.kinds(t, pid))

	page, err := e.svc.History.GetEvents(ctx, service.System(), eventsOf(w.ID, event.KindMemberAdded))
	require.NoError(t, err)
	require.Equal(t, "u1", page.Events[0].UserID)
	require.Equal(t, service.SystemUserID, page.Events[1].UserID)
}

func TestReconciler_MissingWikiAndDelete(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	pid := uuid.Must(uuid.NewV7())

	require.NoError(t, e.rec.Apply(ctx, &ProjectUpdatedDetails{ProjectID: pid, ProjectName: "X", ProjectSlug: "x"}))
	require.NoError(t, e.rec.Apply(ctx, &ProjectDeleted{ProjectID: pid}))

	require.NoError(t, e.rec.Apply(ctx, &ProjectCreated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1", IsOwner: true})}))
	require.NoError(t, e.rec.Apply(ctx, &ProjectUpdatedDetails{ProjectID: pid, ProjectName: "Renamed", ProjectSlug: "renamed"}))
	w, err := e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.NoError(t, err)
	require.Equal(t, "renamed", w.ProjectSlug)

	require.NoError(t, e.rec.Apply(ctx, &ProjectDeleted{ProjectID: pid}))
	require.NoError(t, e.rec.Apply(ctx, &ProjectDeleted{ProjectID: pid}))
	_, err = e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Zero(t, e.log.Len(w.ID))
}

func TestReconciler_InvalidSnapshotIsPermanent(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	pid := uuid.Must(uuid.NewV7())

	err := e.rec.Apply(context.Background(), &ProjectCreated{snapshot(pid, "Projeli", ProjectMember{UserID: "u1"})})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.True(t, permanent(err))
}

func TestReconciler_DuplicateSnapshotMembers(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	pid := uuid.Must(uuid.NewV7())

	msg := &ProjectCreated{snapshot(pid, "Projeli",
		ProjectMember{UserID: "u1"}, ProjectMember{UserID: "u2"},
		ProjectMember{UserID: "u1", IsOwner: true}, ProjectMember{UserID: ""},
	)}
	require.NoError(t, e.rec.Apply(ctx, msg))
	require.NoError(t, e.rec.Apply(ctx, msg))

	w, err := e.svc.Wikis.GetByProjectID(ctx, service.System(), pid)
	require.NoError(t, err)
	require.Len(t, w.Members, 2)
	owner, ok := w.Owner()
	require.True(t, ok)
	require.Equal(t, "u1", owner.UserID)
	require.Equal(t, []event.Kind{event.KindWikiCreated}, e.kinds(t, pid))
}

// conflictingWikis reports a unique violation on create without storing anything.
type conflictingWikis struct{ repository.WikiRepository }

func (conflictingWikis) Create(context.Context, *model.Wiki) error { return errs.ErrAlreadyExists }

func TestReconciler_CreateConflictWithoutWiki(t *testing.T) {
	t.Parallel()
	logger := zaptest.NewLogger(t)
	store := memory.NewStore()
	svc := service.New(service.Deps{
		Wikis:      conflictingWikis{store.Wikis()},
		Members:    store.Members(),
		Categories: store.Categories(),
		Pages:      store.Pages(),
		Events:     eventlog.NewMemory(nil, logger),
		Log:        logger,
	})
	rec := NewReconciler(svc, logger)

	err := rec.Apply(context.Background(), &ProjectCreated{snapshot(uuid.Must(uuid.NewV7()), "Projeli", ProjectMember{UserID: "u1", IsOwner: true})})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.NotErrorIs(t, err, errs.ErrNotFound)
	require.False(t, permanent(err))
}
