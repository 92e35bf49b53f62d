package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

func TestWikiService_Create(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	projectID := uuid.Must(uuid.NewV7())

	_, err := h.Wikis.Create(ctx, User("u2"), CreateWikiInput{
		ProjectID: projectID, ProjectSlug: "p",
		Members: []MemberInput{{UserID: "u1", IsOwner: true}, {UserID: "u2"}},
	})
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Wikis.Create(ctx, System(), CreateWikiInput{})
	var v *errs.ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"ProjectId is required"}, v.Fields["projectId"])
	require.Equal(t, []string{"ProjectSlug is required"}, v.Fields["projectSlug"])
	require.Equal(t, []string{"Members are required"}, v.Fields["members"])

	_, err = h.Wikis.Create(ctx, System(), CreateWikiInput{
		ProjectID: projectID, ProjectSlug: "p",
		Members: []MemberInput{{UserID: "u1", IsOwner: true}, {UserID: "u2", IsOwner: true}},
	})
	require.ErrorIs(t, err, errs.ErrValidation)

	w, err := h.Wikis.Create(ctx, User("u1"), CreateWikiInput{
		ProjectID: projectID, ProjectName: "P", ProjectSlug: "p",
		Members: []MemberInput{{UserID: "u1", IsOwner: true}, {UserID: "u2"}},
	})
	require.NoError(t, err)
	require.Equal(t, model.WikiDraft, w.Status)
	owner, _ := w.Member("u1")
	require.Equal(t, model.PermAll, owner.Permissions)
	other, _ := w.Member("u2")
	require.Equal(t, model.PermNone, other.Permissions)
	require.Equal(t, []event.Kind{event.KindWikiCreated}, h.events(w.ID))

	_, err = h.Wikis.Create(ctx, User("u1"), CreateWikiInput{
		ProjectID: projectID, ProjectSlug: "p",
		Members: []MemberInput{{UserID: "u1", IsOwner: true}},
	})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestWikiService_PublishScenario(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	got, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	require.Equal(t, model.WikiPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
	require.Equal(t, []event.Kind{event.KindWikiCreated, event.KindWikiUpdatedStatus}, h.events(w.ID))
	require.Equal(t, 1, h.metrics.appended[event.KindWikiUpdatedStatus])

	require.Len(t, h.notifier.sent, 3)
	for _, n := range h.notifier.sent {
		require.Equal(t, NotifyWikiPublished, n.Type)
		require.Equal(t, n.UserID == "u1", n.IsRead)
	}

	// archive then republish keeps the first publication time
	first := *got.PublishedAt
	_, err = h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiArchived)
	require.NoError(t, err)
	again, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	require.Equal(t, first, *again.PublishedAt)
}

func TestWikiService_ArchiveWithoutBitIsForbidden(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWikiPages)
	_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	before := len(h.events(w.ID))

	_, err = h.Wikis.UpdateStatus(ctx, User("u2"), w.ID, model.WikiArchived)
	var fe *errs.ForbiddenError
	require.ErrorAs(t, err, &fe)
	require.Len(t, h.events(w.ID), before)

	stored, err := h.Wikis.Get(ctx, User("u1"), w.ID)
	require.NoError(t, err)
	require.Equal(t, model.WikiPublished, stored.Status)
	require.Equal(t, 1, h.metrics.rejected["wiki.update_status/forbidden"])
}

func TestWikiService_StatusTransitions(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PublishWiki)

	_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiArchived)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiDraft)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	// Draft needs no bit, so only the owner reaches the transition table.
	_, err = h.Wikis.UpdateStatus(ctx, User("u2"), w.ID, model.WikiDraft)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Wikis.UpdateStatus(ctx, User("u2"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	n := len(h.events(w.ID))

	// same state is a no-op without an event
	_, err = h.Wikis.UpdateStatus(ctx, User("u2"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	require.Len(t, h.events(w.ID), n)

	_, err = h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiDraft)
	var te *errs.TransitionError
	require.ErrorAs(t, err, &te)
	require.Equal(t, "Draft", te.Target)
}

func TestWikiService_Visibility(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	_, err := h.Wikis.Get(ctx, User("stranger"), w.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = h.Wikis.UpdateContent(ctx, User("stranger"), w.ID, "x")
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = h.Wikis.Get(ctx, User("u3"), w.ID)
	require.NoError(t, err)
	_, err = h.Wikis.Get(ctx, System(), w.ID)
	require.NoError(t, err)

	_, err = h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	_, err = h.Wikis.GetByProjectID(ctx, User("stranger"), w.ProjectID)
	require.NoError(t, err)

	// visible but not a member
	_, err = h.Wikis.UpdateContent(ctx, User("stranger"), w.ID, "x")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestWikiService_ContentAndSidebarIdempotent(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)
	base := len(h.events(w.ID))

	for i := 0; i < 2; i++ {
		got, err := h.Wikis.UpdateContent(ctx, User("u2"), w.ID, "# Welcome")
		require.NoError(t, err)
		require.Equal(t, "# Welcome", *got.Content)
	}
	require.Len(t, h.events(w.ID), base+1)

	home, guide := "home", "guide"
	sb := model.Sidebar{Items: []model.SidebarItem{
		{Index: "a", Title: "Home", Slug: &home, Category: []model.SidebarItem{{Title: "dropped"}}},
		{Index: "b", Title: "Guides", Category: []model.SidebarItem{{Index: "c", Title: "Guide", Slug: &guide}, {Title: "no slug"}}},
		{Title: "empty"},
	}}
	got, err := h.Wikis.UpdateSidebar(ctx, User("u2"), w.ID, sb)
	require.NoError(t, err)
	require.Len(t, got.Sidebar.Items, 2)
	require.Nil(t, got.Sidebar.Items[0].Category)
	require.Len(t, got.Sidebar.Items[1].Category, 1)

	_, err = h.Wikis.UpdateSidebar(ctx, User("u2"), w.ID, sb)
	require.NoError(t, err)
	require.Equal(t, []event.Kind{event.KindWikiUpdatedContent, event.KindWikiUpdatedSidebar}, h.events(w.ID)[base:])

	_, err = h.Wikis.UpdateContent(ctx, User("u3"), w.ID, "nope")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestWikiService_OwnershipTransfer(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)
	base := len(h.events(w.ID))

	_, err := h.Wikis.UpdateOwnership(ctx, User("u2"), w.ID, "u2", nil)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Wikis.UpdateOwnership(ctx, User("u1"), w.ID, "stranger", nil)
	require.ErrorIs(t, err, errs.ErrNotFound)

	reduced := model.EditWiki | model.EditWikiPages
	got, err := h.Wikis.UpdateOwnership(ctx, User("u1"), w.ID, "u2", &reduced)
	require.NoError(t, err)

	stored, err := h.Wikis.Get(ctx, System(), got.ID)
	require.NoError(t, err)
	old, _ := stored.Member("u1")
	require.False(t, old.IsOwner)
	require.Equal(t, reduced, old.Permissions)
	owner, _ := stored.Owner()
	require.Equal(t, "u2", owner.UserID)
	require.Equal(t, model.PermAll, owner.Permissions)
	require.Equal(t, []event.Kind{event.KindWikiUpdatedOwnership}, h.events(w.ID)[base:])

	// transferring to the current owner records nothing
	_, err = h.Wikis.UpdateOwnership(ctx, System(), w.ID, "u2", nil)
	require.NoError(t, err)
	require.Len(t, h.events(w.ID), base+1)

	// system transfer demotes to every named permission by default
	_, err = h.Wikis.UpdateOwnership(ctx, System(), w.ID, "u3", nil)
	require.NoError(t, err)
	stored, _ = h.Wikis.Get(ctx, System(), w.ID)
	prev, _ := stored.Member("u2")
	require.Equal(t, model.PermAllNamed, prev.Permissions)
	requireSingleOwner(t, stored)
}

func requireSingleOwner(t *testing.T, w *model.Wiki) {
	t.Helper()
	n := 0
	for _, m := range w.Members {
		if m.IsOwner {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("want exactly one owner, got %d", n)
	}
}

func TestWikiService_UpdateMembers(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)
	base := len(h.events(w.ID))

	_, err := h.Wikis.UpdateMembers(ctx, User("u1"), w.ID, nil)
	require.ErrorIs(t, err, errs.ErrForbidden)
	_, err = h.Wikis.UpdateMembers(ctx, System(), w.ID, []MemberInput{{UserID: "u1"}})
	require.ErrorIs(t, err, errs.ErrValidation)

	got, err := h.Wikis.UpdateMembers(ctx, System(), w.ID, []MemberInput{
		{UserID: "u1"}, {UserID: "u2", IsOwner: true}, {UserID: "u4"},
	})
	require.NoError(t, err)
	requireSingleOwner(t, got)

	u1, _ := got.Member("u1")
	require.Equal(t, model.PermAllNamed, u1.Permissions)
	u2, _ := got.Member("u2")
	require.Equal(t, model.PermAll, u2.Permissions)
	u4, _ := got.Member("u4")
	require.Equal(t, model.PermNone, u4.Permissions)
	_, ok := got.Member("u3")
	require.False(t, ok)

	// replaying the same message converges without a second event
	_, err = h.Wikis.UpdateMembers(ctx, System(), w.ID, []MemberInput{
		{UserID: "u1"}, {UserID: "u2", IsOwner: true}, {UserID: "u4"},
	})
	require.NoError(t, err)
	require.Equal(t, []event.Kind{event.KindWikiUpdatedMembers}, h.events(w.ID)[base:])
}

func TestWikiService_ProjectDetails(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	_, err := h.Wikis.UpdateProjectDetails(ctx, User("u1"), w.ID, ProjectDetails{Name: "X", Slug: "x"})
	require.ErrorIs(t, err, errs.ErrForbidden)

	got, err := h.Wikis.UpdateProjectDetails(ctx, System(), w.ID, ProjectDetails{Name: "Renamed", Slug: "renamed"})
	require.NoError(t, err)
	require.Equal(t, "renamed", got.ProjectSlug)
	_, err = h.Wikis.UpdateProjectDetails(ctx, System(), w.ID, ProjectDetails{Name: "Renamed", Slug: "renamed"})
	require.NoError(t, err)
	require.Equal(t, []event.Kind{event.KindWikiCreated, event.KindWikiUpdatedProjectDetails}, h.events(w.ID))
}

func TestWikiService_Delete(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)

	_, err := h.Wikis.Delete(ctx, User("u2"), w.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Wikis.Delete(ctx, User("u1"), w.ID)
	require.NoError(t, err)
	require.Zero(t, h.log.Len(w.ID))
	require.Len(t, h.notifier.sent, 3)
	require.Equal(t, "Projeli", h.notifier.sent[0].WikiName)

	_, err = h.Wikis.Get(ctx, System(), w.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	// system deletes notify nobody
	w2 := h.seedWiki(t, model.PermNone)
	_, err = h.Wikis.Delete(ctx, System(), w2.ID)
	require.NoError(t, err)
	require.Len(t, h.notifier.sent, 3)
}

func TestWikiService_CommitFailureAppendsNothing(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)
	base := len(h.events(w.ID))

	h.store.FailCommits(errs.ErrVersionConflict)
	_, err := h.Wikis.UpdateContent(ctx, User("u1"), w.ID, "new")
	require.ErrorIs(t, err, errs.ErrVersionConflict)
	require.Len(t, h.events(w.ID), base)
	require.Equal(t, 1, h.metrics.rejected["wiki.update_content/conflict"])
}

func TestWikiService_AppendFailureKeepsCommit(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	h.Wikis.g.Events = failingEvents{h.log}
	got, err := h.Wikis.UpdateContent(ctx, User("u1"), w.ID, "kept")
	require.NoError(t, err)
	require.Equal(t, "kept", *got.Content)
	require.Equal(t, 1, h.metrics.failed[event.KindWikiUpdatedContent])

	stored, err := h.Wikis.Get(ctx, User("u1"), w.ID)
	require.NoError(t, err)
	require.Equal(t, "kept", *stored.Content)
}

func TestWikiService_Statistics(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	_, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Home", Slug: "home"})
	require.NoError(t, err)
	s, err := h.Wikis.Statistics(ctx, User("u3"), w.ID)
	require.NoError(t, err)
	require.Equal(t, model.Statistics{WikiID: w.ID, PageCount: 1, MemberCount: 3}, s)
}

func TestWikiService_UpdateMembersMalformedInput(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		in      []MemberInput
		invalid bool
		owner   string
		count   int
	}{
		{
			name:  "owner flag on a duplicate",
			in:    []MemberInput{{UserID: "u1"}, {UserID: "u1", IsOwner: true}, {UserID: "u2"}},
			owner: "u1", count: 2,
		},
		{
			name:  "duplicate owner entries",
			in:    []MemberInput{{UserID: "u2", IsOwner: true}, {UserID: "u2", IsOwner: true}, {UserID: "u1"}},
			owner: "u2", count: 2,
		},
		{
			name:    "owner flag on a blank id",
			in:      []MemberInput{{UserID: "", IsOwner: true}, {UserID: "u1"}, {UserID: "u2"}},
			invalid: true,
		},
		{
			name:    "owner flag on a whitespace id",
			in:      []MemberInput{{UserID: "  ", IsOwner: true}, {UserID: "u1"}},
			invalid: true,
		},
		{
			name:    "two owners",
			in:      []MemberInput{{UserID: "u1", IsOwner: true}, {UserID: "u2", IsOwner: true}},
			invalid: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			w := h.seedWiki(t, model.PermNone)
			base := len(h.events(w.ID))

			_, err := h.Wikis.UpdateMembers(ctx, System(), w.ID, c.in)
			stored, gerr := h.Wikis.Get(ctx, System(), w.ID)
			require.NoError(t, gerr)
			requireSingleOwner(t, stored)

			if c.invalid {
				var v *errs.ValidationError
				require.ErrorAs(t, err, &v)
				require.Equal(t, []string{"Exactly one owner is required"}, v.Fields["members"])
				require.Len(t, stored.Members, 3)
				require.Len(t, h.events(w.ID), base)
				return
			}
			require.NoError(t, err)
			require.Len(t, stored.Members, c.count)
			owner, ok := stored.Owner()
			require.True(t, ok)
			require.Equal(t, c.owner, owner.UserID)
			require.Equal(t, model.PermAll, owner.Permissions)
		})
	}
}

func TestWikiService_CreateMalformedMembers(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.Wikis.Create(ctx, System(), CreateWikiInput{
		ProjectID: uuid.Must(uuid.NewV7()), ProjectSlug: "p",
		Members: []MemberInput{{UserID: "", IsOwner: true}, {UserID: "u1"}},
	})
	var v *errs.ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"Exactly one owner is required"}, v.Fields["members"])

	_, err = h.Wikis.Create(ctx, System(), CreateWikiInput{
		ProjectID: uuid.Must(uuid.NewV7()), ProjectSlug: "p",
		Members: []MemberInput{{UserID: " "}},
	})
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"Members are required"}, v.Fields["members"])

	w, err := h.Wikis.Create(ctx, User("u1"), CreateWikiInput{
		ProjectID: uuid.Must(uuid.NewV7()), ProjectSlug: "p",
		Members: []MemberInput{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u1", IsOwner: true}, {UserID: "u2"}},
	})
	require.NoError(t, err)
	require.Len(t, w.Members, 2)
	requireSingleOwner(t, w)
	owner, _ := w.Owner()
	require.Equal(t, "u1", owner.UserID)

	stored, err := h.Wikis.Get(ctx, System(), w.ID)
	require.NoError(t, err)
	require.Len(t, stored.Members, 2)
	requireSingleOwner(t, stored)
}

func TestWikiService_UpdatedAtMatchesStore(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	got, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt)
	stored, err := h.Wikis.Get(ctx, System(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.UpdatedAt)
	require.True(t, got.UpdatedAt.Equal(*stored.UpdatedAt))
	require.True(t, got.PublishedAt.Equal(*got.UpdatedAt))

	got, err = h.Wikis.UpdateContent(ctx, User("u1"), w.ID, "home")
	require.NoError(t, err)
	stored, err = h.Wikis.Get(ctx, System(), w.ID)
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.Equal(*stored.UpdatedAt))

	// member changes bump the version but leave updated_at alone
	edited := *got.UpdatedAt
	got, err = h.Wikis.UpdateMembers(ctx, System(), w.ID, []MemberInput{{UserID: "u1", IsOwner: true}, {UserID: "u3"}})
	require.NoError(t, err)
	stored, err = h.Wikis.Get(ctx, System(), w.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Version, got.Version)
	require.True(t, edited.Equal(*got.UpdatedAt))
	require.True(t, edited.Equal(*stored.UpdatedAt))
}
