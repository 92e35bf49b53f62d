package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

func TestPageService_CreateValidation(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.CreateWikiPages)
	base := len(h.events(w.ID))

	cases := []struct {
		name  string
		in    PageInput
		field string
		msg   string
	}{
		{"empty title", PageInput{Title: " ", Slug: "ok-slug"}, "title", "Title is required"},
		{"short title", PageInput{Title: "ab", Slug: "ok-slug"}, "title", "Title must be at least 3 characters long"},
		{"long title", PageInput{Title: strings.Repeat("a", 65), Slug: "ok-slug"}, "title", "Title must be at most 64 characters long"},
		{"bad title", PageInput{Title: "tab\x00null", Slug: "ok-slug"}, "title", "Title contains invalid characters"},
		{"empty slug", PageInput{Title: "Good", Slug: ""}, "slug", "Slug is required"},
		{"upper slug", PageInput{Title: "Good", Slug: "Bad-Slug"}, "slug", "Slug may only contain lowercase letters, numbers, and hyphens"},
		{"long slug", PageInput{Title: "Good", Slug: strings.Repeat("a", 65)}, "slug", "Slug must be at most 64 characters long"},
	}
	for _, tc := range cases {
		_, err := h.Pages.Create(ctx, User("u2"), w.ID, tc.in)
		var v *errs.ValidationError
		require.ErrorAs(t, err, &v, tc.name)
		require.Equal(t, []string{tc.msg}, v.Fields[tc.field], tc.name)
	}
	require.Len(t, h.events(w.ID), base)

	// 64 characters and unicode letters are accepted
	p, err := h.Pages.Create(ctx, User("u2"), w.ID, PageInput{Title: "Über " + strings.Repeat("x", 59), Slug: "first"})
	require.NoError(t, err)
	require.Equal(t, model.PageDraft, p.Status)

	_, err = h.Pages.Create(ctx, User("u2"), w.ID, PageInput{Title: "Another", Slug: "first"})
	var v *errs.ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, []string{"A page with this slug already exists"}, v.Fields["slug"])

	_, err = h.Pages.Create(ctx, User("u3"), w.ID, PageInput{Title: "Another", Slug: "second"})
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, []event.Kind{event.KindPageCreated}, h.events(w.ID)[base:])
}

func TestPageService_UpdateDetailsAndContent(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWikiPages)
	p, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Home", Slug: "home"})
	require.NoError(t, err)
	other, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Other", Slug: "other"})
	require.NoError(t, err)
	base := len(h.events(w.ID))

	got, err := h.Pages.UpdateDetails(ctx, User("u2"), w.ID, p.ID, "Start", "start")
	require.NoError(t, err)
	require.Equal(t, "start", got.Slug)
	_, err = h.Pages.UpdateDetails(ctx, User("u2"), w.ID, p.ID, "Start", "start")
	require.NoError(t, err)

	// keeping its own slug is not a conflict, taking another page's is
	_, err = h.Pages.UpdateDetails(ctx, User("u2"), w.ID, p.ID, "Start page", "start")
	require.NoError(t, err)
	_, err = h.Pages.UpdateDetails(ctx, User("u2"), w.ID, other.ID, "Other", "start")
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = h.Pages.UpdateContent(ctx, User("u2"), w.ID, p.ID, "body")
	require.NoError(t, err)
	_, err = h.Pages.UpdateContent(ctx, User("u2"), w.ID, p.ID, "body")
	require.NoError(t, err)

	_, err = h.Pages.UpdateContent(ctx, User("u2"), w.ID, uuid.Must(uuid.NewV7()), "body")
	require.ErrorIs(t, err, errs.ErrNotFound)

	require.Equal(t, []event.Kind{
		event.KindPageUpdatedDetails, event.KindPageUpdatedDetails, event.KindPageUpdatedContent,
	}, h.events(w.ID)[base:])
}

func TestPageService_UpdateStatus(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PublishWikiPages)
	p, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Home", Slug: "home"})
	require.NoError(t, err)
	base := len(h.events(w.ID))

	got, err := h.Pages.UpdateStatus(ctx, User("u2"), w.ID, p.ID, model.PagePublished)
	require.NoError(t, err)
	require.NotNil(t, got.PublishedAt)
	published := *got.PublishedAt

	_, err = h.Pages.UpdateStatus(ctx, User("u2"), w.ID, p.ID, model.PageArchived)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Pages.UpdateStatus(ctx, User("u1"), w.ID, p.ID, model.PageArchived)
	require.NoError(t, err)
	_, err = h.Pages.UpdateStatus(ctx, User("u1"), w.ID, p.ID, model.PageArchived)
	require.NoError(t, err)
	_, err = h.Pages.UpdateStatus(ctx, User("u1"), w.ID, p.ID, model.PageDraft)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	again, err := h.Pages.UpdateStatus(ctx, User("u2"), w.ID, p.ID, model.PagePublished)
	require.NoError(t, err)
	require.Equal(t, published, *again.PublishedAt)

	stored, err := h.Pages.Get(ctx, User("u3"), w.ID, p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PagePublished, stored.Status)
	require.Equal(t, []event.Kind{
		event.KindPageUpdatedStatus, event.KindPageUpdatedStatus, event.KindPageUpdatedStatus,
	}, h.events(w.ID)[base:])
}

func TestPageService_UpdateCategories(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWikiPages)
	p, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Home", Slug: "home"})
	require.NoError(t, err)
	a, err := h.Categories.Create(ctx, User("u1"), w.ID, CategoryInput{Name: "Alpha", Slug: "alpha"})
	require.NoError(t, err)
	b, err := h.Categories.Create(ctx, User("u1"), w.ID, CategoryInput{Name: "Beta", Slug: "beta"})
	require.NoError(t, err)
	base := len(h.events(w.ID))

	got, err := h.Pages.UpdateCategories(ctx, User("u2"), w.ID, p.ID, []uuid.UUID{a.ID, b.ID, a.ID})
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{a.ID, b.ID}, got.CategoryIDs)

	// same set in another order changes nothing
	_, err = h.Pages.UpdateCategories(ctx, User("u2"), w.ID, p.ID, []uuid.UUID{b.ID, a.ID})
	require.NoError(t, err)

	_, err = h.Pages.UpdateCategories(ctx, User("u2"), w.ID, p.ID, []uuid.UUID{uuid.Must(uuid.NewV7())})
	require.ErrorIs(t, err, errs.ErrValidation)

	cat, err := h.Categories.Get(ctx, User("u2"), w.ID, b.ID)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{p.ID}, cat.PageIDs)

	require.Equal(t, []event.Kind{event.KindPageUpdatedCategories}, h.events(w.ID)[base:])
	page, err := h.History.GetEvents(ctx, User("u2"), eventsQuery(w.ID, 1, 1))
	require.NoError(t, err)
	pc, ok := page.Events[0].Payload.(*event.PageUpdatedCategories)
	require.True(t, ok)
	require.Len(t, pc.Categories, 2)
	require.Equal(t, "alpha", pc.Categories[0].Slug)
}

func TestPageService_Delete(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWikiPages)
	p, err := h.Pages.Create(ctx, User("u1"), w.ID, PageInput{Title: "Home", Slug: "home"})
	require.NoError(t, err)

	_, err = h.Pages.Delete(ctx, User("u2"), w.ID, p.ID)
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.Pages.Delete(ctx, User("u1"), w.ID, p.ID)
	require.NoError(t, err)
	_, err = h.Pages.Delete(ctx, User("u1"), w.ID, p.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)

	pages, err := h.Pages.List(ctx, User("u3"), w.ID)
	require.NoError(t, err)
	require.Empty(t, pages)
	kinds := h.events(w.ID)
	require.Equal(t, event.KindPageDeleted, kinds[len(kinds)-1])
}
