package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
)

func eventsQuery(wikiID uuid.UUID, page, size int, kinds ...event.Kind) eventlog.Query {
	return eventlog.Query{WikiID: wikiID, Page: page, PageSize: size, Kinds: kinds}
}

func TestHistoryService_Pagination(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)

	for i := range 25 {
		_, err := h.Wikis.UpdateContent(ctx, User("u1"), w.ID, fmt.Sprintf("rev %d", i))
		require.NoError(t, err)
	}
	// noise that the kind filter must skip
	_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)

	p2, err := h.History.GetEvents(ctx, User("u3"), eventsQuery(w.ID, 2, 10, event.KindWikiUpdatedContent))
	require.NoError(t, err)
	require.Len(t, p2.Events, 10)
	require.True(t, p2.HasMore)
	first, ok := p2.Events[0].Payload.(*event.WikiUpdatedContent)
	require.True(t, ok)
	require.Equal(t, "rev 14", *first.Content)

	p3, err := h.History.GetEvents(ctx, User("u3"), eventsQuery(w.ID, 3, 10, event.KindWikiUpdatedContent))
	require.NoError(t, err)
	require.Len(t, p3.Events, 5)
	require.False(t, p3.HasMore)
	for i := 1; i < len(p3.Events); i++ {
		require.Greater(t, p3.Events[i-1].Seq, p3.Events[i].Seq)
	}

	q := eventsQuery(w.ID, 1, 3)
	q.Direction = eventlog.Forward
	fwd, err := h.History.GetEvents(ctx, System(), q)
	require.NoError(t, err)
	require.Equal(t, event.KindWikiCreated, fwd.Events[0].Kind())
	require.Equal(t, "u1", fwd.Events[0].UserID)
}

func TestHistoryService_ExtremePaging(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)

	all, err := h.History.GetEvents(ctx, User("u2"), eventsQuery(w.ID, 1, math.MaxInt))
	require.NoError(t, err)
	require.Len(t, all.Events, 1)
	require.False(t, all.HasMore)

	far, err := h.History.GetEvents(ctx, User("u2"), eventsQuery(w.ID, math.MaxInt/2+2, 2))
	require.NoError(t, err)
	require.Empty(t, far.Events)
	require.False(t, far.HasMore)
	require.Equal(t, math.MaxInt, far.TotalCount())
}

func TestHistoryService_UserFilter(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWiki)

	_, err := h.Wikis.UpdateContent(ctx, User("u1"), w.ID, "one")
	require.NoError(t, err)
	_, err = h.Wikis.UpdateContent(ctx, User("u2"), w.ID, "two")
	require.NoError(t, err)

	q := eventsQuery(w.ID, 1, 10)
	q.UserIDs = []string{"u2"}
	page, err := h.History.GetEvents(ctx, User("u2"), q)
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	require.Equal(t, event.KindWikiUpdatedContent, page.Events[0].Kind())
}

func TestHistoryService_Access(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.PermNone)
	_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
	require.NoError(t, err)

	// a published wiki is readable by anyone, its history is not
	_, err = h.History.GetEvents(ctx, User("stranger"), eventsQuery(w.ID, 1, 10))
	require.ErrorIs(t, err, errs.ErrForbidden)

	_, err = h.History.GetEvents(ctx, User("u3"), eventsQuery(w.ID, 0, 10))
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = h.History.GetEvents(ctx, User("u3"), eventsQuery(uuid.Must(uuid.NewV7()), 1, 10))
	require.ErrorIs(t, err, errs.ErrNotFound)

	page, err := h.History.GetEvents(ctx, System(), eventsQuery(w.ID, 1, 10))
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
}

// Every committed mutation leaves exactly one event; rejected and
// idempotent calls leave none.
func TestServices_ExactlyOnceEmission(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	w := h.seedWiki(t, model.EditWikiPages|model.CreateWikiPages)
	var pageID uuid.UUID

	steps := []struct {
		name string
		emit bool
		run  func() error
	}{
		{"publish", true, func() error {
			_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
			return err
		}},
		{"publish again", false, func() error {
			_, err := h.Wikis.UpdateStatus(ctx, User("u1"), w.ID, model.WikiPublished)
			return err
		}},
		{"create page", true, func() error {
			p, err := h.Pages.Create(ctx, User("u2"), w.ID, PageInput{Title: "Home", Slug: "home"})
			if p != nil {
				pageID = p.ID
			}
			return err
		}},
		{"duplicate page", false, func() error {
			_, err := h.Pages.Create(ctx, User("u2"), w.ID, PageInput{Title: "Home", Slug: "home"})
			return err
		}},
		{"forbidden delete", false, func() error {
			_, err := h.Pages.Delete(ctx, User("u2"), w.ID, pageID)
			return err
		}},
		{"page content", true, func() error {
			_, err := h.Pages.UpdateContent(ctx, User("u2"), w.ID, pageID, "hello")
			return err
		}},
		{"page content again", false, func() error {
			_, err := h.Pages.UpdateContent(ctx, User("u2"), w.ID, pageID, "hello")
			return err
		}},
		{"add member", true, func() error {
			_, err := h.Members.Add(ctx, System(), w.ID, "u9")
			return err
		}},
		{"delete page", true, func() error {
			_, err := h.Pages.Delete(ctx, User("u1"), w.ID, pageID)
			return err
		}},
	}

	for _, s := range steps {
		before := h.log.Len(w.ID)
		_ = s.run()
		want := before
		if s.emit {
			want++
		}
		require.Equal(t, want, h.log.Len(w.ID), s.name)
	}

	total := 0
	for _, n := range h.metrics.appended {
		total += n
	}
	require.Equal(t, h.log.Len(w.ID), total)
}
