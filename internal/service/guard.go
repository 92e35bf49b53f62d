package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

type guard struct {
	Deps
}

func newGuard(d Deps) *guard { return &guard{Deps: d.withDefaults()} }

func (g *guard) now() time.Time { return g.Now().UTC() }

// load returns the wiki if the actor may see it.
func (g *guard) load(ctx context.Context, wikiID uuid.UUID, a Actor) (*model.Wiki, error) {
	w, err := g.Wikis.GetByID(ctx, wikiID)
	if err != nil {
		return nil, err
	}
	if !w.VisibleTo(a.UserID, a.Force) {
		return nil, errs.ErrNotFound
	}
	return w, nil
}

// authorize resolves the acting member and checks that it is the owner or
// holds every bit of need. A zero need can only be satisfied by the owner.
func (g *guard) authorize(w *model.Wiki, a Actor, need model.Permissions, reason string) (model.Member, error) {
	m, ok := w.Member(a.UserID)
	if !ok {
		return model.Member{}, errs.Forbidden(reason)
	}
	if m.IsOwner {
		return m, nil
	}
	if need == model.PermNone || !m.Permissions.Has(need) {
		return model.Member{}, errs.Forbidden(reason)
	}
	return m, nil
}

// authorizeUnlessForced skips the capability check for system actors.
func (g *guard) authorizeUnlessForced(w *model.Wiki, a Actor, need model.Permissions, reason string) error {
	if a.Force {
		return nil
	}
	_, err := g.authorize(w, a, need, reason)
	return err
}

// record appends the event of a committed mutation. The commit is the
// source of truth: an append failure is logged and counted, not returned.
func (g *guard) record(ctx context.Context, wikiID uuid.UUID, a Actor, p event.Payload) {
	ev, err := g.Events.Append(ctx, wikiID, a.UserID, p)
	if err != nil {
		g.Metrics.AppendFailed(p.Kind())
		g.Log.Error("append event after commit",
			zap.String("wiki_id", wikiID.String()),
			zap.String("kind", string(p.Kind())),
			zap.Error(err))
		return
	}
	g.Metrics.EventAppended(ev.Kind())
}

// observe counts and logs a rejected operation. Use with a named error result.
func (g *guard) observe(op string, errp *error) {
	err := *errp
	if err == nil {
		return
	}
	reason := "error"
	switch {
	case errors.Is(err, errs.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, errs.ErrForbidden):
		reason = "forbidden"
		g.Log.Warn("forbidden operation", zap.String("op", op), zap.Error(err))
	case errors.Is(err, errs.ErrValidation):
		reason = "validation"
	case errors.Is(err, errs.ErrInvalidTransition):
		reason = "transition"
	case errors.Is(err, errs.ErrVersionConflict):
		reason = "conflict"
	case errors.Is(err, errs.ErrAlreadyExists):
		reason = "exists"
	default:
		g.Log.Error("operation failed", zap.String("op", op), zap.Error(err))
	}
	g.Metrics.Rejected(op, reason)
}

func (g *guard) notify(ctx context.Context, w *model.Wiki, a Actor, typ NotificationType, withName bool) {
	ns := make([]Notification, 0, len(w.Members))
	for _, m := range w.Members {
		n := Notification{
			UserID:      m.UserID,
			Type:        typ,
			PerformerID: a.UserID,
			WikiID:      w.ID,
			IsRead:      m.UserID == a.UserID,
		}
		if withName {
			n.WikiName = w.ProjectName
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return
	}
	if err := g.Notifier.Notify(ctx, ns); err != nil {
		g.Log.Warn("publish notifications",
			zap.String("wiki_id", w.ID.String()),
			zap.String("type", string(typ)),
			zap.Error(err))
	}
}

// sameIDs reports whether a and b hold the same set of ids.
func sameIDs(a, b []uuid.UUID) bool {
	as, bs := idSet(a), idSet(b)
	if len(as) != len(bs) {
		return false
	}
	for id := range as {
		if !bs[id] {
			return false
		}
	}
	return true
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	m := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
