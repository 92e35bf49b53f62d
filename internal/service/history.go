package service

import (
	"context"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/eventlog"
)

// HistoryService serves the event log of a wiki to its members.
type HistoryService struct{ g *guard }

// GetEvents returns one page of history. Only members (or the system) may read it.
func (s *HistoryService) GetEvents(ctx context.Context, a Actor, q eventlog.Query) (_ eventlog.Page, err error) {
	g := s.g
	defer g.observe("history.get_events", &err)

	if err := q.Validate(); err != nil {
		return eventlog.Page{}, err
	}
	if !a.Force {
		w, err := g.Wikis.GetByID(ctx, q.WikiID)
		if err != nil {
			return eventlog.Page{}, err
		}
		if _, ok := w.Member(a.UserID); !ok {
			return eventlog.Page{}, errs.Forbidden("User is not a member of the wiki")
		}
	}
	return g.Events.Read(ctx, q)
}
