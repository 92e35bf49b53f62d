// Package service implements the authorization guard: every mutation of a
// wiki or its children is checked, validated, committed and then recorded as
// exactly one history event.
package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/repository"
)

// SystemUserID is recorded as the acting user of system-originated events.
const SystemUserID = "system"

// Actor is the principal performing an operation. Force is set for
// system-originated calls (project sync) and bypasses visibility and
// capability checks.
type Actor struct {
	UserID string
	Force  bool
}

// User returns an actor for an authenticated end user.
func User(id string) Actor { return Actor{UserID: id} }

// System returns the forcing system actor.
func System() Actor { return Actor{UserID: SystemUserID, Force: true} }

// OnBehalf returns a forcing actor that records userID as the performer.
// An empty userID falls back to System.
func OnBehalf(userID string) Actor {
	if userID == "" {
		return System()
	}
	return Actor{UserID: userID, Force: true}
}

// Metrics receives guard outcomes.
type Metrics interface {
	EventAppended(kind event.Kind)
	AppendFailed(kind event.Kind)
	Rejected(op, reason string)
}

type nopMetrics struct{}

func (nopMetrics) EventAppended(event.Kind) {}
func (nopMetrics) AppendFailed(event.Kind)  {}
func (nopMetrics) Rejected(string, string)  {}

// NotificationType names a user notification emitted by wiki lifecycle changes.
type NotificationType string

const (
	NotifyWikiPublished NotificationType = "WikiPublished"
	NotifyWikiArchived  NotificationType = "WikiArchived"
	NotifyWikiDeleted   NotificationType = "WikiDeleted"
)

// Notification is one per-member message.
type Notification struct {
	UserID      string           `json:"userId"`
	Type        NotificationType `json:"type"`
	PerformerID string           `json:"performerId"`
	WikiID      uuid.UUID        `json:"wikiId"`
	WikiName    string           `json:"wikiName,omitempty"`
	IsRead      bool             `json:"isRead"`
}

// Notifier delivers notifications. Delivery failures never fail the mutation.
type Notifier interface {
	Notify(ctx context.Context, ns []Notification) error
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, []Notification) error { return nil }

// Deps wires storage and collaborators into the services.
type Deps struct {
	Wikis      repository.WikiRepository
	Members    repository.MemberRepository
	Categories repository.CategoryRepository
	Pages      repository.PageRepository
	Events     repository.EventRepository

	Notifier Notifier
	Metrics  Metrics
	Log      *zap.Logger

	// Now and NewID default to time.Now and UUIDv7.
	Now   func() time.Time
	NewID func() uuid.UUID
}

func (d Deps) withDefaults() Deps {
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Metrics == nil {
		d.Metrics = nopMetrics{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = func() uuid.UUID { return uuid.Must(uuid.NewV7()) }
	}
	return d
}

// Services bundles every guard-backed service.
type Services struct {
	Wikis      *WikiService
	Pages      *PageService
	Categories *CategoryService
	Members    *MemberService
	History    *HistoryService
}

// New constructs all services over the same dependencies.
func New(d Deps) *Services {
	g := newGuard(d)
	return &Services{
		Wikis:      &WikiService{g: g},
		Pages:      &PageService{g: g},
		Categories: &CategoryService{g: g},
		Members:    &MemberService{g: g},
		History:    &HistoryService{g: g},
	}
}
