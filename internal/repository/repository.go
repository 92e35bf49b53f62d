// Package repository defines storage interfaces implemented by concrete backends.
//
// Every mutating method takes the wiki version the caller loaded. The backend
// bumps the version in the same transaction as the change and fails with
// errs.ErrVersionConflict when another writer committed first.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
)

// WikiRepository stores wiki aggregates.
type WikiRepository interface {
	// Create inserts the wiki and its members. Version starts at 1.
	Create(ctx context.Context, w *model.Wiki) error
	// GetByID loads the wiki with members and child ids.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Wiki, error)
	// GetByProjectID loads the wiki of an external project.
	GetByProjectID(ctx context.Context, projectID uuid.UUID) (*model.Wiki, error)
	// Statistics counts the wiki's children.
	Statistics(ctx context.Context, id uuid.UUID) (model.Statistics, error)
	// Update writes project details, content, sidebar, status and published-at.
	Update(ctx context.Context, w *model.Wiki) error
	// ReplaceMembers swaps the full member list.
	ReplaceMembers(ctx context.Context, wikiID uuid.UUID, version int64, members []model.Member) error
	// TransferOwnership flips is-owner on two members in one commit.
	TransferOwnership(ctx context.Context, wikiID uuid.UUID, version int64, fromUserID, toUserID string, demoted model.Permissions) error
	// Delete removes the wiki and its children.
	Delete(ctx context.Context, id uuid.UUID, version int64) error
}

// MemberRepository stores wiki members.
type MemberRepository interface {
	Add(ctx context.Context, version int64, m model.Member) error
	UpdatePermissions(ctx context.Context, wikiID uuid.UUID, version int64, memberID uuid.UUID, perms model.Permissions) error
	Remove(ctx context.Context, wikiID uuid.UUID, version int64, userID string) error
}

// CategoryRepository stores wiki categories.
type CategoryRepository interface {
	Create(ctx context.Context, version int64, c *model.Category) error
	Get(ctx context.Context, wikiID, id uuid.UUID) (*model.Category, error)
	GetBySlug(ctx context.Context, wikiID uuid.UUID, slug string) (*model.Category, error)
	List(ctx context.Context, wikiID uuid.UUID) ([]model.Category, error)
	Count(ctx context.Context, wikiID uuid.UUID) (int, error)
	Update(ctx context.Context, version int64, c *model.Category) error
	// SetPages replaces the category's page links.
	SetPages(ctx context.Context, version int64, wikiID, categoryID uuid.UUID, pageIDs []uuid.UUID) error
	Delete(ctx context.Context, version int64, wikiID, id uuid.UUID) error
}

// PageRepository stores wiki pages.
type PageRepository interface {
	Create(ctx context.Context, version int64, p *model.Page) error
	Get(ctx context.Context, wikiID, id uuid.UUID) (*model.Page, error)
	GetBySlug(ctx context.Context, wikiID uuid.UUID, slug string) (*model.Page, error)
	List(ctx context.Context, wikiID uuid.UUID) ([]model.Page, error)
	// Update writes title, slug, content, status and published-at.
	Update(ctx context.Context, version int64, p *model.Page) error
	// SetCategories replaces the page's category links.
	SetCategories(ctx context.Context, version int64, wikiID, pageID uuid.UUID, categoryIDs []uuid.UUID) error
	Delete(ctx context.Context, version int64, wikiID, id uuid.UUID) error
}

// EventRepository is the per-wiki append-only history.
type EventRepository interface {
	// Append writes one record at the end of the wiki's stream.
	Append(ctx context.Context, wikiID uuid.UUID, userID string, p event.Payload) (event.Event, error)
	// Read returns one page of history.
	Read(ctx context.Context, q eventlog.Query) (eventlog.Page, error)
	// Delete removes the whole stream.
	Delete(ctx context.Context, wikiID uuid.UUID) error
}

var _ EventRepository = (*eventlog.Memory)(nil)
