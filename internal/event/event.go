// Package event defines the closed set of wiki history records and the
// registry that maps a stored discriminator back to its payload type.
package event

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/model"
)

// Kind is the stable discriminator of an event. It is both the wire tag and
// the registry key, so existing values must never be renamed.
type Kind string

const (
	KindWikiCreated               Kind = "WikiCreatedEvent"
	KindWikiUpdatedStatus         Kind = "WikiUpdatedStatusEvent"
	KindWikiUpdatedContent        Kind = "WikiUpdatedContentEvent"
	KindWikiUpdatedSidebar        Kind = "WikiUpdatedSidebarEvent"
	KindWikiUpdatedOwnership      Kind = "WikiUpdatedOwnershipEvent"
	KindWikiUpdatedProjectDetails Kind = "WikiUpdatedProjectDetailsEvent"
	KindWikiUpdatedMembers        Kind = "WikiUpdatedMembersEvent"

	KindCategoryCreated      Kind = "WikiCategoryCreatedEvent"
	KindCategoryUpdated      Kind = "WikiCategoryUpdatedEvent"
	KindCategoryUpdatedPages Kind = "WikiCategoryUpdatedPagesEvent"
	KindCategoryDeleted      Kind = "WikiCategoryDeletedEvent"

	KindPageCreated           Kind = "WikiPageCreatedEvent"
	KindPageUpdatedDetails    Kind = "WikiPageUpdatedDetailsEvent"
	KindPageUpdatedContent    Kind = "WikiPageUpdatedContentEvent"
	KindPageUpdatedCategories Kind = "WikiPageUpdatedCategoriesEvent"
	KindPageUpdatedStatus     Kind = "WikiPageUpdatedStatusEvent"
	KindPageDeleted           Kind = "WikiPageDeletedEvent"

	KindMemberAdded              Kind = "WikiMemberAddedEvent"
	KindMemberUpdatedPermissions Kind = "WikiMemberUpdatedPermissionsEvent"
	KindMemberRemoved            Kind = "WikiMemberRemovedEvent"
)

// Target is the entity group an event kind belongs to.
type Target string

const (
	TargetWiki     Target = "wiki"
	TargetCategory Target = "category"
	TargetPage     Target = "page"
	TargetMember   Target = "member"
)

// Payload is implemented by every event variant.
type Payload interface {
	Kind() Kind
}

// Event is one stored history record.
type Event struct {
	Seq       uint64
	Timestamp time.Time
	UserID    string
	Payload   Payload
}

// Kind returns the payload discriminator.
func (e Event) Kind() Kind { return e.Payload.Kind() }

// Wiki-level payloads.

type WikiCreated struct {
	Status model.WikiStatus `json:"status"`
}

type WikiUpdatedStatus struct {
	Status model.WikiStatus `json:"status"`
}

type WikiUpdatedContent struct {
	Content *string `json:"content"`
}

type WikiUpdatedSidebar struct {
	Sidebar model.Sidebar `json:"sidebar"`
}

type WikiUpdatedOwnership struct {
	FromUserID string `json:"fromUserId"`
	ToUserID   string `json:"toUserId"`
}

type WikiUpdatedProjectDetails struct {
	ProjectName     string  `json:"projectName"`
	ProjectSlug     string  `json:"projectSlug"`
	ProjectImageURL *string `json:"projectImageUrl,omitempty"`
}

// MemberSnapshot is a member as recorded in a member-list replacement.
type MemberSnapshot struct {
	UserID      string            `json:"userId"`
	IsOwner     bool              `json:"isOwner"`
	Permissions model.Permissions `json:"permissions"`
}

type WikiUpdatedMembers struct {
	Members []MemberSnapshot `json:"members"`
}

// Category-level payloads.

type CategoryCreated struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
}

type CategoryUpdated struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
}

// PageRef identifies a page inside a category event.
type PageRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}

type CategoryUpdatedPages struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Pages      []PageRef `json:"pages"`
}

type CategoryDeleted struct {
	CategoryID uuid.UUID `json:"categoryId"`
}

// Page-level payloads.

type PageCreated struct {
	PageID uuid.UUID `json:"wikiPageId"`
	Title  string    `json:"title"`
	Slug   string    `json:"slug"`
}

type PageUpdatedDetails struct {
	PageID uuid.UUID `json:"wikiPageId"`
	Title  string    `json:"title"`
	Slug   string    `json:"slug"`
}

type PageUpdatedContent struct {
	PageID  uuid.UUID `json:"wikiPageId"`
	Content *string   `json:"content"`
}

// CategoryRef identifies a category inside a page event.
type CategoryRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
}

type PageUpdatedCategories struct {
	PageID     uuid.UUID     `json:"wikiPageId"`
	Categories []CategoryRef `json:"categories"`
}

type PageUpdatedStatus struct {
	PageID uuid.UUID        `json:"wikiPageId"`
	Status model.PageStatus `json:"status"`
}

type PageDeleted struct {
	PageID uuid.UUID `json:"wikiPageId"`
}

// Member-level payloads.

type MemberAdded struct {
	MemberID string `json:"memberId"`
}

type MemberUpdatedPermissions struct {
	MemberID    string            `json:"memberId"`
	Permissions model.Permissions `json:"permissions"`
}

type MemberRemoved struct {
	MemberID string `json:"memberId"`
}

func (WikiCreated) Kind() Kind               { return KindWikiCreated }
func (WikiUpdatedStatus) Kind() Kind         { return KindWikiUpdatedStatus }
func (WikiUpdatedContent) Kind() Kind        { return KindWikiUpdatedContent }
func (WikiUpdatedSidebar) Kind() Kind        { return KindWikiUpdatedSidebar }
func (WikiUpdatedOwnership) Kind() Kind      { return KindWikiUpdatedOwnership }
func (WikiUpdatedProjectDetails) Kind() Kind { return KindWikiUpdatedProjectDetails }
func (WikiUpdatedMembers) Kind() Kind        { return KindWikiUpdatedMembers }
func (CategoryCreated) Kind() Kind           { return KindCategoryCreated }
func (CategoryUpdated) Kind() Kind           { return KindCategoryUpdated }
func (CategoryUpdatedPages) Kind() Kind      { return KindCategoryUpdatedPages }
func (CategoryDeleted) Kind() Kind           { return KindCategoryDeleted }
func (PageCreated) Kind() Kind               { return KindPageCreated }
func (PageUpdatedDetails) Kind() Kind        { return KindPageUpdatedDetails }
func (PageUpdatedContent) Kind() Kind        { return KindPageUpdatedContent }
func (PageUpdatedCategories) Kind() Kind     { return KindPageUpdatedCategories }
func (PageUpdatedStatus) Kind() Kind         { return KindPageUpdatedStatus }
func (PageDeleted) Kind() Kind               { return KindPageDeleted }
func (MemberAdded) Kind() Kind               { return KindMemberAdded }
func (MemberUpdatedPermissions) Kind() Kind  { return KindMemberUpdatedPermissions }
func (MemberRemoved) Kind() Kind             { return KindMemberRemoved }
