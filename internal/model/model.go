// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Wiki is the aggregate root. Children are referenced by id only.
type Wiki struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID // one wiki per external project
	ProjectName     string
	ProjectSlug     string
	ProjectImageURL *string
	Content         *string
	Sidebar         Sidebar
	Status          WikiStatus
	Version         int64 // bumped on every committed mutation of the aggregate or its children
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	PublishedAt     *time.Time
	Members         []Member
	CategoryIDs     []uuid.UUID
	PageIDs         []uuid.UUID
}

// Member finds the member with the given user id.
func (w *Wiki) Member(userID string) (Member, bool) {
	for _, m := range w.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}

// MemberByID finds the member with the given member id.
func (w *Wiki) MemberByID(id uuid.UUID) (Member, bool) {
	for _, m := range w.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Owner returns the owning member.
func (w *Wiki) Owner() (Member, bool) {
	for _, m := range w.Members {
		if m.IsOwner {
			return m, true
		}
	}
	return Member{}, false
}

// VisibleTo reports whether userID may read the wiki.
func (w *Wiki) VisibleTo(userID string, force bool) bool {
	if force || w.Status == WikiPublished {
		return true
	}
	_, ok := w.Member(userID)
	return ok
}

// Member is a user's membership in one wiki.
type Member struct {
	ID          uuid.UUID
	WikiID      uuid.UUID
	UserID      string
	IsOwner     bool
	Permissions Permissions
}

// Can reports whether the member is the owner or holds every bit of p.
func (m Member) Can(p Permissions) bool {
	return m.IsOwner || m.Permissions.Has(p)
}

// Category groups pages inside a wiki.
type Category struct {
	ID          uuid.UUID
	WikiID      uuid.UUID
	Name        string
	Slug        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	PageIDs     []uuid.UUID
}

// Page is a single wiki document.
type Page struct {
	ID          uuid.UUID
	WikiID      uuid.UUID
	Title       string
	Slug        string
	Content     *string
	Status      PageStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	PublishedAt *time.Time
	CategoryIDs []uuid.UUID
}

// Sidebar is the navigation tree of a wiki.
type Sidebar struct {
	Items []SidebarItem `json:"items"`
}

// SidebarItem is either a page link (Slug set) or a group of page links.
type SidebarItem struct {
	Index    string        `json:"index"`
	Title    string        `json:"title"`
	Slug     *string       `json:"slug,omitempty"`
	Category []SidebarItem `json:"category,omitempty"`
}

// Normalize drops malformed entries: links lose their children, groups keep
// only link children and receive an index from newIndex when they have none,
// entries that are neither are removed.
func (s Sidebar) Normalize(newIndex func() string) Sidebar {
	out := Sidebar{Items: make([]SidebarItem, 0, len(s.Items))}
	for _, it := range s.Items {
		switch {
		case it.Slug != nil:
			it.Category = nil
			out.Items = append(out.Items, it)
		case it.Category != nil:
			if it.Index == "" {
				it.Index = newIndex()
			}
			children := make([]SidebarItem, 0, len(it.Category))
			for _, c := range it.Category {
				if c.Slug != nil {
					c.Category = nil
					children = append(children, c)
				}
			}
			it.Category = children
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// Equal compares two sidebars structurally.
func (s Sidebar) Equal(o Sidebar) bool {
	return itemsEqual(s.Items, o.Items)
}

func itemsEqual(a, b []SidebarItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Index != y.Index || x.Title != y.Title {
			return false
		}
		if (x.Slug == nil) != (y.Slug == nil) || (x.Slug != nil && *x.Slug != *y.Slug) {
			return false
		}
		if !itemsEqual(x.Category, y.Category) {
			return false
		}
	}
	return true
}

// Statistics summarises a wiki's size.
type Statistics struct {
	WikiID        uuid.UUID
	PageCount     int
	CategoryCount int
	MemberCount   int
}
