// Package memory holds in-process repositories with the same contracts as
// the Postgres ones.
package memory

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/repository"
)

// Store is an in-memory relational store with the version semantics of
// the Postgres repositories. It backs tests and local tooling.
type Store struct {
	mu        sync.Mutex
	wikis     map[uuid.UUID]*model.Wiki
	cats      map[uuid.UUID]*model.Category
	catOrder  []uuid.UUID
	pages     map[uuid.UUID]*model.Page
	pageOrder []uuid.UUID

	commitErr error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		wikis: map[uuid.UUID]*model.Wiki{},
		cats:  map[uuid.UUID]*model.Category{},
		pages: map[uuid.UUID]*model.Page{},
	}
}

func (s *Store) bump(wikiID uuid.UUID, version int64) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	w, ok := s.wikis[wikiID]
	if !ok || w.Version != version {
		return errs.ErrVersionConflict
	}
	w.Version++
	return nil
}

func (s *Store) cloneWiki(w *model.Wiki) *model.Wiki {
	c := *w
	c.Members = append([]model.Member(nil), w.Members...)
	c.Sidebar = model.Sidebar{Items: append([]model.SidebarItem(nil), w.Sidebar.Items...)}
	c.CategoryIDs, c.PageIDs = nil, nil
	for _, id := range s.catOrder {
		if s.cats[id].WikiID == w.ID {
			c.CategoryIDs = append(c.CategoryIDs, id)
		}
	}
	for _, id := range s.pageOrder {
		if s.pages[id].WikiID == w.ID {
			c.PageIDs = append(c.PageIDs, id)
		}
	}
	return &c
}

func (s *Store) cloneCategory(c *model.Category) *model.Category {
	out := *c
	out.PageIDs = nil
	for _, pid := range s.pageOrder {
		for _, cid := range s.pages[pid].CategoryIDs {
			if cid == c.ID {
				out.PageIDs = append(out.PageIDs, pid)
			}
		}
	}
	return &out
}

func clonePage(p *model.Page) *model.Page {
	out := *p
	out.CategoryIDs = append([]uuid.UUID(nil), p.CategoryIDs...)
	return &out
}

type wikis struct{ *Store }

var _ repository.WikiRepository = wikis{}

func (f wikis) Create(_ context.Context, w *model.Wiki) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commitErr != nil {
		return f.commitErr
	}
	for _, o := range f.wikis {
		if o.ProjectID == w.ProjectID {
			return errs.ErrAlreadyExists
		}
	}
	w.Version = 1
	f.wikis[w.ID] = f.cloneWiki(w)
	return nil
}

func (f wikis) GetByID(_ context.Context, id uuid.UUID) (*model.Wiki, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wikis[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return f.cloneWiki(w), nil
}

func (f wikis) GetByProjectID(_ context.Context, projectID uuid.UUID) (*model.Wiki, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.wikis {
		if w.ProjectID == projectID {
			return f.cloneWiki(w), nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f wikis) Statistics(_ context.Context, id uuid.UUID) (model.Statistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.wikis[id]
	if !ok {
		return model.Statistics{}, errs.ErrNotFound
	}
	c := f.cloneWiki(w)
	return model.Statistics{WikiID: id, PageCount: len(c.PageIDs), CategoryCount: len(c.CategoryIDs), MemberCount: len(c.Members)}, nil
}

func (f wikis) Update(_ context.Context, w *model.Wiki) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(w.ID, w.Version); err != nil {
		return err
	}
	cur := f.wikis[w.ID]
	cur.ProjectName, cur.ProjectSlug, cur.ProjectImageURL = w.ProjectName, w.ProjectSlug, w.ProjectImageURL
	cur.Content, cur.Sidebar, cur.Status, cur.PublishedAt = w.Content, w.Sidebar, w.Status, w.PublishedAt
	cur.UpdatedAt = w.UpdatedAt
	w.Version = cur.Version
	return nil
}

func (f wikis) ReplaceMembers(_ context.Context, wikiID uuid.UUID, version int64, members []model.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	f.wikis[wikiID].Members = append([]model.Member(nil), members...)
	return nil
}

func (f wikis) TransferOwnership(_ context.Context, wikiID uuid.UUID, version int64, from, to string, demoted model.Permissions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	ms := f.wikis[wikiID].Members
	for i := range ms {
		switch ms[i].UserID {
		case from:
			ms[i].IsOwner, ms[i].Permissions = false, demoted
		case to:
			ms[i].IsOwner, ms[i].Permissions = true, model.PermAll
		}
	}
	return nil
}

func (f wikis) Delete(_ context.Context, id uuid.UUID, version int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(id, version); err != nil {
		return err
	}
	delete(f.wikis, id)
	for cid, c := range f.cats {
		if c.WikiID == id {
			delete(f.cats, cid)
		}
	}
	for pid, p := range f.pages {
		if p.WikiID == id {
			delete(f.pages, pid)
		}
	}
	f.catOrder = f.liveIDs(f.catOrder, func(cid uuid.UUID) bool {
		_, ok := f.cats[cid]
		return ok
	})
	f.pageOrder = f.liveIDs(f.pageOrder, func(pid uuid.UUID) bool {
		_, ok := f.pages[pid]
		return ok
	})
	return nil
}

func (s *Store) liveIDs(ids []uuid.UUID, live func(uuid.UUID) bool) []uuid.UUID {
	out := ids[:0]
	for _, id := range ids {
		if live(id) {
			out = append(out, id)
		}
	}
	return out
}

type members struct{ *Store }

var _ repository.MemberRepository = members{}

func (f members) Add(_ context.Context, version int64, m model.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(m.WikiID, version); err != nil {
		return err
	}
	w := f.wikis[m.WikiID]
	w.Members = append(w.Members, m)
	return nil
}

func (f members) UpdatePermissions(_ context.Context, wikiID uuid.UUID, version int64, memberID uuid.UUID, perms model.Permissions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	ms := f.wikis[wikiID].Members
	for i := range ms {
		if ms[i].ID == memberID && !ms[i].IsOwner {
			ms[i].Permissions = perms
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f members) Remove(_ context.Context, wikiID uuid.UUID, version int64, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	w := f.wikis[wikiID]
	for i, m := range w.Members {
		if m.UserID == userID && !m.IsOwner {
			w.Members = append(w.Members[:i], w.Members[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type categories struct{ *Store }

var _ repository.CategoryRepository = categories{}

func (f categories) Create(_ context.Context, version int64, c *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(c.WikiID, version); err != nil {
		return err
	}
	cp := *c
	f.cats[c.ID] = &cp
	f.catOrder = append(f.catOrder, c.ID)
	return nil
}

func (f categories) Get(_ context.Context, wikiID, id uuid.UUID) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cats[id]
	if !ok || c.WikiID != wikiID {
		return nil, errs.ErrNotFound
	}
	return f.cloneCategory(c), nil
}

func (f categories) GetBySlug(_ context.Context, wikiID uuid.UUID, slug string) (*model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.cats {
		if c.WikiID == wikiID && c.Slug == slug {
			return f.cloneCategory(c), nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f categories) List(_ context.Context, wikiID uuid.UUID) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Category
	for _, id := range f.catOrder {
		if c := f.cats[id]; c.WikiID == wikiID {
			out = append(out, *f.cloneCategory(c))
		}
	}
	return out, nil
}

func (f categories) Count(ctx context.Context, wikiID uuid.UUID) (int, error) {
	cs, err := f.List(ctx, wikiID)
	return len(cs), err
}

func (f categories) Update(_ context.Context, version int64, c *model.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(c.WikiID, version); err != nil {
		return err
	}
	cur, ok := f.cats[c.ID]
	if !ok {
		return errs.ErrNotFound
	}
	cur.Name, cur.Slug, cur.Description, cur.UpdatedAt = c.Name, c.Slug, c.Description, c.UpdatedAt
	return nil
}

func (f categories) SetPages(_ context.Context, version int64, wikiID, categoryID uuid.UUID, pageIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	want := make(map[uuid.UUID]bool, len(pageIDs))
	for _, id := range pageIDs {
		want[id] = true
	}
	for _, p := range f.pages {
		if p.WikiID != wikiID {
			continue
		}
		kept := p.CategoryIDs[:0]
		for _, cid := range p.CategoryIDs {
			if cid != categoryID {
				kept = append(kept, cid)
			}
		}
		p.CategoryIDs = kept
		if want[p.ID] {
			p.CategoryIDs = append(p.CategoryIDs, categoryID)
		}
	}
	return nil
}

func (f categories) Delete(_ context.Context, version int64, wikiID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	delete(f.cats, id)
	for i, cid := range f.catOrder {
		if cid == id {
			f.catOrder = append(f.catOrder[:i], f.catOrder[i+1:]...)
			break
		}
	}
	return nil
}

type pages struct{ *Store }

var _ repository.PageRepository = pages{}

func (f pages) Create(_ context.Context, version int64, p *model.Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(p.WikiID, version); err != nil {
		return err
	}
	f.pages[p.ID] = clonePage(p)
	f.pageOrder = append(f.pageOrder, p.ID)
	return nil
}

func (f pages) Get(_ context.Context, wikiID, id uuid.UUID) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pages[id]
	if !ok || p.WikiID != wikiID {
		return nil, errs.ErrNotFound
	}
	return clonePage(p), nil
}

func (f pages) GetBySlug(_ context.Context, wikiID uuid.UUID, slug string) (*model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		if p.WikiID == wikiID && p.Slug == slug {
			return clonePage(p), nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f pages) List(_ context.Context, wikiID uuid.UUID) ([]model.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Page
	for _, id := range f.pageOrder {
		if p := f.pages[id]; p.WikiID == wikiID {
			out = append(out, *clonePage(p))
		}
	}
	return out, nil
}

func (f pages) Update(_ context.Context, version int64, p *model.Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(p.WikiID, version); err != nil {
		return err
	}
	if _, ok := f.pages[p.ID]; !ok {
		return errs.ErrNotFound
	}
	f.pages[p.ID] = clonePage(p)
	return nil
}

func (f pages) SetCategories(_ context.Context, version int64, wikiID, pageID uuid.UUID, categoryIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	p, ok := f.pages[pageID]
	if !ok {
		return errs.ErrNotFound
	}
	p.CategoryIDs = append([]uuid.UUID(nil), categoryIDs...)
	return nil
}

func (f pages) Delete(_ context.Context, version int64, wikiID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.bump(wikiID, version); err != nil {
		return err
	}
	delete(f.pages, id)
	for i, pid := range f.pageOrder {
		if pid == id {
			f.pageOrder = append(f.pageOrder[:i], f.pageOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Wikis returns the wiki repository view of s.
func (s *Store) Wikis() repository.WikiRepository { return wikis{s} }

// Members returns the member repository view of s.
func (s *Store) Members() repository.MemberRepository { return members{s} }

// Categories returns the category repository view of s.
func (s *Store) Categories() repository.CategoryRepository { return categories{s} }

// Pages returns the page repository view of s.
func (s *Store) Pages() repository.PageRepository { return pages{s} }

// FailCommits makes every later mutation return err. A nil err restores normal behaviour.
func (s *Store) FailCommits(err error) {
	s.mu.Lock()
	s.commitErr = err
	s.mu.Unlock()
}
