package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

// PageService guards page operations.
type PageService struct{ g *guard }

// PageInput carries the editable page details.
type PageInput struct {
	Title   string
	Slug    string
	Content *string
}

const pageSlugTaken = "A page with this slug already exists"

// Create adds a Draft page.
func (s *PageService) Create(ctx context.Context, a Actor, wikiID uuid.UUID, in PageInput) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.create", &err)

	w, err := g.load(ctx, wikiID, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, model.CreateWikiPages, "You do not have permission to create pages for this wiki"); err != nil {
		return nil, err
	}
	p := &model.Page{
		ID:        g.NewID(),
		WikiID:    w.ID,
		Title:     in.Title,
		Slug:      in.Slug,
		Content:   in.Content,
		Status:    model.PageDraft,
		CreatedAt: g.now(),
	}
	if err := g.validatePage(ctx, w.ID, p.ID, p.Title, p.Slug); err != nil {
		return nil, err
	}
	if err := g.Pages.Create(ctx, w.Version, p); err != nil {
		return nil, fmt.Errorf("create page: %w", slugConflict(err, pageSlugTaken))
	}
	g.record(ctx, w.ID, a, &event.PageCreated{PageID: p.ID, Title: p.Title, Slug: p.Slug})
	return p, nil
}

// Get returns a page of a visible wiki.
func (s *PageService) Get(ctx context.Context, a Actor, wikiID, pageID uuid.UUID) (*model.Page, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Pages.Get(ctx, wikiID, pageID)
}

// GetBySlug returns a page of a visible wiki by slug.
func (s *PageService) GetBySlug(ctx context.Context, a Actor, wikiID uuid.UUID, slug string) (*model.Page, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Pages.GetBySlug(ctx, wikiID, slug)
}

// List returns the pages of a visible wiki.
func (s *PageService) List(ctx context.Context, a Actor, wikiID uuid.UUID) ([]model.Page, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Pages.List(ctx, wikiID)
}

// loadForEdit runs the shared load, authorize and page lookup steps.
func (s *PageService) loadForEdit(
	ctx context.Context, a Actor, wikiID, pageID uuid.UUID, need model.Permissions, reason string,
) (*model.Wiki, *model.Page, error) {
	w, err := s.g.load(ctx, wikiID, a)
	if err != nil {
		return nil, nil, err
	}
	if err := s.g.authorizeUnlessForced(w, a, need, reason); err != nil {
		return nil, nil, err
	}
	p, err := s.g.Pages.Get(ctx, wikiID, pageID)
	if err != nil {
		return nil, nil, err
	}
	return w, p, nil
}

const pageEditReason = "You do not have permission to update pages for this wiki"

// UpdateDetails renames a page.
func (s *PageService) UpdateDetails(ctx context.Context, a Actor, wikiID, pageID uuid.UUID, title, slug string) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.update_details", &err)

	w, p, err := s.loadForEdit(ctx, a, wikiID, pageID, model.EditWikiPages, pageEditReason)
	if err != nil {
		return nil, err
	}
	if p.Title == title && p.Slug == slug {
		return p, nil
	}
	if err := g.validatePage(ctx, w.ID, p.ID, title, slug); err != nil {
		return nil, err
	}

	now := g.now()
	p.Title, p.Slug, p.UpdatedAt = title, slug, &now
	if err := g.Pages.Update(ctx, w.Version, p); err != nil {
		return nil, fmt.Errorf("update page: %w", slugConflict(err, pageSlugTaken))
	}
	g.record(ctx, w.ID, a, &event.PageUpdatedDetails{PageID: p.ID, Title: p.Title, Slug: p.Slug})
	return p, nil
}

// UpdateContent replaces a page body.
func (s *PageService) UpdateContent(ctx context.Context, a Actor, wikiID, pageID uuid.UUID, content string) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.update_content", &err)

	w, p, err := s.loadForEdit(ctx, a, wikiID, pageID, model.EditWikiPages, pageEditReason)
	if err != nil {
		return nil, err
	}
	if p.Content != nil && *p.Content == content {
		return p, nil
	}

	now := g.now()
	p.Content, p.UpdatedAt = &content, &now
	if err := g.Pages.Update(ctx, w.Version, p); err != nil {
		return nil, fmt.Errorf("update page content: %w", err)
	}
	g.record(ctx, w.ID, a, &event.PageUpdatedContent{PageID: p.ID, Content: p.Content})
	return p, nil
}

// UpdateCategories sets the categories a page belongs to.
func (s *PageService) UpdateCategories(
	ctx context.Context, a Actor, wikiID, pageID uuid.UUID, categoryIDs []uuid.UUID,
) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.update_categories", &err)

	w, p, err := s.loadForEdit(ctx, a, wikiID, pageID, model.EditWikiPages, pageEditReason)
	if err != nil {
		return nil, err
	}
	ids := dedupe(categoryIDs)
	if sameIDs(p.CategoryIDs, ids) {
		return p, nil
	}

	cats, err := g.Categories.List(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	byID := make(map[uuid.UUID]model.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	refs := make([]event.CategoryRef, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, errs.Invalid("categoryIds", fmt.Sprintf("Category %s does not belong to this wiki", id))
		}
		refs = append(refs, event.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
	}

	if err := g.Pages.SetCategories(ctx, w.Version, w.ID, p.ID, ids); err != nil {
		return nil, fmt.Errorf("update page categories: %w", err)
	}
	now := g.now()
	p.CategoryIDs, p.UpdatedAt = ids, &now
	g.record(ctx, w.ID, a, &event.PageUpdatedCategories{PageID: p.ID, Categories: refs})
	return p, nil
}

// pageStatusPermission is the capability needed to move a page to target.
func pageStatusPermission(target model.PageStatus) model.Permissions {
	switch target {
	case model.PagePublished:
		return model.PublishWikiPages
	case model.PageArchived:
		return model.ArchiveWikiPages
	}
	return model.PermNone
}

// UpdateStatus publishes or archives a page.
func (s *PageService) UpdateStatus(
	ctx context.Context, a Actor, wikiID, pageID uuid.UUID, target model.PageStatus,
) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.update_status", &err)

	w, p, err := s.loadForEdit(ctx, a, wikiID, pageID, pageStatusPermission(target), pageEditReason)
	if err != nil {
		return nil, err
	}
	noop, err := model.TransitionPage(p.Status, target)
	if err != nil {
		return nil, err
	}
	if noop {
		return p, nil
	}

	now := g.now()
	p.Status, p.UpdatedAt = target, &now
	model.StampPublished(&p.PublishedAt, target == model.PagePublished, now)
	if err := g.Pages.Update(ctx, w.Version, p); err != nil {
		return nil, fmt.Errorf("update page status: %w", err)
	}
	g.record(ctx, w.ID, a, &event.PageUpdatedStatus{PageID: p.ID, Status: p.Status})
	return p, nil
}

// Delete removes a page.
func (s *PageService) Delete(ctx context.Context, a Actor, wikiID, pageID uuid.UUID) (_ *model.Page, err error) {
	g := s.g
	defer g.observe("page.delete", &err)

	w, p, err := s.loadForEdit(ctx, a, wikiID, pageID, model.DeleteWikiPages, "You do not have permission to delete pages for this wiki")
	if err != nil {
		return nil, err
	}
	if err := g.Pages.Delete(ctx, w.Version, w.ID, p.ID); err != nil {
		return nil, fmt.Errorf("delete page: %w", err)
	}
	g.record(ctx, w.ID, a, &event.PageDeleted{PageID: p.ID})
	return p, nil
}
