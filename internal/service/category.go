package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

// CategoryService guards category operations.
type CategoryService struct{ g *guard }

// CategoryInput carries the editable category fields.
type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
}

const categorySlugTaken = "A category with this slug already exists"

// Create adds a category. A wiki holds at most 128.
func (s *CategoryService) Create(ctx context.Context, a Actor, wikiID uuid.UUID, in CategoryInput) (_ *model.Category, err error) {
	g := s.g
	defer g.observe("category.create", &err)

	w, err := g.load(ctx, wikiID, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, model.CreateWikiCategories, "You do not have permission to create categories for this wiki"); err != nil {
		return nil, err
	}
	n, err := g.Categories.Count(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if n >= maxCategories {
		return nil, errs.Invalid("categories", "You have reached the maximum number of categories for this wiki")
	}

	c := &model.Category{
		ID:          g.NewID(),
		WikiID:      w.ID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		CreatedAt:   g.now(),
	}
	if err := g.validateCategory(ctx, w.ID, c.ID, c.Name, c.Slug); err != nil {
		return nil, err
	}
	if err := g.Categories.Create(ctx, w.Version, c); err != nil {
		return nil, fmt.Errorf("create category: %w", slugConflict(err, categorySlugTaken))
	}
	g.record(ctx, w.ID, a, &event.CategoryCreated{CategoryID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
	return c, nil
}

// Get returns a category of a visible wiki.
func (s *CategoryService) Get(ctx context.Context, a Actor, wikiID, id uuid.UUID) (*model.Category, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Categories.Get(ctx, wikiID, id)
}

// GetBySlug returns a category of a visible wiki by slug.
func (s *CategoryService) GetBySlug(ctx context.Context, a Actor, wikiID uuid.UUID, slug string) (*model.Category, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Categories.GetBySlug(ctx, wikiID, slug)
}

// List returns the categories of a visible wiki.
func (s *CategoryService) List(ctx context.Context, a Actor, wikiID uuid.UUID) ([]model.Category, error) {
	if _, err := s.g.load(ctx, wikiID, a); err != nil {
		return nil, err
	}
	return s.g.Categories.List(ctx, wikiID)
}

func (s *CategoryService) loadForEdit(
	ctx context.Context, a Actor, wikiID, id uuid.UUID, need model.Permissions, reason string,
) (*model.Wiki, *model.Category, error) {
	w, err := s.g.load(ctx, wikiID, a)
	if err != nil {
		return nil, nil, err
	}
	if err := s.g.authorizeUnlessForced(w, a, need, reason); err != nil {
		return nil, nil, err
	}
	c, err := s.g.Categories.Get(ctx, wikiID, id)
	if err != nil {
		return nil, nil, err
	}
	return w, c, nil
}

// Update renames or redescribes a category.
func (s *CategoryService) Update(ctx context.Context, a Actor, wikiID, id uuid.UUID, in CategoryInput) (_ *model.Category, err error) {
	g := s.g
	defer g.observe("category.update", &err)

	w, c, err := s.loadForEdit(ctx, a, wikiID, id, model.EditWikiCategories, "You do not have permission to edit categories for this wiki")
	if err != nil {
		return nil, err
	}
	if c.Name == in.Name && c.Slug == in.Slug && strPtrEqual(c.Description, in.Description) {
		return c, nil
	}
	if err := g.validateCategory(ctx, w.ID, c.ID, in.Name, in.Slug); err != nil {
		return nil, err
	}

	now := g.now()
	c.Name, c.Slug, c.Description, c.UpdatedAt = in.Name, in.Slug, in.Description, &now
	if err := g.Categories.Update(ctx, w.Version, c); err != nil {
		return nil, fmt.Errorf("update category: %w", slugConflict(err, categorySlugTaken))
	}
	g.record(ctx, w.ID, a, &event.CategoryUpdated{CategoryID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description})
	return c, nil
}

// UpdatePages sets the pages of a category.
func (s *CategoryService) UpdatePages(ctx context.Context, a Actor, wikiID, id uuid.UUID, pageIDs []uuid.UUID) (_ *model.Category, err error) {
	g := s.g
	defer g.observe("category.update_pages", &err)

	w, c, err := s.loadForEdit(ctx, a, wikiID, id, model.EditWikiPages, "You do not have permission to update pages for this wiki")
	if err != nil {
		return nil, err
	}
	ids := dedupe(pageIDs)
	if sameIDs(c.PageIDs, ids) {
		return c, nil
	}

	pages, err := g.Pages.List(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	byID := make(map[uuid.UUID]model.Page, len(pages))
	for _, p := range pages {
		byID[p.ID] = p
	}
	refs := make([]event.PageRef, 0, len(ids))
	for _, pid := range ids {
		p, ok := byID[pid]
		if !ok {
			return nil, errs.Invalid("pageIds", fmt.Sprintf("Page %s does not belong to this wiki", pid))
		}
		refs = append(refs, event.PageRef{ID: p.ID, Title: p.Title, Slug: p.Slug})
	}

	if err := g.Categories.SetPages(ctx, w.Version, w.ID, c.ID, ids); err != nil {
		return nil, fmt.Errorf("update category pages: %w", err)
	}
	now := g.now()
	c.PageIDs, c.UpdatedAt = ids, &now
	g.record(ctx, w.ID, a, &event.CategoryUpdatedPages{CategoryID: c.ID, Pages: refs})
	return c, nil
}

// Delete removes a category. Its pages stay.
func (s *CategoryService) Delete(ctx context.Context, a Actor, wikiID, id uuid.UUID) (_ *model.Category, err error) {
	g := s.g
	defer g.observe("category.delete", &err)

	w, c, err := s.loadForEdit(ctx, a, wikiID, id, model.DeleteWikiCategories, "You do not have permission to delete categories for this wiki")
	if err != nil {
		return nil, err
	}
	if err := g.Categories.Delete(ctx, w.Version, w.ID, c.ID); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}
	g.record(ctx, w.ID, a, &event.CategoryDeleted{CategoryID: c.ID})
	return c, nil
}
