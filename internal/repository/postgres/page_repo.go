package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
)

// PageRepo implements PageRepository using PostgreSQL.
type PageRepo struct{ db *DB }

// NewPageRepo constructs a page repository.
func NewPageRepo(db *DB) *PageRepo { return &PageRepo{db: db} }

const pageColumns = `id, wiki_id, title, slug, content, status, created_at, updated_at, published_at`

func scanPage(row pgx.Row) (*model.Page, error) {
	var (
		p      model.Page
		status int16
	)
	if err := row.Scan(&p.ID, &p.WikiID, &p.Title, &p.Slug, &p.Content, &status,
		&p.CreatedAt, &p.UpdatedAt, &p.PublishedAt); err != nil {
		return nil, notFound(err)
	}
	p.Status = model.PageStatus(status)
	return &p, nil
}

// Create inserts a page in its initial state.
func (r *PageRepo) Create(ctx context.Context, version int64, p *model.Page) error {
	const q = `INSERT INTO wiki_pages (` + pageColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,NULL,NULL)`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, p.WikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, q, p.ID, p.WikiID, p.Title, p.Slug, p.Content, int16(p.Status), p.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// Get loads a page with its category ids.
func (r *PageRepo) Get(ctx context.Context, wikiID, id uuid.UUID) (*model.Page, error) {
	const q = `SELECT ` + pageColumns + ` FROM wiki_pages WHERE wiki_id=$1 AND id=$2`
	return r.one(ctx, q, wikiID, id)
}

// GetBySlug loads a page by slug.
func (r *PageRepo) GetBySlug(ctx context.Context, wikiID uuid.UUID, slug string) (*model.Page, error) {
	const q = `SELECT ` + pageColumns + ` FROM wiki_pages WHERE wiki_id=$1 AND slug=$2`
	return r.one(ctx, q, wikiID, slug)
}

func (r *PageRepo) one(ctx context.Context, q string, wikiID uuid.UUID, key any) (*model.Page, error) {
	p, err := scanPage(r.db.Pool.QueryRow(ctx, q, wikiID, key))
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT category_id FROM wiki_page_categories WHERE page_id=$1 ORDER BY category_id`, p.ID)
	if err != nil {
		return nil, err
	}
	if p.CategoryIDs, err = scanIDs(rows); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every page of a wiki without content.
func (r *PageRepo) List(ctx context.Context, wikiID uuid.UUID) ([]model.Page, error) {
	const q = `
SELECT id, wiki_id, title, slug, NULL::text, status, created_at, updated_at, published_at
FROM wiki_pages WHERE wiki_id=$1 ORDER BY created_at, id`
	rows, err := r.db.Pool.Query(ctx, q, wikiID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Page
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update writes the mutable page columns.
func (r *PageRepo) Update(ctx context.Context, version int64, p *model.Page) error {
	const q = `
UPDATE wiki_pages SET title=$3, slug=$4, content=$5, status=$6, updated_at=$7, published_at=$8
WHERE wiki_id=$1 AND id=$2`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, p.WikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, q, p.WikiID, p.ID, p.Title, p.Slug, p.Content, int16(p.Status), p.UpdatedAt, p.PublishedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyExists
			}
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

// SetCategories replaces the category links of a page.
func (r *PageRepo) SetCategories(ctx context.Context, version int64, wikiID, pageID uuid.UUID, categoryIDs []uuid.UUID) error {
	const del = `DELETE FROM wiki_page_categories WHERE page_id=$1`
	const ins = `INSERT INTO wiki_page_categories (page_id, category_id) VALUES ($1,$2)`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, del, pageID); err != nil {
			return err
		}
		for _, id := range categoryIDs {
			if _, err := tx.Exec(ctx, ins, pageID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a page; its category links cascade.
func (r *PageRepo) Delete(ctx context.Context, version int64, wikiID, id uuid.UUID) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM wiki_pages WHERE wiki_id=$1 AND id=$2`, wikiID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}
