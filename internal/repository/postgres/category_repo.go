package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
)

// CategoryRepo implements CategoryRepository using PostgreSQL.
type CategoryRepo struct{ db *DB }

// NewCategoryRepo constructs a category repository.
func NewCategoryRepo(db *DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryColumns = `id, wiki_id, name, slug, description, created_at, updated_at`

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.WikiID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// Create inserts a category.
func (r *CategoryRepo) Create(ctx context.Context, version int64, c *model.Category) error {
	const q = `INSERT INTO wiki_categories (` + categoryColumns + `) VALUES ($1,$2,$3,$4,$5,$6,NULL)`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, c.WikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, q, c.ID, c.WikiID, c.Name, c.Slug, c.Description, c.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// Get loads a category with its page ids.
func (r *CategoryRepo) Get(ctx context.Context, wikiID, id uuid.UUID) (*model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM wiki_categories WHERE wiki_id=$1 AND id=$2`
	return r.one(ctx, q, wikiID, id)
}

// GetBySlug loads a category by slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, wikiID uuid.UUID, slug string) (*model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM wiki_categories WHERE wiki_id=$1 AND slug=$2`
	return r.one(ctx, q, wikiID, slug)
}

func (r *CategoryRepo) one(ctx context.Context, q string, wikiID uuid.UUID, key any) (*model.Category, error) {
	c, err := scanCategory(r.db.Pool.QueryRow(ctx, q, wikiID, key))
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, `SELECT page_id FROM wiki_page_categories WHERE category_id=$1 ORDER BY page_id`, c.ID)
	if err != nil {
		return nil, err
	}
	if c.PageIDs, err = scanIDs(rows); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every category of a wiki with page ids.
func (r *CategoryRepo) List(ctx context.Context, wikiID uuid.UUID) ([]model.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM wiki_categories WHERE wiki_id=$1 ORDER BY created_at, id`
	rows, err := r.db.Pool.Query(ctx, q, wikiID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	index := map[uuid.UUID]int{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const links = `
SELECT pc.category_id, pc.page_id
FROM wiki_page_categories pc JOIN wiki_categories c ON c.id=pc.category_id
WHERE c.wiki_id=$1 ORDER BY pc.page_id`
	lrows, err := r.db.Pool.Query(ctx, links, wikiID)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var catID, pageID uuid.UUID
		if err := lrows.Scan(&catID, &pageID); err != nil {
			return nil, err
		}
		if i, ok := index[catID]; ok {
			out[i].PageIDs = append(out[i].PageIDs, pageID)
		}
	}
	return out, lrows.Err()
}

// Count returns the number of categories in a wiki.
func (r *CategoryRepo) Count(ctx context.Context, wikiID uuid.UUID) (int, error) {
	var n int
	err := r.db.Pool.QueryRow(ctx, `SELECT count(*) FROM wiki_categories WHERE wiki_id=$1`, wikiID).Scan(&n)
	return n, err
}

// Update writes name, slug and description.
func (r *CategoryRepo) Update(ctx context.Context, version int64, c *model.Category) error {
	const q = `UPDATE wiki_categories SET name=$3, slug=$4, description=$5, updated_at=$6 WHERE wiki_id=$1 AND id=$2`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, c.WikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, q, c.WikiID, c.ID, c.Name, c.Slug, c.Description, c.UpdatedAt)
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

// SetPages replaces the page links of a category.
func (r *CategoryRepo) SetPages(ctx context.Context, version int64, wikiID, categoryID uuid.UUID, pageIDs []uuid.UUID) error {
	const del = `DELETE FROM wiki_page_categories WHERE category_id=$1`
	const ins = `INSERT INTO wiki_page_categories (page_id, category_id) VALUES ($1,$2)`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, del, categoryID); err != nil {
			return err
		}
		for _, id := range pageIDs {
			if _, err := tx.Exec(ctx, ins, id, categoryID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a category; its page links cascade.
func (r *CategoryRepo) Delete(ctx context.Context, version int64, wikiID, id uuid.UUID) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM wiki_categories WHERE wiki_id=$1 AND id=$2`, wikiID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}
