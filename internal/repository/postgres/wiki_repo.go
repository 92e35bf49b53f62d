package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
)

// WikiRepo implements WikiRepository using PostgreSQL.
type WikiRepo struct{ db *DB }

// NewWikiRepo constructs a wiki repository.
func NewWikiRepo(db *DB) *WikiRepo { return &WikiRepo{db: db} }

const wikiColumns = `id, project_id, project_name, project_slug, project_image_url, content, sidebar, status, version, created_at, updated_at, published_at`

const insertMemberSQL = `INSERT INTO wiki_members (id, wiki_id, user_id, is_owner, permissions) VALUES ($1,$2,$3,$4,$5)`

// Create inserts the wiki and its members in one transaction.
func (r *WikiRepo) Create(ctx context.Context, w *model.Wiki) error {
	sidebar, err := json.Marshal(w.Sidebar)
	if err != nil {
		return fmt.Errorf("marshal sidebar: %w", err)
	}
	const ins = `
INSERT INTO wikis (id, project_id, project_name, project_slug, project_image_url, content, sidebar, status, version, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,1,$9)`

	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ins, w.ID, w.ProjectID, w.ProjectName, w.ProjectSlug,
			w.ProjectImageURL, w.Content, sidebar, int16(w.Status), w.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyExists
			}
			return err
		}
		for _, m := range w.Members {
			if _, err := tx.Exec(ctx, insertMemberSQL, m.ID, w.ID, m.UserID, m.IsOwner, permToDB(m.Permissions)); err != nil {
				if isUniqueViolation(err) {
					return errs.ErrAlreadyExists
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.Version = 1
	return nil
}

// GetByID loads a wiki with its members and child ids.
func (r *WikiRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Wiki, error) {
	return r.load(ctx, `SELECT `+wikiColumns+` FROM wikis WHERE id=$1`, id)
}

// GetByProjectID loads the wiki of a project.
func (r *WikiRepo) GetByProjectID(ctx context.Context, projectID uuid.UUID) (*model.Wiki, error) {
	return r.load(ctx, `SELECT `+wikiColumns+` FROM wikis WHERE project_id=$1`, projectID)
}

func (r *WikiRepo) load(ctx context.Context, q string, arg any) (*model.Wiki, error) {
	var (
		w       model.Wiki
		sidebar []byte
		status  int16
	)
	err := r.db.Pool.QueryRow(ctx, q, arg).Scan(&w.ID, &w.ProjectID, &w.ProjectName, &w.ProjectSlug,
		&w.ProjectImageURL, &w.Content, &sidebar, &status, &w.Version, &w.CreatedAt, &w.UpdatedAt, &w.PublishedAt)
	if err != nil {
		return nil, notFound(err)
	}
	w.Status = model.WikiStatus(status)
	if len(sidebar) > 0 {
		if err := json.Unmarshal(sidebar, &w.Sidebar); err != nil {
			return nil, fmt.Errorf("unmarshal sidebar: %w", err)
		}
	}

	const members = `SELECT id, user_id, is_owner, permissions FROM wiki_members WHERE wiki_id=$1 ORDER BY is_owner DESC, user_id`
	rows, err := r.db.Pool.Query(ctx, members, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		m := model.Member{WikiID: w.ID}
		var perms int64
		if err := rows.Scan(&m.ID, &m.UserID, &m.IsOwner, &perms); err != nil {
			return nil, err
		}
		m.Permissions = permFromDB(perms)
		w.Members = append(w.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cats, err := r.db.Pool.Query(ctx, `SELECT id FROM wiki_categories WHERE wiki_id=$1 ORDER BY created_at, id`, w.ID)
	if err != nil {
		return nil, err
	}
	if w.CategoryIDs, err = scanIDs(cats); err != nil {
		return nil, err
	}
	pages, err := r.db.Pool.Query(ctx, `SELECT id FROM wiki_pages WHERE wiki_id=$1 ORDER BY created_at, id`, w.ID)
	if err != nil {
		return nil, err
	}
	if w.PageIDs, err = scanIDs(pages); err != nil {
		return nil, err
	}
	return &w, nil
}

// Statistics counts pages, categories and members of a wiki.
func (r *WikiRepo) Statistics(ctx context.Context, id uuid.UUID) (model.Statistics, error) {
	const q = `
SELECT
  (SELECT count(*) FROM wiki_pages WHERE wiki_id=w.id),
  (SELECT count(*) FROM wiki_categories WHERE wiki_id=w.id),
  (SELECT count(*) FROM wiki_members WHERE wiki_id=w.id)
FROM wikis w WHERE w.id=$1`
	s := model.Statistics{WikiID: id}
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&s.PageCount, &s.CategoryCount, &s.MemberCount); err != nil {
		return model.Statistics{}, notFound(err)
	}
	return s, nil
}

// Update writes the mutable wiki columns guarded by the loaded version.
// updated_at comes from w so the caller's copy matches the stored row.
func (r *WikiRepo) Update(ctx context.Context, w *model.Wiki) error {
	sidebar, err := json.Marshal(w.Sidebar)
	if err != nil {
		return fmt.Errorf("marshal sidebar: %w", err)
	}
	const q = `
UPDATE wikis SET project_name=$3, project_slug=$4, project_image_url=$5, content=$6, sidebar=$7,
  status=$8, published_at=$9, updated_at=$10, version=version+1
WHERE id=$1 AND version=$2`
	tag, err := r.db.Pool.Exec(ctx, q, w.ID, w.Version, w.ProjectName, w.ProjectSlug, w.ProjectImageURL,
		w.Content, sidebar, int16(w.Status), w.PublishedAt, w.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrVersionConflict
	}
	w.Version++
	return nil
}

// ReplaceMembers swaps the member list. Members keep the ids they carry.
func (r *WikiRepo) ReplaceMembers(ctx context.Context, wikiID uuid.UUID, version int64, members []model.Member) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM wiki_members WHERE wiki_id=$1`, wikiID); err != nil {
			return err
		}
		for _, m := range members {
			if _, err := tx.Exec(ctx, insertMemberSQL, m.ID, wikiID, m.UserID, m.IsOwner, permToDB(m.Permissions)); err != nil {
				return err
			}
		}
		return nil
	})
}

// TransferOwnership demotes the current owner and promotes the target.
func (r *WikiRepo) TransferOwnership(
	ctx context.Context, wikiID uuid.UUID, version int64, fromUserID, toUserID string, demoted model.Permissions,
) error {
	const demote = `UPDATE wiki_members SET is_owner=false, permissions=$3 WHERE wiki_id=$1 AND user_id=$2 AND is_owner`
	const promote = `UPDATE wiki_members SET is_owner=true, permissions=$3 WHERE wiki_id=$1 AND user_id=$2`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, demote, wikiID, fromUserID, permToDB(demoted))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		tag, err = tx.Exec(ctx, promote, wikiID, toUserID, permToDB(model.PermAll))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

// Delete removes the wiki; children cascade.
func (r *WikiRepo) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM wikis WHERE id=$1 AND version=$2`, id, version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrVersionConflict
	}
	return nil
}
