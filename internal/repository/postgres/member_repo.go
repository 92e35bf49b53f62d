package postgres

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
)

// MemberRepo implements MemberRepository using PostgreSQL.
type MemberRepo struct{ db *DB }

// NewMemberRepo constructs a member repository.
func NewMemberRepo(db *DB) *MemberRepo { return &MemberRepo{db: db} }

// Add inserts a member; a duplicate user yields errs.ErrAlreadyExists.
func (r *MemberRepo) Add(ctx context.Context, version int64, m model.Member) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, m.WikiID, version); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insertMemberSQL, m.ID, m.WikiID, m.UserID, m.IsOwner, permToDB(m.Permissions)); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
}

// UpdatePermissions sets the permission set of a non-owner member.
func (r *MemberRepo) UpdatePermissions(
	ctx context.Context, wikiID uuid.UUID, version int64, memberID uuid.UUID, perms model.Permissions,
) error {
	const q = `UPDATE wiki_members SET permissions=$3 WHERE wiki_id=$1 AND id=$2 AND NOT is_owner`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, q, wikiID, memberID, permToDB(perms))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

// Remove deletes a non-owner member by user id.
func (r *MemberRepo) Remove(ctx context.Context, wikiID uuid.UUID, version int64, userID string) error {
	const q = `DELETE FROM wiki_members WHERE wiki_id=$1 AND user_id=$2 AND NOT is_owner`
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := bumpVersion(ctx, tx, wikiID, version); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, q, wikiID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}
