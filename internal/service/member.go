package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

// MemberService guards membership changes.
type MemberService struct{ g *guard }

const memberEditReason = "You do not have permission to edit wiki member permissions"

// Add makes userID a member without permissions. Adding an existing
// member returns it unchanged.
func (s *MemberService) Add(ctx context.Context, a Actor, wikiID uuid.UUID, userID string) (_ model.Member, err error) {
	g := s.g
	defer g.observe("member.add", &err)

	w, err := g.load(ctx, wikiID, a)
	if err != nil {
		return model.Member{}, err
	}
	if err := g.authorizeUnlessForced(w, a, model.EditWikiMemberPermissions, memberEditReason); err != nil {
		return model.Member{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return model.Member{}, errs.Invalid("userId", "UserId is required")
	}
	if m, ok := w.Member(userID); ok {
		return m, nil
	}

	m := model.Member{ID: g.NewID(), WikiID: w.ID, UserID: userID, Permissions: model.PermNone}
	if err := g.Members.Add(ctx, w.Version, m); err != nil {
		return model.Member{}, fmt.Errorf("add member: %w", err)
	}
	g.record(ctx, w.ID, a, &event.MemberAdded{MemberID: userID})
	return m, nil
}

// UpdatePermissions changes a non-owner member's permissions. The actor
// may only add or remove bits it holds itself.
func (s *MemberService) UpdatePermissions(
	ctx context.Context, a Actor, wikiID, memberID uuid.UUID, requested model.Permissions,
) (_ model.Member, err error) {
	g := s.g
	defer g.observe("member.update_permissions", &err)

	w, err := g.load(ctx, wikiID, a)
	if err != nil {
		return model.Member{}, err
	}
	actorPerms := model.PermAll
	if !a.Force {
		actor, err := g.authorize(w, a, model.EditWikiMemberPermissions, memberEditReason)
		if err != nil {
			return model.Member{}, err
		}
		if !actor.IsOwner {
			actorPerms = actor.Permissions
		}
	}

	target, ok := w.MemberByID(memberID)
	if !ok {
		return model.Member{}, errs.ErrNotFound
	}
	if target.IsOwner {
		return model.Member{}, errs.Forbidden("You cannot change the permissions of the owner of the wiki")
	}
	if !model.CanGrant(actorPerms, target.Permissions, requested) {
		return model.Member{}, errs.Forbidden("You can only add permissions that you have")
	}
	if target.Permissions == requested {
		return target, nil
	}

	if err := g.Members.UpdatePermissions(ctx, w.ID, w.Version, target.ID, requested); err != nil {
		return model.Member{}, fmt.Errorf("update member permissions: %w", err)
	}
	target.Permissions = requested
	g.record(ctx, w.ID, a, &event.MemberUpdatedPermissions{MemberID: target.UserID, Permissions: requested})
	return target, nil
}

// Remove deletes a member. The owner cannot be removed.
func (s *MemberService) Remove(ctx context.Context, a Actor, wikiID uuid.UUID, userID string) (_ model.Member, err error) {
	g := s.g
	defer g.observe("member.remove", &err)

	w, err := g.load(ctx, wikiID, a)
	if err != nil {
		return model.Member{}, err
	}
	if err := g.authorizeUnlessForced(w, a, model.EditWikiMemberPermissions, memberEditReason); err != nil {
		return model.Member{}, err
	}
	target, ok := w.Member(userID)
	if !ok {
		return model.Member{}, errs.ErrNotFound
	}
	if target.IsOwner {
		return model.Member{}, errs.Forbidden("The owner of the wiki cannot be removed")
	}
	if err := g.Members.Remove(ctx, w.ID, w.Version, userID); err != nil {
		return model.Member{}, fmt.Errorf("remove member: %w", err)
	}
	g.record(ctx, w.ID, a, &event.MemberRemoved{MemberID: userID})
	return target, nil
}
