package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
)

// WikiService guards wiki-level operations.
type WikiService struct{ g *guard }

// MemberInput is a member as supplied by the project owning a wiki.
type MemberInput struct {
	UserID  string
	IsOwner bool
}

// CreateWikiInput describes a new wiki.
type CreateWikiInput struct {
	ProjectID       uuid.UUID
	ProjectName     string
	ProjectSlug     string
	ProjectImageURL *string
	Members         []MemberInput
}

// ProjectDetails are the project fields mirrored on a wiki.
type ProjectDetails struct {
	Name     string
	Slug     string
	ImageURL *string
}

// Create makes a Draft wiki. The owner receives every permission, other
// members none. A user actor must be the owner in the supplied list.
func (s *WikiService) Create(ctx context.Context, a Actor, in CreateWikiInput) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.create", &err)

	members := normalizeMembers(in.Members)
	if !a.Force {
		var isOwner bool
		for _, m := range members {
			if m.UserID == a.UserID && m.IsOwner {
				isOwner = true
			}
		}
		if !isOwner {
			return nil, errs.Forbidden("You do not have permission to create this wiki")
		}
	}

	var v errs.ValidationError
	if in.ProjectID == uuid.Nil {
		v.Add("projectId", "ProjectId is required")
	}
	if strings.TrimSpace(in.ProjectSlug) == "" {
		v.Add("projectSlug", "ProjectSlug is required")
	}
	if len(members) == 0 {
		v.Add("members", "Members are required")
	} else if owners(members) != 1 {
		v.Add("members", "Exactly one owner is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	w := &model.Wiki{
		ID:              g.NewID(),
		ProjectID:       in.ProjectID,
		ProjectName:     in.ProjectName,
		ProjectSlug:     in.ProjectSlug,
		ProjectImageURL: in.ProjectImageURL,
		Status:          model.WikiDraft,
		CreatedAt:       g.now(),
	}
	for _, m := range members {
		perms := model.PermNone
		if m.IsOwner {
			perms = model.PermAll
		}
		w.Members = append(w.Members, model.Member{
			ID: g.NewID(), WikiID: w.ID, UserID: m.UserID, IsOwner: m.IsOwner, Permissions: perms,
		})
	}

	if err := g.Wikis.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("create wiki: %w", err)
	}
	g.record(ctx, w.ID, a, &event.WikiCreated{Status: w.Status})
	g.Log.Info("wiki created", zap.String("wiki_id", w.ID.String()), zap.String("project_id", w.ProjectID.String()))
	return w, nil
}

// normalizeMembers trims user ids, drops blank ones and folds duplicates
// into their first occurrence. An owner flag on any copy is kept.
func normalizeMembers(in []MemberInput) []MemberInput {
	out := make([]MemberInput, 0, len(in))
	at := make(map[string]int, len(in))
	for _, m := range in {
		id := strings.TrimSpace(m.UserID)
		if id == "" {
			continue
		}
		if i, ok := at[id]; ok {
			out[i].IsOwner = out[i].IsOwner || m.IsOwner
			continue
		}
		at[id] = len(out)
		out = append(out, MemberInput{UserID: id, IsOwner: m.IsOwner})
	}
	return out
}

func owners(ms []MemberInput) int {
	n := 0
	for _, m := range ms {
		if m.IsOwner {
			n++
		}
	}
	return n
}

// Get returns a visible wiki.
func (s *WikiService) Get(ctx context.Context, a Actor, id uuid.UUID) (*model.Wiki, error) {
	return s.g.load(ctx, id, a)
}

// GetByProjectID returns the visible wiki of a project.
func (s *WikiService) GetByProjectID(ctx context.Context, a Actor, projectID uuid.UUID) (*model.Wiki, error) {
	w, err := s.g.Wikis.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !w.VisibleTo(a.UserID, a.Force) {
		return nil, errs.ErrNotFound
	}
	return w, nil
}

// Statistics counts the children of a visible wiki.
func (s *WikiService) Statistics(ctx context.Context, a Actor, id uuid.UUID) (model.Statistics, error) {
	if _, err := s.g.load(ctx, id, a); err != nil {
		return model.Statistics{}, err
	}
	return s.g.Wikis.Statistics(ctx, id)
}

// UpdateProjectDetails mirrors project name, slug and image. System only.
func (s *WikiService) UpdateProjectDetails(ctx context.Context, a Actor, id uuid.UUID, d ProjectDetails) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_project_details", &err)

	if !a.Force {
		return nil, errs.Forbidden("Project details are managed by the project service")
	}
	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	if w.ProjectName == d.Name && w.ProjectSlug == d.Slug && strPtrEqual(w.ProjectImageURL, d.ImageURL) {
		return w, nil
	}
	if strings.TrimSpace(d.Slug) == "" {
		return nil, errs.Invalid("projectSlug", "ProjectSlug is required")
	}

	now := g.now()
	w.ProjectName, w.ProjectSlug, w.ProjectImageURL, w.UpdatedAt = d.Name, d.Slug, d.ImageURL, &now
	if err := g.Wikis.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update project details: %w", err)
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedProjectDetails{
		ProjectName: w.ProjectName, ProjectSlug: w.ProjectSlug, ProjectImageURL: w.ProjectImageURL,
	})
	return w, nil
}

// statusPermission is the capability needed to move a wiki to target.
// Draft has none, so only the owner reaches the transition check.
func statusPermission(target model.WikiStatus) model.Permissions {
	switch target {
	case model.WikiPublished:
		return model.PublishWiki
	case model.WikiArchived:
		return model.ArchiveWiki
	}
	return model.PermNone
}

// UpdateStatus publishes or archives a wiki and notifies its members.
func (s *WikiService) UpdateStatus(ctx context.Context, a Actor, id uuid.UUID, target model.WikiStatus) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_status", &err)

	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, statusPermission(target), "You do not have permission to edit this wiki"); err != nil {
		return nil, err
	}
	noop, err := model.TransitionWiki(w.Status, target)
	if err != nil {
		return nil, err
	}
	if noop {
		return w, nil
	}

	now := g.now()
	w.Status = target
	w.UpdatedAt = &now
	model.StampPublished(&w.PublishedAt, target == model.WikiPublished, now)
	if err := g.Wikis.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update wiki status: %w", err)
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedStatus{Status: w.Status})

	switch target {
	case model.WikiPublished:
		g.notify(ctx, w, a, NotifyWikiPublished, false)
	case model.WikiArchived:
		g.notify(ctx, w, a, NotifyWikiArchived, false)
	}
	return w, nil
}

// UpdateContent replaces the wiki's home content.
func (s *WikiService) UpdateContent(ctx context.Context, a Actor, id uuid.UUID, content string) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_content", &err)

	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, model.EditWiki, "You do not have permission to edit this wiki"); err != nil {
		return nil, err
	}
	if w.Content != nil && *w.Content == content {
		return w, nil
	}

	now := g.now()
	w.Content, w.UpdatedAt = &content, &now
	if err := g.Wikis.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update wiki content: %w", err)
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedContent{Content: w.Content})
	return w, nil
}

// UpdateSidebar normalises and stores the navigation tree.
func (s *WikiService) UpdateSidebar(ctx context.Context, a Actor, id uuid.UUID, sb model.Sidebar) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_sidebar", &err)

	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, model.EditWiki, "You do not have permission to edit this wiki"); err != nil {
		return nil, err
	}
	sb = sb.Normalize(func() string { return g.NewID().String() })
	if w.Sidebar.Equal(sb) {
		return w, nil
	}

	now := g.now()
	w.Sidebar, w.UpdatedAt = sb, &now
	if err := g.Wikis.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update wiki sidebar: %w", err)
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedSidebar{Sidebar: w.Sidebar})
	return w, nil
}

// UpdateOwnership moves ownership to another member. The previous owner
// keeps demoted, or every named permission when demoted is nil.
func (s *WikiService) UpdateOwnership(
	ctx context.Context, a Actor, id uuid.UUID, toUserID string, demoted *model.Permissions,
) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_ownership", &err)

	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	owner, ok := w.Owner()
	if !ok {
		return nil, errs.ErrNotFound
	}
	if !a.Force && owner.UserID != a.UserID {
		return nil, errs.Forbidden("Only the owner can transfer ownership of this wiki")
	}
	if owner.UserID == toUserID {
		return w, nil
	}
	if _, ok := w.Member(toUserID); !ok {
		return nil, errs.ErrNotFound
	}

	perms := model.PermAllNamed
	if demoted != nil {
		perms = *demoted
	}
	if err := g.Wikis.TransferOwnership(ctx, w.ID, w.Version, owner.UserID, toUserID, perms); err != nil {
		return nil, fmt.Errorf("transfer ownership: %w", err)
	}
	w.Version++
	for i := range w.Members {
		switch w.Members[i].UserID {
		case owner.UserID:
			w.Members[i].IsOwner, w.Members[i].Permissions = false, perms
		case toUserID:
			w.Members[i].IsOwner, w.Members[i].Permissions = true, model.PermAll
		}
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedOwnership{FromUserID: owner.UserID, ToUserID: toUserID})
	return w, nil
}

// UpdateMembers replaces the member list with the project's. System only.
// Existing members keep their permissions, new members start with none,
// the owner gets every permission and a demoted owner every named one.
func (s *WikiService) UpdateMembers(ctx context.Context, a Actor, id uuid.UUID, in []MemberInput) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.update_members", &err)

	if !a.Force {
		return nil, errs.Forbidden("Wiki members are managed by the project service")
	}
	in = normalizeMembers(in)
	if owners(in) != 1 {
		return nil, errs.Invalid("members", "Exactly one owner is required")
	}
	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}

	next := make([]model.Member, 0, len(in))
	for _, m := range in {
		cur, exists := w.Member(m.UserID)
		nm := model.Member{ID: cur.ID, WikiID: w.ID, UserID: m.UserID, IsOwner: m.IsOwner}
		if !exists {
			nm.ID = g.NewID()
		}
		switch {
		case m.IsOwner:
			nm.Permissions = model.PermAll
		case exists && cur.IsOwner:
			nm.Permissions = model.PermAllNamed
		case exists:
			nm.Permissions = cur.Permissions
		default:
			nm.Permissions = model.PermNone
		}
		next = append(next, nm)
	}
	if sameMembers(w.Members, next) {
		return w, nil
	}

	if err := g.Wikis.ReplaceMembers(ctx, w.ID, w.Version, next); err != nil {
		return nil, fmt.Errorf("replace members: %w", err)
	}
	w.Version++
	w.Members = next

	snap := make([]event.MemberSnapshot, 0, len(next))
	for _, m := range next {
		snap = append(snap, event.MemberSnapshot{UserID: m.UserID, IsOwner: m.IsOwner, Permissions: m.Permissions})
	}
	g.record(ctx, w.ID, a, &event.WikiUpdatedMembers{Members: snap})
	return w, nil
}

func sameMembers(a, b []model.Member) bool {
	if len(a) != len(b) {
		return false
	}
	byUser := make(map[string]model.Member, len(a))
	for _, m := range a {
		byUser[m.UserID] = m
	}
	for _, m := range b {
		o, ok := byUser[m.UserID]
		if !ok || o.IsOwner != m.IsOwner || o.Permissions != m.Permissions {
			return false
		}
	}
	return true
}

// Delete removes a wiki with its children and history. Members are
// notified unless the system deletes it alongside its project.
func (s *WikiService) Delete(ctx context.Context, a Actor, id uuid.UUID) (_ *model.Wiki, err error) {
	g := s.g
	defer g.observe("wiki.delete", &err)

	w, err := g.load(ctx, id, a)
	if err != nil {
		return nil, err
	}
	if err := g.authorizeUnlessForced(w, a, model.DeleteWiki, "You do not have permission to delete this wiki"); err != nil {
		return nil, err
	}
	if err := g.Wikis.Delete(ctx, w.ID, w.Version); err != nil {
		return nil, fmt.Errorf("delete wiki: %w", err)
	}
	if err := g.Events.Delete(ctx, w.ID); err != nil {
		g.Log.Error("delete wiki history", zap.String("wiki_id", w.ID.String()), zap.Error(err))
	}
	if !a.Force {
		g.notify(ctx, w, a, NotifyWikiDeleted, true)
	}
	g.Log.Info("wiki deleted", zap.String("wiki_id", w.ID.String()))
	return w, nil
}
