package sync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/service"
)

// Reconciler applies project messages to wikis. Applying the same message
// twice leaves the wiki in the same state.
type Reconciler struct {
	svc *service.Services
	log *zap.Logger
}

// NewReconciler returns a reconciler over the guarded services.
func NewReconciler(svc *service.Services, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{svc: svc, log: log}
}

// Apply dispatches m. A missing wiki is not an error for messages that
// only modify one: the resync path recreates it from a full snapshot.
func (r *Reconciler) Apply(ctx context.Context, m Message) error {
	switch m := m.(type) {
	case *ProjectCreated:
		return r.upsert(ctx, m.ProjectState)
	case *ProjectUpdated:
		return r.upsert(ctx, m.ProjectState)
	case *ProjectUpdatedDetails:
		return r.withWiki(ctx, m, func(w *model.Wiki) error {
			_, err := r.svc.Wikis.UpdateProjectDetails(ctx, service.System(), w.ID, service.ProjectDetails{
				Name: m.ProjectName, Slug: m.ProjectSlug, ImageURL: m.ProjectImageURL,
			})
			return err
		})
	case *ProjectUpdatedOwnership:
		return r.withWiki(ctx, m, func(w *model.Wiki) error {
			a := service.OnBehalf(m.PerformingUserID)
			if _, ok := w.Member(m.ToUserID); !ok {
				if _, err := r.svc.Members.Add(ctx, a, w.ID, m.ToUserID); err != nil {
					return err
				}
			}
			_, err := r.svc.Wikis.UpdateOwnership(ctx, a, w.ID, m.ToUserID, nil)
			return err
		})
	case *ProjectMemberAdded:
		return r.withWiki(ctx, m, func(w *model.Wiki) error {
			_, err := r.svc.Members.Add(ctx, service.OnBehalf(m.PerformingUserID), w.ID, m.UserID)
			return err
		})
	case *ProjectMemberRemoved:
		return r.withWiki(ctx, m, func(w *model.Wiki) error {
			if _, ok := w.Member(m.UserID); !ok {
				return nil
			}
			_, err := r.svc.Members.Remove(ctx, service.OnBehalf(m.PerformingUserID), w.ID, m.UserID)
			return err
		})
	case *ProjectDeleted:
		return r.withWiki(ctx, m, func(w *model.Wiki) error {
			_, err := r.svc.Wikis.Delete(ctx, service.System(), w.ID)
			return err
		})
	}
	return fmt.Errorf("%w: %T", ErrUnknownMessage, m)
}

func (r *Reconciler) withWiki(ctx context.Context, m Message, fn func(*model.Wiki) error) error {
	w, err := r.svc.Wikis.GetByProjectID(ctx, service.System(), m.Project())
	if errors.Is(err, errs.ErrNotFound) {
		r.log.Debug("no wiki for project",
			zap.String("project_id", m.Project().String()),
			zap.String("type", string(m.Type())))
		return nil
	}
	if err != nil {
		return err
	}
	return fn(w)
}

// upsert creates the wiki of a project or brings an existing one in line
// with the snapshot.
func (r *Reconciler) upsert(ctx context.Context, p ProjectState) error {
	members := make([]service.MemberInput, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, service.MemberInput{UserID: m.UserID, IsOwner: m.IsOwner})
	}

	w, err := r.svc.Wikis.GetByProjectID(ctx, service.System(), p.ProjectID)
	if errors.Is(err, errs.ErrNotFound) {
		_, cerr := r.svc.Wikis.Create(ctx, service.System(), service.CreateWikiInput{
			ProjectID:       p.ProjectID,
			ProjectName:     p.ProjectName,
			ProjectSlug:     p.ProjectSlug,
			ProjectImageURL: p.ProjectImageURL,
			Members:         members,
		})
		if !errors.Is(cerr, errs.ErrAlreadyExists) {
			return cerr
		}
		// created concurrently; fall through to the update path
		w, err = r.svc.Wikis.GetByProjectID(ctx, service.System(), p.ProjectID)
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("create wiki for project %s: %w", p.ProjectID, cerr)
		}
	}
	if err != nil {
		return err
	}

	if _, err := r.svc.Wikis.UpdateProjectDetails(ctx, service.System(), w.ID, service.ProjectDetails{
		Name: p.ProjectName, Slug: p.ProjectSlug, ImageURL: p.ProjectImageURL,
	}); err != nil {
		return err
	}
	_, err = r.svc.Wikis.UpdateMembers(ctx, service.System(), w.ID, members)
	return err
}

// permanent reports errors that retrying cannot fix.
func permanent(err error) bool {
	return errors.Is(err, errs.ErrValidation) ||
		errors.Is(err, errs.ErrForbidden) ||
		errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrInvalidTransition) ||
		errors.Is(err, ErrUnknownMessage)
}
