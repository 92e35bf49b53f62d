// Package grpcserver exposes the wiki gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/convert"
	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/service"
)

// WikiEnsurer recovers a wiki whose project message was lost.
type WikiEnsurer interface {
	EnsureWiki(ctx context.Context, projectID uuid.UUID) (*model.Wiki, error)
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedWikiServiceServer
	svc    *service.Services
	resync WikiEnsurer
	reg    *event.Registry
	log    *zap.Logger
}

var _ pb.WikiServiceServer = (*Server)(nil)

// New constructs a gRPC server with injected services. resync may be nil.
func New(svc *service.Services, resync WikiEnsurer, reg *event.Registry, log *zap.Logger) *Server {
	if reg == nil {
		reg = event.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, resync: resync, reg: reg, log: log}
}

var errNoAuth = status.Error(codes.Unauthenticated, "no auth")

// userActor returns the authenticated caller; mutations need one.
func userActor(ctx context.Context) (service.Actor, error) {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return service.Actor{}, errNoAuth
	}
	return service.User(id), nil
}

func parseWikiStatus(s string) (model.WikiStatus, error) {
	st, err := model.ParseWikiStatus(s)
	if err != nil {
		return 0, errs.Invalid("status", "Status must be Draft, Published or Archived")
	}
	return st, nil
}

func parsePageStatus(s string) (model.PageStatus, error) {
	st, err := model.ParsePageStatus(s)
	if err != nil {
		return 0, errs.Invalid("status", "Status must be Draft, Published or Archived")
	}
	return st, nil
}

// --- Wiki ---

// CreateWiki creates a Draft wiki for a project the caller owns.
func (s *Server) CreateWiki(ctx context.Context, req *pb.CreateWikiRequest) (*pb.Wiki, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoCreateWiki(req)
	if err != nil {
		return nil, s.toStatus("create wiki", err)
	}
	w, err := s.svc.Wikis.Create(ctx, a, in)
	if err != nil {
		return nil, s.toStatus("create wiki", err)
	}
	return convert.ToProtoWiki(w), nil
}

// GetWiki returns a wiki visible to the caller.
func (s *Server) GetWiki(ctx context.Context, req *pb.WikiRef) (*pb.Wiki, error) {
	id, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("get wiki", err)
	}
	w, err := s.svc.Wikis.Get(ctx, actorFromCtx(ctx), id)
	if err != nil {
		return nil, s.toStatus("get wiki", err)
	}
	return convert.ToProtoWiki(w), nil
}

// GetWikiByProject returns the wiki of a project. A wiki the service has
// never heard of triggers one resync request before giving up.
func (s *Server) GetWikiByProject(ctx context.Context, req *pb.ProjectRef) (*pb.Wiki, error) {
	pid, err := convert.ParseID("projectId", req.GetProjectId())
	if err != nil {
		return nil, s.toStatus("get wiki by project", err)
	}
	a := actorFromCtx(ctx)
	w, err := s.svc.Wikis.GetByProjectID(ctx, a, pid)
	if errors.Is(err, errs.ErrNotFound) && s.resync != nil {
		if _, rerr := s.resync.EnsureWiki(ctx, pid); rerr == nil {
			w, err = s.svc.Wikis.GetByProjectID(ctx, a, pid)
		}
	}
	if err != nil {
		return nil, s.toStatus("get wiki by project", err)
	}
	return convert.ToProtoWiki(w), nil
}

// GetStatistics returns page, category and member counts.
func (s *Server) GetStatistics(ctx context.Context, req *pb.WikiRef) (*pb.Statistics, error) {
	id, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("get statistics", err)
	}
	st, err := s.svc.Wikis.Statistics(ctx, actorFromCtx(ctx), id)
	if err != nil {
		return nil, s.toStatus("get statistics", err)
	}
	return convert.ToProtoStatistics(st), nil
}

// UpdateWikiStatus publishes or archives a wiki.
func (s *Server) UpdateWikiStatus(ctx context.Context, req *pb.UpdateWikiStatusRequest) (*pb.Wiki, error) {
	return s.wikiMutation(ctx, "update wiki status", req.GetWikiId(), func(a service.Actor, id uuid.UUID) (*model.Wiki, error) {
		st, err := parseWikiStatus(req.GetStatus())
		if err != nil {
			return nil, err
		}
		return s.svc.Wikis.UpdateStatus(ctx, a, id, st)
	})
}

// UpdateWikiContent replaces the wiki home content.
func (s *Server) UpdateWikiContent(ctx context.Context, req *pb.UpdateWikiContentRequest) (*pb.Wiki, error) {
	return s.wikiMutation(ctx, "update wiki content", req.GetWikiId(), func(a service.Actor, id uuid.UUID) (*model.Wiki, error) {
		return s.svc.Wikis.UpdateContent(ctx, a, id, req.GetContent())
	})
}

// UpdateWikiSidebar replaces the navigation tree.
func (s *Server) UpdateWikiSidebar(ctx context.Context, req *pb.UpdateWikiSidebarRequest) (*pb.Wiki, error) {
	return s.wikiMutation(ctx, "update wiki sidebar", req.GetWikiId(), func(a service.Actor, id uuid.UUID) (*model.Wiki, error) {
		return s.svc.Wikis.UpdateSidebar(ctx, a, id, convert.FromProtoSidebar(req.GetSidebar()))
	})
}

// UpdateWikiOwnership hands the wiki to another member.
func (s *Server) UpdateWikiOwnership(ctx context.Context, req *pb.UpdateWikiOwnershipRequest) (*pb.Wiki, error) {
	return s.wikiMutation(ctx, "update wiki ownership", req.GetWikiId(), func(a service.Actor, id uuid.UUID) (*model.Wiki, error) {
		var demoted *model.Permissions
		if req.DemotedPermissions != nil {
			p := model.Permissions(req.GetDemotedPermissions())
			demoted = &p
		}
		return s.svc.Wikis.UpdateOwnership(ctx, a, id, req.GetUserId(), demoted)
	})
}

// DeleteWiki removes a wiki, its children and its history.
func (s *Server) DeleteWiki(ctx context.Context, req *pb.WikiRef) (*pb.Wiki, error) {
	return s.wikiMutation(ctx, "delete wiki", req.GetWikiId(), func(a service.Actor, id uuid.UUID) (*model.Wiki, error) {
		return s.svc.Wikis.Delete(ctx, a, id)
	})
}

func (s *Server) wikiMutation(
	ctx context.Context, op, wikiID string, fn func(service.Actor, uuid.UUID) (*model.Wiki, error),
) (*pb.Wiki, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID("wikiId", wikiID)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	w, err := fn(a, id)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	return convert.ToProtoWiki(w), nil
}

// --- Pages ---

// CreatePage adds a Draft page.
func (s *Server) CreatePage(ctx context.Context, req *pb.CreatePageRequest) (*pb.Page, error) {
	return s.pageMutation(ctx, "create page", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		return s.svc.Pages.Create(ctx, a, wikiID, service.PageInput{Title: req.GetTitle(), Slug: req.GetSlug(), Content: req.Content})
	})
}

// GetPage returns one page of a visible wiki.
func (s *Server) GetPage(ctx context.Context, req *pb.PageRef) (*pb.Page, error) {
	wikiID, pageID, err := parsePair("pageId", req.GetWikiId(), req.GetPageId())
	if err != nil {
		return nil, s.toStatus("get page", err)
	}
	p, err := s.svc.Pages.Get(ctx, actorFromCtx(ctx), wikiID, pageID)
	if err != nil {
		return nil, s.toStatus("get page", err)
	}
	return convert.ToProtoPage(p), nil
}

// GetPageBySlug looks a page up by its slug.
func (s *Server) GetPageBySlug(ctx context.Context, req *pb.SlugRef) (*pb.Page, error) {
	wikiID, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("get page by slug", err)
	}
	p, err := s.svc.Pages.GetBySlug(ctx, actorFromCtx(ctx), wikiID, req.GetSlug())
	if err != nil {
		return nil, s.toStatus("get page by slug", err)
	}
	return convert.ToProtoPage(p), nil
}

// ListPages lists the pages of a visible wiki.
func (s *Server) ListPages(ctx context.Context, req *pb.WikiRef) (*pb.ListPagesResponse, error) {
	wikiID, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("list pages", err)
	}
	ps, err := s.svc.Pages.List(ctx, actorFromCtx(ctx), wikiID)
	if err != nil {
		return nil, s.toStatus("list pages", err)
	}
	return convert.ToProtoPages(ps), nil
}

func (s *Server) UpdatePageDetails(ctx context.Context, req *pb.UpdatePageDetailsRequest) (*pb.Page, error) {
	return s.pageMutation(ctx, "update page details", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		pageID, err := convert.ParseID("pageId", req.GetPageId())
		if err != nil {
			return nil, err
		}
		return s.svc.Pages.UpdateDetails(ctx, a, wikiID, pageID, req.GetTitle(), req.GetSlug())
	})
}

func (s *Server) UpdatePageContent(ctx context.Context, req *pb.UpdatePageContentRequest) (*pb.Page, error) {
	return s.pageMutation(ctx, "update page content", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		pageID, err := convert.ParseID("pageId", req.GetPageId())
		if err != nil {
			return nil, err
		}
		return s.svc.Pages.UpdateContent(ctx, a, wikiID, pageID, req.GetContent())
	})
}

func (s *Server) UpdatePageCategories(ctx context.Context, req *pb.UpdatePageCategoriesRequest) (*pb.Page, error) {
	return s.pageMutation(ctx, "update page categories", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		pageID, err := convert.ParseID("pageId", req.GetPageId())
		if err != nil {
			return nil, err
		}
		ids, err := convert.ParseIDs("categoryIds", req.GetCategoryIds())
		if err != nil {
			return nil, err
		}
		return s.svc.Pages.UpdateCategories(ctx, a, wikiID, pageID, ids)
	})
}

func (s *Server) UpdatePageStatus(ctx context.Context, req *pb.UpdatePageStatusRequest) (*pb.Page, error) {
	return s.pageMutation(ctx, "update page status", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		pageID, err := convert.ParseID("pageId", req.GetPageId())
		if err != nil {
			return nil, err
		}
		st, err := parsePageStatus(req.GetStatus())
		if err != nil {
			return nil, err
		}
		return s.svc.Pages.UpdateStatus(ctx, a, wikiID, pageID, st)
	})
}

func (s *Server) DeletePage(ctx context.Context, req *pb.PageRef) (*pb.Page, error) {
	return s.pageMutation(ctx, "delete page", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Page, error) {
		pageID, err := convert.ParseID("pageId", req.GetPageId())
		if err != nil {
			return nil, err
		}
		return s.svc.Pages.Delete(ctx, a, wikiID, pageID)
	})
}

func (s *Server) pageMutation(
	ctx context.Context, op, wikiID string, fn func(service.Actor, uuid.UUID) (*model.Page, error),
) (*pb.Page, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID("wikiId", wikiID)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	p, err := fn(a, id)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	return convert.ToProtoPage(p), nil
}

func parsePair(childField, wikiID, childID string) (uuid.UUID, uuid.UUID, error) {
	w, err := convert.ParseID("wikiId", wikiID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	c, err := convert.ParseID(childField, childID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return w, c, nil
}

// --- Categories ---

func (s *Server) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.Category, error) {
	return s.categoryMutation(ctx, "create category", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Category, error) {
		return s.svc.Categories.Create(ctx, a, wikiID, service.CategoryInput{
			Name: req.GetName(), Slug: req.GetSlug(), Description: req.Description,
		})
	})
}

func (s *Server) GetCategory(ctx context.Context, req *pb.CategoryRef) (*pb.Category, error) {
	wikiID, id, err := parsePair("categoryId", req.GetWikiId(), req.GetCategoryId())
	if err != nil {
		return nil, s.toStatus("get category", err)
	}
	c, err := s.svc.Categories.Get(ctx, actorFromCtx(ctx), wikiID, id)
	if err != nil {
		return nil, s.toStatus("get category", err)
	}
	return convert.ToProtoCategory(c), nil
}

func (s *Server) GetCategoryBySlug(ctx context.Context, req *pb.SlugRef) (*pb.Category, error) {
	wikiID, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("get category by slug", err)
	}
	c, err := s.svc.Categories.GetBySlug(ctx, actorFromCtx(ctx), wikiID, req.GetSlug())
	if err != nil {
		return nil, s.toStatus("get category by slug", err)
	}
	return convert.ToProtoCategory(c), nil
}

func (s *Server) ListCategories(ctx context.Context, req *pb.WikiRef) (*pb.ListCategoriesResponse, error) {
	wikiID, err := convert.ParseID("wikiId", req.GetWikiId())
	if err != nil {
		return nil, s.toStatus("list categories", err)
	}
	cs, err := s.svc.Categories.List(ctx, actorFromCtx(ctx), wikiID)
	if err != nil {
		return nil, s.toStatus("list categories", err)
	}
	return convert.ToProtoCategories(cs), nil
}

func (s *Server) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.Category, error) {
	return s.categoryMutation(ctx, "update category", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Category, error) {
		id, err := convert.ParseID("categoryId", req.GetCategoryId())
		if err != nil {
			return nil, err
		}
		return s.svc.Categories.Update(ctx, a, wikiID, id, service.CategoryInput{
			Name: req.GetName(), Slug: req.GetSlug(), Description: req.Description,
		})
	})
}

func (s *Server) UpdateCategoryPages(ctx context.Context, req *pb.UpdateCategoryPagesRequest) (*pb.Category, error) {
	return s.categoryMutation(ctx, "update category pages", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Category, error) {
		id, err := convert.ParseID("categoryId", req.GetCategoryId())
		if err != nil {
			return nil, err
		}
		pageIDs, err := convert.ParseIDs("pageIds", req.GetPageIds())
		if err != nil {
			return nil, err
		}
		return s.svc.Categories.UpdatePages(ctx, a, wikiID, id, pageIDs)
	})
}

func (s *Server) DeleteCategory(ctx context.Context, req *pb.CategoryRef) (*pb.Category, error) {
	return s.categoryMutation(ctx, "delete category", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (*model.Category, error) {
		id, err := convert.ParseID("categoryId", req.GetCategoryId())
		if err != nil {
			return nil, err
		}
		return s.svc.Categories.Delete(ctx, a, wikiID, id)
	})
}

func (s *Server) categoryMutation(
	ctx context.Context, op, wikiID string, fn func(service.Actor, uuid.UUID) (*model.Category, error),
) (*pb.Category, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID("wikiId", wikiID)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	c, err := fn(a, id)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	return convert.ToProtoCategory(c), nil
}

// --- Members ---

func (s *Server) AddMember(ctx context.Context, req *pb.MemberUserRequest) (*pb.Member, error) {
	return s.memberMutation(ctx, "add member", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (model.Member, error) {
		return s.svc.Members.Add(ctx, a, wikiID, req.GetUserId())
	})
}

func (s *Server) UpdateMemberPermissions(ctx context.Context, req *pb.UpdateMemberPermissionsRequest) (*pb.Member, error) {
	return s.memberMutation(ctx, "update member permissions", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (model.Member, error) {
		id, err := convert.ParseID("memberId", req.GetMemberId())
		if err != nil {
			return model.Member{}, err
		}
		return s.svc.Members.UpdatePermissions(ctx, a, wikiID, id, model.Permissions(req.GetPermissions()))
	})
}

func (s *Server) RemoveMember(ctx context.Context, req *pb.MemberUserRequest) (*pb.Member, error) {
	return s.memberMutation(ctx, "remove member", req.GetWikiId(), func(a service.Actor, wikiID uuid.UUID) (model.Member, error) {
		return s.svc.Members.Remove(ctx, a, wikiID, req.GetUserId())
	})
}

func (s *Server) memberMutation(
	ctx context.Context, op, wikiID string, fn func(service.Actor, uuid.UUID) (model.Member, error),
) (*pb.Member, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	id, err := convert.ParseID("wikiId", wikiID)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	m, err := fn(a, id)
	if err != nil {
		return nil, s.toStatus(op, err)
	}
	return convert.ToProtoMember(m), nil
}

// --- History ---

// GetEvents returns one page of a wiki's history to a member.
func (s *Server) GetEvents(ctx context.Context, req *pb.GetEventsRequest) (*pb.GetEventsResponse, error) {
	a, err := userActor(ctx)
	if err != nil {
		return nil, err
	}
	q, err := convert.FromProtoEventsQuery(req, s.reg)
	if err != nil {
		return nil, s.toStatus("get events", err)
	}
	page, err := s.svc.History.GetEvents(ctx, a, q)
	if err != nil {
		return nil, s.toStatus("get events", err)
	}
	out, err := convert.ToProtoEventsPage(page)
	if err != nil {
		return nil, s.toStatus("get events", err)
	}
	return out, nil
}
