// Package convert maps domain values to protobuf messages and back.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/service"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tsPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

// clampInt narrows a wire integer to int, saturating on 32-bit platforms.
func clampInt(v int64) int {
	switch {
	case v > math.MaxInt:
		return math.MaxInt
	case v < math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// ParseID parses a wire id. Failures are reported against field.
func ParseID(field, s string) (u.UUID, error) {
	id, err := u.FromString(strings.TrimSpace(s))
	if err != nil || id == u.Nil {
		return u.Nil, errs.Invalid(field, fmt.Sprintf("%s is not a valid id", field))
	}
	return id, nil
}

// ParseIDs parses a list of wire ids.
func ParseIDs(field string, ss []string) ([]u.UUID, error) {
	out := make([]u.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(field, s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func idStrings(ids []u.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// --- wiki (server -> client) ---

// ToProtoWiki converts a wiki aggregate.
func ToProtoWiki(w *model.Wiki) *pb.Wiki {
	out := &pb.Wiki{
		Id:              w.ID.String(),
		ProjectId:       w.ProjectID.String(),
		ProjectName:     w.ProjectName,
		ProjectSlug:     w.ProjectSlug,
		ProjectImageUrl: w.ProjectImageURL,
		Content:         w.Content,
		Sidebar:         ToProtoSidebar(w.Sidebar),
		Status:          w.Status.String(),
		Version:         w.Version,
		CreatedAt:       ts(w.CreatedAt),
		UpdatedAt:       tsPtr(w.UpdatedAt),
		PublishedAt:     tsPtr(w.PublishedAt),
		Members:         make([]*pb.Member, 0, len(w.Members)),
		CategoryIds:     idStrings(w.CategoryIDs),
		PageIds:         idStrings(w.PageIDs),
	}
	for _, m := range w.Members {
		out.Members = append(out.Members, ToProtoMember(m))
	}
	return out
}

// ToProtoMember converts a member. Owners report the full mask.
func ToProtoMember(m model.Member) *pb.Member {
	return &pb.Member{
		Id:              m.ID.String(),
		UserId:          m.UserID,
		IsOwner:         m.IsOwner,
		Permissions:     uint64(m.Permissions),
		PermissionNames: m.Permissions.Names(),
	}
}

// ToProtoStatistics converts wiki statistics.
func ToProtoStatistics(s model.Statistics) *pb.Statistics {
	return &pb.Statistics{
		WikiId:        s.WikiID.String(),
		PageCount:     int64(s.PageCount),
		CategoryCount: int64(s.CategoryCount),
		MemberCount:   int64(s.MemberCount),
	}
}

// --- sidebar (both ways) ---

func ToProtoSidebar(s model.Sidebar) *pb.Sidebar {
	return &pb.Sidebar{Items: toProtoItems(s.Items)}
}

func toProtoItems(items []model.SidebarItem) []*pb.SidebarItem {
	if items == nil {
		return nil
	}
	out := make([]*pb.SidebarItem, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.SidebarItem{
			Index: it.Index, Title: it.Title, Slug: it.Slug, Category: toProtoItems(it.Category),
		})
	}
	return out
}

// FromProtoSidebar converts a sidebar tree. A nil sidebar is empty.
func FromProtoSidebar(s *pb.Sidebar) model.Sidebar {
	return model.Sidebar{Items: fromProtoItems(s.GetItems())}
}

func fromProtoItems(items []*pb.SidebarItem) []model.SidebarItem {
	if items == nil {
		return nil
	}
	out := make([]model.SidebarItem, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		var slug *string
		if it.Slug != nil {
			s := it.GetSlug()
			slug = &s
		}
		out = append(out, model.SidebarItem{
			Index: it.GetIndex(), Title: it.GetTitle(), Slug: slug, Category: fromProtoItems(it.GetCategory()),
		})
	}
	return out
}

// --- pages and categories (server -> client) ---

// ToProtoPage converts a page.
func ToProtoPage(p *model.Page) *pb.Page {
	return &pb.Page{
		Id:          p.ID.String(),
		WikiId:      p.WikiID.String(),
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		Status:      p.Status.String(),
		CreatedAt:   ts(p.CreatedAt),
		UpdatedAt:   tsPtr(p.UpdatedAt),
		PublishedAt: tsPtr(p.PublishedAt),
		CategoryIds: idStrings(p.CategoryIDs),
	}
}

// ToProtoPages converts a page list.
func ToProtoPages(ps []model.Page) *pb.ListPagesResponse {
	out := &pb.ListPagesResponse{Pages: make([]*pb.Page, 0, len(ps))}
	for i := range ps {
		out.Pages = append(out.Pages, ToProtoPage(&ps[i]))
	}
	return out
}

// ToProtoCategory converts a category.
func ToProtoCategory(c *model.Category) *pb.Category {
	return &pb.Category{
		Id:          c.ID.String(),
		WikiId:      c.WikiID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   ts(c.CreatedAt),
		UpdatedAt:   tsPtr(c.UpdatedAt),
		PageIds:     idStrings(c.PageIDs),
	}
}

// ToProtoCategories converts a category list.
func ToProtoCategories(cs []model.Category) *pb.ListCategoriesResponse {
	out := &pb.ListCategoriesResponse{Categories: make([]*pb.Category, 0, len(cs))}
	for i := range cs {
		out.Categories = append(out.Categories, ToProtoCategory(&cs[i]))
	}
	return out
}

// --- create wiki (client -> server) ---

// FromProtoCreateWiki converts a create request.
func FromProtoCreateWiki(in *pb.CreateWikiRequest) (service.CreateWikiInput, error) {
	pid, err := ParseID("projectId", in.GetProjectId())
	if err != nil {
		return service.CreateWikiInput{}, err
	}
	out := service.CreateWikiInput{
		ProjectID:   pid,
		ProjectName: in.GetProjectName(),
		ProjectSlug: in.GetProjectSlug(),
		Members:     make([]service.MemberInput, 0, len(in.GetMembers())),
	}
	if in.ProjectImageUrl != nil {
		img := in.GetProjectImageUrl()
		out.ProjectImageURL = &img
	}
	for _, m := range in.GetMembers() {
		out.Members = append(out.Members, service.MemberInput{UserID: m.GetUserId(), IsOwner: m.GetIsOwner()})
	}
	return out, nil
}

// --- history ---

// FromProtoEventsQuery converts a history request. Unknown event types are
// rejected rather than silently matching nothing.
func FromProtoEventsQuery(in *pb.GetEventsRequest, reg *event.Registry) (eventlog.Query, error) {
	wikiID, err := ParseID("wikiId", in.GetWikiId())
	if err != nil {
		return eventlog.Query{}, err
	}
	dir, err := eventlog.ParseDirection(in.GetDirection())
	if err != nil {
		return eventlog.Query{}, err
	}
	q := eventlog.Query{
		WikiID:    wikiID,
		UserIDs:   in.GetUserIds(),
		Page:      clampInt(in.GetPage()),
		PageSize:  clampInt(in.GetPageSize()),
		Direction: dir,
	}
	for _, t := range in.GetEventTypes() {
		k := event.Kind(t)
		if reg != nil && !reg.Known(k) {
			return eventlog.Query{}, errs.Invalid("eventTypes", fmt.Sprintf("Unknown event type %q", t))
		}
		q.Kinds = append(q.Kinds, k)
	}
	return q, nil
}

// ToProtoEvent converts one history record; the payload keeps its own JSON shape.
func ToProtoEvent(e event.Event) (*pb.Event, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.Kind(), err)
	}
	return &pb.Event{
		Seq:           e.Seq,
		Discriminator: string(e.Kind()),
		UserId:        e.UserID,
		Timestamp:     ts(e.Timestamp),
		Payload:       payload,
	}, nil
}

// ToProtoEventsPage converts a history page with its lookahead metadata.
func ToProtoEventsPage(p eventlog.Page) (*pb.GetEventsResponse, error) {
	out := &pb.GetEventsResponse{
		Events:     make([]*pb.Event, 0, len(p.Events)),
		Page:       int64(p.Page),
		PageSize:   int64(p.PageSize),
		TotalCount: int64(p.TotalCount()),
		TotalPages: int64(p.TotalPages()),
		HasMore:    p.HasMore,
	}
	for i, e := range p.Events {
		pe, err := ToProtoEvent(e)
		if err != nil {
			return nil, fmt.Errorf("event[%d]: %w", i, err)
		}
		out.Events = append(out.Events, pe)
	}
	return out, nil
}
