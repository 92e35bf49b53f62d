package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/errs"
	"github.com/projeli/wiki-service/internal/eventlog"
	"github.com/projeli/wiki-service/internal/model"
	"github.com/projeli/wiki-service/internal/repository/memory"
	"github.com/projeli/wiki-service/internal/service"
)

const bufSize = 1 << 20

var signKey = []byte("test-secret")

func newServices(t *testing.T) *service.Services {
	t.Helper()
	store := memory.NewStore()
	return service.New(service.Deps{
		Wikis:      store.Wikis(),
		Members:    store.Members(),
		Categories: store.Categories(),
		Pages:      store.Pages(),
		Events:     eventlog.NewMemory(nil, zaptest.NewLogger(t)),
		Log:        zaptest.NewLogger(t),
	})
}

func startBufGRPC(t *testing.T, srv *Server) pb.WikiServiceClient {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	log := zaptest.NewLogger(t)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(RecoverUnary(log), AuthUnary(signKey), LoggingUnary(log, nil)))
	pb.RegisterWikiServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return pb.NewWikiServiceClient(cc)
}

func as(t *testing.T, sub string) context.Context {
	t.Helper()
	now := time.Now().UTC()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(signKey)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+tok)
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, status.Code(err), err.Error())
}

func TestServer_E2E(t *testing.T) {
	t.Parallel()
	cl := startBufGRPC(t, New(newServices(t), nil, nil, zaptest.NewLogger(t)))
	owner, stranger, anon := as(t, "u1"), as(t, "u9"), context.Background()
	projectID := uuid.Must(uuid.NewV7()).String()

	_, err := cl.CreateWiki(anon, &pb.CreateWikiRequest{ProjectId: projectID})
	requireCode(t, err, codes.Unauthenticated)

	w, err := cl.CreateWiki(owner, &pb.CreateWikiRequest{
		ProjectId:   projectID,
		ProjectName: "Projeli",
		ProjectSlug: "projeli",
		Members:     []*pb.MemberInput{{UserId: "u1", IsOwner: true}, {UserId: "u2"}},
	})
	require.NoError(t, err)
	require.Equal(t, "Draft", w.GetStatus())
	require.Len(t, w.GetMembers(), 2)

	_, err = cl.GetWiki(anon, &pb.WikiRef{WikiId: w.GetId()})
	requireCode(t, err, codes.NotFound)
	_, err = cl.GetWiki(anon, &pb.WikiRef{WikiId: "nope"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = cl.UpdateWikiStatus(owner, &pb.UpdateWikiStatusRequest{WikiId: w.GetId(), Status: "Published"})
	require.NoError(t, err)
	got, err := cl.GetWikiByProject(anon, &pb.ProjectRef{ProjectId: projectID})
	require.NoError(t, err)
	require.Equal(t, "Published", got.GetStatus())
	require.NotNil(t, got.GetPublishedAt())

	_, err = cl.UpdateWikiStatus(owner, &pb.UpdateWikiStatusRequest{WikiId: w.GetId(), Status: "Draft"})
	requireCode(t, err, codes.FailedPrecondition)
	_, err = cl.UpdateWikiStatus(owner, &pb.UpdateWikiStatusRequest{WikiId: w.GetId(), Status: "Gone"})
	requireCode(t, err, codes.InvalidArgument)

	p, err := cl.CreatePage(owner, &pb.CreatePageRequest{WikiId: w.GetId(), Title: "Home", Slug: "home"})
	require.NoError(t, err)
	_, err = cl.CreatePage(owner, &pb.CreatePageRequest{WikiId: w.GetId(), Title: "x", Slug: "home"})
	fields, ok := ValidationFields(err)
	require.True(t, ok)
	require.Equal(t, []string{"A page with this slug already exists"}, fields["slug"])
	require.NotEmpty(t, fields["title"])

	_, err = cl.CreatePage(stranger, &pb.CreatePageRequest{WikiId: w.GetId(), Title: "Mine", Slug: "mine"})
	requireCode(t, err, codes.PermissionDenied)

	c, err := cl.CreateCategory(owner, &pb.CreateCategoryRequest{WikiId: w.GetId(), Name: "Guides", Slug: "guides"})
	require.NoError(t, err)
	_, err = cl.UpdatePageCategories(owner, &pb.UpdatePageCategoriesRequest{WikiId: w.GetId(), PageId: p.GetId(), CategoryIds: []string{c.GetId()}})
	require.NoError(t, err)
	byslug, err := cl.GetCategoryBySlug(anon, &pb.SlugRef{WikiId: w.GetId(), Slug: "guides"})
	require.NoError(t, err)
	require.Equal(t, []string{p.GetId()}, byslug.GetPageIds())

	_, err = cl.UpdatePageStatus(owner, &pb.UpdatePageStatusRequest{WikiId: w.GetId(), PageId: p.GetId(), Status: "Published"})
	require.NoError(t, err)
	pages, err := cl.ListPages(anon, &pb.WikiRef{WikiId: w.GetId()})
	require.NoError(t, err)
	require.Len(t, pages.GetPages(), 1)
	require.Equal(t, "Published", pages.GetPages()[0].GetStatus())

	var u2 *pb.Member
	for _, m := range got.GetMembers() {
		if m.GetUserId() == "u2" {
			u2 = m
		}
	}
	m, err := cl.UpdateMemberPermissions(owner, &pb.UpdateMemberPermissionsRequest{
		WikiId: w.GetId(), MemberId: u2.GetId(), Permissions: uint64(model.EditWikiPages),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"EditWikiPages"}, m.GetPermissionNames())

	stats, err := cl.GetStatistics(anon, &pb.WikiRef{WikiId: w.GetId()})
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.GetPageCount())
	require.Equal(t, int64(2), stats.GetMemberCount())

	_, err = cl.GetEvents(stranger, &pb.GetEventsRequest{WikiId: w.GetId(), Page: 1, PageSize: 10})
	requireCode(t, err, codes.PermissionDenied)
	_, err = cl.GetEvents(anon, &pb.GetEventsRequest{WikiId: w.GetId(), Page: 1, PageSize: 10})
	requireCode(t, err, codes.Unauthenticated)

	hist, err := cl.GetEvents(as(t, "u2"), &pb.GetEventsRequest{WikiId: w.GetId(), Page: 1, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, hist.GetEvents(), 3)
	require.True(t, hist.GetHasMore())
	require.Equal(t, "WikiMemberUpdatedPermissionsEvent", hist.GetEvents()[0].GetDiscriminator())
	require.Equal(t, int64(4), hist.GetTotalCount())

	fwd, err := cl.GetEvents(owner, &pb.GetEventsRequest{
		WikiId: w.GetId(), Page: 1, PageSize: 10, Direction: "forward", EventTypes: []string{"WikiCreatedEvent"},
	})
	require.NoError(t, err)
	require.Len(t, fwd.GetEvents(), 1)
	require.JSONEq(t, `{"status":"Draft"}`, string(fwd.GetEvents()[0].GetPayload()))

	_, err = cl.DeleteWiki(as(t, "u2"), &pb.WikiRef{WikiId: w.GetId()})
	requireCode(t, err, codes.PermissionDenied)
	_, err = cl.DeleteWiki(owner, &pb.WikiRef{WikiId: w.GetId()})
	require.NoError(t, err)
	_, err = cl.GetWiki(owner, &pb.WikiRef{WikiId: w.GetId()})
	requireCode(t, err, codes.NotFound)
}

type fakeEnsurer struct {
	svc   *service.Services
	calls int
}

func (f *fakeEnsurer) EnsureWiki(ctx context.Context, projectID uuid.UUID) (*model.Wiki, error) {
	f.calls++
	return f.svc.Wikis.Create(ctx, service.System(), service.CreateWikiInput{
		ProjectID:   projectID,
		ProjectSlug: "late",
		Members:     []service.MemberInput{{UserID: "u1", IsOwner: true}},
	})
}

func TestServer_GetWikiByProject_Resync(t *testing.T) {
	t.Parallel()
	svc := newServices(t)
	ens := &fakeEnsurer{svc: svc}
	cl := startBufGRPC(t, New(svc, ens, nil, zaptest.NewLogger(t)))
	projectID := uuid.Must(uuid.NewV7()).String()

	w, err := cl.GetWikiByProject(as(t, "u1"), &pb.ProjectRef{ProjectId: projectID})
	require.NoError(t, err)
	require.Equal(t, "late", w.GetProjectSlug())
	require.Equal(t, 1, ens.calls)

	// the resynced wiki is a draft, so it stays hidden from non-members
	_, err = cl.GetWikiByProject(as(t, "u9"), &pb.ProjectRef{ProjectId: projectID})
	requireCode(t, err, codes.NotFound)
	require.Equal(t, 2, ens.calls)
}

func TestServer_toStatus(t *testing.T) {
	t.Parallel()
	s := New(nil, nil, nil, zaptest.NewLogger(t))

	cases := []struct {
		err  error
		want codes.Code
	}{
		{errs.ErrNotFound, codes.NotFound},
		{fmt.Errorf("load: %w", errs.ErrNotFound), codes.NotFound},
		{errs.Forbidden("nope"), codes.PermissionDenied},
		{errs.Invalid("name", "Name is required"), codes.InvalidArgument},
		{&errs.TransitionError{From: "Published", Target: "Draft"}, codes.FailedPrecondition},
		{fmt.Errorf("commit: %w", errs.ErrVersionConflict), codes.Aborted},
		{errs.ErrAlreadyExists, codes.AlreadyExists},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errors.New("disk on fire"), codes.Internal},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, status.Code(s.toStatus("op", tc.err)), tc.err.Error())
	}
	require.NoError(t, s.toStatus("op", nil))

	_, ok := ValidationFields(s.toStatus("op", errs.ErrNotFound))
	require.False(t, ok)
}

func TestServiceDescriptor(t *testing.T) {
	t.Parallel()

	d, err := protoregistry.GlobalFiles.FindDescriptorByName("projeli.wiki.v1.WikiService")
	require.NoError(t, err)
	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, sd.Methods().Len(), len(pb.WikiService_ServiceDesc.Methods))
	for _, m := range pb.WikiService_ServiceDesc.Methods {
		require.NotNil(t, sd.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}

	ts := sd.Methods().ByName("GetEvents").Output().Fields().ByName("events").Message().Fields().ByName("timestamp")
	require.Equal(t, protoreflect.FullName("google.protobuf.Timestamp"), ts.Message().FullName())
}
