package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/model"
)

type fakeAPI struct {
	events    *pb.GetEventsRequest
	ownership *pb.UpdateWikiOwnershipRequest
	perms     *pb.UpdateMemberPermissionsRequest
	err       error
}

func (f *fakeAPI) GetWiki(_ context.Context, in *pb.WikiRef, _ ...grpc.CallOption) (*pb.Wiki, error) {
	return &pb.Wiki{Id: in.GetWikiId(), Status: "Draft"}, f.err
}

func (f *fakeAPI) GetWikiByProject(_ context.Context, in *pb.ProjectRef, _ ...grpc.CallOption) (*pb.Wiki, error) {
	return &pb.Wiki{Id: "w1", ProjectId: in.GetProjectId()}, f.err
}

func (f *fakeAPI) GetEvents(_ context.Context, in *pb.GetEventsRequest, _ ...grpc.CallOption) (*pb.GetEventsResponse, error) {
	f.events = in
	if f.err != nil {
		return nil, f.err
	}
	ts := timestamppb.New(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	return &pb.GetEventsResponse{
		Events: []*pb.Event{
			{Seq: 2, Discriminator: "WikiPublishedEvent", UserId: "u1", Timestamp: ts},
			{Seq: 1, Discriminator: "WikiCreatedEvent", UserId: "u1", Timestamp: ts},
		},
		Page: 1, PageSize: 2, TotalCount: 3, TotalPages: 2, HasMore: true,
	}, nil
}

func (f *fakeAPI) UpdateWikiStatus(_ context.Context, in *pb.UpdateWikiStatusRequest, _ ...grpc.CallOption) (*pb.Wiki, error) {
	return &pb.Wiki{Id: in.GetWikiId(), Status: in.GetStatus()}, f.err
}

func (f *fakeAPI) UpdatePageStatus(_ context.Context, in *pb.UpdatePageStatusRequest, _ ...grpc.CallOption) (*pb.Page, error) {
	return &pb.Page{Id: in.GetPageId(), Status: in.GetStatus()}, f.err
}

func (f *fakeAPI) UpdateWikiOwnership(_ context.Context, in *pb.UpdateWikiOwnershipRequest, _ ...grpc.CallOption) (*pb.Wiki, error) {
	f.ownership = in
	return &pb.Wiki{Id: in.GetWikiId()}, f.err
}

func (f *fakeAPI) UpdateMemberPermissions(_ context.Context, in *pb.UpdateMemberPermissionsRequest, _ ...grpc.CallOption) (*pb.Member, error) {
	f.perms = in
	return &pb.Member{Id: in.GetMemberId(), Permissions: in.GetPermissions()}, f.err
}

func TestParsePermissions(t *testing.T) {
	cases := []struct {
		in   string
		want model.Permissions
		err  bool
	}{
		{"", model.PermNone, false},
		{"None", model.PermNone, false},
		{"6", model.Permissions(6), false},
		{"EditWiki,PublishWiki", model.EditWiki | model.PublishWiki, false},
		{"editwiki | DeleteWiki", model.EditWiki | model.DeleteWiki, false},
		{"EditWiki,Bogus", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parsePermissions(c.in)
			if c.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestCmdEvents(t *testing.T) {
	api := &fakeAPI{}
	var out bytes.Buffer
	err := cmdEvents(context.Background(), api,
		[]string{"--wiki", "w1", "--page", "1", "--size", "2", "--user", "u1", "--type", "WikiPublishedEvent,WikiCreatedEvent", "--forward"},
		&out)
	require.NoError(t, err)

	require.Equal(t, "w1", api.events.GetWikiId())
	require.Equal(t, int64(2), api.events.GetPageSize())
	require.Equal(t, []string{"u1"}, api.events.GetUserIds())
	require.Equal(t, []string{"WikiPublishedEvent", "WikiCreatedEvent"}, api.events.GetEventTypes())
	require.Equal(t, "forward", api.events.GetDirection())

	s := out.String()
	require.Contains(t, s, "SEQ")
	require.Contains(t, s, "WikiPublishedEvent")
	require.Contains(t, s, "2026-01-02 03:04:05")
	require.Contains(t, s, "page 1/2 (3 events, more)")

	require.Error(t, cmdEvents(context.Background(), api, nil, &out))

	out.Reset()
	require.NoError(t, cmdEvents(context.Background(), api, []string{"--wiki", "w1", "--json"}, &out))
	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	require.Equal(t, "3", body["totalCount"])
	require.Len(t, body["events"], 2)
}

func TestCmdWikiJSON(t *testing.T) {
	api := &fakeAPI{}
	var out bytes.Buffer
	require.NoError(t, cmdWiki(context.Background(), api, []string{"--project", "p1"}, &out))

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	require.Equal(t, "w1", body["id"])
	require.Equal(t, "p1", body["projectId"])
	require.Contains(t, body, "members")

	require.Error(t, cmdWiki(context.Background(), api, nil, &out))
}

func TestCmdTransferAndPermissions(t *testing.T) {
	api := &fakeAPI{}
	var out bytes.Buffer

	require.NoError(t, cmdTransfer(context.Background(), api, []string{"--wiki", "w1", "--to", "u2"}, &out))
	require.Equal(t, "u2", api.ownership.GetUserId())
	require.Nil(t, api.ownership.DemotedPermissions)

	require.NoError(t, cmdTransfer(context.Background(), api, []string{"--wiki", "w1", "--to", "u2", "--keep", "EditWiki"}, &out))
	require.NotNil(t, api.ownership.DemotedPermissions)
	require.Equal(t, uint64(model.EditWiki), api.ownership.GetDemotedPermissions())

	out.Reset()
	require.NoError(t, cmdPermissions(context.Background(), api, []string{"--wiki", "w1", "--member", "m1", "--set", "EditWiki|PublishWiki"}, &out))
	require.Equal(t, uint64(model.EditWiki|model.PublishWiki), api.perms.GetPermissions())
	require.Contains(t, out.String(), "EditWiki|PublishWiki")

	require.Error(t, cmdPermissions(context.Background(), api, []string{"--wiki", "w1", "--member", "m1"}, &out))
	require.Error(t, cmdPermissions(context.Background(), api, []string{"--wiki", "w1", "--member", "m1", "--set", "Nope"}, &out))
}

func TestCmdStatus(t *testing.T) {
	api := &fakeAPI{}
	var out bytes.Buffer
	require.NoError(t, cmdWikiStatus(context.Background(), api, []string{"--wiki", "w1", "--status", "Published"}, &out))
	require.Equal(t, "wiki w1: Published\n", out.String())

	out.Reset()
	require.NoError(t, cmdPageStatus(context.Background(), api, []string{"--wiki", "w1", "--page", "p1", "--status", "Archived"}, &out))
	require.Equal(t, "page p1: Archived\n", out.String())

	api.err = status.Error(codes.FailedPrecondition, "invalid status transition")
	err := cmdWikiStatus(context.Background(), api, []string{"--wiki", "w1", "--status", "Draft"}, &out)
	require.Error(t, err)
	require.Equal(t, "FailedPrecondition: invalid status transition", describe(err))
}
