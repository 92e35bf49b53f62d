package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/model"
)

// wikiAPI is the part of the service client wikictl uses.
type wikiAPI interface {
	GetWiki(ctx context.Context, in *pb.WikiRef, opts ...grpc.CallOption) (*pb.Wiki, error)
	GetWikiByProject(ctx context.Context, in *pb.ProjectRef, opts ...grpc.CallOption) (*pb.Wiki, error)
	GetEvents(ctx context.Context, in *pb.GetEventsRequest, opts ...grpc.CallOption) (*pb.GetEventsResponse, error)
	UpdateWikiStatus(ctx context.Context, in *pb.UpdateWikiStatusRequest, opts ...grpc.CallOption) (*pb.Wiki, error)
	UpdatePageStatus(ctx context.Context, in *pb.UpdatePageStatusRequest, opts ...grpc.CallOption) (*pb.Page, error)
	UpdateWikiOwnership(ctx context.Context, in *pb.UpdateWikiOwnershipRequest, opts ...grpc.CallOption) (*pb.Wiki, error)
	UpdateMemberPermissions(ctx context.Context, in *pb.UpdateMemberPermissionsRequest, opts ...grpc.CallOption) (*pb.Member, error)
}

var _ wikiAPI = pb.WikiServiceClient(nil)

type command func(ctx context.Context, api wikiAPI, args []string, out io.Writer) error

var commands = map[string]command{
	"wiki":        cmdWiki,
	"events":      cmdEvents,
	"wiki-status": cmdWikiStatus,
	"page-status": cmdPageStatus,
	"transfer":    cmdTransfer,
	"permissions": cmdPermissions,
}

func cmdWiki(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("wiki", pflag.ContinueOnError)
	id := fs.String("id", "", "wiki id")
	project := fs.String("project", "", "project id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var (
		w   *pb.Wiki
		err error
	)
	switch {
	case *id != "":
		w, err = api.GetWiki(ctx, &pb.WikiRef{WikiId: *id})
	case *project != "":
		w, err = api.GetWikiByProject(ctx, &pb.ProjectRef{ProjectId: *project})
	default:
		return errors.New("need --id or --project")
	}
	if err != nil {
		return err
	}
	return printJSON(out, w)
}

func cmdEvents(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("events", pflag.ContinueOnError)
	wiki := fs.String("wiki", "", "wiki id")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 20, "page size")
	users := fs.StringSlice("user", nil, "only events by these users")
	kinds := fs.StringSlice("type", nil, "only these event kinds")
	forward := fs.Bool("forward", false, "oldest first")
	asJSON := fs.Bool("json", false, "print raw JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wiki == "" {
		return errors.New("need --wiki")
	}
	req := &pb.GetEventsRequest{
		WikiId:     *wiki,
		Page:       int64(*page),
		PageSize:   int64(*size),
		UserIds:    *users,
		EventTypes: *kinds,
	}
	if *forward {
		req.Direction = "forward"
	}
	resp, err := api.GetEvents(ctx, req)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(out, resp)
	}
	return printEvents(out, resp)
}

func cmdWikiStatus(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("wiki-status", pflag.ContinueOnError)
	wiki := fs.String("wiki", "", "wiki id")
	st := fs.String("status", "", "Draft|Published|Archived")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wiki == "" || *st == "" {
		return errors.New("need --wiki and --status")
	}
	w, err := api.UpdateWikiStatus(ctx, &pb.UpdateWikiStatusRequest{WikiId: *wiki, Status: *st})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "wiki %s: %s\n", w.GetId(), w.GetStatus())
	return nil
}

func cmdPageStatus(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("page-status", pflag.ContinueOnError)
	wiki := fs.String("wiki", "", "wiki id")
	page := fs.String("page", "", "page id")
	st := fs.String("status", "", "Draft|Published|Archived")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wiki == "" || *page == "" || *st == "" {
		return errors.New("need --wiki, --page and --status")
	}
	p, err := api.UpdatePageStatus(ctx, &pb.UpdatePageStatusRequest{WikiId: *wiki, PageId: *page, Status: *st})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "page %s: %s\n", p.GetId(), p.GetStatus())
	return nil
}

func cmdTransfer(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("transfer", pflag.ContinueOnError)
	wiki := fs.String("wiki", "", "wiki id")
	to := fs.String("to", "", "new owner user id")
	keep := fs.String("keep", "", "permissions left to the previous owner")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wiki == "" || *to == "" {
		return errors.New("need --wiki and --to")
	}
	req := &pb.UpdateWikiOwnershipRequest{WikiId: *wiki, UserId: *to}
	if fs.Changed("keep") {
		p, err := parsePermissions(*keep)
		if err != nil {
			return err
		}
		v := uint64(p)
		req.DemotedPermissions = &v
	}
	w, err := api.UpdateWikiOwnership(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "wiki %s: owner %s\n", w.GetId(), *to)
	return nil
}

func cmdPermissions(ctx context.Context, api wikiAPI, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("permissions", pflag.ContinueOnError)
	wiki := fs.String("wiki", "", "wiki id")
	member := fs.String("member", "", "member id")
	set := fs.String("set", "", "permission names or a number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wiki == "" || *member == "" || !fs.Changed("set") {
		return errors.New("need --wiki, --member and --set")
	}
	p, err := parsePermissions(*set)
	if err != nil {
		return err
	}
	m, err := api.UpdateMemberPermissions(ctx, &pb.UpdateMemberPermissionsRequest{
		WikiId:      *wiki,
		MemberId:    *member,
		Permissions: uint64(p),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "member %s: %s\n", m.GetId(), model.Permissions(m.GetPermissions()))
	return nil
}

func cmdPerms(out io.Writer) error {
	for _, n := range model.PermAllNamed.Names() {
		p, _ := model.ParsePermission(n)
		fmt.Fprintf(out, "%-28s %d\n", n, uint64(p))
	}
	return nil
}

// parsePermissions accepts a decimal bit set or names joined by ',' or '|'.
// An empty string is no permissions.
func parsePermissions(s string) (model.Permissions, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.PermNone, nil
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return model.Permissions(n), nil
	}
	var p model.Permissions
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		bit, ok := model.ParsePermission(name)
		if !ok {
			return 0, fmt.Errorf("unknown permission %q", name)
		}
		p |= bit
	}
	return p, nil
}

func printEvents(out io.Writer, resp *pb.GetEventsResponse) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tTIME\tUSER\tKIND")
	for _, e := range resp.GetEvents() {
		at := e.GetTimestamp().AsTime().Format("2006-01-02 15:04:05")
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.GetSeq(), at, e.GetUserId(), e.GetDiscriminator())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	more := ""
	if resp.GetHasMore() {
		more = ", more"
	}
	_, err := fmt.Fprintf(out, "page %d/%d (%d events%s)\n", resp.GetPage(), resp.GetTotalPages(), resp.GetTotalCount(), more)
	return err
}

var jsonOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

func printJSON(out io.Writer, m proto.Message) error {
	b, err := jsonOut.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", b)
	return err
}

// describe renders gRPC failures as "code: message".
func describe(err error) string {
	if st, ok := status.FromError(err); ok {
		return fmt.Sprintf("%s: %s", st.Code(), st.Message())
	}
	return err.Error()
}
