package grpcserver

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/projeli/wiki-service/internal/errs"
)

// toStatus maps a service error onto a gRPC status. Validation failures
// carry their field messages as a JSON object in the status message.
func (s *Server) toStatus(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		v *errs.ValidationError
		f *errs.ForbiddenError
		t *errs.TransitionError
	)
	switch {
	case errors.As(err, &v):
		body, mErr := json.Marshal(v.Fields)
		if mErr != nil {
			return status.Error(codes.InvalidArgument, v.Error())
		}
		return status.Error(codes.InvalidArgument, string(body))
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.As(err, &f):
		return status.Error(codes.PermissionDenied, f.Reason)
	case errors.Is(err, errs.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.As(err, &t):
		return status.Error(codes.FailedPrecondition, t.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return status.Error(codes.Aborted, "version conflict")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		s.log.Error("request failed", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "internal")
	}
}

// ValidationFields decodes the field messages of an InvalidArgument status.
func ValidationFields(err error) (map[string][]string, bool) {
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		return nil, false
	}
	var fields map[string][]string
	if json.Unmarshal([]byte(st.Message()), &fields) != nil {
		return nil, false
	}
	return fields, true
}
