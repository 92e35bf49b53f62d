package grpcserver

import (
	"context"
	"errors"
	"path"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RPCObserver records per-call latency. *metrics.Metrics implements it.
type RPCObserver interface {
	ObserveRPC(method, code string, d time.Duration)
}

// LoggingUnary logs one line per call and feeds obs when it is non-nil.
// Server faults log at error, refused callers at warn.
func LoggingUnary(log *zap.Logger, obs RPCObserver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		took := time.Since(start)
		code := status.Code(err)
		method := path.Base(info.FullMethod)

		if obs != nil {
			obs.ObserveRPC(method, code.String(), took)
		}

		fields := make([]zap.Field, 0, 6)
		fields = append(fields,
			zap.String("method", method),
			zap.String("code", code.String()),
			zap.Duration("dur", took),
		)
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			fields = append(fields, zap.String("peer", p.Addr.String()))
		}
		if id, ok := UserIDFromCtx(ctx); ok {
			fields = append(fields, zap.String("user_id", id))
		}
		lvl := levelFor(code)
		if lvl == zapcore.ErrorLevel {
			fields = append(fields, zap.Error(err))
		}
		if ce := log.Check(lvl, "rpc"); ce != nil {
			ce.Write(fields...)
		}
		return resp, err
	}
}

func levelFor(c codes.Code) zapcore.Level {
	switch c {
	case codes.Internal, codes.Unknown, codes.DataLoss:
		return zapcore.ErrorLevel
	case codes.PermissionDenied, codes.Unauthenticated:
		return zapcore.WarnLevel
	}
	return zapcore.InfoLevel
}

// RecoverUnary turns a handler panic into codes.Internal.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panic",
					zap.String("method", info.FullMethod),
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal")
			}
		}()
		return next(ctx, req)
	}
}

// AuthUnary resolves the bearer token into a user id. Calls without a token
// proceed anonymously; a token that fails verification is rejected.
func AuthUnary(key []byte) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		tok, err := bearerTokenFromMD(ctx)
		if errors.Is(err, errNoToken) {
			return next(ctx, req)
		}
		sub, err := subjectFromToken(tok, key)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(WithUserID(ctx, sub), req)
	}
}
