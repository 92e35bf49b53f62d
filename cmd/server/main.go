// Command wiki-server starts the wiki gRPC server, the admin endpoint and
// the project sync consumer.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/projeli/wiki-service/gen/go/wiki/v1"
	"github.com/projeli/wiki-service/internal/bus/kafka"
	"github.com/projeli/wiki-service/internal/config"
	"github.com/projeli/wiki-service/internal/event"
	"github.com/projeli/wiki-service/internal/limiter"
	"github.com/projeli/wiki-service/internal/metrics"
	"github.com/projeli/wiki-service/internal/migrate"
	"github.com/projeli/wiki-service/internal/repository/postgres"
	"github.com/projeli/wiki-service/internal/server/admin"
	grpcserver "github.com/projeli/wiki-service/internal/server/grpc"
	"github.com/projeli/wiki-service/internal/service"
	projectsync "github.com/projeli/wiki-service/internal/sync"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, _ := zap.NewProduction()
	if cfg.Log.Development {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("grpc", cfg.GRPC.Addr),
		zap.String("admin", cfg.Admin.Addr),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if err := migrate.Up(ctx, cfg.Postgres.DSN, logger); err != nil {
		return err
	}

	db, err := postgres.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	codec := event.NewCodec(event.Default(), cfg.Events.CompressThreshold)
	deps := service.Deps{
		Wikis:      postgres.NewWikiRepo(db),
		Members:    postgres.NewMemberRepo(db),
		Categories: postgres.NewCategoryRepo(db),
		Pages:      postgres.NewPageRepo(db),
		Events:     postgres.NewEventRepo(db, codec, logger.Named("eventlog")),
		Metrics:    m,
		Log:        logger.Named("service"),
	}

	checks := []admin.Check{{Name: "postgres", Fn: db.Ping}}
	backoff := projectsync.Backoff{Attempts: cfg.Sync.Attempts, BaseDelay: cfg.Sync.BaseDelay, MaxDelay: cfg.Sync.MaxDelay}

	var (
		kcl      *kafkaClient
		throttle limiter.Throttle = limiter.NewPGWithQuerier(db.Pool, cfg.Resync.Window)
	)
	if cfg.Redis.URL != "" {
		rc, err := limiter.Dial(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer func() { _ = rc.Close() }()
		throttle = limiter.NewRedis(rc, "wiki:", cfg.Resync.Window)
		checks = append(checks, admin.Check{Name: "redis", Fn: func(ctx context.Context) error { return rc.Ping(ctx).Err() }})
	}
	if len(cfg.Kafka.Brokers) > 0 {
		kcl, err = newKafkaClient(cfg.Kafka)
		if err != nil {
			return err
		}
		defer kcl.Close()
		deps.Notifier = kcl.pub
		checks = append(checks, admin.Check{Name: "kafka", Fn: kcl.Ping})
	}

	svc := service.New(deps)

	var resync grpcserver.WikiEnsurer
	if kcl != nil {
		resync = projectsync.NewResyncer(svc.Wikis, kcl.pub, throttle, backoff, logger.Named("resync"))
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.AuthUnary([]byte(cfg.Auth.JWTKey)),
			grpcserver.LoggingUnary(logger, m),
		),
	}
	if cfg.GRPC.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.GRPC.TLSCert, cfg.GRPC.TLSKey)
		if err != nil {
			return fmt.Errorf("load TLS cert/key: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	pb.RegisterWikiServiceServer(s, grpcserver.New(svc, resync, codec.Registry(), logger.Named("grpc")))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	if cfg.GRPC.Reflection {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	adminSrv := &http.Server{
		Addr:              cfg.Admin.Addr,
		Handler:           admin.NewRouter(reg, checks, logger.Named("admin")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPC.Addr), zap.Bool("tls", cfg.GRPC.TLSCert != ""))
		return s.Serve(lis)
	})
	g.Go(func() error {
		if err := adminSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if kcl != nil {
		rec := projectsync.NewReconciler(svc, logger.Named("sync"))
		worker := projectsync.NewWorker(rec, backoff, m, logger.Named("sync"))
		consumer := kafka.NewConsumer(kcl.Client, worker.Handle, logger.Named("kafka"))
		g.Go(func() error { return consumer.Run(gctx) })
	}
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		shutdown(s, adminSrv, logger)
		return nil
	})

	return g.Wait()
}

// shutdown stops the servers, forcing the gRPC server after five seconds.
func shutdown(s *grpc.Server, adminSrv *http.Server, logger *zap.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn("forcing grpc stop")
		s.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := adminSrv.Shutdown(ctx); err != nil {
		logger.Warn("admin shutdown", zap.Error(err))
	}
}
