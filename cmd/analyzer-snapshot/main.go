package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerscope-backend/internal/analysis"
	"github.com/goodnatureofminers/minerscope-backend/internal/metrics"
	"github.com/goodnatureofminers/minerscope-backend/internal/repository"
	"github.com/goodnatureofminers/minerscope-backend/internal/service"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"SNAPSHOT_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       string        `long:"network" env:"SNAPSHOT_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"SNAPSHOT_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"SNAPSHOT_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"SNAPSHOT_RPC_PASSWORD" description:"Bitcoin RPC password"`
	WindowSize    int           `long:"window-size" env:"SNAPSHOT_WINDOW_SIZE" description:"blocks per snapshot window" default:"144"`
	Interval      time.Duration `long:"interval" env:"SNAPSHOT_INTERVAL" description:"time between snapshots" default:"1m"`
	FetchWorkers  int           `long:"fetch-workers" env:"SNAPSHOT_FETCH_WORKERS" description:"concurrent block fetches" default:"4"`
	MetricsAddr   string        `long:"metrics-addr" env:"SNAPSHOT_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("snapshot service failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := repository.NewSnapshotRepository(cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init snapshot repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	node := repository.NewNodeRepository(rpc, metrics.NewRPCClient(cfg.Network))
	analyzer := analysis.NewAnalyzer(node, cfg.FetchWorkers)

	snapshotCfg := service.DefaultSnapshotConfig(cfg.Network)
	snapshotCfg.WindowSize = cfg.WindowSize
	snapshotCfg.Interval = cfg.Interval

	svc, err := service.NewSnapshotService(
		analyzer,
		repo,
		metrics.NewSnapshotter(cfg.Network),
		snapshotCfg,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
