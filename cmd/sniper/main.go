// Package main runs the mempool replacement sniper.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/bitcoin"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/feed"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/repository/clickhouse"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/repository/duckdb"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/service/capture"
	"github.com/goodnatureofminers/rbf-sniper/internal/metrics"
	"github.com/goodnatureofminers/rbf-sniper/internal/transport"
)

type config struct {
	Network        model.Network `long:"network" env:"SNIPER_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"SNIPER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"SNIPER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"SNIPER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	ZMQAddr        string        `long:"zmq-addr" env:"SNIPER_ZMQ_ADDR" description:"node ZMQ publisher address" default:"tcp://127.0.0.1:28332"`
	ZMQTopic       string        `long:"zmq-topic" env:"SNIPER_ZMQ_TOPIC" description:"ZMQ topic carrying raw transactions" default:"rawtx"`
	LedgerPath     string        `long:"ledger-path" env:"SNIPER_LEDGER_PATH" description:"DuckDB audit ledger file" default:"ledger.duckdb"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"SNIPER_CLICKHOUSE_DSN" description:"ClickHouse DSN for observations, empty disables them"`
	HTTPAddr       string        `long:"http-addr" env:"SNIPER_HTTP_ADDR" description:"address serving /ping and /metrics" default:":7843"`
	GRPCAddr       string        `long:"grpc-addr" env:"SNIPER_GRPC_ADDR" description:"address serving gRPC health, empty disables it"`
	PrevoutWorkers int           `long:"prevout-workers" env:"SNIPER_PREVOUT_WORKERS" description:"concurrent prevout lookups per transaction" default:"4"`
	LogProduction  bool          `long:"log-production" env:"SNIPER_LOG_PRODUCTION" description:"use JSON production logging"`
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger(cfg.LogProduction)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("sniper failed", zap.Error(err))
	}
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return err
	}

	var health healthpb.HealthClient
	if cfg.GRPCAddr != "" {
		if err := startGRPCServer(ctx, cfg.GRPCAddr, logger); err != nil {
			return err
		}
		conn, err := grpc.NewClient(cfg.GRPCAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("dial grpc health %s: %w", cfg.GRPCAddr, err)
		}
		defer func() {
			_ = conn.Close()
		}()
		health = healthpb.NewHealthClient(conn)
	}
	startHTTPServer(ctx, cfg.HTTPAddr, health, logger)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword, params.Name)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	gateway := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(model.BTC, cfg.Network))

	balance, err := gateway.GetBalance()
	if err != nil {
		return fmt.Errorf("node unreachable: %w", err)
	}
	logger.Info("wallet balance", zap.String("network", params.Name), zap.Stringer("balance", balance))

	ledger, err := duckdb.Open(ctx, cfg.LedgerPath, metrics.NewLedgerRepository())
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Error("close ledger", zap.Error(err))
		}
	}()

	captureMetrics := metrics.NewCapture(model.BTC, cfg.Network)

	var sink capture.ObservationSink
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("ping clickhouse: %w", err)
		}

		writer := capture.NewObservationWriter(repo, capture.DefaultObservationWriterConfig(), captureMetrics, logger)
		writer.Start(ctx)
		defer writer.Stop()
		sink = writer
	}

	sub, err := feed.Dial(cfg.ZMQAddr, cfg.ZMQTopic)
	if err != nil {
		return fmt.Errorf("subscribe feed: %w", err)
	}
	defer func() {
		_ = sub.Close()
	}()
	listener := feed.NewListener(sub, cfg.ZMQTopic, logger, metrics.NewFeed(model.BTC, cfg.Network))

	svc, err := capture.NewService(
		capture.Config{Coin: model.BTC, Network: cfg.Network},
		gateway,
		bitcoin.NewPrevoutResolver(gateway, cfg.PrevoutWorkers),
		ledger,
		sink,
		captureMetrics,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx, listener)
}

func startHTTPServer(ctx context.Context, addr string, health healthpb.HealthClient, logger *zap.Logger) {
	srv := transport.NewHTTPServer(addr, transport.NewHTTPHandler(health))

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()
}

func startGRPCServer(ctx context.Context, addr string, logger *zap.Logger) error {
	server, health := transport.NewGRPCServer(logger)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", addr, err)
	}
	go func() {
		logger.Info("starting grpc server", zap.String("addr", addr))
		if err := server.Serve(socket); err != nil {
			logger.Error("grpc server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down grpc server")
		health.Shutdown()
		server.GracefulStop()
	}()
	return nil
}

func newRPCClient(rawURL, user, password, network string) (*rpcclient.Client, error) {
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
		Host:         parsed.Host + parsed.Path,
		User:         user,
		Pass:         password,
		Params:       network,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}
