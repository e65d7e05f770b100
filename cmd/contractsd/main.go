package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/prasetyadi/contracts-tracker/gen/ent"
	contractspb "github.com/prasetyadi/contracts-tracker/gen/proto/contracts/v1"
	"github.com/prasetyadi/contracts-tracker/internal/async"
	"github.com/prasetyadi/contracts-tracker/internal/common"
	"github.com/prasetyadi/contracts-tracker/internal/export"
	processor "github.com/prasetyadi/contracts-tracker/internal/pipeline"
	repo "github.com/prasetyadi/contracts-tracker/internal/repository"
	svc "github.com/prasetyadi/contracts-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres when DB_URL is set, local SQLite otherwise.
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, err = repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open local database", "error", err)
			os.Exit(1)
		}
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to migrate local database", "error", err)
			os.Exit(1)
		}
	}
	defer repo.Close(entc, pool, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.UnaryRequestID(logger)),
	)

	contractsRepo := repo.NewContractRepository(entc, logger)
	filesRepo := repo.NewContractFileRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)

	parseStage := processor.NewParseStage(logger, jobsRepo, contractsRepo)
	queue := async.NewWorkerQueue(parseStage, cfg.Extraction.Workers, cfg.Extraction.QueueBuffer, logger)

	exportSvc := export.NewService(contractsRepo, logger)

	contractsService := svc.NewContractsService(contractsRepo, exportSvc, logger)
	contractspb.RegisterContractsServiceServer(grpcServer, contractsService)
	extractionService := svc.NewExtractionService(filesRepo, jobsRepo, queue, logger)
	contractspb.RegisterExtractionServiceServer(grpcServer, extractionService)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("contracts-tracker listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}
