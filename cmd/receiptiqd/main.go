// receiptiqd is the gRPC daemon: project and schema management, receipt
// uploads, extraction and export over one port.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	receiptiqpb "github.com/receiptiq/receiptiq/gen/proto/receiptiq/v1"
	"github.com/receiptiq/receiptiq/internal/common"
	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/export"
	"github.com/receiptiq/receiptiq/internal/flatten"
	"github.com/receiptiq/receiptiq/internal/llm/openai"
	"github.com/receiptiq/receiptiq/internal/pipeline"
	"github.com/receiptiq/receiptiq/internal/repository"
	"github.com/receiptiq/receiptiq/internal/server"
	"github.com/receiptiq/receiptiq/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, _, cleanup, err := common.InitDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	store, err := newObjectStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("object store init failed", "error", err)
		os.Exit(1)
	}

	projects := repository.NewProjectRepository(client, logger)
	fields := repository.NewFieldRepository(client, logger)
	receipts := repository.NewReceiptRepository(client, logger)
	values := repository.NewDataValueRepository(client, logger)

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		Mode:        cfg.LLM.Mode,
	}, logger)

	text := doctext.NewExtractor(doctext.Config{
		Pdftotext:   cfg.DocText.Pdftotext,
		Pdftoppm:    cfg.DocText.Pdftoppm,
		Tesseract:   cfg.DocText.Tesseract,
		Magick:      cfg.DocText.Magick,
		TessdataDir: cfg.DocText.TessdataDir,
		DPI:         cfg.DocText.DPI,
		MaxPages:    cfg.DocText.MaxPages,
	}, logger)

	flattener := flatten.New(values, logger)
	processor := pipeline.NewProcessor(receipts, fields, store, text, extractor, flattener, logger)
	exporter := export.NewService(receipts, values, fields, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	receiptiqpb.RegisterProjectServiceServer(grpcServer,
		server.NewProjectServer(projects, receipts, fields, values, processor, exporter, logger))
	receiptiqpb.RegisterFieldServiceServer(grpcServer,
		server.NewFieldServer(fields, logger))
	receiptiqpb.RegisterReceiptServiceServer(grpcServer,
		server.NewReceiptServer(receipts, projects, fields, values, store, processor, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr, "mode", cfg.LLM.Mode)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

// newObjectStore picks S3 when a bucket is configured, else the local
// filesystem store.
func newObjectStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (storage.ObjectStore, error) {
	if cfg.Storage.Bucket != "" {
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			Endpoint:  cfg.Storage.Endpoint,
			KeyPrefix: cfg.Storage.KeyPrefix,
			URLTTL:    cfg.Storage.URLTTL,
		}, logger)
	}
	return storage.NewFSStore(cfg.Storage.LocalDir, logger)
}
