package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/country"
	"github.com/qiwen-ops/passportd/internal/extract"
	"github.com/qiwen-ops/passportd/internal/ocr"
	"github.com/qiwen-ops/passportd/internal/pipeline"
	"github.com/qiwen-ops/passportd/internal/repository"
	"github.com/qiwen-ops/passportd/internal/retry"
	"github.com/qiwen-ops/passportd/internal/server"
	"github.com/qiwen-ops/passportd/internal/status"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config.invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Error("upload_dir.create_failed", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		WriteMaxConns:    cfg.Database.WriteMaxConns,
		WriteConnTimeout: cfg.Database.WriteConnTimeout,
		ReadMaxConns:     cfg.Database.ReadMaxConns,
		ReadConnTimeout:  cfg.Database.ReadConnTimeout,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		TimeZone:         cfg.Database.TimeZone,
	}, logger)
	if err != nil {
		logger.Error("db.open_failed", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 3*time.Second); err != nil {
		logger.Error("db.health_failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db.health_ok")

	records := repository.NewRecordRepository(db, logger)

	uploads := async.NewQueue[struct{}](cfg.Pipeline.UploadQueueSize)
	tasks := async.NewQueue[pipeline.ProcessingTask](cfg.Pipeline.OCRQueueSize)
	writes := async.NewBuffer[pipeline.WriteTask]()
	files := async.NewIOPool(cfg.Pipeline.IOWorkers, logger)
	tracker := status.NewTracker(status.Entry{
		Status:  string(constants.StatusPending),
		Message: constants.StatusMessagePending,
	})

	var countries country.Resolver = country.DefaultResolver()
	if path := os.Getenv("COUNTRY_CSV_PATH"); path != "" {
		countries = country.Chain{country.NewCSVResolver(path), country.DefaultResolver()}
	}
	extractor := extract.NewExtractor(countries)

	ocrClient := ocr.NewClient(cfg.OCR.URL, cfg.OCR.RequestTimeout, retry.Policy{
		MaxAttempts: cfg.OCR.MaxAttempts,
		BackoffBase: cfg.OCR.BackoffBase,
		BackoffCap:  cfg.OCR.BackoffCap,
	}, files, logger)

	admission := pipeline.NewAdmission(uploads, tasks, files, records, tracker, cfg.Upload.Dir, logger)
	dispatcher := pipeline.NewDispatcher(tasks, writes, records, ocrClient, ocr.Texts, extractor, tracker, cfg.Upload.Dir, logger)
	writer := pipeline.NewWriter(writes, records, tracker, cfg.Pipeline.WriterPoll, logger)
	monitor := pipeline.NewMonitor(db, uploads, tasks, writes, files, cfg.Pipeline.MonitorInterval, logger)

	var workers sync.WaitGroup
	workers.Add(3)
	go func() { defer workers.Done(); dispatcher.Run(ctx) }()
	go func() { defer workers.Done(); writer.Run(ctx) }()
	go func() { defer workers.Done(); monitor.Run(ctx) }()

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(admission, tracker, uploads, tasks, ocrClient, cfg.Upload.Dir, cfg.Upload.MaxFileSize, logger)
	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http.serve_failed", "error", err)
			stop()
		}
	}()
	logger.Info("http.serving", "addr", cfg.Server.Addr)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http.shutdown_failed", "error", err)
	}
	workers.Wait()
	files.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
