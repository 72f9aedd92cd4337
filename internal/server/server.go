// Package server is the HTTP surface: upload intake, status polling,
// health probes, and static serving of stored images.
package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/pipeline"
	"github.com/qiwen-ops/passportd/internal/status"
)

// HealthProber reports whether the OCR service answers its health
// endpoint.
type HealthProber interface {
	Healthy(ctx context.Context) bool
}

type Server struct {
	admission   *pipeline.Admission
	tracker     *status.Tracker
	uploads     *async.Queue[struct{}]
	tasks       *async.Queue[pipeline.ProcessingTask]
	ocr         HealthProber
	uploadDir   string
	maxFileSize int64
	logger      *slog.Logger
}

func New(
	admission *pipeline.Admission,
	tracker *status.Tracker,
	uploads *async.Queue[struct{}],
	tasks *async.Queue[pipeline.ProcessingTask],
	ocr HealthProber,
	uploadDir string,
	maxFileSize int64,
	logger *slog.Logger,
) *Server {
	return &Server{
		admission:   admission,
		tracker:     tracker,
		uploads:     uploads,
		tasks:       tasks,
		ocr:         ocr,
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.POST("/api/ocr/upload-photo", s.uploadPhoto)
	r.GET("/api/ocr/status/check", s.checkService)
	r.GET("/api/ocr/status/:record_id", s.recordStatus)
	r.GET("/health", s.health)
	r.Static("/uploads", s.uploadDir)

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.New().String()
		c.Request = c.Request.WithContext(common.WithRequestID(c.Request.Context(), reqID))
		c.Next()
		logger.Info("http.request",
			"req_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
