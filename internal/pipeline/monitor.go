package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/repository"
)

// Monitor logs queue depths and pool usage on a fixed interval so
// capacity problems show up in the logs before clients see 429s.
type Monitor struct {
	db       *repository.DB
	uploads  *async.Queue[struct{}]
	tasks    *async.Queue[ProcessingTask]
	writes   *async.Buffer[WriteTask]
	io       *async.IOPool
	interval time.Duration
	logger   *slog.Logger
}

func NewMonitor(
	db *repository.DB,
	uploads *async.Queue[struct{}],
	tasks *async.Queue[ProcessingTask],
	writes *async.Buffer[WriteTask],
	io *async.IOPool,
	interval time.Duration,
	logger *slog.Logger,
) *Monitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Monitor{
		db:       db,
		uploads:  uploads,
		tasks:    tasks,
		writes:   writes,
		io:       io,
		interval: interval,
		logger:   logger,
	}
}

// Run logs one snapshot per interval until ctx ends.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.snapshot()
		}
	}
}

func (m *Monitor) snapshot() {
	attrs := []any{
		"upload_queue", m.uploads.Len(),
		"upload_queue_cap", m.uploads.Cap(),
		"ocr_queue", m.tasks.Len(),
		"ocr_queue_cap", m.tasks.Cap(),
		"write_backlog", m.writes.Len(),
		"io_in_flight", m.io.InFlight(),
	}
	if m.db.WritePool != nil {
		ws, rs := m.db.WritePool.Stat(), m.db.ReadPool.Stat()
		attrs = append(attrs,
			"write_pool_acquired", ws.AcquiredConns(),
			"write_pool_total", ws.TotalConns(),
			"read_pool_acquired", rs.AcquiredConns(),
			"read_pool_total", rs.TotalConns(),
		)
	}
	m.logger.Info("pipeline.stats", attrs...)
}
