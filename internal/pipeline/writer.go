package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/extract"
	"github.com/qiwen-ops/passportd/internal/repository"
	"github.com/qiwen-ops/passportd/internal/status"
)

// drainTimeout bounds the final drain after the run context ends.
const drainTimeout = 5 * time.Second

// Writer is the single worker draining the write queue. Each task is a
// full-field update applied in one statement. A failed write is logged
// and dropped; persistence failure after a successful recognition is an
// accepted loss mode and the record stays in processing.
type Writer struct {
	writes  *async.Buffer[WriteTask]
	records repository.RecordRepository
	tracker *status.Tracker
	poll    time.Duration
	logger  *slog.Logger
}

func NewWriter(writes *async.Buffer[WriteTask], records repository.RecordRepository, tracker *status.Tracker, poll time.Duration, logger *slog.Logger) *Writer {
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	return &Writer{
		writes:  writes,
		records: records,
		tracker: tracker,
		poll:    poll,
		logger:  logger,
	}
}

// Run polls the write queue until ctx ends, draining whatever has
// accumulated on each tick.
func (w *Writer) Run(ctx context.Context) {
	w.logger.Info("writer.started", "poll", w.poll)
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			// ctx is dead here; the final drain needs a context the
			// database writes can still run under.
			drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			w.Drain(drainCtx)
			cancel()
			w.logger.Info("writer.stopped", "remaining", w.writes.Len())
			return
		case <-ticker.C:
			w.Drain(ctx)
		}
	}
}

// Drain applies every task currently queued.
func (w *Writer) Drain(ctx context.Context) {
	for {
		task, ok := w.writes.TryDequeue()
		if !ok {
			return
		}
		w.apply(ctx, task)
	}
}

func (w *Writer) apply(ctx context.Context, task WriteTask) {
	// Dates are re-validated here, independent of extraction; anything
	// unparsable is stored as null.
	res := repository.RecordResult{
		RecordID:      task.RecordID,
		Status:        task.Status,
		DocTypeCN:     task.Fields.DocTypeCN,
		PassportNo:    task.Fields.PassportNo,
		Name1:         task.Fields.Name1,
		Name2:         task.Fields.Name2,
		Gender:        task.Fields.Gender,
		BirthDate:     extract.ParseDate(task.Fields.BirthDate),
		ExpiryDate:    extract.ParseDate(task.Fields.ExpiryDate),
		CountryNameCN: task.Fields.CountryNameCN,
		VisaNo:        task.Fields.VisaNo,
		VisaDate:      extract.ParseDate(task.Fields.VisaDate),
		PassportType:  task.Fields.PassportType,
		Remarks:       task.Remarks,
	}
	if err := w.records.ApplyResult(ctx, res); err != nil {
		// Accepted loss: the task is dropped and the record remains in
		// its previous state.
		w.logger.Error("writer.apply_failed", "record_id", task.RecordID, "error", err)
		return
	}
	message := task.Remarks
	if task.Status == constants.StatusCompleted && message == "" {
		message = constants.RemarkSuccess
	}
	w.tracker.Set(task.RecordID, string(task.Status), message)
}
