package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/extract"
	"github.com/qiwen-ops/passportd/internal/repository"
	"github.com/qiwen-ops/passportd/internal/status"
)

// Recognizer is the OCR client surface the dispatcher needs.
type Recognizer interface {
	Recognize(ctx context.Context, imagePath string) ([]byte, error)
}

// TextDecoder turns a raw OCR response into recognized lines.
type TextDecoder func(raw []byte) []string

// Dispatcher is the single worker draining the processing queue. One
// task at a time: load the record, mark it processing, call the OCR
// service, extract fields, and hand the result to the write queue.
// Terminal failures are written directly so the record never sticks in
// processing by the dispatcher's own doing.
type Dispatcher struct {
	tasks     *async.Queue[ProcessingTask]
	writes    *async.Buffer[WriteTask]
	records   repository.RecordRepository
	ocr       Recognizer
	decode    TextDecoder
	extractor *extract.Extractor
	tracker   *status.Tracker
	dir       string
	logger    *slog.Logger
}

func NewDispatcher(
	tasks *async.Queue[ProcessingTask],
	writes *async.Buffer[WriteTask],
	records repository.RecordRepository,
	ocr Recognizer,
	decode TextDecoder,
	extractor *extract.Extractor,
	tracker *status.Tracker,
	dir string,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		tasks:     tasks,
		writes:    writes,
		records:   records,
		ocr:       ocr,
		decode:    decode,
		extractor: extractor,
		tracker:   tracker,
		dir:       dir,
		logger:    logger,
	}
}

// Run drains the processing queue until ctx ends. Tasks run to a
// terminal status; there is no per-task cancellation.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("dispatch.started")
	for {
		task, ok := d.tasks.Dequeue(ctx.Done())
		if !ok {
			d.logger.Info("dispatch.stopped")
			return
		}
		d.process(ctx, task)
	}
}

func (d *Dispatcher) process(ctx context.Context, task ProcessingTask) {
	rec, err := d.records.Get(ctx, task.RecordID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Record vanished between enqueue and dispatch; abandon
			// the task without a write.
			d.logger.Warn("dispatch.record_missing", "record_id", task.RecordID)
			return
		}
		d.logger.Error("dispatch.load_failed", "record_id", task.RecordID, "error", err)
		return
	}

	if err := d.records.MarkProcessing(ctx, rec.ID); err != nil {
		d.logger.Error("dispatch.mark_processing_failed", "record_id", rec.ID, "error", err)
		return
	}
	d.tracker.Set(rec.ID, string(constants.StatusProcessing), "正在识别")

	path := filepath.Join(d.dir, rec.ImagePath)
	if _, err := os.Stat(path); err != nil {
		d.fail(ctx, rec.ID, fmt.Sprintf("图片文件不存在: %s", path))
		return
	}

	raw, err := d.ocr.Recognize(common.WithTaskID(ctx, rec.TaskID), path)
	if err != nil {
		d.fail(ctx, rec.ID, err.Error())
		return
	}

	fields := d.extractor.Extract(d.decode(raw))
	d.writes.Enqueue(WriteTask{
		RecordID: rec.ID,
		Status:   constants.StatusCompleted,
		Fields:   fields,
		Remarks:  constants.RemarkSuccess,
	})
	d.logger.Info("dispatch.completed", "record_id", rec.ID, "write_backlog", d.writes.Len())
}

func (d *Dispatcher) fail(ctx context.Context, recordID int64, remark string) {
	if err := d.records.MarkFailed(ctx, recordID, remark); err != nil {
		d.logger.Error("dispatch.mark_failed_failed", "record_id", recordID, "error", err)
	}
	d.tracker.Set(recordID, string(constants.StatusFailed), remark)
}
