package pipeline

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/repository"
	"github.com/qiwen-ops/passportd/internal/status"
)

// Admission gates new uploads into the pipeline. It holds an upload
// slot for the duration of each request, persists the image and a
// pending record, and enqueues the processing task. Every side effect
// before a failure is rolled back so a rejected upload leaves nothing
// behind.
type Admission struct {
	uploads *async.Queue[struct{}]
	tasks   *async.Queue[ProcessingTask]
	io      *async.IOPool
	records repository.RecordRepository
	tracker *status.Tracker
	dir     string
	logger  *slog.Logger
}

// Accepted describes a successfully admitted upload.
type Accepted struct {
	RecordID      int64  `json:"record_id"`
	TaskID        string `json:"task_id"`
	Filename      string `json:"filename"`
	ImageURL      string `json:"image_url"`
	QueuePosition int    `json:"queue_position"`
}

func NewAdmission(
	uploads *async.Queue[struct{}],
	tasks *async.Queue[ProcessingTask],
	io *async.IOPool,
	records repository.RecordRepository,
	tracker *status.Tracker,
	dir string,
	logger *slog.Logger,
) *Admission {
	return &Admission{
		uploads: uploads,
		tasks:   tasks,
		io:      io,
		records: records,
		tracker: tracker,
		dir:     dir,
		logger:  logger,
	}
}

// Accept validates and admits one upload. Capacity errors wrap
// common.ErrQueueFull and happen before any side effect; later failures
// remove the stored file before returning.
func (a *Admission) Accept(ctx context.Context, contentType string, data []byte) (*Accepted, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %q", common.ErrNotImage, contentType)
	}

	if !a.uploads.TryEnqueue(struct{}{}) {
		return nil, fmt.Errorf("%w: upload queue at capacity (%d)", common.ErrQueueFull, a.uploads.Cap())
	}
	defer a.uploads.TryDequeue()

	if a.tasks.Len() >= a.tasks.Cap() {
		return nil, fmt.Errorf("%w: processing queue at capacity (%d)", common.ErrQueueFull, a.tasks.Cap())
	}

	filename := newFilename()
	dst := filepath.Join(a.dir, filename)
	taskID := newTaskID()

	err := a.io.Do(ctx, func() error {
		return os.WriteFile(dst, data, 0o644)
	})
	if err != nil {
		a.logger.Error("admission.save_failed", "filename", filename, "error", err)
		return nil, fmt.Errorf("save upload: %w", err)
	}

	rec, err := a.records.CreatePending(ctx, taskID, filename)
	if err != nil {
		a.removeFile(ctx, dst)
		return nil, err
	}

	a.tracker.Set(rec.ID, string(constants.StatusPending), constants.StatusMessagePending)

	if !a.tasks.TryEnqueue(ProcessingTask{RecordID: rec.ID, ImagePath: filename}) {
		// Raced to capacity after the pre-check; undo the admission.
		a.removeFile(ctx, dst)
		if ferr := a.records.MarkFailed(ctx, rec.ID, "处理队列已满"); ferr != nil {
			a.logger.Error("admission.rollback_failed", "record_id", rec.ID, "error", ferr)
		}
		a.tracker.Delete(rec.ID)
		return nil, fmt.Errorf("%w: processing queue at capacity (%d)", common.ErrQueueFull, a.tasks.Cap())
	}

	a.logger.Info("admission.accepted",
		"record_id", rec.ID,
		"task_id", taskID,
		"filename", filename,
		"queue_size", a.tasks.Len(),
	)
	return &Accepted{
		RecordID:      rec.ID,
		TaskID:        taskID,
		Filename:      filename,
		ImageURL:      "/uploads/" + filename,
		QueuePosition: a.tasks.Len(),
	}, nil
}

func (a *Admission) removeFile(ctx context.Context, path string) {
	err := a.io.Do(ctx, func() error { return os.Remove(path) })
	if err != nil {
		a.logger.Error("admission.cleanup_failed", "path", path, "error", err)
	}
}

// newFilename generates a collision-resistant stored name; clients never
// influence it.
func newFilename() string {
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("photo_%s_%s.jpg", time.Now().Format("20060102_150405"), hex.EncodeToString(suffix[:]))
}

func newTaskID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
