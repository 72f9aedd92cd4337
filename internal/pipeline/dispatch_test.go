package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/country"
	"github.com/qiwen-ops/passportd/internal/extract"
	"github.com/qiwen-ops/passportd/internal/ocr"
	"github.com/qiwen-ops/passportd/internal/status"
)

func newTestDispatcher(store *fakeRecordStore, rec Recognizer, dir string) (*Dispatcher, *async.Buffer[WriteTask], *status.Tracker) {
	writes := async.NewBuffer[WriteTask]()
	tracker := newTestTracker()
	d := NewDispatcher(
		async.NewQueue[ProcessingTask](50),
		writes,
		store,
		rec,
		ocr.Texts,
		extract.NewExtractor(country.StaticResolver{"CHN": "中国"}),
		tracker,
		dir,
		slog.Default(),
	)
	return d, writes, tracker
}

func seedRecord(t *testing.T, store *fakeRecordStore, dir string) int64 {
	t.Helper()
	rec, err := store.CreatePending(context.Background(), "task", "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}
	return rec.ID
}

func TestProcessSuccessEnqueuesWrite(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	id := seedRecord(t, store, dir)

	recognizer := &fakeRecognizer{raw: []byte(`{"rec_texts":["P<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<","E12345678<CHN9001014M2501014<<<<<<<<<<<<<<06"],"rec_scores":[0.9,0.9]}`)}
	d, writes, tracker := newTestDispatcher(store, recognizer, dir)

	d.process(context.Background(), ProcessingTask{RecordID: id, ImagePath: "photo.jpg"})

	task, ok := writes.TryDequeue()
	if !ok {
		t.Fatal("no write task enqueued")
	}
	if task.Status != constants.StatusCompleted {
		t.Errorf("Status = %q, want completed", task.Status)
	}
	if task.Fields.PassportNo != "E12345678" || task.Fields.Name1 != "DOE" {
		t.Errorf("Fields = %+v", task.Fields)
	}
	if task.Remarks != constants.RemarkSuccess {
		t.Errorf("Remarks = %q", task.Remarks)
	}
	// The row was marked processing; the writer owns the terminal update.
	if rec := store.get(id); rec.Status != string(constants.StatusProcessing) {
		t.Errorf("record status = %q, want processing", rec.Status)
	}
	if e := tracker.Get(id); e.Status != string(constants.StatusProcessing) {
		t.Errorf("tracker = %+v, want processing", e)
	}
}

func TestProcessOCRFailureMarksFailed(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	id := seedRecord(t, store, dir)

	d, writes, tracker := newTestDispatcher(store, &fakeRecognizer{err: errOCRDown}, dir)
	d.process(context.Background(), ProcessingTask{RecordID: id, ImagePath: "photo.jpg"})

	if _, ok := writes.TryDequeue(); ok {
		t.Fatal("write task enqueued for a failed recognition")
	}
	rec := store.get(id)
	if rec.Status != string(constants.StatusFailed) {
		t.Errorf("record status = %q, want failed", rec.Status)
	}
	if rec.Remarks == "" {
		t.Error("remark empty, want error text")
	}
	if e := tracker.Get(id); e.Status != string(constants.StatusFailed) {
		t.Errorf("tracker = %+v, want failed", e)
	}
}

func TestProcessMissingRecordIsSilentlyDropped(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	recognizer := &fakeRecognizer{raw: []byte(`{}`)}
	d, writes, _ := newTestDispatcher(store, recognizer, dir)

	d.process(context.Background(), ProcessingTask{RecordID: 404, ImagePath: "ghost.jpg"})

	if recognizer.calls != 0 {
		t.Errorf("recognizer called %d times, want 0", recognizer.calls)
	}
	if _, ok := writes.TryDequeue(); ok {
		t.Fatal("write task enqueued for a missing record")
	}
}

func TestProcessMissingFileMarksFailed(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	rec, err := store.CreatePending(context.Background(), "task", "gone.jpg")
	if err != nil {
		t.Fatal(err)
	}

	recognizer := &fakeRecognizer{raw: []byte(`{}`)}
	d, _, _ := newTestDispatcher(store, recognizer, dir)
	d.process(context.Background(), ProcessingTask{RecordID: rec.ID, ImagePath: "gone.jpg"})

	if recognizer.calls != 0 {
		t.Errorf("recognizer called %d times, want 0", recognizer.calls)
	}
	if got := store.get(rec.ID); got.Status != string(constants.StatusFailed) {
		t.Errorf("record status = %q, want failed", got.Status)
	}
}

func TestProcessUnknownShapeStillCompletes(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	id := seedRecord(t, store, dir)

	d, writes, _ := newTestDispatcher(store, &fakeRecognizer{raw: []byte(`{"unexpected":"layout"}`)}, dir)
	d.process(context.Background(), ProcessingTask{RecordID: id, ImagePath: "photo.jpg"})

	task, ok := writes.TryDequeue()
	if !ok {
		t.Fatal("no write task enqueued")
	}
	if task.Status != constants.StatusCompleted {
		t.Errorf("Status = %q, want completed", task.Status)
	}
	if !task.Fields.Empty() {
		t.Errorf("Fields = %+v, want all empty", task.Fields)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	dir := t.TempDir()
	store := newFakeRecordStore()
	d, _, _ := newTestDispatcher(store, &fakeRecognizer{raw: []byte(`{}`)}, dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Run(ctx)
	}()
	cancel()
	<-done
}
