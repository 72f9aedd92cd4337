package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/status"
)

func newTestTracker() *status.Tracker {
	return status.NewTracker(status.Entry{Status: string(constants.StatusPending), Message: constants.StatusMessagePending})
}

func newTestAdmission(t *testing.T, store *fakeRecordStore, taskCap int) (*Admission, *async.Queue[ProcessingTask], string) {
	t.Helper()
	dir := t.TempDir()
	tasks := async.NewQueue[ProcessingTask](taskCap)
	a := NewAdmission(
		async.NewQueue[struct{}](30),
		tasks,
		async.NewIOPool(2, slog.Default()),
		store,
		newTestTracker(),
		dir,
		slog.Default(),
	)
	return a, tasks, dir
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return len(entries)
}

func TestAcceptStoresFileAndEnqueues(t *testing.T) {
	store := newFakeRecordStore()
	a, tasks, dir := newTestAdmission(t, store, 50)

	acc, err := a.Accept(context.Background(), "image/jpeg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if acc.RecordID == 0 || acc.TaskID == "" {
		t.Errorf("Accepted = %+v", acc)
	}
	if acc.QueuePosition != 1 {
		t.Errorf("QueuePosition = %d, want 1", acc.QueuePosition)
	}
	if got := dirEntries(t, dir); got != 1 {
		t.Errorf("stored %d files, want 1", got)
	}

	task, ok := tasks.TryDequeue()
	if !ok || task.RecordID != acc.RecordID {
		t.Errorf("queued task = (%+v, %v)", task, ok)
	}
	rec := store.get(acc.RecordID)
	if rec == nil || rec.Status != string(constants.StatusPending) {
		t.Errorf("record = %+v, want pending", rec)
	}
	if rec.ImagePath != acc.Filename {
		t.Errorf("ImagePath = %q, want %q", rec.ImagePath, acc.Filename)
	}
}

func TestAcceptRejectsNonImage(t *testing.T) {
	store := newFakeRecordStore()
	a, _, dir := newTestAdmission(t, store, 50)

	_, err := a.Accept(context.Background(), "application/pdf", []byte("%PDF"))
	if !errors.Is(err, common.ErrNotImage) {
		t.Fatalf("Accept error = %v, want ErrNotImage", err)
	}
	if got := dirEntries(t, dir); got != 0 {
		t.Errorf("stored %d files, want 0", got)
	}
}

func TestAcceptRejectsWhenProcessingQueueFull(t *testing.T) {
	store := newFakeRecordStore()
	a, tasks, dir := newTestAdmission(t, store, 3)

	for i := 0; i < 3; i++ {
		tasks.TryEnqueue(ProcessingTask{RecordID: int64(i + 100)})
	}

	_, err := a.Accept(context.Background(), "image/png", []byte("png-bytes"))
	if !errors.Is(err, common.ErrQueueFull) {
		t.Fatalf("Accept error = %v, want ErrQueueFull", err)
	}
	// A capacity rejection leaves no file and no record behind.
	if got := dirEntries(t, dir); got != 0 {
		t.Errorf("stored %d files, want 0", got)
	}
	if store.seq != 0 {
		t.Errorf("created %d records, want 0", store.seq)
	}
}

func TestAcceptRollsBackFileOnInsertFailure(t *testing.T) {
	store := newFakeRecordStore()
	store.failCreate = true
	a, _, dir := newTestAdmission(t, store, 50)

	_, err := a.Accept(context.Background(), "image/jpeg", []byte("jpeg-bytes"))
	if err == nil {
		t.Fatal("Accept succeeded, want insert failure")
	}
	if got := dirEntries(t, dir); got != 0 {
		t.Errorf("stored %d files after rollback, want 0", got)
	}
}

func TestAcceptGeneratedFilenames(t *testing.T) {
	store := newFakeRecordStore()
	a, tasks, _ := newTestAdmission(t, store, 50)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		acc, err := a.Accept(context.Background(), "image/jpeg", []byte("x"))
		if err != nil {
			t.Fatal(err)
		}
		if seen[acc.Filename] {
			t.Fatalf("duplicate filename %q", acc.Filename)
		}
		seen[acc.Filename] = true
		tasks.TryDequeue()
	}
	for name := range seen {
		if len(name) < len("photo_20060102_150405_xxxxxxxx.jpg") {
			t.Errorf("unexpected filename %q", name)
		}
	}
}
