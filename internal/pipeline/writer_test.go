package pipeline

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/async"
	"github.com/qiwen-ops/passportd/internal/extract"
	"github.com/qiwen-ops/passportd/internal/status"
)

func newTestWriter(store *fakeRecordStore) (*Writer, *async.Buffer[WriteTask], *status.Tracker) {
	writes := async.NewBuffer[WriteTask]()
	tracker := newTestTracker()
	w := NewWriter(writes, store, tracker, 10*time.Millisecond, slog.Default())
	return w, writes, tracker
}

func TestDrainAppliesQueuedResults(t *testing.T) {
	store := newFakeRecordStore()
	rec, err := store.CreatePending(context.Background(), "task", "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}

	w, writes, tracker := newTestWriter(store)
	writes.Enqueue(WriteTask{
		RecordID: rec.ID,
		Status:   constants.StatusCompleted,
		Fields: extract.Fields{
			DocTypeCN:  constants.DocTypePassport,
			PassportNo: "E12345678",
			Name1:      "DOE",
			BirthDate:  "1990-01-01",
			ExpiryDate: "2025-01-01",
		},
		Remarks: constants.RemarkSuccess,
	})

	w.Drain(context.Background())

	got := store.get(rec.ID)
	if got.Status != string(constants.StatusCompleted) {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if got.PassportNo != "E12345678" || got.Name1 != "DOE" {
		t.Errorf("record = %+v", got)
	}
	if got.BirthDate == nil || got.BirthDate.Format("2006-01-02") != "1990-01-01" {
		t.Errorf("BirthDate = %v", got.BirthDate)
	}
	if got.ExpiryDate == nil || got.ExpiryDate.Format("2006-01-02") != "2025-01-01" {
		t.Errorf("ExpiryDate = %v", got.ExpiryDate)
	}
	if e := tracker.Get(rec.ID); e.Status != string(constants.StatusCompleted) || e.Message != constants.RemarkSuccess {
		t.Errorf("tracker = %+v", e)
	}
	if writes.Len() != 0 {
		t.Errorf("backlog = %d after drain, want 0", writes.Len())
	}
}

func TestDrainNullsUnparsableDates(t *testing.T) {
	store := newFakeRecordStore()
	rec, err := store.CreatePending(context.Background(), "task", "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}

	w, writes, _ := newTestWriter(store)
	writes.Enqueue(WriteTask{
		RecordID: rec.ID,
		Status:   constants.StatusCompleted,
		Fields: extract.Fields{
			BirthDate:  "1990-13-45",
			ExpiryDate: "not a date",
		},
	})
	w.Drain(context.Background())

	got := store.get(rec.ID)
	if got.BirthDate != nil || got.ExpiryDate != nil {
		t.Errorf("dates = (%v, %v), want both nil", got.BirthDate, got.ExpiryDate)
	}
	if got.Status != string(constants.StatusCompleted) {
		t.Errorf("Status = %q, want completed", got.Status)
	}
}

func TestDrainDropsFailedWrites(t *testing.T) {
	store := newFakeRecordStore()
	rec, err := store.CreatePending(context.Background(), "task", "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}
	store.failApply = true

	w, writes, tracker := newTestWriter(store)
	writes.Enqueue(WriteTask{RecordID: rec.ID, Status: constants.StatusCompleted})
	w.Drain(context.Background())

	if writes.Len() != 0 {
		t.Errorf("backlog = %d, want 0 (task dropped)", writes.Len())
	}
	if store.applies != 1 {
		t.Errorf("applies = %d, want 1", store.applies)
	}
	// The record keeps its prior state and the tracker is not advanced.
	if got := store.get(rec.ID); got.Status != string(constants.StatusPending) {
		t.Errorf("Status = %q, want pending", got.Status)
	}
	if e := tracker.Get(rec.ID); e.Status != string(constants.StatusPending) {
		t.Errorf("tracker = %+v, want pending default", e)
	}
}

func TestRunDrainsRemainderOnShutdown(t *testing.T) {
	store := newFakeRecordStore()
	rec, err := store.CreatePending(context.Background(), "task", "photo.jpg")
	if err != nil {
		t.Fatal(err)
	}

	w, writes, _ := newTestWriter(store)
	writes.Enqueue(WriteTask{RecordID: rec.ID, Status: constants.StatusCompleted, Remarks: constants.RemarkSuccess})

	// The run context is already dead; the final drain must still be
	// able to persist (the fake store rejects canceled contexts).
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	<-done

	if store.applies != 1 {
		t.Fatalf("applies = %d, want 1", store.applies)
	}
	if got := store.get(rec.ID); got.Status != string(constants.StatusCompleted) {
		t.Errorf("Status = %q, want completed after shutdown drain", got.Status)
	}
	if writes.Len() != 0 {
		t.Errorf("backlog = %d after shutdown drain, want 0", writes.Len())
	}
}
