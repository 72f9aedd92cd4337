package repository

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/common"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Config{DSN: "file:ent?mode=memory&_pragma=foreign_keys(1)"}, slog.Default())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close(slog.Default()) })
	return db
}

func TestCreatePendingAndGet(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())
	ctx := context.Background()

	rec, err := repo.CreatePending(ctx, "task-1", "/uploads/photo_1.jpg")
	if err != nil {
		t.Fatalf("CreatePending: %v", err)
	}
	if rec.Status != string(constants.StatusPending) {
		t.Errorf("Status = %q, want pending", rec.Status)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TaskID != "task-1" || got.ImagePath != "/uploads/photo_1.jpg" {
		t.Errorf("Get = %+v", got)
	}
}

func TestGetMissingRecord(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())

	_, err := repo.Get(context.Background(), 99999)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
	if err := repo.MarkProcessing(context.Background(), 99999); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("MarkProcessing error = %v, want ErrNotFound", err)
	}
}

func TestMarkFailedTruncatesRemark(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())
	ctx := context.Background()

	rec, err := repo.CreatePending(ctx, "task-2", "/uploads/photo_2.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkFailed(ctx, rec.ID, strings.Repeat("识", 300)); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != string(constants.StatusFailed) {
		t.Errorf("Status = %q, want failed", got.Status)
	}
	if n := len([]rune(got.Remarks)); n != constants.MaxRemarkLen {
		t.Errorf("remark length = %d runes, want %d", n, constants.MaxRemarkLen)
	}
}

func TestApplyResultIsIdempotent(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())
	ctx := context.Background()

	rec, err := repo.CreatePending(ctx, "task-3", "/uploads/photo_3.jpg")
	if err != nil {
		t.Fatal(err)
	}

	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	res := RecordResult{
		RecordID:      rec.ID,
		Status:        constants.StatusCompleted,
		DocTypeCN:     "护照",
		PassportNo:    "E12345678",
		Name1:         "DOE",
		Name2:         "JOHN",
		Gender:        "男",
		BirthDate:     &birth,
		CountryNameCN: "中国",
		PassportType:  "普通护照",
		Remarks:       constants.RemarkSuccess,
	}
	if err := repo.ApplyResult(ctx, res); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	first, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.ApplyResult(ctx, res); err != nil {
		t.Fatalf("ApplyResult (second): %v", err)
	}
	second, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if second.Status != first.Status || second.PassportNo != first.PassportNo ||
		second.Name1 != first.Name1 || second.Remarks != first.Remarks {
		t.Errorf("second apply changed row: %+v vs %+v", second, first)
	}
	if second.BirthDate == nil || !second.BirthDate.Equal(*first.BirthDate) {
		t.Errorf("birth date changed: %v vs %v", second.BirthDate, first.BirthDate)
	}
	if second.ExpiryDate != nil {
		t.Errorf("ExpiryDate = %v, want nil", second.ExpiryDate)
	}
}

func TestApplyResultClearsDates(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())
	ctx := context.Background()

	rec, err := repo.CreatePending(ctx, "task-4", "/uploads/photo_4.jpg")
	if err != nil {
		t.Fatal(err)
	}
	birth := time.Date(1985, 3, 5, 0, 0, 0, 0, time.UTC)
	if err := repo.ApplyResult(ctx, RecordResult{RecordID: rec.ID, Status: constants.StatusCompleted, BirthDate: &birth}); err != nil {
		t.Fatal(err)
	}
	if err := repo.ApplyResult(ctx, RecordResult{RecordID: rec.ID, Status: constants.StatusCompleted}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BirthDate != nil {
		t.Errorf("BirthDate = %v, want cleared", got.BirthDate)
	}
}

func TestListWindow(t *testing.T) {
	repo := NewRecordRepository(openTestDB(t), slog.Default())
	ctx := context.Background()

	for _, task := range []string{"w-1", "w-2", "w-3"} {
		if _, err := repo.CreatePending(ctx, task, "/uploads/"+task+".jpg"); err != nil {
			t.Fatal(err)
		}
	}

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	recs, err := repo.ListWindow(ctx, &from, &to)
	if err != nil {
		t.Fatalf("ListWindow: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("ListWindow returned %d records, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].CreatedAt.Before(recs[i-1].CreatedAt) {
			t.Errorf("records out of order at %d", i)
		}
	}

	past := time.Now().Add(-2 * time.Hour)
	if recs, err = repo.ListWindow(ctx, nil, &past); err != nil || len(recs) != 0 {
		t.Errorf("ListWindow(past) = %d records, err %v; want 0, nil", len(recs), err)
	}
}
