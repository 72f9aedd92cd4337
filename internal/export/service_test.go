package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/entity"
	"github.com/qiwen-ops/passportd/internal/repository"
)

type stubRecords struct {
	recs []*entity.PassportRecord
	from *time.Time
	to   *time.Time
}

func (s *stubRecords) CreatePending(ctx context.Context, taskID, imagePath string) (*entity.PassportRecord, error) {
	return nil, nil
}

func (s *stubRecords) Get(ctx context.Context, id int64) (*entity.PassportRecord, error) {
	return nil, nil
}

func (s *stubRecords) MarkProcessing(ctx context.Context, id int64) error { return nil }

func (s *stubRecords) MarkFailed(ctx context.Context, id int64, remark string) error { return nil }

func (s *stubRecords) ApplyResult(ctx context.Context, res repository.RecordResult) error { return nil }

func (s *stubRecords) ListWindow(ctx context.Context, from, to *time.Time) ([]*entity.PassportRecord, error) {
	s.from, s.to = from, to
	return s.recs, nil
}

func TestExportXLSX(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	store := &stubRecords{recs: []*entity.PassportRecord{
		{
			ID:            1,
			Status:        string(constants.StatusCompleted),
			DocTypeCN:     constants.DocTypePassport,
			PassportNo:    "E12345678",
			Name1:         "DOE",
			Name2:         "JOHN",
			Gender:        constants.GenderMale,
			BirthDate:     &birth,
			CountryNameCN: "中国",
			Remarks:       constants.RemarkSuccess,
			CreatedAt:     time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Status:    string(constants.StatusFailed),
			Remarks:   "OCR服务连接失败",
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(store, nil)
	out, err := svc.ExportXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Records")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "编号" || rows[0][1] != "证件类型" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "E12345678" || rows[1][6] != "1990-01-01" {
		t.Errorf("record row = %v", rows[1])
	}
	if rows[2][12] != string(constants.StatusFailed) {
		t.Errorf("status cell = %v", rows[2])
	}
}

func TestExportXLSXDefaultsToWindowEnd(t *testing.T) {
	store := &stubRecords{}
	svc := NewService(store, nil)

	from := time.Date(2026, 2, 1, 13, 45, 0, 0, time.Local)
	if _, err := svc.ExportXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if store.from == nil || !store.from.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want truncated 2026-02-01", store.from)
	}
	if store.to == nil {
		t.Error("to = nil, want today")
	}
}

func TestExportXLSXEmptyWindow(t *testing.T) {
	svc := NewService(&stubRecords{}, nil)
	out, err := svc.ExportXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows("Records")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
