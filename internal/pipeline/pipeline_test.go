package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/entity"
	"github.com/qiwen-ops/passportd/internal/repository"
)

// fakeRecordStore is an in-memory repository.RecordRepository for worker
// tests.
type fakeRecordStore struct {
	mu   sync.Mutex
	seq  int64
	recs map[int64]*entity.PassportRecord

	failCreate bool
	failApply  bool
	applies    int
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{recs: make(map[int64]*entity.PassportRecord)}
}

func (s *fakeRecordStore) CreatePending(ctx context.Context, taskID, imagePath string) (*entity.PassportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreate {
		return nil, common.ErrDatabase
	}
	s.seq++
	rec := &entity.PassportRecord{
		ID:        s.seq,
		TaskID:    taskID,
		Status:    string(constants.StatusPending),
		ImagePath: imagePath,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.recs[rec.ID] = rec
	return rec, nil
}

func (s *fakeRecordStore) Get(ctx context.Context, id int64) (*entity.PassportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeRecordStore) MarkProcessing(ctx context.Context, id int64) error {
	return s.setStatus(id, constants.StatusProcessing, "")
}

func (s *fakeRecordStore) MarkFailed(ctx context.Context, id int64, remark string) error {
	return s.setStatus(id, constants.StatusFailed, remark)
}

func (s *fakeRecordStore) setStatus(id int64, st constants.RecordStatus, remark string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return common.ErrNotFound
	}
	rec.Status = string(st)
	if remark != "" {
		rec.Remarks = remark
	}
	return nil
}

func (s *fakeRecordStore) ApplyResult(ctx context.Context, res repository.RecordResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applies++
	if s.failApply {
		return common.ErrDatabase
	}
	rec, ok := s.recs[res.RecordID]
	if !ok {
		return common.ErrNotFound
	}
	rec.Status = string(res.Status)
	rec.DocTypeCN = res.DocTypeCN
	rec.PassportNo = res.PassportNo
	rec.Name1 = res.Name1
	rec.Name2 = res.Name2
	rec.Gender = res.Gender
	rec.BirthDate = res.BirthDate
	rec.ExpiryDate = res.ExpiryDate
	rec.CountryNameCN = res.CountryNameCN
	rec.VisaNo = res.VisaNo
	rec.VisaDate = res.VisaDate
	rec.PassportType = res.PassportType
	rec.Remarks = res.Remarks
	rec.UpdatedAt = time.Now()
	return nil
}

func (s *fakeRecordStore) ListWindow(ctx context.Context, from, to *time.Time) ([]*entity.PassportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.PassportRecord, 0, len(s.recs))
	for _, rec := range s.recs {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeRecordStore) get(id int64) *entity.PassportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.recs[id]; ok {
		cp := *rec
		return &cp
	}
	return nil
}

// fakeRecognizer returns canned bytes or an error.
type fakeRecognizer struct {
	raw   []byte
	err   error
	calls int
}

func (r *fakeRecognizer) Recognize(ctx context.Context, imagePath string) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.raw, nil
}

var errOCRDown = errors.New("OCR服务连接失败")
