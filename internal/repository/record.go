package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/gen/ent"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
	"github.com/qiwen-ops/passportd/internal/common"
	"github.com/qiwen-ops/passportd/internal/entity"
)

// RecordResult is the full field set applied to a record when its task
// reaches a terminal state.
type RecordResult struct {
	RecordID      int64
	Status        constants.RecordStatus
	DocTypeCN     string
	PassportNo    string
	Name1         string
	Name2         string
	Gender        string
	BirthDate     *time.Time
	ExpiryDate    *time.Time
	CountryNameCN string
	VisaNo        string
	VisaDate      *time.Time
	PassportType  string
	Remarks       string
}

type RecordRepository interface {
	CreatePending(ctx context.Context, taskID, imagePath string) (*entity.PassportRecord, error)
	Get(ctx context.Context, id int64) (*entity.PassportRecord, error)
	MarkProcessing(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, remark string) error
	ApplyResult(ctx context.Context, res RecordResult) error
	ListWindow(ctx context.Context, from, to *time.Time) ([]*entity.PassportRecord, error)
}

type recordRepo struct {
	write *ent.Client
	read  *ent.Client
	log   *slog.Logger
}

func NewRecordRepository(db *DB, log *slog.Logger) RecordRepository {
	return &recordRepo{write: db.Write, read: db.Read, log: log}
}

func (r *recordRepo) CreatePending(ctx context.Context, taskID, imagePath string) (*entity.PassportRecord, error) {
	rec, err := r.write.PassportRecord.
		Create().
		SetTaskID(taskID).
		SetImagePath(imagePath).
		SetStatus(string(constants.StatusPending)).
		SetDocType(constants.DocTypeDefault).
		Save(ctx)
	if err != nil {
		r.log.Error("record.create_failed", "task_id", taskID, "error", err)
		return nil, fmt.Errorf("%w: create record: %v", common.ErrDatabase, err)
	}
	r.log.Info("record.created", "record_id", rec.ID, "task_id", taskID, "image_path", imagePath)
	return toEntity(rec), nil
}

func (r *recordRepo) Get(ctx context.Context, id int64) (*entity.PassportRecord, error) {
	rec, err := r.read.PassportRecord.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get record %d: %v", common.ErrDatabase, id, err)
	}
	return toEntity(rec), nil
}

func (r *recordRepo) MarkProcessing(ctx context.Context, id int64) error {
	_, err := r.write.PassportRecord.
		UpdateOneID(id).
		SetStatus(string(constants.StatusProcessing)).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	if err != nil {
		r.log.Error("record.mark_processing_failed", "record_id", id, "error", err)
		return fmt.Errorf("%w: mark processing: %v", common.ErrDatabase, err)
	}
	return nil
}

func (r *recordRepo) MarkFailed(ctx context.Context, id int64, remark string) error {
	_, err := r.write.PassportRecord.
		UpdateOneID(id).
		SetStatus(string(constants.StatusFailed)).
		SetRemarks(truncateRemark(remark)).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	if err != nil {
		r.log.Error("record.mark_failed_failed", "record_id", id, "error", err)
		return fmt.Errorf("%w: mark failed: %v", common.ErrDatabase, err)
	}
	r.log.Warn("record.failed", "record_id", id, "remark", truncateRemark(remark))
	return nil
}

// ApplyResult writes the full field set, status, and remark in a single
// UPDATE. Re-applying the same result is a no-op beyond updated_at.
func (r *recordRepo) ApplyResult(ctx context.Context, res RecordResult) error {
	upd := r.write.PassportRecord.
		UpdateOneID(res.RecordID).
		SetStatus(string(res.Status)).
		SetDocTypeCn(res.DocTypeCN).
		SetPassportNo(res.PassportNo).
		SetName1(res.Name1).
		SetName2(res.Name2).
		SetGender(res.Gender).
		SetCountryNameCn(res.CountryNameCN).
		SetVisaNo(res.VisaNo).
		SetPassportType(res.PassportType).
		SetRemarks(truncateRemark(res.Remarks))

	if res.BirthDate != nil {
		upd.SetBirthDate(*res.BirthDate)
	} else {
		upd.ClearBirthDate()
	}
	if res.ExpiryDate != nil {
		upd.SetExpiryDate(*res.ExpiryDate)
	} else {
		upd.ClearExpiryDate()
	}
	if res.VisaDate != nil {
		upd.SetVisaDate(*res.VisaDate)
	} else {
		upd.ClearVisaDate()
	}

	_, err := upd.Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	if err != nil {
		r.log.Error("record.apply_result_failed", "record_id", res.RecordID, "error", err)
		return fmt.Errorf("%w: apply result: %v", common.ErrDatabase, err)
	}
	r.log.Info("record.result_applied", "record_id", res.RecordID, "status", res.Status)
	return nil
}

func (r *recordRepo) ListWindow(ctx context.Context, from, to *time.Time) ([]*entity.PassportRecord, error) {
	q := r.read.PassportRecord.Query()
	if from != nil {
		q = q.Where(passportrecord.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(passportrecord.CreatedAtLT(*to))
	}
	recs, err := q.Order(ent.Asc(passportrecord.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list records: %v", common.ErrDatabase, err)
	}
	out := make([]*entity.PassportRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toEntity(rec))
	}
	return out, nil
}

func toEntity(rec *ent.PassportRecord) *entity.PassportRecord {
	return &entity.PassportRecord{
		ID:            rec.ID,
		TaskID:        rec.TaskID,
		Status:        rec.Status,
		ImagePath:     rec.ImagePath,
		DocType:       rec.DocType,
		DocTypeCN:     deref(rec.DocTypeCn),
		PassportNo:    deref(rec.PassportNo),
		Name1:         deref(rec.Name1),
		Name2:         deref(rec.Name2),
		Gender:        deref(rec.Gender),
		BirthDate:     rec.BirthDate,
		ExpiryDate:    rec.ExpiryDate,
		CountryNameCN: deref(rec.CountryNameCn),
		VisaNo:        deref(rec.VisaNo),
		VisaDate:      rec.VisaDate,
		PassportType:  deref(rec.PassportType),
		Remarks:       deref(rec.Remarks),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// truncateRemark bounds a remark to the column width, by runes so a
// multibyte message is never cut mid-character.
func truncateRemark(s string) string {
	runes := []rune(s)
	if len(runes) <= constants.MaxRemarkLen {
		return s
	}
	return string(runes[:constants.MaxRemarkLen])
}
