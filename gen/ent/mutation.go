// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
	"github.com/qiwen-ops/passportd/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePassportRecord = "PassportRecord"
)

// PassportRecordMutation represents an operation that mutates the PassportRecord nodes in the graph.
type PassportRecordMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	task_id         *string
	status          *string
	image_path      *string
	doc_type        *string
	doc_type_cn     *string
	passport_no     *string
	name1           *string
	name2           *string
	gender          *string
	birth_date      *time.Time
	expiry_date     *time.Time
	country_name_cn *string
	visa_no         *string
	visa_date       *time.Time
	passport_type   *string
	remarks         *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*PassportRecord, error)
	predicates      []predicate.PassportRecord
}

var _ ent.Mutation = (*PassportRecordMutation)(nil)

// passportrecordOption allows management of the mutation configuration using functional options.
type passportrecordOption func(*PassportRecordMutation)

// newPassportRecordMutation creates new mutation for the PassportRecord entity.
func newPassportRecordMutation(c config, op Op, opts ...passportrecordOption) *PassportRecordMutation {
	m := &PassportRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePassportRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassportRecordID sets the ID field of the mutation.
func withPassportRecordID(id int64) passportrecordOption {
	return func(m *PassportRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PassportRecord
		)
		m.oldValue = func(ctx context.Context) (*PassportRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PassportRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPassportRecord sets the old PassportRecord of the mutation.
func withPassportRecord(node *PassportRecord) passportrecordOption {
	return func(m *PassportRecordMutation) {
		m.oldValue = func(context.Context) (*PassportRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassportRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassportRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PassportRecord entities.
func (m *PassportRecordMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassportRecordMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassportRecordMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PassportRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PassportRecordMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PassportRecordMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PassportRecordMutation) ResetTaskID() {
	m.task_id = nil
}

// SetStatus sets the "status" field.
func (m *PassportRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PassportRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PassportRecordMutation) ResetStatus() {
	m.status = nil
}

// SetImagePath sets the "image_path" field.
func (m *PassportRecordMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *PassportRecordMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *PassportRecordMutation) ResetImagePath() {
	m.image_path = nil
}

// SetDocType sets the "doc_type" field.
func (m *PassportRecordMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *PassportRecordMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *PassportRecordMutation) ResetDocType() {
	m.doc_type = nil
}

// SetDocTypeCn sets the "doc_type_cn" field.
func (m *PassportRecordMutation) SetDocTypeCn(s string) {
	m.doc_type_cn = &s
}

// DocTypeCn returns the value of the "doc_type_cn" field in the mutation.
func (m *PassportRecordMutation) DocTypeCn() (r string, exists bool) {
	v := m.doc_type_cn
	if v == nil {
		return
	}
	return *v, true
}

// OldDocTypeCn returns the old "doc_type_cn" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldDocTypeCn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocTypeCn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocTypeCn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocTypeCn: %w", err)
	}
	return oldValue.DocTypeCn, nil
}

// ClearDocTypeCn clears the value of the "doc_type_cn" field.
func (m *PassportRecordMutation) ClearDocTypeCn() {
	m.doc_type_cn = nil
	m.clearedFields[passportrecord.FieldDocTypeCn] = struct{}{}
}

// DocTypeCnCleared returns if the "doc_type_cn" field was cleared in this mutation.
func (m *PassportRecordMutation) DocTypeCnCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldDocTypeCn]
	return ok
}

// ResetDocTypeCn resets all changes to the "doc_type_cn" field.
func (m *PassportRecordMutation) ResetDocTypeCn() {
	m.doc_type_cn = nil
	delete(m.clearedFields, passportrecord.FieldDocTypeCn)
}

// SetPassportNo sets the "passport_no" field.
func (m *PassportRecordMutation) SetPassportNo(s string) {
	m.passport_no = &s
}

// PassportNo returns the value of the "passport_no" field in the mutation.
func (m *PassportRecordMutation) PassportNo() (r string, exists bool) {
	v := m.passport_no
	if v == nil {
		return
	}
	return *v, true
}

// OldPassportNo returns the old "passport_no" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldPassportNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassportNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassportNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassportNo: %w", err)
	}
	return oldValue.PassportNo, nil
}

// ClearPassportNo clears the value of the "passport_no" field.
func (m *PassportRecordMutation) ClearPassportNo() {
	m.passport_no = nil
	m.clearedFields[passportrecord.FieldPassportNo] = struct{}{}
}

// PassportNoCleared returns if the "passport_no" field was cleared in this mutation.
func (m *PassportRecordMutation) PassportNoCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldPassportNo]
	return ok
}

// ResetPassportNo resets all changes to the "passport_no" field.
func (m *PassportRecordMutation) ResetPassportNo() {
	m.passport_no = nil
	delete(m.clearedFields, passportrecord.FieldPassportNo)
}

// SetName1 sets the "name1" field.
func (m *PassportRecordMutation) SetName1(s string) {
	m.name1 = &s
}

// Name1 returns the value of the "name1" field in the mutation.
func (m *PassportRecordMutation) Name1() (r string, exists bool) {
	v := m.name1
	if v == nil {
		return
	}
	return *v, true
}

// OldName1 returns the old "name1" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldName1(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName1: %w", err)
	}
	return oldValue.Name1, nil
}

// ClearName1 clears the value of the "name1" field.
func (m *PassportRecordMutation) ClearName1() {
	m.name1 = nil
	m.clearedFields[passportrecord.FieldName1] = struct{}{}
}

// Name1Cleared returns if the "name1" field was cleared in this mutation.
func (m *PassportRecordMutation) Name1Cleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldName1]
	return ok
}

// ResetName1 resets all changes to the "name1" field.
func (m *PassportRecordMutation) ResetName1() {
	m.name1 = nil
	delete(m.clearedFields, passportrecord.FieldName1)
}

// SetName2 sets the "name2" field.
func (m *PassportRecordMutation) SetName2(s string) {
	m.name2 = &s
}

// Name2 returns the value of the "name2" field in the mutation.
func (m *PassportRecordMutation) Name2() (r string, exists bool) {
	v := m.name2
	if v == nil {
		return
	}
	return *v, true
}

// OldName2 returns the old "name2" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldName2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName2: %w", err)
	}
	return oldValue.Name2, nil
}

// ClearName2 clears the value of the "name2" field.
func (m *PassportRecordMutation) ClearName2() {
	m.name2 = nil
	m.clearedFields[passportrecord.FieldName2] = struct{}{}
}

// Name2Cleared returns if the "name2" field was cleared in this mutation.
func (m *PassportRecordMutation) Name2Cleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldName2]
	return ok
}

// ResetName2 resets all changes to the "name2" field.
func (m *PassportRecordMutation) ResetName2() {
	m.name2 = nil
	delete(m.clearedFields, passportrecord.FieldName2)
}

// SetGender sets the "gender" field.
func (m *PassportRecordMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *PassportRecordMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *PassportRecordMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[passportrecord.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *PassportRecordMutation) GenderCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *PassportRecordMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, passportrecord.FieldGender)
}

// SetBirthDate sets the "birth_date" field.
func (m *PassportRecordMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *PassportRecordMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *PassportRecordMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[passportrecord.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *PassportRecordMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *PassportRecordMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, passportrecord.FieldBirthDate)
}

// SetExpiryDate sets the "expiry_date" field.
func (m *PassportRecordMutation) SetExpiryDate(t time.Time) {
	m.expiry_date = &t
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *PassportRecordMutation) ExpiryDate() (r time.Time, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldExpiryDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *PassportRecordMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[passportrecord.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *PassportRecordMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *PassportRecordMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, passportrecord.FieldExpiryDate)
}

// SetCountryNameCn sets the "country_name_cn" field.
func (m *PassportRecordMutation) SetCountryNameCn(s string) {
	m.country_name_cn = &s
}

// CountryNameCn returns the value of the "country_name_cn" field in the mutation.
func (m *PassportRecordMutation) CountryNameCn() (r string, exists bool) {
	v := m.country_name_cn
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryNameCn returns the old "country_name_cn" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldCountryNameCn(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryNameCn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryNameCn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryNameCn: %w", err)
	}
	return oldValue.CountryNameCn, nil
}

// ClearCountryNameCn clears the value of the "country_name_cn" field.
func (m *PassportRecordMutation) ClearCountryNameCn() {
	m.country_name_cn = nil
	m.clearedFields[passportrecord.FieldCountryNameCn] = struct{}{}
}

// CountryNameCnCleared returns if the "country_name_cn" field was cleared in this mutation.
func (m *PassportRecordMutation) CountryNameCnCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldCountryNameCn]
	return ok
}

// ResetCountryNameCn resets all changes to the "country_name_cn" field.
func (m *PassportRecordMutation) ResetCountryNameCn() {
	m.country_name_cn = nil
	delete(m.clearedFields, passportrecord.FieldCountryNameCn)
}

// SetVisaNo sets the "visa_no" field.
func (m *PassportRecordMutation) SetVisaNo(s string) {
	m.visa_no = &s
}

// VisaNo returns the value of the "visa_no" field in the mutation.
func (m *PassportRecordMutation) VisaNo() (r string, exists bool) {
	v := m.visa_no
	if v == nil {
		return
	}
	return *v, true
}

// OldVisaNo returns the old "visa_no" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldVisaNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisaNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisaNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisaNo: %w", err)
	}
	return oldValue.VisaNo, nil
}

// ClearVisaNo clears the value of the "visa_no" field.
func (m *PassportRecordMutation) ClearVisaNo() {
	m.visa_no = nil
	m.clearedFields[passportrecord.FieldVisaNo] = struct{}{}
}

// VisaNoCleared returns if the "visa_no" field was cleared in this mutation.
func (m *PassportRecordMutation) VisaNoCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldVisaNo]
	return ok
}

// ResetVisaNo resets all changes to the "visa_no" field.
func (m *PassportRecordMutation) ResetVisaNo() {
	m.visa_no = nil
	delete(m.clearedFields, passportrecord.FieldVisaNo)
}

// SetVisaDate sets the "visa_date" field.
func (m *PassportRecordMutation) SetVisaDate(t time.Time) {
	m.visa_date = &t
}

// VisaDate returns the value of the "visa_date" field in the mutation.
func (m *PassportRecordMutation) VisaDate() (r time.Time, exists bool) {
	v := m.visa_date
	if v == nil {
		return
	}
	return *v, true
}

// OldVisaDate returns the old "visa_date" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldVisaDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisaDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisaDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisaDate: %w", err)
	}
	return oldValue.VisaDate, nil
}

// ClearVisaDate clears the value of the "visa_date" field.
func (m *PassportRecordMutation) ClearVisaDate() {
	m.visa_date = nil
	m.clearedFields[passportrecord.FieldVisaDate] = struct{}{}
}

// VisaDateCleared returns if the "visa_date" field was cleared in this mutation.
func (m *PassportRecordMutation) VisaDateCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldVisaDate]
	return ok
}

// ResetVisaDate resets all changes to the "visa_date" field.
func (m *PassportRecordMutation) ResetVisaDate() {
	m.visa_date = nil
	delete(m.clearedFields, passportrecord.FieldVisaDate)
}

// SetPassportType sets the "passport_type" field.
func (m *PassportRecordMutation) SetPassportType(s string) {
	m.passport_type = &s
}

// PassportType returns the value of the "passport_type" field in the mutation.
func (m *PassportRecordMutation) PassportType() (r string, exists bool) {
	v := m.passport_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPassportType returns the old "passport_type" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldPassportType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassportType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassportType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassportType: %w", err)
	}
	return oldValue.PassportType, nil
}

// ClearPassportType clears the value of the "passport_type" field.
func (m *PassportRecordMutation) ClearPassportType() {
	m.passport_type = nil
	m.clearedFields[passportrecord.FieldPassportType] = struct{}{}
}

// PassportTypeCleared returns if the "passport_type" field was cleared in this mutation.
func (m *PassportRecordMutation) PassportTypeCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldPassportType]
	return ok
}

// ResetPassportType resets all changes to the "passport_type" field.
func (m *PassportRecordMutation) ResetPassportType() {
	m.passport_type = nil
	delete(m.clearedFields, passportrecord.FieldPassportType)
}

// SetRemarks sets the "remarks" field.
func (m *PassportRecordMutation) SetRemarks(s string) {
	m.remarks = &s
}

// Remarks returns the value of the "remarks" field in the mutation.
func (m *PassportRecordMutation) Remarks() (r string, exists bool) {
	v := m.remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRemarks returns the old "remarks" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldRemarks(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemarks: %w", err)
	}
	return oldValue.Remarks, nil
}

// ClearRemarks clears the value of the "remarks" field.
func (m *PassportRecordMutation) ClearRemarks() {
	m.remarks = nil
	m.clearedFields[passportrecord.FieldRemarks] = struct{}{}
}

// RemarksCleared returns if the "remarks" field was cleared in this mutation.
func (m *PassportRecordMutation) RemarksCleared() bool {
	_, ok := m.clearedFields[passportrecord.FieldRemarks]
	return ok
}

// ResetRemarks resets all changes to the "remarks" field.
func (m *PassportRecordMutation) ResetRemarks() {
	m.remarks = nil
	delete(m.clearedFields, passportrecord.FieldRemarks)
}

// SetCreatedAt sets the "created_at" field.
func (m *PassportRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PassportRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PassportRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PassportRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PassportRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PassportRecord entity.
// If the PassportRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassportRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PassportRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PassportRecordMutation builder.
func (m *PassportRecordMutation) Where(ps ...predicate.PassportRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassportRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassportRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PassportRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassportRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassportRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PassportRecord).
func (m *PassportRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassportRecordMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.task_id != nil {
		fields = append(fields, passportrecord.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, passportrecord.FieldStatus)
	}
	if m.image_path != nil {
		fields = append(fields, passportrecord.FieldImagePath)
	}
	if m.doc_type != nil {
		fields = append(fields, passportrecord.FieldDocType)
	}
	if m.doc_type_cn != nil {
		fields = append(fields, passportrecord.FieldDocTypeCn)
	}
	if m.passport_no != nil {
		fields = append(fields, passportrecord.FieldPassportNo)
	}
	if m.name1 != nil {
		fields = append(fields, passportrecord.FieldName1)
	}
	if m.name2 != nil {
		fields = append(fields, passportrecord.FieldName2)
	}
	if m.gender != nil {
		fields = append(fields, passportrecord.FieldGender)
	}
	if m.birth_date != nil {
		fields = append(fields, passportrecord.FieldBirthDate)
	}
	if m.expiry_date != nil {
		fields = append(fields, passportrecord.FieldExpiryDate)
	}
	if m.country_name_cn != nil {
		fields = append(fields, passportrecord.FieldCountryNameCn)
	}
	if m.visa_no != nil {
		fields = append(fields, passportrecord.FieldVisaNo)
	}
	if m.visa_date != nil {
		fields = append(fields, passportrecord.FieldVisaDate)
	}
	if m.passport_type != nil {
		fields = append(fields, passportrecord.FieldPassportType)
	}
	if m.remarks != nil {
		fields = append(fields, passportrecord.FieldRemarks)
	}
	if m.created_at != nil {
		fields = append(fields, passportrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, passportrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassportRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case passportrecord.FieldTaskID:
		return m.TaskID()
	case passportrecord.FieldStatus:
		return m.Status()
	case passportrecord.FieldImagePath:
		return m.ImagePath()
	case passportrecord.FieldDocType:
		return m.DocType()
	case passportrecord.FieldDocTypeCn:
		return m.DocTypeCn()
	case passportrecord.FieldPassportNo:
		return m.PassportNo()
	case passportrecord.FieldName1:
		return m.Name1()
	case passportrecord.FieldName2:
		return m.Name2()
	case passportrecord.FieldGender:
		return m.Gender()
	case passportrecord.FieldBirthDate:
		return m.BirthDate()
	case passportrecord.FieldExpiryDate:
		return m.ExpiryDate()
	case passportrecord.FieldCountryNameCn:
		return m.CountryNameCn()
	case passportrecord.FieldVisaNo:
		return m.VisaNo()
	case passportrecord.FieldVisaDate:
		return m.VisaDate()
	case passportrecord.FieldPassportType:
		return m.PassportType()
	case passportrecord.FieldRemarks:
		return m.Remarks()
	case passportrecord.FieldCreatedAt:
		return m.CreatedAt()
	case passportrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassportRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case passportrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case passportrecord.FieldStatus:
		return m.OldStatus(ctx)
	case passportrecord.FieldImagePath:
		return m.OldImagePath(ctx)
	case passportrecord.FieldDocType:
		return m.OldDocType(ctx)
	case passportrecord.FieldDocTypeCn:
		return m.OldDocTypeCn(ctx)
	case passportrecord.FieldPassportNo:
		return m.OldPassportNo(ctx)
	case passportrecord.FieldName1:
		return m.OldName1(ctx)
	case passportrecord.FieldName2:
		return m.OldName2(ctx)
	case passportrecord.FieldGender:
		return m.OldGender(ctx)
	case passportrecord.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case passportrecord.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case passportrecord.FieldCountryNameCn:
		return m.OldCountryNameCn(ctx)
	case passportrecord.FieldVisaNo:
		return m.OldVisaNo(ctx)
	case passportrecord.FieldVisaDate:
		return m.OldVisaDate(ctx)
	case passportrecord.FieldPassportType:
		return m.OldPassportType(ctx)
	case passportrecord.FieldRemarks:
		return m.OldRemarks(ctx)
	case passportrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case passportrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PassportRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassportRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case passportrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case passportrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case passportrecord.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case passportrecord.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case passportrecord.FieldDocTypeCn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocTypeCn(v)
		return nil
	case passportrecord.FieldPassportNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassportNo(v)
		return nil
	case passportrecord.FieldName1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName1(v)
		return nil
	case passportrecord.FieldName2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName2(v)
		return nil
	case passportrecord.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case passportrecord.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case passportrecord.FieldExpiryDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case passportrecord.FieldCountryNameCn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryNameCn(v)
		return nil
	case passportrecord.FieldVisaNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisaNo(v)
		return nil
	case passportrecord.FieldVisaDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisaDate(v)
		return nil
	case passportrecord.FieldPassportType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassportType(v)
		return nil
	case passportrecord.FieldRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemarks(v)
		return nil
	case passportrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case passportrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PassportRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassportRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassportRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassportRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PassportRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassportRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(passportrecord.FieldDocTypeCn) {
		fields = append(fields, passportrecord.FieldDocTypeCn)
	}
	if m.FieldCleared(passportrecord.FieldPassportNo) {
		fields = append(fields, passportrecord.FieldPassportNo)
	}
	if m.FieldCleared(passportrecord.FieldName1) {
		fields = append(fields, passportrecord.FieldName1)
	}
	if m.FieldCleared(passportrecord.FieldName2) {
		fields = append(fields, passportrecord.FieldName2)
	}
	if m.FieldCleared(passportrecord.FieldGender) {
		fields = append(fields, passportrecord.FieldGender)
	}
	if m.FieldCleared(passportrecord.FieldBirthDate) {
		fields = append(fields, passportrecord.FieldBirthDate)
	}
	if m.FieldCleared(passportrecord.FieldExpiryDate) {
		fields = append(fields, passportrecord.FieldExpiryDate)
	}
	if m.FieldCleared(passportrecord.FieldCountryNameCn) {
		fields = append(fields, passportrecord.FieldCountryNameCn)
	}
	if m.FieldCleared(passportrecord.FieldVisaNo) {
		fields = append(fields, passportrecord.FieldVisaNo)
	}
	if m.FieldCleared(passportrecord.FieldVisaDate) {
		fields = append(fields, passportrecord.FieldVisaDate)
	}
	if m.FieldCleared(passportrecord.FieldPassportType) {
		fields = append(fields, passportrecord.FieldPassportType)
	}
	if m.FieldCleared(passportrecord.FieldRemarks) {
		fields = append(fields, passportrecord.FieldRemarks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassportRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassportRecordMutation) ClearField(name string) error {
	switch name {
	case passportrecord.FieldDocTypeCn:
		m.ClearDocTypeCn()
		return nil
	case passportrecord.FieldPassportNo:
		m.ClearPassportNo()
		return nil
	case passportrecord.FieldName1:
		m.ClearName1()
		return nil
	case passportrecord.FieldName2:
		m.ClearName2()
		return nil
	case passportrecord.FieldGender:
		m.ClearGender()
		return nil
	case passportrecord.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	case passportrecord.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	case passportrecord.FieldCountryNameCn:
		m.ClearCountryNameCn()
		return nil
	case passportrecord.FieldVisaNo:
		m.ClearVisaNo()
		return nil
	case passportrecord.FieldVisaDate:
		m.ClearVisaDate()
		return nil
	case passportrecord.FieldPassportType:
		m.ClearPassportType()
		return nil
	case passportrecord.FieldRemarks:
		m.ClearRemarks()
		return nil
	}
	return fmt.Errorf("unknown PassportRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassportRecordMutation) ResetField(name string) error {
	switch name {
	case passportrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case passportrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case passportrecord.FieldImagePath:
		m.ResetImagePath()
		return nil
	case passportrecord.FieldDocType:
		m.ResetDocType()
		return nil
	case passportrecord.FieldDocTypeCn:
		m.ResetDocTypeCn()
		return nil
	case passportrecord.FieldPassportNo:
		m.ResetPassportNo()
		return nil
	case passportrecord.FieldName1:
		m.ResetName1()
		return nil
	case passportrecord.FieldName2:
		m.ResetName2()
		return nil
	case passportrecord.FieldGender:
		m.ResetGender()
		return nil
	case passportrecord.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case passportrecord.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case passportrecord.FieldCountryNameCn:
		m.ResetCountryNameCn()
		return nil
	case passportrecord.FieldVisaNo:
		m.ResetVisaNo()
		return nil
	case passportrecord.FieldVisaDate:
		m.ResetVisaDate()
		return nil
	case passportrecord.FieldPassportType:
		m.ResetPassportType()
		return nil
	case passportrecord.FieldRemarks:
		m.ResetRemarks()
		return nil
	case passportrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case passportrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PassportRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassportRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassportRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassportRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassportRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassportRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassportRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassportRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PassportRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassportRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PassportRecord edge %s", name)
}
