// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
	"github.com/qiwen-ops/passportd/gen/ent/predicate"
)

// PassportRecordUpdate is the builder for updating PassportRecord entities.
type PassportRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PassportRecordMutation
}

// Where appends a list predicates to the PassportRecordUpdate builder.
func (_u *PassportRecordUpdate) Where(ps ...predicate.PassportRecord) *PassportRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *PassportRecordUpdate) SetTaskID(v string) *PassportRecordUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableTaskID(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassportRecordUpdate) SetStatus(v string) *PassportRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableStatus(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *PassportRecordUpdate) SetImagePath(v string) *PassportRecordUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableImagePath(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *PassportRecordUpdate) SetDocType(v string) *PassportRecordUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableDocType(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetDocTypeCn sets the "doc_type_cn" field.
func (_u *PassportRecordUpdate) SetDocTypeCn(v string) *PassportRecordUpdate {
	_u.mutation.SetDocTypeCn(v)
	return _u
}

// SetNillableDocTypeCn sets the "doc_type_cn" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableDocTypeCn(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetDocTypeCn(*v)
	}
	return _u
}

// ClearDocTypeCn clears the value of the "doc_type_cn" field.
func (_u *PassportRecordUpdate) ClearDocTypeCn() *PassportRecordUpdate {
	_u.mutation.ClearDocTypeCn()
	return _u
}

// SetPassportNo sets the "passport_no" field.
func (_u *PassportRecordUpdate) SetPassportNo(v string) *PassportRecordUpdate {
	_u.mutation.SetPassportNo(v)
	return _u
}

// SetNillablePassportNo sets the "passport_no" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillablePassportNo(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetPassportNo(*v)
	}
	return _u
}

// ClearPassportNo clears the value of the "passport_no" field.
func (_u *PassportRecordUpdate) ClearPassportNo() *PassportRecordUpdate {
	_u.mutation.ClearPassportNo()
	return _u
}

// SetName1 sets the "name1" field.
func (_u *PassportRecordUpdate) SetName1(v string) *PassportRecordUpdate {
	_u.mutation.SetName1(v)
	return _u
}

// SetNillableName1 sets the "name1" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableName1(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetName1(*v)
	}
	return _u
}

// ClearName1 clears the value of the "name1" field.
func (_u *PassportRecordUpdate) ClearName1() *PassportRecordUpdate {
	_u.mutation.ClearName1()
	return _u
}

// SetName2 sets the "name2" field.
func (_u *PassportRecordUpdate) SetName2(v string) *PassportRecordUpdate {
	_u.mutation.SetName2(v)
	return _u
}

// SetNillableName2 sets the "name2" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableName2(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetName2(*v)
	}
	return _u
}

// ClearName2 clears the value of the "name2" field.
func (_u *PassportRecordUpdate) ClearName2() *PassportRecordUpdate {
	_u.mutation.ClearName2()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PassportRecordUpdate) SetGender(v string) *PassportRecordUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableGender(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PassportRecordUpdate) ClearGender() *PassportRecordUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassportRecordUpdate) SetBirthDate(v time.Time) *PassportRecordUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableBirthDate(v *time.Time) *PassportRecordUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PassportRecordUpdate) ClearBirthDate() *PassportRecordUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *PassportRecordUpdate) SetExpiryDate(v time.Time) *PassportRecordUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableExpiryDate(v *time.Time) *PassportRecordUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *PassportRecordUpdate) ClearExpiryDate() *PassportRecordUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetCountryNameCn sets the "country_name_cn" field.
func (_u *PassportRecordUpdate) SetCountryNameCn(v string) *PassportRecordUpdate {
	_u.mutation.SetCountryNameCn(v)
	return _u
}

// SetNillableCountryNameCn sets the "country_name_cn" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableCountryNameCn(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetCountryNameCn(*v)
	}
	return _u
}

// ClearCountryNameCn clears the value of the "country_name_cn" field.
func (_u *PassportRecordUpdate) ClearCountryNameCn() *PassportRecordUpdate {
	_u.mutation.ClearCountryNameCn()
	return _u
}

// SetVisaNo sets the "visa_no" field.
func (_u *PassportRecordUpdate) SetVisaNo(v string) *PassportRecordUpdate {
	_u.mutation.SetVisaNo(v)
	return _u
}

// SetNillableVisaNo sets the "visa_no" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableVisaNo(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetVisaNo(*v)
	}
	return _u
}

// ClearVisaNo clears the value of the "visa_no" field.
func (_u *PassportRecordUpdate) ClearVisaNo() *PassportRecordUpdate {
	_u.mutation.ClearVisaNo()
	return _u
}

// SetVisaDate sets the "visa_date" field.
func (_u *PassportRecordUpdate) SetVisaDate(v time.Time) *PassportRecordUpdate {
	_u.mutation.SetVisaDate(v)
	return _u
}

// SetNillableVisaDate sets the "visa_date" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableVisaDate(v *time.Time) *PassportRecordUpdate {
	if v != nil {
		_u.SetVisaDate(*v)
	}
	return _u
}

// ClearVisaDate clears the value of the "visa_date" field.
func (_u *PassportRecordUpdate) ClearVisaDate() *PassportRecordUpdate {
	_u.mutation.ClearVisaDate()
	return _u
}

// SetPassportType sets the "passport_type" field.
func (_u *PassportRecordUpdate) SetPassportType(v string) *PassportRecordUpdate {
	_u.mutation.SetPassportType(v)
	return _u
}

// SetNillablePassportType sets the "passport_type" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillablePassportType(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetPassportType(*v)
	}
	return _u
}

// ClearPassportType clears the value of the "passport_type" field.
func (_u *PassportRecordUpdate) ClearPassportType() *PassportRecordUpdate {
	_u.mutation.ClearPassportType()
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *PassportRecordUpdate) SetRemarks(v string) *PassportRecordUpdate {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *PassportRecordUpdate) SetNillableRemarks(v *string) *PassportRecordUpdate {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *PassportRecordUpdate) ClearRemarks() *PassportRecordUpdate {
	_u.mutation.ClearRemarks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassportRecordUpdate) SetUpdatedAt(v time.Time) *PassportRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PassportRecordMutation object of the builder.
func (_u *PassportRecordUpdate) Mutation() *PassportRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassportRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassportRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassportRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassportRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassportRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passportrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassportRecordUpdate) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := passportrecord.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := passportrecord.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remarks(); ok {
		if err := passportrecord.RemarksValidator(v); err != nil {
			return &ValidationError{Name: "remarks", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.remarks": %w`, err)}
		}
	}
	return nil
}

func (_u *PassportRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passportrecord.Table, passportrecord.Columns, sqlgraph.NewFieldSpec(passportrecord.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(passportrecord.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(passportrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(passportrecord.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(passportrecord.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocTypeCn(); ok {
		_spec.SetField(passportrecord.FieldDocTypeCn, field.TypeString, value)
	}
	if _u.mutation.DocTypeCnCleared() {
		_spec.ClearField(passportrecord.FieldDocTypeCn, field.TypeString)
	}
	if value, ok := _u.mutation.PassportNo(); ok {
		_spec.SetField(passportrecord.FieldPassportNo, field.TypeString, value)
	}
	if _u.mutation.PassportNoCleared() {
		_spec.ClearField(passportrecord.FieldPassportNo, field.TypeString)
	}
	if value, ok := _u.mutation.Name1(); ok {
		_spec.SetField(passportrecord.FieldName1, field.TypeString, value)
	}
	if _u.mutation.Name1Cleared() {
		_spec.ClearField(passportrecord.FieldName1, field.TypeString)
	}
	if value, ok := _u.mutation.Name2(); ok {
		_spec.SetField(passportrecord.FieldName2, field.TypeString, value)
	}
	if _u.mutation.Name2Cleared() {
		_spec.ClearField(passportrecord.FieldName2, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(passportrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(passportrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passportrecord.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(passportrecord.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(passportrecord.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(passportrecord.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CountryNameCn(); ok {
		_spec.SetField(passportrecord.FieldCountryNameCn, field.TypeString, value)
	}
	if _u.mutation.CountryNameCnCleared() {
		_spec.ClearField(passportrecord.FieldCountryNameCn, field.TypeString)
	}
	if value, ok := _u.mutation.VisaNo(); ok {
		_spec.SetField(passportrecord.FieldVisaNo, field.TypeString, value)
	}
	if _u.mutation.VisaNoCleared() {
		_spec.ClearField(passportrecord.FieldVisaNo, field.TypeString)
	}
	if value, ok := _u.mutation.VisaDate(); ok {
		_spec.SetField(passportrecord.FieldVisaDate, field.TypeTime, value)
	}
	if _u.mutation.VisaDateCleared() {
		_spec.ClearField(passportrecord.FieldVisaDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PassportType(); ok {
		_spec.SetField(passportrecord.FieldPassportType, field.TypeString, value)
	}
	if _u.mutation.PassportTypeCleared() {
		_spec.ClearField(passportrecord.FieldPassportType, field.TypeString)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(passportrecord.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(passportrecord.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passportrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passportrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassportRecordUpdateOne is the builder for updating a single PassportRecord entity.
type PassportRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassportRecordMutation
}

// SetTaskID sets the "task_id" field.
func (_u *PassportRecordUpdateOne) SetTaskID(v string) *PassportRecordUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableTaskID(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassportRecordUpdateOne) SetStatus(v string) *PassportRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableStatus(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *PassportRecordUpdateOne) SetImagePath(v string) *PassportRecordUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableImagePath(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *PassportRecordUpdateOne) SetDocType(v string) *PassportRecordUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableDocType(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetDocTypeCn sets the "doc_type_cn" field.
func (_u *PassportRecordUpdateOne) SetDocTypeCn(v string) *PassportRecordUpdateOne {
	_u.mutation.SetDocTypeCn(v)
	return _u
}

// SetNillableDocTypeCn sets the "doc_type_cn" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableDocTypeCn(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetDocTypeCn(*v)
	}
	return _u
}

// ClearDocTypeCn clears the value of the "doc_type_cn" field.
func (_u *PassportRecordUpdateOne) ClearDocTypeCn() *PassportRecordUpdateOne {
	_u.mutation.ClearDocTypeCn()
	return _u
}

// SetPassportNo sets the "passport_no" field.
func (_u *PassportRecordUpdateOne) SetPassportNo(v string) *PassportRecordUpdateOne {
	_u.mutation.SetPassportNo(v)
	return _u
}

// SetNillablePassportNo sets the "passport_no" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillablePassportNo(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetPassportNo(*v)
	}
	return _u
}

// ClearPassportNo clears the value of the "passport_no" field.
func (_u *PassportRecordUpdateOne) ClearPassportNo() *PassportRecordUpdateOne {
	_u.mutation.ClearPassportNo()
	return _u
}

// SetName1 sets the "name1" field.
func (_u *PassportRecordUpdateOne) SetName1(v string) *PassportRecordUpdateOne {
	_u.mutation.SetName1(v)
	return _u
}

// SetNillableName1 sets the "name1" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableName1(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetName1(*v)
	}
	return _u
}

// ClearName1 clears the value of the "name1" field.
func (_u *PassportRecordUpdateOne) ClearName1() *PassportRecordUpdateOne {
	_u.mutation.ClearName1()
	return _u
}

// SetName2 sets the "name2" field.
func (_u *PassportRecordUpdateOne) SetName2(v string) *PassportRecordUpdateOne {
	_u.mutation.SetName2(v)
	return _u
}

// SetNillableName2 sets the "name2" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableName2(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetName2(*v)
	}
	return _u
}

// ClearName2 clears the value of the "name2" field.
func (_u *PassportRecordUpdateOne) ClearName2() *PassportRecordUpdateOne {
	_u.mutation.ClearName2()
	return _u
}

// SetGender sets the "gender" field.
func (_u *PassportRecordUpdateOne) SetGender(v string) *PassportRecordUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableGender(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *PassportRecordUpdateOne) ClearGender() *PassportRecordUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PassportRecordUpdateOne) SetBirthDate(v time.Time) *PassportRecordUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableBirthDate(v *time.Time) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *PassportRecordUpdateOne) ClearBirthDate() *PassportRecordUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *PassportRecordUpdateOne) SetExpiryDate(v time.Time) *PassportRecordUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableExpiryDate(v *time.Time) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *PassportRecordUpdateOne) ClearExpiryDate() *PassportRecordUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetCountryNameCn sets the "country_name_cn" field.
func (_u *PassportRecordUpdateOne) SetCountryNameCn(v string) *PassportRecordUpdateOne {
	_u.mutation.SetCountryNameCn(v)
	return _u
}

// SetNillableCountryNameCn sets the "country_name_cn" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableCountryNameCn(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetCountryNameCn(*v)
	}
	return _u
}

// ClearCountryNameCn clears the value of the "country_name_cn" field.
func (_u *PassportRecordUpdateOne) ClearCountryNameCn() *PassportRecordUpdateOne {
	_u.mutation.ClearCountryNameCn()
	return _u
}

// SetVisaNo sets the "visa_no" field.
func (_u *PassportRecordUpdateOne) SetVisaNo(v string) *PassportRecordUpdateOne {
	_u.mutation.SetVisaNo(v)
	return _u
}

// SetNillableVisaNo sets the "visa_no" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableVisaNo(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetVisaNo(*v)
	}
	return _u
}

// ClearVisaNo clears the value of the "visa_no" field.
func (_u *PassportRecordUpdateOne) ClearVisaNo() *PassportRecordUpdateOne {
	_u.mutation.ClearVisaNo()
	return _u
}

// SetVisaDate sets the "visa_date" field.
func (_u *PassportRecordUpdateOne) SetVisaDate(v time.Time) *PassportRecordUpdateOne {
	_u.mutation.SetVisaDate(v)
	return _u
}

// SetNillableVisaDate sets the "visa_date" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableVisaDate(v *time.Time) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetVisaDate(*v)
	}
	return _u
}

// ClearVisaDate clears the value of the "visa_date" field.
func (_u *PassportRecordUpdateOne) ClearVisaDate() *PassportRecordUpdateOne {
	_u.mutation.ClearVisaDate()
	return _u
}

// SetPassportType sets the "passport_type" field.
func (_u *PassportRecordUpdateOne) SetPassportType(v string) *PassportRecordUpdateOne {
	_u.mutation.SetPassportType(v)
	return _u
}

// SetNillablePassportType sets the "passport_type" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillablePassportType(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetPassportType(*v)
	}
	return _u
}

// ClearPassportType clears the value of the "passport_type" field.
func (_u *PassportRecordUpdateOne) ClearPassportType() *PassportRecordUpdateOne {
	_u.mutation.ClearPassportType()
	return _u
}

// SetRemarks sets the "remarks" field.
func (_u *PassportRecordUpdateOne) SetRemarks(v string) *PassportRecordUpdateOne {
	_u.mutation.SetRemarks(v)
	return _u
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_u *PassportRecordUpdateOne) SetNillableRemarks(v *string) *PassportRecordUpdateOne {
	if v != nil {
		_u.SetRemarks(*v)
	}
	return _u
}

// ClearRemarks clears the value of the "remarks" field.
func (_u *PassportRecordUpdateOne) ClearRemarks() *PassportRecordUpdateOne {
	_u.mutation.ClearRemarks()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassportRecordUpdateOne) SetUpdatedAt(v time.Time) *PassportRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PassportRecordMutation object of the builder.
func (_u *PassportRecordUpdateOne) Mutation() *PassportRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PassportRecordUpdate builder.
func (_u *PassportRecordUpdateOne) Where(ps ...predicate.PassportRecord) *PassportRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassportRecordUpdateOne) Select(field string, fields ...string) *PassportRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PassportRecord entity.
func (_u *PassportRecordUpdateOne) Save(ctx context.Context) (*PassportRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassportRecordUpdateOne) SaveX(ctx context.Context) *PassportRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassportRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassportRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassportRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passportrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassportRecordUpdateOne) check() error {
	if v, ok := _u.mutation.TaskID(); ok {
		if err := passportrecord.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := passportrecord.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.image_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Remarks(); ok {
		if err := passportrecord.RemarksValidator(v); err != nil {
			return &ValidationError{Name: "remarks", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.remarks": %w`, err)}
		}
	}
	return nil
}

func (_u *PassportRecordUpdateOne) sqlSave(ctx context.Context) (_node *PassportRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passportrecord.Table, passportrecord.Columns, sqlgraph.NewFieldSpec(passportrecord.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PassportRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passportrecord.FieldID)
		for _, f := range fields {
			if !passportrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passportrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(passportrecord.FieldTaskID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(passportrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(passportrecord.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(passportrecord.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocTypeCn(); ok {
		_spec.SetField(passportrecord.FieldDocTypeCn, field.TypeString, value)
	}
	if _u.mutation.DocTypeCnCleared() {
		_spec.ClearField(passportrecord.FieldDocTypeCn, field.TypeString)
	}
	if value, ok := _u.mutation.PassportNo(); ok {
		_spec.SetField(passportrecord.FieldPassportNo, field.TypeString, value)
	}
	if _u.mutation.PassportNoCleared() {
		_spec.ClearField(passportrecord.FieldPassportNo, field.TypeString)
	}
	if value, ok := _u.mutation.Name1(); ok {
		_spec.SetField(passportrecord.FieldName1, field.TypeString, value)
	}
	if _u.mutation.Name1Cleared() {
		_spec.ClearField(passportrecord.FieldName1, field.TypeString)
	}
	if value, ok := _u.mutation.Name2(); ok {
		_spec.SetField(passportrecord.FieldName2, field.TypeString, value)
	}
	if _u.mutation.Name2Cleared() {
		_spec.ClearField(passportrecord.FieldName2, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(passportrecord.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(passportrecord.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(passportrecord.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(passportrecord.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(passportrecord.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(passportrecord.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CountryNameCn(); ok {
		_spec.SetField(passportrecord.FieldCountryNameCn, field.TypeString, value)
	}
	if _u.mutation.CountryNameCnCleared() {
		_spec.ClearField(passportrecord.FieldCountryNameCn, field.TypeString)
	}
	if value, ok := _u.mutation.VisaNo(); ok {
		_spec.SetField(passportrecord.FieldVisaNo, field.TypeString, value)
	}
	if _u.mutation.VisaNoCleared() {
		_spec.ClearField(passportrecord.FieldVisaNo, field.TypeString)
	}
	if value, ok := _u.mutation.VisaDate(); ok {
		_spec.SetField(passportrecord.FieldVisaDate, field.TypeTime, value)
	}
	if _u.mutation.VisaDateCleared() {
		_spec.ClearField(passportrecord.FieldVisaDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PassportType(); ok {
		_spec.SetField(passportrecord.FieldPassportType, field.TypeString, value)
	}
	if _u.mutation.PassportTypeCleared() {
		_spec.ClearField(passportrecord.FieldPassportType, field.TypeString)
	}
	if value, ok := _u.mutation.Remarks(); ok {
		_spec.SetField(passportrecord.FieldRemarks, field.TypeString, value)
	}
	if _u.mutation.RemarksCleared() {
		_spec.ClearField(passportrecord.FieldRemarks, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passportrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PassportRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passportrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
