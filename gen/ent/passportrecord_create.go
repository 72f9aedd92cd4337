// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
)

// PassportRecordCreate is the builder for creating a PassportRecord entity.
type PassportRecordCreate struct {
	config
	mutation *PassportRecordMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PassportRecordCreate) SetTaskID(v string) *PassportRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PassportRecordCreate) SetStatus(v string) *PassportRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableStatus(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *PassportRecordCreate) SetImagePath(v string) *PassportRecordCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *PassportRecordCreate) SetDocType(v string) *PassportRecordCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableDocType(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetDocTypeCn sets the "doc_type_cn" field.
func (_c *PassportRecordCreate) SetDocTypeCn(v string) *PassportRecordCreate {
	_c.mutation.SetDocTypeCn(v)
	return _c
}

// SetNillableDocTypeCn sets the "doc_type_cn" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableDocTypeCn(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetDocTypeCn(*v)
	}
	return _c
}

// SetPassportNo sets the "passport_no" field.
func (_c *PassportRecordCreate) SetPassportNo(v string) *PassportRecordCreate {
	_c.mutation.SetPassportNo(v)
	return _c
}

// SetNillablePassportNo sets the "passport_no" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillablePassportNo(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetPassportNo(*v)
	}
	return _c
}

// SetName1 sets the "name1" field.
func (_c *PassportRecordCreate) SetName1(v string) *PassportRecordCreate {
	_c.mutation.SetName1(v)
	return _c
}

// SetNillableName1 sets the "name1" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableName1(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetName1(*v)
	}
	return _c
}

// SetName2 sets the "name2" field.
func (_c *PassportRecordCreate) SetName2(v string) *PassportRecordCreate {
	_c.mutation.SetName2(v)
	return _c
}

// SetNillableName2 sets the "name2" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableName2(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetName2(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *PassportRecordCreate) SetGender(v string) *PassportRecordCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableGender(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PassportRecordCreate) SetBirthDate(v time.Time) *PassportRecordCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableBirthDate(v *time.Time) *PassportRecordCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *PassportRecordCreate) SetExpiryDate(v time.Time) *PassportRecordCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableExpiryDate(v *time.Time) *PassportRecordCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetCountryNameCn sets the "country_name_cn" field.
func (_c *PassportRecordCreate) SetCountryNameCn(v string) *PassportRecordCreate {
	_c.mutation.SetCountryNameCn(v)
	return _c
}

// SetNillableCountryNameCn sets the "country_name_cn" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableCountryNameCn(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetCountryNameCn(*v)
	}
	return _c
}

// SetVisaNo sets the "visa_no" field.
func (_c *PassportRecordCreate) SetVisaNo(v string) *PassportRecordCreate {
	_c.mutation.SetVisaNo(v)
	return _c
}

// SetNillableVisaNo sets the "visa_no" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableVisaNo(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetVisaNo(*v)
	}
	return _c
}

// SetVisaDate sets the "visa_date" field.
func (_c *PassportRecordCreate) SetVisaDate(v time.Time) *PassportRecordCreate {
	_c.mutation.SetVisaDate(v)
	return _c
}

// SetNillableVisaDate sets the "visa_date" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableVisaDate(v *time.Time) *PassportRecordCreate {
	if v != nil {
		_c.SetVisaDate(*v)
	}
	return _c
}

// SetPassportType sets the "passport_type" field.
func (_c *PassportRecordCreate) SetPassportType(v string) *PassportRecordCreate {
	_c.mutation.SetPassportType(v)
	return _c
}

// SetNillablePassportType sets the "passport_type" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillablePassportType(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetPassportType(*v)
	}
	return _c
}

// SetRemarks sets the "remarks" field.
func (_c *PassportRecordCreate) SetRemarks(v string) *PassportRecordCreate {
	_c.mutation.SetRemarks(v)
	return _c
}

// SetNillableRemarks sets the "remarks" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableRemarks(v *string) *PassportRecordCreate {
	if v != nil {
		_c.SetRemarks(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PassportRecordCreate) SetCreatedAt(v time.Time) *PassportRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableCreatedAt(v *time.Time) *PassportRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PassportRecordCreate) SetUpdatedAt(v time.Time) *PassportRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PassportRecordCreate) SetNillableUpdatedAt(v *time.Time) *PassportRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PassportRecordCreate) SetID(v int64) *PassportRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PassportRecordMutation object of the builder.
func (_c *PassportRecordCreate) Mutation() *PassportRecordMutation {
	return _c.mutation
}

// Save creates the PassportRecord in the database.
func (_c *PassportRecordCreate) Save(ctx context.Context) (*PassportRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PassportRecordCreate) SaveX(ctx context.Context) *PassportRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassportRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassportRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PassportRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := passportrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DocType(); !ok {
		v := passportrecord.DefaultDocType
		_c.mutation.SetDocType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passportrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := passportrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PassportRecordCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PassportRecord.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := passportrecord.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PassportRecord.status"`)}
	}
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "PassportRecord.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := passportrecord.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "PassportRecord.doc_type"`)}
	}
	if v, ok := _c.mutation.Remarks(); ok {
		if err := passportrecord.RemarksValidator(v); err != nil {
			return &ValidationError{Name: "remarks", err: fmt.Errorf(`ent: validator failed for field "PassportRecord.remarks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PassportRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PassportRecord.updated_at"`)}
	}
	return nil
}

func (_c *PassportRecordCreate) sqlSave(ctx context.Context) (*PassportRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PassportRecordCreate) createSpec() (*PassportRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PassportRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passportrecord.Table, sqlgraph.NewFieldSpec(passportrecord.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(passportrecord.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(passportrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(passportrecord.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(passportrecord.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.DocTypeCn(); ok {
		_spec.SetField(passportrecord.FieldDocTypeCn, field.TypeString, value)
		_node.DocTypeCn = &value
	}
	if value, ok := _c.mutation.PassportNo(); ok {
		_spec.SetField(passportrecord.FieldPassportNo, field.TypeString, value)
		_node.PassportNo = &value
	}
	if value, ok := _c.mutation.Name1(); ok {
		_spec.SetField(passportrecord.FieldName1, field.TypeString, value)
		_node.Name1 = &value
	}
	if value, ok := _c.mutation.Name2(); ok {
		_spec.SetField(passportrecord.FieldName2, field.TypeString, value)
		_node.Name2 = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(passportrecord.FieldGender, field.TypeString, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(passportrecord.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(passportrecord.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.CountryNameCn(); ok {
		_spec.SetField(passportrecord.FieldCountryNameCn, field.TypeString, value)
		_node.CountryNameCn = &value
	}
	if value, ok := _c.mutation.VisaNo(); ok {
		_spec.SetField(passportrecord.FieldVisaNo, field.TypeString, value)
		_node.VisaNo = &value
	}
	if value, ok := _c.mutation.VisaDate(); ok {
		_spec.SetField(passportrecord.FieldVisaDate, field.TypeTime, value)
		_node.VisaDate = &value
	}
	if value, ok := _c.mutation.PassportType(); ok {
		_spec.SetField(passportrecord.FieldPassportType, field.TypeString, value)
		_node.PassportType = &value
	}
	if value, ok := _c.mutation.Remarks(); ok {
		_spec.SetField(passportrecord.FieldRemarks, field.TypeString, value)
		_node.Remarks = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passportrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(passportrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PassportRecordCreateBulk is the builder for creating many PassportRecord entities in bulk.
type PassportRecordCreateBulk struct {
	config
	err      error
	builders []*PassportRecordCreate
}

// Save creates the PassportRecord entities in the database.
func (_c *PassportRecordCreateBulk) Save(ctx context.Context) ([]*PassportRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PassportRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PassportRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PassportRecordCreateBulk) SaveX(ctx context.Context) []*PassportRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassportRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassportRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
