// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/qiwen-ops/passportd/db/ent/schema"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	passportrecordFields := schema.PassportRecord{}.Fields()
	_ = passportrecordFields
	// passportrecordDescTaskID is the schema descriptor for task_id field.
	passportrecordDescTaskID := passportrecordFields[1].Descriptor()
	// passportrecord.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	passportrecord.TaskIDValidator = passportrecordDescTaskID.Validators[0].(func(string) error)
	// passportrecordDescStatus is the schema descriptor for status field.
	passportrecordDescStatus := passportrecordFields[2].Descriptor()
	// passportrecord.DefaultStatus holds the default value on creation for the status field.
	passportrecord.DefaultStatus = passportrecordDescStatus.Default.(string)
	// passportrecordDescImagePath is the schema descriptor for image_path field.
	passportrecordDescImagePath := passportrecordFields[3].Descriptor()
	// passportrecord.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	passportrecord.ImagePathValidator = passportrecordDescImagePath.Validators[0].(func(string) error)
	// passportrecordDescDocType is the schema descriptor for doc_type field.
	passportrecordDescDocType := passportrecordFields[4].Descriptor()
	// passportrecord.DefaultDocType holds the default value on creation for the doc_type field.
	passportrecord.DefaultDocType = passportrecordDescDocType.Default.(string)
	// passportrecordDescRemarks is the schema descriptor for remarks field.
	passportrecordDescRemarks := passportrecordFields[16].Descriptor()
	// passportrecord.RemarksValidator is a validator for the "remarks" field. It is called by the builders before save.
	passportrecord.RemarksValidator = passportrecordDescRemarks.Validators[0].(func(string) error)
	// passportrecordDescCreatedAt is the schema descriptor for created_at field.
	passportrecordDescCreatedAt := passportrecordFields[17].Descriptor()
	// passportrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	passportrecord.DefaultCreatedAt = passportrecordDescCreatedAt.Default.(func() time.Time)
	// passportrecordDescUpdatedAt is the schema descriptor for updated_at field.
	passportrecordDescUpdatedAt := passportrecordFields[18].Descriptor()
	// passportrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	passportrecord.DefaultUpdatedAt = passportrecordDescUpdatedAt.Default.(func() time.Time)
	// passportrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	passportrecord.UpdateDefaultUpdatedAt = passportrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
