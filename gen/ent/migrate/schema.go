// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PassportRecordsColumns holds the columns for the "passport_records" table.
	PassportRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "image_path", Type: field.TypeString},
		{Name: "doc_type", Type: field.TypeString, Default: ""},
		{Name: "doc_type_cn", Type: field.TypeString, Nullable: true},
		{Name: "passport_no", Type: field.TypeString, Nullable: true},
		{Name: "name1", Type: field.TypeString, Nullable: true},
		{Name: "name2", Type: field.TypeString, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiry_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "country_name_cn", Type: field.TypeString, Nullable: true},
		{Name: "visa_no", Type: field.TypeString, Nullable: true},
		{Name: "visa_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "passport_type", Type: field.TypeString, Nullable: true},
		{Name: "remarks", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PassportRecordsTable holds the schema information for the "passport_records" table.
	PassportRecordsTable = &schema.Table{
		Name:       "passport_records",
		Columns:    PassportRecordsColumns,
		PrimaryKey: []*schema.Column{PassportRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "passportrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PassportRecordsColumns[2], PassportRecordsColumns[17]},
			},
			{
				Name:    "passportrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{PassportRecordsColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PassportRecordsTable,
	}
)

func init() {
	PassportRecordsTable.Annotation = &entsql.Annotation{
		Table: "passport_records",
	}
}
