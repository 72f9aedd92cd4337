package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/qiwen-ops/passportd/constants"
)

type PassportRecord struct{ ent.Schema }

func (PassportRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "passport_records"},
	}
}

func (PassportRecord) Fields() []ent.Field {
	dateCol := map[string]string{dialect.Postgres: "date"}
	return []ent.Field{
		field.Int64("id"),
		field.String("task_id").NotEmpty().Unique(),
		field.String("status").Default(string(constants.StatusPending)),
		field.String("image_path").NotEmpty(),
		field.String("doc_type").Default(""),
		field.String("doc_type_cn").Optional().Nillable(),
		field.String("passport_no").Optional().Nillable(),
		field.String("name1").Optional().Nillable(),
		field.String("name2").Optional().Nillable(),
		field.String("gender").Optional().Nillable(),
		field.Time("birth_date").Optional().Nillable().SchemaType(dateCol),
		field.Time("expiry_date").Optional().Nillable().SchemaType(dateCol),
		field.String("country_name_cn").Optional().Nillable(),
		field.String("visa_no").Optional().Nillable(),
		field.Time("visa_date").Optional().Nillable().SchemaType(dateCol),
		field.String("passport_type").Optional().Nillable(),
		field.String("remarks").Optional().Nillable().MaxLen(constants.MaxRemarkLen),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PassportRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("created_at"),
	}
}
