// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/qiwen-ops/passportd/gen/ent/passportrecord"
)

// PassportRecord is the model entity for the PassportRecord schema.
type PassportRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// DocTypeCn holds the value of the "doc_type_cn" field.
	DocTypeCn *string `json:"doc_type_cn,omitempty"`
	// PassportNo holds the value of the "passport_no" field.
	PassportNo *string `json:"passport_no,omitempty"`
	// Name1 holds the value of the "name1" field.
	Name1 *string `json:"name1,omitempty"`
	// Name2 holds the value of the "name2" field.
	Name2 *string `json:"name2,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *string `json:"gender,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	// CountryNameCn holds the value of the "country_name_cn" field.
	CountryNameCn *string `json:"country_name_cn,omitempty"`
	// VisaNo holds the value of the "visa_no" field.
	VisaNo *string `json:"visa_no,omitempty"`
	// VisaDate holds the value of the "visa_date" field.
	VisaDate *time.Time `json:"visa_date,omitempty"`
	// PassportType holds the value of the "passport_type" field.
	PassportType *string `json:"passport_type,omitempty"`
	// Remarks holds the value of the "remarks" field.
	Remarks *string `json:"remarks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PassportRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case passportrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case passportrecord.FieldTaskID, passportrecord.FieldStatus, passportrecord.FieldImagePath, passportrecord.FieldDocType, passportrecord.FieldDocTypeCn, passportrecord.FieldPassportNo, passportrecord.FieldName1, passportrecord.FieldName2, passportrecord.FieldGender, passportrecord.FieldCountryNameCn, passportrecord.FieldVisaNo, passportrecord.FieldPassportType, passportrecord.FieldRemarks:
			values[i] = new(sql.NullString)
		case passportrecord.FieldBirthDate, passportrecord.FieldExpiryDate, passportrecord.FieldVisaDate, passportrecord.FieldCreatedAt, passportrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PassportRecord fields.
func (_m *PassportRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case passportrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case passportrecord.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case passportrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case passportrecord.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case passportrecord.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case passportrecord.FieldDocTypeCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type_cn", values[i])
			} else if value.Valid {
				_m.DocTypeCn = new(string)
				*_m.DocTypeCn = value.String
			}
		case passportrecord.FieldPassportNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field passport_no", values[i])
			} else if value.Valid {
				_m.PassportNo = new(string)
				*_m.PassportNo = value.String
			}
		case passportrecord.FieldName1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name1", values[i])
			} else if value.Valid {
				_m.Name1 = new(string)
				*_m.Name1 = value.String
			}
		case passportrecord.FieldName2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name2", values[i])
			} else if value.Valid {
				_m.Name2 = new(string)
				*_m.Name2 = value.String
			}
		case passportrecord.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(string)
				*_m.Gender = value.String
			}
		case passportrecord.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case passportrecord.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = new(time.Time)
				*_m.ExpiryDate = value.Time
			}
		case passportrecord.FieldCountryNameCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_name_cn", values[i])
			} else if value.Valid {
				_m.CountryNameCn = new(string)
				*_m.CountryNameCn = value.String
			}
		case passportrecord.FieldVisaNo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visa_no", values[i])
			} else if value.Valid {
				_m.VisaNo = new(string)
				*_m.VisaNo = value.String
			}
		case passportrecord.FieldVisaDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field visa_date", values[i])
			} else if value.Valid {
				_m.VisaDate = new(time.Time)
				*_m.VisaDate = value.Time
			}
		case passportrecord.FieldPassportType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field passport_type", values[i])
			} else if value.Valid {
				_m.PassportType = new(string)
				*_m.PassportType = value.String
			}
		case passportrecord.FieldRemarks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remarks", values[i])
			} else if value.Valid {
				_m.Remarks = new(string)
				*_m.Remarks = value.String
			}
		case passportrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case passportrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PassportRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PassportRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PassportRecord.
// Note that you need to call PassportRecord.Unwrap() before calling this method if this PassportRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PassportRecord) Update() *PassportRecordUpdateOne {
	return NewPassportRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PassportRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PassportRecord) Unwrap() *PassportRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PassportRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PassportRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PassportRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	if v := _m.DocTypeCn; v != nil {
		builder.WriteString("doc_type_cn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PassportNo; v != nil {
		builder.WriteString("passport_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Name1; v != nil {
		builder.WriteString("name1=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Name2; v != nil {
		builder.WriteString("name2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ExpiryDate; v != nil {
		builder.WriteString("expiry_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CountryNameCn; v != nil {
		builder.WriteString("country_name_cn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VisaNo; v != nil {
		builder.WriteString("visa_no=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VisaDate; v != nil {
		builder.WriteString("visa_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PassportType; v != nil {
		builder.WriteString("passport_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Remarks; v != nil {
		builder.WriteString("remarks=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PassportRecords is a parsable slice of PassportRecord.
type PassportRecords []*PassportRecord
