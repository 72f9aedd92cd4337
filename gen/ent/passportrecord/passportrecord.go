// Code generated by ent, DO NOT EDIT.

package passportrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the passportrecord type in the database.
	Label = "passport_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldDocTypeCn holds the string denoting the doc_type_cn field in the database.
	FieldDocTypeCn = "doc_type_cn"
	// FieldPassportNo holds the string denoting the passport_no field in the database.
	FieldPassportNo = "passport_no"
	// FieldName1 holds the string denoting the name1 field in the database.
	FieldName1 = "name1"
	// FieldName2 holds the string denoting the name2 field in the database.
	FieldName2 = "name2"
	// FieldGender holds the string denoting the gender field in the database.
	FieldGender = "gender"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldExpiryDate holds the string denoting the expiry_date field in the database.
	FieldExpiryDate = "expiry_date"
	// FieldCountryNameCn holds the string denoting the country_name_cn field in the database.
	FieldCountryNameCn = "country_name_cn"
	// FieldVisaNo holds the string denoting the visa_no field in the database.
	FieldVisaNo = "visa_no"
	// FieldVisaDate holds the string denoting the visa_date field in the database.
	FieldVisaDate = "visa_date"
	// FieldPassportType holds the string denoting the passport_type field in the database.
	FieldPassportType = "passport_type"
	// FieldRemarks holds the string denoting the remarks field in the database.
	FieldRemarks = "remarks"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the passportrecord in the database.
	Table = "passport_records"
)

// Columns holds all SQL columns for passportrecord fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldStatus,
	FieldImagePath,
	FieldDocType,
	FieldDocTypeCn,
	FieldPassportNo,
	FieldName1,
	FieldName2,
	FieldGender,
	FieldBirthDate,
	FieldExpiryDate,
	FieldCountryNameCn,
	FieldVisaNo,
	FieldVisaDate,
	FieldPassportType,
	FieldRemarks,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	ImagePathValidator func(string) error
	// DefaultDocType holds the default value on creation for the "doc_type" field.
	DefaultDocType string
	// RemarksValidator is a validator for the "remarks" field. It is called by the builders before save.
	RemarksValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PassportRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByDocTypeCn orders the results by the doc_type_cn field.
func ByDocTypeCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocTypeCn, opts...).ToFunc()
}

// ByPassportNo orders the results by the passport_no field.
func ByPassportNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassportNo, opts...).ToFunc()
}

// ByName1 orders the results by the name1 field.
func ByName1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName1, opts...).ToFunc()
}

// ByName2 orders the results by the name2 field.
func ByName2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName2, opts...).ToFunc()
}

// ByGender orders the results by the gender field.
func ByGender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGender, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// ByExpiryDate orders the results by the expiry_date field.
func ByExpiryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryDate, opts...).ToFunc()
}

// ByCountryNameCn orders the results by the country_name_cn field.
func ByCountryNameCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryNameCn, opts...).ToFunc()
}

// ByVisaNo orders the results by the visa_no field.
func ByVisaNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisaNo, opts...).ToFunc()
}

// ByVisaDate orders the results by the visa_date field.
func ByVisaDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisaDate, opts...).ToFunc()
}

// ByPassportType orders the results by the passport_type field.
func ByPassportType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassportType, opts...).ToFunc()
}

// ByRemarks orders the results by the remarks field.
func ByRemarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemarks, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
