// Code generated by ent, DO NOT EDIT.

package passportrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/qiwen-ops/passportd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldTaskID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldStatus, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldImagePath, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldDocType, v))
}

// DocTypeCn applies equality check predicate on the "doc_type_cn" field. It's identical to DocTypeCnEQ.
func DocTypeCn(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldDocTypeCn, v))
}

// PassportNo applies equality check predicate on the "passport_no" field. It's identical to PassportNoEQ.
func PassportNo(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldPassportNo, v))
}

// Name1 applies equality check predicate on the "name1" field. It's identical to Name1EQ.
func Name1(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldName1, v))
}

// Name2 applies equality check predicate on the "name2" field. It's identical to Name2EQ.
func Name2(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldName2, v))
}

// Gender applies equality check predicate on the "gender" field. It's identical to GenderEQ.
func Gender(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldGender, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldBirthDate, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldExpiryDate, v))
}

// CountryNameCn applies equality check predicate on the "country_name_cn" field. It's identical to CountryNameCnEQ.
func CountryNameCn(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldCountryNameCn, v))
}

// VisaNo applies equality check predicate on the "visa_no" field. It's identical to VisaNoEQ.
func VisaNo(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldVisaNo, v))
}

// VisaDate applies equality check predicate on the "visa_date" field. It's identical to VisaDateEQ.
func VisaDate(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldVisaDate, v))
}

// PassportType applies equality check predicate on the "passport_type" field. It's identical to PassportTypeEQ.
func PassportType(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldPassportType, v))
}

// Remarks applies equality check predicate on the "remarks" field. It's identical to RemarksEQ.
func Remarks(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldRemarks, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldTaskID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldImagePath, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldDocType, v))
}

// DocTypeCnEQ applies the EQ predicate on the "doc_type_cn" field.
func DocTypeCnEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldDocTypeCn, v))
}

// DocTypeCnNEQ applies the NEQ predicate on the "doc_type_cn" field.
func DocTypeCnNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldDocTypeCn, v))
}

// DocTypeCnIn applies the In predicate on the "doc_type_cn" field.
func DocTypeCnIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldDocTypeCn, vs...))
}

// DocTypeCnNotIn applies the NotIn predicate on the "doc_type_cn" field.
func DocTypeCnNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldDocTypeCn, vs...))
}

// DocTypeCnGT applies the GT predicate on the "doc_type_cn" field.
func DocTypeCnGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldDocTypeCn, v))
}

// DocTypeCnGTE applies the GTE predicate on the "doc_type_cn" field.
func DocTypeCnGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldDocTypeCn, v))
}

// DocTypeCnLT applies the LT predicate on the "doc_type_cn" field.
func DocTypeCnLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldDocTypeCn, v))
}

// DocTypeCnLTE applies the LTE predicate on the "doc_type_cn" field.
func DocTypeCnLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldDocTypeCn, v))
}

// DocTypeCnContains applies the Contains predicate on the "doc_type_cn" field.
func DocTypeCnContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldDocTypeCn, v))
}

// DocTypeCnHasPrefix applies the HasPrefix predicate on the "doc_type_cn" field.
func DocTypeCnHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldDocTypeCn, v))
}

// DocTypeCnHasSuffix applies the HasSuffix predicate on the "doc_type_cn" field.
func DocTypeCnHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldDocTypeCn, v))
}

// DocTypeCnIsNil applies the IsNil predicate on the "doc_type_cn" field.
func DocTypeCnIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldDocTypeCn))
}

// DocTypeCnNotNil applies the NotNil predicate on the "doc_type_cn" field.
func DocTypeCnNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldDocTypeCn))
}

// DocTypeCnEqualFold applies the EqualFold predicate on the "doc_type_cn" field.
func DocTypeCnEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldDocTypeCn, v))
}

// DocTypeCnContainsFold applies the ContainsFold predicate on the "doc_type_cn" field.
func DocTypeCnContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldDocTypeCn, v))
}

// PassportNoEQ applies the EQ predicate on the "passport_no" field.
func PassportNoEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldPassportNo, v))
}

// PassportNoNEQ applies the NEQ predicate on the "passport_no" field.
func PassportNoNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldPassportNo, v))
}

// PassportNoIn applies the In predicate on the "passport_no" field.
func PassportNoIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldPassportNo, vs...))
}

// PassportNoNotIn applies the NotIn predicate on the "passport_no" field.
func PassportNoNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldPassportNo, vs...))
}

// PassportNoGT applies the GT predicate on the "passport_no" field.
func PassportNoGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldPassportNo, v))
}

// PassportNoGTE applies the GTE predicate on the "passport_no" field.
func PassportNoGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldPassportNo, v))
}

// PassportNoLT applies the LT predicate on the "passport_no" field.
func PassportNoLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldPassportNo, v))
}

// PassportNoLTE applies the LTE predicate on the "passport_no" field.
func PassportNoLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldPassportNo, v))
}

// PassportNoContains applies the Contains predicate on the "passport_no" field.
func PassportNoContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldPassportNo, v))
}

// PassportNoHasPrefix applies the HasPrefix predicate on the "passport_no" field.
func PassportNoHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldPassportNo, v))
}

// PassportNoHasSuffix applies the HasSuffix predicate on the "passport_no" field.
func PassportNoHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldPassportNo, v))
}

// PassportNoIsNil applies the IsNil predicate on the "passport_no" field.
func PassportNoIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldPassportNo))
}

// PassportNoNotNil applies the NotNil predicate on the "passport_no" field.
func PassportNoNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldPassportNo))
}

// PassportNoEqualFold applies the EqualFold predicate on the "passport_no" field.
func PassportNoEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldPassportNo, v))
}

// PassportNoContainsFold applies the ContainsFold predicate on the "passport_no" field.
func PassportNoContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldPassportNo, v))
}

// Name1EQ applies the EQ predicate on the "name1" field.
func Name1EQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldName1, v))
}

// Name1NEQ applies the NEQ predicate on the "name1" field.
func Name1NEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldName1, v))
}

// Name1In applies the In predicate on the "name1" field.
func Name1In(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldName1, vs...))
}

// Name1NotIn applies the NotIn predicate on the "name1" field.
func Name1NotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldName1, vs...))
}

// Name1GT applies the GT predicate on the "name1" field.
func Name1GT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldName1, v))
}

// Name1GTE applies the GTE predicate on the "name1" field.
func Name1GTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldName1, v))
}

// Name1LT applies the LT predicate on the "name1" field.
func Name1LT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldName1, v))
}

// Name1LTE applies the LTE predicate on the "name1" field.
func Name1LTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldName1, v))
}

// Name1Contains applies the Contains predicate on the "name1" field.
func Name1Contains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldName1, v))
}

// Name1HasPrefix applies the HasPrefix predicate on the "name1" field.
func Name1HasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldName1, v))
}

// Name1HasSuffix applies the HasSuffix predicate on the "name1" field.
func Name1HasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldName1, v))
}

// Name1IsNil applies the IsNil predicate on the "name1" field.
func Name1IsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldName1))
}

// Name1NotNil applies the NotNil predicate on the "name1" field.
func Name1NotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldName1))
}

// Name1EqualFold applies the EqualFold predicate on the "name1" field.
func Name1EqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldName1, v))
}

// Name1ContainsFold applies the ContainsFold predicate on the "name1" field.
func Name1ContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldName1, v))
}

// Name2EQ applies the EQ predicate on the "name2" field.
func Name2EQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldName2, v))
}

// Name2NEQ applies the NEQ predicate on the "name2" field.
func Name2NEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldName2, v))
}

// Name2In applies the In predicate on the "name2" field.
func Name2In(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldName2, vs...))
}

// Name2NotIn applies the NotIn predicate on the "name2" field.
func Name2NotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldName2, vs...))
}

// Name2GT applies the GT predicate on the "name2" field.
func Name2GT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldName2, v))
}

// Name2GTE applies the GTE predicate on the "name2" field.
func Name2GTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldName2, v))
}

// Name2LT applies the LT predicate on the "name2" field.
func Name2LT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldName2, v))
}

// Name2LTE applies the LTE predicate on the "name2" field.
func Name2LTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldName2, v))
}

// Name2Contains applies the Contains predicate on the "name2" field.
func Name2Contains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldName2, v))
}

// Name2HasPrefix applies the HasPrefix predicate on the "name2" field.
func Name2HasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldName2, v))
}

// Name2HasSuffix applies the HasSuffix predicate on the "name2" field.
func Name2HasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldName2, v))
}

// Name2IsNil applies the IsNil predicate on the "name2" field.
func Name2IsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldName2))
}

// Name2NotNil applies the NotNil predicate on the "name2" field.
func Name2NotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldName2))
}

// Name2EqualFold applies the EqualFold predicate on the "name2" field.
func Name2EqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldName2, v))
}

// Name2ContainsFold applies the ContainsFold predicate on the "name2" field.
func Name2ContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldName2, v))
}

// GenderEQ applies the EQ predicate on the "gender" field.
func GenderEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldGender, v))
}

// GenderNEQ applies the NEQ predicate on the "gender" field.
func GenderNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldGender, v))
}

// GenderIn applies the In predicate on the "gender" field.
func GenderIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldGender, vs...))
}

// GenderNotIn applies the NotIn predicate on the "gender" field.
func GenderNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldGender, vs...))
}

// GenderGT applies the GT predicate on the "gender" field.
func GenderGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldGender, v))
}

// GenderGTE applies the GTE predicate on the "gender" field.
func GenderGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldGender, v))
}

// GenderLT applies the LT predicate on the "gender" field.
func GenderLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldGender, v))
}

// GenderLTE applies the LTE predicate on the "gender" field.
func GenderLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldGender, v))
}

// GenderContains applies the Contains predicate on the "gender" field.
func GenderContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldGender, v))
}

// GenderHasPrefix applies the HasPrefix predicate on the "gender" field.
func GenderHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldGender, v))
}

// GenderHasSuffix applies the HasSuffix predicate on the "gender" field.
func GenderHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldGender, v))
}

// GenderIsNil applies the IsNil predicate on the "gender" field.
func GenderIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldGender))
}

// GenderNotNil applies the NotNil predicate on the "gender" field.
func GenderNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldGender))
}

// GenderEqualFold applies the EqualFold predicate on the "gender" field.
func GenderEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldGender, v))
}

// GenderContainsFold applies the ContainsFold predicate on the "gender" field.
func GenderContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldGender, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldBirthDate))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldExpiryDate))
}

// CountryNameCnEQ applies the EQ predicate on the "country_name_cn" field.
func CountryNameCnEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldCountryNameCn, v))
}

// CountryNameCnNEQ applies the NEQ predicate on the "country_name_cn" field.
func CountryNameCnNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldCountryNameCn, v))
}

// CountryNameCnIn applies the In predicate on the "country_name_cn" field.
func CountryNameCnIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldCountryNameCn, vs...))
}

// CountryNameCnNotIn applies the NotIn predicate on the "country_name_cn" field.
func CountryNameCnNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldCountryNameCn, vs...))
}

// CountryNameCnGT applies the GT predicate on the "country_name_cn" field.
func CountryNameCnGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldCountryNameCn, v))
}

// CountryNameCnGTE applies the GTE predicate on the "country_name_cn" field.
func CountryNameCnGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldCountryNameCn, v))
}

// CountryNameCnLT applies the LT predicate on the "country_name_cn" field.
func CountryNameCnLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldCountryNameCn, v))
}

// CountryNameCnLTE applies the LTE predicate on the "country_name_cn" field.
func CountryNameCnLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldCountryNameCn, v))
}

// CountryNameCnContains applies the Contains predicate on the "country_name_cn" field.
func CountryNameCnContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldCountryNameCn, v))
}

// CountryNameCnHasPrefix applies the HasPrefix predicate on the "country_name_cn" field.
func CountryNameCnHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldCountryNameCn, v))
}

// CountryNameCnHasSuffix applies the HasSuffix predicate on the "country_name_cn" field.
func CountryNameCnHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldCountryNameCn, v))
}

// CountryNameCnIsNil applies the IsNil predicate on the "country_name_cn" field.
func CountryNameCnIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldCountryNameCn))
}

// CountryNameCnNotNil applies the NotNil predicate on the "country_name_cn" field.
func CountryNameCnNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldCountryNameCn))
}

// CountryNameCnEqualFold applies the EqualFold predicate on the "country_name_cn" field.
func CountryNameCnEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldCountryNameCn, v))
}

// CountryNameCnContainsFold applies the ContainsFold predicate on the "country_name_cn" field.
func CountryNameCnContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldCountryNameCn, v))
}

// VisaNoEQ applies the EQ predicate on the "visa_no" field.
func VisaNoEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldVisaNo, v))
}

// VisaNoNEQ applies the NEQ predicate on the "visa_no" field.
func VisaNoNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldVisaNo, v))
}

// VisaNoIn applies the In predicate on the "visa_no" field.
func VisaNoIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldVisaNo, vs...))
}

// VisaNoNotIn applies the NotIn predicate on the "visa_no" field.
func VisaNoNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldVisaNo, vs...))
}

// VisaNoGT applies the GT predicate on the "visa_no" field.
func VisaNoGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldVisaNo, v))
}

// VisaNoGTE applies the GTE predicate on the "visa_no" field.
func VisaNoGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldVisaNo, v))
}

// VisaNoLT applies the LT predicate on the "visa_no" field.
func VisaNoLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldVisaNo, v))
}

// VisaNoLTE applies the LTE predicate on the "visa_no" field.
func VisaNoLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldVisaNo, v))
}

// VisaNoContains applies the Contains predicate on the "visa_no" field.
func VisaNoContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldVisaNo, v))
}

// VisaNoHasPrefix applies the HasPrefix predicate on the "visa_no" field.
func VisaNoHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldVisaNo, v))
}

// VisaNoHasSuffix applies the HasSuffix predicate on the "visa_no" field.
func VisaNoHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldVisaNo, v))
}

// VisaNoIsNil applies the IsNil predicate on the "visa_no" field.
func VisaNoIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldVisaNo))
}

// VisaNoNotNil applies the NotNil predicate on the "visa_no" field.
func VisaNoNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldVisaNo))
}

// VisaNoEqualFold applies the EqualFold predicate on the "visa_no" field.
func VisaNoEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldVisaNo, v))
}

// VisaNoContainsFold applies the ContainsFold predicate on the "visa_no" field.
func VisaNoContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldVisaNo, v))
}

// VisaDateEQ applies the EQ predicate on the "visa_date" field.
func VisaDateEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldVisaDate, v))
}

// VisaDateNEQ applies the NEQ predicate on the "visa_date" field.
func VisaDateNEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldVisaDate, v))
}

// VisaDateIn applies the In predicate on the "visa_date" field.
func VisaDateIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldVisaDate, vs...))
}

// VisaDateNotIn applies the NotIn predicate on the "visa_date" field.
func VisaDateNotIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldVisaDate, vs...))
}

// VisaDateGT applies the GT predicate on the "visa_date" field.
func VisaDateGT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldVisaDate, v))
}

// VisaDateGTE applies the GTE predicate on the "visa_date" field.
func VisaDateGTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldVisaDate, v))
}

// VisaDateLT applies the LT predicate on the "visa_date" field.
func VisaDateLT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldVisaDate, v))
}

// VisaDateLTE applies the LTE predicate on the "visa_date" field.
func VisaDateLTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldVisaDate, v))
}

// VisaDateIsNil applies the IsNil predicate on the "visa_date" field.
func VisaDateIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldVisaDate))
}

// VisaDateNotNil applies the NotNil predicate on the "visa_date" field.
func VisaDateNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldVisaDate))
}

// PassportTypeEQ applies the EQ predicate on the "passport_type" field.
func PassportTypeEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldPassportType, v))
}

// PassportTypeNEQ applies the NEQ predicate on the "passport_type" field.
func PassportTypeNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldPassportType, v))
}

// PassportTypeIn applies the In predicate on the "passport_type" field.
func PassportTypeIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldPassportType, vs...))
}

// PassportTypeNotIn applies the NotIn predicate on the "passport_type" field.
func PassportTypeNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldPassportType, vs...))
}

// PassportTypeGT applies the GT predicate on the "passport_type" field.
func PassportTypeGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldPassportType, v))
}

// PassportTypeGTE applies the GTE predicate on the "passport_type" field.
func PassportTypeGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldPassportType, v))
}

// PassportTypeLT applies the LT predicate on the "passport_type" field.
func PassportTypeLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldPassportType, v))
}

// PassportTypeLTE applies the LTE predicate on the "passport_type" field.
func PassportTypeLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldPassportType, v))
}

// PassportTypeContains applies the Contains predicate on the "passport_type" field.
func PassportTypeContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldPassportType, v))
}

// PassportTypeHasPrefix applies the HasPrefix predicate on the "passport_type" field.
func PassportTypeHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldPassportType, v))
}

// PassportTypeHasSuffix applies the HasSuffix predicate on the "passport_type" field.
func PassportTypeHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldPassportType, v))
}

// PassportTypeIsNil applies the IsNil predicate on the "passport_type" field.
func PassportTypeIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldPassportType))
}

// PassportTypeNotNil applies the NotNil predicate on the "passport_type" field.
func PassportTypeNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldPassportType))
}

// PassportTypeEqualFold applies the EqualFold predicate on the "passport_type" field.
func PassportTypeEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldPassportType, v))
}

// PassportTypeContainsFold applies the ContainsFold predicate on the "passport_type" field.
func PassportTypeContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldPassportType, v))
}

// RemarksEQ applies the EQ predicate on the "remarks" field.
func RemarksEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldRemarks, v))
}

// RemarksNEQ applies the NEQ predicate on the "remarks" field.
func RemarksNEQ(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldRemarks, v))
}

// RemarksIn applies the In predicate on the "remarks" field.
func RemarksIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldRemarks, vs...))
}

// RemarksNotIn applies the NotIn predicate on the "remarks" field.
func RemarksNotIn(vs ...string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldRemarks, vs...))
}

// RemarksGT applies the GT predicate on the "remarks" field.
func RemarksGT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldRemarks, v))
}

// RemarksGTE applies the GTE predicate on the "remarks" field.
func RemarksGTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldRemarks, v))
}

// RemarksLT applies the LT predicate on the "remarks" field.
func RemarksLT(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldRemarks, v))
}

// RemarksLTE applies the LTE predicate on the "remarks" field.
func RemarksLTE(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldRemarks, v))
}

// RemarksContains applies the Contains predicate on the "remarks" field.
func RemarksContains(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContains(FieldRemarks, v))
}

// RemarksHasPrefix applies the HasPrefix predicate on the "remarks" field.
func RemarksHasPrefix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasPrefix(FieldRemarks, v))
}

// RemarksHasSuffix applies the HasSuffix predicate on the "remarks" field.
func RemarksHasSuffix(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldHasSuffix(FieldRemarks, v))
}

// RemarksIsNil applies the IsNil predicate on the "remarks" field.
func RemarksIsNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIsNull(FieldRemarks))
}

// RemarksNotNil applies the NotNil predicate on the "remarks" field.
func RemarksNotNil() predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotNull(FieldRemarks))
}

// RemarksEqualFold applies the EqualFold predicate on the "remarks" field.
func RemarksEqualFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEqualFold(FieldRemarks, v))
}

// RemarksContainsFold applies the ContainsFold predicate on the "remarks" field.
func RemarksContainsFold(v string) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldContainsFold(FieldRemarks, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PassportRecord {
	return predicate.PassportRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PassportRecord) predicate.PassportRecord {
	return predicate.PassportRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PassportRecord) predicate.PassportRecord {
	return predicate.PassportRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PassportRecord) predicate.PassportRecord {
	return predicate.PassportRecord(sql.NotPredicates(p))
}
