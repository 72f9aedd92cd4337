package constants

// DocTypeDefault is the raw doc_type every new record starts with.
const DocTypeDefault = "PASSPORT"

// Localized document type labels stored in doc_type_cn.
const (
	DocTypePassport     = "护照"
	DocTypeIDCard       = "身份证"
	DocTypeHKIDCard     = "香港身份证"
	DocTypeMacauIDCard  = "澳门身份证"
	DocTypeTaiwanIDCard = "台湾身份证"
	DocTypeHKMacauPass  = "港澳居民来往内地通行证"
	DocTypePermit       = "通行证"
)

// Localized passport sub-type labels from the MRZ document code.
const (
	PassportTypeOrdinary   = "普通护照"
	PassportTypeDiplomatic = "外交护照"
	PassportTypeOfficial   = "外交官"
)

// Localized gender labels stored in the gender column.
const (
	GenderMale   = "男"
	GenderFemale = "女"
)
