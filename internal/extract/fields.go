// Package extract turns recognized text lines into structured document fields.
// MRZ lines are authoritative; keyword and pattern heuristics only fill fields
// the MRZ left empty.
package extract

// Fields is the best-effort result of one extraction. Every field is
// independently optional; dates are YYYY-MM-DD strings or empty.
type Fields struct {
	DocTypeCN     string
	PassportNo    string
	Name1         string
	Name2         string
	Gender        string
	BirthDate     string
	ExpiryDate    string
	CountryNameCN string
	VisaNo        string
	VisaDate      string
	PassportType  string
}

// Empty reports whether no field was extracted.
func (f Fields) Empty() bool {
	return f == Fields{}
}
