package extract

import (
	"testing"

	"github.com/qiwen-ops/passportd/internal/country"
)

func newTestExtractor() *Extractor {
	return NewExtractor(country.StaticResolver{
		"CHN": "中国",
		"JPN": "日本",
	})
}

func TestExtractPassportMRZ(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{
		"PASSPORT",
		"P<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<",
		"E12345678<CHN9001014M2501014<<<<<<<<<<<<<<06",
	})

	if f.DocTypeCN != "护照" {
		t.Errorf("DocTypeCN = %q, want 护照", f.DocTypeCN)
	}
	if f.PassportType != "普通护照" {
		t.Errorf("PassportType = %q, want 普通护照", f.PassportType)
	}
	if f.CountryNameCN != "中国" {
		t.Errorf("CountryNameCN = %q, want 中国", f.CountryNameCN)
	}
	if f.Name1 != "DOE" || f.Name2 != "JOHN" {
		t.Errorf("names = (%q, %q), want (DOE, JOHN)", f.Name1, f.Name2)
	}
	if f.PassportNo != "E12345678" {
		t.Errorf("PassportNo = %q, want E12345678", f.PassportNo)
	}
	if f.BirthDate != "1990-01-01" {
		t.Errorf("BirthDate = %q, want 1990-01-01", f.BirthDate)
	}
	if f.Gender != "男" {
		t.Errorf("Gender = %q, want 男", f.Gender)
	}
	if f.ExpiryDate != "2025-01-01" {
		t.Errorf("ExpiryDate = %q, want 2025-01-01", f.ExpiryDate)
	}
}

func TestExtractMRZSubTypes(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		line string
		want string
	}{
		{"P<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<", "普通护照"},
		{"D<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<", "外交护照"},
		{"O<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<", "外交官"},
		{"X<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<", ""},
	}
	for _, tt := range tests {
		if got := e.Extract([]string{tt.line}).PassportType; got != tt.want {
			t.Errorf("Extract(%q).PassportType = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestExtractMRZWinsOverHeuristics(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{
		"P<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<",
		"E12345678<CHN9001014M2501014<<<<<<<<<<<<<<06",
		"FEMALE",
		"K9876543",
		"02.02.1970",
	})

	if f.Gender != "男" {
		t.Errorf("Gender = %q, want MRZ value 男", f.Gender)
	}
	if f.PassportNo != "E12345678" {
		t.Errorf("PassportNo = %q, want MRZ value E12345678", f.PassportNo)
	}
	if f.BirthDate != "1990-01-01" {
		t.Errorf("BirthDate = %q, want MRZ value 1990-01-01", f.BirthDate)
	}
}

func TestExtractMRZInvalidDatesDiscarded(t *testing.T) {
	e := newTestExtractor()
	// Birth month 13 and expiry day 45 are out of range.
	f := e.Extract([]string{
		"P<CHNDOE<<JOHN<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<",
		"E12345678<CHN9013014M2501454<<<<<<<<<<<<<<06",
	})

	if f.BirthDate != "" {
		t.Errorf("BirthDate = %q, want empty", f.BirthDate)
	}
	if f.ExpiryDate != "" {
		t.Errorf("ExpiryDate = %q, want empty", f.ExpiryDate)
	}
}

func TestExtractIDCard(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{
		"姓名张伟",
		"性别男民族汉",
		"出生1985年3月5日",
		"公民身份号码",
		"110101198503051234",
	})

	if f.DocTypeCN != "身份证" {
		t.Errorf("DocTypeCN = %q, want 身份证", f.DocTypeCN)
	}
	if f.PassportNo != "110101198503051234" {
		t.Errorf("PassportNo = %q, want the ID number", f.PassportNo)
	}
	if f.Name1 != "张伟" {
		t.Errorf("Name1 = %q, want 张伟", f.Name1)
	}
	if f.Gender != "男" {
		t.Errorf("Gender = %q, want 男", f.Gender)
	}
	if f.BirthDate != "1985-03-05" {
		t.Errorf("BirthDate = %q, want 1985-03-05", f.BirthDate)
	}
	if f.CountryNameCN != "中国" {
		t.Errorf("CountryNameCN = %q, want 中国", f.CountryNameCN)
	}
}

func TestExtractRegionalIDVariants(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		id          string
		wantDocType string
		wantRegion  string
	}{
		{"810101198503051234", "香港身份证", "香港"},
		{"820101198503051234", "澳门身份证", "澳门"},
		{"830101198503051234", "台湾身份证", "台湾"},
		{"11010119850305123X", "身份证", "中国"},
	}
	for _, tt := range tests {
		f := e.Extract([]string{tt.id})
		if f.DocTypeCN != tt.wantDocType {
			t.Errorf("Extract(%s).DocTypeCN = %q, want %q", tt.id, f.DocTypeCN, tt.wantDocType)
		}
		if f.CountryNameCN != tt.wantRegion {
			t.Errorf("Extract(%s).CountryNameCN = %q, want %q", tt.id, f.CountryNameCN, tt.wantRegion)
		}
	}
}

func TestExtractPermit(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{
		"港澳居民来往内地通行证",
		"C12345678",
		"陈小明",
		"2005.03.14",
		"2020.01.01-2030.01.01",
	})

	if f.DocTypeCN != "港澳居民来往内地通行证" {
		t.Errorf("DocTypeCN = %q", f.DocTypeCN)
	}
	if f.PassportNo != "C12345678" {
		t.Errorf("PassportNo = %q, want C12345678", f.PassportNo)
	}
	if f.Name1 != "陈小明" {
		t.Errorf("Name1 = %q, want 陈小明", f.Name1)
	}
	if f.BirthDate != "2005-03-14" {
		t.Errorf("BirthDate = %q, want 2005-03-14", f.BirthDate)
	}
	if f.ExpiryDate != "2030-01-01" {
		t.Errorf("ExpiryDate = %q, want upper validity bound 2030-01-01", f.ExpiryDate)
	}
}

func TestExtractLatinHeuristics(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{
		"SMITH JOHN",
		"K1234567",
		"12.03.1985",
		"EXPIRY 12.03.2030",
		"VISA K98765432",
	})

	if f.DocTypeCN != "护照" {
		t.Errorf("DocTypeCN = %q, want default 护照", f.DocTypeCN)
	}
	if f.Name1 != "SMITH JOHN" {
		t.Errorf("Name1 = %q, want SMITH JOHN", f.Name1)
	}
	if f.PassportNo != "K1234567" {
		t.Errorf("PassportNo = %q, want K1234567", f.PassportNo)
	}
	if f.BirthDate != "1985-03-12" {
		t.Errorf("BirthDate = %q, want 1985-03-12", f.BirthDate)
	}
	if f.ExpiryDate != "2030-03-12" {
		t.Errorf("ExpiryDate = %q, want 2030-03-12", f.ExpiryDate)
	}
	if f.VisaNo != "K98765432" {
		t.Errorf("VisaNo = %q, want K98765432", f.VisaNo)
	}
	if f.PassportType != "" {
		t.Errorf("PassportType = %q, want empty without an MRZ", f.PassportType)
	}
}

func TestExtractCountryCodeExclusions(t *testing.T) {
	e := NewExtractor(country.StaticResolver{"GBR": "英国", "JPN": "日本"})

	// Excluded codes are skipped even when the resolver knows them.
	if f := e.Extract([]string{"NO NAME HERE GBR"}); f.CountryNameCN != "" {
		t.Errorf("CountryNameCN = %q, want empty for excluded code", f.CountryNameCN)
	}
	if f := e.Extract([]string{"JPN"}); f.CountryNameCN != "日本" {
		t.Errorf("CountryNameCN = %q, want 日本", f.CountryNameCN)
	}
}

func TestExtractBoilerplateNotAName(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{"PASSPORT", "DATE OF BIRTH", "NATIONALITY", "LEE ANN"})
	if f.Name1 != "LEE ANN" {
		t.Errorf("Name1 = %q, want LEE ANN", f.Name1)
	}
}

func TestExtractUnparsableDatesBecomeEmpty(t *testing.T) {
	e := newTestExtractor()
	f := e.Extract([]string{"99.99.1999"})
	if f.BirthDate != "" {
		t.Errorf("BirthDate = %q, want empty after normalization", f.BirthDate)
	}
}

func TestExtractNoTexts(t *testing.T) {
	e := newTestExtractor()
	if f := e.Extract(nil); !f.Empty() {
		t.Errorf("Extract(nil) = %+v, want empty fields", f)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1990-01-01", "1990-01-01"},
		{"1990-13-01", ""},
		{"1990-02-30", ""},
		{"not-a-date", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeDate(tt.in); got != tt.want {
			t.Errorf("normalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if d := ParseDate("2025-01-01"); d == nil || d.Year() != 2025 {
		t.Errorf("ParseDate(2025-01-01) = %v", d)
	}
	if d := ParseDate("bogus"); d != nil {
		t.Errorf("ParseDate(bogus) = %v, want nil", d)
	}
	if d := ParseDate(""); d != nil {
		t.Errorf("ParseDate(\"\") = %v, want nil", d)
	}
}
