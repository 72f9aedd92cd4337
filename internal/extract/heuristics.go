package extract

import (
	"regexp"
	"strings"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/country"
)

var (
	idNumberRe   = regexp.MustCompile(`^\d{17}[\dXx]$`)
	passportNoRe = regexp.MustCompile(`[A-Z]{1,2}[0-9]{6,8}`)
	visaNoRe     = regexp.MustCompile(`[A-Z]{1,2}[0-9]{6,10}`)
	cjkNameRe    = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]{2,4}$`)
	latinNameRe  = regexp.MustCompile(`[A-Z\s]{2,50}`)
	cnDateRe     = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	dotDateRe    = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`)
	dmyDateRe    = regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{4}`)
	validityRe   = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}-\d{4}\.\d{2}\.\d{2}$`)
	alpha3Re     = regexp.MustCompile(`[A-Z]{3}`)
)

// Boilerplate words that disqualify a line from being read as a Latin name.
var nameStopWords = []string{
	"PASSPORT", "REPUBLIC", "NATIONALITY", "DATE", "BIRTH",
	"EXPIRY", "AUTHORITY", "SERVICE", "CODE", "TYPE",
}

// Alpha-3 codes skipped when guessing an issuing country from loose text.
var countryCodeExclusions = map[string]struct{}{
	"USA": {}, "GBR": {}, "CAN": {}, "AUS": {}, "DEU": {}, "FRA": {},
	"ITA": {}, "ESP": {}, "NLD": {}, "BEL": {}, "CHE": {}, "AUT": {},
	"SWE": {}, "NOR": {}, "DNK": {}, "FIN": {}, "POL": {}, "CZE": {},
	"HUN": {}, "ROU": {}, "BGR": {}, "HRV": {}, "SVN": {}, "SVK": {},
	"LTU": {}, "LVA": {}, "EST": {}, "LUX": {}, "MLT": {}, "CYP": {},
	"GRC": {}, "PRT": {}, "IRL": {}, "ISL": {}, "LIE": {}, "MCO": {},
	"AND": {}, "SMR": {}, "VAT": {}, "KOS": {}, "MDA": {}, "ALB": {},
	"MKD": {}, "BIH": {}, "MNE": {}, "SRB": {},
}

// Document types whose holder names and numbers follow national ID
// conventions rather than passport ones.
var idDocTypes = map[string]struct{}{
	constants.DocTypeIDCard:       {},
	constants.DocTypeHKIDCard:     {},
	constants.DocTypeMacauIDCard:  {},
	constants.DocTypeTaiwanIDCard: {},
}

// classifyDocType inspects the raw lines for a document type, in priority
// order: cross-border permit phrases, national ID numbers (regional
// variants by number prefix), a generic permit keyword, then passport.
func classifyDocType(texts []string) string {
	containsAny := func(subs ...string) bool {
		for _, t := range texts {
			for _, sub := range subs {
				if strings.Contains(t, sub) {
					return true
				}
			}
		}
		return false
	}
	if containsAny("港澳居民来往内地通行证", "港澳居民往来通行证") {
		return constants.DocTypeHKMacauPass
	}
	if containsAny("公民身份号码", "身份证号码") {
		return docTypeFromIDNumber(texts)
	}
	for _, t := range texts {
		if idNumberRe.MatchString(t) {
			return docTypeFromIDNumber(texts)
		}
	}
	if containsAny("通行证") {
		return constants.DocTypePermit
	}
	return constants.DocTypePassport
}

func docTypeFromIDNumber(texts []string) string {
	for _, t := range texts {
		if !idNumberRe.MatchString(t) {
			continue
		}
		switch {
		case strings.HasPrefix(t, "81"):
			return constants.DocTypeHKIDCard
		case strings.HasPrefix(t, "82"):
			return constants.DocTypeMacauIDCard
		case strings.HasPrefix(t, "83"):
			return constants.DocTypeTaiwanIDCard
		default:
			return constants.DocTypeIDCard
		}
	}
	return ""
}

// applyHeuristics scans every line, upper-cased, and fills only the
// fields still empty after MRZ extraction.
func applyHeuristics(texts []string, countries country.Resolver, f *Fields) {
	if f.DocTypeCN == "" && len(texts) > 0 {
		f.DocTypeCN = classifyDocType(texts)
	}
	_, isIDDoc := idDocTypes[f.DocTypeCN]

	for _, raw := range texts {
		text := strings.ToUpper(raw)

		if f.PassportNo == "" {
			if m := passportNoRe.FindString(text); m != "" {
				f.PassportNo = m
			}
		}
		if f.PassportNo == "" && isIDDoc && idNumberRe.MatchString(text) {
			f.PassportNo = text
		}

		if f.Name1 == "" {
			extractName(text, isIDDoc || f.DocTypeCN == constants.DocTypeHKMacauPass, f)
		}
		if f.Gender == "" {
			extractGender(text, f)
		}
		if f.BirthDate == "" {
			f.BirthDate = extractBirthDate(text)
		}
		if f.ExpiryDate == "" {
			f.ExpiryDate = extractExpiryDate(text)
		}
		if f.CountryNameCN == "" {
			extractCountry(text, countries, f)
		}
		if f.VisaNo == "" && strings.Contains(text, "VISA") {
			if m := visaNoRe.FindString(text); m != "" {
				f.VisaNo = m
			}
		}
	}
}

func extractName(text string, cjkDoc bool, f *Fields) {
	if cjkDoc {
		if rest, ok := strings.CutPrefix(text, "姓名"); ok {
			if name := strings.TrimSpace(rest); cjkNameRe.MatchString(name) {
				f.Name1 = name
			}
			return
		}
		if cjkNameRe.MatchString(text) {
			f.Name1 = text
		}
		return
	}
	for _, stop := range nameStopWords {
		if strings.Contains(text, stop) {
			return
		}
	}
	if name := strings.TrimSpace(latinNameRe.FindString(text)); len(name) >= 2 {
		f.Name1 = name
	}
}

func extractGender(text string, f *Fields) {
	if rest, ok := strings.CutPrefix(text, "性别"); ok {
		switch {
		case strings.Contains(rest, constants.GenderMale):
			f.Gender = constants.GenderMale
		case strings.Contains(rest, constants.GenderFemale):
			f.Gender = constants.GenderFemale
		}
		return
	}
	switch {
	case text == constants.GenderMale || text == constants.GenderFemale:
		f.Gender = text
	case strings.Contains(text, "M") || strings.Contains(text, "MALE"):
		f.Gender = constants.GenderMale
	case strings.Contains(text, "F") || strings.Contains(text, "FEMALE"):
		f.Gender = constants.GenderFemale
	}
}

func extractBirthDate(text string) string {
	if rest, ok := strings.CutPrefix(text, "出生"); ok {
		return cnDate(rest)
	}
	if dotDateRe.MatchString(text) {
		return strings.ReplaceAll(text, ".", "-")
	}
	if d := cnDate(text); d != "" {
		return d
	}
	return dmyDate(text)
}

func extractExpiryDate(text string) string {
	if strings.Contains(text, "-") && validityRe.MatchString(text) {
		bounds := strings.SplitN(text, "-", 2)
		return strings.ReplaceAll(bounds[1], ".", "-")
	}
	if strings.Contains(text, "EXPIRY") || strings.Contains(text, "VALID") {
		return dmyDate(text)
	}
	return ""
}

func extractCountry(text string, countries country.Resolver, f *Fields) {
	switch f.DocTypeCN {
	case constants.DocTypeIDCard:
		f.CountryNameCN = "中国"
	case constants.DocTypeHKIDCard:
		f.CountryNameCN = "香港"
	case constants.DocTypeMacauIDCard:
		f.CountryNameCN = "澳门"
	case constants.DocTypeTaiwanIDCard:
		f.CountryNameCN = "台湾"
	default:
		for _, code := range alpha3Re.FindAllString(text, -1) {
			if _, excluded := countryCodeExclusions[code]; excluded {
				continue
			}
			if name, ok := countries.NameCN(code); ok {
				f.CountryNameCN = name
				return
			}
		}
	}
}

// cnDate reads a YYYY年MM月DD日 phrase, zero-padding month and day.
func cnDate(text string) string {
	m := cnDateRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3])
}

// dmyDate reads a DD.MM.YYYY or DD/MM/YYYY token and reorders it.
func dmyDate(text string) string {
	m := dmyDateRe.FindString(text)
	if m == "" {
		return ""
	}
	sep := "."
	if strings.Contains(m, "/") {
		sep = "/"
	}
	parts := strings.Split(m, sep)
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
