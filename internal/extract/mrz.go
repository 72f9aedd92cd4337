package extract

import (
	"strings"

	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/country"
)

// An MRZ candidate must carry the filler pattern and be longer than a
// stray fragment; real TD3 lines are 44 characters.
const mrzMinLen = 30

// TD3 line 2 field offsets.
const (
	mrzDocNoEnd    = 9
	mrzBirthStart  = 13
	mrzBirthEnd    = 19
	mrzSexPos      = 20
	mrzExpiryStart = 21
	mrzExpiryEnd   = 27
)

// mrzLines picks the first two MRZ-looking lines in recognition order.
// Further MRZ-looking lines are ignored.
func mrzLines(texts []string) (line1, line2 string) {
	for _, t := range texts {
		if !strings.Contains(t, "<<") || len(t) <= mrzMinLen {
			continue
		}
		if line1 == "" {
			line1 = t
			continue
		}
		if line2 == "" {
			line2 = t
			continue
		}
		break
	}
	return line1, line2
}

// hasMRZFiller reports whether any line carries the MRZ filler pattern.
func hasMRZFiller(texts []string) bool {
	for _, t := range texts {
		if strings.Contains(t, "<<") {
			return true
		}
	}
	return false
}

// applyMRZLine1 fills passport type, issuing country, and names from the
// upper MRZ line: 2-char document code, 3-char country code, then the
// name field split on the double filler.
func applyMRZLine1(line string, countries country.Resolver, f *Fields) {
	if len(line) >= 2 {
		switch line[0] {
		case 'P':
			f.PassportType = constants.PassportTypeOrdinary
		case 'D':
			f.PassportType = constants.PassportTypeDiplomatic
		case 'O':
			f.PassportType = constants.PassportTypeOfficial
		}
	}
	if len(line) >= 5 {
		if name, ok := countries.NameCN(line[2:5]); ok {
			f.CountryNameCN = name
		}

		parts := strings.SplitN(line[5:], "<<", 2)
		if len(parts) == 2 {
			surname := cleanMRZName(parts[0])
			given := cleanMRZName(strings.SplitN(parts[1], "<<", 2)[0])
			if len(surname) > 2 && f.Name1 == "" {
				f.Name1 = surname
			}
			if len(given) > 2 && f.Name2 == "" {
				f.Name2 = given
			}
		} else if full := cleanMRZName(parts[0]); len(full) > 2 && f.Name1 == "" {
			f.Name1 = full
		}
	}
}

// applyMRZLine2 fills document number, birth date, sex, and expiry date
// from the lower MRZ line's fixed offsets.
func applyMRZLine2(line string, f *Fields) {
	if len(line) >= mrzDocNoEnd {
		if no := strings.TrimSpace(strings.ReplaceAll(line[:mrzDocNoEnd], "<", "")); no != "" {
			f.PassportNo = no
		}
	}
	if len(line) >= mrzBirthEnd {
		if d := mrzDate(line[mrzBirthStart:mrzBirthEnd], "19"); d != "" {
			f.BirthDate = d
		}
	}
	if len(line) > mrzSexPos {
		switch line[mrzSexPos] {
		case 'M':
			f.Gender = constants.GenderMale
		case 'F':
			f.Gender = constants.GenderFemale
		}
	}
	if len(line) >= mrzExpiryEnd {
		if d := mrzDate(line[mrzExpiryStart:mrzExpiryEnd], "20"); d != "" {
			f.ExpiryDate = d
		}
	}
}

// mrzDate expands a YYMMDD digit group with the given century, rejecting
// out-of-range months and days.
func mrzDate(yymmdd, century string) string {
	if len(yymmdd) != 6 || !isDigits(yymmdd) {
		return ""
	}
	month := (int(yymmdd[2])-'0')*10 + int(yymmdd[3]) - '0'
	day := (int(yymmdd[4])-'0')*10 + int(yymmdd[5]) - '0'
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return century + yymmdd[0:2] + "-" + yymmdd[2:4] + "-" + yymmdd[4:6]
}

// cleanMRZName turns a filler-padded name token into a spaced, trimmed name.
func cleanMRZName(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "<", " "))
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
