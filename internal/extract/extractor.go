package extract

import (
	"github.com/qiwen-ops/passportd/constants"
	"github.com/qiwen-ops/passportd/internal/country"
)

// Extractor derives document fields from recognized text.
type Extractor struct {
	countries country.Resolver
}

// NewExtractor returns an extractor using countries to localize issuing
// country codes.
func NewExtractor(countries country.Resolver) *Extractor {
	return &Extractor{countries: countries}
}

// Extract runs MRZ parsing first, then heuristics for whatever is still
// empty, then discards any date that does not normalize. Fields set from
// the MRZ are never overwritten.
func (e *Extractor) Extract(texts []string) Fields {
	var f Fields
	if len(texts) == 0 {
		return f
	}

	if hasMRZFiller(texts) {
		f.DocTypeCN = constants.DocTypePassport
	}
	line1, line2 := mrzLines(texts)
	if line1 != "" {
		applyMRZLine1(line1, e.countries, &f)
	}
	if line2 != "" {
		applyMRZLine2(line2, &f)
	}

	applyHeuristics(texts, e.countries, &f)

	f.BirthDate = normalizeDate(f.BirthDate)
	f.ExpiryDate = normalizeDate(f.ExpiryDate)
	f.VisaDate = normalizeDate(f.VisaDate)
	return f
}
