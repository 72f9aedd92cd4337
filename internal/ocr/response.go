// Package ocr calls the external recognition service and decodes its
// responses. The service has shipped several response layouts over time;
// decoding tries an ordered list of shape detectors and the first one
// that claims the payload wins.
package ocr

import (
	"encoding/json"
	"strings"
)

// recItem tolerates both bare strings and {"text": ...} objects inside
// rec_texts arrays.
type recItem struct {
	Text string
}

func (r *recItem) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.Text = obj.Text
	return nil
}

// A shapeDetector reports whether it recognizes the payload layout, and
// if so returns the recognized text lines. Claiming a shape with zero
// lines is valid; it means the service saw no text.
type shapeDetector func(raw []byte) ([]string, bool)

var shapeDetectors = []shapeDetector{
	nestedResultShape,
	flatRecTextsShape,
	statusResultsShape,
	legacyListShape,
}

// Texts decodes raw into the recognized lines, trimmed and with empties
// dropped. An unrecognized layout yields nil, which downstream treats as
// an empty extraction, not an error.
func Texts(raw []byte) []string {
	for _, detect := range shapeDetectors {
		if texts, ok := detect(raw); ok {
			return cleanTexts(texts)
		}
	}
	return nil
}

// {"result": {"ocrResults": [{"rec_texts": [...]}]}}
func nestedResultShape(raw []byte) ([]string, bool) {
	var body struct {
		Result *struct {
			OCRResults []struct {
				RecTexts []recItem `json:"rec_texts"`
			} `json:"ocrResults"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Result == nil {
		return nil, false
	}
	if len(body.Result.OCRResults) == 0 {
		return nil, true
	}
	return itemTexts(body.Result.OCRResults[0].RecTexts), true
}

// {"rec_texts": [...], "rec_scores": [...]}
func flatRecTextsShape(raw []byte) ([]string, bool) {
	var body struct {
		RecTexts  *[]recItem `json:"rec_texts"`
		RecScores *[]float64 `json:"rec_scores"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.RecTexts == nil || body.RecScores == nil {
		return nil, false
	}
	return itemTexts(*body.RecTexts), true
}

// {"status": "success", "results": [{"rec_texts": [...], "rec_scores": [...]}]}
func statusResultsShape(raw []byte) ([]string, bool) {
	var body struct {
		Status  *string `json:"status"`
		Results *[]struct {
			RecTexts  *[]recItem `json:"rec_texts"`
			RecScores *[]float64 `json:"rec_scores"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Status == nil || body.Results == nil {
		return nil, false
	}
	if *body.Status != "success" || len(*body.Results) == 0 {
		return nil, true
	}
	first := (*body.Results)[0]
	if first.RecTexts == nil || first.RecScores == nil {
		return nil, true
	}
	return itemTexts(*first.RecTexts), true
}

// [[[box, [text, score]], ...]] — the oldest layout, a bare nested list.
func legacyListShape(raw []byte) ([]string, bool) {
	var outer []json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil || len(outer) == 0 {
		return nil, false
	}
	var lines []json.RawMessage
	if err := json.Unmarshal(outer[0], &lines); err != nil {
		return nil, false
	}
	var texts []string
	for _, line := range lines {
		var parts []json.RawMessage
		if json.Unmarshal(line, &parts) != nil || len(parts) < 2 {
			continue
		}
		var pair []json.RawMessage
		if json.Unmarshal(parts[1], &pair) == nil {
			if len(pair) == 0 {
				continue
			}
			var s string
			if json.Unmarshal(pair[0], &s) == nil {
				texts = append(texts, s)
			}
			continue
		}
		var s string
		if json.Unmarshal(parts[1], &s) == nil {
			texts = append(texts, s)
		}
	}
	return texts, true
}

func itemTexts(items []recItem) []string {
	texts := make([]string, 0, len(items))
	for _, it := range items {
		texts = append(texts, it.Text)
	}
	return texts
}

func cleanTexts(texts []string) []string {
	out := texts[:0]
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
