package ocr

import (
	"reflect"
	"testing"
)

func TestTextsNestedResultShape(t *testing.T) {
	raw := []byte(`{"result":{"ocrResults":[{"rec_texts":["PASSPORT"," DOE ",{"text":"JOHN"},""]}]}}`)
	got := Texts(raw)
	want := []string{"PASSPORT", "DOE", "JOHN"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts = %v, want %v", got, want)
	}
}

func TestTextsFlatShape(t *testing.T) {
	raw := []byte(`{"rec_texts":["a","b"],"rec_scores":[0.9,0.8]}`)
	got := Texts(raw)
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts = %v, want %v", got, want)
	}
}

func TestTextsStatusResultsShape(t *testing.T) {
	raw := []byte(`{"status":"success","results":[{"rec_texts":["x"],"rec_scores":[0.99]}]}`)
	got := Texts(raw)
	want := []string{"x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts = %v, want %v", got, want)
	}

	// A claimed shape with a non-success status yields no lines.
	if got := Texts([]byte(`{"status":"error","results":[]}`)); len(got) != 0 {
		t.Errorf("Texts on error status = %v, want empty", got)
	}
}

func TestTextsLegacyListShape(t *testing.T) {
	raw := []byte(`[[[[0,0,10,10],["hello",0.97]],[[0,12,10,22],["world",0.95]],[[0,24,10,34],"bare"]]]`)
	got := Texts(raw)
	want := []string{"hello", "world", "bare"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts = %v, want %v", got, want)
	}
}

func TestTextsUnknownShape(t *testing.T) {
	inputs := [][]byte{
		[]byte(`{"unexpected":"layout"}`),
		[]byte(`{"rec_texts":["a"]}`),
		[]byte(`"just a string"`),
		[]byte(`[]`),
		[]byte(`{}`),
	}
	for _, raw := range inputs {
		if got := Texts(raw); len(got) != 0 {
			t.Errorf("Texts(%s) = %v, want empty", raw, got)
		}
	}
}

func TestTextsShapeOrder(t *testing.T) {
	// A payload carrying both the nested and the flat markers decodes as
	// the nested shape.
	raw := []byte(`{"result":{"ocrResults":[{"rec_texts":["nested"]}]},"rec_texts":["flat"],"rec_scores":[1]}`)
	got := Texts(raw)
	want := []string{"nested"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Texts = %v, want %v", got, want)
	}
}
