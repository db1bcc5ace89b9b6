package textflow

import (
	"math"
	"strings"
	"testing"

	"github.com/SethRobinson/UGTLive-sub001/config"
)

func floatPtr(v float64) *float64 {
	return &v
}

// charRecord builds a character-granularity input record.
func charRecord(text string, confidence, x, y, w, h float64) Record {
	return Record{
		Text:        text,
		Confidence:  floatPtr(confidence),
		Rect:        cornerRect(x, y, w, h),
		IsCharacter: true,
	}
}

// wordRecord builds a word-granularity input record.
func wordRecord(text string, confidence, x, y, w, h float64) Record {
	return Record{
		Text:       text,
		Confidence: floatPtr(confidence),
		Rect:       cornerRect(x, y, w, h),
	}
}

func cornerRect(x, y, w, h float64) [][]float64 {
	return [][]float64{
		{x, y},
		{x + w, y},
		{x + w, y + h},
		{x, y + h},
	}
}

func TestProcess_CharacterPipeline(t *testing.T) {
	processor := New(config.Default("GoogleVision"))
	records := []Record{
		charRecord("あ", 0.9, 0, 0, 10, 10),
		charRecord("い", 0.9, 10, 0, 10, 10),
		charRecord("う", 0.9, 20, 0, 10, 10),
	}

	out, warnings := processor.Process(records)

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Text != "あいう" {
		t.Errorf("Expected 'あいう', got '%s'", out[0].Text)
	}
	if out[0].ElementType != "paragraph" {
		t.Errorf("Expected element type 'paragraph', got '%s'", out[0].ElementType)
	}
	if out[0].LineCount != 1 {
		t.Errorf("Expected line count 1, got %d", out[0].LineCount)
	}
	if out[0].Confidence == nil || math.Abs(*out[0].Confidence-0.9) > 1e-9 {
		t.Errorf("Expected confidence 0.9, got %v", out[0].Confidence)
	}

	expected := cornerRect(0, 0, 30, 10)
	if len(out[0].Rect) != 4 {
		t.Fatalf("Expected 4-corner rect, got %d corners", len(out[0].Rect))
	}
	for i, corner := range expected {
		if out[0].Rect[i][0] != corner[0] || out[0].Rect[i][1] != corner[1] {
			t.Errorf("Corner %d: expected %v, got %v", i, corner, out[0].Rect[i])
		}
	}
}

func TestProcess_LatinSeparator(t *testing.T) {
	provider := config.Default("EasyOCR")
	provider.SourceLanguage = "en"
	processor := New(provider)

	out, _ := processor.Process([]Record{
		wordRecord("hello", 0.9, 0, 0, 40, 10),
		wordRecord("world", 0.9, 45, 0, 40, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Text != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", out[0].Text)
	}
}

func TestProcess_ScriptDetectedFromText(t *testing.T) {
	// No configured source language: the script class comes from the
	// fragment text itself.
	provider := config.Default("EasyOCR")
	provider.SourceLanguage = ""
	processor := New(provider)

	out, _ := processor.Process([]Record{
		wordRecord("こんにちは", 0.9, 0, 0, 50, 10),
		wordRecord("世界", 0.9, 52, 0, 20, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Text != "こんにちは世界" {
		t.Errorf("Expected CJK join without separator, got '%s'", out[0].Text)
	}

	// The same processor handles a Latin frame with space joining.
	out, _ = processor.Process([]Record{
		wordRecord("hello", 0.9, 0, 0, 40, 10),
		wordRecord("world", 0.9, 45, 0, 40, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Text != "hello world" {
		t.Errorf("Expected Latin space join, got '%s'", out[0].Text)
	}
}

func TestProcess_ConfidenceRescale(t *testing.T) {
	processor := New(config.Default("EasyOCR"))

	out, _ := processor.Process([]Record{
		wordRecord("text", 90, 0, 0, 40, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Confidence == nil || math.Abs(*out[0].Confidence-0.9) > 1e-9 {
		t.Errorf("Expected 0-100 confidence rescaled to 0.9, got %v", out[0].Confidence)
	}
}

func TestProcess_LetterConfidenceGate(t *testing.T) {
	processor := New(config.Default("GoogleVision"))

	// 0.05 is below the default 0.1 letter gate.
	out, _ := processor.Process([]Record{
		charRecord("あ", 0.9, 0, 0, 10, 10),
		charRecord("ノ", 0.05, 10, 0, 10, 10),
		charRecord("い", 0.9, 20, 0, 10, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	if out[0].Text != "あい" {
		t.Errorf("Expected low-confidence glyph dropped, got '%s'", out[0].Text)
	}
}

func TestProcess_LineConfidenceGate(t *testing.T) {
	provider := config.Default("EasyOCR")
	provider.MinLetterConfidence = 0
	provider.MinLineConfidence = 0.5
	processor := New(provider)

	out, _ := processor.Process([]Record{
		wordRecord("noise", 0.3, 0, 0, 40, 10),
	})

	if len(out) != 0 {
		t.Errorf("Expected low-confidence line dropped, got %d paragraph(s)", len(out))
	}
}

func TestProcess_MinFragmentLength(t *testing.T) {
	provider := config.Default("EasyOCR")
	provider.MinFragmentLength = 5
	processor := New(provider)

	out, _ := processor.Process([]Record{
		wordRecord("hi", 0.9, 0, 0, 20, 10),
		wordRecord("longer text", 0.9, 0, 100, 100, 10),
	})

	if len(out) != 1 {
		t.Fatalf("Expected short paragraph dropped, got %d paragraph(s)", len(out))
	}
	if out[0].Text != "longer text" {
		t.Errorf("Expected 'longer text' to survive, got '%s'", out[0].Text)
	}
}

func TestProcess_Bypass(t *testing.T) {
	processor := New(config.Default(config.BypassProvider))
	records := []Record{
		wordRecord("already grouped", 0.9, 0, 0, 100, 10),
	}

	out, warnings := processor.Process(records)

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings on bypass, got %v", warnings)
	}
	if len(out) != 1 || out[0].Text != "already grouped" {
		t.Errorf("Expected input returned unchanged, got %v", out)
	}
	if out[0].ElementType != "" {
		t.Errorf("Expected bypass not to reserialize records, got element type '%s'", out[0].ElementType)
	}
}

func TestProcess_MalformedRecordsSkipped(t *testing.T) {
	processor := New(config.Default("EasyOCR"))
	records := []Record{
		{Text: "", Confidence: floatPtr(0.9), Rect: cornerRect(0, 0, 10, 10)},
		{Text: "no confidence", Rect: cornerRect(0, 0, 10, 10)},
		{Text: "no shape", Confidence: floatPtr(0.9)},
		wordRecord("valid", 0.9, 0, 0, 40, 10),
	}

	out, warnings := processor.Process(records)

	if len(out) != 1 || out[0].Text != "valid" {
		t.Fatalf("Expected only the valid record to survive, got %v", out)
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Stage != "extract" || !strings.Contains(warnings[0].Message, "3") {
		t.Errorf("Expected extract warning counting 3 skipped records, got %v", warnings[0])
	}
}

func TestProcess_TwoColumns(t *testing.T) {
	provider := config.Default("EasyOCR")
	provider.SourceLanguage = "en"
	processor := New(provider)

	out, _ := processor.Process([]Record{
		wordRecord("left", 0.9, 0, 0, 100, 10),
		wordRecord("column", 0.9, 0, 15, 100, 10),
		wordRecord("right", 0.9, 300, 0, 100, 10),
		wordRecord("column", 0.9, 300, 15, 100, 10),
	})

	if len(out) != 2 {
		t.Fatalf("Expected 2 column paragraphs, got %d", len(out))
	}
	if out[0].Text != "left column" || out[1].Text != "right column" {
		t.Errorf("Expected 'left column' and 'right column', got '%s' and '%s'",
			out[0].Text, out[1].Text)
	}
	if out[0].LineCount != 2 || out[1].LineCount != 2 {
		t.Errorf("Expected 2 lines per column, got %d and %d",
			out[0].LineCount, out[1].LineCount)
	}
}

func TestProcess_StableOnOwnOutput(t *testing.T) {
	provider := config.Default("EasyOCR")
	provider.SourceLanguage = "en"
	processor := New(provider)

	first, _ := processor.Process([]Record{
		wordRecord("upper block", 0.9, 0, 0, 100, 10),
		wordRecord("lower block", 0.9, 0, 200, 100, 10),
	})
	if len(first) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d", len(first))
	}

	second, _ := processor.Process(first)

	if len(second) != len(first) {
		t.Fatalf("Expected reprocessing to preserve %d paragraphs, got %d", len(first), len(second))
	}
	for i := range first {
		if second[i].Text != first[i].Text {
			t.Errorf("Paragraph %d: expected text '%s' preserved, got '%s'",
				i, first[i].Text, second[i].Text)
		}
	}
}

func TestProcess_ForegroundColorCarried(t *testing.T) {
	processor := New(config.Default("GoogleVision"))
	record := charRecord("あ", 1.0, 0, 0, 10, 10)
	record.ForegroundColor = &ColorRecord{RGB: []int{255, 0, 0}, Hex: "#FF0000", Percentage: 60}

	out, _ := processor.Process([]Record{record})

	if len(out) != 1 {
		t.Fatalf("Expected 1 paragraph, got %d", len(out))
	}
	fg := out[0].ForegroundColor
	if fg == nil {
		t.Fatal("Expected aggregated foreground color")
	}
	if fg.Hex != "#FF0000" {
		t.Errorf("Expected hex '#FF0000' preserved, got '%s'", fg.Hex)
	}
	if len(fg.RGB) != 3 || fg.RGB[0] != 255 || fg.RGB[1] != 0 || fg.RGB[2] != 0 {
		t.Errorf("Expected RGB [255 0 0], got %v", fg.RGB)
	}
	if math.Abs(fg.Percentage-60) > 1e-9 {
		t.Errorf("Expected percentage 60, got %v", fg.Percentage)
	}
}

func TestParseRecords(t *testing.T) {
	data := []byte(`[{"text":"abc","confidence":0.95,"rect":[[0,0],[30,0],[30,10],[0,10]],"is_character":false,"text_orientation":"horizontal"}]`)

	records, err := ParseRecords(data)
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].Text != "abc" {
		t.Errorf("Expected text 'abc', got '%s'", records[0].Text)
	}
	if records[0].Confidence == nil || *records[0].Confidence != 0.95 {
		t.Errorf("Expected confidence 0.95, got %v", records[0].Confidence)
	}
	if len(records[0].Rect) != 4 {
		t.Errorf("Expected 4 rect corners, got %d", len(records[0].Rect))
	}
}

func TestParseRecords_Invalid(t *testing.T) {
	if _, err := ParseRecords([]byte(`{"not":"an array"}`)); err == nil {
		t.Error("Expected error for non-array input")
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Stage: "extract", Message: "skipped 2 malformed record(s)"},
		{Stage: "pipeline", Message: "noisy frame"},
	}

	got := FormatWarnings(warnings)
	want := "extract: skipped 2 malformed record(s); pipeline: noisy frame"
	if got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}
