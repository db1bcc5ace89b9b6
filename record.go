package textflow

import (
	"encoding/json"

	"github.com/SethRobinson/UGTLive-sub001/model"
)

// ColorRecord is the wire form of a foreground/background color annotation.
type ColorRecord struct {
	RGB        []int   `json:"rgb,omitempty"`
	Hex        string  `json:"hex,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

// Record is the wire form of one detected text fragment on input and one
// reconstructed paragraph on output. All field presence is resolved here, at
// the deserialization boundary; the pipeline stages operate on the closed,
// typed model instead of re-checking a loose JSON tree.
type Record struct {
	// Text is the recognized content. Records without text are skipped.
	Text string `json:"text"`

	// Confidence is the recognition confidence, either 0-1 or 0-100
	// (auto-detected by magnitude). Records without a confidence are skipped.
	Confidence *float64 `json:"confidence,omitempty"`

	// Rect and Vertices carry the bounding polygon as [[x,y], ...] corner
	// lists. Rect is preferred when both are present. At least one usable
	// point is required; records without one are skipped.
	Rect     [][]float64 `json:"rect,omitempty"`
	Vertices [][]float64 `json:"vertices,omitempty"`

	// IsCharacter marks raw per-glyph fragments that still need character
	// grouping. Unset means word/line granularity.
	IsCharacter bool `json:"is_character,omitempty"`

	// TextOrientation is "horizontal", "vertical", or "unknown".
	TextOrientation string `json:"text_orientation,omitempty"`

	// ForegroundColor and BackgroundColor are optional color annotations.
	ForegroundColor *ColorRecord `json:"foreground_color,omitempty"`
	BackgroundColor *ColorRecord `json:"background_color,omitempty"`

	// LineCount and ElementType are output-only: the number of constituent
	// lines and the literal "paragraph".
	LineCount   int    `json:"line_count,omitempty"`
	ElementType string `json:"element_type,omitempty"`
}

// ParseRecords decodes a JSON array of input records.
func ParseRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarshalRecords encodes records back to a JSON array.
func MarshalRecords(records []Record) ([]byte, error) {
	return json.Marshal(records)
}

// element converts a record into a leaf element. The second return value is
// false for malformed records: missing text or confidence, or no usable
// bounding shape. Confidence values above 1 are assumed to be on a 0-100
// scale and rescaled.
func (r Record) element() (*model.Element, bool) {
	if r.Text == "" || r.Confidence == nil {
		return nil, false
	}

	points := r.points()
	if len(points) == 0 {
		return nil, false
	}

	confidence := *r.Confidence
	if confidence > 1 {
		confidence /= 100
	}

	kind := model.KindWord
	if r.IsCharacter {
		kind = model.KindCharacter
	}

	e := model.NewLeaf(r.Text, confidence, points, kind, model.ParseOrientation(r.TextOrientation))
	e.Processed = !r.IsCharacter
	e.Foreground = r.ForegroundColor.info()
	e.Background = r.BackgroundColor.info()
	return e, true
}

// points returns the bounding polygon, preferring rect over vertices.
// Corners with fewer than two coordinates are dropped.
func (r Record) points() []model.Point {
	corners := r.Rect
	if len(corners) == 0 {
		corners = r.Vertices
	}

	points := make([]model.Point, 0, len(corners))
	for _, c := range corners {
		if len(c) < 2 {
			continue
		}
		points = append(points, model.Point{X: c[0], Y: c[1]})
	}
	return points
}

// info converts the wire color to the model form.
func (c *ColorRecord) info() *model.ColorInfo {
	if c == nil {
		return nil
	}

	info := &model.ColorInfo{Hex: c.Hex, Percentage: c.Percentage}
	if len(c.RGB) >= 3 {
		info.RGB = [3]int{c.RGB[0], c.RGB[1], c.RGB[2]}
	}
	return info
}

// colorRecord converts an aggregated model color to the wire form.
func colorRecord(info *model.ColorInfo) *ColorRecord {
	if info == nil {
		return nil
	}
	return &ColorRecord{
		RGB:        []int{info.RGB[0], info.RGB[1], info.RGB[2]},
		Hex:        info.Hex,
		Percentage: info.Percentage,
	}
}

// paragraphRecord serializes a reconstructed paragraph: text, averaged
// confidence, orientation, the 4-corner quad derived from the bounding box,
// aggregated colors, and the constituent line count.
func paragraphRecord(p *model.Element) Record {
	confidence := p.Confidence
	quad := p.BBox.Quad()

	rect := make([][]float64, 0, len(quad))
	for _, corner := range quad {
		rect = append(rect, []float64{corner.X, corner.Y})
	}

	return Record{
		Text:            p.Text,
		Confidence:      &confidence,
		Rect:            rect,
		TextOrientation: p.Orientation.String(),
		ForegroundColor: colorRecord(model.AggregateForeground(p)),
		BackgroundColor: colorRecord(model.AggregateBackground(p)),
		LineCount:       p.LineCount(),
		ElementType:     "paragraph",
	}
}
