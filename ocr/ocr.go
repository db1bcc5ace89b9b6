//go:build ocr

// Package ocr provides an optional local OCR source that produces fragment
// records for the reconstruction pipeline.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	textflow "github.com/SethRobinson/UGTLive-sub001"
)

// PageSegMode selects Tesseract's page segmentation strategy. Values match
// Tesseract's native numbering, so the constants are interchangeable between
// the stub and the tagged build.
type PageSegMode int

// Segmentation modes useful for fragment detection.
const (
	// PSMAuto lets Tesseract segment the page fully automatically.
	PSMAuto PageSegMode = 3
	// PSMSingleBlockVertText treats the image as one block of vertically
	// aligned text, for vertical CJK captures.
	PSMSingleBlockVertText PageSegMode = 5
	// PSMSingleBlock treats the image as one uniform block of text, such as
	// a cropped dialogue box.
	PSMSingleBlock PageSegMode = 6
	// PSMSparseText finds as much scattered text as possible, for full
	// screen captures with text in unrelated places.
	PSMSparseText PageSegMode = 11
)

// Client wraps Tesseract for fragment detection.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g.,
// "jpn+eng"). Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode, which controls how
// Tesseract analyzes the page layout before recognition.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// DetectWords performs OCR on image data (PNG, TIFF, JPEG, etc.) and returns
// one word-level fragment record per detected word, with its bounding quad
// and Tesseract's 0-100 confidence. The pipeline rescales the confidence and
// regroups the words into lines and paragraphs.
func (c *Client) DetectWords(imageData []byte) ([]textflow.Record, error) {
	return c.detect(imageData, gosseract.RIL_WORD, false)
}

// DetectCharacters performs OCR on image data and returns per-glyph fragment
// records, flagged for character grouping.
func (c *Client) DetectCharacters(imageData []byte) ([]textflow.Record, error) {
	return c.detect(imageData, gosseract.RIL_SYMBOL, true)
}

func (c *Client) detect(imageData []byte, level gosseract.PageIteratorLevel, characters bool) ([]textflow.Record, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(level)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	records := make([]textflow.Record, 0, len(boxes))
	for _, box := range boxes {
		confidence := box.Confidence
		r := box.Box
		records = append(records, textflow.Record{
			Text:       box.Word,
			Confidence: &confidence,
			Rect: [][]float64{
				{float64(r.Min.X), float64(r.Min.Y)},
				{float64(r.Max.X), float64(r.Min.Y)},
				{float64(r.Max.X), float64(r.Max.Y)},
				{float64(r.Min.X), float64(r.Max.Y)},
			},
			IsCharacter:     characters,
			TextOrientation: "horizontal",
		})
	}

	return records, nil
}
