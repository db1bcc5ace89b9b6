//go:build !ocr

// Package ocr provides an optional local OCR source that produces fragment
// records for the reconstruction pipeline.
//
// This is the stub used when the "ocr" build tag is not set: every operation
// returns ErrOCRNotEnabled, so callers build without cgo and degrade
// gracefully at runtime. Rebuild with the "ocr" build tag to get the
// Tesseract-backed implementation:
//
//	go build -tags ocr
//
// The tagged build requires Tesseract to be installed on the system.
package ocr

import (
	"errors"

	textflow "github.com/SethRobinson/UGTLive-sub001"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

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

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}

// DetectWords returns an error indicating OCR support is not enabled.
func (c *Client) DetectWords(imageData []byte) ([]textflow.Record, error) {
	return nil, ErrOCRNotEnabled
}

// DetectCharacters returns an error indicating OCR support is not enabled.
func (c *Client) DetectCharacters(imageData []byte) ([]textflow.Record, error) {
	return nil, ErrOCRNotEnabled
}
