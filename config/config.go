// Package config provides per-provider settings for the text reconstruction
// pipeline.
//
// Each OCR provider has its own grouping thresholds because providers differ
// wildly in output granularity and box accuracy: some emit per-glyph boxes,
// some emit whole lines, some over- or under-report confidence. A [Provider]
// value is an immutable snapshot of those thresholds, read once at the start
// of a processing run and never written back.
//
// Settings may come from Go code directly or from the service configuration
// file format the OCR services use (one "key|value|" pair per line), parsed
// by [Parse] into a [Store].
package config

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// BypassProvider is the reserved provider name whose results skip the
// reconstruction pipeline entirely. Its detector returns blocks that are
// already grouped into reading order, so regrouping would only degrade them.
const BypassProvider = "MangaOCR"

// Setting keys understood by the Store. Provider-specific values use the
// "<provider>.<key>" form and shadow the bare key.
const (
	KeyMinLetterConfidence = "min_letter_confidence"
	KeyMinLineConfidence   = "min_line_confidence"
	KeyHorizontalGlue      = "horizontal_glue"
	KeyVerticalGlue        = "vertical_glue"
	KeyOverlapMin          = "vertical_glue_overlap_min"
	KeyHeightSimilarity    = "height_similarity"
	KeyKeepLinefeeds       = "keep_linefeeds"
	KeyMinFragmentLength   = "min_fragment_length"
	KeySourceLanguage      = "source_language"
)

// Provider holds the grouping thresholds for one OCR provider.
type Provider struct {
	// Name is the provider identifier (e.g. "EasyOCR", "docTR", "PaddleOCR").
	Name string

	// MinLetterConfidence drops individual fragments below this confidence
	// before any grouping happens.
	MinLetterConfidence float64

	// MinLineConfidence drops assembled lines whose average confidence falls
	// below this value. A separate gate from MinLetterConfidence: averaging
	// can mask a single bad glyph, and a short borderline fragment may be an
	// artifact even when it narrowly passes at line level.
	MinLineConfidence float64

	// HorizontalGlue multiplies the average fragment height to derive the
	// maximum horizontal gap bridged during line assembly.
	HorizontalGlue float64

	// VerticalGlue multiplies the average line height to derive the maximum
	// vertical gap bridged during paragraph assembly.
	VerticalGlue float64

	// OverlapMin is the minimum horizontal overlap ratio between a line and
	// a paragraph's last line for the two to merge. Guards against joining
	// vertically close but differently positioned columns.
	OverlapMin float64

	// HeightSimilarity is the minimum ratio of the smaller to the larger
	// height for two elements to merge. Zero disables the gate.
	HeightSimilarity float64

	// KeepLinefeeds joins paragraph lines with newlines instead of the
	// script-class separator.
	KeepLinefeeds bool

	// MinFragmentLength drops output paragraphs shorter than this many
	// characters.
	MinFragmentLength int

	// SourceLanguage is the language code of the source material; it drives
	// the CJK-vs-Latin join and spacing policy.
	SourceLanguage string
}

// Default returns the default thresholds for a provider. The numeric values
// are starting points tuned for glyph-level Japanese output; deployments
// override them per provider through the Store.
func Default(name string) Provider {
	return Provider{
		Name:                name,
		MinLetterConfidence: 0.1,
		MinLineConfidence:   0.2,
		HorizontalGlue:      1.0,
		VerticalGlue:        1.0,
		OverlapMin:          0.2,
		HeightSimilarity:    0,
		KeepLinefeeds:       false,
		MinFragmentLength:   1,
		SourceLanguage:      "ja",
	}
}

// Store is a read-only key-value settings source. Keys are flat strings;
// provider-scoped keys take the form "<provider>.<key>".
type Store struct {
	values map[string]string
}

// NewStore creates an empty settings store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Set records a settings value. Provider-scoped keys use "<provider>.<key>".
func (s *Store) Set(key, value string) {
	s.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
}

// Parse reads settings in the service configuration format: one "key|value|"
// pair per line, blank lines and lines starting with '#' ignored. Lines
// without a '|' separator are skipped.
func Parse(r io.Reader) (*Store, error) {
	store := NewStore()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		store.Set(key, parts[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a settings file from disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Provider builds the threshold set for a provider: provider-scoped keys
// shadow bare keys, and anything unset falls back to the defaults.
func (s *Store) Provider(name string) Provider {
	p := Default(name)

	p.MinLetterConfidence = s.float(name, KeyMinLetterConfidence, p.MinLetterConfidence)
	p.MinLineConfidence = s.float(name, KeyMinLineConfidence, p.MinLineConfidence)
	p.HorizontalGlue = s.float(name, KeyHorizontalGlue, p.HorizontalGlue)
	p.VerticalGlue = s.float(name, KeyVerticalGlue, p.VerticalGlue)
	p.OverlapMin = s.float(name, KeyOverlapMin, p.OverlapMin)
	p.HeightSimilarity = s.float(name, KeyHeightSimilarity, p.HeightSimilarity)
	p.KeepLinefeeds = s.bool(name, KeyKeepLinefeeds, p.KeepLinefeeds)
	p.MinFragmentLength = s.int(name, KeyMinFragmentLength, p.MinFragmentLength)
	p.SourceLanguage = s.string(name, KeySourceLanguage, p.SourceLanguage)

	return p
}

// lookup resolves a key for a provider: "<provider>.<key>" first, then the
// bare key.
func (s *Store) lookup(provider, key string) (string, bool) {
	if v, ok := s.values[provider+"."+key]; ok {
		return v, true
	}
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) float(provider, key string, def float64) float64 {
	raw, ok := s.lookup(provider, key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func (s *Store) int(provider, key string, def int) int {
	raw, ok := s.lookup(provider, key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (s *Store) bool(provider, key string, def bool) bool {
	raw, ok := s.lookup(provider, key)
	if !ok {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func (s *Store) string(provider, key, def string) string {
	raw, ok := s.lookup(provider, key)
	if !ok || raw == "" {
		return def
	}
	return raw
}
