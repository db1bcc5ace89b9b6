// Package textflow reconstructs the natural reading structure of OCR output:
// characters into words, words into lines, and lines into paragraphs.
//
// OCR providers return a flat collection of detected fragments with noisy
// bounding boxes and wildly different granularity. The pipeline merges
// fragments that belong together and keeps apart fragments that do not,
// using only geometry and per-provider thresholds.
//
// Basic usage:
//
//	processor := textflow.New(config.Default("EasyOCR"))
//	paragraphs, warnings := processor.Process(records)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textflow.FormatWarnings(warnings))
//	}
//
// Processing is a pure transformation: the processor holds an immutable
// threshold snapshot, never mutates its input records, and retains nothing
// between calls, so a single processor is safe to reuse across frames and
// goroutines.
package textflow

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SethRobinson/UGTLive-sub001/config"
	"github.com/SethRobinson/UGTLive-sub001/layout"
	"github.com/SethRobinson/UGTLive-sub001/model"
	"github.com/SethRobinson/UGTLive-sub001/text"
)

// Processor runs the reconstruction pipeline with one provider's thresholds.
type Processor struct {
	provider   config.Provider
	class      text.ScriptClass
	fromSample bool
}

// New creates a processor for the given provider configuration. The script
// class is derived once from the configured source language; when no language
// is configured, it is instead detected per run from the fragment text.
func New(provider config.Provider) *Processor {
	p := &Processor{provider: provider}
	if strings.TrimSpace(provider.SourceLanguage) == "" {
		p.fromSample = true
	} else {
		p.class = text.ClassifyLanguage(provider.SourceLanguage)
	}
	return p
}

// Process is a convenience wrapper for a one-shot run.
func Process(records []Record, provider config.Provider) ([]Record, []Warning) {
	return New(provider).Process(records)
}

// Process reconstructs paragraphs from raw fragment records.
//
// The reserved bypass provider returns its input unchanged: its detector
// already emits grouped blocks. Any unexpected failure during the run is
// recovered and the original input is returned unprocessed - emitting
// ungrouped fragments beats emitting nothing, since the downstream overlay
// can still render them.
func (p *Processor) Process(records []Record) (out []Record, warnings []Warning) {
	if p.provider.Name == config.BypassProvider {
		return records, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = records
			warnings = append(warnings, Warning{
				Stage:   "pipeline",
				Message: fmt.Sprintf("recovered from %v; returning input unprocessed", r),
			})
		}
	}()

	elements, skipped := extractElements(records)
	if skipped > 0 {
		warnings = append(warnings, Warning{
			Stage:   "extract",
			Message: fmt.Sprintf("skipped %d malformed record(s)", skipped),
		})
	}

	paragraphs := p.ProcessElements(elements)

	out = make([]Record, 0, len(paragraphs))
	for _, para := range paragraphs {
		out = append(out, paragraphRecord(para))
	}
	return out, warnings
}

// ProcessElements runs the typed pipeline on already-extracted elements:
// confidence filtering, character grouping, line grouping, line-level
// confidence filtering, paragraph grouping, and minimum-length filtering.
func (p *Processor) ProcessElements(elements []*model.Element) []*model.Element {
	policy := text.PolicyFor(p.classFor(elements))

	elements = filterByConfidence(elements, p.provider.MinLetterConfidence)

	// Split raw glyphs from pre-formed words/lines. Providers that already
	// group their glyphs flow straight into line grouping.
	var chars, segments []*model.Element
	for _, e := range elements {
		if e.Kind == model.KindCharacter && !e.Processed {
			chars = append(chars, e)
		} else {
			segments = append(segments, e)
		}
	}

	if len(chars) > 0 {
		grouper := layout.NewWordGrouperWithConfig(layout.WordConfig{
			GapScale:         policy.CharGapScale,
			RowScale:         0.5,
			HeightSimilarity: p.provider.HeightSimilarity,
		})
		segments = append(segments, grouper.Group(chars)...)
	}

	lineGrouper := layout.NewLineGrouperWithConfig(layout.LineConfig{
		Glue:             p.provider.HorizontalGlue * policy.GlueScale,
		BucketScale:      0.5,
		HeightSimilarity: p.provider.HeightSimilarity,
		Separator:        policy.Separator,
	})
	lines := lineGrouper.Group(segments)
	lines = filterByConfidence(lines, p.provider.MinLineConfidence)

	paragraphGrouper := layout.NewParagraphGrouperWithConfig(layout.ParagraphConfig{
		VerticalGlue:     p.provider.VerticalGlue,
		OverlapMin:       p.provider.OverlapMin,
		HeightSimilarity: p.provider.HeightSimilarity,
		Separator:        policy.Separator,
		KeepLinefeeds:    p.provider.KeepLinefeeds,
	})
	paragraphs := paragraphGrouper.Group(lines)

	return filterByLength(paragraphs, p.provider.MinFragmentLength)
}

// ScriptClass returns the script class the processor derived from the
// provider's source language. When no language is configured the class is
// detected per run from the fragment text instead; this accessor then
// reports the Latin default.
func (p *Processor) ScriptClass() text.ScriptClass {
	return p.class
}

// classFor resolves the script class for one run. Providers without a
// configured source language fall back to rune inspection over the fragment
// text: any CJK rune in the sample selects the CJK joining policy.
func (p *Processor) classFor(elements []*model.Element) text.ScriptClass {
	if !p.fromSample {
		return p.class
	}

	var sample strings.Builder
	for _, e := range elements {
		sample.WriteString(e.Text)
	}
	return text.ClassifyText(sample.String())
}

// extractElements converts records into leaf elements, counting malformed
// records it skips. Malformed input is expected OCR noise, not an error.
func extractElements(records []Record) ([]*model.Element, int) {
	elements := make([]*model.Element, 0, len(records))
	skipped := 0

	for _, r := range records {
		e, ok := r.element()
		if !ok {
			skipped++
			continue
		}
		elements = append(elements, e)
	}

	return elements, skipped
}

// filterByConfidence drops elements below the minimum confidence.
func filterByConfidence(elements []*model.Element, min float64) []*model.Element {
	if min <= 0 {
		return elements
	}

	kept := make([]*model.Element, 0, len(elements))
	for _, e := range elements {
		if e.Confidence >= min {
			kept = append(kept, e)
		}
	}
	return kept
}

// filterByLength drops paragraphs shorter than the minimum character count.
func filterByLength(paragraphs []*model.Element, min int) []*model.Element {
	if min <= 0 {
		return paragraphs
	}

	kept := make([]*model.Element, 0, len(paragraphs))
	for _, p := range paragraphs {
		if utf8.RuneCountInString(p.Text) >= min {
			kept = append(kept, p)
		}
	}
	return kept
}
