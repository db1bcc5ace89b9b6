// Package layout provides the grouping stages that reconstruct reading
// structure from flat OCR fragments.
//
// OCR engines return over- or under-segmented output depending on provider:
// individual glyphs, isolated words, or already-joined lines, with noisy and
// slightly misaligned bounding boxes. The groupers in this package rebuild
// the natural reading structure using only geometry and per-provider
// thresholds; no language model is involved.
//
// # Groupers
//
//   - [WordGrouper] - merges character-level fragments into words using
//     vertical row quantization and a greedy horizontal scan
//   - [LineGrouper] - merges words and pre-formed segments into reading
//     lines using adaptive row bucketing and horizontal-gap splitting
//   - [ParagraphGrouper] - merges lines into paragraphs with a
//     multi-column-aware best-fit search over active paragraphs
//
// # Configuration
//
// Each grouper takes its own config struct:
//
//	grouper := layout.NewLineGrouperWithConfig(layout.LineConfig{
//	    Glue:      1.2,
//	    Separator: " ",
//	})
//	lines := grouper.Group(segments)
//
// All thresholds are expressed as multiples of observed element heights, so
// the same configuration adapts to different image resolutions.
package layout
