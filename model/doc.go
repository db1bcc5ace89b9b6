// Package model provides the intermediate representation for OCR text
// structure reconstruction.
//
// This package defines the data types the pipeline operates on. Every stage
// of the reconstruction (character grouping, line grouping, paragraph
// grouping) consumes and produces the same composite type, making it the
// primary vocabulary of the module.
//
// # Elements
//
// The [Element] type represents a piece of recognized text at any
// granularity: a single glyph, a word, a reading line, or a paragraph. The
// granularity is carried in [Kind]. Composite elements own their children
// outright and are built strictly bottom-up:
//
//	word := model.NewGroup(model.KindWord, firstChar)
//	word.Absorb(nextChar, "")
//
// Elements are created fresh for each processing run and are never shared
// or retained across runs.
//
// # Geometry
//
// Geometric primitives support the clustering heuristics. Coordinates are in
// the image coordinate system: origin top-left, Y grows downward.
//
//   - [BBox] - bounding box with union, horizontal-overlap, and
//     height-similarity calculations
//   - [Point] - 2D point, the unit of the provider polygons
//
// # Colors
//
// [ColorInfo] carries the optional foreground/background color annotation an
// OCR provider may attach to a fragment. [AggregateForeground] and
// [AggregateBackground] blend the annotations of a whole element tree into a
// single confidence-weighted color.
package model
