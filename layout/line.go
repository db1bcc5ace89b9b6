package layout

import (
	"sort"

	"github.com/SethRobinson/UGTLive-sub001/model"
)

// LineConfig holds configuration for segment-to-line grouping.
type LineConfig struct {
	// Glue multiplies the average height of two adjacent segments to derive
	// the maximum horizontal gap bridged within a line. This is the
	// provider's horizontal glue factor, already scaled for the source
	// script class by the caller (default: 1.0).
	Glue float64

	// BucketScale multiplies the running average height of a row bucket to
	// derive the vertical tolerance for admitting a segment into that bucket
	// (default: 0.5).
	BucketScale float64

	// HeightSimilarity is the minimum height ratio between adjacent segments
	// for them to share a line. Zero disables the gate.
	HeightSimilarity float64

	// Separator joins segment text within a line ("" for CJK, " " otherwise).
	Separator string
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Glue:             1.0,
		BucketScale:      0.5,
		HeightSimilarity: 0,
		Separator:        "",
	}
}

// LineGrouper assembles reading lines from horizontally adjacent segments
// that sit at the same vertical position, splitting wherever the horizontal
// gap is too large (distinct speech bubbles on the same row) or heights
// differ too much (mixed font sizes accidentally vertically aligned).
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a line grouper with default configuration.
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{config: DefaultLineConfig()}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration.
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{config: config}
}

// rowBucket is a candidate same-row group with running averages. Buckets are
// grown greedily, so rows emerge from the data instead of a fixed grid.
type rowBucket struct {
	members    []*model.Element
	sumCenterY float64
	sumHeight  float64
}

func (b *rowBucket) add(e *model.Element) {
	b.members = append(b.members, e)
	b.sumCenterY += e.CenterY
	b.sumHeight += e.BBox.Height
}

func (b *rowBucket) avgCenterY() float64 {
	return b.sumCenterY / float64(len(b.members))
}

func (b *rowBucket) avgHeight() float64 {
	return b.sumHeight / float64(len(b.members))
}

// Group assembles line elements from word/segment elements. Segments are
// sorted by vertical midpoint and greedily assigned to the first row bucket
// whose running average midpoint is within half the bucket's average height;
// each bucket is then split on oversized horizontal gaps and height
// mismatches. Line confidence is the average over its segments; orientation
// is inherited from the first segment.
func (g *LineGrouper) Group(segments []*model.Element) []*model.Element {
	if len(segments) == 0 {
		return nil
	}

	sorted := make([]*model.Element, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CenterY < sorted[j].CenterY
	})

	var buckets []*rowBucket
	for _, seg := range sorted {
		placed := false
		for _, b := range buckets {
			tolerance := b.avgHeight() * g.config.BucketScale
			if absFloat(seg.CenterY-b.avgCenterY()) <= tolerance {
				b.add(seg)
				placed = true
				break
			}
		}
		if !placed {
			b := &rowBucket{}
			b.add(seg)
			buckets = append(buckets, b)
		}
	}

	var lines []*model.Element
	for _, b := range buckets {
		lines = append(lines, g.splitBucket(b.members)...)
	}

	return lines
}

// splitBucket scans one row bucket left to right and closes the current line
// wherever the gap to the next segment exceeds the glue threshold or the
// height-similarity gate fails.
func (g *LineGrouper) splitBucket(segments []*model.Element) []*model.Element {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].BBox.X < segments[j].BBox.X
	})

	var lines []*model.Element
	var line *model.Element

	for _, seg := range segments {
		if line == nil {
			line = model.NewGroup(model.KindLine, seg)
			continue
		}

		prev := line.LastChild()
		threshold := (prev.BBox.Height + seg.BBox.Height) / 2 * g.config.Glue
		gap := seg.BBox.Left() - line.BBox.Right()

		if gap > threshold || !heightsSimilar(prev.BBox, seg.BBox, g.config.HeightSimilarity) {
			lines = append(lines, line)
			line = model.NewGroup(model.KindLine, seg)
			continue
		}

		line.Absorb(seg, g.config.Separator)
	}

	if line != nil {
		lines = append(lines, line)
	}

	return lines
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
