package layout

import (
	"math"
	"sort"

	"github.com/SethRobinson/UGTLive-sub001/model"
)

// ParagraphConfig holds configuration for line-to-paragraph grouping.
type ParagraphConfig struct {
	// VerticalGlue multiplies the average height of a paragraph's last line
	// and a candidate line to derive the maximum vertical gap bridged
	// between them (default: 1.0).
	VerticalGlue float64

	// OverlapMin is the minimum horizontal overlap ratio between a candidate
	// line and a paragraph's last line. Two vertically close lines that share
	// little horizontal extent belong to different columns (default: 0.2).
	OverlapMin float64

	// HeightSimilarity is the minimum height ratio between a candidate line
	// and a paragraph's last line. Zero disables the gate.
	HeightSimilarity float64

	// Separator joins line text within a paragraph ("" for CJK, " "
	// otherwise). Ignored when KeepLinefeeds is set.
	Separator string

	// KeepLinefeeds joins paragraph lines with newlines, preserving the
	// original line structure in the output text.
	KeepLinefeeds bool
}

// DefaultParagraphConfig returns sensible default configuration.
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		VerticalGlue:     1.0,
		OverlapMin:       0.2,
		HeightSimilarity: 0,
		Separator:        "",
		KeepLinefeeds:    false,
	}
}

// ParagraphGrouper merges lines vertically into paragraphs while tolerating
// several independently progressing text blocks interleaved by y position,
// such as two on-screen dialogue boxes whose lines alternate in vertical
// order. Each paragraph's most recent line is its match anchor; paragraphs
// that fall out of vertical reach are retired from matching, which keeps the
// scan near-linear instead of quadratic.
type ParagraphGrouper struct {
	config ParagraphConfig
}

// NewParagraphGrouper creates a paragraph grouper with default configuration.
func NewParagraphGrouper() *ParagraphGrouper {
	return &ParagraphGrouper{config: DefaultParagraphConfig()}
}

// NewParagraphGrouperWithConfig creates a paragraph grouper with custom
// configuration.
func NewParagraphGrouperWithConfig(config ParagraphConfig) *ParagraphGrouper {
	return &ParagraphGrouper{config: config}
}

// Group merges line elements into paragraph elements. Lines are processed in
// (top, left) order; each line either joins the best-matching active
// paragraph or starts a new one. The result contains completed plus
// still-active paragraphs, sorted by (top, left).
func (g *ParagraphGrouper) Group(lines []*model.Element) []*model.Element {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]*model.Element, len(lines))
	copy(sorted, lines)
	sortByPosition(sorted)

	separator := g.config.Separator
	if g.config.KeepLinefeeds {
		separator = "\n"
	}

	var active, completed []*model.Element

	for _, line := range sorted {
		if best := g.bestMatch(active, line); best >= 0 {
			active[best].Absorb(line, separator)
		} else {
			active = append(active, model.NewGroup(model.KindParagraph, line))
		}

		active, completed = g.evict(active, completed, line)
	}

	result := append(completed, active...)
	sortByPosition(result)
	return result
}

// bestMatch returns the index of the active paragraph the line fits best, or
// -1 when no paragraph passes all three gates. Among the paragraphs that
// pass, the one minimizing verticalGap + |Δx| wins: the closest column both
// vertically and in indentation, not merely the first match found.
func (g *ParagraphGrouper) bestMatch(active []*model.Element, line *model.Element) int {
	best := -1
	bestScore := math.Inf(1)

	for i, para := range active {
		last := para.LastChild()

		if !heightsSimilar(last.BBox, line.BBox, g.config.HeightSimilarity) {
			continue
		}

		gap := line.BBox.Top() - last.BBox.Bottom()
		maxGap := (last.BBox.Height + line.BBox.Height) / 2 * g.config.VerticalGlue
		if gap > maxGap {
			continue
		}

		if last.BBox.HorizontalOverlapRatio(line.BBox) < g.config.OverlapMin {
			continue
		}

		score := gap + math.Abs(line.BBox.Left()-last.BBox.Left())
		if score < bestScore {
			bestScore = score
			best = i
		}
	}

	return best
}

// evict retires active paragraphs whose last line lies farther above the
// current line's top than lastLine.Height × VerticalGlue × 2. Lines arrive in
// top-to-bottom order, so a paragraph that far behind can never match again;
// retiring it bounds the candidates considered per line while still allowing
// several genuinely concurrent columns.
func (g *ParagraphGrouper) evict(active, completed []*model.Element, line *model.Element) ([]*model.Element, []*model.Element) {
	remaining := active[:0]

	for _, para := range active {
		last := para.LastChild()
		reach := last.BBox.Height * g.config.VerticalGlue * 2
		if line.BBox.Top()-last.BBox.Bottom() > reach {
			completed = append(completed, para)
		} else {
			remaining = append(remaining, para)
		}
	}

	return remaining, completed
}

// sortByPosition orders elements by top edge, then by left edge.
func sortByPosition(elements []*model.Element) {
	sort.SliceStable(elements, func(i, j int) bool {
		if elements[i].BBox.Top() != elements[j].BBox.Top() {
			return elements[i].BBox.Top() < elements[j].BBox.Top()
		}
		return elements[i].BBox.Left() < elements[j].BBox.Left()
	})
}
