package layout

import (
	"math"
	"sort"

	"github.com/SethRobinson/UGTLive-sub001/model"
)

// WordConfig holds configuration for character-to-word grouping.
type WordConfig struct {
	// GapScale multiplies the average glyph height to derive the maximum
	// horizontal gap between characters of the same word (default: 0.8,
	// the CJK policy value).
	GapScale float64

	// RowScale multiplies the average glyph height to derive the height of
	// the vertical quantization rows (default: 0.5).
	RowScale float64

	// HeightSimilarity is the minimum height ratio between a growing word
	// and the next character for them to merge. Zero disables the gate.
	HeightSimilarity float64
}

// DefaultWordConfig returns sensible default configuration.
func DefaultWordConfig() WordConfig {
	return WordConfig{
		GapScale:         0.8,
		RowScale:         0.5,
		HeightSimilarity: 0,
	}
}

// WordGrouper merges adjacent character-level fragments into words. It only
// applies to providers that emit per-glyph output; pre-formed words and lines
// bypass this stage.
type WordGrouper struct {
	config WordConfig
}

// NewWordGrouper creates a word grouper with default configuration.
func NewWordGrouper() *WordGrouper {
	return &WordGrouper{config: DefaultWordConfig()}
}

// NewWordGrouperWithConfig creates a word grouper with custom configuration.
func NewWordGrouperWithConfig(config WordConfig) *WordGrouper {
	return &WordGrouper{config: config}
}

// Group merges character fragments into word elements. Characters are
// quantized into coarse rows by their vertical midpoint, then each row is
// scanned left to right, starting a new word whenever the horizontal gap
// exceeds the threshold or the height-similarity gate fails. Character text
// is concatenated with no separator.
func (g *WordGrouper) Group(chars []*model.Element) []*model.Element {
	if len(chars) == 0 {
		return nil
	}

	avgHeight := averageHeight(chars)
	if avgHeight <= 0 {
		avgHeight = 1
	}

	gapThreshold := avgHeight * g.config.GapScale
	rowHeight := avgHeight * g.config.RowScale
	if rowHeight <= 0 {
		rowHeight = 1
	}

	// Coarse vertical quantization, not a proximity search: every character
	// lands in the row bucket round(centerY / rowHeight).
	rows := make(map[int][]*model.Element)
	for _, ch := range chars {
		key := int(math.Round(ch.CenterY / rowHeight))
		rows[key] = append(rows[key], ch)
	}

	keys := make([]int, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var words []*model.Element
	for _, key := range keys {
		words = append(words, g.groupRow(rows[key], gapThreshold)...)
	}

	return words
}

// groupRow performs the greedy left-to-right scan over one quantized row.
func (g *WordGrouper) groupRow(row []*model.Element, gapThreshold float64) []*model.Element {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].BBox.X < row[j].BBox.X
	})

	var words []*model.Element
	var word *model.Element

	for _, ch := range row {
		if word == nil {
			word = newWord(ch)
			continue
		}

		gap := ch.BBox.Left() - word.BBox.Right()
		if gap <= gapThreshold && heightsSimilar(word.BBox, ch.BBox, g.config.HeightSimilarity) {
			word.Absorb(ch, "")
		} else {
			words = append(words, word)
			word = newWord(ch)
		}
	}

	if word != nil {
		words = append(words, word)
	}

	return words
}

// newWord starts a word from its first character.
func newWord(ch *model.Element) *model.Element {
	word := model.NewGroup(model.KindWord, ch)
	word.Processed = true
	return word
}

// averageHeight returns the mean bounding-box height of the elements.
func averageHeight(elements []*model.Element) float64 {
	if len(elements) == 0 {
		return 0
	}

	total := 0.0
	for _, e := range elements {
		total += e.BBox.Height
	}
	return total / float64(len(elements))
}

// heightsSimilar is the height-similarity gate: the ratio of the smaller to
// the larger height must reach minRatio. A zero or negative minRatio always
// passes.
func heightsSimilar(a, b model.BBox, minRatio float64) bool {
	if minRatio <= 0 {
		return true
	}
	return a.HeightSimilarity(b) >= minRatio
}
