package model

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorInfo carries a representative color for a text region, as reported by
// the OCR provider's color analysis: 8-bit RGB components, a hex rendering,
// and the share of region pixels the color covers.
type ColorInfo struct {
	RGB        [3]int
	Hex        string
	Percentage float64
}

// Color converts the RGB components to a colorful.Color with channels in
// [0,1], clamped to the valid range.
func (c ColorInfo) Color() colorful.Color {
	return colorful.Color{
		R: float64(c.RGB[0]) / 255.0,
		G: float64(c.RGB[1]) / 255.0,
		B: float64(c.RGB[2]) / 255.0,
	}.Clamped()
}

// minColorWeight keeps zero-confidence fragments from vanishing entirely
// from the aggregate.
const minColorWeight = 0.1

// AggregateForeground computes a confidence-weighted average of all
// foreground color annotations found in the element tree. Returns nil when
// no fragment carries one.
func AggregateForeground(root *Element) *ColorInfo {
	return aggregateColors(root, func(e *Element) *ColorInfo { return e.Foreground })
}

// AggregateBackground computes a confidence-weighted average of all
// background color annotations found in the element tree. Returns nil when
// no fragment carries one.
func AggregateBackground(root *Element) *ColorInfo {
	return aggregateColors(root, func(e *Element) *ColorInfo { return e.Background })
}

// aggregateColors walks the tree and blends every annotation reachable via
// pick. Each fragment contributes with weight max(0.1, confidence). RGB
// channels are weighted-averaged and clamped to [0,255]. The first explicit
// hex string encountered is preserved verbatim; otherwise the hex is
// recomputed from the averaged channels.
func aggregateColors(root *Element, pick func(*Element) *ColorInfo) *ColorInfo {
	var (
		sumR, sumG, sumB float64
		sumPct           float64
		totalWeight      float64
		firstHex         string
	)

	root.Walk(func(e *Element) {
		info := pick(e)
		if info == nil {
			return
		}

		weight := math.Max(minColorWeight, e.Confidence)
		sumR += float64(info.RGB[0]) * weight
		sumG += float64(info.RGB[1]) * weight
		sumB += float64(info.RGB[2]) * weight
		sumPct += info.Percentage * weight
		totalWeight += weight

		if firstHex == "" && info.Hex != "" {
			firstHex = info.Hex
		}
	})

	if totalWeight == 0 {
		return nil
	}

	result := &ColorInfo{
		RGB: [3]int{
			clampChannel(sumR / totalWeight),
			clampChannel(sumG / totalWeight),
			clampChannel(sumB / totalWeight),
		},
		Percentage: sumPct / totalWeight,
	}

	if firstHex != "" {
		result.Hex = firstHex
	} else {
		result.Hex = result.Color().Hex()
	}

	return result
}

// clampChannel rounds a channel value and clamps it to [0,255].
func clampChannel(v float64) int {
	c := int(math.Round(v))
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}
