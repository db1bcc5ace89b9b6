package model

import "math"

// Point represents a 2D point in image coordinates (origin top-left,
// Y grows downward).
type Point struct {
	X, Y float64
}

// BBox represents an axis-aligned bounding box in image coordinates.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (image coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// BBoxFromPoints creates the minimal bounding box enclosing all points.
// Returns a zero box when no points are given.
func BBoxFromPoints(points []Point) BBox {
	if len(points) == 0 {
		return BBox{}
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// CenterY returns the vertical midpoint, used as a clustering key.
func (b BBox) CenterY() float64 {
	return b.Y + b.Height/2
}

// Union returns the union of two bounding boxes.
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// HorizontalOverlapRatio returns the width of the horizontal overlap between
// the two boxes divided by the smaller box width. Returns a value between 0
// and 1. This is the column-matching gate: two boxes in the same text column
// share most of their horizontal extent even when their widths differ.
func (b BBox) HorizontalOverlapRatio(other BBox) float64 {
	overlap := math.Min(b.Right(), other.Right()) - math.Max(b.Left(), other.Left())
	if overlap <= 0 {
		return 0
	}

	minWidth := math.Min(b.Width, other.Width)
	if minWidth <= 0 {
		return 0
	}

	return overlap / minWidth
}

// HeightSimilarity returns the ratio of the smaller height to the larger
// height of the two boxes, between 0 and 1. Equal heights give 1.
func (b BBox) HeightSimilarity(other BBox) float64 {
	if b.Height <= 0 || other.Height <= 0 {
		return 0
	}
	return math.Min(b.Height, other.Height) / math.Max(b.Height, other.Height)
}

// Quad returns the four corners of the bounding box in clockwise order
// starting at the top-left.
func (b BBox) Quad() [4]Point {
	return [4]Point{
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Left(), Y: b.Bottom()},
	}
}
