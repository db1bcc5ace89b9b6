package model

// Kind represents the granularity of a text element.
type Kind int

const (
	KindCharacter Kind = iota
	KindWord
	KindLine
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindWord:
		return "word"
	case KindLine:
		return "line"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Orientation represents the writing direction of a text element.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation converts a provider orientation string to an Orientation.
// Unrecognized values map to OrientationUnknown.
func ParseOrientation(s string) Orientation {
	switch s {
	case "horizontal":
		return OrientationHorizontal
	case "vertical":
		return OrientationVertical
	default:
		return OrientationUnknown
	}
}

// Element is the uniform text entity used at every granularity of the
// pipeline: characters, words, lines, and paragraphs. Composite elements own
// their children outright; the tree is built strictly bottom-up and lives
// only for the duration of one processing run.
type Element struct {
	// Text is the concatenated recognized content.
	Text string

	// Confidence is the normalized recognition confidence in [0,1].
	Confidence float64

	// BBox is the bounding box. For composites it is always the union of the
	// children's boxes; for leaves it is the extent of the source polygon.
	BBox BBox

	// Vertices is the original polygon from the provider. Retained on leaves
	// for bounds computation; composites leave it nil.
	Vertices []Point

	// Orientation is inherited from the source record or the first child.
	Orientation Orientation

	// Kind is the element granularity.
	Kind Kind

	// Children are the constituent elements, in reading order.
	Children []*Element

	// CenterY caches the vertical midpoint used as a clustering key.
	CenterY float64

	// Foreground and Background carry optional per-fragment color
	// annotations from the provider.
	Foreground *ColorInfo
	Background *ColorInfo

	// Processed marks fragments that are already at word/line granularity
	// and can skip character grouping.
	Processed bool
}

// NewLeaf creates a leaf element from a source polygon. The bounding box is
// the min/max extent over all polygon points.
func NewLeaf(text string, confidence float64, vertices []Point, kind Kind, orientation Orientation) *Element {
	bbox := BBoxFromPoints(vertices)
	return &Element{
		Text:        text,
		Confidence:  confidence,
		BBox:        bbox,
		Vertices:    vertices,
		Orientation: orientation,
		Kind:        kind,
		CenterY:     bbox.CenterY(),
	}
}

// NewGroup creates a composite element of the given kind seeded with a single
// child. The group inherits the child's text, bounds, and orientation.
func NewGroup(kind Kind, first *Element) *Element {
	return &Element{
		Text:        first.Text,
		Confidence:  first.Confidence,
		BBox:        first.BBox,
		Orientation: first.Orientation,
		Kind:        kind,
		Children:    []*Element{first},
		CenterY:     first.BBox.CenterY(),
	}
}

// Absorb merges a child into the composite: the child's text is appended
// using the given separator, the bounding box grows to the union, and the
// cached center is refreshed. Confidence is re-averaged over all children.
func (e *Element) Absorb(child *Element, separator string) {
	e.Text += separator + child.Text
	e.BBox = e.BBox.Union(child.BBox)
	e.Children = append(e.Children, child)
	e.CenterY = e.BBox.CenterY()
	e.Confidence = e.AverageConfidence()
}

// AverageConfidence returns the mean confidence over direct children, or the
// element's own confidence when it has none.
func (e *Element) AverageConfidence() float64 {
	if len(e.Children) == 0 {
		return e.Confidence
	}

	total := 0.0
	for _, c := range e.Children {
		total += c.Confidence
	}
	return total / float64(len(e.Children))
}

// LineCount returns the number of direct children, or 1 for a leaf. For a
// paragraph this is the number of constituent lines.
func (e *Element) LineCount() int {
	if len(e.Children) == 0 {
		return 1
	}
	return len(e.Children)
}

// LastChild returns the most recently absorbed child, or nil for a leaf.
func (e *Element) LastChild() *Element {
	if len(e.Children) == 0 {
		return nil
	}
	return e.Children[len(e.Children)-1]
}

// Walk visits the element and all descendants in depth-first order.
func (e *Element) Walk(visit func(*Element)) {
	if e == nil {
		return
	}
	visit(e)
	for _, c := range e.Children {
		c.Walk(visit)
	}
}
