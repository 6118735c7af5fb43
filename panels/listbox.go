package panels

import "image"

// ListBox is a fixed-height window of rows over a longer list of entries.
type ListBox struct {
	elements     []string
	maxDisplayed int
	scrollIndex  int
	origin       image.Point
	width        int
	rowHeight    int
}

// NewListBox creates a list box whose top-left corner is origin.
func NewListBox(origin image.Point, width, rowHeight, maxDisplayed int, elements []string) *ListBox {
	return &ListBox{
		elements:     elements,
		maxDisplayed: maxDisplayed,
		origin:       origin,
		width:        width,
		rowHeight:    rowHeight,
	}
}

func (l *ListBox) Len() int          { return len(l.elements) }
func (l *ListBox) MaxDisplayed() int { return l.maxDisplayed }
func (l *ListBox) ScrollIndex() int  { return l.scrollIndex }

func (l *ListBox) maxScrollIndex() int {
	return max(0, len(l.elements)-l.maxDisplayed)
}

// ScrollUp moves the window one row toward the start. No-op at the top.
func (l *ListBox) ScrollUp() {
	if l.scrollIndex > 0 {
		l.scrollIndex--
	}
}

// ScrollDown moves the window one row toward the end. No-op at the bottom.
func (l *ListBox) ScrollDown() {
	if l.scrollIndex < l.maxScrollIndex() {
		l.scrollIndex++
	}
}

// Bounds is the area covered by the visible rows.
func (l *ListBox) Bounds() image.Rectangle {
	return image.Rect(l.origin.X, l.origin.Y,
		l.origin.X+l.width, l.origin.Y+l.maxDisplayed*l.rowHeight)
}

func (l *ListBox) Contains(p image.Point) bool {
	return p.In(l.Bounds())
}

// ClickedIndex returns the element index under p. It is not bounds-checked
// against Len; rows past the end of a short list yield indices >= Len.
func (l *ListBox) ClickedIndex(p image.Point) int {
	return l.scrollIndex + (p.Y-l.origin.Y)/l.rowHeight
}

// Visible returns the entries currently shown, top row first.
func (l *ListBox) Visible() []string {
	end := min(l.scrollIndex+l.maxDisplayed, len(l.elements))
	return l.elements[l.scrollIndex:end]
}

// RowOrigin returns the top-left corner of the visible row i.
func (l *ListBox) RowOrigin(i int) image.Point {
	return l.origin.Add(image.Pt(0, i*l.rowHeight))
}
