// Package hittest turns a pointer position into a semantic position on an element:
// which handle it is near, whether it lies on a line, or whether it is inside.
package hittest

// Tag names the part of an element a point is on. The zero value means the point
// misses the element.
type Tag string

const (
	None Tag = ""

	Start  Tag = "start"
	End    Tag = "end"
	OnLine Tag = "onLine"

	TopLeft     Tag = "tl"
	TopRight    Tag = "tr"
	BottomLeft  Tag = "bl"
	BottomRight Tag = "br"

	Top    Tag = "top"
	Bottom Tag = "bottom"
	Left   Tag = "left"
	Right  Tag = "right"

	Inside Tag = "inside"
)

// IsHandle reports whether the tag addresses a resize handle rather than the body
// of an element.
func (t Tag) IsHandle() bool {
	switch t {
	case None, Inside, OnLine:
		return false
	}
	return true
}

// CursorFor returns the CSS cursor a host should show while hovering a tag.
func CursorFor(t Tag) string {
	switch t {
	case TopLeft, BottomRight, Start, End:
		return "nwse-resize"
	case TopRight, BottomLeft:
		return "nesw-resize"
	case Top, Bottom:
		return "ns-resize"
	case Left, Right:
		return "ew-resize"
	case OnLine:
		return "move"
	case Inside:
		return "grab"
	default:
		return "auto"
	}
}
