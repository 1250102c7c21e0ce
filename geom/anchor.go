package geom

import "fmt"

// AnchorX names a vertical line of a rectangle: one of its side edges
// or its horizontal center.
type AnchorX uint8

const (
	AnchorXLeft AnchorX = iota
	AnchorXCenter
	AnchorXRight
)

func (a AnchorX) String() string {
	switch a {
	case AnchorXLeft:
		return "Left"
	case AnchorXCenter:
		return "Center"
	case AnchorXRight:
		return "Right"
	default:
		return fmt.Sprintf("AnchorX(%d)", uint8(a))
	}
}

// AnchorY names a horizontal line of a rectangle: its top or bottom
// edge or its vertical center.
type AnchorY uint8

const (
	AnchorYTop AnchorY = iota
	AnchorYCenter
	AnchorYBottom
)

func (a AnchorY) String() string {
	switch a {
	case AnchorYTop:
		return "Top"
	case AnchorYCenter:
		return "Center"
	case AnchorYBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("AnchorY(%d)", uint8(a))
	}
}

// AnchorPoint is a combination of an AnchorX and an AnchorY. The
// value of each constant is 3*y+x, so the conversions in both
// directions are arithmetic.
type AnchorPoint uint8

const (
	TopLeft AnchorPoint = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// AnchorPointOf combines x and y into an AnchorPoint.
func AnchorPointOf(x AnchorX, y AnchorY) AnchorPoint {
	return AnchorPoint(uint8(y)*3 + uint8(x))
}

// X returns the horizontal component of a.
func (a AnchorPoint) X() AnchorX {
	return AnchorX(uint8(a) % 3)
}

// Y returns the vertical component of a.
func (a AnchorPoint) Y() AnchorY {
	return AnchorY(uint8(a) / 3)
}

func (a AnchorPoint) String() string {
	switch a {
	case TopLeft:
		return "TopLeft"
	case TopCenter:
		return "TopCenter"
	case TopRight:
		return "TopRight"
	case CenterLeft:
		return "CenterLeft"
	case Center:
		return "Center"
	case CenterRight:
		return "CenterRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomCenter:
		return "BottomCenter"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("AnchorPoint(%d)", uint8(a))
	}
}
