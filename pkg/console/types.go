package console

import "github.com/conio/wincon/internal/conapi"

// Coord addresses one character cell in the console's screen buffer.
// Coordinates are zero-based and must fit the device's signed 16-bit
// fields; values outside that range are a programming error, not a
// runtime condition this layer reports.
type Coord struct {
	X int16
	Y int16
}

func coordFromNative(c conapi.Coord) Coord {
	return Coord{X: c.X, Y: c.Y}
}

func (c Coord) native() conapi.Coord {
	return conapi.Coord{X: c.X, Y: c.Y}
}

// WindowPositions describes the visible window rectangle inside the
// screen buffer by its four edge coordinates. Left ≤ Right and Top ≤
// Bottom are not enforced here; a caller violating them gets whatever
// the device reports.
type WindowPositions struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

func windowFromNative(r conapi.SmallRect) WindowPositions {
	return WindowPositions{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func (w WindowPositions) native() conapi.SmallRect {
	return conapi.SmallRect{Left: w.Left, Top: w.Top, Right: w.Right, Bottom: w.Bottom}
}

// Character attribute bits accepted by SetTextAttribute and
// FillWithAttribute, from the device's character attributes table.
const (
	ForegroundBlue      uint16 = 0x0001
	ForegroundGreen     uint16 = 0x0002
	ForegroundRed       uint16 = 0x0004
	ForegroundIntensity uint16 = 0x0008
	BackgroundBlue      uint16 = 0x0010
	BackgroundGreen     uint16 = 0x0020
	BackgroundRed       uint16 = 0x0040
	BackgroundIntensity uint16 = 0x0080
	ReverseVideo        uint16 = 0x4000
	Underscore          uint16 = 0x8000
)
