// Package conapi is the boundary between the console wrapper and the
// privileged console device calls. It defines the device's native
// record layouts, an API interface with one method per device call,
// and three implementations: the real syscall-backed one on Windows, a
// stub that fails every call elsewhere, and an in-memory Fake for
// tests.
package conapi

import "errors"

// ErrUnsupported is returned by every call of the stub implementation
// on platforms that have no console device.
var ErrUnsupported = errors.New("conapi: console device not supported on this platform")

// Coord matches the device's COORD record: a zero-based cell
// coordinate with signed 16-bit fields.
type Coord struct {
	X int16
	Y int16
}

// SmallRect matches the device's SMALL_RECT record: four edge
// coordinates of a rectangle within the screen buffer.
type SmallRect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// Event type tags carried by InputRecord.EventType.
const (
	KeyEvent              uint16 = 0x0001
	MouseEvent            uint16 = 0x0002
	WindowBufferSizeEvent uint16 = 0x0004
	MenuEvent             uint16 = 0x0008
	FocusEvent            uint16 = 0x0010
)

// InputRecord matches the device's INPUT_RECORD layout: a 16-bit event
// tag, 16 bits of alignment padding, then a 16-byte union payload in
// little-endian byte order. The struct is 20 bytes with the payload at
// offset 4, same as the native record, so a slice of these can be
// handed to the device read call directly.
type InputRecord struct {
	EventType uint16
	_         uint16
	Event     [16]byte
}

// API is the raw device call surface. Every method issues exactly one
// device call against the channel named by h and reports the
// platform's failure signal verbatim. Counts reported by the device
// are returned as-is; callers must not trust them past the buffers
// they handed in.
type API interface {
	SetConsoleTextAttribute(h uintptr, attr uint16) error
	SetConsoleWindowInfo(h uintptr, absolute bool, r SmallRect) error
	// GetLargestConsoleWindowSize has no failure signal; a failed query
	// yields the device's zero value.
	GetLargestConsoleWindowSize(h uintptr) Coord
	FillConsoleOutputCharacter(h uintptr, ch byte, n uint32, at Coord) (uint32, error)
	FillConsoleOutputAttribute(h uintptr, attr uint16, n uint32, at Coord) (uint32, error)
	WriteConsole(h uintptr, units []uint16) (uint32, error)
	GetNumberOfConsoleInputEvents(h uintptr) (uint32, error)
	ReadConsoleInput(h uintptr, buf []InputRecord) (uint32, error)
}

// System returns the platform's device API.
func System() API {
	return system()
}
