package console

import (
	"encoding/binary"

	"github.com/conio/wincon/internal/conapi"
)

// InputRecord is one discrete event read from the console input queue.
// It is a sealed variant: the concrete types are KeyEventRecord,
// MouseEventRecord, WindowBufferSizeRecord, FocusEventRecord,
// MenuEventRecord and UnknownEventRecord. Records are produced only by
// reading from the device; this package never writes them back.
type InputRecord interface {
	inputRecord()
}

// KeyEventRecord reports a key press or release.
type KeyEventRecord struct {
	// KeyDown is true for a press and autorepeat, false for a release.
	KeyDown         bool
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	// Char is the character the key translates to, zero when it has no
	// translation. One UTF-16 unit wide at the device.
	Char            rune
	ControlKeyState uint32
}

// MouseEventRecord reports mouse movement or button activity.
type MouseEventRecord struct {
	// Position is in cell coordinates, not pixels.
	Position        Coord
	ButtonState     uint32
	ControlKeyState uint32
	EventFlags      uint32
}

// WindowBufferSizeRecord reports a change of the screen buffer size.
type WindowBufferSizeRecord struct {
	Size Coord
}

// FocusEventRecord reports the console gaining or losing focus.
type FocusEventRecord struct {
	SetFocus bool
}

// MenuEventRecord reports a console menu command.
type MenuEventRecord struct {
	CommandID uint32
}

// UnknownEventRecord carries the tag of a record kind this layer does
// not decode.
type UnknownEventRecord struct {
	EventType uint16
}

func (KeyEventRecord) inputRecord()         {}
func (MouseEventRecord) inputRecord()       {}
func (WindowBufferSizeRecord) inputRecord() {}
func (FocusEventRecord) inputRecord()       {}
func (MenuEventRecord) inputRecord()        {}
func (UnknownEventRecord) inputRecord()     {}

// decodeInputRecord converts one native record into its variant. The
// union payload is little-endian; each field sits at the offset the
// device's record layout fixes for it.
func decodeInputRecord(rec conapi.InputRecord) InputRecord {
	p := rec.Event[:]
	switch rec.EventType {
	case conapi.KeyEvent:
		return KeyEventRecord{
			KeyDown:         binary.LittleEndian.Uint32(p[0:4]) != 0,
			RepeatCount:     binary.LittleEndian.Uint16(p[4:6]),
			VirtualKeyCode:  binary.LittleEndian.Uint16(p[6:8]),
			VirtualScanCode: binary.LittleEndian.Uint16(p[8:10]),
			Char:            rune(binary.LittleEndian.Uint16(p[10:12])),
			ControlKeyState: binary.LittleEndian.Uint32(p[12:16]),
		}
	case conapi.MouseEvent:
		return MouseEventRecord{
			Position: Coord{
				X: int16(binary.LittleEndian.Uint16(p[0:2])),
				Y: int16(binary.LittleEndian.Uint16(p[2:4])),
			},
			ButtonState:     binary.LittleEndian.Uint32(p[4:8]),
			ControlKeyState: binary.LittleEndian.Uint32(p[8:12]),
			EventFlags:      binary.LittleEndian.Uint32(p[12:16]),
		}
	case conapi.WindowBufferSizeEvent:
		return WindowBufferSizeRecord{
			Size: Coord{
				X: int16(binary.LittleEndian.Uint16(p[0:2])),
				Y: int16(binary.LittleEndian.Uint16(p[2:4])),
			},
		}
	case conapi.MenuEvent:
		return MenuEventRecord{
			CommandID: binary.LittleEndian.Uint32(p[0:4]),
		}
	case conapi.FocusEvent:
		return FocusEventRecord{
			SetFocus: binary.LittleEndian.Uint32(p[0:4]) != 0,
		}
	}
	return UnknownEventRecord{EventType: rec.EventType}
}
