//go:build windows

package conapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procSetConsoleTextAttribute       = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleWindowInfo          = kernel32.NewProc("SetConsoleWindowInfo")
	procGetLargestConsoleWindowSize   = kernel32.NewProc("GetLargestConsoleWindowSize")
	procFillConsoleOutputCharacterA   = kernel32.NewProc("FillConsoleOutputCharacterA")
	procFillConsoleOutputAttribute    = kernel32.NewProc("FillConsoleOutputAttribute")
	procWriteConsoleW                 = kernel32.NewProc("WriteConsoleW")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procReadConsoleInputW             = kernel32.NewProc("ReadConsoleInputW")
)

type winAPI struct{}

func system() API { return winAPI{} }

// coordArg packs a Coord into the single argument register the device
// calls take COORD in.
func coordArg(c Coord) uintptr {
	return uintptr(uint32(uint16(c.X)) | uint32(uint16(c.Y))<<16)
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func (winAPI) SetConsoleTextAttribute(h uintptr, attr uint16) error {
	r, _, err := procSetConsoleTextAttribute.Call(h, uintptr(attr))
	if r == 0 {
		return err
	}
	return nil
}

func (winAPI) SetConsoleWindowInfo(h uintptr, absolute bool, rect SmallRect) error {
	r, _, err := procSetConsoleWindowInfo.Call(h, boolArg(absolute), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return err
	}
	return nil
}

func (winAPI) GetLargestConsoleWindowSize(h uintptr) Coord {
	// No failure signal: a failed query returns the packed zero COORD.
	r, _, _ := procGetLargestConsoleWindowSize.Call(h)
	return Coord{X: int16(uint16(r)), Y: int16(uint16(r >> 16))}
}

func (winAPI) FillConsoleOutputCharacter(h uintptr, ch byte, n uint32, at Coord) (uint32, error) {
	var written uint32
	r, _, err := procFillConsoleOutputCharacterA.Call(
		h,
		uintptr(ch),
		uintptr(n),
		coordArg(at),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return 0, err
	}
	return written, nil
}

func (winAPI) FillConsoleOutputAttribute(h uintptr, attr uint16, n uint32, at Coord) (uint32, error) {
	var written uint32
	r, _, err := procFillConsoleOutputAttribute.Call(
		h,
		uintptr(attr),
		uintptr(n),
		coordArg(at),
		uintptr(unsafe.Pointer(&written)),
	)
	if r == 0 {
		return 0, err
	}
	return written, nil
}

func (winAPI) WriteConsole(h uintptr, units []uint16) (uint32, error) {
	if len(units) == 0 {
		return 0, nil
	}
	var written uint32
	r, _, err := procWriteConsoleW.Call(
		h,
		uintptr(unsafe.Pointer(&units[0])),
		uintptr(uint32(len(units))),
		uintptr(unsafe.Pointer(&written)),
		0,
	)
	if r == 0 {
		return 0, err
	}
	return written, nil
}

func (winAPI) GetNumberOfConsoleInputEvents(h uintptr) (uint32, error) {
	var pending uint32
	r, _, err := procGetNumberOfConsoleInputEvents.Call(h, uintptr(unsafe.Pointer(&pending)))
	if r == 0 {
		return 0, err
	}
	return pending, nil
}

func (winAPI) ReadConsoleInput(h uintptr, buf []InputRecord) (uint32, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var read uint32
	r, _, err := procReadConsoleInputW.Call(
		h,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(uint32(len(buf))),
		uintptr(unsafe.Pointer(&read)),
	)
	if r == 0 {
		return 0, err
	}
	return read, nil
}
