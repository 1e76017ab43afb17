//go:build windows

package handle

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func get(k Kind) (Handle, error) {
	var std uint32
	switch k {
	case Input:
		std = windows.STD_INPUT_HANDLE
	case Output:
		std = windows.STD_OUTPUT_HANDLE
	case Error:
		std = windows.STD_ERROR_HANDLE
	default:
		return 0, fmt.Errorf("handle: %v channel is owned, acquire it with Open", k)
	}
	h, err := windows.GetStdHandle(std)
	if err != nil {
		return 0, fmt.Errorf("handle: resolve %v channel: %w", k, err)
	}
	if wrapped := Handle(h); wrapped.Valid() {
		return wrapped, nil
	}
	return 0, fmt.Errorf("handle: no %v channel attached to this process", k)
}

func open(k Kind) (*Owned, error) {
	var name string
	switch k {
	case CurrentInput:
		name = "CONIN$"
	case CurrentOutput:
		name = "CONOUT$"
	default:
		return nil, fmt.Errorf("handle: %v channel is not owned, resolve it with Get", k)
	}
	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("handle: open %s: %w", name, err)
	}
	h, err := windows.CreateFile(
		path,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, fmt.Errorf("handle: open %s: %w", name, err)
	}
	return &Owned{
		Handle:  Handle(h),
		closeFn: func() error { return windows.CloseHandle(h) },
	}, nil
}
