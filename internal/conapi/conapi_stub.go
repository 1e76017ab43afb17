//go:build !windows

package conapi

// stubAPI keeps the package compiling on platforms without a console
// device. Every call fails with ErrUnsupported.
type stubAPI struct{}

func system() API { return stubAPI{} }

func (stubAPI) SetConsoleTextAttribute(uintptr, uint16) error {
	return ErrUnsupported
}

func (stubAPI) SetConsoleWindowInfo(uintptr, bool, SmallRect) error {
	return ErrUnsupported
}

func (stubAPI) GetLargestConsoleWindowSize(uintptr) Coord {
	return Coord{}
}

func (stubAPI) FillConsoleOutputCharacter(uintptr, byte, uint32, Coord) (uint32, error) {
	return 0, ErrUnsupported
}

func (stubAPI) FillConsoleOutputAttribute(uintptr, uint16, uint32, Coord) (uint32, error) {
	return 0, ErrUnsupported
}

func (stubAPI) WriteConsole(uintptr, []uint16) (uint32, error) {
	return 0, ErrUnsupported
}

func (stubAPI) GetNumberOfConsoleInputEvents(uintptr) (uint32, error) {
	return 0, ErrUnsupported
}

func (stubAPI) ReadConsoleInput(uintptr, []InputRecord) (uint32, error) {
	return 0, ErrUnsupported
}
