// Package console wraps the Windows console device behind a uniform,
// fallible operation set: attribute-styled cell fills, window geometry
// control, UTF-8 text writes and a drain of the device's input event
// queue. Every operation issues exactly one device call, checks its
// success signal and converts raw output into semantic types before
// returning.
package console

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/conio/wincon/internal/conapi"
	"github.com/conio/wincon/pkg/handle"
)

// Console issues device calls against a single console channel. It
// carries only the handle: channel state such as the current text
// attribute lives in the device, so several Consoles may wrap the same
// Handle and observe each other's effects. Console never closes the
// handle; lifetime belongs to the handle package.
//
// Operations are synchronous and blocking, with no internal
// goroutines, locks or timeouts. Concurrent calls against one Handle
// race at the device; callers needing that must synchronize
// externally.
type Console struct {
	api    conapi.API
	handle handle.Handle
}

// New wraps the process's standard output channel. It fails with
// ErrDeviceUnavailable when no such channel can be resolved.
func New() (*Console, error) {
	h, err := handle.Get(handle.Output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	return From(h), nil
}

// From wraps an existing Handle. Validity is not checked here; an
// invalid handle surfaces as a DeviceCallError on first use.
func From(h handle.Handle) *Console {
	return &Console{api: conapi.System(), handle: h}
}

// FromRaw wraps a raw platform identifier the caller obtained
// elsewhere.
func FromRaw(raw uintptr) *Console {
	return From(handle.FromRaw(raw))
}

// newWith substitutes the device API. Test seam.
func newWith(api conapi.API, h handle.Handle) *Console {
	return &Console{api: api, handle: h}
}

// SetTextAttribute sets the rendering attribute applied to text
// written or echoed after this call. Cells already on screen keep
// theirs.
func (c *Console) SetTextAttribute(attr uint16) error {
	if err := c.api.SetConsoleTextAttribute(c.handle.Raw(), attr); err != nil {
		return deviceErr("SetConsoleTextAttribute", err)
	}
	return nil
}

// SetConsoleInfo moves or resizes the visible window within the screen
// buffer. With absolute true, rect gives the new edge coordinates;
// otherwise rect gives deltas against the current window. The device
// rejects rectangles that leave the buffer.
func (c *Console) SetConsoleInfo(absolute bool, rect WindowPositions) error {
	if err := c.api.SetConsoleWindowInfo(c.handle.Raw(), absolute, rect.native()); err != nil {
		return deviceErr("SetConsoleWindowInfo", err)
	}
	return nil
}

// LargestWindowSize returns the largest window the device could show
// with the current font and display metrics. The underlying call has
// no failure signal; if the query fails the device's zero value comes
// back.
func (c *Console) LargestWindowSize() Coord {
	return coordFromNative(c.api.GetLargestConsoleWindowSize(c.handle.Raw()))
}

// FillWithCharacter writes ch into n consecutive cells starting at
// start, scanning left to right and wrapping at the buffer width. ch
// is narrowed to the device's single-byte character set. The returned
// count is the device's own: it may be less than n when the run passes
// the end of the buffer, which is not an error.
func (c *Console) FillWithCharacter(start Coord, n uint32, ch rune) (uint32, error) {
	written, err := c.api.FillConsoleOutputCharacter(c.handle.Raw(), byte(ch), n, start.native())
	if err != nil {
		return 0, deviceErr("FillConsoleOutputCharacter", err)
	}
	return written, nil
}

// FillWithAttribute is FillWithCharacter for rendering attributes: the
// same cell addressing and count contract, leaving the characters in
// the cells untouched.
func (c *Console) FillWithAttribute(start Coord, n uint32, attr uint16) (uint32, error) {
	written, err := c.api.FillConsoleOutputAttribute(c.handle.Raw(), attr, n, start.native())
	if err != nil {
		return 0, deviceErr("FillConsoleOutputAttribute", err)
	}
	return written, nil
}

// WriteCharBuffer writes UTF-8 text at the current cursor position,
// advancing the cursor as the device decides (wrapping at line ends).
// buf must be valid UTF-8; invalid input returns ErrInvalidUTF8 before
// any device call. The text is re-encoded to the device's UTF-16 and
// written in one call.
//
// The returned count is the UTF-8 byte length of buf, not the UTF-16
// unit count the device itself reports as written. Outside ASCII the
// two dimensions differ; callers comparing against the device's own
// accounting must convert.
func (c *Console) WriteCharBuffer(buf []byte) (int, error) {
	if !utf8.Valid(buf) {
		return 0, ErrInvalidUTF8
	}
	units := utf16.Encode([]rune(string(buf)))
	if _, err := c.api.WriteConsole(c.handle.Raw(), units); err != nil {
		return 0, deviceErr("WriteConsole", err)
	}
	return len(buf), nil
}

// NumberOfConsoleInputEvents returns how many records the device has
// queued, consuming none of them.
func (c *Console) NumberOfConsoleInputEvents() (uint32, error) {
	pending, err := c.api.GetNumberOfConsoleInputEvents(c.handle.Raw())
	if err != nil {
		return 0, deviceErr("GetNumberOfConsoleInputEvents", err)
	}
	return pending, nil
}

// ReadSingleInputEvent pops one record off the input queue and returns
// it decoded, or (nil, nil) when the queue is empty. The pending count
// is checked first so the blocking read is never issued with nothing
// queued; the read itself consumes the record.
func (c *Console) ReadSingleInputEvent() (InputRecord, error) {
	pending, err := c.NumberOfConsoleInputEvents()
	if err != nil {
		return nil, err
	}
	if pending == 0 {
		return nil, nil
	}
	var buf [1]conapi.InputRecord
	read, err := c.api.ReadConsoleInput(c.handle.Raw(), buf[:])
	if err != nil {
		return nil, deviceErr("ReadConsoleInput", err)
	}
	if read == 0 {
		// Another consumer won the race between the count and the read.
		return nil, nil
	}
	return decodeInputRecord(buf[0]), nil
}

// ReadConsoleInput drains the records the device reported pending at
// the time of the call and returns them decoded, in device order. A
// zero pending count returns (0, nil, nil) without issuing the read.
//
// The read is sized to the observed count. The queue may change
// between the count and the read, so the device returning fewer
// records than requested is tolerated; the device claiming more than
// the buffer holds is not, and fails before any record is decoded. On
// failure no records are considered consumed: the platform error is
// forwarded as-is with no guess at how many records the device
// dequeued first.
func (c *Console) ReadConsoleInput() (uint32, []InputRecord, error) {
	pending, err := c.NumberOfConsoleInputEvents()
	if err != nil {
		return 0, nil, err
	}
	if pending == 0 {
		return 0, nil, nil
	}
	buf := make([]conapi.InputRecord, pending)
	read, err := c.api.ReadConsoleInput(c.handle.Raw(), buf)
	if err != nil {
		return 0, nil, deviceErr("ReadConsoleInput", err)
	}
	if int(read) > len(buf) {
		return 0, nil, deviceErr("ReadConsoleInput",
			fmt.Errorf("device reported %d records read into a %d-record buffer", read, len(buf)))
	}
	records := make([]InputRecord, read)
	for i, rec := range buf[:read] {
		records[i] = decodeInputRecord(rec)
	}
	return read, records, nil
}
