package conapi

import (
	"fmt"
	"sync"
)

// Call names keying injected failures and call counts on a Fake.
const (
	CallSetConsoleTextAttribute       = "SetConsoleTextAttribute"
	CallSetConsoleWindowInfo          = "SetConsoleWindowInfo"
	CallGetLargestConsoleWindowSize   = "GetLargestConsoleWindowSize"
	CallFillConsoleOutputCharacter    = "FillConsoleOutputCharacter"
	CallFillConsoleOutputAttribute    = "FillConsoleOutputAttribute"
	CallWriteConsole                  = "WriteConsole"
	CallGetNumberOfConsoleInputEvents = "GetNumberOfConsoleInputEvents"
	CallReadConsoleInput              = "ReadConsoleInput"
)

// FakeWrite is one WriteConsole call recorded by a Fake, together with
// the text attribute that was in effect when it happened.
type FakeWrite struct {
	Units []uint16
	Attr  uint16
}

// Fake is an in-memory console device for tests. It models one screen
// buffer and one input queue shared by every handle value, the way a
// real console is shared by all handles opened onto it.
type Fake struct {
	mu sync.Mutex

	width  int16
	height int16
	window SmallRect
	attr   uint16
	chars  []byte
	attrs  []uint16
	queue  []InputRecord
	writes []FakeWrite

	calls    map[string]int
	failures map[string]error

	// MaxBatch caps how many records one ReadConsoleInput call returns
	// regardless of the buffer handed in. Zero means no cap. Lets tests
	// exercise the device returning fewer records than requested.
	MaxBatch int
}

// NewFake returns a Fake with an 80×24 screen buffer whose window
// covers the whole buffer.
func NewFake() *Fake {
	return NewFakeSize(80, 24)
}

// NewFakeSize returns a Fake with a w×h screen buffer.
func NewFakeSize(w, h int16) *Fake {
	cells := int(w) * int(h)
	f := &Fake{
		width:    w,
		height:   h,
		window:   SmallRect{Left: 0, Top: 0, Right: w - 1, Bottom: h - 1},
		chars:    make([]byte, cells),
		attrs:    make([]uint16, cells),
		calls:    make(map[string]int),
		failures: make(map[string]error),
	}
	for i := range f.chars {
		f.chars[i] = ' '
	}
	return f
}

// FailWith makes every subsequent invocation of call fail with err.
func (f *Fake) FailWith(call string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[call] = err
}

// Calls reports how many times call has been invoked.
func (f *Fake) Calls(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[call]
}

// QueueInput appends records to the pending input queue.
func (f *Fake) QueueInput(recs ...InputRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, recs...)
}

// Pending returns the number of queued input records.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Window returns the current visible window rectangle.
func (f *Fake) Window() SmallRect {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.window
}

// Attr returns the current text attribute.
func (f *Fake) Attr() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attr
}

// Writes returns every recorded WriteConsole call in order.
func (f *Fake) Writes() []FakeWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FakeWrite, len(f.writes))
	copy(out, f.writes)
	return out
}

// CharAt returns the character stored at (x, y).
func (f *Fake) CharAt(x, y int16) byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chars[int(y)*int(f.width)+int(x)]
}

// AttrAt returns the attribute stored at (x, y).
func (f *Fake) AttrAt(x, y int16) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attrs[int(y)*int(f.width)+int(x)]
}

// begin counts the call and returns any injected failure. Callers hold
// the lock.
func (f *Fake) begin(call string) error {
	f.calls[call]++
	return f.failures[call]
}

func (f *Fake) SetConsoleTextAttribute(_ uintptr, attr uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallSetConsoleTextAttribute); err != nil {
		return err
	}
	f.attr = attr
	return nil
}

func (f *Fake) SetConsoleWindowInfo(_ uintptr, absolute bool, r SmallRect) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallSetConsoleWindowInfo); err != nil {
		return err
	}
	target := r
	if !absolute {
		target = SmallRect{
			Left:   f.window.Left + r.Left,
			Top:    f.window.Top + r.Top,
			Right:  f.window.Right + r.Right,
			Bottom: f.window.Bottom + r.Bottom,
		}
	}
	if target.Left < 0 || target.Top < 0 ||
		target.Left > target.Right || target.Top > target.Bottom ||
		target.Right >= f.width || target.Bottom >= f.height {
		return fmt.Errorf("window rectangle %+v outside %dx%d buffer", target, f.width, f.height)
	}
	f.window = target
	return nil
}

func (f *Fake) GetLargestConsoleWindowSize(_ uintptr) Coord {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[CallGetLargestConsoleWindowSize]++
	return Coord{X: f.width, Y: f.height}
}

// fillSpan validates the start cell and clamps n to the cells left
// between it and the end of the buffer, row-wrapping like the device.
func (f *Fake) fillSpan(at Coord, n uint32) (start, count int, err error) {
	if at.X < 0 || at.Y < 0 || at.X >= f.width || at.Y >= f.height {
		return 0, 0, fmt.Errorf("start coordinate %+v outside %dx%d buffer", at, f.width, f.height)
	}
	start = int(at.Y)*int(f.width) + int(at.X)
	count = len(f.chars) - start
	if int(n) < count {
		count = int(n)
	}
	return start, count, nil
}

func (f *Fake) FillConsoleOutputCharacter(_ uintptr, ch byte, n uint32, at Coord) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallFillConsoleOutputCharacter); err != nil {
		return 0, err
	}
	start, count, err := f.fillSpan(at, n)
	if err != nil {
		return 0, err
	}
	for i := start; i < start+count; i++ {
		f.chars[i] = ch
	}
	return uint32(count), nil
}

func (f *Fake) FillConsoleOutputAttribute(_ uintptr, attr uint16, n uint32, at Coord) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallFillConsoleOutputAttribute); err != nil {
		return 0, err
	}
	start, count, err := f.fillSpan(at, n)
	if err != nil {
		return 0, err
	}
	for i := start; i < start+count; i++ {
		f.attrs[i] = attr
	}
	return uint32(count), nil
}

func (f *Fake) WriteConsole(_ uintptr, units []uint16) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallWriteConsole); err != nil {
		return 0, err
	}
	w := FakeWrite{Units: make([]uint16, len(units)), Attr: f.attr}
	copy(w.Units, units)
	f.writes = append(f.writes, w)
	return uint32(len(units)), nil
}

func (f *Fake) GetNumberOfConsoleInputEvents(_ uintptr) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallGetNumberOfConsoleInputEvents); err != nil {
		return 0, err
	}
	return uint32(len(f.queue)), nil
}

func (f *Fake) ReadConsoleInput(_ uintptr, buf []InputRecord) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.begin(CallReadConsoleInput); err != nil {
		return 0, err
	}
	n := len(buf)
	if len(f.queue) < n {
		n = len(f.queue)
	}
	if f.MaxBatch > 0 && n > f.MaxBatch {
		n = f.MaxBatch
	}
	copy(buf, f.queue[:n])
	f.queue = f.queue[n:]
	return uint32(n), nil
}
