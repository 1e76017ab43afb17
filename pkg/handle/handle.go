// Package handle resolves logical console channels to device handles
// and owns their lifetime. Code that merely issues calls against a
// channel holds a plain Handle value and must never close it; code
// that opened a channel itself holds an Owned and closes it exactly
// once.
package handle

import "sync"

// Kind names a logical console channel.
type Kind int

const (
	// Input is the process's standard input channel.
	Input Kind = iota
	// Output is the process's standard output channel.
	Output
	// Error is the process's standard error channel.
	Error
	// CurrentInput is the console's input buffer (CONIN$), reached
	// even when standard input is redirected. Acquire with Open.
	CurrentInput
	// CurrentOutput is the console's active screen buffer (CONOUT$),
	// reached even when standard output is redirected. Acquire with Open.
	CurrentOutput
)

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	case Error:
		return "error"
	case CurrentInput:
		return "current-input"
	case CurrentOutput:
		return "current-output"
	}
	return "unknown"
}

// Handle is an opaque token naming an open console channel. It is a
// plain value: copying it does not duplicate the channel, comparing it
// compares identity, and the holder must not close it.
type Handle uintptr

// FromRaw wraps a platform identifier the caller obtained elsewhere.
// No validation happens here; an invalid identifier is only discovered
// when an operation is attempted on it.
func FromRaw(raw uintptr) Handle {
	return Handle(raw)
}

// Raw returns the platform identifier.
func (h Handle) Raw() uintptr {
	return uintptr(h)
}

// Valid reports whether h is a plausible open handle. It cannot detect
// a stale identifier, only the two values the device uses to mean
// "none".
func (h Handle) Valid() bool {
	return h != 0 && h != Handle(^uintptr(0))
}

// Get resolves a process channel to its Handle. The returned handle
// belongs to the process, not the caller: it must not be closed.
// CurrentInput and CurrentOutput must be acquired with Open instead.
func Get(k Kind) (Handle, error) {
	return get(k)
}

// Owned is a handle whose channel the holder opened and must close.
// Close runs the underlying release at most once; later calls return
// the first result.
type Owned struct {
	Handle

	once     sync.Once
	closeFn  func() error
	closeErr error
}

// Open opens the console's CurrentInput or CurrentOutput buffer and
// hands ownership to the caller.
func Open(k Kind) (*Owned, error) {
	return open(k)
}

// Close releases the channel. Safe to call more than once.
func (o *Owned) Close() error {
	o.once.Do(func() {
		if o.closeFn != nil {
			o.closeErr = o.closeFn()
		}
	})
	return o.closeErr
}
