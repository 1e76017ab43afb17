package console

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 reports that bytes handed to WriteCharBuffer are not
// valid UTF-8. This is local validation: no device call has happened.
var ErrInvalidUTF8 = errors.New("console: buffer is not valid UTF-8")

// ErrDeviceUnavailable reports that no console channel could be
// resolved when constructing a Console.
var ErrDeviceUnavailable = errors.New("console: no console device available")

// DeviceCallError reports that a device call returned its failure
// signal. Err carries the platform's last-error value verbatim. This
// layer never retries; whether the failure is transient is the
// caller's call.
type DeviceCallError struct {
	Call string
	Err  error
}

func (e *DeviceCallError) Error() string {
	return fmt.Sprintf("console: %s: %v", e.Call, e.Err)
}

func (e *DeviceCallError) Unwrap() error {
	return e.Err
}

func deviceErr(call string, err error) error {
	return &DeviceCallError{Call: call, Err: err}
}
