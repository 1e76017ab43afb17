//go:build !windows

package handle

import (
	"fmt"

	"github.com/conio/wincon/internal/conapi"
)

func get(k Kind) (Handle, error) {
	return 0, fmt.Errorf("handle: resolve %v channel: %w", k, conapi.ErrUnsupported)
}

func open(k Kind) (*Owned, error) {
	return nil, fmt.Errorf("handle: open %v channel: %w", k, conapi.ErrUnsupported)
}
