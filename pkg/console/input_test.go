package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conio/wincon/internal/conapi"
)

func TestDecodeInputRecord(t *testing.T) {
	tests := []struct {
		name   string
		native conapi.InputRecord
		want   InputRecord
	}{
		{
			name:   "key press",
			native: conapi.EncodeKeyEvent(true, 1, 0x26, 72, 0, 0x0008),
			want: KeyEventRecord{
				KeyDown:         true,
				RepeatCount:     1,
				VirtualKeyCode:  0x26,
				VirtualScanCode: 72,
				ControlKeyState: 0x0008,
			},
		},
		{
			name:   "key release",
			native: conapi.EncodeKeyEvent(false, 1, 0x41, 30, 'A', 0x0010),
			want: KeyEventRecord{
				RepeatCount:     1,
				VirtualKeyCode:  0x41,
				VirtualScanCode: 30,
				Char:            'A',
				ControlKeyState: 0x0010,
			},
		},
		{
			name:   "mouse",
			native: conapi.EncodeMouseEvent(conapi.Coord{X: 79, Y: 23}, 0x0002, 0x0004, 0x0001),
			want: MouseEventRecord{
				Position:        Coord{X: 79, Y: 23},
				ButtonState:     0x0002,
				ControlKeyState: 0x0004,
				EventFlags:      0x0001,
			},
		},
		{
			name:   "resize",
			native: conapi.EncodeWindowBufferSizeEvent(conapi.Coord{X: 132, Y: 43}),
			want:   WindowBufferSizeRecord{Size: Coord{X: 132, Y: 43}},
		},
		{
			name:   "focus",
			native: conapi.EncodeFocusEvent(true),
			want:   FocusEventRecord{SetFocus: true},
		},
		{
			name:   "menu",
			native: conapi.EncodeMenuEvent(0xABCD),
			want:   MenuEventRecord{CommandID: 0xABCD},
		},
		{
			name:   "unknown tag",
			native: conapi.InputRecord{EventType: 0x0040},
			want:   UnknownEventRecord{EventType: 0x0040},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeInputRecord(tt.native))
		})
	}
}
