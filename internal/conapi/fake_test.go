package conapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeFillClampsAndWraps(t *testing.T) {
	f := NewFakeSize(10, 3)

	// Fill past the row end: wraps to the next row.
	n, err := f.FillConsoleOutputCharacter(1, '#', 4, Coord{X: 8, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(4), n)
	assert.Equal(t, byte('#'), f.CharAt(9, 0))
	assert.Equal(t, byte('#'), f.CharAt(0, 1))
	assert.Equal(t, byte('#'), f.CharAt(1, 1))
	assert.Equal(t, byte(' '), f.CharAt(2, 1))

	// Fill past the buffer end: clamps.
	n, err = f.FillConsoleOutputCharacter(1, '!', 99, Coord{X: 5, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), n)
}

func TestFakeWindowValidation(t *testing.T) {
	f := NewFakeSize(80, 24)

	require.NoError(t, f.SetConsoleWindowInfo(1, true, SmallRect{Left: 10, Top: 5, Right: 49, Bottom: 14}))
	assert.Equal(t, SmallRect{Left: 10, Top: 5, Right: 49, Bottom: 14}, f.Window())

	// Relative deltas apply against the current window.
	require.NoError(t, f.SetConsoleWindowInfo(1, false, SmallRect{Left: -10, Top: -5, Right: -10, Bottom: -5}))
	assert.Equal(t, SmallRect{Left: 0, Top: 0, Right: 39, Bottom: 9}, f.Window())

	assert.Error(t, f.SetConsoleWindowInfo(1, true, SmallRect{Left: 0, Top: 0, Right: 80, Bottom: 9}))
	assert.Error(t, f.SetConsoleWindowInfo(1, true, SmallRect{Left: 20, Top: 0, Right: 10, Bottom: 9}))
	assert.Error(t, f.SetConsoleWindowInfo(1, false, SmallRect{Left: -1, Top: 0, Right: 0, Bottom: 0}))
}

func TestFakeReadConsumesQueueInOrder(t *testing.T) {
	f := NewFake()
	f.QueueInput(EncodeMenuEvent(1), EncodeMenuEvent(2), EncodeMenuEvent(3))

	buf := make([]InputRecord, 2)
	n, err := f.ReadConsoleInput(1, buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	assert.Equal(t, EncodeMenuEvent(1), buf[0])
	assert.Equal(t, EncodeMenuEvent(2), buf[1])
	assert.Equal(t, 1, f.Pending())
}

func TestFakeMaxBatchForcesShortRead(t *testing.T) {
	f := NewFake()
	f.MaxBatch = 1
	f.QueueInput(EncodeMenuEvent(1), EncodeMenuEvent(2))

	buf := make([]InputRecord, 2)
	n, err := f.ReadConsoleInput(1, buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)
	assert.Equal(t, 1, f.Pending())
}
