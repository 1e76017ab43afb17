package conapi

import "encoding/binary"

// The Encode helpers lay a union payload out the way the device does,
// so a Fake can be fed records that are byte-identical to what the
// real device would deliver. Production code only ever decodes.

func boolPayload(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// EncodeKeyEvent builds a native key record.
func EncodeKeyEvent(keyDown bool, repeat, virtualKey, scanCode, char uint16, controlKeyState uint32) InputRecord {
	rec := InputRecord{EventType: KeyEvent}
	binary.LittleEndian.PutUint32(rec.Event[0:4], boolPayload(keyDown))
	binary.LittleEndian.PutUint16(rec.Event[4:6], repeat)
	binary.LittleEndian.PutUint16(rec.Event[6:8], virtualKey)
	binary.LittleEndian.PutUint16(rec.Event[8:10], scanCode)
	binary.LittleEndian.PutUint16(rec.Event[10:12], char)
	binary.LittleEndian.PutUint32(rec.Event[12:16], controlKeyState)
	return rec
}

// EncodeMouseEvent builds a native mouse record.
func EncodeMouseEvent(pos Coord, buttonState, controlKeyState, eventFlags uint32) InputRecord {
	rec := InputRecord{EventType: MouseEvent}
	binary.LittleEndian.PutUint16(rec.Event[0:2], uint16(pos.X))
	binary.LittleEndian.PutUint16(rec.Event[2:4], uint16(pos.Y))
	binary.LittleEndian.PutUint32(rec.Event[4:8], buttonState)
	binary.LittleEndian.PutUint32(rec.Event[8:12], controlKeyState)
	binary.LittleEndian.PutUint32(rec.Event[12:16], eventFlags)
	return rec
}

// EncodeWindowBufferSizeEvent builds a native resize record.
func EncodeWindowBufferSizeEvent(size Coord) InputRecord {
	rec := InputRecord{EventType: WindowBufferSizeEvent}
	binary.LittleEndian.PutUint16(rec.Event[0:2], uint16(size.X))
	binary.LittleEndian.PutUint16(rec.Event[2:4], uint16(size.Y))
	return rec
}

// EncodeMenuEvent builds a native menu record.
func EncodeMenuEvent(commandID uint32) InputRecord {
	rec := InputRecord{EventType: MenuEvent}
	binary.LittleEndian.PutUint32(rec.Event[0:4], commandID)
	return rec
}

// EncodeFocusEvent builds a native focus record.
func EncodeFocusEvent(setFocus bool) InputRecord {
	rec := InputRecord{EventType: FocusEvent}
	binary.LittleEndian.PutUint32(rec.Event[0:4], boolPayload(setFocus))
	return rec
}
