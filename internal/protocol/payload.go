package protocol

import (
	"encoding/binary"
	"fmt"
)

// PixelPayloadLen is the exact size of a single-cell update payload:
// col u16be, row u16be, then one byte each of R, G, B.
const PixelPayloadLen = 7

// Pixel is a decoded single-cell update.
type Pixel struct {
	Col, Row uint16
	R, G, B  uint8
}

// EncodePixel builds the 7-byte single-cell update payload.
func EncodePixel(p Pixel) []byte {
	buf := make([]byte, 0, PixelPayloadLen)
	buf = binary.BigEndian.AppendUint16(buf, p.Col)
	buf = binary.BigEndian.AppendUint16(buf, p.Row)
	return append(buf, p.R, p.G, p.B)
}

// DecodePixel parses a single-cell update payload. Anything but exactly
// 7 bytes fails with ErrInvalidPixelPayload.
func DecodePixel(payload []byte) (Pixel, error) {
	if len(payload) != PixelPayloadLen {
		return Pixel{}, fmt.Errorf("%w: %d bytes", ErrInvalidPixelPayload, len(payload))
	}
	return Pixel{
		Col: binary.BigEndian.Uint16(payload[0:2]),
		Row: binary.BigEndian.Uint16(payload[2:4]),
		R:   payload[4],
		G:   payload[5],
		B:   payload[6],
	}, nil
}

// Snapshot is a decoded full-frame update: row-major RGB triples for a
// Width x Height grid.
type Snapshot struct {
	Width, Height uint16
	Pixels        []byte
}

// EncodeSnapshot builds the full-frame payload: w u16be, h u16be, then
// width*height*3 bytes of row-major RGB data.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	want := int(s.Width) * int(s.Height) * 3
	if len(s.Pixels) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for %dx%d",
			ErrFrameSizeMismatch, len(s.Pixels), want, s.Width, s.Height)
	}
	buf := make([]byte, 0, 4+len(s.Pixels))
	buf = binary.BigEndian.AppendUint16(buf, s.Width)
	buf = binary.BigEndian.AppendUint16(buf, s.Height)
	return append(buf, s.Pixels...), nil
}

// DecodeSnapshot parses a full-frame payload. The pixel data must be
// exactly width*height*3 bytes.
func DecodeSnapshot(payload []byte) (Snapshot, error) {
	if len(payload) < 4 {
		return Snapshot{}, fmt.Errorf("%w: %d bytes, need at least 4", ErrFrameSizeMismatch, len(payload))
	}
	w := binary.BigEndian.Uint16(payload[0:2])
	h := binary.BigEndian.Uint16(payload[2:4])
	want := int(w) * int(h) * 3
	if len(payload)-4 != want {
		return Snapshot{}, fmt.Errorf("%w: got %d pixel bytes, want %d for %dx%d",
			ErrFrameSizeMismatch, len(payload)-4, want, w, h)
	}
	return Snapshot{Width: w, Height: h, Pixels: payload[4:]}, nil
}
