package protocol

import (
	"encoding/binary"
	"fmt"
)

// Version is the only wire version this client speaks.
const Version byte = 1

// Flag bits. The client never fragments, so every outbound frame
// carries Start and End together.
const (
	FlagStart byte = 0x01
	FlagEnd   byte = 0x04
	FlagWhole byte = FlagStart | FlagEnd
)

// HeaderLen is the fixed header size: version, type, flags, u32be length.
const HeaderLen = 7

// Frame is one complete wire message.
type Frame struct {
	Version byte
	Type    byte
	Flags   byte
	Payload []byte
}

// Encode builds a single wire frame around payload. The payload length is
// trusted to fit in 32 bits.
func Encode(msgType, flags byte, payload []byte) []byte {
	buf := make([]byte, 0, HeaderLen+len(payload))
	buf = append(buf, Version, msgType, flags)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(payload)))
	return append(buf, payload...)
}

// Decode parses one complete wire frame. The declared payload length must
// match the remaining bytes exactly: short input fails with
// ErrTruncatedPayload, trailing garbage with ErrLengthMismatch.
func Decode(data []byte) (Frame, error) {
	if len(data) < HeaderLen {
		return Frame{}, ErrTruncatedHeader
	}
	if data[0] != Version {
		return Frame{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[0])
	}

	length := int(binary.BigEndian.Uint32(data[3:HeaderLen]))
	rest := len(data) - HeaderLen
	switch {
	case rest < length:
		return Frame{}, fmt.Errorf("%w: declared %d, have %d", ErrTruncatedPayload, length, rest)
	case rest > length:
		return Frame{}, fmt.Errorf("%w: declared %d, have %d", ErrLengthMismatch, length, rest)
	}

	payload := make([]byte, length)
	copy(payload, data[HeaderLen:])

	return Frame{
		Version: data[0],
		Type:    data[1],
		Flags:   data[2],
		Payload: payload,
	}, nil
}
