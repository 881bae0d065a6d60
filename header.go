package netframe

import "encoding/binary"

// HeaderSize is the fixed size in bytes of the wire header that precedes
// every message body.
const HeaderSize = 8

// MessageType identifies the kind of message carried by a frame.
// The decoder treats it as an opaque tag; interpreting it is the job of
// the dispatch layer.
type MessageType uint32

// Header is the fixed-size message prefix: a type tag followed by the
// number of body bytes that come after it. Both fields are big-endian on
// the wire.
type Header struct {
	Type   MessageType
	Length uint32
}

// parseHeader decodes a Header from exactly HeaderSize bytes.
func parseHeader(b []byte) Header {
	return Header{
		Type:   MessageType(binary.BigEndian.Uint32(b[0:4])),
		Length: binary.BigEndian.Uint32(b[4:8]),
	}
}

// appendHeader appends the wire encoding of h to dst and returns the
// extended slice.
func appendHeader(dst []byte, h Header) []byte {
	var buf [HeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], uint32(h.Type))
	binary.BigEndian.PutUint32(buf[4:8], h.Length)
	return append(dst, buf[:]...)
}
