package netframe

import "io"

// Message is one fully reassembled frame: a copy of its header and an
// owned copy of its body. A Message never aliases decoder-internal
// buffers, so it stays valid across later Decode calls.
type Message struct {
	Header Header
	Body   []byte
}

// Type returns the message's type tag.
func (m Message) Type() MessageType {
	return m.Header.Type
}

// Length returns the length of the message body.
func (m Message) Length() int {
	return len(m.Body)
}

// AppendMessage appends the wire encoding of m (header immediately
// followed by body, no padding or delimiter) to dst and returns the
// extended slice. The header's Length field is taken from the actual body
// size, so callers only need to set the type tag.
func AppendMessage(dst []byte, m Message) []byte {
	h := m.Header
	h.Length = uint32(len(m.Body))
	dst = appendHeader(dst, h)
	return append(dst, m.Body...)
}

// EncodeMessage returns the wire encoding of m.
func EncodeMessage(m Message) []byte {
	return AppendMessage(make([]byte, 0, HeaderSize+len(m.Body)), m)
}

// WriteMessage writes the wire encoding of m to w.
func WriteMessage(w io.Writer, m Message) error {
	_, err := w.Write(EncodeMessage(m))
	return err
}
