package netframe

import (
	"io"

	"github.com/pkg/errors"
)

// MessageReader adapts a Decoder to pull-style consumption of an
// io.Reader. Each ReadMessage call returns the next message on the
// stream, reading and decoding further chunks as needed; messages decoded
// beyond the one returned are queued for later calls.
//
// Like the Decoder it wraps, a MessageReader serves a single stream and
// is not safe for concurrent use.
type MessageReader struct {
	r       io.Reader
	decoder *Decoder
	scratch []byte

	pending []Message
	err     error
}

// NewMessageReader returns a MessageReader that decodes messages from r.
// The options configure the underlying Decoder; ReadBufferSizeOption
// additionally controls how many bytes are requested from r at a time.
func NewMessageReader(r io.Reader, opt ...Option) *MessageReader {
	decoder := NewDecoder(opt...)

	return &MessageReader{
		r:       r,
		decoder: decoder,
		scratch: make([]byte, decoder.opts.readBufferSize),
	}
}

// ReadMessage returns the next message from the stream.
//
// It returns io.EOF when the stream ends on a message boundary, and
// io.ErrUnexpectedEOF when it ends with a partially received message
// still buffered. Decode rejections (ErrMessageTooLarge,
// ErrInvalidHeader) are returned after any messages completed before the
// rejection have been drained. Every error latches: once ReadMessage has
// failed, subsequent calls return the same error.
func (m *MessageReader) ReadMessage() (Message, error) {
	for len(m.pending) == 0 {
		if m.err != nil {
			return Message{}, m.err
		}

		n, err := m.r.Read(m.scratch)
		if n > 0 {
			// A rejection can still complete messages read earlier in the
			// same chunk; keep them and latch the error for afterwards.
			if _, decErr := m.decoder.Decode(m.scratch[:n], &m.pending); decErr != nil {
				m.err = decErr
			}
		}

		if err != nil {
			switch {
			case m.err != nil:
				// Decode rejection takes precedence over the read error.
			case err == io.EOF && m.decoder.Buffered() > 0:
				m.err = io.ErrUnexpectedEOF
			case err == io.EOF:
				m.err = io.EOF
			default:
				m.err = errors.Wrap(err, "reading stream")
			}
		}
	}

	msg := m.pending[0]
	m.pending = m.pending[1:]
	return msg, nil
}
