// Package netframe reassembles length-prefixed messages from a byte
// stream that arrives in arbitrarily sized, arbitrarily aligned chunks
// (e.g., successive reads from a socket).
//
// Wire format: every message is an 8-byte header (4-byte type tag, 4-byte
// unsigned body length, both big-endian) immediately followed by exactly
// that many body bytes, packed back-to-back with no padding, delimiter,
// or checksum. The stream is assumed reliable, ordered, and
// non-duplicating; there is no resynchronization if bytes are lost.
package netframe

import (
	"github.com/pkg/errors"
)

// Errors reported by Decode.
var (
	// ErrMessageTooLarge is returned when a header declares a body larger
	// than the configured maximum.
	ErrMessageTooLarge = errors.New("message too large")
	// ErrInvalidHeader is returned when the configured header validator
	// rejects a parsed header.
	ErrInvalidHeader = errors.New("invalid header")
)

// bufferTag selects which of the decoder's two accumulation buffers is
// currently receiving bytes.
type bufferTag int

const (
	firstBuffer bufferTag = iota
	secondBuffer
)

// Decoder reassembles messages from one byte stream. It buffers at most
// one partially received message between calls: header bytes and body
// bytes accumulate in two alternating buffers, so an in-progress header
// and an in-progress body never share storage.
//
// A Decoder is not safe for concurrent use. Use one Decoder per stream
// and make Decode calls strictly sequential, in stream order.
type Decoder struct {
	buffers [2]accumulator
	active  bufferTag

	headerSet bool
	header    Header

	err error

	opts options
}

// NewDecoder returns a Decoder positioned at the start of a stream.
func NewDecoder(opt ...Option) *Decoder {
	var opts options
	for _, o := range opt {
		o(&opts)
	}
	checkOptions(&opts)

	return &Decoder{opts: opts}
}

// Decode consumes one chunk of the stream and appends every message it
// completes to out, preserving stream order. A single call may complete
// zero, one, or many messages; leftover header or body bytes stay
// buffered for the next call. It reports whether at least one message was
// completed during this call.
//
// The chunk is never modified and may be reused by the caller once Decode
// returns; any bytes the decoder retains are copied. out is only appended
// to, never cleared or replaced.
//
// A non-nil error means a header was rejected (see ErrMessageTooLarge and
// ErrInvalidHeader). Messages completed earlier in the same chunk are
// still appended. The stream cannot be resynchronized past a rejected
// header, so the error latches: every subsequent call returns it.
func (d *Decoder) Decode(chunk []byte, out *[]Message) (bool, error) {
	if d.err != nil {
		return false, d.err
	}

	completed := false
	consumed := 0
	for {
		if !d.headerSet {
			consumed += d.buffers[d.active].fill(chunk[consumed:], HeaderSize)
			if d.buffers[d.active].size() < HeaderSize {
				// Chunk exhausted mid-header.
				break
			}

			header := parseHeader(d.buffers[d.active].bytes())
			if err := d.checkHeader(header); err != nil {
				d.err = err
				return completed, err
			}

			d.header = header
			d.headerSet = true
			d.swapBuffer()
		}

		// A zero-length body completes right here, without waiting for
		// more bytes.
		need := int(d.header.Length)
		consumed += d.buffers[d.active].fill(chunk[consumed:], need)
		if d.buffers[d.active].size() < need {
			// Chunk exhausted mid-body.
			break
		}

		body := make([]byte, need)
		copy(body, d.buffers[d.active].bytes())
		*out = append(*out, Message{Header: d.header, Body: body})
		completed = true

		d.header = Header{}
		d.headerSet = false
		d.swapBuffer()
	}

	return completed, nil
}

// Buffered reports how many bytes of a partially received message the
// decoder currently holds. It is zero exactly when the decoder sits on a
// message boundary, which lets the owning layer detect a stream that was
// closed mid-message.
func (d *Decoder) Buffered() int {
	n := d.buffers[d.active].size()
	if d.headerSet {
		n += HeaderSize
	}
	return n
}

// checkHeader applies the size cap and the optional caller validator to a
// freshly parsed header.
func (d *Decoder) checkHeader(h Header) error {
	if int64(h.Length) > int64(d.opts.maxMessageSize) {
		d.opts.logger.Warn("rejecting oversized message",
			"type", h.Type, "length", h.Length, "max", d.opts.maxMessageSize)
		return errors.Wrapf(ErrMessageTooLarge,
			"declared length %d exceeds limit %d", h.Length, d.opts.maxMessageSize)
	}

	if d.opts.validateHeader != nil {
		if err := d.opts.validateHeader(h); err != nil {
			d.opts.logger.Warn("rejecting header", "type", h.Type, "error", err)
			return errors.Wrapf(ErrInvalidHeader, "header validation: %v", err)
		}
	}

	return nil
}

// swapBuffer makes the other accumulator active and resets it, so
// accumulation always starts from empty and header bytes never mix with
// body bytes.
func (d *Decoder) swapBuffer() {
	if d.active == firstBuffer {
		d.active = secondBuffer
	} else {
		d.active = firstBuffer
	}
	d.buffers[d.active].reset()
}
