package netframe

import (
	"bytes"
	"testing"
)

func TestEncodeMessage_Layout(t *testing.T) {
	wire := EncodeMessage(sampleMessage())

	if len(wire) != HeaderSize+14 {
		t.Fatalf("wire size = %d, want %d", len(wire), HeaderSize+14)
	}
	if h := parseHeader(wire[:HeaderSize]); h != (Header{Type: testTypeAttack, Length: 14}) {
		t.Errorf("header = %+v", h)
	}
	if !bytes.Equal(wire[HeaderSize:], []byte("abcdefghijklmn")) {
		t.Errorf("body bytes = %q", wire[HeaderSize:])
	}
}

func TestAppendMessage_LengthFromBody(t *testing.T) {
	// A stale Length in the header must not leak onto the wire.
	msg := Message{
		Header: Header{Type: 7, Length: 999},
		Body:   []byte("abc"),
	}

	wire := AppendMessage(nil, msg)
	if h := parseHeader(wire[:HeaderSize]); h.Length != 3 {
		t.Errorf("encoded length = %d, want 3", h.Length)
	}
}

func TestWriteMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, sampleMessage()); err != nil {
		t.Fatalf("WriteMessage failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), EncodeMessage(sampleMessage())) {
		t.Error("WriteMessage output differs from EncodeMessage")
	}
}

func TestMessage_Accessors(t *testing.T) {
	msg := sampleMessage()

	if msg.Type() != testTypeAttack {
		t.Errorf("Type() = %d, want %d", msg.Type(), testTypeAttack)
	}
	if msg.Length() != 14 {
		t.Errorf("Length() = %d, want 14", msg.Length())
	}
}

// Encode a mixed sequence and decode it again; the decoder is the other
// half of the wire format, so the pair must be lossless.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	want, wire := testStream()

	decoder := NewDecoder()
	var got []Message
	if _, err := decoder.Decode(wire, &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Header != want[i].Header || !bytes.Equal(got[i].Body, want[i].Body) {
			t.Errorf("message %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
