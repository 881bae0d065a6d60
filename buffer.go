package netframe

// accumulator collects the bytes of a partially received header or body
// across Decode calls. Appends are clipped against a target size, so the
// accumulated length can never overshoot the target and completion is a
// plain equality check.
type accumulator struct {
	data []byte
}

// fill appends bytes from src until the accumulator holds target bytes or
// src runs out, and returns how many bytes it consumed from src.
func (a *accumulator) fill(src []byte, target int) int {
	n := target - len(a.data)
	if n > len(src) {
		n = len(src)
	}
	a.data = append(a.data, src[:n]...)
	return n
}

// size returns the number of bytes accumulated so far.
func (a *accumulator) size() int {
	return len(a.data)
}

// bytes returns the accumulated bytes. The slice aliases internal storage
// and is only valid until the next fill or reset.
func (a *accumulator) bytes() []byte {
	return a.data
}

// reset empties the accumulator, keeping its storage for reuse.
func (a *accumulator) reset() {
	a.data = a.data[:0]
}
