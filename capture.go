package slre

// Capture is the Go-idiomatic rendering of the matcher's {pointer, length}
// capture record. Data aliases a sub-slice of the input buffer passed to
// the match call — it is never copied, so it stays valid only as long as
// the caller keeps that buffer around. A Capture whose group did not
// participate in the match usually has nil data, but it may instead hold a
// substring recorded by an attempt that was later abandoned (for example
// an alternative that failed after the group inside it had matched).
type Capture struct {
	data []byte
}

// Bytes returns the captured substring, or nil if nothing was recorded
// for the group.
func (c Capture) Bytes() []byte {
	return c.data
}

// String returns the captured substring as a string.
func (c Capture) String() string {
	return string(c.data)
}

// Len returns the number of bytes captured.
func (c Capture) Len() int {
	return len(c.data)
}
