package digits

import "github.com/zeebo/errs"

// Error is the class of all errors raised by this package.
var Error = errs.Class("digits")

// Bytes is an immutable window onto literal text.
type Bytes struct {
	s string
}

// NewBytes returns a window covering all of s.
func NewBytes(s string) Bytes {
	return Bytes{s: s}
}

// Len returns the number of bytes in the window.
func (b Bytes) Len() int {
	return len(b.s)
}

// IsEmpty reports whether the window has no bytes.
func (b Bytes) IsEmpty() bool {
	return len(b.s) == 0
}

// Index returns the byte at i.
func (b Bytes) Index(i int) byte {
	if i < 0 || i >= len(b.s) {
		panic(Error.New("index out of range [%d] with length %d", i, len(b.s)))
	}

	return b.s[i]
}

// SplitAt returns the windows [0, mid) and [mid, Len).
func (b Bytes) SplitAt(mid int) (first, rest Bytes) {
	if mid < 0 || mid > len(b.s) {
		panic(Error.New("split out of range [%d] with length %d", mid, len(b.s)))
	}

	return Bytes{s: b.s[:mid]}, Bytes{s: b.s[mid:]}
}

// SplitFirst returns the first byte and the remainder. ok is false if the
// window is empty.
func (b Bytes) SplitFirst() (first byte, rest Bytes, ok bool) {
	if len(b.s) == 0 {
		return 0, b, false
	}

	return b.s[0], Bytes{s: b.s[1:]}, true
}

// SplitLast returns the remainder and the last byte. ok is false if the
// window is empty.
func (b Bytes) SplitLast() (rest Bytes, last byte, ok bool) {
	if len(b.s) == 0 {
		return b, 0, false
	}

	n := len(b.s) - 1

	return Bytes{s: b.s[:n]}, b.s[n], true
}

// String returns the text in the window, separators included.
func (b Bytes) String() string {
	return b.s
}
