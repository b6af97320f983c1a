package lzw

import (
	"fmt"
	"strings"
)

// BitString renders the written bits as a string of '0'/'1' characters in
// stream order. Debug helper; the string carries no protocol semantics.
func (w *BitWriter) BitString() string {
	var sb strings.Builder
	sb.Grow(w.bits)

	for i := 0; i < w.bits; i++ {
		if w.buf[i/8]>>(i%8)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// AppendBitString appends one bit per character of s, in order.
// Returns ErrBitString if s contains anything but '0' and '1'.
func (w *BitWriter) AppendBitString(s string) error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			w.AppendBit(0)
		case '1':
			w.AppendBit(1)
		default:
			return fmt.Errorf("%w: %q at offset %d", ErrBitString, s[i], i)
		}
	}

	return nil
}
