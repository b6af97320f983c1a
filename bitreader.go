package lzw

import "fmt"

// BitReader is a read-only cursor over a fixed bit sequence. It borrows the
// buffer it reads from and never owns memory; the buffer must outlive it.
//
// The bit length is tracked separately from the byte length because a code
// stream may end in the middle of its last byte. Running out of declared
// bits is the stream's normal termination signal, not an error.
type BitReader struct {
	buf     []byte
	bits    int // Declared stream length in bits; padding bits are not readable.
	bytePos int // Current byte being read.
	bitPos  int // Next bit position within buf[bytePos], 0 to 7.
	read    int // Bits read so far.
}

// NewBitReader returns a reader over the first bitCount bits of buf.
// Returns ErrBitCount if bitCount is negative or exceeds len(buf)*8.
func NewBitReader(buf []byte, bitCount int) (*BitReader, error) {
	if bitCount < 0 || bitCount > len(buf)*8 {
		return nil, fmt.Errorf("%w: %d bits in %d bytes", ErrBitCount, bitCount, len(buf))
	}

	return &BitReader{buf: buf, bits: bitCount}, nil
}

// NewBitReaderFromWriter returns a reader over the bits written to w so far.
// The reader borrows the writer's buffer: appending to or releasing the
// writer invalidates it.
func NewBitReaderFromWriter(w *BitWriter) *BitReader {
	return &BitReader{buf: w.Bytes(), bits: w.BitCount()}
}

// ReadBit returns the next bit and advances the cursor. The second result is
// false, with the cursor unmoved, once all declared bits have been read.
func (r *BitReader) ReadBit() (int, bool) {
	if r.read >= r.bits {
		return 0, false
	}

	bit := int(r.buf[r.bytePos]>>r.bitPos) & 1
	r.read++

	r.bitPos++
	if r.bitPos == 8 {
		r.bitPos = 0
		r.bytePos++
	}

	return bit, true
}

// ReadBits reads count bits, least-significant bit first. Unlike ReadBit,
// hitting the end of the stream mid-read means the reader has lost sync with
// whoever produced the stream and is reported as ErrUnexpectedEOS.
// Panics if count is negative or exceeds 64.
func (r *BitReader) ReadBits(count int) (uint64, error) {
	if count < 0 || count > 64 {
		panic("lzw: ReadBits count out of range")
	}

	var v uint64
	for b := 0; b < count; b++ {
		bit, ok := r.ReadBit()
		if !ok {
			return 0, fmt.Errorf("%w: want %d bits, stream ended after %d", ErrUnexpectedEOS, count, b)
		}
		v |= uint64(bit) << b
	}

	return v, nil
}

// EndOfStream reports whether all declared bits have been read.
func (r *BitReader) EndOfStream() bool { return r.read >= r.bits }

// Reset rewinds the cursor to the start of the stream.
func (r *BitReader) Reset() {
	r.bytePos = 0
	r.bitPos = 0
	r.read = 0
}
