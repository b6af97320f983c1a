package lzw

import "math/bits"

// DefaultWriterBits is the initial BitWriter capacity in bits (1024 bytes).
const DefaultWriterBits = 8192

// BitWriter is an append-only, auto-growing bit sequence. Bits are packed
// least-significant-bit first within each byte, so bit 0 of the stream is
// bit 0 of the first byte. The zero value is an empty writer ready to use.
//
// The writer exclusively owns its backing buffer until Release is called.
type BitWriter struct {
	buf     []byte
	factor  int // Growth multiplier applied to the byte capacity; < 2 means default 2.
	bytePos int // Current byte being written, 0 to len(buf)-1.
	bitPos  int // Next bit position within buf[bytePos], 0 to 7.
	bits    int // Bits written so far, not counting byte-rounding padding.
}

// NewBitWriter returns a writer pre-sized to DefaultWriterBits with growth factor 2.
func NewBitWriter() *BitWriter {
	return NewBitWriterSize(DefaultWriterBits, 2)
}

// NewBitWriterSize returns a writer pre-sized to sizeInBits with the given
// growth factor. Factors below 2 are clamped to 2.
func NewBitWriterSize(sizeInBits, growthFactor int) *BitWriter {
	w := &BitWriter{factor: growthFactor}
	w.Grow(sizeInBits)
	return w
}

// Grow ensures capacity for at least bitsWanted bits, rounding the byte
// requirement up to a power of two when the request is not byte-aligned.
// Existing bits keep their positions; new memory is zero-filled. No-op if
// the writer already has the capacity.
func (w *BitWriter) Grow(bitsWanted int) {
	if bitsWanted <= 0 {
		bitsWanted = 8
	}
	if bitsWanted%8 != 0 {
		bitsWanted = nextPowerOfTwo(bitsWanted)
	}

	sizeInBytes := bitsWanted / 8
	if sizeInBytes <= len(w.buf) {
		return
	}

	grown := make([]byte, sizeInBytes)
	copy(grown, w.buf)
	w.buf = grown
}

// AppendBit writes one bit (any non-zero value counts as 1) and advances the
// cursor, growing the buffer when it runs out.
func (w *BitWriter) AppendBit(bit int) {
	if w.bytePos == len(w.buf) {
		w.Grow(w.growBits())
	}

	mask := byte(1) << w.bitPos
	if bit != 0 {
		w.buf[w.bytePos] |= mask
	} else {
		w.buf[w.bytePos] &^= mask
	}
	w.bits++

	w.bitPos++
	if w.bitPos == 8 {
		w.bitPos = 0
		w.bytePos++
	}
}

// AppendBits writes the low count bits of v, least-significant bit first.
// Panics if count is negative or exceeds 64.
func (w *BitWriter) AppendBits(v uint64, count int) {
	if count < 0 || count > 64 {
		panic("lzw: AppendBits count out of range")
	}
	for b := 0; b < count; b++ {
		w.AppendBit(int((v >> b) & 1))
	}
}

// ByteCount returns the number of bytes needed to hold all written bits,
// rounding the final partial byte up.
func (w *BitWriter) ByteCount() int {
	return (w.bits + 7) / 8
}

// BitCount returns the exact number of bits written, without padding.
func (w *BitWriter) BitCount() int { return w.bits }

// Bytes returns the written bytes without copying. The slice aliases the
// writer's buffer and is only valid until the next append, Grow or Release.
func (w *BitWriter) Bytes() []byte { return w.buf[:w.ByteCount()] }

// Release transfers ownership of the backing buffer to the caller and resets
// the writer to its empty state. The returned slice spans the full allocated
// capacity; use ByteCount before releasing to know how much of it is used.
func (w *BitWriter) Release() []byte {
	buf := w.buf
	*w = BitWriter{factor: w.factor}
	return buf
}

// growBits returns the capacity target for the next growth step.
func (w *BitWriter) growBits() int {
	factor := w.factor
	if factor < 2 {
		factor = 2
	}
	if len(w.buf) == 0 {
		return 8
	}
	return len(w.buf) * factor * 8
}

// nextPowerOfTwo rounds n up to the next power of two, e.g. 37 => 64.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
